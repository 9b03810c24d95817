package main

import (
	"crypto/rand"
	"strings"
)

const (
	letterAlphabet  = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	pointsPerAnswer = 10
)

// randIndex picks a crypto-random index below n.
func randIndex(n int) int {
	var b [1]byte
	if _, err := rand.Read(b[:]); err != nil {
		panic("crypto/rand failure: " + err.Error())
	}
	return int(b[0]) % n
}

// chooseLetter selects a round letter uniformly from the alphabet,
// excluding letters already used this game. Once all 26 are exhausted
// selection wraps back to the full alphabet, reported via the second
// return value so the caller can reset its used set.
func chooseLetter(used []string) (string, bool) {
	candidates := make([]string, 0, len(letterAlphabet))
	for _, r := range letterAlphabet {
		letter := string(r)
		excluded := false
		for _, u := range used {
			if u == letter {
				excluded = true
				break
			}
		}
		if !excluded {
			candidates = append(candidates, letter)
		}
	}

	wrapped := len(candidates) == 0
	if wrapped {
		candidates = strings.Split(letterAlphabet, "")
	}

	return candidates[randIndex(len(candidates))], wrapped
}

// answerCheck is the validation verdict for one submitted answer.
type answerCheck struct {
	Value            string `json:"value"`
	NonEmpty         bool   `json:"nonEmpty"`
	StartsWithLetter bool   `json:"startsWithLetter"`
	Points           int    `json:"points"`
}

// checkAnswer validates one answer against the round letter: the
// trimmed text must be non-empty and start (case-insensitively) with
// the letter. Multiplayer rounds deliberately apply no dictionary or
// duplicate checks; see the solo scorer for the stricter variant.
func checkAnswer(text, letter string) answerCheck {
	trimmed := strings.ToUpper(strings.TrimSpace(text))

	check := answerCheck{
		Value:    trimmed,
		NonEmpty: trimmed != "",
	}
	check.StartsWithLetter = check.NonEmpty && strings.HasPrefix(trimmed, strings.ToUpper(letter))
	if check.StartsWithLetter {
		check.Points = pointsPerAnswer
	}

	return check
}

// scoreAnswers computes a player's round score: 10 points per category
// whose answer passes checkAnswer. No perfect-round bonus here, unlike
// solo play.
func scoreAnswers(answers Answers, letter string) (int, map[Category]answerCheck) {
	score := 0
	checks := make(map[Category]answerCheck, len(categories))

	for _, category := range categories {
		check := checkAnswer(answers[category], letter)
		checks[category] = check
		score += check.Points
	}

	return score, checks
}

// allSubmitted reports whether every player has a non-empty answer in
// all four categories.
func allSubmitted(players []*Player) bool {
	for _, p := range players {
		for _, category := range categories {
			if strings.TrimSpace(p.Answers[category]) == "" {
				return false
			}
		}
	}
	return true
}

// PlayerResult is one player's line in a round's results.
type PlayerResult struct {
	PlayerID   string                   `json:"playerId"`
	PlayerName string                   `json:"playerName"`
	Answers    map[Category]answerCheck `json:"answers"`
	Score      int                      `json:"score"`
	TotalScore int                      `json:"totalScore"`
}

// RoundResults is the payload shared by ROUND_COMPLETE and ROUND_TIMEOUT.
type RoundResults struct {
	Letter      string         `json:"letter"`
	RoundNumber int            `json:"roundNumber"`
	Results     []PlayerResult `json:"results"`
}
