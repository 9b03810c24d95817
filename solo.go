package main

import (
	"encoding/json"
	"net/http"
	"slices"
	"strconv"
	"strings"

	"github.com/julienschmidt/httprouter"
)

// Solo play applies the strict ruleset: answers must appear in the
// category word list, must not repeat an earlier answer from the same
// game, and a perfect round (all four valid) earns a bonus. This is
// deliberately stricter than multiplayer scoring, which only checks
// the starting letter.

const perfectRoundBonus = 10

type soloAnswer struct {
	Value     string `json:"value"`
	Valid     bool   `json:"isValid"`
	Duplicate bool   `json:"isDuplicate"`
	Points    int    `json:"points"`
}

type soloRoundResult struct {
	Answers      map[Category]soloAnswer `json:"answers"`
	RoundScore   int                     `json:"roundScore"`
	PerfectRound bool                    `json:"perfectRound"`
}

// soloChooseLetter picks from the difficulty tier for the round,
// excluding already-used letters. An exhausted tier falls back to a
// fresh draw from the easy tier.
func soloChooseLetter(used []string, difficulty string) string {
	tier, ok := difficultyLetters[difficulty]
	if !ok {
		tier = difficultyLetters["easy"]
	}

	candidates := make([]string, 0, len(tier))
	for _, letter := range tier {
		if !slices.Contains(used, letter) {
			candidates = append(candidates, letter)
		}
	}

	if len(candidates) == 0 {
		easy := difficultyLetters["easy"]
		return easy[randIndex(len(easy))]
	}

	return candidates[randIndex(len(candidates))]
}

// soloCheckAnswer validates one solo answer: correct starting letter,
// present in the category dictionary, not previously used this game.
func soloCheckAnswer(category Category, text, letter string, usedAnswers []string) soloAnswer {
	value := strings.ToUpper(strings.TrimSpace(text))

	answer := soloAnswer{Value: value}

	if value == "" || !strings.HasPrefix(value, strings.ToUpper(letter)) {
		return answer
	}

	answer.Duplicate = slices.Contains(usedAnswers, value)
	if !answer.Duplicate && slices.Contains(wordLists[category], value) {
		answer.Valid = true
		answer.Points = pointsPerAnswer
	}

	return answer
}

// soloScoreRound scores a full solo round, awarding the perfect-round
// bonus when all four categories are valid.
func soloScoreRound(answers Answers, letter string, usedAnswers map[Category][]string) soloRoundResult {
	result := soloRoundResult{
		Answers: make(map[Category]soloAnswer, len(categories)),
	}

	valid := 0
	for _, category := range categories {
		answer := soloCheckAnswer(category, answers[category], letter, usedAnswers[category])
		result.Answers[category] = answer
		result.RoundScore += answer.Points
		if answer.Valid {
			valid++
		}
	}

	if valid == len(categories) {
		result.PerfectRound = true
		result.RoundScore += perfectRoundBonus
	}

	return result
}

type soloLetterResponse struct {
	Letter     string `json:"letter"`
	Difficulty string `json:"difficulty"`
}

// serveSoloLetter picks a round letter for solo play:
// GET $path/solo/letter?round=N&used=A,B,C
func serveSoloLetter(cfg *Config, errs chan<- error) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		round, err := strconv.Atoi(r.URL.Query().Get("round"))
		if err != nil || round < 1 {
			round = 1
		}

		var used []string
		if raw := r.URL.Query().Get("used"); raw != "" {
			for _, letter := range strings.Split(strings.ToUpper(raw), ",") {
				letter = strings.TrimSpace(letter)
				if len(letter) == 1 {
					used = append(used, letter)
				}
			}
		}

		difficulty := difficultyForRound(round)

		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		securityHeaders(cfg, w)

		if err := json.NewEncoder(w).Encode(soloLetterResponse{
			Letter:     soloChooseLetter(used, difficulty),
			Difficulty: difficulty,
		}); err != nil {
			errs <- err

			return
		}
	}
}

type soloScoreRequest struct {
	Letter      string                `json:"letter"`
	Answers     Answers               `json:"answers"`
	UsedAnswers map[Category][]string `json:"usedAnswers"`
}

// serveSoloScore scores one submitted solo round:
// POST $path/solo/score with {letter, answers, usedAnswers}
func serveSoloScore(cfg *Config, errs chan<- error) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		var req soloScoreRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid request body", http.StatusBadRequest)
			return
		}

		letter := strings.ToUpper(strings.TrimSpace(req.Letter))
		if len(letter) != 1 || !strings.Contains(letterAlphabet, letter) {
			http.Error(w, "letter must be a single character A-Z", http.StatusBadRequest)
			return
		}

		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		securityHeaders(cfg, w)

		if err := json.NewEncoder(w).Encode(soloScoreRound(req.Answers, letter, req.UsedAnswers)); err != nil {
			errs <- err

			return
		}
	}
}
