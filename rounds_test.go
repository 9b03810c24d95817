package main

import (
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChooseLetter(t *testing.T) {
	t.Run("never repeats a used letter", func(t *testing.T) {
		used := []string{}
		for range 26 {
			letter, wrapped := chooseLetter(used)
			assert.False(t, wrapped)
			assert.NotContains(t, used, letter)
			used = append(used, letter)
		}
		assert.Len(t, used, 26)
	})

	t.Run("wraps once the alphabet is exhausted", func(t *testing.T) {
		used := strings.Split(letterAlphabet, "")

		letter, wrapped := chooseLetter(used)

		assert.True(t, wrapped)
		assert.Contains(t, letterAlphabet, letter)
	})

	t.Run("only the unused letter remains", func(t *testing.T) {
		used := slices.DeleteFunc(strings.Split(letterAlphabet, ""), func(s string) bool {
			return s == "Q"
		})

		letter, wrapped := chooseLetter(used)

		assert.False(t, wrapped)
		assert.Equal(t, "Q", letter)
	})
}

func TestCheckAnswer(t *testing.T) {
	t.Run("valid answer scores ten points", func(t *testing.T) {
		check := checkAnswer("Berlin", "B")

		assert.Equal(t, "BERLIN", check.Value)
		assert.True(t, check.NonEmpty)
		assert.True(t, check.StartsWithLetter)
		assert.Equal(t, pointsPerAnswer, check.Points)
	})

	t.Run("letter comparison ignores case", func(t *testing.T) {
		check := checkAnswer("berlin", "b")

		assert.True(t, check.StartsWithLetter)
		assert.Equal(t, pointsPerAnswer, check.Points)
	})

	t.Run("surrounding whitespace is trimmed", func(t *testing.T) {
		check := checkAnswer("  bear  ", "B")

		assert.Equal(t, "BEAR", check.Value)
		assert.Equal(t, pointsPerAnswer, check.Points)
	})

	t.Run("wrong starting letter scores nothing", func(t *testing.T) {
		check := checkAnswer("Cat", "B")

		assert.True(t, check.NonEmpty)
		assert.False(t, check.StartsWithLetter)
		assert.Zero(t, check.Points)
	})

	t.Run("blank answer scores nothing", func(t *testing.T) {
		check := checkAnswer("   ", "B")

		assert.False(t, check.NonEmpty)
		assert.False(t, check.StartsWithLetter)
		assert.Zero(t, check.Points)
	})
}

func TestScoreAnswers(t *testing.T) {
	t.Run("ten points per matching category, no bonus", func(t *testing.T) {
		score, checks := scoreAnswers(Answers{
			CategoryName:   "Bob",
			CategoryPlace:  "Boston",
			CategoryAnimal: "Bear",
			CategoryThing:  "Ball",
		}, "B")

		assert.Equal(t, 40, score)
		require.Len(t, checks, 4)
		for _, check := range checks {
			assert.Equal(t, pointsPerAnswer, check.Points)
		}
	})

	t.Run("partial submissions score only valid categories", func(t *testing.T) {
		score, checks := scoreAnswers(Answers{
			CategoryName:   "Bob",
			CategoryAnimal: "Cat",
		}, "B")

		assert.Equal(t, 10, score)
		assert.Zero(t, checks[CategoryAnimal].Points)
		assert.Zero(t, checks[CategoryPlace].Points)
	})

	t.Run("nil answers score zero in every category", func(t *testing.T) {
		score, checks := scoreAnswers(nil, "B")

		assert.Zero(t, score)
		assert.Len(t, checks, 4)
	})
}

func TestAllSubmitted(t *testing.T) {
	full := Answers{
		CategoryName:   "Bob",
		CategoryPlace:  "Boston",
		CategoryAnimal: "Bear",
		CategoryThing:  "Ball",
	}

	t.Run("true when every player filled every category", func(t *testing.T) {
		players := []*Player{
			{ID: "a", Answers: full},
			{ID: "b", Answers: full},
		}

		assert.True(t, allSubmitted(players))
	})

	t.Run("false while any category is blank", func(t *testing.T) {
		players := []*Player{
			{ID: "a", Answers: full},
			{ID: "b", Answers: Answers{CategoryName: "Bob", CategoryPlace: " "}},
		}

		assert.False(t, allSubmitted(players))
	})
}

func TestRandIndex(t *testing.T) {
	for range 100 {
		got := randIndex(7)
		assert.GreaterOrEqual(t, got, 0)
		assert.Less(t, got, 7)
	}
}
