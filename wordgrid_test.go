package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// readWordFromGrid walks a placement through the grid and returns the
// letters it covers.
func readWordFromGrid(grid [][]string, placement WordPlacement) string {
	rowDelta, colDelta := directionDeltas(placement.Direction)

	word := ""
	for i := 0; i < len(placement.Word); i++ {
		word += grid[placement.StartRow+rowDelta*i][placement.StartCol+colDelta*i]
	}
	return word
}

func TestGeneratePuzzle(t *testing.T) {
	for _, level := range gridLevels {
		t.Run("level "+strconv.Itoa(level.level), func(t *testing.T) {
			puzzle, err := generatePuzzle(level.level)
			require.NoError(t, err)

			assert.Equal(t, level.gridSize, puzzle.GridSize)
			require.Len(t, puzzle.Grid, level.gridSize)
			for _, row := range puzzle.Grid {
				require.Len(t, row, level.gridSize)
				for _, cell := range row {
					assert.Len(t, cell, 1)
					assert.Contains(t, letterAlphabet, cell)
				}
			}

			// A 12x12 grid with six words should essentially never
			// exhaust the placement budget.
			require.Len(t, puzzle.Words, len(level.words))

			for _, placement := range puzzle.Words {
				assert.Contains(t, level.words, placement.Word)
				assert.Contains(t, level.directions, placement.Direction)
				assert.Equal(t, placement.Word, readWordFromGrid(puzzle.Grid, placement))
			}
		})
	}
}

func TestGeneratePuzzleInvalidLevel(t *testing.T) {
	for _, level := range []int{0, -1, 6, 99} {
		_, err := generatePuzzle(level)
		assert.ErrorIs(t, err, errInvalidLevel)
	}
}

func TestCanPlaceWord(t *testing.T) {
	grid := make([][]string, 12)
	for row := range grid {
		grid[row] = make([]string, 12)
	}

	t.Run("rejects out-of-bounds placements", func(t *testing.T) {
		assert.False(t, canPlaceWord(grid, "LONGWORD", 0, 8, DirHorizontal))
		assert.False(t, canPlaceWord(grid, "CAT", 1, 1, DirVerticalReverse))
		assert.True(t, canPlaceWord(grid, "CAT", 2, 0, DirVerticalReverse))
	})

	t.Run("allows crossings on matching letters only", func(t *testing.T) {
		placeWord(grid, "CAT", 0, 0, DirHorizontal)

		// TREE shares its T with CAT's final letter.
		assert.True(t, canPlaceWord(grid, "TREE", 0, 2, DirVertical))
		assert.False(t, canPlaceWord(grid, "DOG", 0, 1, DirVertical))
	})
}

func TestServeWordGridPuzzle(t *testing.T) {
	cfg := &Config{}
	errs := make(chan error, 8)
	mux := httprouter.New()
	mux.GET("/wordgrid/new", serveWordGridPuzzle(cfg, errs))

	t.Run("returns a puzzle for the requested level", func(t *testing.T) {
		w := httptest.NewRecorder()
		mux.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/wordgrid/new?level=3", nil))

		require.Equal(t, http.StatusOK, w.Code)

		var puzzle WordGridPuzzle
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &puzzle))
		assert.Equal(t, 3, puzzle.Level)
		assert.Len(t, puzzle.Words, 6)
	})

	t.Run("missing level defaults to one", func(t *testing.T) {
		w := httptest.NewRecorder()
		mux.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/wordgrid/new", nil))

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"level":1`)
	})

	t.Run("out-of-range level is a bad request", func(t *testing.T) {
		w := httptest.NewRecorder()
		mux.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/wordgrid/new?level=9", nil))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
