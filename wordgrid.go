// Wordhall Wordgrid Game
//
// A single-player word search. The server generates the puzzle - words
// placed into a letter grid along level-dependent directions, gaps filled
// with random letters - and the browser handles selection and scoring.

package main

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
)

// WordDirection is a placement direction within the grid.
type WordDirection string

const (
	DirHorizontal        WordDirection = "horizontal"
	DirVertical          WordDirection = "vertical"
	DirDiagonal          WordDirection = "diagonal"
	DirHorizontalReverse WordDirection = "horizontal-reverse"
	DirVerticalReverse   WordDirection = "vertical-reverse"
	DirDiagonalReverse   WordDirection = "diagonal-reverse"
)

func directionDeltas(direction WordDirection) (int, int) {
	switch direction {
	case DirHorizontal:
		return 0, 1
	case DirVertical:
		return 1, 0
	case DirDiagonal:
		return 1, 1
	case DirHorizontalReverse:
		return 0, -1
	case DirVerticalReverse:
		return -1, 0
	case DirDiagonalReverse:
		return -1, -1
	}
	return 0, 1
}

type gridLevel struct {
	level      int
	words      []string
	directions []WordDirection
	gridSize   int
}

// Levels get longer words and more directions as they progress.
var gridLevels = []gridLevel{
	{
		level:      1,
		words:      []string{"CAT", "DOG", "SUN", "TREE", "BOOK", "RAIN"},
		directions: []WordDirection{DirHorizontal, DirVertical},
		gridSize:   12,
	},
	{
		level:      2,
		words:      []string{"HOUSE", "WATER", "LIGHT", "MOUSE", "PHONE", "MUSIC"},
		directions: []WordDirection{DirHorizontal, DirVertical, DirDiagonal},
		gridSize:   12,
	},
	{
		level:      3,
		words:      []string{"FRIEND", "GARDEN", "CASTLE", "BRIDGE", "FOREST", "ISLAND"},
		directions: []WordDirection{DirHorizontal, DirVertical, DirDiagonal, DirHorizontalReverse, DirVerticalReverse},
		gridSize:   12,
	},
	{
		level:      4,
		words:      []string{"JOURNEY", "MYSTERY", "CHAPTER", "KITCHEN", "WEATHER", "PICTURE"},
		directions: []WordDirection{DirHorizontal, DirVertical, DirDiagonal, DirHorizontalReverse, DirVerticalReverse, DirDiagonalReverse},
		gridSize:   12,
	},
	{
		level:      5,
		words:      []string{"ADVENTURE", "BRILLIANT", "CHALLENGE", "DISCOVERY", "EDUCATION", "FANTASTIC"},
		directions: []WordDirection{DirHorizontal, DirVertical, DirDiagonal, DirHorizontalReverse, DirVerticalReverse, DirDiagonalReverse},
		gridSize:   12,
	},
}

// WordPlacement records where one word landed in the grid.
type WordPlacement struct {
	Word      string        `json:"word"`
	StartRow  int           `json:"startRow"`
	StartCol  int           `json:"startCol"`
	Direction WordDirection `json:"direction"`
}

// WordGridPuzzle is a generated word-search puzzle.
type WordGridPuzzle struct {
	Level    int             `json:"level"`
	GridSize int             `json:"gridSize"`
	Grid     [][]string      `json:"grid"`
	Words    []WordPlacement `json:"words"`
}

var errInvalidLevel = errors.New("invalid level")

func canPlaceWord(grid [][]string, word string, startRow, startCol int, direction WordDirection) bool {
	rowDelta, colDelta := directionDeltas(direction)
	size := len(grid)

	for i := 0; i < len(word); i++ {
		row := startRow + rowDelta*i
		col := startCol + colDelta*i

		if row < 0 || row >= size || col < 0 || col >= size {
			return false
		}
		if cell := grid[row][col]; cell != "" && cell != string(word[i]) {
			return false
		}
	}

	return true
}

func placeWord(grid [][]string, word string, startRow, startCol int, direction WordDirection) {
	rowDelta, colDelta := directionDeltas(direction)

	for i := 0; i < len(word); i++ {
		grid[startRow+rowDelta*i][startCol+colDelta*i] = string(word[i])
	}
}

// generatePuzzle builds the grid for a level: each word is dropped at
// random positions and directions until one fits (crossing letters may
// overlap), then leftover cells are filled with random letters. A word
// that cannot be placed within the attempt budget is skipped rather
// than failing the puzzle.
func generatePuzzle(level int) (*WordGridPuzzle, error) {
	if level < 1 || level > len(gridLevels) {
		return nil, errInvalidLevel
	}

	config := gridLevels[level-1]

	grid := make([][]string, config.gridSize)
	for row := range grid {
		grid[row] = make([]string, config.gridSize)
	}

	const maxAttempts = 1000

	placements := make([]WordPlacement, 0, len(config.words))
	for _, word := range config.words {
		for attempt := 0; attempt < maxAttempts; attempt++ {
			direction := config.directions[randIndex(len(config.directions))]
			startRow := randIndex(config.gridSize)
			startCol := randIndex(config.gridSize)

			if !canPlaceWord(grid, word, startRow, startCol, direction) {
				continue
			}

			placeWord(grid, word, startRow, startCol, direction)
			placements = append(placements, WordPlacement{
				Word:      word,
				StartRow:  startRow,
				StartCol:  startCol,
				Direction: direction,
			})
			break
		}
	}

	for row := range grid {
		for col := range grid[row] {
			if grid[row][col] == "" {
				grid[row][col] = string(letterAlphabet[randIndex(len(letterAlphabet))])
			}
		}
	}

	return &WordGridPuzzle{
		Level:    level,
		GridSize: config.gridSize,
		Grid:     grid,
		Words:    placements,
	}, nil
}

// serveWordGridPuzzle generates a fresh puzzle:
// GET $path/new?level=N
func serveWordGridPuzzle(cfg *Config, errs chan<- error) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		level, err := strconv.Atoi(r.URL.Query().Get("level"))
		if err != nil {
			level = 1
		}

		puzzle, err := generatePuzzle(level)
		if err != nil {
			http.Error(w, "level must be between 1 and "+strconv.Itoa(len(gridLevels)), http.StatusBadRequest)
			return
		}

		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		securityHeaders(cfg, w)

		if err := json.NewEncoder(w).Encode(puzzle); err != nil {
			errs <- err

			return
		}
	}
}

// registerWordGridGame sets up routes so that:
//   - $path      → HTML client
//   - $path/new  → fresh puzzle as JSON
func registerWordGridGame(cfg *Config, path string, mux *httprouter.Router, errs chan<- error) {
	mux.GET(cfg.prefix+path, serveGamePage(cfg, errs, "assets/wordgrid/index.html"))

	mux.GET(cfg.prefix+path+"/new", serveWordGridPuzzle(cfg, errs))
}
