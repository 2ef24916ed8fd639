// Package boards provides board loading from a directory of board files.
// This package depends on core but core does not depend on boards.
package boards

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/vovakirdan/freckers/internal/boards/formats"
	"github.com/vovakirdan/freckers/internal/core"
)

// Board represents a complete board definition loaded from disk.
type Board struct {
	ID       string
	Name     string
	Cells    map[core.Coord]core.CellState
	Metadata map[string]string
	FilePath string
}

// ToBoard creates an immutable core board.
func (b *Board) ToBoard() *core.Board {
	return core.NewBoard(b.Cells)
}

// Loader handles loading boards from a directory.
type Loader struct {
	Root string
}

// NewLoader creates a new board loader.
func NewLoader(root string) *Loader {
	return &Loader{Root: root}
}

// LoadAll recursively scans and loads all board files.
// Invalid files are skipped. Returns boards sorted by ID.
func (l *Loader) LoadAll() ([]Board, error) {
	var boards []Board

	err := filepath.WalkDir(l.Root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			return nil
		}

		ext := strings.ToLower(filepath.Ext(path))
		if !isSupportedExtension(ext) {
			return nil
		}

		board, err := LoadFile(path)
		if err != nil {
			// Skip invalid files
			return nil
		}

		boards = append(boards, board)
		return nil
	})

	if err != nil {
		return nil, fmt.Errorf("walking directory %s: %w", l.Root, err)
	}

	sort.Slice(boards, func(i, j int) bool {
		return boards[i].ID < boards[j].ID
	})

	return boards, nil
}

// LoadByID loads a specific board by ID.
func (l *Loader) LoadByID(id string) (Board, error) {
	boards, err := l.LoadAll()
	if err != nil {
		return Board{}, err
	}

	for _, b := range boards {
		if b.ID == id {
			return b, nil
		}
	}

	return Board{}, fmt.Errorf("board not found: %s", id)
}

// ListIDs returns all board IDs in sorted order.
func (l *Loader) ListIDs() ([]string, error) {
	boards, err := l.LoadAll()
	if err != nil {
		return nil, err
	}

	ids := make([]string, len(boards))
	for i, b := range boards {
		ids[i] = b.ID
	}
	return ids, nil
}

// Resolve loads ref as a file path if it exists, otherwise as a board ID.
func (l *Loader) Resolve(ref string) (Board, error) {
	if info, err := os.Stat(ref); err == nil && !info.IsDir() {
		return LoadFile(ref)
	}
	return l.LoadByID(ref)
}

// LoadFile loads a single board file.
// Boards without an ID take the file name without extension.
func LoadFile(path string) (Board, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Board{}, fmt.Errorf("reading file %s: %w", path, err)
	}

	ext := strings.ToLower(filepath.Ext(path))
	parsed, err := parseByExtension(data, ext)
	if err != nil {
		return Board{}, fmt.Errorf("parsing file %s: %w", path, err)
	}

	id := parsed.ID
	if id == "" {
		id = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}

	return Board{
		ID:       id,
		Name:     parsed.Name,
		Cells:    parsed.Cells,
		Metadata: parsed.Metadata,
		FilePath: path,
	}, nil
}

// isSupportedExtension checks if extension is supported.
func isSupportedExtension(ext string) bool {
	for _, supported := range formats.FormatExtensions() {
		if ext == supported {
			return true
		}
	}
	return false
}

// parseByExtension routes to the correct parser.
func parseByExtension(data []byte, ext string) (formats.Board, error) {
	switch ext {
	case ".yaml", ".yml":
		return formats.ParseYAML(data)
	default:
		return formats.Board{}, fmt.Errorf("unsupported extension: %s", ext)
	}
}
