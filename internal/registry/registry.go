// Package registry provides a global registry for search heuristics.
// Heuristics register themselves in init() functions, allowing the CLI
// and the search engine to pick one by name without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/freckers/internal/core"
)

// Heuristic estimates the number of turns left from a position.
// An instance is bound to one board and is used by a single search.
type Heuristic interface {
	// Name returns the registered name (e.g., "adaptive", "zero").
	Name() string

	// Estimate returns the estimated number of turns from pos to the goal row.
	// Must return 0 for positions on the goal row.
	Estimate(pos core.Coord) int
}

// HeuristicInfo contains metadata about a registered heuristic.
type HeuristicInfo struct {
	Name        string
	Description string
}

// Factory creates a heuristic bound to the given board.
type Factory func(b *core.Board) Heuristic

var (
	factories    = make(map[string]Factory)
	descriptions = make(map[string]string)
	mu           sync.RWMutex
)

// Register adds a heuristic factory to the registry.
// Typically called from an init() function.
// Panics if a heuristic with the same name is already registered.
func Register(name, description string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[name]; exists {
		panic(fmt.Sprintf("registry: heuristic %q already registered", name))
	}

	factories[name] = f
	descriptions[name] = description
}

// List returns information about all registered heuristics, sorted by name.
func List() []HeuristicInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]HeuristicInfo, 0, len(factories))
	for name := range factories {
		result = append(result, HeuristicInfo{
			Name:        name,
			Description: descriptions[name],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})

	return result
}

// Create instantiates a heuristic by name for the given board.
// Returns an error if the name is not registered.
func Create(name string, b *core.Board) (Heuristic, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[name]
	if !ok {
		return nil, fmt.Errorf("registry: unknown heuristic %q", name)
	}

	return f(b), nil
}

// Exists checks if a heuristic with the given name is registered.
func Exists(name string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[name]
	return ok
}
