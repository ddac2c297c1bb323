// Package geo holds the static location graph and the shortest-path
// computation used to rank venues by travel proximity.
package geo

import (
	"container/heap"
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/AnuragChougule/venuebook/internal/domain"
)

//go:embed graph.json
var graphJSON []byte

// Graph is a weighted graph of named areas. Weights are non-negative travel
// costs; the graph may be disconnected. It is loaded once at startup and
// never mutated afterwards.
type Graph map[string]map[string]int

// Load parses the embedded area graph and validates its weights.
func Load() (Graph, error) {
	var g Graph
	if err := json.Unmarshal(graphJSON, &g); err != nil {
		return nil, fmt.Errorf("parse graph: %w", err)
	}
	for area, edges := range g {
		for neighbor, weight := range edges {
			if weight < 0 {
				return nil, fmt.Errorf("negative edge weight %d from %q to %q", weight, area, neighbor)
			}
		}
	}
	return g, nil
}

// Contains reports whether area is a node of the graph.
func (g Graph) Contains(area string) bool {
	_, ok := g[area]
	return ok
}

// ShortestFrom computes Dijkstra shortest-path costs from source to every
// reachable area. Unreachable areas are absent from the result. The source
// itself maps to 0. Returns ErrInvalidLocation when source is not a node.
func (g Graph) ShortestFrom(source string) (map[string]int, error) {
	if !g.Contains(source) {
		return nil, domain.ErrInvalidLocation
	}

	dist := map[string]int{source: 0}
	done := make(map[string]bool, len(g))

	pq := &frontier{{area: source, dist: 0}}
	heap.Init(pq)

	for pq.Len() > 0 {
		cur := heap.Pop(pq).(frontierItem)
		if done[cur.area] {
			continue
		}
		done[cur.area] = true

		for neighbor, weight := range g[cur.area] {
			if done[neighbor] {
				continue
			}
			candidate := cur.dist + weight
			if best, seen := dist[neighbor]; !seen || candidate < best {
				dist[neighbor] = candidate
				heap.Push(pq, frontierItem{area: neighbor, dist: candidate})
			}
		}
	}
	return dist, nil
}

type frontierItem struct {
	area string
	dist int
}

// frontier is a min-heap of tentative distances.
type frontier []frontierItem

func (f frontier) Len() int           { return len(f) }
func (f frontier) Less(i, j int) bool { return f[i].dist < f[j].dist }
func (f frontier) Swap(i, j int)      { f[i], f[j] = f[j], f[i] }

func (f *frontier) Push(x any) { *f = append(*f, x.(frontierItem)) }

func (f *frontier) Pop() any {
	old := *f
	n := len(old)
	item := old[n-1]
	*f = old[:n-1]
	return item
}
