// Package dependency builds the request-scoped dependency graph and
// detects circular dependency chains.
package dependency

import (
	"github.com/KnownUser19/Smart-Task-Analyzer/pkg/domain/task"
)

// Graph is a directed graph over the task ids of a single request.
// Edges point from a task to the tasks it depends on. Dependencies that
// reference ids absent from the request are dangling edges and are
// dropped: no node is created for them and traversal never sees them.
type Graph struct {
	order      []string
	deps       map[string][]string
	dependents map[string][]string
}

// NewGraph builds a graph from a task list. Node order follows input
// order so traversal and cycle reporting are deterministic.
func NewGraph(tasks []task.Task) *Graph {
	g := &Graph{
		order:      make([]string, 0, len(tasks)),
		deps:       make(map[string][]string, len(tasks)),
		dependents: make(map[string][]string),
	}

	known := make(map[string]struct{}, len(tasks))
	for _, t := range tasks {
		known[t.ID] = struct{}{}
	}

	for _, t := range tasks {
		g.order = append(g.order, t.ID)
		valid := make([]string, 0, len(t.Dependencies))
		for _, dep := range t.Dependencies {
			if _, ok := known[dep]; !ok {
				continue
			}
			valid = append(valid, dep)
			g.dependents[dep] = append(g.dependents[dep], t.ID)
		}
		g.deps[t.ID] = valid
	}

	return g
}

// Dependencies returns the resolved (non-dangling) dependency ids of a task.
func (g *Graph) Dependencies(id string) []string {
	return g.deps[id]
}

// Dependents returns the ids of tasks that list the given task as a
// dependency.
func (g *Graph) Dependents(id string) []string {
	return g.dependents[id]
}

// BlocksCount returns how many tasks in the request directly depend on
// the given task.
func (g *Graph) BlocksCount(id string) int {
	return len(g.dependents[id])
}

// Len returns the number of nodes in the graph.
func (g *Graph) Len() int {
	return len(g.order)
}

// DFS colors. A gray node is on the active recursion path; a back-edge
// into gray means a cycle.
const (
	white = iota
	gray
	black
)

// FindCycles detects circular dependency chains using a three-color
// depth-first search. Every node is visited at most once across all
// traversals; each traversal reports at most the first cycle it closes.
// A reported cycle is the ordered segment of the active path starting at
// the revisited node.
func (g *Graph) FindCycles() [][]string {
	color := make(map[string]int, len(g.order))
	var cycles [][]string
	var path []string

	var visit func(id string) []string
	visit = func(id string) []string {
		color[id] = gray
		path = append(path, id)

		for _, dep := range g.deps[id] {
			switch color[dep] {
			case white:
				if cycle := visit(dep); cycle != nil {
					return cycle
				}
			case gray:
				// Back-edge. The revisited node may belong to an earlier
				// aborted traversal; only the active path closes a loop.
				for i, n := range path {
					if n == dep {
						cycle := make([]string, len(path)-i)
						copy(cycle, path[i:])
						return cycle
					}
				}
			}
		}

		path = path[:len(path)-1]
		color[id] = black
		return nil
	}

	for _, id := range g.order {
		if color[id] != white {
			continue
		}
		if cycle := visit(id); cycle != nil {
			cycles = append(cycles, cycle)
			path = path[:0]
		}
	}

	return cycles
}

// CycleMembers returns the set of task ids that appear on any detected
// cycle.
func CycleMembers(cycles [][]string) map[string]bool {
	members := make(map[string]bool)
	for _, cycle := range cycles {
		for _, id := range cycle {
			members[id] = true
		}
	}
	return members
}
