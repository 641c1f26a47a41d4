package pipeline

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Pipeline orchestrates the execution of Tools in dependency order.
type Pipeline struct {
	processors map[string]Tool
	order      []string
	verbose    bool
	log        zerolog.Logger
}

// New creates a new, empty Pipeline. verbose enables the human-readable
// console trace used during local debugging; structured per-step logging
// always happens via logger regardless of verbose.
func New(logger zerolog.Logger, verbose bool) *Pipeline {
	return &Pipeline{
		processors: make(map[string]Tool),
		verbose:    verbose,
		log:        logger,
	}
}

// AddTool registers a tool and recomputes execution order.
func (p *Pipeline) AddTool(t Tool) error {
	name := t.Name()
	if _, exists := p.processors[name]; exists {
		return fmt.Errorf("tool with name %s already registered", name)
	}
	p.processors[name] = t
	return p.calculateOrder()
}

func (p *Pipeline) calculateOrder() error {
	order, err := p.topologicalSort()
	if err != nil {
		return err
	}
	p.order = order
	return nil
}

func (p *Pipeline) topologicalSort() ([]string, error) {
	adjList := make(map[string][]string)
	inDegree := make(map[string]int)

	for name := range p.processors {
		adjList[name] = []string{}
		inDegree[name] = 0
	}

	for name, t := range p.processors {
		for _, dep := range t.Dependencies() {
			if _, exists := p.processors[dep]; !exists {
				return nil, fmt.Errorf("tool %s depends on %s, but %s is not registered", name, dep, dep)
			}
			adjList[dep] = append(adjList[dep], name)
			inDegree[name]++
		}
	}

	var queue []string
	for name, degree := range inDegree {
		if degree == 0 {
			queue = append(queue, name)
		}
	}

	var result []string
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		result = append(result, current)

		for _, neighbor := range adjList[current] {
			inDegree[neighbor]--
			if inDegree[neighbor] == 0 {
				queue = append(queue, neighbor)
			}
		}
	}

	if len(result) != len(p.processors) {
		return nil, fmt.Errorf("circular dependency detected among tools")
	}

	return result, nil
}

// Execute runs all registered tools, in dependency order, against baggage.
func (p *Pipeline) Execute(ctx context.Context, baggage map[string]interface{}) error {
	if len(p.order) == 0 && len(p.processors) > 0 {
		if err := p.calculateOrder(); err != nil {
			return err
		}
	}

	if p.verbose {
		fmt.Println(strings.Repeat("=", 60))
		fmt.Printf("pipeline: %d tools\n", len(p.order))
		for i, name := range p.order {
			fmt.Printf("  %d. %s\n", i+1, name)
		}
		fmt.Println(strings.Repeat("=", 60))
	}

	start := time.Now()
	for i, name := range p.order {
		t := p.processors[name]
		stepStart := time.Now()
		err := t.Process(ctx, baggage)
		dur := time.Since(stepStart)

		if err != nil {
			p.log.Error().Str("tool", name).Dur("duration", dur).Err(err).Msg("pipeline step failed")
			return fmt.Errorf("tool %s (step %d/%d) failed: %w", name, i+1, len(p.order), err)
		}
		p.log.Debug().Str("tool", name).Dur("duration", dur).Msg("pipeline step completed")
	}
	p.log.Debug().Dur("duration", time.Since(start)).Int("tools", len(p.order)).Msg("pipeline completed")

	return nil
}

// ExecutionOrder returns a copy of the current execution order.
func (p *Pipeline) ExecutionOrder() []string {
	out := make([]string, len(p.order))
	copy(out, p.order)
	return out
}

// HasTool reports whether a tool with the given name is registered.
func (p *Pipeline) HasTool(name string) bool {
	_, exists := p.processors[name]
	return exists
}
