package seeder

import "fmt"

// DependencyGraph orders stages so every table is seeded after the tables it references.
// Ties are broken by registration order.
type DependencyGraph struct {
	stages map[string]Stage
	names  []string
	order  []string
}

func NewDependencyGraph() *DependencyGraph {
	return &DependencyGraph{
		stages: make(map[string]Stage),
	}
}

func (g *DependencyGraph) AddStage(stage Stage) error {
	name := stage.Table()
	if _, exists := g.stages[name]; exists {
		return fmt.Errorf("stage for table %s registered twice", name)
	}
	g.stages[name] = stage
	g.names = append(g.names, name)
	return nil
}

func (g *DependencyGraph) BuildInsertionOrder() ([]Stage, error) {
	visited := make(map[string]bool)
	temp := make(map[string]bool)
	var order []string

	var visit func(string) error
	visit = func(tableName string) error {
		if temp[tableName] {
			return fmt.Errorf("circular dependency detected involving table: %s", tableName)
		}
		if visited[tableName] {
			return nil
		}

		stage, ok := g.stages[tableName]
		if !ok {
			return fmt.Errorf("%w: no stage seeds table %s", ErrMissingDependency, tableName)
		}

		temp[tableName] = true
		for _, dep := range stage.Dependencies() {
			if dep == tableName {
				continue
			}
			if err := visit(dep); err != nil {
				return err
			}
		}

		temp[tableName] = false
		visited[tableName] = true
		order = append(order, tableName)
		return nil
	}

	for _, tableName := range g.names {
		if !visited[tableName] {
			if err := visit(tableName); err != nil {
				return nil, err
			}
		}
	}

	g.order = order
	stages := make([]Stage, len(order))
	for i, name := range order {
		stages[i] = g.stages[name]
	}
	return stages, nil
}

func (g *DependencyGraph) GetOrder() []string {
	return g.order
}
