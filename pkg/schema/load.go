package schema

import (
	"fmt"
	"os"

	"sigs.k8s.io/yaml"

	"github.com/delegen/delegen"
)

// LoadGraph reads a resolved schema graph document and returns the graph.
// The toolchain emits the graph as JSON; hand-written fixtures may use YAML.
// Both are accepted since YAML is a superset here.
func LoadGraph(path string) (*Graph, error) {
	content, err := os.ReadFile(path) //nolint:gosec // path is from trusted source
	if err != nil {
		return nil, fmt.Errorf("reading schema graph: %w", err)
	}

	return ParseGraph(content)
}

// ParseGraph parses a schema graph document from JSON or YAML content.
func ParseGraph(content []byte) (*Graph, error) {
	var g Graph
	if err := yaml.UnmarshalStrict(content, &g); err != nil {
		return nil, fmt.Errorf("%w: %v", delegen.ErrInvalidGraph, err)
	}

	return &g, nil
}
