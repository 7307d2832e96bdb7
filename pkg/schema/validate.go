package schema

import "fmt"

// Problem describes a schema defect found during validation. Problems are
// recoverable: each one degrades only the hierarchy or rewrite it affects,
// so validation reports all of them instead of stopping at the first.
type Problem struct {
	Entity  string
	Message string
}

func (p Problem) String() string {
	return fmt.Sprintf("%s: %s", p.Entity, p.Message)
}

// Validate checks the graph for the defect classes the projection pass
// degrades on: dangling supertype references, cyclic supertype chains,
// delegate markers whose discriminator does not resolve, and relation
// attributes whose foreign-key lists reference unknown fields.
func Validate(g *Graph) []Problem {
	var problems []Problem

	for i := range g.Entities {
		e := &g.Entities[i]

		for _, super := range e.Extends {
			if g.Entity(super) == nil {
				problems = append(problems, Problem{
					Entity:  e.Name,
					Message: fmt.Sprintf("extends unknown entity %q", super),
				})
			}
		}

		if onSupertypeCycle(g, e) {
			problems = append(problems, Problem{
				Entity:  e.Name,
				Message: "supertype references form a cycle",
			})
		}

		if marker := e.DelegateMarker(); marker != nil && DiscriminatorOf(e) == nil {
			problems = append(problems, Problem{
				Entity:  e.Name,
				Message: "delegate marker does not resolve to a discriminator field",
			})
		}

		for j := range e.Fields {
			f := &e.Fields[j]
			for _, fk := range f.RelationForeignKeys() {
				if e.FieldByName(fk) == nil {
					problems = append(problems, Problem{
						Entity:  e.Name,
						Message: fmt.Sprintf("relation on field %q references unknown foreign key %q", f.Name, fk),
					})
				}
			}
		}
	}

	return problems
}

// onSupertypeCycle reports whether the entity can reach itself by following
// supertype references.
func onSupertypeCycle(g *Graph, e *Entity) bool {
	visited := make(map[string]bool)
	var walk func(name string) bool
	walk = func(name string) bool {
		cur := g.Entity(name)
		if cur == nil {
			return false
		}
		for _, super := range cur.Extends {
			if super == e.Name {
				return true
			}
			if visited[super] {
				continue
			}
			visited[super] = true
			if walk(super) {
				return true
			}
		}
		return false
	}
	return walk(e.Name)
}
