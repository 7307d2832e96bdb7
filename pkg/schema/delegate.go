package schema

// HierarchyEntry pairs a delegate base entity with its direct subtypes.
// Multi-level hierarchies are represented by nested entries: a subtype that
// is itself a delegate base gets its own entry for the next level down.
type HierarchyEntry struct {
	Base     *Entity
	Subtypes []*Entity
}

// DelegateMarker returns the entity's delegate attribute, or nil.
func (e *Entity) DelegateMarker() *Attribute {
	return e.AttributeByName(AttrDelegate)
}

// IsDelegate reports whether the entity is a delegate base: it carries the
// delegate marker and at least one other entity lists it as a supertype.
func (g *Graph) IsDelegate(e *Entity) bool {
	if e == nil || e.DelegateMarker() == nil {
		return false
	}
	return len(g.subtypesOf(e.Name)) > 0
}

// NeedsProjection reports whether any entity in the graph is a delegate base
// with at least one subtype. When false, the generated declarations need no
// rewriting and the original client declarations are used as-is.
func NeedsProjection(g *Graph) bool {
	for i := range g.Entities {
		if g.IsDelegate(&g.Entities[i]) {
			return true
		}
	}
	return false
}

// BuildIndex inverts the subtype→supertype references in the graph into
// base→subtypes groupings: one entry per delegate base with direct children.
// Entry order follows the base entities' declaration order; subtype order
// within an entry follows the subtypes' declaration order.
func BuildIndex(g *Graph) []HierarchyEntry {
	var index []HierarchyEntry
	for i := range g.Entities {
		base := &g.Entities[i]
		if base.DelegateMarker() == nil {
			continue
		}
		subs := g.subtypesOf(base.Name)
		if len(subs) == 0 {
			continue
		}
		index = append(index, HierarchyEntry{Base: base, Subtypes: subs})
	}
	return index
}

// subtypesOf returns the entities that list the named entity as a direct
// supertype, in declaration order.
func (g *Graph) subtypesOf(name string) []*Entity {
	var subs []*Entity
	for i := range g.Entities {
		e := &g.Entities[i]
		for _, super := range e.Extends {
			if super == name {
				subs = append(subs, e)
				break
			}
		}
	}
	return subs
}

// DiscriminatorOf resolves the delegate marker's field reference on the given
// entity. Returns nil when the marker is absent, carries no field reference,
// or the reference does not resolve to one of the entity's own fields. A nil
// result is a recoverable condition: it degrades the affected hierarchy's
// rewrites, never the whole run.
func DiscriminatorOf(e *Entity) *Field {
	marker := e.DelegateMarker()
	if marker == nil || len(marker.Args) == 0 {
		return nil
	}
	refs := marker.Args[0].FieldRefs
	if len(refs) == 0 {
		return nil
	}
	return e.FieldByName(refs[0])
}

// DiscriminatorChain walks the supertype chain upward from the entity and
// collects one discriminator per delegate level, the entity itself included
// when it is a delegate base. An input type for a leaf entity may need
// exclusions contributed by several ancestor levels, so the chain spans the
// full hierarchy.
//
// Supertype references should form a DAG but are not structurally enforced
// upstream; the walk carries a visited set so malformed cyclic input
// terminates instead of recursing forever.
func DiscriminatorChain(g *Graph, e *Entity) []*Field {
	var chain []*Field
	visited := make(map[string]bool)
	collectDiscriminators(g, e, visited, &chain)
	return chain
}

// collectDiscriminators does the DFS for DiscriminatorChain. Unresolved
// discriminators on a level are skipped; the walk continues upward so one
// malformed level never hides exclusions contributed by its ancestors.
func collectDiscriminators(g *Graph, e *Entity, visited map[string]bool, chain *[]*Field) {
	if e == nil || visited[e.Name] {
		return
	}
	visited[e.Name] = true

	if g.IsDelegate(e) {
		if disc := DiscriminatorOf(e); disc != nil {
			*chain = append(*chain, disc)
		}
	}
	for _, super := range e.Extends {
		collectDiscriminators(g, g.Entity(super), visited, chain)
	}
}
