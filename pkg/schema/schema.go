// Package schema provides the resolved schema graph and delegate hierarchy
// resolution for delegen.
//
// This package contains the data structures and algorithms that sit between
// the schema toolchain (which resolves the DSL into a graph document) and the
// projection pass (which rewrites the generated client's type declarations).
//
// # Package Responsibilities
//
// The schema package handles two concerns:
//
//  1. Graph representation (Graph, Entity, Field, Attribute) - the resolved
//     entity-relationship model handed to generators
//  2. Delegate hierarchy resolution (BuildIndex, DiscriminatorChain) - the
//     base→subtype index the projection pass consumes
//
// # Key Types
//
// Entity represents a resolved schema element. Each entity has ordered
// fields, attributes (including the optional delegate marker), and an ordered
// list of supertype references. For example:
//
//	model Asset {          // @@delegate(kind)
//	  id   Int
//	  kind String
//	}
//	model Video extends Asset {
//	  url String
//	}
//
// HierarchyEntry pairs a delegate base with its direct concrete subtypes.
// The index is built once per generator run and is immutable thereafter.
//
// # Relationship to Other Packages
//
// The schema package has no knowledge of declaration trees. The projection
// pass (pkg/project) consumes the hierarchy index together with pkg/decl
// documents; pkg/generator wires the two together for a run.
package schema

// Attribute argument names recognized on relation attributes.
const (
	// AttrDelegate marks an entity as an abstract delegate base. Its single
	// argument references the entity's own discriminator field.
	AttrDelegate = "delegate"

	// AttrRelation carries relation metadata on a field. Its "fields" and
	// "references" arguments list the foreign-key scalar fields and the
	// referenced fields on the other side.
	AttrRelation = "relation"
)

// Graph is the resolved schema graph: an ordered list of entities as emitted
// by the schema toolchain. Entity order is the declaration order in the
// source schema and is preserved through hierarchy resolution.
type Graph struct {
	Entities []Entity `json:"entities"`
}

// Entity represents a resolved schema element.
type Entity struct {
	Name       string      `json:"name"`
	Fields     []Field     `json:"fields"`
	Attributes []Attribute `json:"attributes,omitempty"`

	// Extends lists the names of this entity's direct supertypes, in
	// declaration order. Supertype references should form a DAG; the
	// resolver guards against cycles rather than assuming well-formedness.
	Extends []string `json:"extends,omitempty"`
}

// Field represents a field on an entity.
type Field struct {
	Name       string      `json:"name"`
	Type       string      `json:"type"`
	Optional   bool        `json:"optional,omitempty"`
	List       bool        `json:"list,omitempty"`
	Attributes []Attribute `json:"attributes,omitempty"`
}

// Attribute represents an attribute on an entity or field, e.g. the delegate
// marker or a relation attribute.
type Attribute struct {
	Name string         `json:"name"`
	Args []AttributeArg `json:"args,omitempty"`
}

// AttributeArg is a single attribute argument. FieldRefs carries field-name
// references for arguments like delegate(<field>) or relation fields/references
// lists; Value carries plain literal arguments.
type AttributeArg struct {
	Name      string   `json:"name,omitempty"`
	Value     string   `json:"value,omitempty"`
	FieldRefs []string `json:"fieldRefs,omitempty"`
}

// Entity returns the entity with the given name, or nil if absent.
func (g *Graph) Entity(name string) *Entity {
	for i := range g.Entities {
		if g.Entities[i].Name == name {
			return &g.Entities[i]
		}
	}
	return nil
}

// FieldByName returns the entity's field with the given name, or nil.
func (e *Entity) FieldByName(name string) *Field {
	for i := range e.Fields {
		if e.Fields[i].Name == name {
			return &e.Fields[i]
		}
	}
	return nil
}

// AttributeByName returns the entity's attribute with the given name, or nil.
func (e *Entity) AttributeByName(name string) *Attribute {
	for i := range e.Attributes {
		if e.Attributes[i].Name == name {
			return &e.Attributes[i]
		}
	}
	return nil
}

// AttributeByName returns the field's attribute with the given name, or nil.
func (f *Field) AttributeByName(name string) *Attribute {
	for i := range f.Attributes {
		if f.Attributes[i].Name == name {
			return &f.Attributes[i]
		}
	}
	return nil
}

// Arg returns the attribute argument with the given name, or nil. The empty
// name matches the first positional (unnamed) argument.
func (a *Attribute) Arg(name string) *AttributeArg {
	for i := range a.Args {
		if a.Args[i].Name == name {
			return &a.Args[i]
		}
	}
	return nil
}

// RelationForeignKeys resolves the foreign-key scalar field names declared in
// the field's relation attribute ("fields" argument). Returns nil when the
// field carries no relation attribute or the attribute has no fields list.
func (f *Field) RelationForeignKeys() []string {
	rel := f.AttributeByName(AttrRelation)
	if rel == nil {
		return nil
	}
	arg := rel.Arg("fields")
	if arg == nil {
		return nil
	}
	return arg.FieldRefs
}
