// Package project implements the delegate hierarchy projection over a
// generated client's declaration tree.
//
// The external client generator knows nothing about polymorphic inheritance:
// it is handed a flattened schema in which every delegate base is joined to
// its concrete subtypes through synthetic back-relations carrying a reserved
// name prefix. This package rewrites the declarations the generator produced
// so the polymorphic hierarchy is exposed minimally and correctly, and all
// synthetic bookkeeping disappears.
//
// Six independent rewrites are applied per matching declaration:
//
//	(a) aux-field stripping        - synthetic members never survive
//	(b) capability stripping       - delegates cannot be created directly
//	(c) discriminator exclusion    - discriminators are system-assigned
//	(d) mutation-capability strip  - (b) at the nested-relation level
//	(e) delegate-relation strip    - implicit back-relations and their FKs
//	(f) payload union synthesis    - polymorphic results narrow by discriminator
//
// Each rewrite is local to one declaration. A missing expected member during
// a subtractive step is a no-op; a malformed discriminator degrades only
// union synthesis for its own hierarchy. Declarations the hierarchy does not
// touch are reproduced verbatim.
package project

import (
	"fmt"
	"strings"

	"github.com/delegen/delegen/pkg/decl"
	"github.com/delegen/delegen/pkg/schema"
)

// Defaults for the external generator's naming contract.
const (
	// DefaultNamespace is the module containing the CRUD declarations.
	DefaultNamespace = "Prisma"

	// DefaultAuxPrefix is the reserved prefix of the synthetic
	// subtype-to-base back-reference machinery.
	DefaultAuxPrefix = "delegate_aux"
)

// Config holds the projection's naming contract with the external generator.
type Config struct {
	// Namespace is the name of the module declaration holding the CRUD
	// operation types. Defaults to DefaultNamespace.
	Namespace string

	// AuxPrefix is the reserved synthetic member prefix. Defaults to
	// DefaultAuxPrefix.
	AuxPrefix string
}

func (c *Config) namespace() string {
	if c == nil || c.Namespace == "" {
		return DefaultNamespace
	}
	return c.Namespace
}

func (c *Config) auxPrefix() string {
	if c == nil || c.AuxPrefix == "" {
		return DefaultAuxPrefix
	}
	return c.AuxPrefix
}

// Warning reports a recoverable, per-hierarchy degradation: the named
// entity's rewrite could not complete safely and its declaration was left in
// pre-rewrite form.
type Warning struct {
	Entity string
	Err    error
}

func (w Warning) String() string {
	return fmt.Sprintf("%s: %v", w.Entity, w.Err)
}

// Projector applies the delegate hierarchy projection to declaration trees.
// Build one per generator run; the hierarchy index is resolved once at
// construction and immutable thereafter.
type Projector struct {
	graph     *schema.Graph
	index     []schema.HierarchyEntry
	delegates map[string]*schema.HierarchyEntry
	names     *names
	namespace string
	auxPrefix string
}

// New resolves the graph's delegate hierarchy and returns a projector for it.
func New(g *schema.Graph, cfg *Config) *Projector {
	p := &Projector{
		graph:     g,
		index:     schema.BuildIndex(g),
		delegates: make(map[string]*schema.HierarchyEntry),
		names:     newNames(g, cfg.auxPrefix()),
		namespace: cfg.namespace(),
		auxPrefix: cfg.auxPrefix(),
	}
	for i := range p.index {
		p.delegates[p.index[i].Base.Name] = &p.index[i]
	}
	return p
}

// NeedsProjection reports whether the graph has any delegate hierarchy.
// When false, Transform is the identity and callers can skip it entirely.
func (p *Projector) NeedsProjection() bool {
	return len(p.index) > 0
}

// Transform produces a new declaration tree with the projection applied.
// The input document is not modified. Untouched declarations are copied
// verbatim in one pass, order preserved; warnings carry the per-hierarchy
// degradations encountered.
func (p *Projector) Transform(doc *decl.Document) (*decl.Document, []Warning) {
	out := doc.Clone()

	// (a) applies unconditionally, hierarchy or not, everywhere.
	p.stripAux(out.Decls)

	ns := out.Module(p.namespace)
	if ns == nil || len(p.index) == 0 {
		return out, nil
	}

	var warnings []Warning
	for i := range ns.Decls {
		d := &ns.Decls[i]
		switch d.Kind {
		case decl.KindInterface:
			p.stripDelegateCapabilities(d)
		case decl.KindTypeAlias:
			p.excludeDiscriminators(d)
			p.stripDelegateMutations(d)
			p.stripAuxRelation(d)
			if w := p.synthesizePayloadUnion(d); w != nil {
				warnings = append(warnings, *w)
			}
		}
	}

	return out, warnings
}

// stripAux removes every member/property carrying the reserved synthetic
// prefix, in interface and class members, type alias shapes and expressions,
// and variable annotations, recursing through nested modules.
func (p *Projector) stripAux(decls []decl.Decl) {
	isAux := func(name string) bool { return strings.HasPrefix(name, p.auxPrefix) }

	for i := range decls {
		d := &decls[i]
		switch d.Kind {
		case decl.KindInterface, decl.KindClass:
			d.RemoveMembers(func(m decl.Member) bool { return isAux(m.Name) })
			for j := range d.Members {
				d.Members[j].Type = decl.StripProperties(d.Members[j].Type, isAux)
			}
		case decl.KindTypeAlias:
			d.RemoveMembers(func(m decl.Member) bool { return isAux(m.Name) })
			for j := range d.Members {
				d.Members[j].Type = decl.StripProperties(d.Members[j].Type, isAux)
			}
			d.Type = decl.StripProperties(d.Type, isAux)
		case decl.KindVariable:
			d.Type = decl.StripProperties(d.Type, isAux)
		case decl.KindModule:
			p.stripAux(d.Decls)
		}
	}
}

// removeProperty deletes a named property from a declaration, whichever form
// it takes: a structural member or a property inside the textual expression.
// Absent properties are a no-op.
func removeProperty(d *decl.Decl, name string) {
	if d.Members != nil {
		d.RemoveMemberNamed(name)
		return
	}
	if d.Type != "" {
		d.Type = decl.StripProperties(d.Type, func(n string) bool { return n == name })
	}
}
