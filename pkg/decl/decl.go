// Package decl provides the declaration tree document model for delegen.
//
// The external client generator emits its type declarations as a structured
// document: an ordered list of interfaces, type aliases, variables, classes,
// and nested modules. delegen owns an explicit typed model of that document
// rather than depending on a host compiler API, so the projection pass can
// get and set declarations structurally.
//
// Declaration identity is name + kind only. Members are ordered; type
// expressions are carried as searchable text that supports literal substring
// patching and property-level surgery (StripProperties).
//
// The document round-trips through JSON (Parse/Encode) and renders to a
// `.d.ts`-style declaration file (Render) for the persisted artifact.
package decl

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// Kind identifies a declaration category.
type Kind string

// Declaration categories in the document model.
const (
	KindInterface Kind = "interface"
	KindTypeAlias Kind = "typeAlias"
	KindVariable  Kind = "variable"
	KindClass     Kind = "class"
	KindModule    Kind = "module"
)

// Document is an ordered declaration tree.
type Document struct {
	Decls []Decl `json:"decls"`
}

// Decl is a single declaration node.
//
// Interfaces and classes carry Members. Type aliases carry either Members
// (record-shaped aliases the generator emits structurally) or Type (any
// other right-hand side, as searchable text). Variables carry Type as their
// annotation. Modules carry nested Decls.
type Decl struct {
	Kind    Kind     `json:"kind"`
	Name    string   `json:"name"`
	Members []Member `json:"members,omitempty"`
	Type    string   `json:"type,omitempty"`
	Decls   []Decl   `json:"decls,omitempty"`
}

// Member is a named property or method on a declaration.
//
// For methods, Type holds the full signature text after the name, e.g.
// "(args: AssetCreateArgs): Asset".
type Member struct {
	Name     string `json:"name"`
	Type     string `json:"type,omitempty"`
	Optional bool   `json:"optional,omitempty"`
	Method   bool   `json:"method,omitempty"`
}

// Parse decodes a declaration document from JSON content.
func Parse(content []byte) (*Document, error) {
	var doc Document
	if err := json.Unmarshal(content, &doc); err != nil {
		return nil, fmt.Errorf("parsing declaration document: %w", err)
	}
	return &doc, nil
}

// Load reads and decodes a declaration document file.
func Load(path string) (*Document, error) {
	content, err := os.ReadFile(path) //nolint:gosec // path is from trusted source
	if err != nil {
		return nil, fmt.Errorf("reading declaration document: %w", err)
	}
	return Parse(content)
}

// Encode serializes the document as indented JSON.
func (d *Document) Encode() ([]byte, error) {
	content, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding declaration document: %w", err)
	}
	return append(content, '\n'), nil
}

// Module returns the top-level module declaration with the given name, or nil.
func (d *Document) Module(name string) *Decl {
	for i := range d.Decls {
		if d.Decls[i].Kind == KindModule && d.Decls[i].Name == name {
			return &d.Decls[i]
		}
	}
	return nil
}

// DeclsOfKind returns the module's direct children of the given kind,
// preserving declaration order.
func (m *Decl) DeclsOfKind(kind Kind) []*Decl {
	var out []*Decl
	for i := range m.Decls {
		if m.Decls[i].Kind == kind {
			out = append(out, &m.Decls[i])
		}
	}
	return out
}

// Decl returns the module's direct child with the given name and kind, or nil.
func (m *Decl) Decl(name string, kind Kind) *Decl {
	for i := range m.Decls {
		if m.Decls[i].Kind == kind && m.Decls[i].Name == name {
			return &m.Decls[i]
		}
	}
	return nil
}

// Member returns the declaration's member with the given name, or nil.
func (d *Decl) Member(name string) *Member {
	for i := range d.Members {
		if d.Members[i].Name == name {
			return &d.Members[i]
		}
	}
	return nil
}

// RemoveMembers deletes every member matching the predicate, preserving the
// order of the rest. Returns true if any member was removed. A predicate that
// matches nothing is a no-op, not an error: the member may legitimately be
// absent from a given instantiation of a generic shape.
func (d *Decl) RemoveMembers(match func(Member) bool) bool {
	kept := d.Members[:0]
	removed := false
	for _, m := range d.Members {
		if match(m) {
			removed = true
			continue
		}
		kept = append(kept, m)
	}
	d.Members = kept
	return removed
}

// RemoveMemberNamed deletes the member with the given name, if present.
func (d *Decl) RemoveMemberNamed(name string) bool {
	return d.RemoveMembers(func(m Member) bool { return m.Name == name })
}

// ReplaceInType replaces the first occurrence of a literal substring within
// the declaration's type expression. Returns true if a replacement happened.
func (d *Decl) ReplaceInType(old, replacement string) bool {
	idx := strings.Index(d.Type, old)
	if idx < 0 {
		return false
	}
	d.Type = d.Type[:idx] + replacement + d.Type[idx+len(old):]
	return true
}

// Clone returns a deep copy of the declaration.
func (d Decl) Clone() Decl {
	out := d
	if d.Members != nil {
		out.Members = append([]Member(nil), d.Members...)
	}
	if d.Decls != nil {
		out.Decls = make([]Decl, len(d.Decls))
		for i := range d.Decls {
			out.Decls[i] = d.Decls[i].Clone()
		}
	}
	return out
}

// Clone returns a deep copy of the document.
func (d *Document) Clone() *Document {
	out := &Document{Decls: make([]Decl, len(d.Decls))}
	for i := range d.Decls {
		out.Decls[i] = d.Decls[i].Clone()
	}
	return out
}
