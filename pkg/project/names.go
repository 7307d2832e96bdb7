package project

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/delegen/delegen/pkg/schema"
)

// Declaration names are matched to schema entities purely by the naming
// conventions of the external client generator: <Entity>Delegate,
// <Entity>(Unchecked)?(Create|Update)…Input, $<Entity>Payload, and the
// "…Without<relation>Input" nested variants. The scheme is a stable but
// unparsed contract; patterns below are the whole of our dependence on it.

// inputSuffixRe matches the part of a create/update input type alias name
// that follows the entity name.
var inputSuffixRe = regexp.MustCompile(`^(?:Unchecked)?(?:Create|Update)\w*Input$`)

// payloadRe matches payload aliases: $<Entity>Payload.
var payloadRe = regexp.MustCompile(`^\$(\w+)Payload$`)

// delegateIfaceRe matches operation interfaces: <Entity>Delegate.
var delegateIfaceRe = regexp.MustCompile(`^(\w+)Delegate$`)

// unionArmRe matches one arm of a synthesized payload union. Used to detect
// an already-projected payload alias so re-running the pass is a no-op.
var unionArmRe = regexp.MustCompile(`^\(\$\w+Payload & \{ scalars: \{ \w+: '[^']*' \} \}\)$`)

// names resolves declaration names against the schema graph.
type names struct {
	// entity names sorted longest-first so "VideoClip..." never resolves
	// to an entity named "Video" when "VideoClip" exists.
	byLength []string
	entities map[string]*schema.Entity

	// withoutAuxRe matches the nested "create/update without the aux
	// back-relation" input variant:
	//   …(Create|Update)Without<AuxPrefix>_<Model>_<RelationField>_<Concrete>Input
	// The aux prefix appears capitalized because the generator title-cases
	// the relation name when composing the "Without" segment.
	withoutAuxRe *regexp.Regexp
}

func newNames(g *schema.Graph, auxPrefix string) *names {
	n := &names{entities: make(map[string]*schema.Entity, len(g.Entities))}
	for i := range g.Entities {
		e := &g.Entities[i]
		n.entities[e.Name] = e
		n.byLength = append(n.byLength, e.Name)
	}
	sort.Slice(n.byLength, func(i, j int) bool {
		return len(n.byLength[i]) > len(n.byLength[j])
	})

	n.withoutAuxRe = regexp.MustCompile(fmt.Sprintf(
		`(?:Create|Update)Without%s_(\w+?)_(\w+?)_(\w+?)Input$`,
		regexp.QuoteMeta(upperFirst(auxPrefix)),
	))

	return n
}

// inputEntity resolves a create/update input alias name to its entity.
// Returns nil when the name is not an input alias or no entity prefixes it.
func (n *names) inputEntity(declName string) *schema.Entity {
	for _, name := range n.byLength {
		if !strings.HasPrefix(declName, name) {
			continue
		}
		if inputSuffixRe.MatchString(declName[len(name):]) {
			return n.entities[name]
		}
	}
	return nil
}

// payloadEntity resolves a $<Entity>Payload alias name to its entity.
func (n *names) payloadEntity(declName string) *schema.Entity {
	m := payloadRe.FindStringSubmatch(declName)
	if m == nil {
		return nil
	}
	return n.entities[m[1]]
}

// delegateIfaceEntity resolves an <Entity>Delegate interface name to its entity.
func (n *names) delegateIfaceEntity(declName string) *schema.Entity {
	m := delegateIfaceRe.FindStringSubmatch(declName)
	if m == nil {
		return nil
	}
	return n.entities[m[1]]
}

// withoutAuxRelation extracts (model, relation field, concrete entity) from a
// nested aux-relation input alias name. ok is false when the name is not one.
func (n *names) withoutAuxRelation(declName string) (model, relField, concrete string, ok bool) {
	m := n.withoutAuxRe.FindStringSubmatch(declName)
	if m == nil {
		return "", "", "", false
	}
	return m[1], m[2], m[3], true
}

// isProjectedPayload reports whether a payload alias expression is already a
// union over subtype payload intersections, i.e. union synthesis already ran.
func isProjectedPayload(expr string) bool {
	if expr == "" {
		return false
	}
	for _, arm := range strings.Split(expr, " | ") {
		if !unionArmRe.MatchString(arm) {
			return false
		}
	}
	return true
}

func upperFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
