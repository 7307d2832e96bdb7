package project

import (
	"fmt"
	"strings"

	"github.com/delegen/delegen"
	"github.com/delegen/delegen/pkg/decl"
	"github.com/delegen/delegen/pkg/schema"
)

// Direct-instantiation capabilities a delegate base must not expose: rows of
// a delegate only come into existence through a concrete subtype.
var delegateCapabilities = []string{"create", "createMany", "upsert"}

// Nested-relation mutation properties a delegate input must not expose.
// Same reasoning as the capability strip, one level down.
var delegateMutations = []string{"create", "connectOrCreate", "upsert"}

// stripDelegateCapabilities is rewrite (b): on the operations interface
// <Entity>Delegate of a delegate base, remove the create, createMany, and
// upsert methods.
func (p *Projector) stripDelegateCapabilities(d *decl.Decl) {
	entity := p.names.delegateIfaceEntity(d.Name)
	if entity == nil || p.delegates[entity.Name] == nil {
		return
	}
	for _, capability := range delegateCapabilities {
		d.RemoveMemberNamed(capability)
	}
}

// excludeDiscriminators is rewrite (c): on create/update input aliases,
// remove the property for each discriminator in the entity's delegate chain.
// Discriminators are assigned by the system from which concrete type is
// being created, never supplied by the client - at any level of a
// multi-level hierarchy.
func (p *Projector) excludeDiscriminators(d *decl.Decl) {
	entity := p.names.inputEntity(d.Name)
	if entity == nil {
		return
	}
	for _, disc := range schema.DiscriminatorChain(p.graph, entity) {
		removeProperty(d, disc.Name)
	}
}

// stripDelegateMutations is rewrite (d): on a delegate base's create/update
// input aliases, remove the create, connectOrCreate, and upsert properties.
func (p *Projector) stripDelegateMutations(d *decl.Decl) {
	entity := p.names.inputEntity(d.Name)
	if entity == nil || p.delegates[entity.Name] == nil {
		return
	}
	for _, mutation := range delegateMutations {
		removeProperty(d, mutation)
	}
}

// stripAuxRelation is rewrite (e): on a concrete entity's "create/update
// without the aux back-relation" input variant, remove the relation property
// itself and every foreign-key scalar its relation attribute declares. Both
// are implicit, derived from the entity's own identity, and must never be
// independently settable.
func (p *Projector) stripAuxRelation(d *decl.Decl) {
	model, relField, concrete, ok := p.names.withoutAuxRelation(d.Name)
	if !ok {
		return
	}

	removeProperty(d, relField)

	// The relation attribute lives on the concrete entity's relation field;
	// fall back to the base in case the generator flattened it there.
	entity := p.graph.Entity(concrete)
	if entity == nil || entity.FieldByName(relField) == nil {
		entity = p.graph.Entity(model)
	}
	if entity == nil {
		return
	}
	field := entity.FieldByName(relField)
	if field == nil {
		return
	}
	for _, fk := range field.RelationForeignKeys() {
		removeProperty(d, fk)
	}
}

// synthesizePayloadUnion is rewrite (f), the sole constructive one: replace a
// delegate's flat $<Entity>Payload record with a union over the concrete
// subtype payloads, each intersected with a scalars literal pinning the
// discriminator to the subtype's name. This is what lets a consumer narrow a
// polymorphic query result by testing the discriminator value.
//
// Returns a warning (and leaves the alias untouched) when the delegate's
// discriminator does not resolve; other hierarchies are unaffected. Running
// the rewrite on an already-synthesized union is a no-op.
func (p *Projector) synthesizePayloadUnion(d *decl.Decl) *Warning {
	entity := p.names.payloadEntity(d.Name)
	if entity == nil {
		return nil
	}
	entry := p.delegates[entity.Name]
	if entry == nil {
		return nil
	}
	if d.Members == nil && isProjectedPayload(d.Type) {
		return nil
	}

	disc := schema.DiscriminatorOf(entry.Base)
	if disc == nil {
		return &Warning{
			Entity: entity.Name,
			Err:    fmt.Errorf("%w: payload union for %s not synthesized", delegen.ErrMalformedDelegate, entity.Name),
		}
	}

	arms := make([]string, 0, len(entry.Subtypes))
	for _, sub := range entry.Subtypes {
		arms = append(arms, fmt.Sprintf("($%sPayload & { scalars: { %s: '%s' } })", sub.Name, disc.Name, sub.Name))
	}

	d.Members = nil
	d.Type = strings.Join(arms, " | ")
	return nil
}
