package schema_test

import (
	"testing"

	"github.com/delegen/delegen/pkg/schema"
)

func TestGraphLookups(t *testing.T) {
	g := assetGraph()

	t.Run("entity by name", func(t *testing.T) {
		if e := g.Entity("Video"); e == nil || e.Name != "Video" {
			t.Fatalf("Entity(Video) = %v", e)
		}
		if g.Entity("Missing") != nil {
			t.Error("Entity(Missing) should be nil")
		}
	})

	t.Run("field by name", func(t *testing.T) {
		v := g.Entity("Video")
		if f := v.FieldByName("url"); f == nil || f.Type != "String" {
			t.Fatalf("FieldByName(url) = %v", f)
		}
		if v.FieldByName("nope") != nil {
			t.Error("FieldByName(nope) should be nil")
		}
	})

	t.Run("attribute argument by name", func(t *testing.T) {
		rel := g.Entity("Video").FieldByName("asset").AttributeByName(schema.AttrRelation)
		if rel == nil {
			t.Fatal("relation attribute missing")
		}
		arg := rel.Arg("references")
		if arg == nil || len(arg.FieldRefs) != 1 || arg.FieldRefs[0] != "id" {
			t.Errorf("references arg = %v", arg)
		}
		if rel.Arg("nope") != nil {
			t.Error("Arg(nope) should be nil")
		}
	})
}

func TestRelationForeignKeys(t *testing.T) {
	g := assetGraph()

	t.Run("resolves fields list", func(t *testing.T) {
		fks := g.Entity("Video").FieldByName("asset").RelationForeignKeys()
		if len(fks) != 1 || fks[0] != "assetId" {
			t.Errorf("RelationForeignKeys = %v, want [assetId]", fks)
		}
	})

	t.Run("no relation attribute", func(t *testing.T) {
		if fks := g.Entity("Video").FieldByName("url").RelationForeignKeys(); fks != nil {
			t.Errorf("RelationForeignKeys = %v, want nil", fks)
		}
	})

	t.Run("relation without fields argument", func(t *testing.T) {
		f := &schema.Field{
			Name: "owner",
			Attributes: []schema.Attribute{
				{Name: schema.AttrRelation, Args: []schema.AttributeArg{
					{Name: "references", FieldRefs: []string{"id"}},
				}},
			},
		}
		if fks := f.RelationForeignKeys(); fks != nil {
			t.Errorf("RelationForeignKeys = %v, want nil", fks)
		}
	})
}
