package schema_test

import (
	"strings"
	"testing"

	"github.com/delegen/delegen/pkg/schema"
)

func TestValidate(t *testing.T) {
	t.Run("clean graph", func(t *testing.T) {
		if problems := schema.Validate(assetGraph()); len(problems) != 0 {
			t.Errorf("Validate = %v, want none", problems)
		}
	})

	t.Run("dangling supertype", func(t *testing.T) {
		g := &schema.Graph{Entities: []schema.Entity{
			{Name: "Video", Extends: []string{"Asset"}},
		}}
		problems := schema.Validate(g)
		if len(problems) != 1 || !strings.Contains(problems[0].Message, `unknown entity "Asset"`) {
			t.Errorf("Validate = %v", problems)
		}
	})

	t.Run("supertype cycle", func(t *testing.T) {
		g := &schema.Graph{Entities: []schema.Entity{
			{Name: "A", Extends: []string{"B"}},
			{Name: "B", Extends: []string{"A"}},
		}}
		problems := schema.Validate(g)
		if len(problems) != 2 {
			t.Fatalf("Validate found %d problems, want 2 (one per entity on the cycle)", len(problems))
		}
		for _, p := range problems {
			if !strings.Contains(p.Message, "cycle") {
				t.Errorf("unexpected problem: %v", p)
			}
		}
	})

	t.Run("unresolved discriminator", func(t *testing.T) {
		g := &schema.Graph{Entities: []schema.Entity{
			{
				Name:   "Asset",
				Fields: []schema.Field{{Name: "id", Type: "Int"}},
				Attributes: []schema.Attribute{
					{Name: schema.AttrDelegate, Args: []schema.AttributeArg{{FieldRefs: []string{"missing"}}}},
				},
			},
		}}
		problems := schema.Validate(g)
		if len(problems) != 1 || !strings.Contains(problems[0].Message, "discriminator") {
			t.Errorf("Validate = %v", problems)
		}
	})

	t.Run("unknown foreign key", func(t *testing.T) {
		g := &schema.Graph{Entities: []schema.Entity{
			{
				Name: "Video",
				Fields: []schema.Field{
					{
						Name: "asset",
						Type: "Asset",
						Attributes: []schema.Attribute{
							{Name: schema.AttrRelation, Args: []schema.AttributeArg{
								{Name: "fields", FieldRefs: []string{"assetId"}},
							}},
						},
					},
				},
			},
		}}
		problems := schema.Validate(g)
		if len(problems) != 1 || !strings.Contains(problems[0].Message, `unknown foreign key "assetId"`) {
			t.Errorf("Validate = %v", problems)
		}
	})

	t.Run("reports all problems at once", func(t *testing.T) {
		g := &schema.Graph{Entities: []schema.Entity{
			{Name: "A", Extends: []string{"Gone"}},
			{
				Name:       "B",
				Attributes: []schema.Attribute{{Name: schema.AttrDelegate}},
				Extends:    []string{"Missing"},
			},
		}}
		if problems := schema.Validate(g); len(problems) != 3 {
			t.Errorf("Validate found %d problems, want 3: %v", len(problems), problems)
		}
	})
}
