package decl_test

import (
	"reflect"
	"testing"

	"github.com/delegen/delegen/pkg/decl"
)

func sampleDoc() *decl.Document {
	return &decl.Document{
		Decls: []decl.Decl{
			{
				Kind: decl.KindModule,
				Name: "Prisma",
				Decls: []decl.Decl{
					{
						Kind: decl.KindInterface,
						Name: "AssetDelegate",
						Members: []decl.Member{
							{Name: "create", Type: "(args: AssetCreateArgs): Asset", Method: true},
							{Name: "findMany", Type: "(args?: AssetFindManyArgs): Asset[]", Method: true},
						},
					},
					{
						Kind: decl.KindTypeAlias,
						Name: "AssetCreateInput",
						Members: []decl.Member{
							{Name: "id", Type: "number"},
							{Name: "kind", Type: "string", Optional: true},
						},
					},
					{Kind: decl.KindTypeAlias, Name: "$AssetPayload", Type: "{ scalars: { id: number } }"},
					{Kind: decl.KindVariable, Name: "AssetScalarFieldEnum", Type: "{ id: 'id'; kind: 'kind' }"},
				},
			},
			{Kind: decl.KindTypeAlias, Name: "Decimal", Type: "string | number"},
		},
	}
}

func TestDocumentLookups(t *testing.T) {
	doc := sampleDoc()

	t.Run("module by name", func(t *testing.T) {
		if m := doc.Module("Prisma"); m == nil {
			t.Fatal("Module(Prisma) = nil")
		}
		if doc.Module("Decimal") != nil {
			t.Error("a type alias must not resolve as a module")
		}
	})

	t.Run("decls of kind preserve order", func(t *testing.T) {
		aliases := doc.Module("Prisma").DeclsOfKind(decl.KindTypeAlias)
		if len(aliases) != 2 || aliases[0].Name != "AssetCreateInput" || aliases[1].Name != "$AssetPayload" {
			t.Errorf("DeclsOfKind returned wrong set: %v", aliases)
		}
	})

	t.Run("decl by name and kind", func(t *testing.T) {
		m := doc.Module("Prisma")
		if d := m.Decl("AssetDelegate", decl.KindInterface); d == nil {
			t.Fatal("Decl(AssetDelegate, interface) = nil")
		}
		if m.Decl("AssetDelegate", decl.KindTypeAlias) != nil {
			t.Error("kind must participate in identity")
		}
	})

	t.Run("member lookup", func(t *testing.T) {
		iface := doc.Module("Prisma").Decl("AssetDelegate", decl.KindInterface)
		if iface.Member("create") == nil {
			t.Error("Member(create) = nil")
		}
		if iface.Member("upsert") != nil {
			t.Error("Member(upsert) should be nil")
		}
	})
}

func TestRemoveMembers(t *testing.T) {
	t.Run("removes and preserves order", func(t *testing.T) {
		d := &decl.Decl{Members: []decl.Member{
			{Name: "a"}, {Name: "b"}, {Name: "c"},
		}}
		removed := d.RemoveMembers(func(m decl.Member) bool { return m.Name == "b" })
		if !removed {
			t.Error("RemoveMembers should report removal")
		}
		if len(d.Members) != 2 || d.Members[0].Name != "a" || d.Members[1].Name != "c" {
			t.Errorf("Members = %v", d.Members)
		}
	})

	t.Run("absent target is a no-op", func(t *testing.T) {
		d := &decl.Decl{Members: []decl.Member{{Name: "a"}}}
		if d.RemoveMemberNamed("missing") {
			t.Error("removing an absent member should report false")
		}
		if len(d.Members) != 1 {
			t.Errorf("Members = %v", d.Members)
		}
	})
}

func TestReplaceInType(t *testing.T) {
	d := &decl.Decl{Type: "{ scalars: { id: number } }"}
	if !d.ReplaceInType("{ id: number }", "{ id: number; kind: string }") {
		t.Fatal("ReplaceInType should succeed")
	}
	if d.Type != "{ scalars: { id: number; kind: string } }" {
		t.Errorf("Type = %q", d.Type)
	}
	if d.ReplaceInType("absent", "x") {
		t.Error("ReplaceInType with absent substring should report false")
	}
}

func TestClone(t *testing.T) {
	doc := sampleDoc()
	clone := doc.Clone()

	if !reflect.DeepEqual(doc, clone) {
		t.Fatal("clone should deep-equal the original")
	}

	clone.Module("Prisma").Decls[0].Members[0].Name = "mutated"
	if doc.Module("Prisma").Decls[0].Members[0].Name != "create" {
		t.Error("mutating the clone leaked into the original")
	}
}

func TestParseEncodeRoundTrip(t *testing.T) {
	doc := sampleDoc()
	encoded, err := doc.Encode()
	if err != nil {
		t.Fatalf("Encode error: %v", err)
	}

	parsed, err := decl.Parse(encoded)
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if !reflect.DeepEqual(doc, parsed) {
		t.Error("round-trip changed the document")
	}
}

func TestParseInvalid(t *testing.T) {
	if _, err := decl.Parse([]byte("{not json")); err == nil {
		t.Error("Parse should fail on invalid content")
	}
}
