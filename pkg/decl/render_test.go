package decl_test

import (
	"bytes"
	"testing"

	"github.com/delegen/delegen/pkg/decl"
)

func TestRender(t *testing.T) {
	doc := &decl.Document{
		Decls: []decl.Decl{
			{Kind: decl.KindTypeAlias, Name: "Decimal", Type: "string | number"},
			{
				Kind: decl.KindModule,
				Name: "Prisma",
				Decls: []decl.Decl{
					{
						Kind: decl.KindInterface,
						Name: "AssetDelegate",
						Members: []decl.Member{
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
					{Kind: decl.KindVariable, Name: "AssetScalarFieldEnum", Type: "{ id: 'id' }"},
					{
						Kind:    decl.KindClass,
						Name:    "AssetClient",
						Members: []decl.Member{{Name: "then", Type: "(onfulfilled?: any): any", Method: true}},
					},
				},
			},
		},
	}

	var buf bytes.Buffer
	if err := doc.Render(&buf); err != nil {
		t.Fatalf("Render error: %v", err)
	}

	want := `export type Decimal = string | number;
export namespace Prisma {
  export interface AssetDelegate {
    findMany(args?: AssetFindManyArgs): Asset[];
  }
  export type AssetCreateInput = {
    id: number;
    kind?: string;
  };
  export const AssetScalarFieldEnum: { id: 'id' };
  export class AssetClient {
    then(onfulfilled?: any): any;
  }
}
`
	if buf.String() != want {
		t.Errorf("Render output mismatch:\ngot:\n%s\nwant:\n%s", buf.String(), want)
	}
}
