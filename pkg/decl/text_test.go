package decl_test

import (
	"strings"
	"testing"

	"github.com/delegen/delegen/pkg/decl"
)

func auxNamed(name string) bool {
	return strings.HasPrefix(name, "delegate_aux")
}

func TestStripProperties(t *testing.T) {
	t.Run("no match returns input unchanged", func(t *testing.T) {
		expr := "{ id: number;  kind : string }"
		if got := decl.StripProperties(expr, auxNamed); got != expr {
			t.Errorf("StripProperties = %q, want input unchanged", got)
		}
	})

	t.Run("strips top-level properties", func(t *testing.T) {
		expr := "{ delegate_aux_asset?: Asset; url: string }"
		want := "{ url: string }"
		if got := decl.StripProperties(expr, auxNamed); got != want {
			t.Errorf("StripProperties = %q, want %q", got, want)
		}
	})

	t.Run("strips nested properties", func(t *testing.T) {
		expr := "{ data: { delegate_aux_x: X; url: string }; skip: number }"
		want := "{ data: { url: string }; skip: number }"
		if got := decl.StripProperties(expr, auxNamed); got != want {
			t.Errorf("StripProperties = %q, want %q", got, want)
		}
	})

	t.Run("ignores separators inside strings and generics", func(t *testing.T) {
		expr := "{ kind: 'a;b'; list: Array<{ delegate_aux_y: Y }> }"
		want := "{ kind: 'a;b'; list: Array<{}> }"
		if got := decl.StripProperties(expr, auxNamed); got != want {
			t.Errorf("StripProperties = %q, want %q", got, want)
		}
	})

	t.Run("removing every property leaves empty literal", func(t *testing.T) {
		expr := "{ delegate_aux_a: A; delegate_aux_b: B }"
		if got := decl.StripProperties(expr, auxNamed); got != "{}" {
			t.Errorf("StripProperties = %q, want {}", got)
		}
	})

	t.Run("readonly and optional markers", func(t *testing.T) {
		expr := "{ readonly delegate_aux_a?: A; id: number }"
		want := "{ id: number }"
		if got := decl.StripProperties(expr, auxNamed); got != want {
			t.Errorf("StripProperties = %q, want %q", got, want)
		}
	})

	t.Run("exact name matching", func(t *testing.T) {
		expr := "{ asset: Asset; assetId: number }"
		want := "{ assetId: number }"
		got := decl.StripProperties(expr, func(n string) bool { return n == "asset" })
		if got != want {
			t.Errorf("StripProperties = %q, want %q", got, want)
		}
	})

	t.Run("comma separators", func(t *testing.T) {
		expr := "{ delegate_aux_a: A, url: string }"
		want := "{ url: string }"
		if got := decl.StripProperties(expr, auxNamed); got != want {
			t.Errorf("StripProperties = %q, want %q", got, want)
		}
	})

	t.Run("unbalanced input left untouched", func(t *testing.T) {
		expr := "{ delegate_aux_a: A"
		if got := decl.StripProperties(expr, auxNamed); got != expr {
			t.Errorf("StripProperties = %q, want input unchanged", got)
		}
	})
}
