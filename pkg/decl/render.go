package decl

import (
	"fmt"
	"io"
	"strings"
)

// Render writes the document as a `.d.ts`-style declaration file. The output
// is a drop-in replacement for the external generator's own declaration file:
// same declaration order, same names, canonical formatting.
func (d *Document) Render(w io.Writer) error {
	var b strings.Builder
	for i := range d.Decls {
		renderDecl(&b, &d.Decls[i], 0)
	}
	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("writing declarations: %w", err)
	}
	return nil
}

func renderDecl(b *strings.Builder, d *Decl, depth int) {
	pad := strings.Repeat("  ", depth)
	switch d.Kind {
	case KindInterface:
		fmt.Fprintf(b, "%sexport interface %s {\n", pad, d.Name)
		renderMembers(b, d.Members, depth+1)
		fmt.Fprintf(b, "%s}\n", pad)

	case KindTypeAlias:
		if d.Members != nil {
			fmt.Fprintf(b, "%sexport type %s = {\n", pad, d.Name)
			renderMembers(b, d.Members, depth+1)
			fmt.Fprintf(b, "%s};\n", pad)
		} else {
			fmt.Fprintf(b, "%sexport type %s = %s;\n", pad, d.Name, d.Type)
		}

	case KindVariable:
		fmt.Fprintf(b, "%sexport const %s: %s;\n", pad, d.Name, d.Type)

	case KindClass:
		fmt.Fprintf(b, "%sexport class %s {\n", pad, d.Name)
		renderMembers(b, d.Members, depth+1)
		fmt.Fprintf(b, "%s}\n", pad)

	case KindModule:
		fmt.Fprintf(b, "%sexport namespace %s {\n", pad, d.Name)
		for i := range d.Decls {
			renderDecl(b, &d.Decls[i], depth+1)
		}
		fmt.Fprintf(b, "%s}\n", pad)
	}
}

func renderMembers(b *strings.Builder, members []Member, depth int) {
	pad := strings.Repeat("  ", depth)
	for _, m := range members {
		switch {
		case m.Method:
			// Type carries the signature after the name.
			fmt.Fprintf(b, "%s%s%s;\n", pad, m.Name, m.Type)
		case m.Optional:
			fmt.Fprintf(b, "%s%s?: %s;\n", pad, m.Name, m.Type)
		default:
			fmt.Fprintf(b, "%s%s: %s;\n", pad, m.Name, m.Type)
		}
	}
}
