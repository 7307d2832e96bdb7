package decl

import (
	"regexp"
	"strings"
)

// propNameRe extracts the property name at the start of an object-literal
// property, tolerating readonly modifiers and optional markers.
var propNameRe = regexp.MustCompile(`^\s*(?:readonly\s+)?([A-Za-z_$][A-Za-z0-9_$]*)\s*\??\s*:`)

// StripProperties removes, from every object literal inside the type
// expression, each property whose name matches. The expression is returned
// unchanged (same bytes) when nothing matches, so declarations the caller
// does not need to touch stay verbatim.
//
// The scanner tracks brace/bracket/paren/generic nesting and string literals;
// it does not perform semantic type resolution. The generated shapes it
// operates on are a versioned but unparsed contract.
func StripProperties(expr string, match func(name string) bool) string {
	out, changed := rewriteObjects(expr, match)
	if !changed {
		return expr
	}
	return out
}

// rewriteObjects walks the expression, rewriting each object literal body.
func rewriteObjects(expr string, match func(name string) bool) (string, bool) {
	var b strings.Builder
	changed := false
	i := 0
	for i < len(expr) {
		c := expr[i]
		if c == '{' {
			close := matchingBrace(expr, i)
			if close < 0 {
				// Unbalanced input: leave the rest untouched.
				b.WriteString(expr[i:])
				return b.String(), changed
			}
			body := expr[i+1 : close]
			rewritten, bodyChanged := rewriteBody(body, match)
			if bodyChanged {
				changed = true
				b.WriteString(rewritten)
			} else {
				b.WriteString(expr[i : close+1])
			}
			i = close + 1
			continue
		}
		b.WriteByte(c)
		i++
	}
	return b.String(), changed
}

// rewriteBody splits an object-literal body into properties, drops matching
// ones, and recurses into the survivors for nested object literals.
func rewriteBody(body string, match func(name string) bool) (string, bool) {
	props := splitProps(body)
	changed := false
	kept := make([]string, 0, len(props))
	for _, p := range props {
		if m := propNameRe.FindStringSubmatch(p); m != nil && match(m[1]) {
			changed = true
			continue
		}
		inner, innerChanged := rewriteObjects(p, match)
		if innerChanged {
			changed = true
			kept = append(kept, strings.TrimSpace(inner))
		} else {
			kept = append(kept, strings.TrimSpace(p))
		}
	}
	if !changed {
		return "", false
	}
	if len(kept) == 0 {
		return "{}", true
	}
	return "{ " + strings.Join(kept, "; ") + " }", true
}

// splitProps splits an object-literal body at top-level ';' and ',' property
// separators, keeping nested structures and string literals intact.
func splitProps(body string) []string {
	var props []string
	depth := 0
	start := 0
	var quote byte
	for i := 0; i < len(body); i++ {
		c := body[i]
		if quote != 0 {
			if c == '\\' {
				i++
			} else if c == quote {
				quote = 0
			}
			continue
		}
		switch c {
		case '\'', '"', '`':
			quote = c
		case '{', '[', '(', '<':
			depth++
		case '}', ']', ')':
			depth--
		case '>':
			// Not a generic close in "=>".
			if i > 0 && body[i-1] != '=' {
				depth--
			}
		case ';', ',':
			if depth == 0 {
				if p := strings.TrimSpace(body[start:i]); p != "" {
					props = append(props, body[start:i])
				}
				start = i + 1
			}
		}
	}
	if p := strings.TrimSpace(body[start:]); p != "" {
		props = append(props, body[start:])
	}
	return props
}

// matchingBrace returns the index of the '}' closing the '{' at open, or -1.
func matchingBrace(expr string, open int) int {
	depth := 0
	var quote byte
	for i := open; i < len(expr); i++ {
		c := expr[i]
		if quote != 0 {
			if c == '\\' {
				i++
			} else if c == quote {
				quote = 0
			}
			continue
		}
		switch c {
		case '\'', '"', '`':
			quote = c
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}
