// Package format renders brace templates with positional or named
// placeholders.
//
//	format.Format("hello {} and {}", "alan", "bob")   // "hello alan and bob"
//	format.Format("{1} before {0}", "alan", "bob")    // "bob before alan"
//	format.FormatNamed("{who}!", map[string]any{"who": "you"})
//
// {{ and }} escape literal braces. A placeholder that cannot be resolved
// renders verbatim, which keeps template typos visible instead of hiding
// them.
package format

import (
	"fmt"
	"strconv"
	"strings"
)

// Format renders tmpl replacing {} (auto-indexed) and {N} (positional)
// placeholders with args.
func Format(tmpl string, args ...any) string {
	auto := 0
	return render(tmpl, func(name string) (any, bool) {
		idx := -1
		if name == "" {
			idx = auto
			auto++
		} else if n, err := strconv.Atoi(name); err == nil {
			idx = n
		}
		if idx < 0 || idx >= len(args) {
			return nil, false
		}
		return args[idx], true
	})
}

// FormatNamed renders tmpl replacing {name} placeholders with fields.
func FormatNamed(tmpl string, fields map[string]any) string {
	return render(tmpl, func(name string) (any, bool) {
		v, ok := fields[name]
		return v, ok
	})
}

// Printf prints the rendered template to stdout with a trailing newline.
func Printf(tmpl string, args ...any) {
	fmt.Println(Format(tmpl, args...))
}

// PrintfNamed is the named-placeholder counterpart of Printf.
func PrintfNamed(tmpl string, fields map[string]any) {
	fmt.Println(FormatNamed(tmpl, fields))
}

func render(tmpl string, resolve func(name string) (any, bool)) string {
	var b strings.Builder
	b.Grow(len(tmpl))
	for i := 0; i < len(tmpl); i++ {
		c := tmpl[i]
		switch c {
		case '{':
			if i+1 < len(tmpl) && tmpl[i+1] == '{' {
				b.WriteByte('{')
				i++
				continue
			}
			end := strings.IndexByte(tmpl[i:], '}')
			if end < 0 {
				// unterminated placeholder, emit as-is
				b.WriteByte(c)
				continue
			}
			name := tmpl[i+1 : i+end]
			if v, ok := resolve(name); ok {
				fmt.Fprintf(&b, "%v", v)
			} else {
				b.WriteString(tmpl[i : i+end+1])
			}
			i += end
		case '}':
			if i+1 < len(tmpl) && tmpl[i+1] == '}' {
				i++
			}
			b.WriteByte('}')
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}
