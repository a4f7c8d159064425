package template

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Accessor is one `.attr` or `[index]` step following a placeholder name.
type Accessor struct {
	Attr bool
	Key  string
}

// Field is a parsed replacement field: the text between '{' and '}'. Path is
// the raw accessor chain after Name, e.g. "[0]" or ".attr".
type Field struct {
	Raw        string
	Name       string
	Path       string
	Conversion string
	Spec       string
}

// ParseField splits a replacement field into name, accessor path, conversion
// and format spec. Only the name is validated here; the rest is checked by
// Format once the name has resolved to a value.
func ParseField(raw string) (Field, error) {
	f := Field{Raw: raw}

	end := len(raw)
scan:
	for i := 0; i < len(raw); i++ {
		switch raw[i] {
		case '[':
			closing := strings.IndexByte(raw[i:], ']')
			if closing < 0 {
				return Field{}, fmt.Errorf("missing ']' in placeholder {%s}", raw)
			}
			i += closing
		case '!', ':':
			end = i
			break scan
		}
	}

	name := raw[:end]
	base := strings.IndexAny(name, ".[")
	if base < 0 {
		base = len(name)
	}
	f.Name, f.Path = name[:base], name[base:]
	if f.Name == "" || isDigits(f.Name) {
		return Field{}, fmt.Errorf("positional placeholder {%s} is not supported, use a named placeholder", raw)
	}

	rest := raw[end:]
	if strings.HasPrefix(rest, "!") {
		conv, size := utf8.DecodeRuneInString(rest[1:])
		if size == 0 {
			return Field{}, fmt.Errorf("end of placeholder {%s} while looking for conversion specifier", raw)
		}
		f.Conversion = string(conv)
		rest = rest[1+size:]
		if rest != "" && rest[0] != ':' {
			return Field{}, fmt.Errorf("expected ':' after conversion specifier in placeholder {%s}", raw)
		}
	}
	if strings.HasPrefix(rest, ":") {
		f.Spec = rest[1:]
	}

	return f, nil
}

// Accessors parses Path into its `.attr` and `[index]` steps.
func (f Field) Accessors() ([]Accessor, error) {
	var accessors []Accessor
	rest := f.Path
	for rest != "" {
		switch rest[0] {
		case '.':
			next := strings.IndexAny(rest[1:], ".[")
			if next < 0 {
				next = len(rest) - 1
			}
			attr := rest[1 : 1+next]
			if attr == "" {
				return nil, fmt.Errorf("empty attribute in placeholder {%s}", f.Raw)
			}
			accessors = append(accessors, Accessor{Attr: true, Key: attr})
			rest = rest[1+next:]
		case '[':
			closing := strings.IndexByte(rest, ']')
			if closing < 0 {
				return nil, fmt.Errorf("missing ']' in placeholder {%s}", f.Raw)
			}
			key := rest[1:closing]
			if key == "" {
				return nil, fmt.Errorf("empty index in placeholder {%s}", f.Raw)
			}
			accessors = append(accessors, Accessor{Key: key})
			rest = rest[closing+1:]
			if rest != "" && rest[0] != '.' && rest[0] != '[' {
				return nil, fmt.Errorf("only '.' or '[' may follow ']' in placeholder {%s}", f.Raw)
			}
		default:
			return nil, fmt.Errorf("invalid accessor %q in placeholder {%s}", rest, f.Raw)
		}
	}
	return accessors, nil
}

// Format renders value through the field's accessors, conversion and spec.
func (f Field) Format(value string) (string, error) {
	accessors, err := f.Accessors()
	if err != nil {
		return "", err
	}
	for _, a := range accessors {
		if a.Attr {
			return "", fmt.Errorf("attribute access {%s} is not supported on text values", f.Raw)
		}
		if !isDigits(a.Key) {
			return "", fmt.Errorf("index %q in placeholder {%s} must be a non-negative integer", a.Key, f.Raw)
		}
		idx, err := strconv.Atoi(a.Key)
		runes := []rune(value)
		if err != nil || idx >= len(runes) {
			return "", fmt.Errorf("index %s out of range in placeholder {%s}", a.Key, f.Raw)
		}
		value = string(runes[idx])
	}

	switch f.Conversion {
	case "", "s":
	case "r":
		value = repr(value, false)
	case "a":
		value = repr(value, true)
	default:
		return "", fmt.Errorf("unknown conversion specifier %s in placeholder {%s}", f.Conversion, f.Raw)
	}

	spec, err := ParseSpec(f.Spec)
	if err != nil {
		return "", fmt.Errorf("placeholder {%s}: %w", f.Raw, err)
	}

	return spec.Apply(value), nil
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// repr quotes s the way a string literal is echoed back: single quotes unless
// s contains a single quote and no double quote. With ascii set, every
// non-ASCII rune is escaped too.
func repr(s string, ascii bool) string {
	quote := '\''
	if strings.ContainsRune(s, '\'') && !strings.ContainsRune(s, '"') {
		quote = '"'
	}

	var b strings.Builder
	b.WriteRune(quote)
	for _, r := range s {
		switch {
		case r == quote || r == '\\':
			b.WriteByte('\\')
			b.WriteRune(r)
		case r == '\n':
			b.WriteString(`\n`)
		case r == '\r':
			b.WriteString(`\r`)
		case r == '\t':
			b.WriteString(`\t`)
		case r < 0x20 || r == 0x7f:
			fmt.Fprintf(&b, `\x%02x`, r)
		case r < utf8.RuneSelf:
			b.WriteRune(r)
		case !ascii && unicode.IsPrint(r):
			b.WriteRune(r)
		case r < 0x100:
			fmt.Fprintf(&b, `\x%02x`, r)
		case r < 0x10000:
			fmt.Fprintf(&b, `\u%04x`, r)
		default:
			fmt.Fprintf(&b, `\U%08x`, r)
		}
	}
	b.WriteRune(quote)

	return b.String()
}
