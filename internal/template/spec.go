package template

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Spec is a parsed format spec: [[fill]align][0][width][.precision][s].
type Spec struct {
	Fill      rune
	Align     rune
	Width     int
	Precision int
}

var defaultSpec = Spec{Fill: ' ', Align: '<', Precision: -1}

// maxWidth bounds the padding a single placeholder can produce.
const maxWidth = 1 << 20

func isAlign(r rune) bool {
	return r == '<' || r == '>' || r == '^' || r == '='
}

// ParseSpec parses the text following ':' in a placeholder.
func ParseSpec(raw string) (Spec, error) {
	spec := defaultSpec
	if raw == "" {
		return spec, nil
	}

	rest := raw
	explicitFill := false
	first, size := utf8.DecodeRuneInString(rest)
	if second, size2 := utf8.DecodeRuneInString(rest[size:]); size2 > 0 && isAlign(second) {
		spec.Fill, spec.Align = first, second
		explicitFill = true
		rest = rest[size+size2:]
	} else if isAlign(first) {
		spec.Align = first
		rest = rest[size:]
	}
	if spec.Align == '=' {
		return Spec{}, errors.New("'=' alignment not allowed in string format specifier")
	}

	if rest != "" {
		switch rest[0] {
		case '+', '-', ' ':
			return Spec{}, errors.New("sign not allowed in string format specifier")
		case '#':
			return Spec{}, errors.New("alternate form (#) not allowed in string format specifier")
		case '0':
			if !explicitFill {
				spec.Fill = '0'
			}
			rest = rest[1:]
		}
	}

	digits := leadingDigits(rest)
	if digits != "" {
		width, err := strconv.Atoi(digits)
		if err != nil {
			return Spec{}, errors.New("too many decimal digits in format string")
		}
		if width > maxWidth {
			return Spec{}, fmt.Errorf("width %d exceeds the maximum of %d", width, maxWidth)
		}
		spec.Width = width
		rest = rest[len(digits):]
	}

	if rest != "" && (rest[0] == ',' || rest[0] == '_') {
		return Spec{}, fmt.Errorf("cannot specify '%c' with a string value", rest[0])
	}

	if strings.HasPrefix(rest, ".") {
		digits = leadingDigits(rest[1:])
		if digits == "" {
			return Spec{}, errors.New("format specifier missing precision")
		}
		precision, err := strconv.Atoi(digits)
		if err != nil {
			return Spec{}, errors.New("too many decimal digits in format string")
		}
		spec.Precision = precision
		rest = rest[1+len(digits):]
	}

	switch {
	case rest == "" || rest == "s":
	case utf8.RuneCountInString(rest) == 1:
		return Spec{}, fmt.Errorf("unknown format code '%s' for a string value", rest)
	default:
		return Spec{}, errors.New("invalid format specifier")
	}

	return spec, nil
}

func leadingDigits(s string) string {
	i := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	return s[:i]
}

// Apply truncates s to the precision and pads it to the width.
func (s Spec) Apply(value string) string {
	runes := []rune(value)
	if s.Precision >= 0 && len(runes) > s.Precision {
		runes = runes[:s.Precision]
	}

	pad := s.Width - len(runes)
	if pad <= 0 {
		return string(runes)
	}

	left, right := 0, pad
	switch s.Align {
	case '>':
		left, right = pad, 0
	case '^':
		left = pad / 2
		right = pad - left
	}

	fill := string(s.Fill)
	return strings.Repeat(fill, left) + string(runes) + strings.Repeat(fill, right)
}
