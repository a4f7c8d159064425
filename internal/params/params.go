package params

import (
	"strings"
)

// Params maps parameter names to their substitution values.
type Params map[string]string

// ParseArg splits a name=value argument on the first '='. An argument with no
// '=' is a name with an empty value.
func ParseArg(arg string) (name, value string) {
	name, value, _ = strings.Cut(arg, "=")
	return name, value
}

// Parse builds Params from name=value arguments. Later occurrences of a name
// overwrite earlier ones.
func Parse(args []string) Params {
	p := make(Params, len(args))
	for _, arg := range args {
		name, value := ParseArg(arg)
		p[name] = value
	}
	return p
}

// Merge layers the given Params in order; values from later layers win.
func Merge(layers ...Params) Params {
	merged := make(Params)
	for _, layer := range layers {
		for name, value := range layer {
			merged[name] = value
		}
	}
	return merged
}

// Missing returns the names not present in p, in the order given.
func (p Params) Missing(names []string) []string {
	var missing []string
	for _, name := range names {
		if _, ok := p[name]; !ok {
			missing = append(missing, name)
		}
	}
	return missing
}
