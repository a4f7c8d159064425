package template

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/imkira/go-interpol"
)

// Template is the raw text of a template file. Placeholders are {name};
// "{{" and "}}" stand for literal braces.
type Template struct {
	Name string
	Text string
}

func New(name, text string) *Template {
	return &Template{Name: name, Text: text}
}

// Load reads the template at path. The file is closed before Load returns.
func Load(path string) (*Template, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, &FileError{Path: path, Err: err}
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, &FileError{Path: path, Err: err}
	}

	return New(path, string(data)), nil
}

// Render substitutes every placeholder with its value from params. Nothing
// is returned unless every placeholder resolves.
func (t *Template) Render(params map[string]string) (string, error) {
	var out bytes.Buffer
	err := t.walk(&out, func(f Field, w io.Writer) error {
		value, ok := params[f.Name]
		if !ok {
			return &MissingParameterError{Name: f.Name}
		}
		text, err := f.Format(value)
		if err != nil {
			return &SyntaxError{Template: t.Name, Err: err}
		}
		_, err = io.WriteString(w, text)
		return err
	})
	if err != nil {
		return "", err
	}

	return out.String(), nil
}

// Names returns the distinct placeholder names in order of first use.
func (t *Template) Names() ([]string, error) {
	var names []string
	seen := make(map[string]bool)
	err := t.walk(io.Discard, func(f Field, _ io.Writer) error {
		if !seen[f.Name] {
			seen[f.Name] = true
			names = append(names, f.Name)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return names, nil
}

// walk scans the template, copying literal text to out and handing every
// parsed placeholder to visit. The first error from visit stops the scan and
// is returned as is.
func (t *Template) walk(out io.Writer, visit func(Field, io.Writer) error) error {
	if err := checkBraces(t.Text); err != nil {
		return &SyntaxError{Template: t.Name, Err: err}
	}

	var fieldErr error
	interpolator := interpol.NewWithOptions(&interpol.Options{
		Template: strings.NewReader(t.Text),
		Output:   out,
		Format: func(key string, w io.Writer) error {
			f, err := ParseField(key)
			if err != nil {
				err = &SyntaxError{Template: t.Name, Err: err}
			} else {
				err = visit(f, w)
			}
			if err != nil && fieldErr == nil {
				fieldErr = err
			}
			return err
		},
	})

	if err := interpolator.Interpolate(); err != nil {
		if fieldErr != nil {
			return fieldErr
		}
		return &SyntaxError{Template: t.Name, Err: err}
	}
	if fieldErr != nil {
		return fieldErr
	}

	return nil
}

// checkBraces rejects a '{' inside an open placeholder, which the
// interpolator would otherwise copy through as literal text.
func checkBraces(text string) error {
	line, col := 1, 1
	inField := false
	for i := 0; i < len(text); i++ {
		switch c := text[i]; {
		case inField && c == '{':
			return fmt.Errorf("unexpected '{' in field name at line %d col %d", line, col)
		case inField && c == '}':
			inField = false
		case !inField && c == '{':
			if i+1 < len(text) && text[i+1] == '{' {
				i++
				col++
			} else {
				inField = true
			}
		case !inField && c == '}':
			if i+1 < len(text) && text[i+1] == '}' {
				i++
				col++
			}
		}

		if text[i] == '\n' {
			line++
			col = 1
		} else {
			col++
		}
	}
	return nil
}
