package parser

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"
)

// Supported parameter file extensions, mapped to their decoders.
var decoders = map[string]func(io.Reader) (map[string]string, error){
	".json": ParseJSONParams,
	".yaml": ParseYAMLParams,
	".yml":  ParseYAMLParams,
	".toml": ParseTOMLParams,
}

// FileError reports a parameters file that could not be read or decoded.
type FileError struct {
	Path string
	Err  error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("cannot load parameters from %s: %v", e.Path, e.Err)
}

func (e *FileError) Unwrap() error { return e.Err }

// IsSupported reports whether path has an extension ParseParamsFile can decode.
func IsSupported(path string) bool {
	_, ok := decoders[strings.ToLower(filepath.Ext(path))]
	return ok
}

// ParseParamsFile reads a JSON, YAML or TOML parameters file, choosing the
// decoder from the file extension.
func ParseParamsFile(path string) (map[string]string, error) {
	ext := strings.ToLower(filepath.Ext(path))
	decode, ok := decoders[ext]
	if !ok {
		return nil, &FileError{
			Path: path,
			Err:  fmt.Errorf("unsupported file format: %s (supported: .json, .yaml, .yml, .toml)", ext),
		}
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, &FileError{Path: path, Err: err}
	}
	defer file.Close()

	params, err := decode(file)
	if err != nil {
		return nil, &FileError{Path: path, Err: err}
	}

	return params, nil
}

func stringify(raw map[string]interface{}) (map[string]string, error) {
	params := make(map[string]string, len(raw))

	// Sorted so the first offending key is reported deterministically.
	keys := make([]string, 0, len(raw))
	for key := range raw {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		value, err := scalarText(raw[key])
		if err != nil {
			return nil, fmt.Errorf("parameter %q: %w", key, err)
		}
		params[key] = value
	}

	return params, nil
}

func scalarText(value interface{}) (string, error) {
	switch v := value.(type) {
	case nil:
		return "", nil
	case string:
		return v, nil
	case bool:
		return strconv.FormatBool(v), nil
	case json.Number:
		return v.String(), nil
	case int:
		return strconv.Itoa(v), nil
	case int64:
		return strconv.FormatInt(v, 10), nil
	case uint64:
		return strconv.FormatUint(v, 10), nil
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64), nil
	case time.Time:
		return v.Format(time.RFC3339), nil
	case fmt.Stringer:
		// TOML local dates and times
		return v.String(), nil
	default:
		return "", fmt.Errorf("value must be a scalar, got %T", value)
	}
}
