package parser

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/imishinist/tplgen/internal/models"
)

func ParseYAMLParams(reader io.Reader) (map[string]string, error) {
	var data models.ParametersFile
	decoder := yaml.NewDecoder(reader)

	// An empty document is a valid, empty parameter set.
	if err := decoder.Decode(&data); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse YAML parameters: %w", err)
	}

	return stringify(data.Parameters)
}
