package parser

import (
	"fmt"
	"io"

	"github.com/BurntSushi/toml"

	"github.com/imishinist/tplgen/internal/models"
)

func ParseTOMLParams(reader io.Reader) (map[string]string, error) {
	var data models.ParametersFile
	decoder := toml.NewDecoder(reader)

	if _, err := decoder.Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to parse TOML parameters: %w", err)
	}

	return stringify(data.Parameters)
}
