package parser

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/imishinist/tplgen/internal/models"
)

func ParseJSONParams(reader io.Reader) (map[string]string, error) {
	var data models.ParametersFile
	decoder := json.NewDecoder(reader)
	decoder.UseNumber()

	if err := decoder.Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to parse JSON parameters: %w", err)
	}

	return stringify(data.Parameters)
}
