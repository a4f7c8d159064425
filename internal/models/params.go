package models

// ParametersFile is the on-disk shape of a parameters file. Values are
// scalars of any type; they are turned into text before substitution.
type ParametersFile struct {
	Parameters map[string]interface{} `json:"parameters" yaml:"parameters" toml:"parameters"`
}
