package meta

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// LoadJSON reads a JSON record file and builds a DB from it.
func LoadJSON(r io.Reader) (*DB, error) {
	var file RecordFile
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&file); err != nil {
		return nil, fmt.Errorf("meta: decode JSON records: %w", err)
	}
	return FromRecords(&file)
}

// LoadYAML reads a YAML record file and builds a DB from it.
func LoadYAML(r io.Reader) (*DB, error) {
	var file RecordFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil {
		return nil, fmt.Errorf("meta: decode YAML records: %w", err)
	}
	return FromRecords(&file)
}
