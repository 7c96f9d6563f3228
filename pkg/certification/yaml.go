package certification

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// DecodeYAML reads a record fixture. Enumerated fields are checked against
// their allowed options after decoding.
func DecodeYAML(r io.Reader) (Record, error) {
	var values map[string]string
	dec := yaml.NewDecoder(r)
	if err := dec.Decode(&values); err != nil && !errors.Is(err, io.EOF) {
		return Record{}, fmt.Errorf("certification: decode yaml: %w", err)
	}
	return FromValues(values)
}

// LoadYAML reads a record fixture from disk.
func LoadYAML(path string) (Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Record{}, fmt.Errorf("certification: read %s: %w", path, err)
	}
	return DecodeYAML(bytes.NewReader(data))
}

// EncodeYAML writes the record in the fixture format DecodeYAML accepts.
func EncodeYAML(w io.Writer, rec Record) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, field := range fieldOrder {
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Value: string(field)},
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: rec.Value(field)},
		)
	}
	if err := enc.Encode(node); err != nil {
		return fmt.Errorf("certification: encode yaml: %w", err)
	}
	return enc.Close()
}
