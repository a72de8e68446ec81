// Package report holds the export document: an ordered mapping from
// enabled category names to their accumulated match sequences, with
// byte-stable JSON and YAML encodings.
package report

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Report is an ordered category → matches mapping. Key order is the
// order sections were added (category declaration order when built by
// the engine); value order is discovery order. Both encoders respect
// it, so identical input always serializes to identical bytes.
type Report struct {
	keys   []string
	values map[string][]string
}

// New creates an empty report.
func New() *Report {
	return &Report{values: make(map[string][]string)}
}

// Add appends one category section. Matches may be empty but the
// section is still emitted; absent categories never are.
func (r *Report) Add(category string, matches []string) {
	if _, ok := r.values[category]; !ok {
		r.keys = append(r.keys, category)
	}
	if matches == nil {
		matches = []string{}
	}
	r.values[category] = matches
}

// Categories returns the section names in stable order.
func (r *Report) Categories() []string {
	return r.keys
}

// Matches returns the match sequence for one category.
func (r *Report) Matches(category string) []string {
	return r.values[category]
}

// Total returns the number of matches across all sections.
func (r *Report) Total() int {
	n := 0
	for _, matches := range r.values {
		n += len(matches)
	}
	return n
}

// MarshalJSON encodes the report as a JSON object with stable key
// order (insertion order, not lexicographic).
func (r *Report) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range r.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		name, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		buf.Write(name)
		buf.WriteByte(':')
		matches, err := json.Marshal(r.values[key])
		if err != nil {
			return nil, err
		}
		buf.Write(matches)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// EncodeJSON renders the report as indented JSON (4 spaces).
func (r *Report) EncodeJSON() ([]byte, error) {
	compact, err := r.MarshalJSON()
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, compact, "", "    "); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// String renders the report as compact JSON, the default output form.
func (r *Report) String() string {
	compact, err := r.MarshalJSON()
	if err != nil {
		return fmt.Sprintf("report: %v", err)
	}
	return string(compact)
}

// EncodeYAML renders the report as a YAML document with the same key
// order as the JSON form.
func (r *Report) EncodeYAML() ([]byte, error) {
	root := &yaml.Node{Kind: yaml.MappingNode}
	for _, key := range r.keys {
		keyNode := &yaml.Node{Kind: yaml.ScalarNode, Value: key}
		seqNode := &yaml.Node{Kind: yaml.SequenceNode}
		for _, match := range r.values[key] {
			seqNode.Content = append(seqNode.Content, &yaml.Node{
				Kind:  yaml.ScalarNode,
				Value: match,
			})
		}
		root.Content = append(root.Content, keyNode, seqNode)
	}
	return yaml.Marshal(root)
}
