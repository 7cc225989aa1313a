// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package loaders

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"gopkg.in/yaml.v3"
)

// YAMLLoader reads either a mapping of key: number, or a sequence of
// {key, value} items. Document order is preserved in both forms.
type YAMLLoader struct{}

func (l *YAMLLoader) SupportsFile(path string) bool {
	ext := extension(path)
	return ext == "yaml" || ext == "yml"
}

func (l *YAMLLoader) Priority() int {
	return 1
}

func (l *YAMLLoader) Load(r io.Reader) ([]Record, error) {
	var doc yaml.Node
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to decode yaml dataset: %v", err)
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil, nil
	}

	root := doc.Content[0]
	switch root.Kind {
	case yaml.MappingNode:
		return mappingRecords(root)
	case yaml.SequenceNode:
		return sequenceRecords(root)
	default:
		return nil, fmt.Errorf("line %d: dataset must be a mapping or a sequence", root.Line)
	}
}

func mappingRecords(m *yaml.Node) ([]Record, error) {
	records := make([]Record, 0, len(m.Content)/2)
	for i := 0; i+1 < len(m.Content); i += 2 {
		key, val := m.Content[i], m.Content[i+1]
		value, err := parseNumber(val)
		if err != nil {
			return nil, fmt.Errorf("line %d: key %q: %v", val.Line, key.Value, err)
		}
		records = append(records, Record{Key: key.Value, Value: value})
	}
	return records, nil
}

type sequenceItem struct {
	Key   string  `yaml:"key"`
	Value float64 `yaml:"value"`
}

func sequenceRecords(s *yaml.Node) ([]Record, error) {
	records := make([]Record, 0, len(s.Content))
	for _, item := range s.Content {
		var entry sequenceItem
		if err := item.Decode(&entry); err != nil {
			return nil, fmt.Errorf("line %d: %v", item.Line, err)
		}
		records = append(records, Record{Key: entry.Key, Value: entry.Value})
	}
	return records, nil
}

func parseNumber(n *yaml.Node) (float64, error) {
	if n.Kind != yaml.ScalarNode {
		return 0, fmt.Errorf("value must be a number")
	}
	v, err := strconv.ParseFloat(n.Value, 64)
	if err != nil {
		return 0, fmt.Errorf("value %q is not a number", n.Value)
	}
	return v, nil
}
