package orderedset

import (
	"encoding/json"

	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

// MarshalJSON encodes the set as a JSON array in order. Sets held by value
// in a struct are encoded too.
func (s OrderedSet[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.ToSlice())
}

// UnmarshalJSON decodes a JSON array, inserting elements in order so that
// repeated elements collapse to their first occurrence. Errors from decoding
// an element are returned as is and leave s unchanged. A JSON null leaves s
// unchanged.
func (s *OrderedSet[T]) UnmarshalJSON(data []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw == nil {
		return nil
	}

	decoded := &OrderedSet[T]{}
	for _, r := range raw {
		var v T
		if err := json.Unmarshal(r, &v); err != nil {
			return err
		}
		decoded.Insert(v)
	}

	s.replace(decoded)
	return nil
}

// MarshalYAML encodes the set as a YAML sequence in order.
func (s OrderedSet[T]) MarshalYAML() (interface{}, error) {
	return s.ToSlice(), nil
}

// UnmarshalYAML decodes a YAML sequence with the same rules as
// UnmarshalJSON.
func (s *OrderedSet[T]) UnmarshalYAML(value *yaml.Node) error {
	if value.ShortTag() == "!!null" {
		return nil
	}

	var nodes []yaml.Node
	if err := value.Decode(&nodes); err != nil {
		return err
	}

	decoded := &OrderedSet[T]{}
	for i := range nodes {
		var v T
		if err := nodes[i].Decode(&v); err != nil {
			return err
		}
		decoded.Insert(v)
	}

	s.replace(decoded)
	return nil
}

// MarshalLogArray lets a set be logged with zap.Array.
func (s *OrderedSet[T]) MarshalLogArray(enc zapcore.ArrayEncoder) error {
	for _, v := range s.seq() {
		if err := enc.AppendReflected(v); err != nil {
			return err
		}
	}
	return nil
}
