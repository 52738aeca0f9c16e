package config

import (
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Settings holds analysis properties such as sonar.cs.analyzeGeneratedCode.
// Values are kept as strings; multi-valued properties are comma separated.
type Settings map[string]string

// With returns the receiver's properties layered over parent's
func (s Settings) With(parent Settings) Settings {
	merged := make(Settings, len(parent)+len(s))
	for k, v := range parent {
		merged[k] = v
	}
	for k, v := range s {
		merged[k] = v
	}
	return merged
}

// GetString returns the trimmed value of key and whether it was set
func (s Settings) GetString(key string) (string, bool) {
	v, ok := s[key]
	if !ok {
		return "", false
	}
	return strings.TrimSpace(v), true
}

// GetStringArray splits a comma separated property, dropping blank entries
func (s Settings) GetStringArray(key string) []string {
	v, ok := s.GetString(key)
	if !ok || v == "" {
		return nil
	}

	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// GetBool parses a boolean property. found is false when the key is unset or unparsable.
func (s Settings) GetBool(key string) (value bool, found bool) {
	v, ok := s.GetString(key)
	if !ok || v == "" {
		return false, false
	}
	b, err := strconv.ParseBool(strings.ToLower(v))
	if err != nil {
		return false, false
	}
	return b, true
}

// BoolOrDefault returns the boolean value of key, or def when unset
func (s Settings) BoolOrDefault(key string, def bool) bool {
	if v, ok := s.GetBool(key); ok {
		return v
	}
	return def
}

// UnmarshalYAML accepts scalar values of any type and sequences, which are joined with commas
func (s *Settings) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: properties must be a mapping", value.Line)
	}

	out := make(Settings, len(value.Content)/2)
	for i := 0; i+1 < len(value.Content); i += 2 {
		key := value.Content[i]
		val := value.Content[i+1]

		switch val.Kind {
		case yaml.ScalarNode:
			out[key.Value] = val.Value
		case yaml.SequenceNode:
			items := make([]string, 0, len(val.Content))
			for _, item := range val.Content {
				if item.Kind != yaml.ScalarNode {
					return fmt.Errorf("line %d: property %s: list items must be scalars", item.Line, key.Value)
				}
				items = append(items, item.Value)
			}
			out[key.Value] = strings.Join(items, ",")
		default:
			return fmt.Errorf("line %d: property %s: unsupported value", val.Line, key.Value)
		}
	}

	*s = out
	return nil
}
