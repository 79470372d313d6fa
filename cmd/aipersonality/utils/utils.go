package utils

import (
	"bytes"
	"encoding/json"
	"fmt"
	"github.com/BurntSushi/toml"
	"github.com/kardolus/aipersonality/personality"
	"github.com/kardolus/aipersonality/types"
	"gopkg.in/yaml.v3"
	"reflect"
	"sort"
	"strings"
)

const (
	OutputText = "text"
	OutputYAML = "yaml"
	OutputJSON = "json"
	OutputTOML = "toml"
)

// Render formats p in the requested output format. The logo is only part of
// the text output.
func Render(p types.Personality, format string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", OutputText:
		return personality.Describe(p) + "\n", nil
	case OutputYAML:
		data, err := yaml.Marshal(p)
		if err != nil {
			return "", err
		}
		return string(data), nil
	case OutputJSON:
		data, err := json.MarshalIndent(p, "", "  ")
		if err != nil {
			return "", err
		}
		return string(data) + "\n", nil
	case OutputTOML:
		var buf bytes.Buffer
		if err := toml.NewEncoder(&buf).Encode(p); err != nil {
			return "", err
		}
		return buf.String(), nil
	default:
		return "", fmt.Errorf("unsupported output format %q", format)
	}
}

// SortedKeys returns the keys of raw in alphabetical order.
func SortedKeys(raw map[string]any) []string {
	keys := make([]string, 0, len(raw))
	for k := range raw {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// UnknownKeys returns the keys of raw that are not part of the personality schema.
func UnknownKeys(raw map[string]any) []string {
	known := make(map[string]bool)
	for _, k := range schemaKeys() {
		known[k] = true
	}

	var result []string
	for _, k := range SortedKeys(raw) {
		if !known[k] {
			result = append(result, k)
		}
	}
	return result
}

func schemaKeys() []string {
	t := reflect.TypeOf(types.Personality{})

	var keys []string
	for i := 0; i < t.NumField(); i++ {
		tag, _, _ := strings.Cut(t.Field(i).Tag.Get("yaml"), ",")
		if tag == "" || tag == "-" {
			continue
		}
		keys = append(keys, tag)
	}

	sort.Strings(keys)
	return keys
}
