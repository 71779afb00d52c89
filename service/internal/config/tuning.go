// internal/config/tuning.go
package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/jason-s-yu/shbot/engine/agent"
	"gopkg.in/yaml.v3"
)

// LoadTuning returns the default weighted constants overridden by the YAML
// file at path. An empty path returns the defaults.
func LoadTuning(path string) (agent.Tuning, error) {
	t := agent.DefaultTuning()
	if path == "" {
		return t, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return t, fmt.Errorf("failed to open tuning file: %w", err)
	}
	defer f.Close()
	return DecodeTuning(f)
}

// DecodeTuning overrides the defaults with a YAML document. Unknown keys are
// rejected so that a typo does not silently fall back to a default.
func DecodeTuning(r io.Reader) (agent.Tuning, error) {
	t := agent.DefaultTuning()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&t); err != nil && !errors.Is(err, io.EOF) {
		return agent.DefaultTuning(), fmt.Errorf("failed to decode tuning: %w", err)
	}
	return t, nil
}
