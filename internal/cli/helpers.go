package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	jsonFormat  = "json"
	yamlFormat  = "yaml"
	tableFormat = "table"
)

var legalOutputTypes = []string{tableFormat, jsonFormat, yamlFormat}

func validateOutput(output string) error {
	if len(output) > 0 && !slices.Contains(legalOutputTypes, output) {
		return fmt.Errorf("output format must be one of %s", strings.Join(legalOutputTypes, ", "))
	}
	return nil
}

// printStructured writes v as JSON or YAML. ok is false for table output.
func printStructured(w io.Writer, v any, output string) (ok bool, err error) {
	switch output {
	case jsonFormat:
		marshalled, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return true, fmt.Errorf("marshalling: %w", err)
		}
		fmt.Fprintf(w, "%s\n", marshalled)
		return true, nil
	case yamlFormat:
		marshalled, err := yaml.Marshal(v)
		if err != nil {
			return true, fmt.Errorf("marshalling: %w", err)
		}
		fmt.Fprintf(w, "%s", marshalled)
		return true, nil
	}
	return false, nil
}

func formatScore(score *float64) string {
	if score == nil {
		return "N/A"
	}
	return fmt.Sprintf("%.2f", *score)
}
