package executor

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/crosslink-dev/crosslink/internal/plan"
	"go.yaml.in/yaml/v3"
)

// Print writes p to w without running anything.
func Print(w io.Writer, p *plan.Plan, opts plan.CommandOptions, format Format) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(p); err != nil {
			return fmt.Errorf("encoding plan as JSON: %w", err)
		}
		return nil

	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(p); err != nil {
			return fmt.Errorf("encoding plan as YAML: %w", err)
		}
		return enc.Close()

	default:
		for _, line := range p.ShellLines(opts) {
			if _, err := fmt.Fprintln(w, line); err != nil {
				return err
			}
		}
		return nil
	}
}
