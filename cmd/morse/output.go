package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/strycore/dojo-20130708/recompose"
)

// writeResults renders results in the named format: "text" prints one line
// per input with its decodings separated by spaces.
func writeResults(w io.Writer, format string, results []decodeResult) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(results); err != nil {
			return err
		}
		return enc.Close()
	case "text", "":
		for _, r := range results {
			words := recompose.Strings(r.Segmentations)
			if _, err := fmt.Fprintf(w, "%s\t%s\n", r.Input, strings.Join(words, " ")); err != nil {
				return err
			}
		}
		return nil
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}
