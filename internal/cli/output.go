package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/pterm/pterm"
	"gopkg.in/yaml.v3"

	"github.com/StricklySoft/errcatalog/pkg/registry"
)

// entry is the printed form of a definition.
type entry struct {
	Identifier   string `json:"identifier" yaml:"identifier"`
	Code         int    `json:"code" yaml:"code"`
	Template     string `json:"template" yaml:"template"`
	Band         string `json:"band,omitempty" yaml:"band,omitempty"`
	Placeholders int    `json:"placeholders" yaml:"placeholders"`
}

func newEntry(d registry.Definition) entry {
	b, _ := registry.BandOf(d.Code, registry.DefaultBands)
	return entry{
		Identifier:   d.Identifier,
		Code:         d.Code,
		Template:     d.Template,
		Band:         b.Name,
		Placeholders: d.Placeholders(),
	}
}

// render writes v in the configured format. rows is the table form of v
// and is only used for table output.
func render(w io.Writer, format string, v any, rows [][]string) error {
	switch format {
	case OutputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		return enc.Encode(v)
	case OutputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		out, err := pterm.DefaultTable.WithHasHeader().WithData(rows).Srender()
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, out)
		return err
	}
}

func entryRows(entries []entry) [][]string {
	rows := make([][]string, 0, len(entries)+1)
	rows = append(rows, []string{"CODE", "IDENTIFIER", "BAND", "TEMPLATE"})
	for _, e := range entries {
		rows = append(rows, []string{strconv.Itoa(e.Code), e.Identifier, e.Band, e.Template})
	}
	return rows
}
