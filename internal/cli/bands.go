package cli

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/StricklySoft/errcatalog/pkg/registry"
)

type bandSummary struct {
	Name  string `json:"name" yaml:"name"`
	Low   int    `json:"low" yaml:"low"`
	High  int    `json:"high" yaml:"high"`
	Count int    `json:"count" yaml:"count"`
}

func newBandsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "bands",
		Short: "Show code bands and how many entries each holds",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			counts := make(map[string]int, len(registry.DefaultBands))
			for d := range a.reg.All() {
				if b, ok := registry.BandOf(d.Code, registry.DefaultBands); ok {
					counts[b.Name]++
				}
			}

			summaries := make([]bandSummary, 0, len(registry.DefaultBands))
			rows := [][]string{{"BAND", "LOW", "HIGH", "ENTRIES"}}
			for _, b := range registry.DefaultBands {
				s := bandSummary{Name: b.Name, Low: b.Low, High: b.High, Count: counts[b.Name]}
				summaries = append(summaries, s)
				rows = append(rows, []string{s.Name, strconv.Itoa(s.Low), strconv.Itoa(s.High), strconv.Itoa(s.Count)})
			}
			return render(cmd.OutOrStdout(), a.cfg.Output, summaries, rows)
		},
	}
}
