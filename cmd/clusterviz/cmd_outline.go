// SPDX-License-Identifier: MIT

package main

import (
	"encoding/json"
	"fmt"

	"github.com/katalvlaran/clusterviz/cluster"
	"github.com/katalvlaran/clusterviz/svgpath"
	"github.com/spf13/cobra"
)

// outlineJSON is one element of `outline --json` output.
type outlineJSON struct {
	Cluster int      `json:"cluster"`
	Points  int      `json:"points"`
	Fit     *fitJSON `json:"fit,omitempty"`
	Path    string   `json:"path,omitempty"`
	Error   string   `json:"error,omitempty"`
}

type fitJSON struct {
	MeanX   float64 `json:"mean_x"`
	MeanY   float64 `json:"mean_y"`
	VarX    float64 `json:"var_x"`
	VarY    float64 `json:"var_y"`
	CovXY   float64 `json:"cov_xy"`
	Pearson float64 `json:"pearson"`
	NStd    float64 `json:"n_std"`
}

func newOutlineCmd(a *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "outline [table.csv]",
		Short: "Print each cluster's confidence outline as an SVG path",
		Long: `Prints one line per cluster, "cluster <label><TAB><path>", in order of first
appearance in the table. Clusters that cannot be bounded (fewer than two
points, or no spread on an axis) are reported instead of a path.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			groups, results, err := a.outlines(cmd, args)
			if err != nil {
				return err
			}
			if asJSON {
				return writeOutlinesJSON(cmd, groups, results)
			}

			out := cmd.OutOrStdout()
			for _, r := range results {
				if r.Err != nil {
					fmt.Fprintf(out, "cluster %d\tskipped: %v\n", r.Label, r.Err)
					continue
				}
				fmt.Fprintf(out, "cluster %d\t", r.Label)
				if _, err := svgpath.WriteTo(out, r.Outline); err != nil {
					return err
				}
				fmt.Fprintln(out)
			}

			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "emit a JSON array with fit parameters")

	return cmd
}

func writeOutlinesJSON(cmd *cobra.Command, groups []cluster.Group, results []cluster.Result) error {
	items := make([]outlineJSON, len(results))
	for i, r := range results {
		item := outlineJSON{Cluster: r.Label, Points: groups[i].Len()}
		if r.Err != nil {
			item.Error = r.Err.Error()
		} else {
			p := r.Params
			item.Fit = &fitJSON{
				MeanX: p.MeanX, MeanY: p.MeanY,
				VarX: p.VarX, VarY: p.VarY,
				CovXY: p.CovXY, Pearson: p.Pearson,
				NStd: p.NStd,
			}
			item.Path = svgpath.Encode(r.Outline)
		}
		items[i] = item
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")

	return enc.Encode(items)
}
