// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/katalvlaran/clusterviz/render"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newRenderCmd(a *app) *cobra.Command {
	var (
		output string
		title  string
	)

	cmd := &cobra.Command{
		Use:   "render [table.csv]",
		Short: "Draw the clusters and their confidence outlines",
		Long: `Draws every cluster as a scatter series and, when it can be bounded, its
confidence outline as a dashed line in the same colour. The format follows
the output extension (.svg or .png); output to stdout uses render.format.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			groups, results, err := a.outlines(cmd, args)
			if err != nil {
				return err
			}

			opts := a.cfg.RenderOptions()
			if title != "" {
				opts.Title = title
			}
			if ext := strings.TrimPrefix(filepath.Ext(output), "."); ext != "" && output != "-" {
				f, err := render.ParseFormat(strings.ToLower(ext))
				if err != nil {
					return err
				}
				opts.Format = f
			}

			var buf bytes.Buffer
			if err := render.Confounders(&buf, groups, results, opts); err != nil {
				return err
			}
			if output == "-" {
				_, err := buf.WriteTo(cmd.OutOrStdout())
				return err
			}
			if err := os.WriteFile(output, buf.Bytes(), 0o644); err != nil {
				return fmt.Errorf("write %s: %w", output, err)
			}
			a.logger.Info("chart written",
				zap.String("path", output),
				zap.String("format", string(opts.Format)),
				zap.Int("clusters", len(groups)))

			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "-", "output file (.svg or .png); - writes to stdout")
	cmd.Flags().StringVar(&title, "title", "", "chart title")

	return cmd
}
