package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/probelab/logitscope/internal/dataset"
	"github.com/probelab/logitscope/internal/export"
	"github.com/probelab/logitscope/internal/report"
)

var renderCmd = &cobra.Command{
	Use:   "render <input.json>",
	Short: "Render histogram datasets into an interactive HTML report",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		inputPath := args[0]

		col, err := dataset.LoadFile(inputPath)
		if err != nil {
			return err
		}

		out, _ := cmd.Flags().GetString("out")
		if out == "" {
			out = strings.TrimSuffix(inputPath, filepath.Ext(inputPath)) + ".html"
		}

		theme, _ := cmd.Flags().GetString("theme")
		engine, _ := cmd.Flags().GetString("engine")

		cfg := report.DefaultConfig()
		cfg.Theme = theme

		switch engine {
		case "", "plotly":
			if err := report.Generate(col, out, cfg); err != nil {
				return err
			}
		case "echarts":
			f, err := os.Create(out)
			if err != nil {
				return fmt.Errorf("create output file: %w", err)
			}
			defer f.Close()
			if err := export.WriteECharts(f, col, cfg.Title); err != nil {
				return err
			}
		default:
			return fmt.Errorf("unknown engine %q (want plotly or echarts)", engine)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Rendered %d histogram(s) to %s\n", col.Len(), out)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(renderCmd)
}
