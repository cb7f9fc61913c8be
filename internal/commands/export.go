package commands

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/probelab/logitscope/internal/dataset"
	"github.com/probelab/logitscope/internal/export"
)

var exportCmd = &cobra.Command{
	Use:   "export <input.json>",
	Short: "Export histogram datasets as static PNG bar charts",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		inputPath := args[0]

		col, err := dataset.LoadFile(inputPath)
		if err != nil {
			return err
		}

		dir, _ := cmd.Flags().GetString("out")
		if dir == "" {
			dir = filepath.Dir(inputPath)
		}

		paths, err := export.WritePNGs(dir, col)
		if err != nil {
			return err
		}

		for _, p := range paths {
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", p)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
}
