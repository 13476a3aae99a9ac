package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/p5hema2/Indexcards-OCR/internal/batch"
	"github.com/p5hema2/Indexcards-OCR/internal/config"
	"github.com/p5hema2/Indexcards-OCR/internal/export"
)

var (
	exportOutputPath string
	exportBatchName  string
	exportAll        bool
)

var exportCmd = &cobra.Command{
	Use:   "export <results.json> [format]",
	Short: "Export a local results file without a server",
	Long: `Export a results file straight from disk.

The format is one of: csv, json, xlsx, lido, ead, darwincore,
dublincore, marcxml, metsmods. With --all, every format is written
next to the results file.

Examples:
  indexcards export results.json csv
  indexcards export results.json marcxml -o bestand.xml
  indexcards export results.json --all`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := batch.Load(args[0])
		if err != nil {
			return err
		}

		name := exportBatchName
		if name == "" {
			name = doc.Name
		}
		if name == "" {
			base := filepath.Base(args[0])
			name = strings.TrimSuffix(base, filepath.Ext(base))
		}

		if exportAll {
			if len(args) > 1 {
				return fmt.Errorf("cannot combine --all with an explicit format")
			}
			dir := filepath.Dir(args[0])
			for _, f := range export.Formats() {
				out, err := export.Export(f, doc.Results, name)
				if err != nil {
					return err
				}
				path := filepath.Join(dir, out.Filename)
				if err := os.WriteFile(path, out.Payload, 0644); err != nil {
					return fmt.Errorf("failed to write %s: %w", path, err)
				}
				fmt.Printf("Wrote %s (%s)\n", path, export.DisplayName(f))
			}
			return nil
		}

		// Fall back to the configured default format
		formatArg := ""
		if len(args) > 1 {
			formatArg = args[1]
		} else {
			mgr, err := config.NewManager(cfgFile)
			if err != nil {
				return err
			}
			formatArg = mgr.Get().Export.DefaultFormat
		}
		format, err := export.ParseFormat(formatArg)
		if err != nil {
			return err
		}

		out, err := export.Export(format, doc.Results, name)
		if err != nil {
			return err
		}

		path := exportOutputPath
		if path == "" {
			path = out.Filename
		}
		if err := os.WriteFile(path, out.Payload, 0644); err != nil {
			return fmt.Errorf("failed to write %s: %w", path, err)
		}

		fmt.Printf("Wrote %s (%s)\n", path, export.DisplayName(format))
		return nil
	},
}

var formatsCmd = &cobra.Command{
	Use:   "formats",
	Short: "List supported export formats",
	Run: func(cmd *cobra.Command, args []string) {
		for _, f := range export.Formats() {
			fmt.Printf("%-12s %s\n", f, export.DisplayName(f))
		}
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportOutputPath, "output", "o", "", "Output file path")
	exportCmd.Flags().StringVar(&exportBatchName, "name", "", "Batch name (defaults to the document name or file name)")
	exportCmd.Flags().BoolVar(&exportAll, "all", false, "Write every format")

	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(formatsCmd)
}
