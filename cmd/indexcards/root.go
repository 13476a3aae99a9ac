package main

import (
	"github.com/spf13/cobra"

	"github.com/p5hema2/Indexcards-OCR/internal/api"
	"github.com/p5hema2/Indexcards-OCR/version"
)

var (
	cfgFile      string
	homeDir      string
	outputFormat string
)

var rootCmd = &cobra.Command{
	Use:   "indexcards",
	Short: "Archival metadata export engine for scanned index-card batches",
	Long: `Indexcards turns OCR extraction results for scanned archive index
cards into downloadable metadata documents.

The engine provides:
  - Batch import with schema validation and review corrections
  - Tabular exports (CSV, JSON, Excel) for review workflows
  - Archival XML dialects: LIDO, EAD, Darwin Core, Dublin Core,
    MARC21-XML and METS/MODS`,
	Version: version.GitRelease,
}

func init() {
	rootCmd.PersistentFlags().StringVar(
		&cfgFile, "config", "", "config file (default: ./config.yaml or ~/.indexcards/config.yaml)",
	)
	rootCmd.PersistentFlags().StringVar(
		&homeDir, "home", "", "indexcards home directory (default: ~/.indexcards)",
	)
	rootCmd.PersistentFlags().StringVarP(
		&outputFormat, "output", "o", "yaml", "output format: yaml or json",
	)

	// Set output format before any command runs
	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		api.SetOutputFormat(outputFormat)
	}

	rootCmd.AddCommand(versionCmd)
}
