package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/p5hema2/Indexcards-OCR/internal/config"
	"github.com/p5hema2/Indexcards-OCR/internal/home"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Configuration commands",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default config file to the home directory",
	RunE: func(cmd *cobra.Command, args []string) error {
		h, err := home.New(homeDir)
		if err != nil {
			return err
		}
		if err := h.EnsureExists(); err != nil {
			return err
		}
		if h.ConfigExists() {
			return fmt.Errorf("config already exists at %s", h.ConfigPath())
		}
		if err := config.WriteDefault(h.ConfigPath()); err != nil {
			return err
		}
		fmt.Printf("Wrote %s\n", h.ConfigPath())
		return nil
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		mgr, err := config.NewManager(cfgFile)
		if err != nil {
			return err
		}
		cfg := mgr.Get()
		fmt.Printf("server:\n  host: %s\n  port: %d\n", cfg.Server.Host, cfg.Server.Port)
		fmt.Printf("log:\n  level: %s\n  format: %s\n", cfg.Log.Level, cfg.Log.Format)
		fmt.Printf("export:\n  default_format: %s\n", cfg.Export.DefaultFormat)
		return nil
	},
}

func init() {
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)
	rootCmd.AddCommand(configCmd)
}
