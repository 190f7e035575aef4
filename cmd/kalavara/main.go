package main

import (
	"fmt"
	"os"

	"github.com/kalavara/kalavara/pkg/log"
	"github.com/spf13/cobra"
)

var (
	// Version information (set via ldflags during build)
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}
}

var rootCmd = &cobra.Command{
	Use:   "kalavara",
	Short: "Kalavara - Distributed persistent key-value store",
	Long: `Kalavara is a minimal two-tier key-value store over HTTP.

A master server owns the key directory and redirects every data request
to the volume server holding the key; volume servers own the blobs on
plain filesystems. Clients need nothing beyond an HTTP client that
follows method-preserving redirects.`,
	Version: Version,
}

func init() {
	// Set version template
	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"Kalavara version %s\nCommit: %s\nBuilt: %s\n",
		Version, Commit, BuildTime,
	))

	// Global flags
	rootCmd.PersistentFlags().String("log-level", "info", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().Bool("log-json", false, "Output logs in JSON format")

	// Initialize logging before command execution
	cobra.OnInitialize(initLogging)

	// Add subcommands
	rootCmd.AddCommand(masterCmd)
	rootCmd.AddCommand(volumeCmd)
}

func initLogging() {
	logLevel, _ := rootCmd.PersistentFlags().GetString("log-level")
	logJSON, _ := rootCmd.PersistentFlags().GetBool("log-json")

	log.Init(log.Config{
		Level:      log.Level(logLevel),
		JSONOutput: logJSON,
	})
}
