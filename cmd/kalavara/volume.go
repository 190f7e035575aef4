package main

import (
	"fmt"
	"os"

	"github.com/kalavara/kalavara/pkg/client"
	"github.com/kalavara/kalavara/pkg/config"
	"github.com/kalavara/kalavara/pkg/httpd"
	"github.com/kalavara/kalavara/pkg/log"
	"github.com/kalavara/kalavara/pkg/volume"
	"github.com/spf13/cobra"
)

var volumeCmd = &cobra.Command{
	Use:   "volume",
	Short: "Run a blob server",
	Long: `Run a Kalavara volume: a blob server owning a slice of the key
namespace on its local filesystem.

Examples:
  # Standalone volume, registered by the operator later
  kalavara volume -p 7000 -d /var/lib/kalavara/store

  # Self-registering volume
  kalavara volume -p 7001 -m http://localhost:6000 -b http://localhost:7001`,
	RunE: runVolume,
}

func init() {
	volumeCmd.Flags().IntP("port", "p", 7000, "Port to listen on")
	volumeCmd.Flags().StringP("data-dir", "d", "/tmp/kalavarastore", "Data directory")
	volumeCmd.Flags().IntP("threads", "t", 0, "Number of workers, defaults to number of cpu cores")
	volumeCmd.Flags().StringP("master", "m", "", "Master server to register with")
	volumeCmd.Flags().StringP("base", "b", "", "Base URL this volume is reachable at (required with -m)")
	volumeCmd.Flags().String("config", "", "YAML config file")
	volumeCmd.Flags().String("metrics-addr", "", "Serve Prometheus metrics on this address")
}

func runVolume(cmd *cobra.Command, args []string) error {
	port, _ := cmd.Flags().GetInt("port")
	dataDir, _ := cmd.Flags().GetString("data-dir")
	threads, _ := cmd.Flags().GetInt("threads")
	masterURL, _ := cmd.Flags().GetString("master")
	baseURL, _ := cmd.Flags().GetString("base")
	metricsAddr, _ := cmd.Flags().GetString("metrics-addr")

	if path, _ := cmd.Flags().GetString("config"); path != "" {
		cfg, err := config.LoadVolume(path)
		if err != nil {
			return err
		}
		if cfg.Port != 0 && !cmd.Flags().Changed("port") {
			port = cfg.Port
		}
		if cfg.DataDir != "" && !cmd.Flags().Changed("data-dir") {
			dataDir = cfg.DataDir
		}
		if cfg.Threads != 0 && !cmd.Flags().Changed("threads") {
			threads = cfg.Threads
		}
		if cfg.Master != "" && !cmd.Flags().Changed("master") {
			masterURL = cfg.Master
		}
		if cfg.Base != "" && !cmd.Flags().Changed("base") {
			baseURL = cfg.Base
		}
		if cfg.MetricsAddr != "" && !cmd.Flags().Changed("metrics-addr") {
			metricsAddr = cfg.MetricsAddr
		}
	}

	// -m and -b only make sense together.
	if (masterURL == "") != (baseURL == "") {
		fmt.Fprintln(os.Stderr, "Error: -m and -b must be given together")
		os.Exit(2)
	}

	logger := log.WithComponent("volume")

	srv, err := volume.New(dataDir)
	if err != nil {
		logger.Fatal().Err(err).Str("data_dir", dataDir).Msg("Failed to prepare data directory")
	}

	if masterURL != "" {
		if err := client.RegisterVolume(masterURL, baseURL); err != nil {
			logger.Warn().
				Err(err).
				Str("master", masterURL).
				Msg("Self-registration failed; register via the admin endpoint")
		} else {
			logger.Info().Str("master", masterURL).Msg("Registered with master")
		}
	}

	if metricsAddr != "" {
		go serveMetrics(metricsAddr)
	}

	logger.Info().
		Int("port", port).
		Str("data_dir", dataDir).
		Msg("Starting volume")

	if err := httpd.ListenAndServe(port, srv, threads); err != nil {
		logger.Fatal().Err(err).Msg("Server failed")
	}
	return nil
}
