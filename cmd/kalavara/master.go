package main

import (
	"net/http"
	"os"

	"github.com/kalavara/kalavara/pkg/config"
	"github.com/kalavara/kalavara/pkg/httpd"
	"github.com/kalavara/kalavara/pkg/index"
	"github.com/kalavara/kalavara/pkg/log"
	"github.com/kalavara/kalavara/pkg/master"
	"github.com/kalavara/kalavara/pkg/metrics"
	"github.com/kalavara/kalavara/pkg/registry"
	"github.com/spf13/cobra"
)

var masterCmd = &cobra.Command{
	Use:   "master",
	Short: "Run the directory server",
	Long: `Run the Kalavara master: the directory server owning the key index
and the volume registry.

Examples:
  # Start on the default port with two pre-registered volumes
  kalavara master -v http://localhost:7000 -v http://localhost:7001

  # Custom port and database directory
  kalavara master -p 6001 -d /var/lib/kalavara/db`,
	RunE: runMaster,
}

func init() {
	masterCmd.Flags().IntP("port", "p", 6000, "Port to listen on")
	masterCmd.Flags().StringP("data-dir", "d", "/tmp/kalavaradb", "Database directory")
	masterCmd.Flags().IntP("threads", "t", 0, "Number of workers, defaults to number of cpu cores")
	masterCmd.Flags().StringArrayP("volume", "v", nil, "Volume server URL to pre-register (repeatable)")
	masterCmd.Flags().String("config", "", "YAML config file")
	masterCmd.Flags().String("metrics-addr", "", "Serve Prometheus metrics on this address")
}

func runMaster(cmd *cobra.Command, args []string) error {
	port, _ := cmd.Flags().GetInt("port")
	dataDir, _ := cmd.Flags().GetString("data-dir")
	threads, _ := cmd.Flags().GetInt("threads")
	volumes, _ := cmd.Flags().GetStringArray("volume")
	metricsAddr, _ := cmd.Flags().GetString("metrics-addr")

	if path, _ := cmd.Flags().GetString("config"); path != "" {
		cfg, err := config.LoadMaster(path)
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
		if len(volumes) == 0 {
			volumes = cfg.Volumes
		}
		if cfg.MetricsAddr != "" && !cmd.Flags().Changed("metrics-addr") {
			metricsAddr = cfg.MetricsAddr
		}
	}

	logger := log.WithComponent("master")

	if err := os.MkdirAll(dataDir, 0755); err != nil {
		logger.Fatal().Err(err).Str("data_dir", dataDir).Msg("Failed to create data directory")
	}

	store, err := index.NewBoltStore(dataDir)
	if err != nil {
		logger.Fatal().Err(err).Str("data_dir", dataDir).Msg("Failed to open database")
	}
	defer store.Close()

	reg := registry.New(volumes...)
	metrics.VolumeServers.Set(float64(reg.Len()))

	if metricsAddr != "" {
		go serveMetrics(metricsAddr)
	}

	logger.Info().
		Int("port", port).
		Str("data_dir", dataDir).
		Int("volumes", reg.Len()).
		Msg("Starting master")

	if err := httpd.ListenAndServe(port, master.New(store, reg), threads); err != nil {
		logger.Fatal().Err(err).Msg("Server failed")
	}
	return nil
}

func serveMetrics(addr string) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", metrics.Handler())
	if err := http.ListenAndServe(addr, mux); err != nil {
		logger := log.WithComponent("metrics")
		logger.Error().Err(err).Msg("Metrics server failed")
	}
}
