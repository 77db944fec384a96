/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/ssargent/fitwire/pkg/api"
	"github.com/ssargent/fitwire/pkg/config"
	"github.com/ssargent/fitwire/pkg/storage"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long: `Start the fitwire REST API server.

Uploaded activity files are decoded and their summaries stored locally.
Configuration comes from the config file; flags override it.

Examples:
  fitwire serve
  fitwire serve --port=9000 --strict-crc`,
	RunE: func(cmd *cobra.Command, args []string) error {
		configPath, _ := cmd.Flags().GetString("config")
		if configPath == "" {
			configPath = config.GetDefaultConfigPath()
		}

		var cfg *config.Config
		var err error
		if config.ConfigExists(configPath) {
			cfg, err = config.LoadConfig(configPath)
			if err != nil {
				return err
			}
		} else {
			log.Info().Str("path", configPath).Msg("no config file found, bootstrapping one")
			cfg, err = config.BootstrapConfig(configPath, "")
			if err != nil {
				return err
			}
			log.Info().
				Str("path", configPath).
				Msg("generated client API key, see config file")
		}

		if cmd.Flags().Changed("port") {
			cfg.Port, _ = cmd.Flags().GetInt("port")
		}
		if cmd.Flags().Changed("data-dir") {
			cfg.DataDir, _ = cmd.Flags().GetString("data-dir")
		}
		if cmd.Flags().Changed("strict-crc") {
			cfg.Decode.StrictCRC, _ = cmd.Flags().GetBool("strict-crc")
		}

		if err := os.MkdirAll(cfg.DataDir, 0750); err != nil {
			return fmt.Errorf("failed to create data dir: %w", err)
		}

		store, err := storage.NewActivityStore(filepath.Join(cfg.DataDir, "activities"))
		if err != nil {
			return fmt.Errorf("failed to open activity store: %w", err)
		}
		defer store.Close()

		serverConfig := api.ServerConfig{
			Port:           cfg.Port,
			Bind:           cfg.Bind,
			APIKey:         cfg.Security.ClientAPIKey,
			DataDir:        cfg.DataDir,
			StrictCRC:      cfg.Decode.StrictCRC,
			MaxUploadBytes: cfg.Decode.MaxUploadBytes,
		}

		return api.StartServer(store, serverConfig, log)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().String("config", "", "Path to the config file")
	serveCmd.Flags().IntP("port", "p", 8080, "Port to listen on")
	serveCmd.Flags().String("data-dir", "./data", "Data directory for stored summaries")
	serveCmd.Flags().Bool("strict-crc", false, "Reject uploads whose checksum does not match")
}
