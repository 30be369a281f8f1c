package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/spark-portfolio/spark/internal/config"
	"github.com/spark-portfolio/spark/internal/server"
)

var (
	servePort     int
	serveConfig   string
	serveFixtures string
	serveTagRules string
	serveCatalog  string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes the portfolio dashboard REST endpoints.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 8080, "Port to listen on")
	serveCmd.Flags().StringVar(&serveConfig, "config", "", "Path to a JSON config file")
	serveCmd.Flags().StringVar(&serveFixtures, "fixtures", "", "Path to a fixtures YAML file (embedded defaults when empty)")
	serveCmd.Flags().StringVar(&serveTagRules, "tag-rules", "", "Path to a tag ruleset JSON file")
	serveCmd.Flags().StringVar(&serveCatalog, "catalog", "", "Path to a course-suggestion catalog JSON file")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg := server.Config{
		Port:         servePort,
		FixturesPath: serveFixtures,
		TagRulesPath: serveTagRules,
		CatalogPath:  serveCatalog,
	}

	// A config file fills in anything not set by flags.
	if serveConfig != "" {
		fileCfg, err := config.LoadConfig(serveConfig)
		if err != nil {
			return err
		}
		if err := fileCfg.Validate(); err != nil {
			return err
		}
		if fileCfg.Port != 0 && servePort == 8080 {
			cfg.Port = fileCfg.Port
		}
		if cfg.FixturesPath == "" {
			cfg.FixturesPath = fileCfg.Fixtures
		}
		if cfg.TagRulesPath == "" {
			cfg.TagRulesPath = fileCfg.TagRules
		}
		if cfg.CatalogPath == "" {
			cfg.CatalogPath = fileCfg.Catalog
		}
	}

	srv, err := server.New(cfg)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}
