package main

import (
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/minhle/cv-advisor/internal/server"
)

var (
	servePort     int
	serveDataDir  string
	analysisDelay time.Duration
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes the CV analysis and catalog browsing endpoints.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 8080, "Port to listen on")
	serveCmd.Flags().StringVar(&serveDataDir, "data-dir", "", "Directory for the persisted analysis result (default $CV_ADVISOR_DATA_DIR or ./data)")
	serveCmd.Flags().DurationVar(&analysisDelay, "analysis-delay", server.DefaultAnalysisDelay, "Artificial analysis delay applied to accepted submissions")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	dataDir := serveDataDir
	if dataDir == "" {
		dataDir = os.Getenv("CV_ADVISOR_DATA_DIR")
	}
	if dataDir == "" {
		dataDir = "data"
	}

	cfg := server.Config{
		Port:          servePort,
		DataDir:       dataDir,
		AnalysisDelay: analysisDelay,
	}

	srv, err := server.New(cfg)
	if err != nil {
		return err
	}

	return srv.Start()
}
