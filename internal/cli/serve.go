package cli

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/avetrov/kyclens/internal/server"
)

var (
	serveAddr     string
	serveProvider string
	serveModel    string
	serveClassify bool
	serveFetch    bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the Case API HTTP server",
	Long: `Serve starts the synchronous Case API:

  POST /case/check   run a compliance case
  GET  /case/sample  sample request payload
  GET  /healthz      liveness
  GET  /metrics      Prometheus metrics

Example:
  kyclens serve --addr :8080 --oracle openai`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&serveAddr, "addr", ":8080", "listen address")
	serveCmd.Flags().StringVar(&serveProvider, "oracle", "", "oracle provider (openai, anthropic); empty runs deterministic fallbacks")
	serveCmd.Flags().StringVar(&serveModel, "oracle-model", "", "oracle model name")
	serveCmd.Flags().BoolVar(&serveClassify, "classify", false, "enable outcome/category classification")
	serveCmd.Flags().BoolVar(&serveFetch, "fetch", false, "fetch article text for hits that carry only a URL")

}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("addr") {
		cfg.Server.Addr = serveAddr
	}
	if serveProvider != "" {
		cfg.Oracle.Provider = serveProvider
	}
	if serveModel != "" {
		cfg.Oracle.Model = serveModel
	}
	if serveClassify {
		cfg.Classify.Enabled = true
	}
	if serveFetch {
		cfg.Fetch.Enabled = true
	}

	logger := newLogger()
	p, err := buildPipeline(cfg, logger)
	if err != nil {
		return err
	}

	srv := server.New(cfg.Server, p, logger)

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-stop:
		logger.Info("shutting down", "signal", sig.String())
	}

	shutdownTimeout := cfg.Server.ShutdownTimeout
	if shutdownTimeout == 0 {
		shutdownTimeout = 10 * time.Second
	}
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(ctx)
}
