package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/ipedrax/pitch-perfect/internal/gateway"
	"github.com/ipedrax/pitch-perfect/internal/ollama"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the model relay in front of Ollama",
	Long: `Starts the HTTP relay that browser clients and the other commands talk
to. The relay paces inbound requests, retries transient upstream
failures, and answers with permissive CORS so a locally opened editor
page can reach it.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		upstream := ollama.NewClient(cfg.Ollama.URL, ollama.Options{
			Timeout:    time.Duration(cfg.Ollama.Timeout) * time.Second,
			Retries:    cfg.Ollama.Retries,
			RetryDelay: time.Duration(cfg.Ollama.Delay) * time.Second,
		})

		srv := gateway.New(gateway.Config{
			Port:         cfg.Gateway.Port,
			Interval:     time.Duration(cfg.Gateway.Interval) * time.Millisecond,
			DefaultModel: cfg.Models.Default,
		}, upstream)

		errCh := make(chan error, 1)
		go func() { errCh <- srv.Start() }()

		stop := make(chan os.Signal, 1)
		signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

		select {
		case err := <-errCh:
			return err
		case sig := <-stop:
			fmt.Fprintf(os.Stderr, "\nReceived %s, shutting down\n", sig)
		}

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(ctx)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
