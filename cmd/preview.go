package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/ipedrax/pitch-perfect/internal/deck"
	"github.com/ipedrax/pitch-perfect/internal/preview"
	"github.com/ipedrax/pitch-perfect/internal/theme"
)

var previewCmd = &cobra.Command{
	Use:   "preview <deck.json>",
	Short: "Serve a browser preview of a deck",
	Long: `Serves the deck as a scrollable HTML page with the session log
alongside. Slide content is rendered as Markdown.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		_, store, err := loadDeck(args[0])
		if err != nil {
			return err
		}

		srv := preview.New(cfg.Preview.Port, store, theme.NewRegistry(), deck.NewSessionLog())

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

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(ctx)
	},
}

func init() {
	rootCmd.AddCommand(previewCmd)
}
