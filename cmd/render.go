package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/ipedrax/pitch-perfect/internal/progress"
	"github.com/ipedrax/pitch-perfect/internal/render"
	"github.com/ipedrax/pitch-perfect/internal/theme"
)

var renderCmd = &cobra.Command{
	Use:   "render <deck.json>",
	Short: "Render every slide of a deck to PNG files",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		outDir, _ := cmd.Flags().GetString("out")
		if outDir == "" {
			outDir = cfg.Render.Output
		}

		_, store, err := loadDeck(args[0])
		if err != nil {
			return err
		}
		if store.Len() == 0 {
			return fmt.Errorf("deck %s has no slides", args[0])
		}

		if err := os.MkdirAll(outDir, 0755); err != nil {
			return fmt.Errorf("creating output dir: %w", err)
		}

		r, err := render.New(cfg.Render.Width, cfg.Render.Height, theme.NewRegistry())
		if err != nil {
			return err
		}

		reporter := progress.NewReporter("Rendering slides")
		reporter.Start(store.Len())
		for i, s := range store.Slides() {
			path := filepath.Join(outDir, fmt.Sprintf("slide-%02d.png", i+1))
			if err := r.RenderPNG(s, path); err != nil {
				reporter.Finish()
				return fmt.Errorf("rendering slide %d: %w", i, err)
			}
			reporter.Update(i+1, s.Title)
		}
		reporter.Finish()

		fmt.Printf("Rendered %d slides to %s\n", store.Len(), outDir)
		return nil
	},
}

func init() {
	renderCmd.Flags().String("out", "", "output directory (default from config)")
	rootCmd.AddCommand(renderCmd)
}
