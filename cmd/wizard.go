package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ipedrax/pitch-perfect/internal/deck"
	"github.com/ipedrax/pitch-perfect/internal/progress"
	"github.com/ipedrax/pitch-perfect/internal/wizard"
)

var wizardCmd = &cobra.Command{
	Use:   "wizard",
	Short: "Answer the founder questionnaire and generate a deck",
	Long: `Walks through six questions about your startup, sizes the deck to your
presentation length, and asks the model to write every slide. The
result is saved as a deck JSON file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		out, _ := cmd.Flags().GetString("out")
		title, _ := cmd.Flags().GetString("title")

		ctx := context.Background()
		gen, err := newGenerator(ctx, cfg)
		if err != nil {
			return err
		}

		answers, slideCount, err := wizard.Run()
		if err != nil {
			return fmt.Errorf("questionnaire: %w", err)
		}

		fmt.Printf("\nGenerating a %d-slide deck...\n", slideCount)
		gen.SetReporter(progress.NewReporter("Generating slides"))
		slides, err := gen.GenerateDeck(ctx, answers, slideCount)
		if err != nil {
			return err
		}
		if verbose {
			for _, e := range gen.Log().Entries() {
				fmt.Printf("--- %s ---\n%s\n", e.Role, e.Content)
			}
		}

		store := deck.NewStore()
		store.Append(slides...)
		if err := deck.SaveFile(out, title, store); err != nil {
			return err
		}

		fmt.Printf("Wrote %d slides to %s (theme %s)\n", store.Len(), out, slides[0].Theme)
		return nil
	},
}

func init() {
	wizardCmd.Flags().String("out", "deck.json", "output deck file")
	wizardCmd.Flags().String("title", "Pitch Deck", "deck title")
	rootCmd.AddCommand(wizardCmd)
}
