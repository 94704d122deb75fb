package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ipedrax/pitch-perfect/internal/deck"
)

var improveCmd = &cobra.Command{
	Use:   "improve <deck.json>",
	Short: "Ask the model to improve one slide of a deck",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		index, _ := cmd.Flags().GetInt("slide")

		f, store, err := loadDeck(args[0])
		if err != nil {
			return err
		}
		slide, err := store.Get(index)
		if err != nil {
			return fmt.Errorf("deck has %d slides: %w", store.Len(), err)
		}

		ctx := context.Background()
		gen, err := newGenerator(ctx, cfg)
		if err != nil {
			return err
		}

		fmt.Printf("Improving slide %d (%s)...\n", index, slide.Title)
		improved, err := gen.ImproveSlide(ctx, slide, index)
		if err != nil {
			return err
		}
		if verbose {
			for _, e := range gen.Log().Entries() {
				fmt.Printf("--- %s ---\n%s\n", e.Role, e.Content)
			}
		}

		slides := store.Slides()
		slides[index] = improved
		store.Replace(slides)
		if err := deck.SaveFile(args[0], f.Title, store); err != nil {
			return err
		}

		fmt.Printf("Slide %d is now %q with theme %s\n", index, improved.Title, improved.Theme)
		return nil
	},
}

func init() {
	improveCmd.Flags().Int("slide", 0, "slide index to improve")
	rootCmd.AddCommand(improveCmd)
}
