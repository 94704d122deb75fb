package cmd

import (
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "pitchperfect",
	Short: "AI-assisted pitch deck editor and model relay",
	Long: `Pitch Perfect builds startup pitch decks with a local AI model. It runs
a relay in front of Ollama that paces and retries requests, walks you
through a founder questionnaire to generate a full deck, improves
individual slides on demand, and renders the result to PNG or a live
browser preview.`,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", ".pitchperfect.yml", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
