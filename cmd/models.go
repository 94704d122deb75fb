package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var modelsCmd = &cobra.Command{
	Use:   "models",
	Short: "List the models available for generation",
	Long: `Prints the model list. By default this is the built-in cached list;
with models.live enabled in the config, the list is fetched from the
relay instead.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		ctx := context.Background()
		client := newFacade(ctx, cfg)

		if test, _ := cmd.Flags().GetBool("test"); test {
			res := client.TestConnection(ctx)
			if res.Success {
				fmt.Printf("Relay reachable at %s (%d models)\n", res.Endpoint, res.Models)
			} else {
				fmt.Printf("Relay not reachable: %s\n", res.Error)
			}
			return nil
		}

		for _, name := range client.ListModels(ctx) {
			marker := " "
			if name == cfg.Models.Default {
				marker = "*"
			}
			fmt.Printf("%s %s\n", marker, name)
		}
		return nil
	},
}

func init() {
	modelsCmd.Flags().Bool("test", false, "test the relay connection instead of listing")
	rootCmd.AddCommand(modelsCmd)
}
