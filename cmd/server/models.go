package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sevigo/review-relay/internal/ai"
)

var modelsCmd = &cobra.Command{
	Use:   "models [openai|tongyi|custom]",
	Short: "List the models known for an AI provider.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		providers := []ai.Provider{ai.ProviderOpenAI, ai.ProviderTongyi}
		if len(args) == 1 {
			p := ai.Provider(args[0])
			switch p {
			case ai.ProviderOpenAI, ai.ProviderTongyi, ai.ProviderCustom:
			default:
				return fmt.Errorf("unknown provider %q", p)
			}
			providers = []ai.Provider{p}
		}

		out := cmd.OutOrStdout()
		for _, p := range providers {
			fmt.Fprintf(out, "%s:\n", p)
			for _, m := range ai.SupportedModels(p) {
				fmt.Fprintf(out, "- %s\n", m)
			}
		}
		return nil
	},
}
