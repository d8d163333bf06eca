package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"starmath/internal/app"
	"starmath/internal/audio"
	"starmath/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "starmath",
	Short: "Arithmetic arcade for kids",
	Long:  "StarMath, a terminal arcade where kids chase the right answer across 20 levels of runaway buttons.",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		return app.Run(cfg, audio.NullPlayer{})
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(patternsCmd)
	rootCmd.AddCommand(versionCmd)
}
