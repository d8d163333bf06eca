package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"starmath/internal/app"
	"starmath/internal/audio"
	"starmath/internal/config"
	"starmath/internal/problemgen"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a game immediately, skipping the menus",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		operators, err := operatorsFromFlags(cmd)
		if err != nil {
			return err
		}

		return app.RunPlay(cfg, audio.NullPlayer{}, operators)
	},
}

func init() {
	playCmd.Flags().Bool("add", true, "Include addition questions")
	playCmd.Flags().Bool("sub", false, "Include subtraction questions")
	playCmd.Flags().Bool("mul", false, "Include multiplication questions")
}

// operatorsFromFlags builds the operator selection. At least one
// operator must survive the flags.
func operatorsFromFlags(cmd *cobra.Command) ([]problemgen.Operator, error) {
	add, _ := cmd.Flags().GetBool("add")
	sub, _ := cmd.Flags().GetBool("sub")
	mul, _ := cmd.Flags().GetBool("mul")

	var ops []problemgen.Operator
	if add {
		ops = append(ops, problemgen.OpAdd)
	}
	if sub {
		ops = append(ops, problemgen.OpSubtract)
	}
	if mul {
		ops = append(ops, problemgen.OpMultiply)
	}
	if len(ops) == 0 {
		return nil, fmt.Errorf("at least one of --add, --sub, --mul must be enabled")
	}
	return ops, nil
}
