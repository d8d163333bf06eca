package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"starmath/internal/config"
	"starmath/internal/motion"
)

var patternsCmd = &cobra.Command{
	Use:   "patterns",
	Short: "Print the per-level button motion table (no game)",
	Long: `Dump the motion program assigned to each answer button at every level.

This is a stateless developer tool for tuning difficulty: it shows how
fast and how far buttons move, and how much they shrink, as levels climb.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		fmt.Printf("%-5s  %-4s  %-12s  %-7s  %s\n", "Level", "Btn", "Kind", "Scale", "Detail")
		fmt.Println(strings.Repeat("─", 64))

		for level := 1; level <= cfg.MaxLevel; level++ {
			for i, d := range motion.ForLevel(level) {
				fmt.Printf("%-5d  %-4d  %-12s  %-7.2f  %s\n",
					level, i+1, d.Kind, d.BaseScale, describe(d))
			}
		}
		return nil
	},
}

func describe(d motion.Descriptor) string {
	switch d.Kind {
	case motion.KindPulse:
		return fmt.Sprintf("sway %.1f, period %s", d.AmpX, d.Period)
	case motion.KindOscillate:
		return fmt.Sprintf("amp (%.1f, %.1f), rot %.1f, period %s", d.AmpX, d.AmpY, d.RotAmp, d.Period)
	case motion.KindWaypoints:
		return fmt.Sprintf("%d waypoints, %s per leg", len(d.Waypoints), d.SegmentDur)
	case motion.KindRandomWalk:
		return fmt.Sprintf("radius %.1f, step %s-%s", d.Radius, d.StepMin, d.StepMax)
	default:
		return "at rest"
	}
}
