package puzzles

import (
	"fmt"

	"github.com/LLIEPJIOK/adventofcode2019/internal/domain"
	"github.com/LLIEPJIOK/adventofcode2019/internal/intcode"
	"github.com/spf13/cobra"
)

func newIntcodeCmd(a *app) *cobra.Command {
	var (
		path   string
		target int
	)

	cmd := &cobra.Command{
		Use:   "intcode",
		Short: "Run an intcode program and search the noun and verb producing the target",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			list, err := a.load(cmd.Context(), path)
			if err != nil {
				return err
			}
			defer list.Release()

			program, err := intcode.ParseProgram(list.Lines())
			if err != nil {
				return fmt.Errorf("parse program: %w", err)
			}

			part1, err := intcode.SolvePart1(program)
			if err != nil {
				return fmt.Errorf("solve part 1: %w", err)
			}

			part2, err := intcode.SolvePart2(cmd.Context(), program, target)
			if err != nil {
				return fmt.Errorf("solve part 2: %w", err)
			}

			return a.print(domain.NewAnswer(
				"intcode",
				domain.NewPart("output", part1),
				domain.NewPart("noun and verb", part2),
			))
		},
	}

	addPathFlag(cmd, &path, "2.txt")
	cmd.Flags().IntVarP(&target, "target", "t", intcode.DefaultTarget, "output searched for by part 2")

	return cmd
}
