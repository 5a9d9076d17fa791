package puzzles

import (
	"fmt"

	"github.com/LLIEPJIOK/adventofcode2019/internal/domain"
	"github.com/LLIEPJIOK/adventofcode2019/internal/password"
	"github.com/spf13/cobra"
)

func newPasswordCmd(a *app) *cobra.Command {
	var (
		lo, hi    int
		exactPair bool
		workers   int
	)

	cmd := &cobra.Command{
		Use:   "password",
		Short: "Count the numbers of a range that match the password rules",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if lo > hi {
				return ErrInvalidRange{Min: lo, Max: hi}
			}

			pred := password.Predicate(password.NonDecreasingWithPair)
			if exactPair {
				pred = password.NonDecreasingWithExactPair
			}

			count, err := password.Count(cmd.Context(), lo, hi, pred, workers)
			if err != nil {
				return fmt.Errorf("count passwords: %w", err)
			}

			return a.print(domain.NewAnswer("password", domain.NewPart("matching", count)))
		},
	}

	cmd.Flags().IntVar(&lo, "min", defaultPasswordMin, "lower bound of the range, inclusive")
	cmd.Flags().IntVar(&hi, "max", defaultPasswordMax, "upper bound of the range, inclusive")
	cmd.Flags().BoolVarP(&exactPair, "exact-pair", "e", false, "require a group of exactly two equal digits")
	cmd.Flags().IntVarP(&workers, "workers", "w", defaultWorkers, "number of goroutines scanning the range")

	return cmd
}
