package puzzles

import (
	"github.com/LLIEPJIOK/adventofcode2019/internal/domain"
	"github.com/LLIEPJIOK/adventofcode2019/internal/fuel"
	"github.com/spf13/cobra"
)

func newFuelCmd(a *app) *cobra.Command {
	var (
		path   string
		strict bool
	)

	cmd := &cobra.Command{
		Use:   "fuel",
		Short: "Sum the fuel required by the module masses listed one per line",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			list, err := a.load(cmd.Context(), path)
			if err != nil {
				return err
			}
			defer list.Release()

			var masses []int
			if strict {
				masses, err = list.StrictInts()
				if err != nil {
					return err
				}
			} else {
				masses = list.Ints()
			}

			plain, recursive := fuel.Totals(masses)

			return a.print(domain.NewAnswer(
				"fuel",
				domain.NewPart("fuel", plain),
				domain.NewPart("fuel with fuel mass", recursive),
			))
		},
	}

	addPathFlag(cmd, &path, "1.txt")
	cmd.Flags().BoolVar(&strict, "strict", false, "reject lines that are not whole integers")

	return cmd
}
