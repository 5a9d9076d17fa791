package puzzles

import (
	"fmt"

	"github.com/LLIEPJIOK/adventofcode2019/internal/domain"
	"github.com/LLIEPJIOK/adventofcode2019/internal/orbit"
	"github.com/spf13/cobra"
)

func newOrbitCmd(a *app) *cobra.Command {
	var path, from, to string

	cmd := &cobra.Command{
		Use:   "orbit",
		Short: "Count orbits and the transfers between two objects of an orbit map",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			list, err := a.load(cmd.Context(), path)
			if err != nil {
				return err
			}
			defer list.Release()

			orbits, err := orbit.Parse(list.Lines())
			if err != nil {
				return fmt.Errorf("parse orbit map: %w", err)
			}

			transfers, err := orbits.Transfers(from, to)
			if err != nil {
				return fmt.Errorf("count transfers: %w", err)
			}

			return a.print(domain.NewAnswer(
				"orbit",
				domain.NewPart("orbits", orbits.Checksum()),
				domain.NewPart("transfers", transfers),
			))
		},
	}

	addPathFlag(cmd, &path, "6.txt")
	cmd.Flags().StringVarP(&from, "from", "f", "YOU", "object to transfer from")
	cmd.Flags().StringVarP(&to, "to", "t", "SAN", "object to transfer to")

	return cmd
}
