package puzzles

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/LLIEPJIOK/adventofcode2019/internal/domain"
	"github.com/spf13/cobra"
)

type app struct {
	out    io.Writer
	errOut io.Writer
	logger *slog.Logger
}

func (a *app) print(answer domain.Answer) error {
	for _, part := range answer.Parts {
		a.logger.Info("answer", slog.String("puzzle", answer.Puzzle), slog.String("part", part.Name))

		if _, err := fmt.Fprintln(a.out, part.Value); err != nil {
			return fmt.Errorf("write answer: %w", err)
		}
	}

	return nil
}

func newRootCmd(out, errOut io.Writer) *cobra.Command {
	var logLevel string

	a := &app{
		out:    out,
		errOut: errOut,
	}

	cmd := &cobra.Command{
		Use:           "puzzles",
		Short:         "Solve numeric puzzles read from line based input files",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			logger, err := newLogger(a.errOut, logLevel)
			if err != nil {
				return err
			}

			a.logger = logger

			return nil
		},
	}

	cmd.SetOut(out)
	cmd.SetErr(errOut)
	cmd.PersistentFlags().StringVar(&logLevel, "log-level", defaultLogLevel, "log level: debug, info, warn or error")

	cmd.AddCommand(
		newFuelCmd(a),
		newPasswordCmd(a),
		newIntcodeCmd(a),
		newOrbitCmd(a),
	)

	return cmd
}

func run(ctx context.Context, args []string, out, errOut io.Writer) error {
	cmd := newRootCmd(out, errOut)
	cmd.SetArgs(args)

	return cmd.ExecuteContext(ctx)
}

func Start() error {
	return run(context.Background(), os.Args[1:], os.Stdout, os.Stderr)
}
