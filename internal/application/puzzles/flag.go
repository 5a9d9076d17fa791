package puzzles

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"

	"github.com/LLIEPJIOK/adventofcode2019/internal/linelist"
	"github.com/spf13/cobra"
)

const (
	defaultLogLevel = "info"

	defaultPasswordMin = 357253
	defaultPasswordMax = 892942
)

var defaultWorkers = runtime.NumCPU()

func addPathFlag(cmd *cobra.Command, path *string, value string) {
	cmd.Flags().StringVarP(path, "path", "p", value, "path or URL of the input file")
}

// load reads the input at path. The caller releases the returned list.
func (a *app) load(ctx context.Context, path string) (*linelist.List, error) {
	if path == "" {
		return nil, ErrEmptyPath{}
	}

	list, err := linelist.Load(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("load input: %w", err)
	}

	a.logger.Debug("input loaded", slog.String("source", path), slog.Int("lines", list.Len()))

	return list, nil
}
