package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

type holeReport struct {
	ok    bool
	holes int
	size  uint64
}

func newHolesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "holes PATH...",
		Short: "Report space wasted by hole tables",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			files, err := collectPackages(args)
			if err != nil {
				return err
			}

			reports := make([]holeReport, len(files))
			err = forEachFile(cmd.Context(), files, a.jobs, func(_ context.Context, i int, path string) error {
				f, src, err := a.open(path)
				if err != nil {
					a.logger.Error("cannot read package", slog.String("path", path), slog.Any("error", err))
					return nil
				}
				defer src.Close()

				reports[i] = holeReport{ok: true, holes: len(f.Holes()), size: f.HoleSize()}

				return nil
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			var total uint64
			read := 0
			for i, r := range reports {
				if !r.ok {
					continue
				}
				read++
				total += r.size
				if r.size > 0 {
					fmt.Fprintf(out, "%s %s in %d holes\n", files[i], humanize.Bytes(r.size), r.holes)
				}
			}
			fmt.Fprintf(out, "%s in holes across %d files\n", humanize.Bytes(total), read)

			return nil
		},
	}
}
