package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/arloliu/dbpf"
)

type verifyReport struct {
	err     error
	entries int
	failed  []*dbpf.EntryError
}

func newVerifyCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "verify PATH...",
		Short: "Decompress every entry and report the ones that fail",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			files, err := collectPackages(args)
			if err != nil {
				return err
			}

			reports := make([]verifyReport, len(files))
			err = forEachFile(cmd.Context(), files, a.jobs, func(_ context.Context, i int, path string) error {
				f, src, err := a.open(path)
				if err != nil {
					reports[i].err = err
					return nil
				}
				defer src.Close()

				reports[i] = verifyReport{entries: f.Len(), failed: f.Verify(src)}

				return nil
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			bad := 0
			for i, r := range reports {
				switch {
				case r.err != nil:
					bad++
					fmt.Fprintf(out, "%s: %v\n", files[i], r.err)
				case len(r.failed) > 0:
					bad++
					for _, e := range r.failed {
						fmt.Fprintf(out, "%s: %v\n", files[i], e)
					}
				default:
					a.logger.Debug("package verified", slog.String("path", files[i]), slog.Int("entries", r.entries))
				}
			}

			if bad > 0 {
				return fmt.Errorf("%d of %d packages failed verification", bad, len(files))
			}
			fmt.Fprintf(out, "%d packages ok\n", len(files))

			return nil
		},
	}
}
