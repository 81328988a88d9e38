package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/arloliu/dbpf/internal/conflict"
	"github.com/arloliu/dbpf/internal/hash"
)

func newConflictsCmd(a *app) *cobra.Command {
	var (
		content  bool
		allTypes bool
	)

	cmd := &cobra.Command{
		Use:   "conflicts PATH...",
		Short: "Find resources that later packages override",
		Long: `conflicts loads packages in path order and reports, for every pair of
packages, the TGIs the later package overrides. By default only behavior
resources outside the package-local group are considered.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			files, err := collectPackages(args)
			if err != nil {
				return err
			}

			filter := conflict.DefaultFilter
			if allTypes {
				filter = conflict.AllFilter
			}

			resources := make([][]conflict.Resource, len(files))
			err = forEachFile(cmd.Context(), files, a.jobs, func(_ context.Context, i int, path string) error {
				res, err := a.packageResources(path, filter, content)
				if err != nil {
					a.logger.Error("cannot read package", slog.String("path", path), slog.Any("error", err))
					return nil
				}
				resources[i] = res

				return nil
			})
			if err != nil {
				return err
			}

			tracker := conflict.NewTracker(filter)
			out := cmd.OutOrStdout()
			for i, path := range files {
				if resources[i] == nil {
					continue
				}
				found, err := tracker.Track(path, resources[i])
				if err != nil {
					return err
				}
				for _, c := range found {
					fmt.Fprintln(out, c.String())
					a.logger.Debug("conflict found",
						slog.String("original", c.Original),
						slog.String("new", c.New),
						slog.Int("tgis", len(c.TGIs)))
				}
			}
			a.logger.Info("conflict scan finished",
				slog.Int("files", len(files)),
				slog.Int("tgis", tracker.Count()),
				slog.Int("conflicts", len(tracker.Conflicts())))

			return nil
		},
	}

	cmd.Flags().BoolVar(&content, "content", false, "ignore overrides whose payload is byte-identical")
	cmd.Flags().BoolVar(&allTypes, "all-types", false, "consider every resource type and group")

	return cmd
}

// packageResources lists the resources of the package at path that filter
// accepts, fingerprinting their decompressed payloads when content is set.
func (a *app) packageResources(path string, filter conflict.Filter, content bool) ([]conflict.Resource, error) {
	f, src, err := a.open(path)
	if err != nil {
		return nil, err
	}
	defer src.Close()

	res := make([]conflict.Resource, 0, f.Len())
	for _, e := range f.Entries() {
		if !filter(e.TGI) {
			continue
		}
		r := conflict.Resource{TGI: e.TGI}
		if content {
			data, err := e.Data(src)
			if err == nil {
				var raw []byte
				if raw, err = data.Peek(); err == nil {
					r.Hash, r.Hashed = hash.Content(raw), true
				}
			}
			if err != nil {
				a.logger.Warn("cannot fingerprint entry",
					slog.String("path", path),
					slog.String("tgi", e.TGI.String()),
					slog.Any("error", err))
			}
		}
		res = append(res, r)
	}

	return res, nil
}
