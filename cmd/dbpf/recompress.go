package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/arloliu/dbpf"
	"github.com/arloliu/dbpf/compress"
	"github.com/arloliu/dbpf/compress/refpack"
	"github.com/arloliu/dbpf/format"
)

var kindNames = map[string]format.CompressionType{
	"none":    format.CompressionNone,
	"refpack": format.CompressionRefPack,
	"zlib":    format.CompressionZLib,
}

func parseKind(name string) (format.CompressionType, error) {
	kind, ok := kindNames[strings.ToLower(name)]
	if !ok {
		return 0, fmt.Errorf("unknown compression %q (want none, refpack or zlib)", name)
	}

	return kind, nil
}

func newRecompressCmd(a *app) *cobra.Command {
	var (
		kindName   string
		decompress bool
		zlibLevel  int
		chainDepth int
	)

	cmd := &cobra.Command{
		Use:   "recompress PATH...",
		Short: "Rewrite packages with every entry in one compression",
		Long: `recompress rewrites each package in place with every entry converted to the
selected compression. Deleted and streamable entries are kept as they are.
Legacy packages can only hold uncompressed and RefPack entries.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := parseKind(kindName)
			if err != nil {
				return err
			}
			if decompress {
				kind = format.CompressionNone
			}

			files, err := collectPackages(args)
			if err != nil {
				return err
			}

			extra := []dbpf.Option{dbpf.WithZLibLevel(zlibLevel), dbpf.WithRefPackChainDepth(chainDepth)}
			stats := make([]*compress.CompressionStats, len(files))
			err = forEachFile(cmd.Context(), files, a.jobs, func(_ context.Context, i int, path string) error {
				s, err := a.recompressFile(path, kind, extra...)
				if err != nil {
					a.logger.Error("cannot recompress package", slog.String("path", path), slog.Any("error", err))
					return nil
				}
				stats[i] = &s

				return nil
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			total := compress.CompressionStats{Algorithm: kind}
			failed := 0
			for i, s := range stats {
				if s == nil {
					failed++
					continue
				}
				total.Add(*s)
				fmt.Fprintf(out, "%s: %s -> %s\n", files[i],
					humanize.Bytes(uint64(s.OriginalSize)), humanize.Bytes(uint64(s.CompressedSize)))
			}
			fmt.Fprintf(out, "%s: %s -> %s (%.1f%% saved) in %d files\n", total.Algorithm,
				humanize.Bytes(uint64(total.OriginalSize)), humanize.Bytes(uint64(total.CompressedSize)),
				total.SpaceSavings(), len(files)-failed)

			if failed > 0 {
				return fmt.Errorf("%d of %d packages could not be recompressed", failed, len(files))
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&kindName, "kind", "k", "refpack", "target compression: none, refpack or zlib")
	cmd.Flags().BoolVarP(&decompress, "decompress", "d", false, "store every entry uncompressed (same as --kind none)")
	cmd.Flags().IntVar(&zlibLevel, "zlib-level", compress.DefaultZLibLevel, "deflate level for zlib output")
	cmd.Flags().IntVar(&chainDepth, "chain-depth", refpack.DefaultChainDepth, "RefPack match candidates examined per position")

	return cmd
}

// recompressFile converts every entry of the package at path to kind and
// replaces the file atomically.
func (a *app) recompressFile(path string, kind format.CompressionType, extra ...dbpf.Option) (compress.CompressionStats, error) {
	stats := compress.CompressionStats{Algorithm: kind}

	data, err := os.ReadFile(path)
	if err != nil {
		return stats, err
	}
	stats.OriginalSize = int64(len(data))

	opts, err := a.options()
	if err != nil {
		return stats, err
	}
	src := bytes.NewReader(data)
	f, err := dbpf.Read(src, append(opts, extra...)...)
	if err != nil {
		return stats, err
	}
	for _, e := range f.Entries() {
		if !e.Compression().IsPreserved() {
			e.SetCompression(kind)
		}
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".dbpf-*"+packageExt)
	if err != nil {
		return stats, err
	}
	defer os.Remove(tmp.Name()) //nolint: errcheck

	if err := f.Write(tmp, src); err != nil {
		return stats, errors.Join(err, tmp.Close())
	}
	info, err := tmp.Stat()
	if err != nil {
		return stats, errors.Join(err, tmp.Close())
	}
	if err := tmp.Close(); err != nil {
		return stats, err
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return stats, err
	}
	stats.CompressedSize = info.Size()

	a.logger.Debug("recompressed package",
		slog.String("path", path),
		slog.String("kind", kind.String()),
		slog.Int("entries", f.Len()),
		slog.Float64("ratio", stats.CompressionRatio()))

	return stats, nil
}
