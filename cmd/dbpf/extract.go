package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/arloliu/dbpf/format"
	"github.com/arloliu/dbpf/resource"
	"github.com/arloliu/dbpf/tgi"
)

func newExtractCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "extract FILE DIR",
		Short: "Write every entry's decompressed payload to a directory",
		Long: `extract decompresses every entry of FILE into DIR. Resources that embed a
name are saved under it, others under their group and instance. Entries that
cannot be decompressed are saved in their stored form.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, src, err := a.open(args[0])
			if err != nil {
				return err
			}
			defer src.Close()

			dir := args[1]
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return err
			}

			written := 0
			for _, e := range f.Entries() {
				data, err := e.Data(src)
				if err != nil {
					return err
				}

				form := "raw"
				switch e.Compression() {
				case format.CompressionRefPack:
					form = "refpak"
				case format.CompressionZLib:
					form = "zlib"
				}
				payload, err := data.Decompressed()
				if err != nil {
					a.logger.Warn("keeping stored form", slog.String("tgi", e.TGI.String()), slog.Any("error", err))
					stored, _ := data.CompressedForm()
					payload, form = stored.Bytes, "stored"
				}

				name := extractName(e.TGI, payload, form)
				if err := os.WriteFile(filepath.Join(dir, name), payload, 0o644); err != nil { //nolint: gosec
					return err
				}
				written++
			}
			fmt.Fprintf(cmd.OutOrStdout(), "extracted %d entries to %s\n", written, dir)

			return nil
		},
	}
}

// extractName builds "<name>.<form>.<ext>", where name is the embedded
// resource name when the type has one.
func extractName(key tgi.TGI, payload []byte, form string) string {
	base, ok := resource.EmbeddedName(key.Type, payload)
	if ok {
		base = fmt.Sprintf("%s.%016X", sanitizeName(base), key.Instance)
	} else {
		base = fmt.Sprintf("%08X-%016X", key.Group, key.Instance)
	}

	return fmt.Sprintf("%s.%s.%s", base, form, key.Type.Extension())
}

func sanitizeName(name string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r == '/' || r == '\\' || r == ':' || r < 0x20 || r == 0x7F:
			return '_'
		default:
			return r
		}
	}, name)
}
