package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

func newListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list FILE",
		Short: "List the header and index entries of a package",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, src, err := a.open(args[0])
			if err != nil {
				return err
			}
			defer src.Close()

			out := cmd.OutOrStdout()
			h := f.Header()
			fmt.Fprintf(out, "version %s, index minor %s, %d entries, %d holes (%s)\n",
				h.Version, h.IndexMinor, f.Len(), len(f.Holes()), humanize.Bytes(f.HoleSize()))

			w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "TYPE\tGROUP\tINSTANCE\tCOMPRESSION\tSTORED\tSIZE")
			for _, e := range f.Entries() {
				size := "-"
				if d := e.DeclaredSize(); d >= 0 {
					size = humanize.IBytes(uint64(d))
				}
				fmt.Fprintf(w, "%s\t%08X\t%016X\t%s\t%s\t%s\n",
					e.TGI.Type, e.TGI.Group, e.TGI.Instance, e.Compression(),
					humanize.IBytes(uint64(e.StoredSize())), size)
			}

			return w.Flush()
		},
	}
}
