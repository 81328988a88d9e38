package main

import (
	"io"
	"log/slog"
	"os"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/arloliu/dbpf"
	"github.com/arloliu/dbpf/compress/refpack"
)

// debugEnv enables debug logging when set to any non-empty value.
const debugEnv = "DBPF_DEBUG"

// app holds the global flags and the logger shared by every subcommand.
type app struct {
	verbose         bool
	jobs            int
	variants        string
	detectAmbiguity bool

	logger *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{logger: slog.New(slog.DiscardHandler)}

	root := &cobra.Command{
		Use:   "dbpf",
		Short: "Inspect and rewrite DBPF .package files",
		Long: `dbpf reads and writes DBPF containers as used by The Sims 2 and later
Maxis titles. Commands that take PATH arguments accept files and directories;
directories are searched recursively for .package files.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			a.logger = newLogger(cmd.ErrOrStderr(), a.verbose || os.Getenv(debugEnv) != "")
		},
	}

	flags := root.PersistentFlags()
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging (also enabled by "+debugEnv+")")
	flags.IntVarP(&a.jobs, "jobs", "j", runtime.GOMAXPROCS(0), "number of files processed concurrently")
	flags.StringVar(&a.variants, "refpack-variants", "maxis,simea,reference", "RefPack header dialects to try, in order")
	flags.BoolVar(&a.detectAmbiguity, "detect-ambiguity", false, "warn when more than one RefPack dialect accepts a blob")

	root.AddCommand(
		newListCmd(a),
		newHolesCmd(a),
		newRecompressCmd(a),
		newConflictsCmd(a),
		newVerifyCmd(a),
		newExtractCmd(a),
	)

	return root
}

func newLogger(w io.Writer, debug bool) *slog.Logger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// options returns the engine options selected by the global flags.
func (a *app) options() ([]dbpf.Option, error) {
	variants, err := refpack.ParseVariants(a.variants)
	if err != nil {
		return nil, err
	}

	return []dbpf.Option{
		dbpf.WithLogger(a.logger),
		dbpf.WithRefPackVariants(variants...),
		dbpf.WithAmbiguityDetection(a.detectAmbiguity),
	}, nil
}

// open reads the index of the package at path. The returned file must be
// closed by the caller once no entry needs to be resolved anymore.
func (a *app) open(path string) (*dbpf.File, *os.File, error) {
	opts, err := a.options()
	if err != nil {
		return nil, nil, err
	}

	src, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	f, err := dbpf.Read(src, opts...)
	if err != nil {
		_ = src.Close()
		return nil, nil, err
	}

	return f, src, nil
}
