package main

import (
	"context"
	"io"

	"github.com/cockroachdb/errors"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/jptrs93/proxygen/internal/config"
	"github.com/jptrs93/proxygen/internal/generate"
	rustgen "github.com/jptrs93/proxygen/internal/generate/rust"
	"github.com/jptrs93/proxygen/internal/ir"
	"github.com/jptrs93/proxygen/internal/logger"
	"github.com/jptrs93/proxygen/internal/parser"
	"github.com/jptrs93/proxygen/internal/source"
)

func newRootCmd(fs afero.Fs) *cobra.Command {
	v := viper.New()
	var configFile string

	cmd := &cobra.Command{
		Use:   "proxygen [flags] [inputs...]",
		Short: "Generate Rust proxy accessor traits from struct declarations",
		Long: `Generate Rust proxy accessor traits from struct declarations.

For every "pub struct Name {" block in the inputs, proxygen emits a trait
ProxyName with as_self/as_mut_self plus a get_/set_ pair per field, all inside
a single "mod auto_impl" module. i64 and f64 fields are returned by value,
every other type by reference.

Inputs are file paths or quoted doublestar globs. With no inputs (and none in
proxygen.toml) the declarations are read from stdin.

Examples:
  proxygen src/attrs/dyn_attr.rs           # Generate to stdout
  proxygen 'src/**/*.rs' -o src/gen        # One file per input
  cat model.rs | proxygen                  # Read from stdin`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.Init(v, fs, configFile); err != nil {
				return err
			}
			cfg, err := config.Load(v)
			if err != nil {
				return err
			}
			if len(args) > 0 {
				cfg.Inputs = args
			}
			log := logger.New(cmd.ErrOrStderr(), cfg.Log.JSON, cfg.Log.Verbose)
			defer func() { _ = log.Sync() }()

			r := runner{
				fs:     fs,
				stdin:  cmd.InOrStdin(),
				stdout: cmd.OutOrStdout(),
				log:    log,
			}
			return r.run(cmd.Context(), cfg)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&configFile, "config", "", "config file (default: nearest proxygen.toml)")
	flags.StringP("out-dir", "o", "", "write one file per input into this directory instead of stdout")
	flags.String("suffix", rustgen.DefaultSuffix, "output file name suffix used with --out-dir")
	flags.Bool("log-json", false, "emit logs as JSON")
	flags.BoolP("verbose", "v", false, "enable debug logging")

	_ = v.BindPFlag("out_dir", flags.Lookup("out-dir"))
	_ = v.BindPFlag("suffix", flags.Lookup("suffix"))
	_ = v.BindPFlag("log.json", flags.Lookup("log-json"))
	_ = v.BindPFlag("log.verbose", flags.Lookup("verbose"))

	return cmd
}

type runner struct {
	fs     afero.Fs
	stdin  io.Reader
	stdout io.Writer
	log    *zap.SugaredLogger
}

func (r runner) run(ctx context.Context, cfg *config.Config) error {
	files, err := r.parse(ctx, cfg.Inputs)
	if err != nil {
		return err
	}

	options := generate.Options{
		OutDir: cfg.OutDir,
		Suffix: cfg.Suffix,
	}

	generators := []generate.Generator{
		rustgen.Generator{},
	}

	for _, gen := range generators {
		outputs, err := gen.Generate(files, options)
		if err != nil {
			return errors.Wrapf(err, "%s generator", gen.Name())
		}
		if err := generate.WriteFiles(ctx, r.fs, r.stdout, outputs); err != nil {
			return err
		}
		for _, out := range outputs {
			if out.Path != "" {
				r.log.Infow("generated", "file", out.Path, "generator", gen.Name())
			}
		}
	}
	return nil
}

func (r runner) parse(ctx context.Context, inputs []string) ([]ir.File, error) {
	p := parser.Parser{Fs: r.fs, Logger: r.log}
	if len(inputs) == 0 {
		r.log.Debugw("reading declarations from stdin")
		file, err := p.ParseReader(ctx, "", r.stdin)
		if err != nil {
			return nil, err
		}
		return []ir.File{file}, nil
	}

	paths, err := source.Expand(r.fs, inputs)
	if err != nil {
		return nil, err
	}
	r.log.Debugw("resolved inputs", "patterns", len(inputs), "files", len(paths))
	return p.ParseFiles(ctx, paths)
}
