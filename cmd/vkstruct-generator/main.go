// Package main provides the CLI entrypoint for vkstruct-generator.
//
// vkstruct-generator reads the Vulkan registry (vk.xml) and, for every
// qualifying structure, emits:
//   - a native mirror declaring every member verbatim
//   - a builder holding only the members a caller sets, with counts folded
//     into sequences and pointers turned into references
//
// Flags fall back to VKGEN_REGISTRY, VKGEN_OUTPUT and VKGEN_CONFIG, which may
// also come from a .env file in the working directory.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/davecgh/go-spew/spew"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"vkstruct-generator/internal/config"
	"vkstruct-generator/internal/gen"
	"vkstruct-generator/internal/plan"
)

var errNoRegistry = errors.New("no registry given: use -registry or " + config.EnvRegistry)

type options struct {
	registry string
	output   string
	config   string
	export   string
	dump     bool
	verbose  bool
}

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "vkstruct-generator:", err)
		os.Exit(1)
	}
}

func parseFlags(args []string, stderr io.Writer) (*options, error) {
	env := config.LoadEnv()
	opts := &options{}

	fs := flag.NewFlagSet("vkstruct-generator", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opts.registry, "registry", env.Registry, "path to vk.xml")
	fs.StringVar(&opts.output, "out", env.Output, "output file, - for stdout")
	fs.StringVar(&opts.config, "config", env.Config, "optional YAML config file")
	fs.StringVar(&opts.export, "export", "", "write the resolved plan as YAML to this file")
	fs.BoolVar(&opts.dump, "dump", false, "dump the resolved plan to stderr")
	fs.BoolVar(&opts.verbose, "verbose", false, "log debug output")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if opts.registry == "" {
		return nil, errNoRegistry
	}

	return opts, nil
}

func run(args []string, stdout, stderr io.Writer) error {
	opts, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}

	logger, err := newLogger(opts.verbose)
	if err != nil {
		return fmt.Errorf("creating logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	cfg := config.Default()
	if opts.config != "" {
		cfg, err = config.LoadFile(opts.config)
		if err != nil {
			return err
		}
	}

	res, err := gen.NewPipeline(cfg, logger.Sugar()).RunFile(opts.registry)
	if err != nil {
		return err
	}

	if opts.dump {
		spew.Fdump(stderr, res.Plan.Structs)
	}

	if opts.export != "" {
		data, err := plan.ExportYAML(res.Plan)
		if err != nil {
			return fmt.Errorf("exporting plan: %w", err)
		}

		if err := gen.WriteOutput(opts.export, data, stdout); err != nil {
			return err
		}
	}

	return gen.WriteOutput(opts.output, res.File.Content, stdout)
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	cfg.Encoding = "console"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	return cfg.Build()
}
