// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// cli.go - Flag parsing and the ils command run.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"runtime"
	"time"

	"github.com/muesli/termenv"
	"go.uber.org/zap"

	"github.com/jeranaias/ils/internal/config"
	"github.com/jeranaias/ils/internal/display"
	"github.com/jeranaias/ils/internal/locale"
	"github.com/jeranaias/ils/internal/logging"
	"github.com/jeranaias/ils/internal/source"
	"github.com/jeranaias/ils/internal/styles"
)

// Version information (can be overridden at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// Args holds parsed CLI arguments.
type Args struct {
	Long      bool
	All       bool
	Hyperlink bool
	Human     bool

	Color      string // empty when --color was not given
	Width      int    // zero when --width was not given
	Ignore     []string
	ConfigPath string

	Paths []string

	WriteConfig bool

	Help    bool
	Version bool
}

const usageText = `ils - list directory contents

USAGE:
  ils [flags] [PATH]...

FLAGS:
  -l, --long             Long format: permissions, owner, size, date, name
  -a, --all              Include entries whose names start with '.'
      --color WHEN       Color names: auto, always or never (default auto)
      --hyperlink        Wrap names in terminal hyperlinks
      --human            Print sizes as KiB, MiB, ...
      --width N          Lay out for N columns instead of the terminal width
      --ignore GLOB      Skip names matching GLOB (repeatable)
      --config FILE      Read settings from FILE instead of ~/.ils/config.toml
      --write-config     Save the effective settings to the config file and exit
  -h, --help             Show this help
      --version          Show version information

ENVIRONMENT:
  LC_TIME        Locale for dates in long format
  COLUMNS        Layout width when --width is not given
  NO_COLOR       Disable color in auto mode
  FORCE_COLOR    Enable color in auto mode even when not a terminal
  ILS_LOG_LEVEL  Log level: debug, info, warn, error
  ILS_CONFIG     Config file path

EXAMPLES:
  ils
  ils -la /etc
  ils --ignore '*.o' --width 60 build
`

var (
	valueFlags = []string{"color", "width", "ignore", "config"}
	boolFlags  = []string{"l", "long", "a", "all", "hyperlink", "human", "write-config", "h", "help", "version"}
)

// ParseArgs parses the command line, excluding the program name.
func ParseArgs(raw []string) (Args, error) {
	p, err := NewArgParser(raw, valueFlags...)
	if err != nil {
		return Args{}, err
	}

	if unknown := p.Unknown(boolFlags...); len(unknown) > 0 {
		name := unknown[0]
		if len(name) == 1 {
			return Args{}, &UsageError{Message: fmt.Sprintf("unknown flag -%s", name)}
		}
		return Args{}, &UsageError{Message: fmt.Sprintf("unknown flag --%s", name)}
	}

	args := Args{
		Long:        p.BoolFlag("l", "long"),
		All:         p.BoolFlag("a", "all"),
		Hyperlink:   p.BoolFlag("hyperlink"),
		Human:       p.BoolFlag("human"),
		Color:       p.Flag("color"),
		Ignore:      p.Flags("ignore"),
		ConfigPath:  p.Flag("config"),
		Paths:       p.Positional(),
		WriteConfig: p.BoolFlag("write-config"),
		Help:        p.BoolFlag("h", "help"),
		Version:     p.BoolFlag("version"),
	}

	switch args.Color {
	case "", config.ColorAuto, config.ColorAlways, config.ColorNever:
	default:
		return Args{}, &UsageError{Message: fmt.Sprintf("invalid --color %q, must be one of: auto, always, never", args.Color)}
	}

	width, ok, err := p.FlagInt("width")
	if err != nil {
		return Args{}, err
	}
	if ok && width <= 0 {
		return Args{}, &UsageError{Message: fmt.Sprintf("--width must be positive, got %d", width)}
	}
	args.Width = width

	if err := (source.Filter{Ignore: args.Ignore}).Validate(); err != nil {
		return Args{}, &UsageError{Message: err.Error()}
	}

	if len(args.Paths) == 0 {
		args.Paths = []string{"."}
	}
	return args, nil
}

// apply overlays the flags that were given onto cfg.
func (a Args) apply(cfg *config.Config) {
	if a.Long {
		cfg.Display.Long = true
	}
	if a.All {
		cfg.Source.All = true
	}
	if a.Hyperlink {
		cfg.Display.Hyperlink = true
	}
	if a.Human {
		cfg.Display.HumanSizes = true
	}
	if a.Color != "" {
		cfg.Display.Color = a.Color
	}
	cfg.Source.Ignore = append(cfg.Source.Ignore, a.Ignore...)
}

// =============================================================================
// RUN
// =============================================================================

// App runs ils against its output streams.
type App struct {
	Stdout io.Writer
	Stderr io.Writer

	// FS replaces the host filesystem when set. Paths then use fs.FS syntax.
	FS fs.FS

	// Location is the time zone dates render in. Nil means time.Local.
	Location *time.Location
}

// Run runs ils with the process streams and returns the exit code.
func Run(ctx context.Context, args []string) int {
	app := &App{Stdout: os.Stdout, Stderr: os.Stderr}
	return app.Run(ctx, args)
}

// Run parses args, lists every path and returns the exit code. Errors are
// printed once to Stderr.
func (a *App) Run(ctx context.Context, args []string) int {
	err := a.run(ctx, args)
	if err != nil {
		var cmdErr *CommandError
		if errors.As(err, &cmdErr) {
			fmt.Fprintln(a.Stderr, err)
		} else {
			fmt.Fprintf(a.Stderr, "ils: %v\n", err)
		}
		if ExitCode(err) == ExitUsageError {
			fmt.Fprintln(a.Stderr, "Try 'ils --help' for more information.")
		}
	}
	return ExitCode(err)
}

func (a *App) run(ctx context.Context, raw []string) error {
	args, err := ParseArgs(raw)
	if err != nil {
		return err
	}
	if args.Help {
		_, err := io.WriteString(a.Stdout, usageText)
		return err
	}
	if args.Version {
		_, err := fmt.Fprintf(a.Stdout, "ils %s (commit %s, built %s, %s/%s)\n",
			Version, GitCommit, BuildDate, runtime.GOOS, runtime.GOARCH)
		return err
	}

	env, err := config.LoadEnv()
	if err != nil {
		return NewCommandError(ActionConfig, "cannot read environment", err)
	}
	cfg, err := config.Load(args.ConfigPath, env)
	if err != nil && args.WriteConfig && errors.Is(err, fs.ErrNotExist) {
		cfg, err = config.Default(), nil
		cfg.ApplyEnv(env)
	}
	if err != nil {
		return NewCommandError(ActionConfig, "cannot load configuration", err)
	}
	args.apply(cfg)

	if args.WriteConfig {
		return a.writeConfig(cfg, args.ConfigPath, env)
	}

	logger, err := logging.New(logging.Config{
		Level:       cfg.Log.Level,
		Development: cfg.Log.Development,
		OutputPaths: []string{"stderr"},
	})
	if err != nil {
		return NewCommandError(ActionConfig, "cannot start logger", err)
	}
	defer func() { _ = logger.Sync() }()

	tag, err := locale.Parse(env.TimeLocale)
	if err != nil {
		logger.Debug("using default locale", zap.String("LC_TIME", env.TimeLocale), zap.Error(err))
		tag = locale.Default
	}

	filter := source.Filter{All: cfg.Source.All, Ignore: cfg.Source.Ignore}
	var src source.Source = &source.DirSource{Filter: filter, Logger: logger}
	if a.FS != nil {
		src = &source.FSSource{Filter: filter, FS: a.FS}
	}

	// fs.FS paths have no host location to link to.
	hyperlink := cfg.Display.Hyperlink && a.FS == nil

	hostname, _ := os.Hostname()
	profile := ColorProfile(cfg.Display.Color, env, a.Stdout)
	opts := display.Options{
		Long:       cfg.Display.Long,
		TermWidth:  ResolveWidth(args.Width, env, a.Stdout),
		Hyperlink:  hyperlink,
		HumanSizes: cfg.Display.HumanSizes,
		Locale:     locale.New(tag, a.Location),
	}
	logger.Debug("listing",
		zap.Strings("paths", args.Paths),
		zap.Int("width", opts.TermWidth),
		zap.Bool("long", opts.Long),
		zap.String("locale", tag.String()))

	out := bufio.NewWriter(a.Stdout)
	err = a.list(ctx, out, src, args.Paths, opts, styles.Options{
		Hyperlink: hyperlink,
		Hostname:  hostname,
	}, profile)
	if flushErr := out.Flush(); flushErr != nil && err == nil {
		err = NewCommandError(ActionRender, "cannot write listing",
			&display.WriteError{Stage: "flush", Err: flushErr})
	}
	return err
}

// writeConfig saves cfg where it would be loaded from next time.
func (a *App) writeConfig(cfg *config.Config, path string, env config.Env) error {
	path, err := config.SavePath(path, env)
	if err != nil {
		return NewCommandError(ActionConfig, "cannot locate config file", err)
	}
	if err := config.SaveTOML(cfg, path); err != nil {
		return NewCommandError(ActionConfig, "cannot save configuration", err)
	}
	_, err = fmt.Fprintf(a.Stdout, "wrote %s\n", path)
	return err
}

// list renders each path in turn. With several paths every listing gets a
// "path:" header and listings are separated by a blank line.
func (a *App) list(ctx context.Context, w io.Writer, src source.Source, paths []string,
	opts display.Options, styleOpts styles.Options, profile termenv.Profile) error {
	multi := len(paths) > 1
	for i, path := range paths {
		entries, err := src.List(ctx, path)
		if err != nil {
			return NewCommandError(ActionList, fmt.Sprintf("cannot access '%s'", path), err)
		}

		if multi {
			header := path + ":\n"
			if i > 0 {
				header = "\n" + header
			}
			if _, err := io.WriteString(w, header); err != nil {
				return NewCommandError(ActionRender, "cannot write listing",
					&display.WriteError{Stage: "header", Err: err})
			}
		}

		styleOpts.Dir = path
		opts.Styler = styles.New(profile, styleOpts)
		if err := display.Render(w, entries, opts); err != nil {
			return NewCommandError(ActionRender, "cannot write listing", err)
		}
	}
	return nil
}
