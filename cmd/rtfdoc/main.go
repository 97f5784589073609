package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"runtime/debug"
	"syscall"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/rupor-github/rtfdoc/assemble"
	"github.com/rupor-github/rtfdoc/config"
	"github.com/rupor-github/rtfdoc/document"
	"github.com/rupor-github/rtfdoc/misc"
	"github.com/rupor-github/rtfdoc/state"
)

// initializeAppContext prepares application context before command execution but
// after command line has been parsed
func initializeAppContext(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	var err error

	if cmd.NArg() == 0 {
		// nothing to do, just return
		return ctx, nil
	}

	env := state.EnvFromContext(ctx)

	configFile := cmd.String("config")
	if env.Cfg, err = config.LoadConfiguration(configFile); err != nil {
		return ctx, fmt.Errorf("unable to prepare configuration: %w", err)
	}
	if cmd.Bool("debug") {
		if env.Rpt, err = env.Cfg.Reporting.Prepare(); err != nil {
			return ctx, fmt.Errorf("unable to prepare debug reporter: %w", err)
		}
		// save complete processed configuration if external configuration was provided
		if len(configFile) > 0 {
			if data, err := config.Dump(env.Cfg); err == nil {
				env.Rpt.StoreData(fmt.Sprintf("config/%s", filepath.Base(configFile)), data)
			}
		}
	}
	if env.Log, err = env.Cfg.Logging.Prepare(env.Rpt); err != nil {
		return ctx, fmt.Errorf("unable to prepare logs: %w", err)
	}
	env.RedirectStdLog()

	env.Overwrite = cmd.Bool("overwrite")

	env.Log.Debug("Program started", zap.Strings("args", os.Args), zap.String("ver", misc.GetVersion()), zap.String("runtime", runtime.Version()), zap.String("hash", misc.GetGitHash()))

	if env.Rpt != nil {
		env.Log.Info("Creating debug report", zap.String("location", env.Rpt.Name()))
	}
	if len(configFile) == 0 && env.Log != nil {
		env.Log.Info("Using defaults (no configuration file)")
	}
	return ctx, nil
}

func destroyAppContext(ctx context.Context, cmd *cli.Command) (err error) {
	env := state.EnvFromContext(ctx)

	if env.Log != nil {
		env.Log.Debug("Program ended", zap.Duration("elapsed", env.Uptime()), zap.Strings("parsed args", cmd.Args().Slice()))
	}

	// close logging
	env.RestoreStdLog()

	// log is synced now and result can be used in report if necessary, errors
	// must be reported directly to stderr from now on
	if env.Rpt != nil {
		if er := env.Rpt.Close(); er != nil {
			err = multierr.Append(err, fmt.Errorf("unable to close debug report: %w", er))
		}
	}
	// reporting is closed now - remove empty panic file if any
	if env.Cfg != nil && len(env.Cfg.Logging.FileLogger.Destination) > 0 {
		debug.SetCrashOutput(nil, debug.CrashOptions{})
		fname := filepath.Join(filepath.Dir(env.Cfg.Logging.FileLogger.Destination), misc.GetAppName()+"-panic.log")
		if fi, er := os.Stat(fname); er == nil && fi.Size() == 0 {
			if er := os.Remove(fname); er != nil {
				err = multierr.Append(err, fmt.Errorf("unable to remove empty panic log file '%s': %w", fname, er))
			}
		}
	}
	return
}

// Ignore urfave/cli default error handling - for me cli.Exit() looks
// non-transparent and unnesessary. I will return regular errors from
// subcommands.
var errWasHandled bool

// this is called before appContext is destroyed, so we have a chance to
// properly log any error from subcommand
func exitErrHandler(ctx context.Context, _ *cli.Command, err error) {
	env := state.EnvFromContext(ctx)

	if env.Log != nil {
		env.Log.Error("Program ended with error", zap.Error(err))
		errWasHandled = true
	}
}

func usageErrorHandler(_ context.Context, _ *cli.Command, err error, _ bool) error {
	// do nothing special, error is reported either by exitErrHandler or on
	// exit directly to stderr.
	return err
}

func subcommandNotFoundHandler(ctx context.Context, _ *cli.Command, name string) {
	state.EnvFromContext(ctx).Log.Warn("Unknown command, nothing to do", zap.String("command", name))
}

func main() {
	// allow graceful shutdown on interrupt.
	ctx, stop := signal.NotifyContext(state.ContextWithEnv(context.Background()), os.Interrupt, syscall.SIGTERM)

	app := &cli.Command{
		Name:            misc.GetAppName(),
		Usage:           "generates RTF tables for clinical and pharmaceutical reports",
		Version:         misc.GetVersion() + " (" + runtime.Version() + ") : " + misc.GetGitHash(),
		HideHelpCommand: true,
		Before:          initializeAppContext,
		After:           destroyAppContext,
		OnUsageError:    usageErrorHandler,
		ExitErrHandler:  exitErrHandler,
		CommandNotFound: subcommandNotFoundHandler,
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Aliases: []string{"c"}, DefaultText: "", Usage: "load configuration from `FILE` (YAML)"},
			&cli.BoolFlag{Name: "debug", Aliases: []string{"d"}, Usage: "changes program behavior to help troubleshooting, produces report archive"},
			&cli.BoolFlag{Name: "overwrite", Aliases: []string{"ow"}, Usage: "continue even if destination exists, overwrite files"},
		},
		Commands: []*cli.Command{
			{
				Name:         "render",
				Usage:        "Renders a document descriptor and data frame to an RTF file",
				OnUsageError: usageErrorHandler,
				Action:       renderCommand,
				ArgsUsage:    "REQUEST [DESTINATION]",
				CustomHelpTemplate: fmt.Sprintf(`%s
REQUEST:
    path to a JSON render request: page/title/body/footnote/source/figure
    descriptors plus the "data" frame (columns and rows) to render.

DESTINATION:
    output RTF file path. If omitted, derived from document.title and
    configuration's output.output_name_template.
`, cli.CommandHelpTemplate),
			},
			{
				Name:         "assemble",
				Usage:        "Concatenates pre-rendered RTF files into one document (spec §4.13)",
				OnUsageError: usageErrorHandler,
				Action:       assembleCommand,
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "landscape", Usage: "mark the combined document landscape"},
				},
				ArgsUsage: "DESTINATION SOURCE...",
			},
			{
				Name:  "dumpconfig",
				Usage: "Dumps either default or actual configuration (YAML)",
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "default", Usage: "output default embedded configuration"},
				},
				OnUsageError: usageErrorHandler,
				Action:       outputConfiguration,
				ArgsUsage:    "DESTINATION",
				CustomHelpTemplate: fmt.Sprintf(`%s

DESTINATION:
    file name to write configuration to, if absent - STDOUT

Produces file with actual "active" configuration values wich is composition of
default values and values specified in configuration file. To see default
configuration embedded into the program use --default flag.
`, cli.CommandHelpTemplate),
			},
		},
	}

	var err error
	// NOTE: os.Exit is called at the end of main to set exit code, make sure
	// there are no other deffered functions after that
	defer func() {
		stop()
		if err != nil {
			if !errWasHandled {
				fmt.Fprintf(os.Stderr, "Program ended with error: %v\n", err)
			}
			os.Exit(1)
		}
	}()
	err = app.Run(ctx, os.Args)
}

// renderCommand wires a JSON render request through document.Build and
// writes the resulting RTF to DESTINATION (spec.md §4.12, §6.1).
func renderCommand(ctx context.Context, cmd *cli.Command) error {
	env := state.EnvFromContext(ctx)

	if cmd.Args().Len() < 1 {
		return fmt.Errorf("render requires a REQUEST argument")
	}
	reqPath := cmd.Args().Get(0)

	req, err := loadRenderRequest(reqPath)
	if err != nil {
		return err
	}

	dstPath := cmd.Args().Get(1)
	if dstPath == "" {
		var outCfg config.OutputConfig
		if env.Cfg != nil {
			outCfg = env.Cfg.Document.Output
		}
		title := ""
		if req.Title != nil && len(req.Title.Lines) > 0 {
			title = req.Title.Lines[0]
		}
		if dstPath, err = defaultOutputName(outCfg, title); err != nil {
			return err
		}
	}

	if !env.Overwrite {
		if _, err := os.Stat(dstPath); err == nil {
			return fmt.Errorf("destination %q already exists, use --overwrite", dstPath)
		}
	}

	if err := loadConfiguredFonts(env); err != nil {
		return err
	}

	doc, f, err := req.toDocument()
	if err != nil {
		return err
	}

	rtf, err := document.Build(doc, f, env.Oracle)
	if err != nil {
		return fmt.Errorf("unable to render document: %w", err)
	}

	if err := os.WriteFile(dstPath, []byte(rtf), 0644); err != nil {
		return fmt.Errorf("unable to write %q: %w", dstPath, err)
	}
	if env.Log != nil {
		env.Log.Info("Rendered RTF document", zap.String("destination", dstPath))
	}
	return nil
}

// assembleCommand concatenates pre-rendered RTF files (spec.md §4.13).
func assembleCommand(ctx context.Context, cmd *cli.Command) error {
	env := state.EnvFromContext(ctx)

	if cmd.Args().Len() < 2 {
		return fmt.Errorf("assemble requires DESTINATION and at least one SOURCE argument")
	}
	dstPath := cmd.Args().Get(0)
	sources := cmd.Args().Slice()[1:]

	if !env.Overwrite {
		if _, err := os.Stat(dstPath); err == nil {
			return fmt.Errorf("destination %q already exists, use --overwrite", dstPath)
		}
	}

	if err := assemble.AssembleRTF(sources, dstPath, cmd.Bool("landscape")); err != nil {
		return fmt.Errorf("unable to assemble documents: %w", err)
	}
	if env.Log != nil {
		env.Log.Info("Assembled RTF document", zap.String("destination", dstPath), zap.Int("sources", len(sources)))
	}
	return nil
}

func outputConfiguration(ctx context.Context, cmd *cli.Command) error {
	env := state.EnvFromContext(ctx)
	if cmd.Args().Len() > 1 {
		env.Log.Warn("Malformed command line, too many destinations", zap.Strings("ignoring", cmd.Args().Slice()[1:]))
	}

	fname := cmd.Args().Get(0)

	var (
		err  error
		data []byte
		st   string
	)

	out := os.Stdout
	if len(fname) > 0 {
		out, err = os.Create(fname)
		if err != nil {
			return fmt.Errorf("unable to create destination file '%s': %w", fname, err)
		}
		defer out.Close()
	}

	if cmd.Bool("default") {
		st = "default"
		data, err = config.Prepare()
	} else {
		st = "actual"
		data, err = config.Dump(env.Cfg)
	}
	if err != nil {
		return fmt.Errorf("unable to get configuration: %w", err)
	}

	if len(fname) == 0 {
		fname = "STDOUT"
	}
	env.Log.Info("Outputing configuration", zap.String("state", st), zap.String("file", fname))

	_, err = out.Write(data)
	if err != nil {
		return fmt.Errorf("unable to write configuration: %w", err)
	}
	return nil
}

// loadConfiguredFonts registers the font catalog named in config.Document.Fonts
// into env.Oracle once, the first time a render command needs it (spec.md
// §4.1: font loading happens once at initialization).
func loadConfiguredFonts(env *state.LocalEnv) error {
	if env.Cfg == nil || env.Oracle.Loaded(1) {
		return nil
	}
	catalog := env.Cfg.Document.Fonts.CatalogPath
	if catalog == "" {
		return nil
	}
	data, err := os.ReadFile(filepath.Join(catalog, "default.ttf"))
	if err != nil {
		return fmt.Errorf("unable to read default font from catalog %q: %w", catalog, err)
	}
	if err := env.Oracle.LoadFont(1, env.Cfg.Document.Fonts.Default, data); err != nil {
		return fmt.Errorf("unable to load default font: %w", err)
	}
	return nil
}
