package command

import (
	"fmt"
	"log/slog"
	"os"
	"sort"
	"strings"

	"github.com/bornholm/websearch/internal/logx"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

func Main(name string, version string, usage string, commands ...*cli.Command) {
	app := &cli.App{
		Name:     name,
		Usage:    usage,
		Commands: commands,
		Version:  version,
		Before: func(ctx *cli.Context) error {
			workdir := ctx.String("workdir")
			// Switch to new working directory if defined
			if workdir != "" {
				if err := os.Chdir(workdir); err != nil {
					return errors.Wrap(err, "could not change working directory")
				}
			}

			opts := &slog.HandlerOptions{
				Level: ParseLogLevel(ctx.String("log-level")),
			}

			var handler slog.Handler
			switch strings.ToLower(ctx.String("log-format")) {
			case "json":
				handler = slog.NewJSONHandler(os.Stderr, opts)
			default:
				handler = slog.NewTextHandler(os.Stderr, opts)
			}

			slog.SetDefault(slog.New(logx.ContextHandler{Handler: handler}))

			return nil
		},
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "workdir",
				Value:   "",
				EnvVars: []string{"WEBSEARCH_WORKDIR"},
				Usage:   "The working directory",
			},
			&cli.BoolFlag{
				Name:    "debug",
				EnvVars: []string{"WEBSEARCH_DEBUG"},
				Usage:   "Enable debug mode",
			},
			&cli.StringFlag{
				Name:    "log-level",
				EnvVars: []string{"WEBSEARCH_LOG_LEVEL"},
				Usage:   "Set logging level (debug, info, warn or error)",
				Value:   "warn",
			},
			&cli.StringFlag{
				Name:    "log-format",
				EnvVars: []string{"WEBSEARCH_LOG_FORMAT"},
				Usage:   "Set logging format (text or json)",
				Value:   "text",
			},
		},
	}

	app.ExitErrHandler = func(ctx *cli.Context, err error) {
		if err == nil {
			return
		}

		debug := ctx.Bool("debug")

		if !debug {
			slog.ErrorContext(ctx.Context, err.Error())
		} else {
			slog.ErrorContext(ctx.Context, fmt.Sprintf("%+v", err))
		}
	}

	sort.Sort(cli.FlagsByName(app.Flags))
	sort.Sort(cli.CommandsByName(app.Commands))

	if err := app.Run(os.Args); err != nil {
		os.Exit(1)
	}
}

// ParseLogLevel converts a level name to its slog counterpart, defaulting to warn.
func ParseLogLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}
