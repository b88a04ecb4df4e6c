// Command morse decodes Morse code written without letter spacing.
//
// Usage:
//
//	morse [global options] decode [options] [--] [STREAM...]
//	morse encode WORD...
//	morse count STREAM...
//	morse table
//
// decode reads one stream per line from stdin when no streams are given.
// Streams starting with '-' must follow a "--" argument.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/strycore/dojo-20130708/internal/config"
	"github.com/strycore/dojo-20130708/internal/logging"
	"github.com/strycore/dojo-20130708/morse"
)

const envKey = "env"

// runEnv is the state shared by all commands of one run.
type runEnv struct {
	cfg      *config.Config
	log      *zap.Logger
	closeLog func() error
	runID    string
}

func main() {
	if err := newApp(os.Stdin, os.Stdout, os.Stderr).Run(os.Args); err != nil {
		os.Exit(1)
	}
}

func newApp(stdin io.Reader, stdout, stderr io.Writer) *cli.App {
	return &cli.App{
		Name:      "morse",
		Usage:     "decode Morse code written without letter spacing",
		Reader:    stdin,
		Writer:    stdout,
		ErrWriter: stderr,
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Usage: "load configuration from `FILE`", EnvVars: []string{"MORSE_CONFIG"}},
			&cli.StringFlag{Name: "log-level", Usage: "debug, info, warn or error"},
			&cli.StringFlag{Name: "log-format", Usage: "json or console"},
			&cli.StringFlag{Name: "log-file", Usage: "write logs to rotated `FILE` instead of stderr"},
		},
		Before: setup,
		After:  teardown,
		Commands: []*cli.Command{
			decodeCommand(),
			{
				Name:      "encode",
				Usage:     "print the Morse code of each word",
				ArgsUsage: "WORD...",
				Action:    action(encode),
			},
			{
				Name:      "count",
				Usage:     "print the number of decodings of each stream",
				ArgsUsage: "[--] STREAM...",
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "normalize", Usage: "map dot and dash glyphs to '.' and '-'"},
				},
				Action: action(count),
			},
			{
				Name:   "table",
				Usage:  "print the alphabet",
				Action: action(table),
			},
		},
	}
}

func setup(c *cli.Context) error {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		fmt.Fprintf(c.App.ErrWriter, "morse: %v\n", err)
		return err
	}

	if c.IsSet("log-level") {
		cfg.Log.Level = c.String("log-level")
	}
	if c.IsSet("log-format") {
		cfg.Log.Format = c.String("log-format")
	}
	if c.IsSet("log-file") {
		cfg.Log.File = c.String("log-file")
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(c.App.ErrWriter, "morse: %v\n", err)
		return err
	}

	logger, closeLog := logging.New(cfg.Log, c.App.ErrWriter)

	env := &runEnv{cfg: cfg, closeLog: closeLog, runID: uuid.NewString()}
	env.log = logger.With(zap.String("run_id", env.runID))
	if c.App.Metadata == nil {
		c.App.Metadata = make(map[string]any)
	}
	c.App.Metadata[envKey] = env

	env.log.Debug("starting", zap.Strings("args", c.Args().Slice()))
	return nil
}

func teardown(c *cli.Context) error {
	env, ok := c.App.Metadata[envKey].(*runEnv)
	if !ok {
		return nil
	}
	return env.closeLog()
}

func envFrom(c *cli.Context) *runEnv {
	return c.App.Metadata[envKey].(*runEnv)
}

// action adapts a command body to cli.ActionFunc and logs its failure with
// the error class.
func action(fn func(*cli.Context, *runEnv) error) cli.ActionFunc {
	return func(c *cli.Context) error {
		env := envFrom(c)
		if err := fn(c, env); err != nil {
			env.log.Error("command failed",
				zap.String("command", c.Command.Name),
				zap.String("code", string(morse.Classify(err))),
				zap.Error(err),
			)
			return err
		}
		return nil
	}
}
