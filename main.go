package main

import (
	"errors"
	"os"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"sshmisc/options"
	"sshmisc/util"
)

const exitCodesHelp = `
EXIT CODES:
  0    Success
  201  Path list is missing or unreadable
  202  Include or exclude pattern is invalid
  203  Requested version is malformed
  204  Library is older than the requested version
  205  Home directory could not be determined
  206  At least one path is not readable
  207  Path list could not be decoded
  101  Worker count is invalid
  1    Any other error
`

func newLogger(verbose bool) *zap.SugaredLogger {
	encoderConfig := zap.NewDevelopmentEncoderConfig()
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderConfig.EncodeCaller = zapcore.ShortCallerEncoder

	level := zapcore.InfoLevel
	if verbose {
		level = zapcore.DebugLevel
	}

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderConfig),
		zapcore.AddSync(os.Stderr),
		level,
	)
	return zap.New(core, zap.AddCaller()).Sugar()
}

func newApp() *cli.App {
	runner := &commandRunner{
		logger: zap.NewNop().Sugar(),
	}

	return &cli.App{
		Name:    "sshmisc",
		Usage:   "Path, version and environment helpers of the ssh misc layer.",
		Flags:   options.GlobalFlags,
		Version: util.VersionString(),
		Before: func(ctx *cli.Context) error {
			runner.logger = newLogger(ctx.Bool("verbose"))
			return nil
		},
		After: func(ctx *cli.Context) error {
			_ = runner.logger.Sync()
			return nil
		},
		Commands: []*cli.Command{
			{
				Name:      "dirname",
				Usage:     "print the directory component of each path",
				ArgsUsage: "PATH...",
				Action:    runner.dirname,
			},
			{
				Name:      "basename",
				Usage:     "print the file component of each path",
				ArgsUsage: "PATH...",
				Action:    runner.basename,
			},
			{
				Name:   "version",
				Usage:  "print the library version string, failing when older than --min",
				Flags:  options.VersionFlags,
				Action: runner.version,
			},
			{
				Name:   "home",
				Usage:  "print the home directory of the current user",
				Action: runner.home,
			},
			{
				Name:      "readable",
				Usage:     "print the paths the current user cannot read",
				ArgsUsage: "PATH...",
				Flags:     options.ReadableFlags,
				Action:    runner.readable,
			},
			{
				Name:   "filter",
				Usage:  "filter a path list with glob patterns, keeping its order",
				Flags:  options.FilterFlags,
				Action: runner.filter,
			},
		},
	}
}

func exitCode(err error) int {
	var errorWithCode *util.ErrorWithCode
	if errors.As(err, &errorWithCode) {
		return errorWithCode.StatusCode
	}
	return 1
}

func main() {
	cli.AppHelpTemplate = cli.AppHelpTemplate + exitCodesHelp

	err := newApp().Run(os.Args)
	if err != nil {
		newLogger(false).Errorf("failed: %v", err)
		os.Exit(exitCode(err))
	}
}
