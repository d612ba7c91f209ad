package options

import (
	"fmt"
	"os"
	"strings"

	"github.com/urfave/cli/v2"

	"sshmisc/util"
)

const (
	COMPONENT_DIRNAME  = "dirname"
	COMPONENT_BASENAME = "basename"

	STDIN_PATH = "-"
)

var GlobalFlags = []cli.Flag{
	&cli.BoolFlag{
		Name:     "verbose",
		Aliases:  []string{"vv"},
		Value:    false,
		Usage:    "verbose logging",
		EnvVars:  []string{"SSHMISC_VERBOSE"},
		Required: false,
	},
}

var VersionFlags = []cli.Flag{
	&cli.StringFlag{
		Name:     "min",
		Aliases:  []string{"m"},
		Value:    "",
		Usage:    "minimal required library version, as major.minor.micro",
		Required: false,
	},
}

var ReadableFlags = []cli.Flag{
	&cli.IntFlag{
		Name:     "workers",
		Aliases:  []string{"w"},
		Value:    4,
		Usage:    "number of paths checked concurrently",
		Required: false,
	},
}

var FilterFlags = []cli.Flag{
	&cli.StringFlag{
		Name:     "input",
		Aliases:  []string{"f"},
		Value:    STDIN_PATH,
		Usage:    "file holding one path per line, '-' for stdin",
		Required: false,
	},
	&cli.StringFlag{
		Name:     "include",
		Aliases:  []string{"i"},
		Value:    "",
		Usage:    "patterns of paths to keep, comma delimited, may contain any glob pattern",
		Required: false,
	},
	&cli.StringFlag{
		Name:     "exclude",
		Aliases:  []string{"e"},
		Value:    "",
		Usage:    "patterns of paths to drop, comma delimited, may contain any glob pattern",
		Required: false,
	},
	&cli.BoolFlag{
		Name:     "ignore-case",
		Value:    false,
		Usage:    "ignore case when checking paths against patterns",
		Required: false,
	},
	&cli.BoolFlag{
		Name:     COMPONENT_DIRNAME,
		Value:    false,
		Usage:    "print the directory component of each kept path",
		Required: false,
	},
	&cli.BoolFlag{
		Name:     COMPONENT_BASENAME,
		Value:    false,
		Usage:    "print the file component of each kept path",
		Required: false,
	},
}

type Options struct {
	VerboseLogging     bool
	Paths              []string
	MinVersion         int
	Workers            int
	InputPath          string
	IncludePatterns    []string
	ExcludePatterns    []string
	IgnoreCasePatterns bool
	Component          string
}

func splitListFlag(flag string) []string {
	if len(flag) == 0 {
		return []string{}
	}
	items := []string{}
	for _, item := range strings.Split(flag, ",") {
		item = strings.TrimSpace(item)
		if len(item) > 0 {
			items = append(items, item)
		}
	}
	return items
}

func validateInputFile(filePath string) error {
	if filePath == STDIN_PATH {
		return nil
	}
	info, err := os.Stat(filePath)
	if os.IsNotExist(err) {
		return fmt.Errorf("file does not exist at %v", filePath)
	}
	if err != nil {
		return fmt.Errorf("file error at %v: %w", filePath, err)
	}
	if info.IsDir() {
		return fmt.Errorf("file is actually a directory at %v", filePath)
	}
	if !util.FileReadAccessOK(filePath) {
		return fmt.Errorf("file is not readable at %v", filePath)
	}
	return nil
}

// ParseOptions reads the flags of the running command, and of its parents,
// into Options. Flags a command does not declare keep their zero values.
func ParseOptions(c *cli.Context) (*Options, error) {
	opts := &Options{
		VerboseLogging:     c.Bool("verbose"),
		Paths:              c.Args().Slice(),
		Workers:            c.Int("workers"),
		InputPath:          c.String("input"),
		IncludePatterns:    splitListFlag(c.String("include")),
		ExcludePatterns:    splitListFlag(c.String("exclude")),
		IgnoreCasePatterns: c.Bool("ignore-case"),
	}

	if c.IsSet("workers") && opts.Workers < 1 {
		return nil, &util.ErrorWithCode{
			StatusCode:    util.ERROR_BAD_WORKERS,
			InternalError: fmt.Errorf("workers must be positive, got %v", opts.Workers),
		}
	}
	if opts.Workers < 1 {
		opts.Workers = 1
	}

	if minVersion := c.String("min"); len(minVersion) > 0 {
		parsed, err := util.ParseVersion(minVersion)
		if err != nil {
			return nil, &util.ErrorWithCode{
				StatusCode:    util.ERROR_BAD_VERSION,
				InternalError: err,
			}
		}
		opts.MinVersion = parsed
	}

	if c.Bool(COMPONENT_DIRNAME) && c.Bool(COMPONENT_BASENAME) {
		return nil, fmt.Errorf("--%v and --%v are mutually exclusive", COMPONENT_DIRNAME, COMPONENT_BASENAME)
	} else if c.Bool(COMPONENT_DIRNAME) {
		opts.Component = COMPONENT_DIRNAME
	} else if c.Bool(COMPONENT_BASENAME) {
		opts.Component = COMPONENT_BASENAME
	}

	if len(opts.InputPath) > 0 {
		err := validateInputFile(opts.InputPath)
		if err != nil {
			return nil, &util.ErrorWithCode{
				StatusCode:    util.ERROR_BAD_INPUT_PATH,
				InternalError: fmt.Errorf("path list at '%v' is missing or invalid: %v", opts.InputPath, err),
			}
		}
	}

	return opts, nil
}
