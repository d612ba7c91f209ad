package main

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"sshmisc/filter"
	"sshmisc/options"
	"sshmisc/parallel"
	"sshmisc/util"
)

type commandRunner struct {
	logger *zap.SugaredLogger
}

type readCheck struct {
	path     string
	readable bool
}

func requirePaths(ctx *cli.Context) ([]string, error) {
	if ctx.Args().Len() == 0 {
		return nil, fmt.Errorf("%v: at least one path is required", ctx.Command.Name)
	}
	return ctx.Args().Slice(), nil
}

func (runner *commandRunner) printEach(ctx *cli.Context, paths []string, transform func(string) string) error {
	for _, path := range paths {
		if _, err := fmt.Fprintln(ctx.App.Writer, transform(path)); err != nil {
			return err
		}
	}
	return nil
}

func (runner *commandRunner) dirname(ctx *cli.Context) error {
	paths, err := requirePaths(ctx)
	if err != nil {
		return err
	}
	return runner.printEach(ctx, paths, util.Dirname)
}

func (runner *commandRunner) basename(ctx *cli.Context) error {
	paths, err := requirePaths(ctx)
	if err != nil {
		return err
	}
	return runner.printEach(ctx, paths, util.Basename)
}

func (runner *commandRunner) version(ctx *cli.Context) error {
	opts, err := options.ParseOptions(ctx)
	if err != nil {
		return err
	}

	version, ok := util.Version(opts.MinVersion)
	if !ok {
		return &util.ErrorWithCode{
			StatusCode:    util.ERROR_VERSION_TOO_OLD,
			InternalError: fmt.Errorf("library version %v is older than required %v", util.VersionString(), ctx.String("min")),
		}
	}
	_, err = fmt.Fprintln(ctx.App.Writer, version)
	return err
}

func (runner *commandRunner) home(ctx *cli.Context) error {
	home, ok := util.HomeDir()
	if !ok {
		return &util.ErrorWithCode{
			StatusCode:    util.ERROR_NO_HOME_DIR,
			InternalError: fmt.Errorf("home directory of the current user is unknown"),
		}
	}
	_, err := fmt.Fprintln(ctx.App.Writer, home)
	return err
}

func (runner *commandRunner) readable(ctx *cli.Context) error {
	opts, err := options.ParseOptions(ctx)
	if err != nil {
		return err
	}
	if len(opts.Paths) == 0 {
		return fmt.Errorf("%v: at least one path is required", ctx.Command.Name)
	}

	// checks keeps the input order, workers only fill the entries in
	checks := util.NewList[*readCheck]()
	defer checks.Free()
	for _, path := range opts.Paths {
		checks.Add(&readCheck{path: path})
	}

	failures := parallel.NewSyncList[string]()
	queue := parallel.CreateJobQueue(opts.Workers, opts.Workers, runner.logger)
	for it := checks.Iterator(); it != nil; it = it.Next() {
		check := it.Data()
		err = queue.Add(func() {
			check.readable = util.FileReadAccessOK(check.path)
			if !check.readable {
				if _, statErr := os.Stat(check.path); statErr != nil {
					failures.Add(statErr.Error())
				} else {
					failures.Add(fmt.Sprintf("%v: permission denied", check.path))
				}
			}
		})
		if err != nil {
			queue.Close()
			return err
		}
	}
	_ = queue.Wait()
	queue.Close()

	for _, reason := range failures.Drain() {
		runner.logger.Debugw("unreadable path", "reason", reason)
	}

	unreadable := 0
	for check := range checks.All() {
		if check.readable {
			continue
		}
		unreadable++
		if _, err := fmt.Fprintln(ctx.App.Writer, check.path); err != nil {
			return err
		}
	}

	runner.logger.Debugf("checked %v paths, %v unreadable", checks.Len(), unreadable)
	if unreadable > 0 {
		return &util.ErrorWithCode{
			StatusCode:    util.ERROR_UNREADABLE,
			InternalError: fmt.Errorf("%v of %v paths are not readable", unreadable, checks.Len()),
		}
	}
	return nil
}

func (runner *commandRunner) openInput(ctx *cli.Context, inputPath string) (io.ReadCloser, error) {
	if inputPath == options.STDIN_PATH {
		return io.NopCloser(ctx.App.Reader), nil
	}
	file, err := os.Open(inputPath)
	if err != nil {
		return nil, &util.ErrorWithCode{
			StatusCode:    util.ERROR_BAD_INPUT_PATH,
			InternalError: fmt.Errorf("failed to open path list at '%v': %w", inputPath, err),
		}
	}
	return file, nil
}

func (runner *commandRunner) filter(ctx *cli.Context) error {
	opts, err := options.ParseOptions(ctx)
	if err != nil {
		return err
	}

	matcher, err := filter.Compile(opts.IncludePatterns, opts.ExcludePatterns, opts.IgnoreCasePatterns)
	if err != nil {
		return err
	}

	input, err := runner.openInput(ctx, opts.InputPath)
	if err != nil {
		return err
	}
	paths, err := filter.ReadPaths(input)
	_ = input.Close()
	if err != nil {
		return err
	}
	defer paths.Free()

	total := paths.Len()
	removed := matcher.Apply(paths)
	runner.logger.Debugw("filtered path list",
		"input", opts.InputPath,
		"total", total,
		"removed", removed,
		"include", opts.IncludePatterns,
		"exclude", opts.ExcludePatterns)

	transform := func(path string) string { return path }
	switch opts.Component {
	case options.COMPONENT_DIRNAME:
		transform = util.Dirname
	case options.COMPONENT_BASENAME:
		transform = util.Basename
	}

	for {
		path, ok := paths.PopHead()
		if !ok {
			return nil
		}
		if _, err := fmt.Fprintln(ctx.App.Writer, transform(path)); err != nil {
			return err
		}
	}
}
