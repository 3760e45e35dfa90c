// Package workflow runs the scripts that push a core's option strings to
// Crowdin: the conversion of libretro_core_options.h, then the initial sync.
package workflow

import (
	"context"
	"io"
	"os"
	"os/exec"

	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/libretro/crowdin-progress/models"
)

const ArgumentCount = 3

type (
	Config struct {
		Python            string `default:"python3"`
		TranslationScript string `split_words:"true" default:"intl/core_option_translation.py"`
		SyncScript        string `split_words:"true" default:"intl/initial_sync.py"`
	}

	Arguments struct {
		APIKey   string
		CoreName string
		DirPath  string
	}

	Step struct {
		Name    string
		Command string
		Args    []string
	}

	// Runner runs one step to completion and reports its exit code.
	Runner interface {
		Run(ctx context.Context, step Step) (int, error)
	}

	// ExecRunner runs steps as sub-processes sharing the caller's standard streams.
	ExecRunner struct {
		Stdin  io.Reader
		Stdout io.Writer
		Stderr io.Writer
	}

	Workflow struct {
		config Config
		runner Runner
		logger *zap.SugaredLogger
	}
)

func configProvider() (Config, error) {
	var config Config
	if err := envconfig.Process("workflow", &config); err != nil {
		return Config{}, err
	}
	return config, nil
}

// ParseArguments reads api_key, core_name and directory_path. Extra
// arguments are ignored.
func ParseArguments(args []string) (Arguments, error) {
	if len(args) < ArgumentCount {
		return Arguments{}, models.WithKind(models.ErrArguments, errors.Errorf("expected %d arguments, got %d", ArgumentCount, len(args)))
	}
	return Arguments{APIKey: args[0], CoreName: args[1], DirPath: args[2]}, nil
}

// Steps lists the sub-processes to run, in order. Arguments are passed
// through unmodified.
func Steps(config Config, args Arguments) []Step {
	return []Step{
		{
			Name:    "core_option_translation",
			Command: config.Python,
			Args:    []string{config.TranslationScript, args.DirPath, args.CoreName},
		},
		{
			Name:    "initial_sync",
			Command: config.Python,
			Args:    []string{config.SyncScript, args.APIKey, args.CoreName},
		},
	}
}

func NewExecRunner() *ExecRunner {
	return &ExecRunner{Stdin: os.Stdin, Stdout: os.Stdout, Stderr: os.Stderr}
}

func (r *ExecRunner) Run(ctx context.Context, step Step) (int, error) {
	cmd := exec.CommandContext(ctx, step.Command, step.Args...)
	cmd.Stdin = r.Stdin
	cmd.Stdout = r.Stdout
	cmd.Stderr = r.Stderr

	err := cmd.Run()
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode(), nil
	}
	if err != nil {
		return 0, errors.Wrapf(err, "starting %s", step.Name)
	}
	return 0, nil
}

func NewWorkflow(config Config, runner Runner, logger *zap.SugaredLogger) *Workflow {
	return &Workflow{
		config: config,
		runner: runner,
		logger: logger,
	}
}

// Run runs every step one after the other, a failed step does not prevent
// the next one from running. It returns the first non-zero exit code, or 0.
func (w *Workflow) Run(ctx context.Context, args Arguments) int {
	exitCode := 0
	for _, step := range Steps(w.config, args) {
		// step.Args carries the API key, it is never logged.
		logger := w.logger.With("step", step.Name, "command", step.Command)
		logger.Infow("running step")

		code, err := w.runner.Run(ctx, step)
		if err != nil {
			logger.Errorw("step could not run", zap.Error(err))
			code = 1
		}
		if code < 0 {
			code = 1
		}
		if code != 0 {
			logger.Warnw("step failed", "exitCode", code)
			if exitCode == 0 {
				exitCode = code
			}
		}
	}
	return exitCode
}

// Module provides the Workflow with its environment configuration.
var Module = fx.Options(
	fx.Provide(configProvider),
	fx.Provide(fx.Annotate(NewExecRunner, fx.As(new(Runner)))),
	fx.Provide(NewWorkflow),
)
