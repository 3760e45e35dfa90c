package main

import (
	"context"
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/libretro/crowdin-progress/infrastructure"
	"github.com/libretro/crowdin-progress/localize"
	"github.com/libretro/crowdin-progress/models"
	"github.com/libretro/crowdin-progress/workflow"
)

func newRootCommand(localizer localize.Localizer, locale string, exitCode *int, extra ...fx.Option) *cobra.Command {
	var arguments workflow.Arguments
	return &cobra.Command{
		Use:   "upload-workflow <api_key> <core_name> <directory_path>",
		Short: localize.Message(localizer, "UploadWorkflowShort", locale, nil),
		Args: func(cmd *cobra.Command, args []string) error {
			parsed, err := workflow.ParseArguments(args)
			if err != nil {
				msg := localize.Message(localizer, "MissingArguments", locale, map[string]interface{}{
					"Count":    len(args),
					"Expected": workflow.ArgumentCount,
				})
				return models.WithKind(models.ErrArguments, errors.New(msg))
			}
			arguments = parsed
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// Arguments are valid, later failures are not usage errors.
			cmd.SilenceUsage = true
			return fx.New(
				fx.NopLogger,
				infrastructure.Module,
				workflow.Module,
				fx.Options(extra...),
				fx.Invoke(func(w *workflow.Workflow, logger *zap.SugaredLogger) {
					defer logger.Sync()
					*exitCode = w.Run(cmd.Context(), arguments)
				}),
			).Err()
		},
	}
}

func main() {
	localizer, err := localize.NewI18nLocalizer()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	exitCode := 0
	if err := newRootCommand(localizer, localize.LocaleFromEnv(), &exitCode).ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
	os.Exit(exitCode)
}
