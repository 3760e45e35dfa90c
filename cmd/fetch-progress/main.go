package main

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/libretro/crowdin-progress/clients"
	"github.com/libretro/crowdin-progress/clients/crowdin"
	"github.com/libretro/crowdin-progress/infrastructure"
	"github.com/libretro/crowdin-progress/localize"
	"github.com/libretro/crowdin-progress/progress"
)

type (
	configPath string

	options struct {
		ConfigPath  string
		Destination string
	}
)

func configProvider(path configPath) (infrastructure.Config, error) {
	return infrastructure.LoadConfig(string(path))
}

// No timeout: every call blocks until Crowdin answers or the connection fails.
func httpClientProvider() *http.Client {
	return &http.Client{}
}

func generate(ctx context.Context, pipeline *progress.Pipeline, logger *zap.SugaredLogger) error {
	defer logger.Sync()
	return pipeline.Run(ctx)
}

func newApp(ctx context.Context, opts options, extra ...fx.Option) *fx.App {
	return fx.New(
		fx.NopLogger,
		infrastructure.Module,
		crowdin.Module,
		clients.WriterModule,
		progress.Module,
		fx.Supply(configPath(opts.ConfigPath), clients.Destination(opts.Destination)),
		fx.Provide(
			configProvider,
			httpClientProvider,
		),
		fx.Options(extra...),
		fx.Invoke(func(pipeline *progress.Pipeline, logger *zap.SugaredLogger) error {
			return generate(ctx, pipeline, logger)
		}),
	)
}

func newRootCommand(localizer localize.Localizer, locale string, extra ...fx.Option) *cobra.Command {
	opts := options{}
	cmd := &cobra.Command{
		Use:   "fetch-progress",
		Short: localize.Message(localizer, "FetchProgressShort", locale, nil),
		Long: localize.Message(localizer, "FetchProgressLong", locale, map[string]interface{}{
			"Config": infrastructure.DefaultConfigPath,
			"Output": clients.DefaultDestination,
		}),
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return newApp(cmd.Context(), opts, extra...).Err()
		},
	}
	cmd.Flags().StringVarP(&opts.ConfigPath, "config", "c", infrastructure.DefaultConfigPath, "path to crowdin.yaml")
	cmd.Flags().StringVarP(&opts.Destination, "output", "o", clients.DefaultDestination, `header to write, "-" for stdout or s3://bucket/key`)
	return cmd
}

func main() {
	localizer, err := localize.NewI18nLocalizer()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if err := newRootCommand(localizer, localize.LocaleFromEnv()).ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
