package progress

import (
	"context"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/libretro/crowdin-progress/clients"
	"github.com/libretro/crowdin-progress/templates"
)

// Pipeline fetches, renders and writes the progress header. Nothing is
// written unless fetching and rendering both succeeded.
type Pipeline struct {
	fetcher *Fetcher
	writer  clients.Writer
	logger  *zap.SugaredLogger
}

func NewPipeline(fetcher *Fetcher, writer clients.Writer, logger *zap.SugaredLogger) *Pipeline {
	return &Pipeline{
		fetcher: fetcher,
		writer:  writer,
		logger:  logger,
	}
}

func (p *Pipeline) Run(ctx context.Context) error {
	entries, err := p.fetcher.Fetch(ctx)
	if err != nil {
		return errors.Wrap(err, "fetching progress")
	}

	content, err := templates.RenderProgressHeader(entries)
	if err != nil {
		return err
	}

	if err := p.writer.Write(ctx, content); err != nil {
		return err
	}

	p.logger.Infow("progress header generated", "languages", len(entries))
	return nil
}

// Module provides the Fetcher and the Pipeline.
var Module = fx.Options(fx.Provide(fetcherProvider, NewPipeline))
