package clients

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/libretro/crowdin-progress/models"
)

const DefaultFileMode os.FileMode = 0o644

type (
	// StreamWriter copies the report to an io.Writer, standard output in practice.
	StreamWriter struct {
		out io.Writer
	}

	// FileWriter replaces a file with the report. The content goes to a
	// temporary file next to it first, so readers never see a partial report.
	FileWriter struct {
		Path   string
		Mode   os.FileMode
		logger *zap.SugaredLogger
	}
)

func NewStreamWriter(out io.Writer) *StreamWriter {
	return &StreamWriter{out: out}
}

func (w *StreamWriter) Write(ctx context.Context, content []byte) error {
	if err := ctx.Err(); err != nil {
		return models.WithKind(models.ErrWrite, err)
	}
	if _, err := w.out.Write(content); err != nil {
		return models.WithKindf(models.ErrWrite, err, "writing report")
	}
	return nil
}

func NewFileWriter(path string, logger *zap.SugaredLogger) *FileWriter {
	return &FileWriter{
		Path:   path,
		Mode:   DefaultFileMode,
		logger: logger,
	}
}

func (w *FileWriter) Write(ctx context.Context, content []byte) (err error) {
	if err := ctx.Err(); err != nil {
		return models.WithKind(models.ErrWrite, err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(w.Path), "."+filepath.Base(w.Path)+".*")
	if err != nil {
		return models.WithKindf(models.ErrWrite, err, "creating temporary file for %s", w.Path)
	}
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()

	if _, err = tmp.Write(content); err != nil {
		return models.WithKindf(models.ErrWrite, err, "writing %s", tmp.Name())
	}
	if err = tmp.Sync(); err != nil {
		return models.WithKindf(models.ErrWrite, err, "syncing %s", tmp.Name())
	}
	if err = tmp.Close(); err != nil {
		return models.WithKindf(models.ErrWrite, err, "closing %s", tmp.Name())
	}
	if err = os.Chmod(tmp.Name(), w.Mode); err != nil {
		return models.WithKindf(models.ErrWrite, err, "setting mode of %s", tmp.Name())
	}
	if err = os.Rename(tmp.Name(), w.Path); err != nil {
		return models.WithKindf(models.ErrWrite, err, "replacing %s", w.Path)
	}

	w.logger.Infow("report written", "path", w.Path, "bytes", len(content))
	return nil
}
