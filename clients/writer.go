package clients

import (
	"context"
	"net/url"
	"os"
	"strings"

	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/libretro/crowdin-progress/models"
)

const (
	DefaultDestination = "progress.h"
	StdoutDestination  = "-"
	s3Scheme           = "s3"
)

type (
	// Writer persists a rendered report.
	Writer interface {
		Write(ctx context.Context, content []byte) error
	}

	// Destination is where the report goes: a file path, "-" for standard
	// output, or an s3://bucket/key URL.
	Destination string
)

// NewWriter picks the Writer matching destination.
func NewWriter(destination Destination, s3Config *S3WriterConfig, logger *zap.SugaredLogger) (Writer, error) {
	dest := string(destination)
	switch {
	case dest == "":
		return NewFileWriter(DefaultDestination, logger), nil
	case dest == StdoutDestination:
		return NewStreamWriter(os.Stdout), nil
	case strings.HasPrefix(dest, s3Scheme+"://"):
		bucket, key, err := parseS3Destination(dest)
		if err != nil {
			return nil, err
		}
		return NewS3Writer(s3Config, bucket, key, logger)
	default:
		return NewFileWriter(dest, logger), nil
	}
}

func parseS3Destination(dest string) (string, string, error) {
	u, err := url.Parse(dest)
	if err != nil {
		return "", "", models.WithKindf(models.ErrConfiguration, err, "invalid destination %s", dest)
	}
	key := strings.TrimPrefix(u.Path, "/")
	if u.Host == "" || key == "" {
		return "", "", models.WithKind(models.ErrConfiguration, errors.Errorf("destination %s needs a bucket and a key", dest))
	}
	return u.Host, key, nil
}

func s3WriterConfigProvider() (*S3WriterConfig, error) {
	var config S3WriterConfig
	if err := envconfig.Process("s3", &config); err != nil {
		return nil, err
	}
	return &config, nil
}

// WriterModule provides the Writer for a supplied Destination.
var WriterModule = fx.Options(
	fx.Provide(s3WriterConfigProvider),
	fx.Provide(NewWriter),
)
