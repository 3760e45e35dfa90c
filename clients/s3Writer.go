package clients

import (
	"bytes"
	"context"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/aws/aws-sdk-go/aws/endpoints"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3iface"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/libretro/crowdin-progress/models"
)

type (
	// S3Writer uploads the report to an S3 (or S3 compatible) bucket.
	S3Writer struct {
		Config *S3WriterConfig
		Bucket string
		Key    string
		S3     s3iface.S3API
		logger *zap.SugaredLogger
	}

	// S3WriterConfig contains the static configuration for the S3 upload.
	// Credentials come from the environment and are not passed in via configuration variables.
	S3WriterConfig struct {
		Region      string `default:"us-east-1"`
		Endpoint    string
		ContentType string `split_words:"true" default:"text/x-c"`
	}
)

// NewS3Writer creates a writer for s3://bucket/key
func NewS3Writer(cfg *S3WriterConfig, bucket, key string, logger *zap.SugaredLogger) (*S3Writer, error) {
	if cfg == nil {
		cfg = &S3WriterConfig{Region: "us-east-1", ContentType: "text/x-c"}
	}

	// If there is an endpoint specified in config, AWS' default is overriden
	myCustomResolver := func(service, region string, optFns ...func(*endpoints.Options)) (endpoints.ResolvedEndpoint, error) {
		if service == endpoints.S3ServiceID && cfg.Endpoint != "" {
			return endpoints.ResolvedEndpoint{
				URL:           cfg.Endpoint,
				SigningRegion: region,
			}, nil
		}

		return endpoints.DefaultResolver().EndpointFor(service, region, optFns...)
	}

	sess, err := session.NewSession(&aws.Config{
		Region:           aws.String(cfg.Region),
		EndpointResolver: endpoints.ResolverFunc(myCustomResolver),
		S3ForcePathStyle: aws.Bool(cfg.Endpoint != ""),
	})
	if err != nil {
		return nil, models.WithKindf(models.ErrConfiguration, err, "creating AWS session")
	}

	// Credentials are looked up in this order: environment variables,
	// the shared .aws profile, then an EC2 role. Their validity is not checked here.
	creds, err := sess.Config.Credentials.Get()
	if err != nil {
		logger.Warnw("no AWS credentials found, the upload will fail", zap.Error(err))
	} else {
		logger.Debugw("AWS credentials found", "provider", creds.ProviderName)
	}

	return &S3Writer{
		Config: cfg,
		Bucket: bucket,
		Key:    key,
		S3:     s3.New(sess),
		logger: logger,
	}, nil
}

func (w *S3Writer) Write(ctx context.Context, content []byte) error {
	input := &s3.PutObjectInput{
		Bucket:      aws.String(w.Bucket),
		Key:         aws.String(w.Key),
		Body:        bytes.NewReader(content),
		ContentType: aws.String(w.Config.ContentType),
	}

	if _, err := w.S3.PutObjectWithContext(ctx, input); err != nil {
		if aerr, ok := err.(awserr.Error); ok {
			return models.WithKind(models.ErrWrite, errors.Errorf("uploading s3://%s/%s: %s: %s", w.Bucket, w.Key, aerr.Code(), aerr.Message()))
		}
		return models.WithKindf(models.ErrWrite, err, "uploading s3://%s/%s", w.Bucket, w.Key)
	}

	w.logger.Infow("report uploaded", "bucket", w.Bucket, "key", w.Key, "bytes", len(content))
	return nil
}
