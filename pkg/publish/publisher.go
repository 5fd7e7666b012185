package publish

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/atrium-ui/atrium/internal/errors"
)

// Publisher writes a set of files to a destination.
type Publisher interface {
	Publish(ctx context.Context, files []File) error
}

// s3API is the slice of the S3 client the publisher needs.
type s3API interface {
	PutObject(ctx context.Context, in *s3.PutObjectInput, opts ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3Publisher uploads files to an S3 bucket.
type S3Publisher struct {
	client       s3API
	bucket       string
	prefix       string
	cacheControl string
	logger       *slog.Logger
}

// S3Option configures an S3Publisher.
type S3Option func(*S3Publisher)

// WithPrefix prepends a key prefix to every uploaded file.
func WithPrefix(prefix string) S3Option {
	return func(p *S3Publisher) { p.prefix = prefix }
}

// WithCacheControl sets the Cache-Control header stored on each object.
func WithCacheControl(value string) S3Option {
	return func(p *S3Publisher) { p.cacheControl = value }
}

// WithLogger sets the upload logger. Defaults to slog.Default().
func WithLogger(logger *slog.Logger) S3Option {
	return func(p *S3Publisher) { p.logger = logger }
}

// NewS3Publisher creates a publisher targeting the given bucket.
// The client is typically s3.NewFromConfig(cfg).
func NewS3Publisher(client s3API, bucket string, opts ...S3Option) *S3Publisher {
	p := &S3Publisher{client: client, bucket: bucket}
	for _, opt := range opts {
		opt(p)
	}
	if p.logger == nil {
		p.logger = slog.Default()
	}
	return p
}

// Publish uploads every file, stopping at the first failure.
func (p *S3Publisher) Publish(ctx context.Context, files []File) error {
	if len(files) == 0 {
		return errors.New("A041")
	}

	for _, f := range files {
		key := p.prefix + f.Key
		contentType := f.ContentType
		if contentType == "" {
			contentType = typeFor(f.Key)
		}

		in := &s3.PutObjectInput{
			Bucket:      aws.String(p.bucket),
			Key:         aws.String(key),
			Body:        bytes.NewReader(f.Body),
			ContentType: aws.String(contentType),
		}
		if p.cacheControl != "" {
			in.CacheControl = aws.String(p.cacheControl)
		}

		if _, err := p.client.PutObject(ctx, in); err != nil {
			return errors.New("A040").Wrap(err).
				WithDetail(fmt.Sprintf("upload %q to s3://%s", key, p.bucket)).
				WithSuggestion("Check the bucket name and your AWS credentials")
		}
		p.logger.Debug("uploaded file", "bucket", p.bucket, "key", key, "bytes", len(f.Body))
	}

	p.logger.Info("site published", "bucket", p.bucket, "files", len(files))
	return nil
}

// DirPublisher writes files into a local directory, for preview builds.
type DirPublisher struct {
	root   string
	logger *slog.Logger
}

// NewDirPublisher creates a publisher writing under root.
func NewDirPublisher(root string, logger *slog.Logger) *DirPublisher {
	if logger == nil {
		logger = slog.Default()
	}
	return &DirPublisher{root: root, logger: logger}
}

// Publish writes every file, creating directories as needed.
func (p *DirPublisher) Publish(ctx context.Context, files []File) error {
	for _, f := range files {
		if err := ctx.Err(); err != nil {
			return err
		}

		dest := filepath.Join(p.root, filepath.FromSlash(f.Key))
		if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
			return errors.Newf(errors.CategoryPublish, "create directory for %q: %v", f.Key, err)
		}
		if err := os.WriteFile(dest, f.Body, 0o644); err != nil {
			return errors.Newf(errors.CategoryPublish, "write %q: %v", f.Key, err)
		}
	}

	p.logger.Info("site written", "dir", p.root, "files", len(files))
	return nil
}
