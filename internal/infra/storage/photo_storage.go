package storage

import (
	"bytes"
	"context"
	"image"
	"io"
	"log/slog"
	"path"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/disintegration/imaging"
	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob" // file:// buckets
	_ "gocloud.dev/blob/gcsblob"  // gs:// buckets
	_ "gocloud.dev/blob/memblob"  // mem:// buckets
	_ "gocloud.dev/blob/s3blob"   // s3:// buckets
	"gocloud.dev/gcerrors"

	"portal/config"
	domainerrors "portal/internal/domain/errors"
	"portal/internal/domain/service"
)

const keyTimeLayout = "20060102150405"

// keyAttempts bounds how often Save draws a new key after a conditional write collides.
const keyAttempts = 3

// maxKeyName keeps keys within the varchar(255) photo column.
const maxKeyName = 128

// maxPhotoBytes bounds what Save reads; the HTTP body limit normally triggers first.
const maxPhotoBytes = 32 << 20

// formats maps accepted image types to the encoder used after downscaling.
// Types missing an encoder are stored unchanged.
//
//nolint:gochecknoglobals
var formats = map[string]imaging.Format{
	"image/jpeg": imaging.JPEG,
	"image/png":  imaging.PNG,
	"image/gif":  imaging.GIF,
	"image/bmp":  imaging.BMP,
	"image/tiff": imaging.TIFF,
	"image/webp": -1,
}

type photoStorage struct {
	bucket       *blob.Bucket
	maxDimension int
	logger       *slog.Logger
	now          func() time.Time
	newID        func() string
}

// PhotoStorageParams holds dependencies for PhotoStorage, injected by Fx
type PhotoStorageParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewPhotoStorage opens the configured bucket and closes it on shutdown
func NewPhotoStorage(params PhotoStorageParams) (service.PhotoStorage, error) {
	cfg := params.Config.Storage
	if cfg.BucketURL == "" {
		return nil, errors.New("storage bucket URL is required")
	}

	bucket, err := blob.OpenBucket(params.Ctx, cfg.BucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open bucket %s", cfg.BucketURL)
	}

	params.Logger.Info("Photo storage ready",
		slog.String("bucket", cfg.BucketURL),
		slog.Int("max_dimension", cfg.MaxImageDimension),
	)

	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return errors.WithStack(bucket.Close())
		},
	})

	return newPhotoStorage(bucket, cfg.MaxImageDimension, params.Logger), nil
}

func newPhotoStorage(bucket *blob.Bucket, maxDimension int, logger *slog.Logger) *photoStorage {
	return &photoStorage{
		bucket:       bucket,
		maxDimension: maxDimension,
		logger:       logger.With(slog.String("component", "photo-storage")),
		now:          time.Now,
		newID:        shortID,
	}
}

// Save sniffs the content, rejects anything that is not an image and
// shrinks oversized images before writing them under a timestamped key.
func (s *photoStorage) Save(ctx context.Context, filename string, r io.Reader) (string, error) {
	data, err := io.ReadAll(io.LimitReader(r, maxPhotoBytes+1))
	if err != nil {
		return "", domainerrors.ErrInvalidUpload.WithDetails(err.Error())
	}
	if len(data) == 0 {
		return "", domainerrors.ErrInvalidUpload.WithDetails("empty file")
	}
	if len(data) > maxPhotoBytes {
		return "", domainerrors.ErrInvalidUpload.WithDetails("file too large")
	}

	mtype := mimetype.Detect(data)
	contentType := mtype.String()
	format, ok := lookupFormat(mtype)
	if !ok {
		return "", domainerrors.ErrInvalidUpload.WithDetails("not an image: " + contentType)
	}

	data, err = s.downscale(data, format)
	if err != nil {
		return "", domainerrors.ErrInvalidUpload.WithDetails(err.Error())
	}

	opts := &blob.WriterOptions{ContentType: baseType(contentType), IfNotExist: true}
	for range keyAttempts {
		key := photoKey(s.now(), s.newID(), filename)
		err := s.bucket.WriteAll(ctx, key, data, opts)
		if err == nil {
			return key, nil
		}
		if gcerrors.Code(err) == gcerrors.FailedPrecondition {
			s.logger.WarnContext(ctx, "Photo key already taken", slog.String("key", key))

			continue
		}

		s.logger.ErrorContext(ctx, "Failed to write photo", slog.String("key", key), slog.Any("error", err))

		return "", domainerrors.ErrUploadFailed.WithDetails(err.Error())
	}

	return "", domainerrors.ErrUploadFailed.WithDetails("no free photo key")
}

func (s *photoStorage) Open(ctx context.Context, key string) (*service.StoredPhoto, error) {
	reader, err := s.bucket.NewReader(ctx, key, nil)
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil, domainerrors.ErrNotFound.WithDetails("photo not found")
		}

		return nil, errors.Wrapf(err, "failed to open photo %s", key)
	}

	return &service.StoredPhoto{
		Body:        reader,
		ContentType: reader.ContentType(),
		Size:        reader.Size(),
	}, nil
}

// downscale fits the image inside maxDimension on its longer side
func (s *photoStorage) downscale(data []byte, format imaging.Format) ([]byte, error) {
	if s.maxDimension <= 0 || format < 0 {
		return data, nil
	}

	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, errors.Wrap(err, "unreadable image")
	}
	if cfg.Width <= s.maxDimension && cfg.Height <= s.maxDimension {
		return data, nil
	}

	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return nil, errors.Wrap(err, "unreadable image")
	}

	resized := imaging.Fit(img, s.maxDimension, s.maxDimension, imaging.Lanczos)

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, resized, format, imaging.JPEGQuality(85)); err != nil {
		return nil, errors.Wrap(err, "failed to encode image")
	}

	s.logger.Debug("Photo downscaled",
		slog.Int("width", cfg.Width),
		slog.Int("height", cfg.Height),
		slog.Int("max_dimension", s.maxDimension),
	)

	return buf.Bytes(), nil
}

func lookupFormat(mtype *mimetype.MIME) (imaging.Format, bool) {
	for m := mtype; m != nil; m = m.Parent() {
		if format, ok := formats[baseType(m.String())]; ok {
			return format, true
		}
	}

	return 0, false
}

// photoKey builds <upload time>_<id>_<file name>, replacing spaces with underscores.
// Only the last path element of the client file name is kept.
func photoKey(now time.Time, id, filename string) string {
	name := path.Base(strings.ReplaceAll(filename, "\\", "/"))
	if name == "." || name == "/" || name == ".." {
		name = "photo"
	}
	if len(name) > maxKeyName {
		cut := len(name) - maxKeyName
		for cut < len(name) && !utf8.RuneStart(name[cut]) {
			cut++
		}
		name = name[cut:]
	}

	return now.Format(keyTimeLayout) + "_" + id + "_" + strings.ReplaceAll(name, " ", "_")
}

func shortID() string {
	return uuid.NewString()[:8]
}

func baseType(contentType string) string {
	if i := strings.IndexByte(contentType, ';'); i >= 0 {
		return contentType[:i]
	}

	return contentType
}

// Module provides the photo storage FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewPhotoStorage),
)
