package storage

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/memblob"

	domainerrors "portal/internal/domain/errors"
)

func newTestStorage(t *testing.T, maxDimension int) *photoStorage {
	t.Helper()

	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() { _ = bucket.Close() })

	s := newPhotoStorage(bucket, maxDimension, slog.New(slog.NewTextHandler(io.Discard, nil)))
	s.now = func() time.Time { return time.Date(2025, 3, 4, 5, 6, 7, 0, time.UTC) }
	s.newID = sequentialIDs()

	return s
}

// sequentialIDs hands out 1f000001, 1f000002 and so on.
func sequentialIDs() func() string {
	n := 0

	return func() string {
		n++

		return fmt.Sprintf("1f%06d", n)
	}
}

func encodePNG(t *testing.T, width, height int) []byte {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for x := range width {
		img.Set(x, 0, color.RGBA{R: 200, A: 255})
	}

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))

	return buf.Bytes()
}

func TestPhotoKey(t *testing.T) {
	now := time.Date(2025, 3, 4, 5, 6, 7, 0, time.UTC)

	tests := []struct {
		filename string
		want     string
	}{
		{"leaky tap.jpg", "20250304050607_9c41e0d2_leaky_tap.jpg"},
		{"../../etc/passwd", "20250304050607_9c41e0d2_passwd"},
		{`C:\Users\me\sink photo.png`, "20250304050607_9c41e0d2_sink_photo.png"},
		{"", "20250304050607_9c41e0d2_photo"},
		{strings.Repeat("a", 300) + ".png", "20250304050607_9c41e0d2_" + strings.Repeat("a", 124) + ".png"},
		{strings.Repeat("é", 100) + ".png", "20250304050607_9c41e0d2_" + strings.Repeat("é", 62) + ".png"},
	}

	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			assert.Equal(t, tt.want, photoKey(now, "9c41e0d2", tt.filename))
		})
	}
}

func TestPhotoStorage_SaveAndOpen(t *testing.T) {
	ctx := context.Background()
	s := newTestStorage(t, 0)
	data := encodePNG(t, 10, 10)

	key, err := s.Save(ctx, "leaky tap.png", bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, "20250304050607_1f000001_leaky_tap.png", key)

	photo, err := s.Open(ctx, key)
	require.NoError(t, err)
	defer photo.Body.Close()

	assert.Equal(t, "image/png", photo.ContentType)
	assert.Equal(t, int64(len(data)), photo.Size)

	stored, err := io.ReadAll(photo.Body)
	require.NoError(t, err)
	assert.Equal(t, data, stored)
}

func openedBounds(t *testing.T, s *photoStorage, key string) image.Rectangle {
	t.Helper()

	photo, err := s.Open(context.Background(), key)
	require.NoError(t, err)
	defer photo.Body.Close()

	cfg, err := png.DecodeConfig(photo.Body)
	require.NoError(t, err)

	return image.Rect(0, 0, cfg.Width, cfg.Height)
}

func TestPhotoStorage_SameNameSameSecondKeepsBoth(t *testing.T) {
	ctx := context.Background()
	s := newTestStorage(t, 0)
	s.newID = shortID

	keyA, err := s.Save(ctx, "photo.png", bytes.NewReader(encodePNG(t, 4, 4)))
	require.NoError(t, err)
	keyB, err := s.Save(ctx, "photo.png", bytes.NewReader(encodePNG(t, 9, 9)))
	require.NoError(t, err)

	assert.NotEqual(t, keyA, keyB)
	assert.True(t, strings.HasPrefix(keyA, "20250304050607_"))
	assert.True(t, strings.HasSuffix(keyA, "_photo.png"))
	assert.Equal(t, image.Rect(0, 0, 4, 4), openedBounds(t, s, keyA))
	assert.Equal(t, image.Rect(0, 0, 9, 9), openedBounds(t, s, keyB))
}

func TestPhotoStorage_KeyCollisionDrawsNewID(t *testing.T) {
	ctx := context.Background()
	s := newTestStorage(t, 0)
	ids := []string{"aaaaaaaa", "aaaaaaaa", "bbbbbbbb"}
	s.newID = func() string {
		id := ids[0]
		ids = ids[1:]

		return id
	}

	keyA, err := s.Save(ctx, "photo.png", bytes.NewReader(encodePNG(t, 4, 4)))
	require.NoError(t, err)
	keyB, err := s.Save(ctx, "photo.png", bytes.NewReader(encodePNG(t, 9, 9)))
	require.NoError(t, err)

	assert.Equal(t, "20250304050607_aaaaaaaa_photo.png", keyA)
	assert.Equal(t, "20250304050607_bbbbbbbb_photo.png", keyB)
	assert.Equal(t, image.Rect(0, 0, 4, 4), openedBounds(t, s, keyA))
	assert.Equal(t, image.Rect(0, 0, 9, 9), openedBounds(t, s, keyB))
}

func TestPhotoStorage_KeysExhausted(t *testing.T) {
	ctx := context.Background()
	s := newTestStorage(t, 0)
	s.newID = func() string { return "aaaaaaaa" }

	_, err := s.Save(ctx, "photo.png", bytes.NewReader(encodePNG(t, 4, 4)))
	require.NoError(t, err)

	_, err = s.Save(ctx, "photo.png", bytes.NewReader(encodePNG(t, 9, 9)))
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrUploadFailed)
	assert.Equal(t, image.Rect(0, 0, 4, 4), openedBounds(t, s, "20250304050607_aaaaaaaa_photo.png"))
}

func TestPhotoStorage_Downscale(t *testing.T) {
	ctx := context.Background()
	s := newTestStorage(t, 50)

	key, err := s.Save(ctx, "wide.png", bytes.NewReader(encodePNG(t, 200, 100)))
	require.NoError(t, err)

	photo, err := s.Open(ctx, key)
	require.NoError(t, err)
	defer photo.Body.Close()

	cfg, format, err := image.DecodeConfig(photo.Body)
	require.NoError(t, err)
	assert.Equal(t, "png", format)
	assert.Equal(t, 50, cfg.Width)
	assert.Equal(t, 25, cfg.Height)
}

func TestPhotoStorage_SmallImageUntouched(t *testing.T) {
	ctx := context.Background()
	s := newTestStorage(t, 50)
	data := encodePNG(t, 20, 40)

	key, err := s.Save(ctx, "small.png", bytes.NewReader(data))
	require.NoError(t, err)

	photo, err := s.Open(ctx, key)
	require.NoError(t, err)
	defer photo.Body.Close()

	stored, err := io.ReadAll(photo.Body)
	require.NoError(t, err)
	assert.Equal(t, data, stored)
}

func TestPhotoStorage_RejectsNonImages(t *testing.T) {
	s := newTestStorage(t, 0)

	tests := []struct {
		name    string
		content string
	}{
		{"text", "just some notes about the sink"},
		{"pdf", "%PDF-1.4\n%âãÏÓ\n"},
		{"empty", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.Save(context.Background(), "upload.jpg", strings.NewReader(tt.content))
			assert.ErrorIs(t, err, domainerrors.ErrInvalidUpload)
		})
	}
}

func TestPhotoStorage_OpenMissing(t *testing.T) {
	s := newTestStorage(t, 0)

	_, err := s.Open(context.Background(), "20250101000000_missing.png")
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}
