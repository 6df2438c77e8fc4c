package storage_test

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"io"
	"strings"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nekogravitycat/petcare-booking-backend/internal/pkg/storage"
)

func testStorages(t *testing.T) map[string]storage.Storage {
	local, err := storage.NewLocalStorage(t.TempDir())
	require.NoError(t, err)
	return map[string]storage.Storage{
		"local":  local,
		"memory": storage.NewMemoryStorage(),
	}
}

func TestStorage_SaveGetDelete(t *testing.T) {
	ctx := context.Background()
	for name, s := range testStorages(t) {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, s.Save(ctx, "upload/ab/a.txt", strings.NewReader("hello")))

			rc, err := s.Get(ctx, "upload/ab/a.txt")
			require.NoError(t, err)
			data, err := io.ReadAll(rc)
			require.NoError(t, rc.Close())
			require.NoError(t, err)
			assert.Equal(t, "hello", string(data))

			require.NoError(t, s.Delete(ctx, "upload/ab/a.txt"))
			_, err = s.Get(ctx, "upload/ab/a.txt")
			assert.ErrorIs(t, err, storage.ErrNotExist)

			// Deleting twice is fine.
			assert.NoError(t, s.Delete(ctx, "upload/ab/a.txt"))
		})
	}
}

func TestLocalStorage_StaysInsideBase(t *testing.T) {
	base := t.TempDir()
	s, err := storage.NewLocalStorage(base)
	require.NoError(t, err)

	require.NoError(t, s.Save(context.Background(), "../../escape.txt", strings.NewReader("x")))
	rc, err := s.Get(context.Background(), "escape.txt")
	require.NoError(t, err)
	rc.Close()
}

func TestImageProcessor_GenerateThumbnail(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 800, 400))
	for x := 0; x < 800; x++ {
		img.Set(x, 10, color.RGBA{R: 255, A: 255})
	}
	var src bytes.Buffer
	require.NoError(t, png.Encode(&src, img))

	out, err := storage.NewImageProcessor().GenerateThumbnail(&src, 200, 200)
	require.NoError(t, err)

	thumb, err := imaging.Decode(out)
	require.NoError(t, err)
	assert.Equal(t, 200, thumb.Bounds().Dx())
	assert.Equal(t, 100, thumb.Bounds().Dy())
}

func TestImageProcessor_RejectsNonImage(t *testing.T) {
	_, err := storage.NewImageProcessor().GenerateThumbnail(strings.NewReader("not an image"), 200, 200)
	assert.Error(t, err)
}
