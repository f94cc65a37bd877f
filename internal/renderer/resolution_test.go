package renderer

import (
	"bytes"
	"image"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func encodeTestPNG(t *testing.T) []byte {
	t.Helper()
	buf := &bytes.Buffer{}
	require.NoError(t, png.Encode(buf, image.NewRGBA(image.Rect(0, 0, 4, 3))))
	return buf.Bytes()
}

func TestWithResolution(t *testing.T) {
	plain := encodeTestPNG(t)

	_, err := PNGResolution(plain)
	assert.ErrorIs(t, err, ErrNoResolution)

	tagged, err := withResolution(plain, 300)
	require.NoError(t, err)
	assert.Len(t, tagged, len(plain)+21)

	dpi, err := PNGResolution(tagged)
	require.NoError(t, err)
	assert.InDelta(t, 300, dpi, 0.01)

	// the stream must still decode
	img, err := png.Decode(bytes.NewReader(tagged))
	require.NoError(t, err)
	assert.Equal(t, 4, img.Bounds().Dx())
}

func TestResolutionRejectsGarbage(t *testing.T) {
	_, err := withResolution([]byte("GIF89a"), 300)
	assert.Error(t, err)

	_, err = PNGResolution([]byte("not a png"))
	assert.Error(t, err)

	truncated := encodeTestPNG(t)[:20]
	_, err = withResolution(truncated, 300)
	assert.Error(t, err)
}
