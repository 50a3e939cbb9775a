package proof

import (
	"bytes"
	"encoding/base64"
	"testing"

	"arena-wallet/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngHeader = []byte{
	0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n',
	0x00, 0x00, 0x00, 0x0d, 'I', 'H', 'D', 'R',
	0x00, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00, 0x01,
	0x08, 0x06, 0x00, 0x00, 0x00, 0x1f, 0x15, 0xc4, 0x89,
}

func dataURL(mime string, raw []byte) string {
	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(raw)
}

var limit = Limit{MaxBytes: 1024, Message: "Image size must be less than 1MB"}

func TestDecode_PNG(t *testing.T) {
	img, err := Decode(dataURL("image/png", pngHeader), limit)

	require.NoError(t, err)
	assert.Equal(t, "image/png", img.ContentType)
	assert.Equal(t, len(pngHeader), img.Size)
}

func TestDecode_TooLarge(t *testing.T) {
	raw := append(append([]byte{}, pngHeader...), bytes.Repeat([]byte{0}, 2048)...)

	_, err := Decode(dataURL("image/png", raw), limit)

	assert.ErrorIs(t, err, model.ErrImageTooLarge)
	var rej *model.Rejection
	require.ErrorAs(t, err, &rej)
	assert.Equal(t, "Image size must be less than 1MB", rej.Message)
}

func TestDecode_NotAnImage(t *testing.T) {
	_, err := Decode(dataURL("image/png", []byte("just some text")), limit)
	assert.ErrorIs(t, err, model.ErrInvalidImage)
}

func TestDecode_Malformed(t *testing.T) {
	for _, in := range []string{"", "not a data url", "data:image/png,AAAA", "data:image/png;base64,***"} {
		_, err := Decode(in, limit)
		assert.ErrorIs(t, err, model.ErrInvalidImage, "input %q", in)
	}
}
