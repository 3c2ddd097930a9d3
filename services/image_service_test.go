package services

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// both upload entry points consume the headers gin hands out of the parsed
// form, opening the files themselves
var (
	_ func(*ImageService, context.Context, []*multipart.FileHeader, string) ([]string, error) = (*ImageService).UploadProductImages
	_ func(*ImageService, context.Context, *multipart.FileHeader, string) (string, error)     = (*ImageService).UploadBrandLogo
)

func TestFileHeaderOpensFromParsedForm(t *testing.T) {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("logo", "logo.png")
	require.NoError(t, err)
	_, err = part.Write([]byte("png-bytes"))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	form, err := multipart.NewReader(&body, writer.Boundary()).ReadForm(1 << 20)
	require.NoError(t, err)
	defer form.RemoveAll()

	headers := form.File["logo"]
	require.Len(t, headers, 1)

	file, err := headers[0].Open()
	require.NoError(t, err)
	defer file.Close()

	content, err := io.ReadAll(file)
	require.NoError(t, err)
	assert.Equal(t, "png-bytes", string(content))
	assert.Equal(t, "logo.png", headers[0].Filename)
}
