package intake

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validMeta() *FileMeta {
	return &FileMeta{
		Filename:    "cv.pdf",
		ContentType: "application/pdf",
		Size:        10 * 1024,
	}
}

func TestValidate_Accepts(t *testing.T) {
	assert.NoError(t, Validate("frontend-junior", validMeta()))
}

func TestValidate_AcceptsEveryAllowedType(t *testing.T) {
	for _, contentType := range []string{"application/pdf", "image/png", "image/jpeg"} {
		meta := validMeta()
		meta.ContentType = contentType
		assert.NoError(t, Validate("backend-senior", meta), contentType)
	}
}

func TestValidate_AcceptsUnknownPosition(t *testing.T) {
	// Unknown position strings are legal; the suggestion table falls back.
	assert.NoError(t, Validate("underwater-basket-weaver", validMeta()))
}

func TestValidate_MissingPosition(t *testing.T) {
	err := Validate("", validMeta())
	require.Error(t, err)
	assert.IsType(t, &ErrMissingPosition{}, err)
	assert.Equal(t, "Position is required", err.Error())
}

func TestValidate_MissingFile(t *testing.T) {
	err := Validate("frontend-junior", nil)
	require.Error(t, err)
	assert.IsType(t, &ErrMissingFile{}, err)
	assert.Equal(t, "CV file is required", err.Error())
}

func TestValidate_UnsupportedType(t *testing.T) {
	meta := validMeta()
	meta.Filename = "cv.txt"
	meta.ContentType = "text/plain"

	err := Validate("frontend-junior", meta)
	require.Error(t, err)
	assert.IsType(t, &ErrUnsupportedType{}, err)
	assert.Equal(t, "Only PDF, PNG, or JPG files are allowed", err.Error())
}

func TestValidate_FileTooLarge(t *testing.T) {
	meta := validMeta()
	meta.Size = 6 * 1024 * 1024

	err := Validate("frontend-junior", meta)
	require.Error(t, err)
	assert.IsType(t, &ErrFileTooLarge{}, err)
	assert.Equal(t, "File size must not exceed 5MB", err.Error())
}

func TestValidate_SizeCeilingIsInclusive(t *testing.T) {
	meta := validMeta()
	meta.Size = MaxFileSize
	assert.NoError(t, Validate("frontend-junior", meta))

	meta.Size = MaxFileSize + 1
	assert.Error(t, Validate("frontend-junior", meta))
}

func TestValidate_PositionCheckedBeforeFile(t *testing.T) {
	// Both are missing; the position rejection wins.
	err := Validate("", nil)
	require.Error(t, err)
	assert.IsType(t, &ErrMissingPosition{}, err)
}

func TestHTTPStatus(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(&ErrMissingPosition{}))
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(&ErrMissingFile{}))
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(&ErrUnsupportedType{ContentType: "text/plain"}))
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(&ErrFileTooLarge{Size: 1}))
	assert.Equal(t, http.StatusInternalServerError, HTTPStatus(assert.AnError))
}
