package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	err := New(ErrFontNotFound, "font 'nope' not found")

	assert.Equal(t, ErrFontNotFound, err.Code)
	assert.Equal(t, "[FONT_NOT_FOUND] font 'nope' not found", err.Error())
}

func TestNewf(t *testing.T) {
	err := Newf(ErrTemplateNotFound, "template '%s' not found", "retro")
	assert.Equal(t, "[TEMPLATE_NOT_FOUND] template 'retro' not found", err.Error())
}

func TestWrap(t *testing.T) {
	inner := fmt.Errorf("permission denied")
	err := Wrap(inner, ErrFileWrite, "cannot write banner")

	assert.Equal(t, "[FILE_WRITE] cannot write banner: permission denied", err.Error())
	assert.Equal(t, inner, errors.Unwrap(err))

	assert.Nil(t, Wrap(nil, ErrFileWrite, "ignored"))
}

func TestIs(t *testing.T) {
	err := New(ErrColorInvalid, "bad color")
	assert.True(t, errors.Is(err, New(ErrColorInvalid, "other message")))
	assert.False(t, errors.Is(err, New(ErrBorderInvalid, "bad color")))
}

func TestIsErrorCode(t *testing.T) {
	err := Wrapf(fmt.Errorf("boom"), ErrFontRender, "render failed for %q", "doom")

	assert.True(t, IsErrorCode(err, ErrFontRender))
	assert.False(t, IsErrorCode(err, ErrFontNotFound))
	assert.False(t, IsErrorCode(fmt.Errorf("plain"), ErrFontRender))
}

func TestGetErrorCode(t *testing.T) {
	assert.Equal(t, ErrFormatUnsupported, GetErrorCode(New(ErrFormatUnsupported, "nope")))
	assert.Equal(t, ErrUnknown, GetErrorCode(fmt.Errorf("plain")))
	// Wrapped FiggoErrors are still visible through errors.As
	wrapped := fmt.Errorf("outer: %w", New(ErrConfigParse, "bad toml"))
	assert.Equal(t, ErrConfigParse, GetErrorCode(wrapped))
}

func TestWithDetail(t *testing.T) {
	err := New(ErrFontNotFound, "not found").WithDetail("font", "gothic")
	assert.Equal(t, "gothic", err.Details["font"])
}
