package validator_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/myownipgit/mcp-server-qrcode-enhanced/internal/domain/common/errorz"
	"github.com/myownipgit/mcp-server-qrcode-enhanced/internal/domain/entity"
	"github.com/myownipgit/mcp-server-qrcode-enhanced/internal/domain/utils/validator"
)

func TestContent(t *testing.T) {
	require.NoError(t, validator.Content("https://example.com"))

	err := validator.Content("")
	require.Error(t, err)
	assert.Equal(t, errorz.KindValidation, errorz.KindOf(err))

	err = validator.Content("   \t\n  ")
	require.Error(t, err)
	assert.ErrorIs(t, err, errorz.ContentEmpty)

	err = validator.Content(strings.Repeat("x", validator.MaxContentLength+1))
	require.Error(t, err)
	assert.ErrorIs(t, err, errorz.ContentTooLong)

	require.NoError(t, validator.Content(strings.Repeat("x", validator.MaxContentLength)))
}

func TestContentLengthCountsCharacters(t *testing.T) {
	// Multibyte payloads are measured in characters, so a string at the
	// limit passes even though its byte length is far over it.
	content := strings.Repeat("д", validator.MaxContentLength)
	require.Greater(t, len(content), validator.MaxContentLength)
	require.NoError(t, validator.Content(content))

	err := validator.Content(content + "д")
	require.Error(t, err)
	assert.ErrorIs(t, err, errorz.ContentTooLong)
}

func TestEmail(t *testing.T) {
	assert.True(t, validator.Email("ada@example.com"))
	assert.False(t, validator.Email("not-an-email"))
}

func TestURL(t *testing.T) {
	assert.True(t, validator.URL("https://example.com/path"))
	assert.True(t, validator.URL("http://example.com"))
	assert.False(t, validator.URL("ftp://example.com"))
	assert.False(t, validator.URL("example.com"))
}

func TestConfigBounds(t *testing.T) {
	valid := entity.GenerationConfig{}.WithDefaults()
	require.NoError(t, validator.Config(valid))

	cases := []entity.GenerationConfig{
		{Size: 49, Margin: entity.Ptr(1), ErrorCorrectionLevel: entity.LevelMedium, Format: entity.FormatPNG},
		{Size: 2001, Margin: entity.Ptr(1), ErrorCorrectionLevel: entity.LevelMedium, Format: entity.FormatPNG},
		{Size: 300, Margin: entity.Ptr(11), ErrorCorrectionLevel: entity.LevelMedium, Format: entity.FormatPNG},
		{Size: 300, Margin: entity.Ptr(-1), ErrorCorrectionLevel: entity.LevelMedium, Format: entity.FormatPNG},
		{Size: 300, Margin: entity.Ptr(1), ErrorCorrectionLevel: "X", Format: entity.FormatPNG},
		{Size: 300, Margin: entity.Ptr(1), ErrorCorrectionLevel: entity.LevelMedium, Format: "bmp"},
	}
	for _, cfg := range cases {
		err := validator.Config(cfg)
		require.Error(t, err, "config %+v", cfg)
		assert.Equal(t, errorz.KindValidation, errorz.KindOf(err))
	}
}

func TestStyleBounds(t *testing.T) {
	require.NoError(t, validator.Style(entity.StyleSpec{}.WithDefaults()))

	err := validator.Style(entity.StyleSpec{
		ForegroundColor: "#000000",
		BackgroundColor: "#FFFFFF",
		LogoPath:        "logo.png",
		LogoSize:        0.5,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, errorz.InvalidStyle)

	err = validator.Style(entity.StyleSpec{ForegroundColor: "red", BackgroundColor: "#FFFFFF"})
	require.Error(t, err)

	err = validator.Style(entity.StyleSpec{ForegroundColor: "#000000", BackgroundColor: "#FFFFFF", BorderWidth: 21})
	require.Error(t, err)
}

func TestRecord(t *testing.T) {
	require.NoError(t, validator.Record(entity.NetworkCredential{SSID: "Guest"}))

	err := validator.Record(entity.NetworkCredential{})
	require.Error(t, err)
	assert.Equal(t, errorz.KindValidation, errorz.KindOf(err))

	err = validator.Record(entity.ContactRecord{FirstName: "Ada", LastName: "Lovelace", Email: "bad"})
	require.Error(t, err)

	err = validator.Record(entity.CalendarEvent{Title: "Launch"})
	require.Error(t, err)
	require.NoError(t, validator.Record(entity.CalendarEvent{Title: "Launch", StartDate: "2026-03-14"}))
}
