package utils

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanJSON(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", `{"hp": 50}`, `{"hp": 50}`},
		{"surrounding whitespace", "\n  {\"hp\": 50}  \n", `{"hp": 50}`},
		{"json fence", "```json\n{\"hp\": 50}\n```", `{"hp": 50}`},
		{"bare fence", "```\n{\"hp\": 50}\n```", `{"hp": 50}`},
		{"fence on one line", "```json{\"hp\": 50}```", `{"hp": 50}`},
		{"only opening fence", "```json\n{\"hp\": 50}", `{"hp": 50}`},
		{"only closing fence", "{\"hp\": 50}\n```", `{"hp": 50}`},
		{"inner fence kept", "{\"a\": \"```\", \"b\": 1}", "{\"a\": \"```\", \"b\": 1}"},
		{"empty", "   ", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CleanJSON(tt.in))
		})
	}
}

func TestCleanJSON_Idempotent(t *testing.T) {
	once := CleanJSON("```json\n{\"hp\": 50}\n```")
	assert.Equal(t, once, CleanJSON(once))
}

func TestErrJSON(t *testing.T) {
	assert.Equal(t, map[string]any{"error": "boom"}, ErrJSON("boom"))
	assert.Equal(t, map[string]any{"error": "boom", "raw": ""}, ErrJSON("boom", ""))
}

func TestLimitStr(t *testing.T) {
	assert.Equal(t, "abc", LimitStr("abc", 5))
	assert.Equal(t, "ab...", LimitStr("abcdef", 2))
	assert.Equal(t, "abc", LimitStr("abc", 3))
	assert.Equal(t, "Poké...", LimitStr("Pokémon", 4))
	assert.Equal(t, "🔥💧", LimitStr("🔥💧", 2))
	assert.Equal(t, "🔥...", LimitStr("🔥💧🌿", 1))
	assert.True(t, utf8.ValidString(LimitStr("ééééé", 3)))
}

func TestToWebP(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for x := range 4 {
		for y := range 4 {
			img.Set(x, y, color.RGBA{R: 200, G: uint8(x * 40), B: uint8(y * 40), A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))

	out, err := ToWebP(buf.Bytes())
	require.NoError(t, err)
	require.Greater(t, len(out), 12)
	assert.Equal(t, "RIFF", string(out[:4]))
	assert.Equal(t, "WEBP", string(out[8:12]))
}

func TestToWebP_NotAnImage(t *testing.T) {
	_, err := ToWebP([]byte("definitely not an image"))
	assert.Error(t, err)
}
