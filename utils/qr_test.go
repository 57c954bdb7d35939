package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMenuURL(t *testing.T) {
	url := MenuURL("https://qr.example.com", 3, 12)
	assert.Equal(t, "https://qr.example.com/menu/client.html?restaurant_id=3&table_id=12", url)
}

func TestGenerateQRPNG(t *testing.T) {
	png, err := GenerateQRPNG("https://qr.example.com/menu/client.html?restaurant_id=1&table_id=1", 300)
	require.NoError(t, err)
	// PNG magic bytes
	require.True(t, len(png) > 8)
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, png[:4])
}

func TestGenerateQRDataURI(t *testing.T) {
	uri, err := GenerateQRDataURI("https://qr.example.com/menu", 300)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(uri, "data:image/png;base64,"))
	assert.Greater(t, len(uri), len("data:image/png;base64,"))
}
