package appconfig

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleYAML = `
"":
  "":
    stereo-panning: uhj
  decoder:
    hq-mode: "true"
"hw:0":
  "":
    stereo-mode: headphones
    cf_level: "3"
  decoder:
    surround51: /etc/ambicore/x51.ambdec
`

func TestConfig_DeviceScopedKeyNotSeenByOtherDevices(t *testing.T) {
	c, err := Parse([]byte(sampleYAML))
	require.NoError(t, err)

	v, ok := c.GetStr("hw:0", "", "stereo-mode")
	require.True(t, ok)
	assert.Equal(t, "headphones", v)

	v, ok = c.GetStr("hw:1", "", "stereo-mode")
	assert.False(t, ok)
	assert.Equal(t, "", v)
}

func TestConfig_FallsBackToGlobalSection(t *testing.T) {
	c, err := Parse([]byte(sampleYAML))
	require.NoError(t, err)

	v, ok := c.GetStr("hw:0", "", "stereo-panning")
	require.True(t, ok)
	assert.Equal(t, "uhj", v)
}

func TestConfig_GetBool(t *testing.T) {
	c, err := Parse([]byte(sampleYAML))
	require.NoError(t, err)

	b, ok := c.GetBool("hw:0", "decoder", "hq-mode")
	require.True(t, ok)
	assert.True(t, b)

	_, ok = c.GetBool("hw:0", "decoder", "missing")
	assert.False(t, ok)
}

func TestConfig_GetInt(t *testing.T) {
	c, err := Parse([]byte(sampleYAML))
	require.NoError(t, err)

	n, ok := c.GetInt("hw:0", "", "cf_level")
	require.True(t, ok)
	assert.Equal(t, 3, n)
}

func TestConfig_GetIntRejectsNonNumeric(t *testing.T) {
	c, err := Parse([]byte(sampleYAML))
	require.NoError(t, err)

	_, ok := c.GetInt("hw:0", "", "stereo-mode")
	assert.False(t, ok)
}

func TestConfig_NilConfigSourceIsAlwaysEmpty(t *testing.T) {
	var c *Config
	_, ok := c.GetStr("any", "any", "any")
	assert.False(t, ok)
}

func TestLoad_MissingFileReturnsError(t *testing.T) {
	_, err := Load("/nonexistent/ambicore.yaml")
	assert.Error(t, err)
}
