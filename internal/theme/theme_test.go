package theme

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	p, err := Parse(" Dark ")
	require.NoError(t, err)
	assert.Equal(t, Dark, p)

	p, err = Parse("light")
	require.NoError(t, err)
	assert.Equal(t, Light, p)

	_, err = Parse("sepia")
	assert.ErrorIs(t, err, ErrUnknownPreference)
}

func TestPreferenceToggle(t *testing.T) {
	assert.Equal(t, Dark, Light.Toggle())
	assert.Equal(t, Light, Dark.Toggle())
	assert.Equal(t, Light, Light.Toggle().Toggle())
}

func TestPreferenceClass(t *testing.T) {
	assert.Equal(t, "dark", Dark.Class())
	assert.Equal(t, "", Light.Class())
	assert.Equal(t, "Switch to light mode", Dark.ToggleLabel())
	assert.Equal(t, "Switch to dark mode", Light.ToggleLabel())
}

func TestController(t *testing.T) {
	c := NewController(Preference("bogus"))
	assert.Equal(t, Light, c.Current(), "unknown initial preference should fall back to light")

	assert.Equal(t, Dark, c.Toggle())
	assert.Equal(t, Dark, c.Current())
	assert.Equal(t, Light, c.Toggle())

	assert.Equal(t, Dark, NewController(Dark).Current())
}
