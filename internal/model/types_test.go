package model

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseColor(t *testing.T) {
	for _, color := range Colors {
		parsed, err := ParseColor(string(color))
		require.NoError(t, err)
		assert.Equal(t, color, parsed)
	}
}

func TestParseColor_Invalid(t *testing.T) {
	for _, input := range []string{"", "yellow", "RED", "Red", "red "} {
		_, err := ParseColor(input)
		assert.True(t, errors.Is(err, ErrInvalidColor), "input %q", input)
	}
}

func TestColors_EnumOrder(t *testing.T) {
	assert.Equal(t, []Color{ColorRed, ColorGreen, ColorBlue, ColorPurple, ColorOrange}, Colors)
}
