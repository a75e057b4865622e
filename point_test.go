package tmx

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePoint(t *testing.T) {
	p, err := ParsePoint("1,2")
	require.NoError(t, err)
	assert.Equal(t, Point{X: 1, Y: 2}, p)

	p, err = ParsePoint("-3,4")
	require.NoError(t, err)
	assert.Equal(t, Point{X: -3, Y: 4}, p)
}

func TestParsePointWrongArity(t *testing.T) {
	for _, raw := range []string{"", "1", "1,2,3"} {
		_, err := ParsePoint(raw)
		require.Error(t, err, "raw: %s", raw)
		assert.IsType(t, &InvalidPointError{}, err)
	}
}

func TestParsePointBadComponent(t *testing.T) {
	for _, raw := range []string{"a,2", "1,b"} {
		_, err := ParsePoint(raw)
		require.Error(t, err, "raw: %s", raw)
		assert.IsType(t, &InvalidNumberError{}, err)
	}
}

func TestParsePoints(t *testing.T) {
	points, err := ParsePoints("0,1 2,3 4,5")
	require.NoError(t, err)
	assert.Equal(t, []Point{{0, 1}, {2, 3}, {4, 5}}, points)
}

func TestParsePointsEmpty(t *testing.T) {
	points, err := ParsePoints("")
	require.NoError(t, err)
	assert.Empty(t, points)
}

func TestParsePointsBadElement(t *testing.T) {
	_, err := ParsePoints("0,1 nope 4,5")
	require.Error(t, err)
	assert.IsType(t, &InvalidPointError{}, err)
}

func TestParseCorners(t *testing.T) {
	c, err := parseCorners("0,1,2,3")
	require.NoError(t, err)
	assert.Equal(t, Corners{TopLeft: 0, TopRight: 1, BottomLeft: 2, BottomRight: 3}, c)
}

func TestParseCornersWrongArity(t *testing.T) {
	_, err := parseCorners("0,1,2")
	require.Error(t, err)
	assert.IsType(t, &InvalidPointError{}, err)
}

func TestParseCornersBadComponent(t *testing.T) {
	_, err := parseCorners("0,1,x,3")
	require.Error(t, err)
	assert.IsType(t, &InvalidNumberError{}, err)
}
