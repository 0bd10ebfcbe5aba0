package tetris

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLinePointsFor(t *testing.T) {
	r := DefaultRules()

	assert.Equal(t, 0, r.LinePointsFor(0))
	assert.Equal(t, 100, r.LinePointsFor(1))
	assert.Equal(t, 300, r.LinePointsFor(2))
	assert.Equal(t, 500, r.LinePointsFor(3))
	assert.Equal(t, 800, r.LinePointsFor(4))
	assert.Equal(t, 800, r.LinePointsFor(6), "beyond the table uses the last entry")
}

func TestLevelFor(t *testing.T) {
	r := DefaultRules()

	assert.Equal(t, 1, r.LevelFor(0))
	assert.Equal(t, 1, r.LevelFor(9))
	assert.Equal(t, 2, r.LevelFor(10))
	assert.Equal(t, 3, r.LevelFor(24))

	r.LinesPerLevel = 0
	assert.Equal(t, 2, r.LevelFor(10))
}

func TestDropIntervalFor(t *testing.T) {
	r := DefaultRules()

	tests := []struct {
		level int
		want  int
	}{
		{1, 1000},
		{2, 900},
		{5, 600},
		{10, 100},
		{15, 100},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, r.DropIntervalFor(tt.level), "level %d", tt.level)
	}
}
