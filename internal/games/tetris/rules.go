package tetris

// Rules holds the tunable constants of a session. DefaultRules matches the
// classic single/double/triple/tetris scoring and a 100ms speed floor.
type Rules struct {
	Rows int
	Cols int

	InitialDropMs int // Gravity interval at level 1
	MinDropMs     int // Speed floor
	DropStepMs    int // Interval reduction per level

	LinePoints     []int // Indexed by rows cleared at once; multiplied by level
	SoftDropPoints int   // Per row moved by a soft drop
	HardDropPoints int   // Per row moved by a hard drop
	LinesPerLevel  int

	// WallKicks lists the horizontal offsets tried, in order, when a
	// rotation collides at the current anchor.
	WallKicks []int
}

// DefaultRules returns the standard rule set.
func DefaultRules() Rules {
	return Rules{
		Rows:           DefaultRows,
		Cols:           DefaultCols,
		InitialDropMs:  1000,
		MinDropMs:      100,
		DropStepMs:     100,
		LinePoints:     []int{0, 100, 300, 500, 800},
		SoftDropPoints: 1,
		HardDropPoints: 2,
		LinesPerLevel:  10,
		WallKicks:      []int{1, -1, 2, -2},
	}
}

// LinePointsFor returns the base points for clearing n rows at once.
// Counts beyond the table use its last entry.
func (r Rules) LinePointsFor(n int) int {
	if n <= 0 || len(r.LinePoints) == 0 {
		return 0
	}
	if n >= len(r.LinePoints) {
		return r.LinePoints[len(r.LinePoints)-1]
	}
	return r.LinePoints[n]
}

// LevelFor returns the level reached after clearing lines rows in total.
func (r Rules) LevelFor(lines int) int {
	per := r.LinesPerLevel
	if per <= 0 {
		per = 10
	}
	return lines/per + 1
}

// DropIntervalFor returns the gravity interval in milliseconds at level.
func (r Rules) DropIntervalFor(level int) int {
	return max(r.MinDropMs, r.InitialDropMs-(level-1)*r.DropStepMs)
}
