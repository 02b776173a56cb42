package constants

import "time"

const (
	// GameStepSize is the fixed simulation step in seconds
	GameStepSize float64 = 1.0 / 30.0
	// GameLoopInterval is the ticker period driving the game loop
	GameLoopInterval = time.Second / 30

	// DefaultShaftWidth is the number of columns across x
	DefaultShaftWidth int = 5
	// DefaultShaftHeight is the number of columns across y
	DefaultShaftHeight int = 5
	// DefaultShaftDepth is the number of planes
	DefaultShaftDepth int = 12
	// DefaultStartLevel is the level a new game starts at
	DefaultStartLevel int = 1
	// DefaultBlockset is the name of the built-in block set
	DefaultBlockset string = "Shaaft"

	// MinShaftSize is the smallest accepted shaft dimension
	MinShaftSize int = 3
	// MaxShaftSize is the largest accepted shaft dimension
	MaxShaftSize int = 40

	// MaxLevel is the last level with its own drop delay
	MaxLevel int = 9
	// ElementsPerLevel is how many locked elements it takes to advance a level
	ElementsPerLevel int = 150

	// FreeFallDelay is the time between drops once a piece is released
	FreeFallDelay float64 = 0.5 // seconds
	// PracticeDropDelay keeps the piece hanging in practice mode
	PracticeDropDelay float64 = 100 * 24 * 60 * 60 // seconds

	// BonusIntervalUnit times a random 1..BonusIntervalSteps is the wait between bonus windows
	BonusIntervalUnit float64 = 60.0 // seconds
	// BonusIntervalSteps is the number of possible bonus intervals
	BonusIntervalSteps int = 5
	// BonusCueWindow is how long after the bonus start the cue stays armed
	BonusCueWindow float64 = 0.7 // seconds
	// BonusSecondsPerCell times the plane area is the bonus window length
	BonusSecondsPerCell float64 = 20.0 / 12.0
	// BonusMultiplier applies to every score earned inside the bonus window
	BonusMultiplier int = 2

	// PlaneClearBonus times cleared² times level is the reward for a clear
	PlaneClearBonus int = 50

	// LeaderboardSize is the top ten plus the current game
	LeaderboardSize int = 11
)

// DropDelays are the seconds between gravity drops indexed by level.
var DropDelays = [MaxLevel + 1]float64{9.0, 6.0, 4.0, 2.667, 1.778, 1.185, 0.790, 0.527, 0.351, 0.234}

// DropDelay returns the gravity delay for level, clamped to the table.
func DropDelay(level int) float64 {
	if level < 0 {
		level = 0
	}
	if level > MaxLevel {
		level = MaxLevel
	}
	return DropDelays[level]
}

// Audio samples played by the simulation.
const (
	SampleLock        = "sounds/katoung"
	SampleLevelUp     = "sounds/blblib"
	SampleBonus       = "sounds/achoo"
	SampleClearSingle = "sounds/chirp2"
	SampleClearDouble = "sounds/xdoubleplay"
	SampleClearTriple = "sounds/xtripleplay"
	SampleClearQuad   = "sounds/xmonsterplay"
	SampleClearMany   = "sounds/xrediculous"
)

// ClearSample returns the cue for clearing n planes at once, or "" when n is 0.
func ClearSample(n int) string {
	switch {
	case n <= 0:
		return ""
	case n == 1:
		return SampleClearSingle
	case n == 2:
		return SampleClearDouble
	case n == 3:
		return SampleClearTriple
	case n == 4:
		return SampleClearQuad
	default:
		return SampleClearMany
	}
}
