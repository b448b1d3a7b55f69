// Entity names, connector ids and the fixed geometry of the
// synthesized layout. Everything the external interpreter
// pattern-matches on lives here; no magic literals in the builders.

package synth

// Entity prototype names understood by the external interpreter.
const (
	EntityConstantCombinator   = "constant-combinator"
	EntityDeciderCombinator    = "decider-combinator"
	EntityArithmeticCombinator = "arithmetic-combinator"
	EntityLamp                 = "small-lamp"
	EntitySubstation           = "substation"
)

// Wire connector ids: the closed channel set. Red and green are the two
// independent logical buses, each split into the consumer's input and
// output side; connector 5 is the power mesh.
const (
	ConnRedIn    = 1
	ConnGreenIn  = 2
	ConnRedOut   = 3
	ConnGreenOut = 4
	ConnPower    = 5
)

// Combinator facing directions.
const (
	DirectionRight = 4
	DirectionLeft  = 12
)

// Simulator tick rate. Window widths are ticksPerSecond / targetFPS
// ticks and may be fractional; bounds are kept real-valued on purpose.
const ticksPerSecond = 60.0

// DefaultTargetFPS is the replay rate used when none is configured.
const DefaultTargetFPS = 4

// Timer geometry: the trio sits just above-left of the lamp grid.
const (
	timerConstantX   = -2.5
	timerConstantY   = -4.0
	timerDeciderX    = -1.5
	timerDeciderY    = -4.0
	timerArithmeticX = -1.5
	timerArithmeticY = -3.0
)

// timerSeed is the initial clock value held by the timer constant.
const timerSeed = 1

// Selector geometry: combinator columns per group, relative to the
// group's left edge; rows stack upward from selectorBaseY.
const (
	selectorConstantDX = 0.5
	selectorDeciderDX  = 1.5
	selectorBaseY      = -3.0
)

// Power lattice origin: one tile outside the footprint's top-left
// corner. Part of the black-box sizing contract.
const (
	powerOriginX = -1
	powerOriginY = -1
)

// DefaultCoverage is the lattice spacing of a normal-quality substation.
const DefaultCoverage = 18

// coverageByQuality maps substation quality to lattice spacing.
// Unknown qualities fall back to DefaultCoverage.
var coverageByQuality = map[string]int{
	"normal":    18,
	"uncommon":  20,
	"rare":      22,
	"epic":      24,
	"legendary": 28,
}

// Method tags used as error/log context prefixes.
const (
	methodBuild    = "Build"
	methodTimer    = "Timer"
	methodPower    = "PowerGrid"
	methodSelector = "Selector"
	methodDisplay  = "Display"
)
