package blueprint

import (
	"github.com/colinchilds/giftorio/signal"
)

// Item is the in-game item name of a blueprint document.
const Item = "blueprint"

// VersionMagic is the fixed game-version stamp the external simulator
// accepts. Treated as an opaque constant, not derived.
const VersionMagic uint64 = 562949955518464

// VersionChar is the one-character format tag prepended to the encoded
// string.
const VersionChar = '0'

// Blueprint is the document root. The single wrapping key is part of
// the wire contract.
type Blueprint struct {
	Blueprint Book `json:"blueprint"`
}

// Book holds the actual graph: placed entities and the wires between
// their connectors.
type Book struct {
	Icons    []Icon   `json:"icons"`
	Entities []Entity `json:"entities"`
	Wires    []Wire   `json:"wires"`
	Item     string   `json:"item"`
	Version  uint64   `json:"version"`
}

// Icon is one of the toolbar icons shown for the blueprint.
type Icon struct {
	Signal signal.Signal `json:"signal"`
	Index  int           `json:"index"`
}

// Wire connects two entity connectors:
// [from_id, from_connector, to_id, to_connector].
// Logically it is an undirected attachment to a shared bus; the order
// is a serialization detail.
type Wire [4]int

// Entity is one placed unit of the simulated circuit.
type Entity struct {
	EntityNumber    int              `json:"entity_number"`
	Name            string           `json:"name"`
	Position        Position         `json:"position"`
	Direction       int              `json:"direction,omitempty"`
	ControlBehavior *ControlBehavior `json:"control_behavior,omitempty"`
	Quality         string           `json:"quality,omitempty"`
	AlwaysOn        bool             `json:"always_on,omitempty"`
}

// Position is the entity center on the build grid. Combinators sit on
// half-tile centers, which is why both axes are real-valued.
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// ControlBehavior carries the kind-specific configuration. Exactly one
// family of fields is populated per entity kind; unset families are
// omitted from the wire.
type ControlBehavior struct {
	// Constant combinators.
	Sections *Sections `json:"sections,omitempty"`
	// Decider combinators.
	DeciderConditions *DeciderConditions `json:"decider_conditions,omitempty"`
	// Arithmetic combinators.
	ArithmeticConditions *ArithmeticConditions `json:"arithmetic_conditions,omitempty"`
	// Color lamps.
	UseColors bool           `json:"use_colors,omitempty"`
	RGBSignal *signal.Signal `json:"rgb_signal,omitempty"`
	ColorMode int            `json:"color_mode,omitempty"`
}

// Sections wraps the filter sections of a constant combinator.
type Sections struct {
	Sections []Section `json:"sections"`
}

// Section is one ordered filter block inside a constant combinator.
type Section struct {
	Index   int      `json:"index"`
	Filters []Filter `json:"filters"`
}

// Filter is one constant emission: the embedded Signal names the slot,
// Count carries the value. Count is always serialized; a packed black
// pixel is a legitimate zero.
type Filter struct {
	Index      int    `json:"index"`
	Comparator string `json:"comparator"`
	Count      int    `json:"count"`
	signal.Signal
}

// DeciderConditions is the condition/output program of a decider.
type DeciderConditions struct {
	Conditions []Condition `json:"conditions"`
	Outputs    []Output    `json:"outputs"`
}

// Condition compares a signal against either another signal or a
// real-valued constant. Constant is a pointer so a zero lower bound
// still reaches the wire.
type Condition struct {
	FirstSignal  signal.Signal  `json:"first_signal"`
	SecondSignal *signal.Signal `json:"second_signal,omitempty"`
	Constant     *float64       `json:"constant,omitempty"`
	Comparator   string         `json:"comparator"`
	CompareType  string         `json:"compare_type,omitempty"`
}

// Output names one signal a decider forwards while its conditions hold.
type Output struct {
	Signal signal.Signal `json:"signal"`
}

// ArithmeticConditions is the single operation of an arithmetic
// combinator.
type ArithmeticConditions struct {
	FirstSignal    signal.Signal `json:"first_signal"`
	SecondConstant *int          `json:"second_constant,omitempty"`
	Operation      string        `json:"operation"`
	OutputSignal   signal.Signal `json:"output_signal"`
}

// Empty returns a document with the standard icon, item and version
// stamp and no entities or wires.
func Empty() *Blueprint {
	return &Blueprint{
		Blueprint: Book{
			Icons: []Icon{
				{Signal: signal.Signal{Name: "decider-combinator"}, Index: 1},
			},
			Entities: []Entity{},
			Wires:    []Wire{},
			Item:     Item,
			Version:  VersionMagic,
		},
	}
}
