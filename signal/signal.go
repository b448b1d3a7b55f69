package signal

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// Reserved virtual signal names. These are wired into the timer subgraph
// and must never be handed out as pixel addresses.
const (
	// TimerName carries the running clock value (ticks since loop start).
	TimerName = "signal-T"
	// StopName carries the loop bound the clock wraps at.
	StopName = "signal-S"
	// EverythingName is the decider output that forwards every input signal.
	EverythingName = "signal-everything"
)

// VirtualType is the signal type of the reserved clock/stop signals.
const VirtualType = "virtual"

// Quality tiers, in ascending order. The base game exposes Normal and
// QualityUnknown; the Space Age DLC adds the remaining four.
const (
	QualityNormal    = "normal"
	QualityUncommon  = "uncommon"
	QualityRare      = "rare"
	QualityEpic      = "epic"
	QualityLegendary = "legendary"
	QualityUnknown   = "quality-unknown"
)

// Signal identifies one value-carrying slot on the circuit network.
// The zero value of Type and Quality is omitted on the wire; most item
// signals carry only a name.
type Signal struct {
	Type    string `json:"type,omitempty"`
	Name    string `json:"name"`
	Quality string `json:"quality,omitempty"`
}

// Virtual returns the reserved virtual signal with the given name.
func Virtual(name string) Signal {
	return Signal{Type: VirtualType, Name: name}
}

// Load parses a JSON array of signal records from r and removes every
// record named TimerName. The input order is preserved; it defines the
// addressing priority of the palette.
//
// Returns ErrLoad (wrapped) on malformed input and ErrEmptyPalette when
// nothing usable remains.
func Load(r io.Reader) ([]Signal, error) {
	var raw []Signal
	dec := json.NewDecoder(r)
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoad, err)
	}

	// Filter in place, keeping order stable.
	usable := raw[:0]
	for _, s := range raw {
		if s.Name == TimerName {
			continue
		}
		usable = append(usable, s)
	}
	if len(usable) == 0 {
		return nil, ErrEmptyPalette
	}
	return usable, nil
}

// LoadFile is Load over the named file.
func LoadFile(path string) ([]Signal, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("signal: open %s: %w", path, err)
	}
	defer f.Close()
	return Load(f)
}

// ExpandQualities multiplies the palette by quality tiers, yielding one
// addressable signal per (record, quality) pair. With useDLC the full
// six tiers apply; without it only Normal and QualityUnknown do.
// Expansion preserves record order: all tiers of record 0 come before
// any tier of record 1.
func ExpandQualities(signals []Signal, useDLC bool) []Signal {
	tiers := []string{QualityNormal, QualityUnknown}
	if useDLC {
		tiers = []string{
			QualityNormal, QualityUncommon, QualityRare,
			QualityEpic, QualityLegendary, QualityUnknown,
		}
	}

	out := make([]Signal, 0, len(signals)*len(tiers))
	for _, s := range signals {
		for _, q := range tiers {
			t := s
			t.Quality = q
			out = append(out, t)
		}
	}
	return out
}
