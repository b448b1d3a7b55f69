package synth

import "github.com/colinchilds/giftorio/blueprint"

// alloc hands out entity numbers: strictly monotonic from 1, never
// reused. Build owns exactly one and threads it through every
// subgraph builder; nothing else mints ids.
type alloc struct {
	next int
}

func newAlloc() *alloc {
	return &alloc{next: 1}
}

// take returns the next id and advances. Ids are final on assignment;
// handles capture them, nothing renumbers.
func (a *alloc) take() int {
	id := a.next
	a.next++
	return id
}

// tap is one attachment point: an entity's connector on some channel.
type tap struct {
	entity    int
	connector int
}

// bus is a first-class shared channel: an ordered list of attachments.
// All attached endpoints observe the same combined signal state; the
// pairwise wires below merely realize that sharing for the serializer.
type bus struct {
	taps []tap
}

// attach appends an endpoint. Order is preserved for serialization
// only; semantically the bus is unordered.
func (b *bus) attach(entity, connector int) {
	b.taps = append(b.taps, tap{entity: entity, connector: connector})
}

// wires emits one wire per consecutive attachment pair, older entity
// first. A bus with fewer than two taps needs no wires.
func (b *bus) wires() []blueprint.Wire {
	if len(b.taps) < 2 {
		return nil
	}
	out := make([]blueprint.Wire, 0, len(b.taps)-1)
	for i := 1; i < len(b.taps); i++ {
		p, c := b.taps[i-1], b.taps[i]
		out = append(out, blueprint.Wire{p.entity, p.connector, c.entity, c.connector})
	}
	return out
}
