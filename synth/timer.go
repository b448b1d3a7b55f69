package synth

import (
	"github.com/colinchilds/giftorio/blueprint"
	"github.com/colinchilds/giftorio/signal"
)

// timerGraph is the handle returned by buildTimer. Downstream wiring
// taps the clock at (DeciderID, ConnGreenOut); nothing recomputes these
// ids by offset.
type timerGraph struct {
	ConstantID   int
	DeciderID    int
	ArithmeticID int
}

// buildTimer appends the clock trio to the book and returns its handle.
//
// Behavior in the target simulator: the constant seeds signal-T = 1 and
// holds signal-S = stop; the decider re-emits T while T < S; the
// arithmetic combinator adds 1 and feeds the sum back into the decider
// input. Net effect: T climbs by one per tick and the loop restarts
// once T reaches stop, a free-running clock of period stop with no
// drift. Built exactly once per graph regardless of group count.
func buildTimer(book *blueprint.Book, a *alloc, stop int) timerGraph {
	constID := a.take()
	decID := a.take()
	arithID := a.take()

	second := 1
	book.Entities = append(book.Entities,
		blueprint.Entity{
			EntityNumber: constID,
			Name:         EntityConstantCombinator,
			Position:     blueprint.Position{X: timerConstantX, Y: timerConstantY},
			Direction:    DirectionRight,
			ControlBehavior: &blueprint.ControlBehavior{
				Sections: &blueprint.Sections{Sections: []blueprint.Section{
					{
						Index: 1,
						Filters: []blueprint.Filter{
							{
								Index:      1,
								Comparator: "=",
								Count:      timerSeed,
								Signal: signal.Signal{
									Type:    signal.VirtualType,
									Name:    signal.TimerName,
									Quality: signal.QualityNormal,
								},
							},
							{
								Index:      2,
								Comparator: "=",
								Count:      stop,
								Signal: signal.Signal{
									Type:    signal.VirtualType,
									Name:    signal.StopName,
									Quality: signal.QualityNormal,
								},
							},
						},
					},
				}},
			},
		},
		blueprint.Entity{
			EntityNumber: decID,
			Name:         EntityDeciderCombinator,
			Position:     blueprint.Position{X: timerDeciderX, Y: timerDeciderY},
			Direction:    DirectionRight,
			ControlBehavior: &blueprint.ControlBehavior{
				DeciderConditions: &blueprint.DeciderConditions{
					Conditions: []blueprint.Condition{
						{
							FirstSignal:  signal.Virtual(signal.TimerName),
							SecondSignal: ptr(signal.Virtual(signal.StopName)),
							Comparator:   "<",
						},
					},
					Outputs: []blueprint.Output{
						{Signal: signal.Virtual(signal.TimerName)},
					},
				},
			},
		},
		blueprint.Entity{
			EntityNumber: arithID,
			Name:         EntityArithmeticCombinator,
			Position:     blueprint.Position{X: timerArithmeticX, Y: timerArithmeticY},
			Direction:    DirectionLeft,
			ControlBehavior: &blueprint.ControlBehavior{
				ArithmeticConditions: &blueprint.ArithmeticConditions{
					FirstSignal:    signal.Virtual(signal.TimerName),
					SecondConstant: &second,
					Operation:      "+",
					OutputSignal:   signal.Virtual(signal.TimerName),
				},
			},
		},
	)

	// Seed bus: constant into the decider input.
	seed := &bus{}
	seed.attach(constID, ConnRedIn)
	seed.attach(decID, ConnRedIn)
	book.Wires = append(book.Wires, seed.wires()...)

	// Feedback loop: decider input sees the incremented value, the
	// incrementer reads the decider's output. One-tick delay per hop is
	// exactly what makes T advance once per tick.
	forward := &bus{}
	forward.attach(decID, ConnGreenIn)
	forward.attach(arithID, ConnGreenOut)
	book.Wires = append(book.Wires, forward.wires()...)

	back := &bus{}
	back.attach(decID, ConnGreenOut)
	back.attach(arithID, ConnGreenIn)
	book.Wires = append(book.Wires, back.wires()...)

	return timerGraph{ConstantID: constID, DeciderID: decID, ArithmeticID: arithID}
}

func ptr[T any](v T) *T {
	return &v
}
