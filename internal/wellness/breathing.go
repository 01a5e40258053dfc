// Package wellness holds the breathing exercise, affirmations and the static
// resource lists.
package wellness

// Phase is one step of the 4-7-8 breathing cycle.
type Phase int

const (
	Inhale Phase = iota
	Hold
	Exhale
)

var phaseInstructions = [...]string{"Breathe in...", "Hold...", "Breathe out..."}
var phaseSeconds = [...]int{4, 7, 8}

// Instruction is the text shown during the phase.
func (p Phase) Instruction() string { return phaseInstructions[p] }

// Seconds is the length of the phase.
func (p Phase) Seconds() int { return phaseSeconds[p] }

func (p Phase) next() Phase { return (p + 1) % 3 }

// Breathing is a countdown through inhale 4s, hold 7s, exhale 8s, repeated.
type Breathing struct {
	phase     Phase
	remaining int
	cycles    int
}

// NewBreathing starts at the beginning of an inhale.
func NewBreathing() *Breathing {
	return &Breathing{phase: Inhale, remaining: Inhale.Seconds()}
}

// Tick advances one second. When the countdown is already at zero the next
// phase begins with its full count.
func (b *Breathing) Tick() {
	if b.remaining > 0 {
		b.remaining--
		return
	}
	b.phase = b.phase.next()
	if b.phase == Inhale {
		b.cycles++
	}
	b.remaining = b.phase.Seconds()
}

// Phase returns the current phase.
func (b *Breathing) Phase() Phase { return b.phase }

// Remaining returns the countdown value shown to the user.
func (b *Breathing) Remaining() int { return b.remaining }

// Cycles returns the number of completed inhale-hold-exhale cycles.
func (b *Breathing) Cycles() int { return b.cycles }
