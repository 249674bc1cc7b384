package golf

// EventPort receives the notifications the simulation emits to its host.
type EventPort interface {
	// OnStroke is called once per launched shot and once per out-of-bounds penalty.
	OnStroke()
	// OnHoleComplete is called once when the ball drops into the hole.
	OnHoleComplete()
	// OnPowerChanged reports the charge power in percent whenever it changes.
	OnPowerChanged(percent float64)
}

// PauseSource is polled by every step and input command.
type PauseSource interface {
	Paused() bool
}

// NopEvents discards all events.
type NopEvents struct{}

func (NopEvents) OnStroke()              {}
func (NopEvents) OnHoleComplete()        {}
func (NopEvents) OnPowerChanged(float64) {}

// PauseFunc adapts a function to PauseSource.
type PauseFunc func() bool

// Paused calls f.
func (f PauseFunc) Paused() bool { return f() }

type neverPaused struct{}

func (neverPaused) Paused() bool { return false }
