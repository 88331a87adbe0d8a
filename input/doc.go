// Package input turns raw device activity into a single steering vector and
// a trigger pulse.
//
// The pipeline has three stages. Captures (Keyboard, Gamepad, and whatever
// pointer feed the front-end supplies) normalize device activity into
// (Vector, Source) events and publish them on an Events bus. The Arbiter
// subscribes to the bus and decides which source currently owns movement.
// Consumers read the fused vector from the Arbiter once per update tick and
// subscribe to the bus for trigger pulses.
//
// The package is deliberately single-threaded. One goroutine, normally the
// frame loop of the front-end, owns the bus and everything attached to it:
// it feeds the captures, polls the gamepad and reads the arbiter. Nothing
// here takes a lock and nothing may be called from another goroutine. The
// one exception to the rule is the curve.Calibration type, which is safe to
// write from elsewhere.
//
// Captures belong to the context that created them. Creating two captures of
// the same kind against the same bus duplicates every event, so the owning
// front-end should create each capture exactly once and release arbiters
// with Close when their consumer goes away.
package input
