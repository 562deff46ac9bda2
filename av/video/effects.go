package video

import (
	"fmt"
)

// Effect modifies an NV12 frame in place.
type Effect interface {
	// Apply writes the effect into the frame's planes
	Apply(frame *Frame) error
	// GetName returns the effect name for identification
	GetName() string
}

// EffectChain manages multiple effects applied in sequence.
//
// Effects run in insertion order on the same buffer; later effects see the
// output of earlier ones. Processing stops at the first error.
type EffectChain struct {
	effects []Effect
}

// NewEffectChain creates a new effect processing chain.
func NewEffectChain(effects ...Effect) *EffectChain {
	ec := &EffectChain{
		effects: make([]Effect, 0, len(effects)),
	}
	for _, e := range effects {
		ec.AddEffect(e)
	}
	return ec
}

// AddEffect adds an effect to the processing chain.
func (ec *EffectChain) AddEffect(effect Effect) {
	if effect == nil {
		return
	}
	ec.effects = append(ec.effects, effect)
}

// Apply processes a frame through all effects in the chain.
func (ec *EffectChain) Apply(frame *Frame) error {
	if frame == nil {
		return ErrNilFrame
	}

	for i, effect := range ec.effects {
		if err := effect.Apply(frame); err != nil {
			return fmt.Errorf("effect %d (%s) failed: %w", i, effect.GetName(), err)
		}
	}

	return nil
}

// GetName returns the names of the chained effects.
func (ec *EffectChain) GetName() string {
	names := "Chain("
	for i, effect := range ec.effects {
		if i > 0 {
			names += ","
		}
		names += effect.GetName()
	}
	return names + ")"
}

// GetEffectCount returns the number of effects in the chain.
func (ec *EffectChain) GetEffectCount() int {
	return len(ec.effects)
}

// Clear removes all effects from the chain.
func (ec *EffectChain) Clear() {
	ec.effects = ec.effects[:0]
}

// FillEffect paints the whole frame with one YUV color. It is used to build
// test backgrounds.
type FillEffect struct {
	y, u, v uint8
}

// NewFillEffect creates a fill effect from an RGB color.
func NewFillEffect(r, g, b uint8) *FillEffect {
	y, u, v := ConvertRGB(r, g, b)
	return &FillEffect{y: y, u: u, v: v}
}

// Apply fills the frame.
func (fe *FillEffect) Apply(frame *Frame) error {
	if err := frame.Validate(); err != nil {
		return err
	}
	frame.Fill(fe.y, fe.u, fe.v)
	return nil
}

// GetName returns the effect name.
func (fe *FillEffect) GetName() string {
	return fmt.Sprintf("Fill(%d,%d,%d)", fe.y, fe.u, fe.v)
}
