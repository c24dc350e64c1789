package qtomo

import (
	"fmt"
	"strings"
)

// Pulse is a single operation in a sequence.
type Pulse interface {
	fmt.Stringer
}

/*
Primitives is the pulse-primitive library the generator builds on. It
supplies the single-qubit basis rotations, the simultaneous-composition
operator and the measurement constructor. Errors or panics raised by an
implementation are not inspected.
*/
type Primitives interface {
	Id(q Qubit) Pulse
	X90(q Qubit) Pulse
	X90m(q Qubit) Pulse
	Y90(q Qubit) Pulse
	Y90m(q Qubit) Pulse
	X(q Qubit) Pulse
	Compose(a, b Pulse) Pulse
	Measure(chans ...Qubit) Pulse
}

// PulseKind enumerates the basis rotations used for tomography.
type PulseKind int

const (
	Id PulseKind = iota
	X90
	X90m
	Y90
	Y90m
	X180
)

var pulseKindNames = [...]string{
	Id:   "Id",
	X90:  "X90",
	X90m: "X90m",
	Y90:  "Y90",
	Y90m: "Y90m",
	X180: "X",
}

func (k PulseKind) String() string {
	if k < 0 || int(k) >= len(pulseKindNames) {
		return fmt.Sprintf("PulseKind(%d)", int(k))
	}
	return pulseKindNames[k]
}

// Apply builds the pulse of this kind on q using lib.
func (k PulseKind) Apply(lib Primitives, q Qubit) Pulse {
	switch k {
	case Id:
		return lib.Id(q)
	case X90:
		return lib.X90(q)
	case X90m:
		return lib.X90m(q)
	case Y90:
		return lib.Y90(q)
	case Y90m:
		return lib.Y90m(q)
	case X180:
		return lib.X(q)
	default:
		panic(fmt.Sprintf("qtomo: unknown pulse kind %d", int(k)))
	}
}

/*
Primitive is a single basis rotation bound to one qubit.
*/
type Primitive struct {
	Kind  PulseKind
	Qubit Qubit
}

func (p *Primitive) String() string {
	return fmt.Sprintf("%s(%s)", p.Kind, p.Qubit.Label())
}

/*
Composite holds pulses applied simultaneously on different qubits.
Composing a Composite with anything flattens it, so composition is
associative and a left fold over N pulses yields N members.
*/
type Composite struct {
	Pulses []Pulse
}

func (c *Composite) String() string {
	parts := make([]string, len(c.Pulses))
	for i, p := range c.Pulses {
		parts[i] = p.String()
	}
	return strings.Join(parts, "*")
}

// Measurement reads out the given channels.
type Measurement struct {
	Channels []Qubit
}

func (m *Measurement) String() string {
	return "MEAS(" + strings.Join(labels(m.Channels), ",") + ")"
}

type primitives struct{}

// NewPrimitives returns the reference pulse library.
func NewPrimitives() Primitives {
	return primitives{}
}

func (primitives) Id(q Qubit) Pulse { return &Primitive{Kind: Id, Qubit: q} }
func (primitives) X90(q Qubit) Pulse { return &Primitive{Kind: X90, Qubit: q} }
func (primitives) X90m(q Qubit) Pulse { return &Primitive{Kind: X90m, Qubit: q} }
func (primitives) Y90(q Qubit) Pulse { return &Primitive{Kind: Y90, Qubit: q} }
func (primitives) Y90m(q Qubit) Pulse { return &Primitive{Kind: Y90m, Qubit: q} }
func (primitives) X(q Qubit) Pulse { return &Primitive{Kind: X180, Qubit: q} }

func (primitives) Compose(a, b Pulse) Pulse {
	members := make([]Pulse, 0, 2)
	for _, p := range []Pulse{a, b} {
		if c, ok := p.(*Composite); ok {
			members = append(members, c.Pulses...)
			continue
		}
		members = append(members, p)
	}
	return &Composite{Pulses: members}
}

func (primitives) Measure(chans ...Qubit) Pulse {
	channels := make([]Qubit, len(chans))
	copy(channels, chans)
	return &Measurement{Channels: channels}
}
