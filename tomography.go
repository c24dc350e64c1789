package qtomo

import (
	"github.com/pkg/errors"
	"github.com/theapemachine/errnie"
)

// Alignment selects how the pulses of one block are laid out in time.
type Alignment string

const (
	Parallel Alignment = "parallel"
	Serial   Alignment = "serial"
)

func (a Alignment) validate() error {
	switch a {
	case Parallel, Serial:
		return nil
	default:
		return errors.Wrap(ErrInvalidArgument, "Alignment must be either serial or parallel")
	}
}

/*
Block is one unit of a sequence. A parallel block holds a single
composite pulse. A serial block holds one pulse per qubit, in qubit
order, to be played back to back.
*/
type Block struct {
	Alignment Alignment
	Pulses    []Pulse
}

// Pulse returns the composite pulse of a parallel block, or nil.
func (b Block) Pulse() Pulse {
	if b.Alignment != Parallel || len(b.Pulses) != 1 {
		return nil
	}
	return b.Pulses[0]
}

/*
Generator expands base sequences into tomography experiments. It holds
only read-only collaborators and may be shared between goroutines.
*/
type Generator struct {
	lib    Primitives
	config *Config
}

// NewGenerator builds a Generator. A nil config means NewConfig().
func NewGenerator(lib Primitives, config *Config) *Generator {
	if config == nil {
		config = NewConfig()
	}

	errnie.Info(
		"NewGenerator - numPulses %d, alignment %s",
		config.NumPulses,
		config.Alignment,
	)

	return &Generator{
		lib:    lib,
		config: config,
	}
}

// Config returns the generator's configuration.
func (g *Generator) Config() *Config {
	return g.config
}

/*
CreateTomoBlocks returns one Block for every assignment of a basis pulse
to each qubit. Assignments follow Cartesian-product order with the last
qubit varying fastest, so the result has numPulses^len(qubits) entries.
*/
func (g *Generator) CreateTomoBlocks(qubits []Qubit, numPulses int, alignment Alignment) ([]Block, error) {
	basis, err := TomoBasis(numPulses)
	if err != nil {
		return nil, err
	}
	if err := alignment.validate(); err != nil {
		return nil, err
	}
	if len(qubits) == 0 {
		return nil, errors.Wrap(ErrInvalidArgument, "at least one qubit is required")
	}

	blocks := make([]Block, 0, intPow(len(basis), len(qubits)))

	product(len(basis), len(qubits), func(tuple []int) {
		pulses := make([]Pulse, len(qubits))
		for i, q := range qubits {
			pulses[i] = basis[tuple[i]].Apply(g.lib, q)
		}

		if alignment == Serial {
			blocks = append(blocks, Block{Alignment: Serial, Pulses: pulses})
			return
		}

		composite := pulses[0]
		for _, p := range pulses[1:] {
			composite = g.lib.Compose(composite, p)
		}
		blocks = append(blocks, Block{Alignment: Parallel, Pulses: []Pulse{composite}})
	})

	return blocks, nil
}
