package qtomo

import "github.com/theapemachine/errnie"

// Sequence is an ordered list of pulses ending in a measurement.
type Sequence []Pulse

// TomoOption configures a single StateTomo or ProcessTomo call.
type TomoOption func(*tomoParams)

type tomoParams struct {
	numPulses int
	measChans []Qubit
	measSet   bool
}

// WithNumPulses overrides the configured basis size.
func WithNumPulses(n int) TomoOption {
	return func(p *tomoParams) {
		p.numPulses = n
	}
}

// WithMeasChans measures the given channels instead of the tomography qubits.
func WithMeasChans(chans ...Qubit) TomoOption {
	return func(p *tomoParams) {
		p.measChans = chans
		p.measSet = true
	}
}

func (g *Generator) params(qubits []Qubit, opts []TomoOption) *tomoParams {
	p := &tomoParams{numPulses: g.config.NumPulses}
	for _, opt := range opts {
		opt(p)
	}
	if !p.measSet {
		p.measChans = qubits
	}
	return p
}

/*
StateTomo appends a readout block and a measurement to seq once per
basis combination. The i-th result is seq + [block_i, MEAS(measChans...)]
where block_i is the i-th parallel block of CreateTomoBlocks.
*/
func (g *Generator) StateTomo(seq Sequence, qubits []Qubit, opts ...TomoOption) ([]Sequence, error) {
	p := g.params(qubits, opts)

	blocks, err := g.CreateTomoBlocks(qubits, p.numPulses, Parallel)
	if err != nil {
		return nil, err
	}

	out := make([]Sequence, 0, len(blocks))
	for _, block := range blocks {
		out = append(out, assemble(nil, seq, block.Pulse(), g.lib.Measure(p.measChans...)))
	}

	errnie.Info(
		"StateTomo - qubits %v, numPulses %d, sequences %d",
		labels(qubits),
		p.numPulses,
		len(out),
	)

	return out, nil
}

/*
ProcessTomo surrounds seq with a preparation block and a readout block,
then appends a measurement, for each (prep, readout) pair.

With one qubit every pair of the block list is produced, prep varying
slowest. With more qubits the pairs follow a fixed indexing scheme: prep
index floor(k/numPulses^2) for k below numPulses^4, zipped against the
block list repeated numPulses^2 times and truncated to the shorter side.
The scheme enumerates every pair exactly for two qubits only; with three
or more qubits it covers just the first numPulses^2 prep blocks.
*/
func (g *Generator) ProcessTomo(seq Sequence, qubits []Qubit, opts ...TomoOption) ([]Sequence, error) {
	p := g.params(qubits, opts)

	blocks, err := g.CreateTomoBlocks(qubits, p.numPulses, Parallel)
	if err != nil {
		return nil, err
	}

	var pairs [][2]Block

	if len(qubits) == 1 {
		pairs = make([][2]Block, 0, len(blocks)*len(blocks))
		product(len(blocks), 2, func(tuple []int) {
			pairs = append(pairs, [2]Block{blocks[tuple[0]], blocks[tuple[1]]})
		})
	} else {
		pairs = indexedPairs(blocks, p.numPulses)
	}

	out := make([]Sequence, 0, len(pairs))
	for _, pair := range pairs {
		out = append(out, assemble(
			pair[0].Pulse(), seq, pair[1].Pulse(), g.lib.Measure(p.measChans...),
		))
	}

	errnie.Info(
		"ProcessTomo - qubits %v, numPulses %d, sequences %d",
		labels(qubits),
		p.numPulses,
		len(out),
	)

	return out, nil
}

func indexedPairs(blocks []Block, numPulses int) [][2]Block {
	square := numPulses * numPulses
	prepCount := square * square
	readoutCount := len(blocks) * square

	n := prepCount
	if readoutCount < n {
		n = readoutCount
	}

	pairs := make([][2]Block, n)
	for k := 0; k < n; k++ {
		pairs[k] = [2]Block{blocks[k/square], blocks[k%len(blocks)]}
	}
	return pairs
}

// assemble copies seq between an optional prep pulse and the readout tail.
func assemble(prep Pulse, seq Sequence, readout, meas Pulse) Sequence {
	out := make(Sequence, 0, len(seq)+3)
	if prep != nil {
		out = append(out, prep)
	}
	out = append(out, seq...)
	return append(out, readout, meas)
}
