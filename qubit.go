package qtomo

/*
Qubit is an opaque handle to a physical or logical qubit. The generator
never looks inside it; it is only handed to pulse constructors and, when
no explicit measurement channels are given, to the measurement
constructor.
*/
type Qubit interface {
	Label() string
}

// Channel is the reference Qubit, identified by its label alone.
type Channel struct {
	label string
}

func NewQubit(label string) *Channel {
	return &Channel{label: label}
}

func (c *Channel) Label() string {
	return c.label
}

func (c *Channel) String() string {
	return c.label
}

// NewQubits builds one Channel per label, preserving order.
func NewQubits(labels ...string) []Qubit {
	qubits := make([]Qubit, 0, len(labels))
	for _, label := range labels {
		qubits = append(qubits, NewQubit(label))
	}
	return qubits
}

func labels(qubits []Qubit) []string {
	out := make([]string, len(qubits))
	for i, q := range qubits {
		out[i] = q.Label()
	}
	return out
}
