package qtomo

import "github.com/pkg/errors"

// ErrInvalidArgument is the cause of every argument validation failure.
var ErrInvalidArgument = errors.New("invalid argument")

var (
	fourPulseBasis = []PulseKind{Id, X90, Y90, X180}
	sixPulseBasis  = []PulseKind{Id, X90, X90m, Y90, Y90m, X180}
)

/*
TomoBasis returns the ordered pulse set for a basis of numPulses
rotations. Only 4 and 6 are defined.
*/
func TomoBasis(numPulses int) ([]PulseKind, error) {
	var basis []PulseKind

	switch numPulses {
	case 4:
		basis = fourPulseBasis
	case 6:
		basis = sixPulseBasis
	default:
		return nil, errors.Wrap(ErrInvalidArgument, "Only able to handle numPulses=4 or 6")
	}

	out := make([]PulseKind, len(basis))
	copy(out, basis)
	return out, nil
}

/*
product calls fn with every tuple of indices in [0, size)^repeat, the
last position varying fastest. The tuple is reused between calls.
*/
func product(size, repeat int, fn func(tuple []int)) {
	if size <= 0 {
		return
	}

	tuple := make([]int, repeat)
	for {
		fn(tuple)

		i := repeat - 1
		for ; i >= 0; i-- {
			tuple[i]++
			if tuple[i] < size {
				break
			}
			tuple[i] = 0
		}
		if i < 0 {
			return
		}
	}
}

func intPow(base, exp int) int {
	out := 1
	for ; exp > 0; exp-- {
		out *= base
	}
	return out
}
