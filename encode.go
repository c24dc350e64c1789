package qtomo

import (
	"fmt"
	"io"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/fxamacker/cbor/v2"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Record is the serialized form of one Sequence.
type Record struct {
	Index  int      `yaml:"index" cbor:"index"`
	Pulses []string `yaml:"pulses" cbor:"pulses"`
}

// Records renders sequences as plain labels, one Record each.
func Records(seqs []Sequence) []Record {
	out := make([]Record, len(seqs))
	for i, seq := range seqs {
		pulses := make([]string, len(seq))
		for j, p := range seq {
			pulses[j] = p.String()
		}
		out[i] = Record{Index: i, Pulses: pulses}
	}
	return out
}

// BlockSequences lifts blocks into one Sequence each.
func BlockSequences(blocks []Block) []Sequence {
	out := make([]Sequence, len(blocks))
	for i, b := range blocks {
		out[i] = Sequence(b.Pulses)
	}
	return out
}

// Format names an output encoding.
type Format string

const (
	FormatText Format = "text"
	FormatYAML Format = "yaml"
	FormatCBOR Format = "cbor"
	FormatDump Format = "dump"
)

var encMode cbor.EncMode

func init() {
	var err error
	if encMode, err = cbor.CoreDetEncOptions().EncMode(); err != nil {
		panic("qtomo: CBOR encoder initialization failed: " + err.Error())
	}
}

// Encode writes seqs to w in the given format.
func Encode(w io.Writer, seqs []Sequence, format Format) error {
	switch format {
	case FormatText:
		return EncodeText(w, seqs)
	case FormatYAML:
		return EncodeYAML(w, seqs)
	case FormatCBOR:
		return EncodeCBOR(w, seqs)
	case FormatDump:
		spew.Fdump(w, Records(seqs))
		return nil
	default:
		return errors.Wrapf(ErrInvalidArgument, "unknown format %q", format)
	}
}

// EncodeText writes one line per sequence, pulses separated by spaces.
func EncodeText(w io.Writer, seqs []Sequence) error {
	for _, rec := range Records(seqs) {
		if _, err := fmt.Fprintf(w, "%d\t%s\n", rec.Index, strings.Join(rec.Pulses, " ")); err != nil {
			return errors.Wrap(err, "writing text")
		}
	}
	return nil
}

func EncodeYAML(w io.Writer, seqs []Sequence) error {
	enc := yaml.NewEncoder(w)
	defer enc.Close()

	if err := enc.Encode(Records(seqs)); err != nil {
		return errors.Wrap(err, "encoding yaml")
	}
	return nil
}

// EncodeCBOR writes a single CBOR array of records using deterministic encoding.
func EncodeCBOR(w io.Writer, seqs []Sequence) error {
	if err := encMode.NewEncoder(w).Encode(Records(seqs)); err != nil {
		return errors.Wrap(err, "encoding cbor")
	}
	return nil
}
