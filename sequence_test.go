package qtomo

import (
	"errors"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestStateTomo(t *testing.T) {
	Convey("Given a base sequence", t, func() {
		lib := NewPrimitives()
		g := NewGenerator(lib, nil)
		q1, q2 := NewQubit("q1"), NewQubit("q2")
		seq := Sequence{lib.X90(q1), lib.Y90(q1)}

		Convey("When expanding for one qubit with four pulses", func() {
			seqs, err := g.StateTomo(seq, []Qubit{q1}, WithNumPulses(4))
			So(err, ShouldBeNil)

			blocks, _ := g.CreateTomoBlocks([]Qubit{q1}, 4, Parallel)

			Convey("There should be one sequence per block in block order", func() {
				So(len(seqs), ShouldEqual, 4)
				for i, s := range seqs {
					So(s, ShouldResemble, Sequence{
						seq[0], seq[1], blocks[i].Pulse(), lib.Measure(q1),
					})
				}
			})

			Convey("The base sequence should be left untouched", func() {
				So(len(seq), ShouldEqual, 2)
				seqs[0][0] = lib.Id(q2)
				So(seq[0].String(), ShouldEqual, "X90(q1)")
			})
		})

		Convey("When measurement channels are given", func() {
			c1 := NewQubit("c1")
			seqs, err := g.StateTomo(seq, []Qubit{q1, q2}, WithMeasChans(c1))
			So(err, ShouldBeNil)
			So(len(seqs), ShouldEqual, 16)

			Convey("Every sequence should measure only those channels", func() {
				for _, s := range seqs {
					So(s[len(s)-1].String(), ShouldEqual, "MEAS(c1)")
				}
			})
		})

		Convey("When no measurement channels are given", func() {
			seqs, err := g.StateTomo(nil, []Qubit{q1, q2})
			So(err, ShouldBeNil)

			Convey("The qubits should be measured", func() {
				So(len(seqs[3]), ShouldEqual, 2)
				So(seqs[3][1].String(), ShouldEqual, "MEAS(q1,q2)")
			})
		})

		Convey("When the configured basis is six pulses", func() {
			config := NewConfig()
			config.NumPulses = 6
			seqs, err := NewGenerator(lib, config).StateTomo(seq, []Qubit{q1, q2})
			So(err, ShouldBeNil)
			So(len(seqs), ShouldEqual, 36)
		})

		Convey("When the basis size is invalid", func() {
			_, err := g.StateTomo(seq, []Qubit{q1}, WithNumPulses(5))
			So(errors.Is(err, ErrInvalidArgument), ShouldBeTrue)
		})
	})
}

func TestProcessTomo(t *testing.T) {
	Convey("Given a base sequence", t, func() {
		lib := NewPrimitives()
		g := NewGenerator(lib, nil)
		q1, q2 := NewQubit("q1"), NewQubit("q2")
		seq := Sequence{lib.X(q1)}

		Convey("When expanding for one qubit", func() {
			seqs, err := g.ProcessTomo(seq, []Qubit{q1}, WithNumPulses(4))
			So(err, ShouldBeNil)

			blocks, _ := g.CreateTomoBlocks([]Qubit{q1}, 4, Parallel)

			Convey("Every prep and readout pair should appear, prep slowest", func() {
				So(len(seqs), ShouldEqual, 16)
				for i := 0; i < 4; i++ {
					for j := 0; j < 4; j++ {
						So(seqs[i*4+j], ShouldResemble, Sequence{
							blocks[i].Pulse(), seq[0], blocks[j].Pulse(), lib.Measure(q1),
						})
					}
				}
			})
		})

		Convey("When expanding for two qubits", func() {
			seqs, err := g.ProcessTomo(seq, []Qubit{q1, q2}, WithNumPulses(4))
			So(err, ShouldBeNil)

			blocks, _ := g.CreateTomoBlocks([]Qubit{q1, q2}, 4, Parallel)

			Convey("Prep should be block k/16 and readout block k%16", func() {
				So(len(seqs), ShouldEqual, 256)
				for k, s := range seqs {
					So(len(s), ShouldEqual, 4)
					So(s[0].String(), ShouldEqual, blocks[k/16].Pulse().String())
					So(s[1] == seq[0], ShouldBeTrue)
					So(s[2].String(), ShouldEqual, blocks[k%16].Pulse().String())
					So(s[3].String(), ShouldEqual, "MEAS(q1,q2)")
				}
			})
		})

		Convey("When expanding for two qubits with six pulses", func() {
			seqs, err := g.ProcessTomo(nil, []Qubit{q1, q2}, WithNumPulses(6))
			So(err, ShouldBeNil)
			So(len(seqs), ShouldEqual, 1296)
		})

		Convey("When expanding for three qubits", func() {
			q3 := NewQubit("q3")
			seqs, err := g.ProcessTomo(nil, []Qubit{q1, q2, q3})
			So(err, ShouldBeNil)

			blocks, _ := g.CreateTomoBlocks([]Qubit{q1, q2, q3}, 4, Parallel)

			Convey("The fixed index scheme should still apply", func() {
				So(len(seqs), ShouldEqual, 256)
				So(seqs[255][0].String(), ShouldEqual, blocks[15].Pulse().String())
				So(seqs[255][1].String(), ShouldEqual, blocks[255%64].Pulse().String())
			})
		})

		Convey("When measurement channels are given", func() {
			c1, c2 := NewQubit("c1"), NewQubit("c2")
			seqs, err := g.ProcessTomo(seq, []Qubit{q1}, WithMeasChans(c2, c1))
			So(err, ShouldBeNil)
			for _, s := range seqs {
				So(s[len(s)-1].String(), ShouldEqual, "MEAS(c2,c1)")
			}
		})

		Convey("When the basis size is invalid", func() {
			_, err := g.ProcessTomo(seq, []Qubit{q1, q2}, WithNumPulses(3))
			So(errors.Is(err, ErrInvalidArgument), ShouldBeTrue)
		})
	})
}
