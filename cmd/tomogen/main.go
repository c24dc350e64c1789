// Command tomogen prints tomography sequences built by the qtomo package.
package main

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"github.com/theapemachine/qtomo"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	var (
		configPath string
		mode       string
		qubits     []string
		measChans  []string
		numPulses  int
		alignment  string
		format     string
	)

	flagSet := pflag.NewFlagSet("tomogen", pflag.ContinueOnError)
	flagSet.StringVar(&configPath, "config", "", "YAML config file")
	flagSet.StringVar(&mode, "mode", "state", "what to generate: blocks, state or process")
	flagSet.StringSliceVar(&qubits, "qubits", nil, "qubit labels, in order")
	flagSet.StringSliceVar(&measChans, "meas", nil, "measurement channels (default: the qubits)")
	flagSet.IntVar(&numPulses, "pulses", 0, "basis size, 4 or 6 (default from config)")
	flagSet.StringVar(&alignment, "alignment", "", "block alignment for --mode blocks: parallel or serial")
	flagSet.StringVar(&format, "format", string(qtomo.FormatText), "output format: text, yaml, cbor or dump")

	if err := flagSet.Parse(args); err != nil {
		if err == pflag.ErrHelp {
			return nil
		}
		return err
	}

	config := qtomo.NewConfig()
	if configPath != "" {
		var err error
		if config, err = qtomo.LoadConfigFile(configPath); err != nil {
			return err
		}
	}

	if flagSet.Changed("qubits") {
		config.Qubits = qubits
	}
	if flagSet.Changed("meas") {
		config.MeasChans = measChans
	}
	if flagSet.Changed("pulses") {
		config.NumPulses = numPulses
	}
	if flagSet.Changed("alignment") {
		config.Alignment = qtomo.Alignment(alignment)
	}

	if len(config.Qubits) == 0 {
		return errors.New("no qubits given, use --qubits or the config file")
	}
	if err := config.Validate(); err != nil {
		return err
	}

	seqs, err := generate(qtomo.NewGenerator(qtomo.NewPrimitives(), config), mode)
	if err != nil {
		return err
	}

	return qtomo.Encode(os.Stdout, seqs, qtomo.Format(format))
}

func generate(g *qtomo.Generator, mode string) ([]qtomo.Sequence, error) {
	config := g.Config()
	qubits := qtomo.NewQubits(config.Qubits...)

	var opts []qtomo.TomoOption
	if len(config.MeasChans) > 0 {
		opts = append(opts, qtomo.WithMeasChans(qtomo.NewQubits(config.MeasChans...)...))
	}

	switch mode {
	case "blocks":
		blocks, err := g.CreateTomoBlocks(qubits, config.NumPulses, config.Alignment)
		if err != nil {
			return nil, err
		}
		return qtomo.BlockSequences(blocks), nil
	case "state":
		return g.StateTomo(nil, qubits, opts...)
	case "process":
		return g.ProcessTomo(nil, qubits, opts...)
	default:
		return nil, errors.Errorf("unknown mode %q", mode)
	}
}
