package qtomo

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

/*
Config holds the defaults a Generator falls back on when a call does not
override them, plus the qubit limit the command line enforces.
*/
type Config struct {
	NumPulses int       `yaml:"num_pulses"`
	Alignment Alignment `yaml:"alignment"`
	MaxQubits int       `yaml:"max_qubits"`
	Qubits    []string  `yaml:"qubits,omitempty"`
	MeasChans []string  `yaml:"meas_chans,omitempty"`
}

func NewConfig() *Config {
	return &Config{
		NumPulses: 4,
		Alignment: Parallel,
		MaxQubits: 4,
	}
}

// LoadConfig decodes YAML from r on top of NewConfig defaults.
func LoadConfig(r io.Reader) (*Config, error) {
	config := NewConfig()

	if err := yaml.NewDecoder(r).Decode(config); err != nil && err != io.EOF {
		return nil, errors.Wrap(err, "decoding config")
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func LoadConfigFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "opening config %s", path)
	}
	defer f.Close()

	config, err := LoadConfig(f)
	if err != nil {
		return nil, errors.Wrapf(err, "loading config %s", path)
	}
	return config, nil
}

// Validate checks the values against what the generator accepts.
func (c *Config) Validate() error {
	if _, err := TomoBasis(c.NumPulses); err != nil {
		return err
	}
	if err := c.Alignment.validate(); err != nil {
		return err
	}
	if c.MaxQubits < 1 {
		return errors.Wrapf(ErrInvalidArgument, "max_qubits must be positive, got %d", c.MaxQubits)
	}
	if len(c.Qubits) > c.MaxQubits {
		return errors.Wrapf(
			ErrInvalidArgument, "%d qubits exceeds max_qubits %d", len(c.Qubits), c.MaxQubits,
		)
	}
	return nil
}
