package file

import (
	"errors"
	"fmt"
	"io"
	"io/fs"

	"gopkg.in/yaml.v3"
)

// Config configures cue extraction.
type Config struct {
	// InputFile is the MIDI file to read. Files ending in .age are decrypted using Passphrase.
	InputFile string `yaml:"input_file,omitempty"`

	// InputFileSHA256, if set, must match the checksum of the input file as stored.
	InputFileSHA256 string `yaml:"input_file_sha256,omitempty"`

	// OverrideChannel, if nonzero, replaces the channel of all cues.
	OverrideChannel uint8 `yaml:"override_channel,omitempty"`

	// SkipOffNoteCollisions drops note offs at the same time as the next cue.
	SkipOffNoteCollisions bool `yaml:"skip_off_note_collisions,omitempty"`

	// LogLevel is one of debug, info, warn or error.
	LogLevel string `yaml:"log_level,omitempty"`

	Passphrase string `yaml:"passphrase,omitempty"`
}

// Validate checks the config for values the processor would reject.
func (c *Config) Validate() error {
	if c.InputFile == "" {
		return fmt.Errorf("no input file given")
	}
	if c.OverrideChannel > 16 {
		return fmt.Errorf("override channel %d not in range 1..16", c.OverrideChannel)
	}
	if _, err := parseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

func ReadConfig(fsys fs.FS, configFile string) (*Config, error) {
	f, err := fsys.Open(configFile)
	if err != nil {
		return nil, fmt.Errorf("could not open: %v", err)
	}
	defer f.Close()
	var config Config
	err = yaml.NewDecoder(f).Decode(&config)
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("could not decode: %v", err)
	}
	return &config, nil
}
