package file

import (
	"bytes"
	"crypto/sha256"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"strings"

	"filippo.io/age"
	"gitlab.com/gomidi/midi/v2/smf"

	"github.com/divVerent/midicues/internal/processor"
)

// Output is the result of processing one input file.
type Output struct {
	Events []processor.Event
	Info   *processor.Info

	// InputFileSHA256 is the checksum of the input file as stored.
	InputFileSHA256 string
}

// decrypt decrypts an age encrypted file using a passphrase.
func decrypt(ciphertext []byte, passphrase string) ([]byte, error) {
	if passphrase == "" {
		return nil, fmt.Errorf("no passphrase given")
	}
	id, err := age.NewScryptIdentity(passphrase)
	if err != nil {
		return nil, fmt.Errorf("could not build scrypt identity: %w", err)
	}
	r, err := age.Decrypt(bytes.NewReader(ciphertext), id)
	if err != nil {
		return nil, fmt.Errorf("could not start decrypting: %w", err)
	}
	plaintext, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("could not finish decrypting: %w", err)
	}
	return plaintext, nil
}

// ReadMIDI reads and parses the input file of config, verifying its checksum if one is configured.
func ReadMIDI(fsys fs.FS, config *Config) (*smf.SMF, string, error) {
	inBytes, err := fs.ReadFile(fsys, config.InputFile)
	if err != nil {
		return nil, "", fmt.Errorf("could not read %v: %v", config.InputFile, err)
	}

	sum := fmt.Sprintf("%x", sha256.Sum256(inBytes))

	if config.InputFileSHA256 != "" && config.InputFileSHA256 != sum {
		return nil, "", fmt.Errorf("mismatching checksum of %v: got %v, want %v", config.InputFile, sum, config.InputFileSHA256)
	}

	if strings.HasSuffix(config.InputFile, ".age") {
		inBytes, err = decrypt(inBytes, config.Passphrase)
		if err != nil {
			return nil, "", fmt.Errorf("could not decrypt %v: %w", config.InputFile, err)
		}
	}

	in, err := smf.ReadFrom(bytes.NewReader(inBytes))
	if err != nil {
		return nil, "", fmt.Errorf("could not parse %v: %v", config.InputFile, err)
	}
	return in, sum, nil
}

// Process extracts the cues of the input file of config.
func Process(fsys fs.FS, config *Config, logger *slog.Logger) (*Output, error) {
	in, sum, err := ReadMIDI(fsys, config)
	if err != nil {
		return nil, err
	}

	x, err := processor.New(in.TimeFormat, processor.Options{
		OverrideChannel: config.OverrideChannel,
		Logger:          logger,
	})
	if err != nil {
		return nil, fmt.Errorf("could not process %v: %w", config.InputFile, err)
	}
	events, err := x.Run(in.Tracks)
	if err != nil {
		return nil, fmt.Errorf("failed to process %v: %w", config.InputFile, err)
	}

	if config.SkipOffNoteCollisions {
		n := len(events)
		events = processor.SkipOffNoteCollisions(events)
		if logger != nil && n != len(events) {
			logger.Info("skipped colliding note offs", "count", n-len(events))
		}
	}

	return &Output{
		Events:          events,
		Info:            x.Info(),
		InputFileSHA256: sum,
	}, nil
}
