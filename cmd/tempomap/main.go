package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/divVerent/midicues/internal/file"
	"github.com/divVerent/midicues/internal/processor"
)

var (
	i        = flag.String("i", "", "input MIDI file name")
	logLevel = flag.String("log_level", "", "log level for diagnostics on stderr (debug, info, warn, error)")
)

func Main() error {
	if *i == "" {
		return fmt.Errorf("no input file given")
	}
	abs, err := filepath.Abs(*i)
	if err != nil {
		return fmt.Errorf("failed to resolve %v: %v", *i, err)
	}
	logger, err := file.NewLogger(*logLevel, os.Stderr)
	if err != nil {
		return err
	}

	mid, _, err := file.ReadMIDI(os.DirFS(filepath.Dir(abs)), &file.Config{
		InputFile:  filepath.Base(abs),
		Passphrase: os.Getenv("MIDICUES_PASSPHRASE"),
	})
	if err != nil {
		return err
	}

	x, err := processor.New(mid.TimeFormat, processor.Options{
		Logger: logger,
	})
	if err != nil {
		return fmt.Errorf("could not process %v: %w", *i, err)
	}
	events, err := x.Run(mid.Tracks)
	if err != nil {
		return fmt.Errorf("failed to process %v: %w", *i, err)
	}

	fmt.Printf("%d tracks, %d cues.\n", len(mid.Tracks), len(events))
	return processor.Dump(os.Stdout, x.Info())
}

func main() {
	flag.Parse()
	err := Main()
	if err != nil {
		log.Println(err)
		os.Exit(1)
	}
}
