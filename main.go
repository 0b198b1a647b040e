package main

import (
	"flag"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
	"path/filepath"

	"golang.org/x/term"

	"github.com/divVerent/midicues/internal/file"
	"github.com/divVerent/midicues/internal/formatter"
	"github.com/divVerent/midicues/internal/summary"
	"github.com/divVerent/midicues/internal/version"
)

var (
	c                     = flag.String("c", "", "config file name (YAML); flags override its values")
	i                     = flag.String("i", "", "input MIDI file name")
	o                     = flag.String("o", "", "output file name (default: standard output)")
	overrideChannel       = flag.Uint("override_channel", 0, "report this MIDI channel (1-16) for all notes and control changes")
	skipOffNoteCollisions = flag.Bool("skip_off_note_collisions", false, "skip note offs that arrive at the same time as the next cue (helps with mutually exclusive scenes)")
	logLevel              = flag.String("log_level", "", "log level for diagnostics on stderr (debug, info, warn, error)")
	addChecksum           = flag.Bool("add_checksum", false, "automatically add the input checksum to the config file")
	showVersion           = flag.Bool("version", false, "print the version and exit")
)

// dirFS returns a file system containing the given path and the name of the path within it.
func dirFS(path string) (fs.FS, string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, "", fmt.Errorf("failed to resolve %v: %v", path, err)
	}
	return os.DirFS(filepath.Dir(abs)), filepath.Base(abs), nil
}

func loadConfig() (*file.Config, error) {
	var config file.Config
	if *c != "" {
		fsys, name, err := dirFS(*c)
		if err != nil {
			return nil, err
		}
		fileConfig, err := file.ReadConfig(fsys, name)
		if err != nil {
			return nil, fmt.Errorf("failed to read config %v: %v", *c, err)
		}
		config = *fileConfig
		if config.InputFile != "" && !filepath.IsAbs(config.InputFile) {
			// Input paths in the config are relative to the config.
			config.InputFile = filepath.Join(filepath.Dir(*c), config.InputFile)
		}
	}
	if *overrideChannel > 255 {
		return nil, fmt.Errorf("override channel %d not in range 1..16", *overrideChannel)
	}
	flagConfig := file.Config{
		InputFile:             *i,
		OverrideChannel:       uint8(*overrideChannel),
		SkipOffNoteCollisions: *skipOffNoteCollisions,
		LogLevel:              *logLevel,
		Passphrase:            os.Getenv("MIDICUES_PASSPHRASE"),
	}
	merged := file.Merge(config, flagConfig)
	return &merged, nil
}

func Main() error {
	config, err := loadConfig()
	if err != nil {
		return err
	}
	err = config.Validate()
	if err != nil {
		return fmt.Errorf("invalid config: %v", err)
	}

	logger, err := file.NewLogger(config.LogLevel, os.Stderr)
	if err != nil {
		return err
	}

	fsys, name, err := dirFS(config.InputFile)
	if err != nil {
		return err
	}
	inputConfig := *config
	inputConfig.InputFile = name
	output, err := file.Process(fsys, &inputConfig, logger)
	if err != nil {
		return err
	}

	var w io.Writer = os.Stdout
	if *o != "" {
		f, err := os.Create(*o)
		if err != nil {
			return fmt.Errorf("could not create %v: %v", *o, err)
		}
		defer f.Close()
		w = f
	}
	err = formatter.WriteLines(w, formatter.StageTraxx{}, output.Events)
	if err != nil {
		return fmt.Errorf("failed to write cues: %v", err)
	}

	if *addChecksum && *c != "" {
		fsys, name, err := dirFS(*c)
		if err != nil {
			return err
		}
		fileConfig, err := file.ReadConfig(fsys, name)
		if err != nil {
			return fmt.Errorf("failed to reread config %v: %v", *c, err)
		}
		if fileConfig.InputFileSHA256 == "" {
			fileConfig.InputFileSHA256 = output.InputFileSHA256
			err = file.WriteConfig(*c, fileConfig)
			if err != nil {
				return fmt.Errorf("failed to write %v: %v", *c, err)
			}
		}
	}

	// Only talk to humans.
	if term.IsTerminal(int(os.Stderr.Fd())) {
		err = summary.Write(os.Stderr, summary.NewPrinter(), output.Events, output.Info)
		if err != nil {
			return err
		}
	}

	return nil
}

func main() {
	flag.Parse()
	if *showVersion {
		fmt.Println(version.Version())
		return
	}
	err := Main()
	if err != nil {
		log.Println(err)
		os.Exit(1)
	}
}
