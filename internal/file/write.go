package file

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// WriteConfig writes the config back, e.g. after adding the input checksum.
func WriteConfig(configFile string, config *Config) (err error) {
	f, err := os.Create(configFile)
	if err != nil {
		return fmt.Errorf("could not recreate %v: %v", configFile, err)
	}
	defer func() {
		closeErr := f.Close()
		if closeErr != nil && err == nil {
			err = closeErr
		}
	}()
	enc := yaml.NewEncoder(f)
	enc.SetIndent(2) // Match yq.
	err = enc.Encode(config)
	if err != nil {
		return fmt.Errorf("could not encode %v: %v", configFile, err)
	}
	return enc.Close()
}
