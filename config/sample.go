package config

import (
	"encoding/json"
	"errors"
	"os"

	_ "github.com/colourlab/go-colourmetric/env"
)

// CreateSample creates a sample configuration file.
func CreateSample(path string) error {
	sample := Config{
		Metric: Metric{
			KL:     1,
			KC:     1,
			Kh:     1,
			Radius: DEFAULT_RADIUS,
		},
		Grid: Grid{
			Lightness: Axis{From: 1, To: 100, Steps: 10},
			A:         Axis{From: -100, To: 100, Steps: 21},
			B:         Axis{From: -100, To: 100, Steps: 21},
		},
		Store: Store{
			Sqlite: "./tensorfields.db",
		},
		LogLevel: LogLevelInfo,
	}
	raw, err := json.MarshalIndent(sample, "", "    ")
	if err != nil {
		return errors.Join(errors.New("could not marshal sample config"), err)
	}
	err = os.WriteFile(path, raw, 0600)
	if err != nil {
		return errors.Join(errors.New("could not write sample config file"), err)
	}
	return nil
}
