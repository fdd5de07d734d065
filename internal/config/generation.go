package config

import (
	"fmt"
	"os"
	"strconv"
)

const DefaultTrials = 1000

type Generation struct {
	Trials int
	Seed   uint64
	Seeded bool // Seed is only meaningful when set
}

func loadTrials() (int, error) {
	trialsStr, ok := os.LookupEnv("LEVELGEN_TRIALS")
	if !ok {
		return DefaultTrials, nil
	}
	trials, err := strconv.Atoi(trialsStr)
	if err != nil {
		return 0, fmt.Errorf("unable to convert LEVELGEN_TRIALS to int: %w", err)
	}
	if trials <= 0 {
		return 0, fmt.Errorf("LEVELGEN_TRIALS must be positive, got %d", trials)
	}
	return trials, nil
}

// ParseSeed reads a generation seed in base 10.
func ParseSeed(s string) (uint64, error) {
	seed, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid seed %q: %w", s, err)
	}
	return seed, nil
}

func NewGeneration() (*Generation, error) {
	trials, err := loadTrials()
	if err != nil {
		return nil, err
	}

	config := &Generation{Trials: trials}

	if seedStr, ok := os.LookupEnv("LEVELGEN_SEED"); ok {
		seed, err := ParseSeed(seedStr)
		if err != nil {
			return nil, fmt.Errorf("unable to load LEVELGEN_SEED: %w", err)
		}
		config.Seed, config.Seeded = seed, true
	}

	return config, nil
}
