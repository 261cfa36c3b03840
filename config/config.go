// Package config loads command defaults from the environment and an
// optional .env file.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/mohammadtauchid/pagesim/simulator"
)

const (
	EnvFrames    = "PAGESIM_FRAMES"
	EnvPolicy    = "PAGESIM_POLICY"
	EnvOutputDir = "PAGESIM_OUTPUT_DIR"
	EnvLogFile   = "PAGESIM_LOG_FILE"

	DefaultFrames = 3
)

var ErrInvalidConfig = errors.New("invalid configuration")

type Config struct {
	Frames    int
	Policy    simulator.PolicyType
	OutputDir string // empty means stdout only
	LogFile   string
}

func Default() Config {
	return Config{
		Frames: DefaultFrames,
		Policy: simulator.FIFO,
	}
}

// Load reads the given .env files (".env" when none are named) and then
// the process environment. Missing files are ignored; variables already
// set in the environment win over file values.
func Load(files ...string) (Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}

	for _, f := range files {
		if _, err := os.Stat(f); err != nil {
			continue
		}
		if err := godotenv.Load(f); err != nil {
			return Config{}, fmt.Errorf("%w: %s: %v", ErrInvalidConfig, f, err)
		}
	}

	return FromEnv()
}

// FromEnv builds a Config from PAGESIM_* variables over the defaults.
func FromEnv() (Config, error) {
	cfg := Default()

	if v, ok := os.LookupEnv(EnvFrames); ok && v != "" {
		frames, err := strconv.Atoi(v)
		if err != nil || frames < 1 {
			return Config{}, fmt.Errorf("%w: %s=%q is not a positive integer", ErrInvalidConfig, EnvFrames, v)
		}
		cfg.Frames = frames
	}

	if v, ok := os.LookupEnv(EnvPolicy); ok && v != "" {
		policy, err := simulator.ParsePolicyType(v)
		if err != nil {
			return Config{}, fmt.Errorf("%w: %s: %v", ErrInvalidConfig, EnvPolicy, err)
		}
		cfg.Policy = policy
	}

	cfg.OutputDir = os.Getenv(EnvOutputDir)
	cfg.LogFile = os.Getenv(EnvLogFile)

	return cfg, nil
}
