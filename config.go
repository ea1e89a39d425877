package aoc

import (
	"errors"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config controls how a puzzle binary locates its input and how chatty it is.
type Config struct {
	// InputDir is the directory holding <year>_<day>.txt input files.
	InputDir string
	// Debug enables debug logging on stderr.
	Debug bool
	// CheckSamples runs the selected part against its doc comment sample
	// before solving the real input.
	CheckSamples bool
}

const defaultInputDir = "input"

// LoadConfig reads an optional .env file from the working directory and
// then the AOC_* environment variables.
func LoadConfig() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, err
	}
	return configFromEnv(os.Getenv), nil
}

func configFromEnv(getenv func(string) string) Config {
	return Config{
		InputDir:     Or(strings.TrimSpace(getenv("AOC_INPUT_DIR")), defaultInputDir),
		Debug:        envBool(getenv("AOC_DEBUG")),
		CheckSamples: envBool(getenv("AOC_CHECK_SAMPLES")),
	}
}

func envBool(v string) bool {
	b, err := strconv.ParseBool(strings.TrimSpace(v))
	return err == nil && b
}
