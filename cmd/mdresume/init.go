package main

import (
	"errors"
	"fmt"

	"github.com/bochaoli95/go-mdresume/internal/config"
	"github.com/bochaoli95/go-mdresume/internal/fileutil"
)

// ErrConfigExists is returned when init would overwrite a file.
var ErrConfigExists = errors.New("config file already exists")

// defaultInitPath is where init writes without an argument.
const defaultInitPath = "mdresume.yaml"

func runInitCommand(args []string, env *Environment) error {
	flags, positional, err := parseInitFlags(args, env.Stderr)
	if err != nil {
		return err
	}
	if len(positional) > 1 {
		return fmt.Errorf("%w: init takes at most one path", ErrInvalidFlags)
	}

	path := defaultInitPath
	if len(positional) == 1 {
		path = positional[0]
	}
	return runInit(path, flags.force, env)
}

// runInit writes the default configuration as a starter file.
func runInit(path string, force bool, env *Environment) error {
	if !force && fileutil.FileExists(path) {
		return fmt.Errorf("%w: %s (use --force to overwrite)", ErrConfigExists, path)
	}

	data, err := config.Marshal(config.DefaultConfig())
	if err != nil {
		return fmt.Errorf("encoding default config: %w", err)
	}

	if err := writeOutput(path, data, env.Stdout); err != nil {
		return err
	}
	if path != stdoutPath {
		fmt.Fprintf(env.Stdout, "wrote %s\n", path)
	}
	return nil
}
