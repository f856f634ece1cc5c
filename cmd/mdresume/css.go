package main

import (
	"fmt"
)

func runCSSCommand(args []string, env *Environment) error {
	flags, positional, err := parseCSSFlags(args, env.Stderr)
	if err != nil {
		return err
	}
	if len(positional) > 0 {
		return fmt.Errorf("%w: css takes no arguments, got %q", ErrInvalidFlags, positional)
	}
	return runCSS(flags, env)
}

// runCSS prints the dynamic and backbone CSS an instance would receive.
func runCSS(flags *cssFlags, env *Environment) error {
	s, err := loadSettings(flags.common, env)
	if err != nil {
		return err
	}

	sheet, err := installStyles(s, flags.style, resolveInstance(flags.style, s.cfg))
	if err != nil {
		return err
	}

	output := flags.output
	if output == "" {
		output = stdoutPath
	}
	return writeOutput(output, []byte(sheet.CSS()+"\n"), env.Stdout)
}
