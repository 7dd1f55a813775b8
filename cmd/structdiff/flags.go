package main

import (
	"flag"
	"fmt"
	"os"
)

// AppFlags holds the parsed command-line arguments
type AppFlags struct {
	LeftFile         string
	RightFile        string
	GlobalConfigFile string
	Format           string
	OutputMode       string

	// Option overrides; applied only when explicitly passed.
	setFlags map[string]bool

	IgnoreKeyOrder   bool
	IgnoreWhitespace bool
	IgnoreCase       bool
	IgnoreArrayOrder bool
	ShowWordDiff     bool
}

// WasSet reports whether a flag was explicitly provided
func (f AppFlags) WasSet(name string) bool {
	return f.setFlags[name]
}

// ParseFlags parses command-line flags
func ParseFlags() AppFlags {
	leftFile := flag.String("left", "", "Path to the left (old) input document.")
	leftFileAlias := flag.String("l", "", "Alias for -left")

	rightFile := flag.String("right", "", "Path to the right (new) input document.")
	rightFileAlias := flag.String("r", "", "Alias for -right")

	globalConfigFile := flag.String("config", "", "Path to the global YAML/JSON configuration file. If not set, searches default locations.")
	globalConfigFileAlias := flag.String("c", "", "Alias for -config")

	format := flag.String("format", "", "Input format: json, yaml, or auto (default: detect from extension, then content)")
	outputMode := flag.String("output", "", "Output mode: semantic, text, or both (overrides config file if set)")

	ignoreKeyOrder := flag.Bool("ignore-key-order", false, "Treat objects with reordered keys as equal in canonical output")
	ignoreWhitespace := flag.Bool("ignore-whitespace", false, "Trim and collapse whitespace in string values before comparing")
	ignoreCase := flag.Bool("ignore-case", false, "Compare string values case-insensitively")
	ignoreArrayOrder := flag.Bool("ignore-array-order", false, "Treat arrays with reordered elements as equal")
	showWordDiff := flag.Bool("word-diff", false, "Attach word-level spans to modified line pairs")

	flag.Parse()

	flags := AppFlags{
		GlobalConfigFile: *globalConfigFile,
		Format:           *format,
		OutputMode:       *outputMode,
		IgnoreKeyOrder:   *ignoreKeyOrder,
		IgnoreWhitespace: *ignoreWhitespace,
		IgnoreCase:       *ignoreCase,
		IgnoreArrayOrder: *ignoreArrayOrder,
		ShowWordDiff:     *showWordDiff,
		setFlags:         make(map[string]bool),
	}

	flag.Visit(func(f *flag.Flag) {
		flags.setFlags[f.Name] = true
	})

	if *leftFile != "" {
		flags.LeftFile = *leftFile
	} else if *leftFileAlias != "" {
		flags.LeftFile = *leftFileAlias
	}

	if *rightFile != "" {
		flags.RightFile = *rightFile
	} else if *rightFileAlias != "" {
		flags.RightFile = *rightFileAlias
	}

	if flags.GlobalConfigFile == "" && *globalConfigFileAlias != "" {
		flags.GlobalConfigFile = *globalConfigFileAlias
	}

	if flags.LeftFile == "" || flags.RightFile == "" {
		fmt.Fprintln(os.Stderr, "[FATAL] both -left and -right input files are required")
		os.Exit(2)
	}

	return flags
}
