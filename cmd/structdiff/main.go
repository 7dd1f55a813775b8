package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/aleister1102/structdiff/internal/config"
	"github.com/aleister1102/structdiff/internal/differ"
	"github.com/aleister1102/structdiff/internal/document"
	"github.com/aleister1102/structdiff/internal/logger"
	"github.com/aleister1102/structdiff/internal/models"
)

// Exit codes: 0 identical, 1 differences found, 2 error.
const (
	exitIdentical = 0
	exitDifferent = 1
	exitError     = 2
)

func main() {
	flags := ParseFlags()

	gCfg, err := config.LoadGlobalConfig(flags.GlobalConfigFile)
	if err != nil {
		log.Fatalf("[FATAL] Failed to load global configuration: %v", err)
	}

	appLogger, err := logger.New(gCfg.LogConfig)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize logger: %v", err)
	}

	leftText, err := os.ReadFile(flags.LeftFile)
	if err != nil {
		appLogger.Fatal().Err(err).Str("file", flags.LeftFile).Msg("Failed to read left input")
	}
	rightText, err := os.ReadFile(flags.RightFile)
	if err != nil {
		appLogger.Fatal().Err(err).Str("file", flags.RightFile).Msg("Failed to read right input")
	}

	leftFormat, err := resolveFormat(flags.Format, flags.LeftFile)
	if err != nil {
		appLogger.Fatal().Err(err).Msg("Invalid format")
	}
	rightFormat, err := resolveFormat(flags.Format, flags.RightFile)
	if err != nil {
		appLogger.Fatal().Err(err).Msg("Invalid format")
	}

	d, err := differ.NewDifferBuilder(appLogger).
		WithDiffConfig(gCfg.DiffConfig).
		Build()
	if err != nil {
		appLogger.Fatal().Err(err).Msg("Failed to build differ")
	}

	opts := differ.OptionsFromConfig(gCfg.DiffConfig)
	applyOptionOverrides(&opts, flags)

	mode := gCfg.OutputConfig.Mode
	if flags.OutputMode != "" {
		mode = strings.ToLower(flags.OutputMode)
	}

	result, identical, err := runComparison(d, mode, string(leftText), string(rightText), leftFormat, rightFormat, opts)
	if err != nil {
		appLogger.Error().Err(err).Msg("Comparison failed")
		os.Exit(exitError)
	}

	if err := writeResult(result, gCfg.OutputConfig.Pretty); err != nil {
		appLogger.Error().Err(err).Msg("Failed to write result")
		os.Exit(exitError)
	}

	if identical {
		os.Exit(exitIdentical)
	}
	os.Exit(exitDifferent)
}

// runComparison drives the requested engines and reports whether the
// inputs were identical under the active options.
func runComparison(d *differ.Differ, mode, leftText, rightText string, leftFormat, rightFormat document.Format, opts differ.DiffOptions) (any, bool, error) {
	switch mode {
	case "semantic":
		result, err := d.CompareSemantic(leftText, rightText, leftFormat, rightFormat, opts)
		if err != nil {
			return nil, false, err
		}
		return result, result.IsIdentical, nil
	case "text":
		result, err := d.CompareText(leftText, rightText, leftFormat, rightFormat, opts)
		if err != nil {
			return nil, false, err
		}
		return result, !result.HasDifferences, nil
	default:
		result, err := d.Compare(leftText, rightText, leftFormat, rightFormat, opts)
		if err != nil {
			return nil, false, err
		}
		return result, compareResultIdentical(result), nil
	}
}

func compareResultIdentical(result *models.CompareResult) bool {
	if result.Semantic != nil && !result.Semantic.IsIdentical {
		return false
	}
	if result.Text != nil && result.Text.HasDifferences {
		return false
	}
	return true
}

// resolveFormat picks the input format: explicit flag first, then file
// extension, then content sniffing at parse time.
func resolveFormat(formatFlag, path string) (document.Format, error) {
	if formatFlag != "" {
		return document.ParseFormatName(formatFlag)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return document.FormatJSON, nil
	case ".yaml", ".yml":
		return document.FormatYAML, nil
	default:
		return document.FormatAuto, nil
	}
}

// applyOptionOverrides applies explicitly passed option flags on top of
// the configured defaults.
func applyOptionOverrides(opts *differ.DiffOptions, flags AppFlags) {
	if flags.WasSet("ignore-key-order") {
		opts.IgnoreKeyOrder = flags.IgnoreKeyOrder
	}
	if flags.WasSet("ignore-whitespace") {
		opts.IgnoreWhitespace = flags.IgnoreWhitespace
	}
	if flags.WasSet("ignore-case") {
		opts.IgnoreCase = flags.IgnoreCase
	}
	if flags.WasSet("ignore-array-order") {
		opts.IgnoreArrayOrder = flags.IgnoreArrayOrder
	}
	if flags.WasSet("word-diff") {
		opts.ShowWordDiff = flags.ShowWordDiff
	}
}

// writeResult emits the result as JSON on stdout.
func writeResult(result any, pretty bool) error {
	var (
		data []byte
		err  error
	)
	if pretty {
		data, err = json.MarshalIndent(result, "", "  ")
	} else {
		data, err = json.Marshal(result)
	}
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}
