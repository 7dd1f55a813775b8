package config

const (
	// Diff Defaults
	DefaultDiffMaxInputSizeMB = 10
	DefaultDiffMaxDepth       = 1000
	DefaultDiffIndent         = 2

	// Log Defaults
	DefaultLogFile       = "structdiff.log"
	DefaultLogFormat     = "console"
	DefaultLogLevel      = "info"
	DefaultMaxLogBackups = 3
	DefaultMaxLogSizeMB  = 100

	// Output Defaults
	DefaultOutputMode   = "both"
	DefaultOutputPretty = true
)
