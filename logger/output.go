package logger

// Output controls what categories of information are shown at each verbosity level.
//
// Verbosity Levels:
//
//	0 (default) - results, errors with hints, stale files
//	1 (-v)      - + every file written or checked
//	2 (-vv)     - + config loaded, timing, resolved decision sites
//	3 (-vvv)    - + the generated source of every input

// OutputCategory defines a category of output that can be enabled/disabled
type OutputCategory int

const (
	// Level 0 (default) - Always shown
	OutputResults OutputCategory = iota // Command output
	OutputErrors                        // Errors with hints

	// Level 1 (-v) - Informational
	OutputProgress // Files written, checked or skipped

	// Level 2 (-vv) - Detailed
	OutputConfig // Config values loaded
	OutputTiming // Per-input generation time
	OutputSites  // Resolved decision sites and links

	// Level 3 (-vvv) - Full dump
	OutputSource // Generated source before it is written
)

// categoryLevels maps each output category to its minimum verbosity level
var categoryLevels = map[OutputCategory]int{
	OutputResults:  VerbosityUser,
	OutputErrors:   VerbosityUser,
	OutputProgress: VerbosityInfo,
	OutputConfig:   VerbosityDebug,
	OutputTiming:   VerbosityDebug,
	OutputSites:    VerbosityDebug,
	OutputSource:   VerbosityTrace,
}

// ShouldOutput returns true if the given category should be shown at the given verbosity
func ShouldOutput(verbosity int, category OutputCategory) bool {
	minLevel, ok := categoryLevels[category]
	if !ok {
		// Unknown category, default to highest verbosity required
		return verbosity >= VerbosityTrace
	}
	return verbosity >= minLevel
}

// categoryNames provides human-readable names for output categories
var categoryNames = map[OutputCategory]string{
	OutputResults:  "results",
	OutputErrors:   "errors",
	OutputProgress: "progress",
	OutputConfig:   "config",
	OutputTiming:   "timing",
	OutputSites:    "sites",
	OutputSource:   "source",
}

// CategoryName returns the human-readable name for an output category
func CategoryName(category OutputCategory) string {
	if name, ok := categoryNames[category]; ok {
		return name
	}
	return "unknown"
}
