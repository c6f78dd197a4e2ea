// Package sym defines the glyphs sculpt prints. They are shared by the CLI
// help text and the decision tree so the two always agree.
package sym

// Command glyphs, one per top-level command
const (
	Generate = "⚒" // generate: write wizard source
	Check    = "✓" // check: compare generated files with their inputs
	Tree     = "⋔" // tree: show the resolved decision tree
	Play     = "▶" // play: walk through a wizard in the terminal
	Config   = "≡" // config: configuration and settings
	Init     = "+" // init: write a sculpt.toml
)

// Decision tree markers
const (
	Next  = "→"       // a choice hands over to the next site
	End   = "end"     // a choice that asks nothing further
	Fixed = "(fixed)" // a field decided at generation time
	Alias = "as"      // a site named apart from its type
)

// Commands lists the commands that carry a glyph, in help order
var Commands = []string{"generate", "check", "tree", "play", "config", "init"}

// SymbolToCommand maps glyph strings to their command names.
var SymbolToCommand = map[string]string{
	Generate: "generate",
	Check:    "check",
	Tree:     "tree",
	Play:     "play",
	Config:   "config",
	Init:     "init",
}

// CommandToSymbol maps command names to their glyphs.
var CommandToSymbol = map[string]string{
	"generate": Generate,
	"check":    Check,
	"tree":     Tree,
	"play":     Play,
	"config":   Config,
	"init":     Init,
}

// Short prefixes a command's one-line help with its glyph
func Short(command, text string) string {
	if g, ok := CommandToSymbol[command]; ok {
		return g + " " + text
	}
	return text
}
