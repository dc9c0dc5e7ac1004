package cli

import "codeberg.org/snonux/sittranslate/internal/sit"

// Flags holds all command-line flag values
type Flags struct {
	// General flags
	CfgFile       string
	ListLanguages bool

	// Traversal flags
	Categories []string
	DryRun     bool

	// Translation flags
	Phrases     bool
	ShowMissing bool
}

// NewFlags creates a new Flags instance with default values
func NewFlags() *Flags {
	return &Flags{
		Categories: append([]string(nil), sit.DefaultCategories...),
	}
}
