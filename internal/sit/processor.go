package sit

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"codeberg.org/snonux/sittranslate/internal/translation"
)

// SourceLanguage is the folder holding the English term files
const SourceLanguage = "en"

// DefaultCategories are the top-level category folders visited in order
var DefaultCategories = []string{"HR", "LEGAL"}

// TermFiles are the fixed file names translated in every SIT folder
var TermFiles = []string{"context.txt", "primary.txt", "regex_patterns.txt"}

// Options configures a traversal
type Options struct {
	Root       string
	Categories []string
	DryRun     bool
}

// Summary counts the outcome of a traversal
type Summary struct {
	// Folders is the number of eligible SIT folders visited
	Folders int
	// Files is the number of term files written (or that would be written)
	Files int
	// Failures is the number of term files that could not be translated
	Failures int
}

// Processor translates the term files below a root directory
type Processor struct {
	Out io.Writer
	Err io.Writer

	opts       Options
	translator *translation.Translator
}

// NewProcessor creates a processor writing progress to stdout and errors
// to stderr
func NewProcessor(opts Options, translator *translation.Translator) *Processor {
	if len(opts.Categories) == 0 {
		opts.Categories = DefaultCategories
	}

	return &Processor{
		Out:        os.Stdout,
		Err:        os.Stderr,
		opts:       opts,
		translator: translator,
	}
}

// Run visits every category and SIT folder below the root
func (p *Processor) Run() (*Summary, error) {
	if _, err := os.Stat(p.opts.Root); err != nil {
		return nil, fmt.Errorf("path %s does not exist", p.opts.Root)
	}

	summary := &Summary{}
	for _, category := range p.opts.Categories {
		p.processCategory(filepath.Join(p.opts.Root, category), summary)
	}

	return summary, nil
}

// processCategory treats every subdirectory of categoryPath as a SIT folder
func (p *Processor) processCategory(categoryPath string, summary *Summary) {
	if !exists(categoryPath) {
		return
	}

	entries, err := os.ReadDir(categoryPath)
	if err != nil {
		fmt.Fprintf(p.Err, "Error reading category %s: %v\n", categoryPath, err)
		return
	}

	for _, entry := range entries {
		sitPath := filepath.Join(categoryPath, entry.Name())
		if !isDir(sitPath) {
			continue
		}
		if p.ProcessFolder(sitPath, summary) {
			summary.Folders++
		}
	}
}

// ProcessFolder translates the term files of one SIT folder. It returns
// false, without touching anything, when the folder lacks either the
// English or the target language subfolder.
func (p *Processor) ProcessFolder(sitPath string, summary *Summary) bool {
	lang := p.translator.Language()
	sourceDir := filepath.Join(sitPath, SourceLanguage)
	targetDir := filepath.Join(sitPath, lang)

	if !exists(sourceDir) || !exists(targetDir) {
		return false
	}

	for _, filename := range TermFiles {
		sourceFile := filepath.Join(sourceDir, filename)
		targetFile := filepath.Join(targetDir, filename)

		if !exists(sourceFile) {
			continue
		}

		name := filepath.Join(filepath.Base(sitPath), lang, filename)
		if p.opts.DryRun {
			fmt.Fprintf(p.Out, "  Would translate %s\n", name)
			summary.Files++
			continue
		}

		fmt.Fprintf(p.Out, "  Translating %s\n", name)
		if err := p.translator.TranslateFile(sourceFile, targetFile); err != nil {
			fmt.Fprintf(p.Err, "Error translating %s: %v\n", sourceFile, err)
			summary.Failures++
			continue
		}
		summary.Files++
	}

	return true
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// isDir follows symlinks, unlike os.DirEntry.IsDir
func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
