package dictionary

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
	"sync"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

//go:embed data/*.yaml
var dataFS embed.FS

// ErrUnsupportedLanguage is returned when a target language has no table
var ErrUnsupportedLanguage = errors.New("language not supported")

// tableFile is the on-disk layout of one language table
type tableFile struct {
	Language string            `yaml:"language"`
	Terms    map[string]string `yaml:"terms"`
}

// Table holds the term translations for a single target language
type Table struct {
	Code string
	Tag  language.Tag

	terms    map[string]string
	maxWords int
}

// Lookup returns the translation stored for an already normalized key
func (t *Table) Lookup(key string) (string, bool) {
	translated, ok := t.terms[key]
	return translated, ok
}

// Terms returns a copy of the normalized key to translation mapping
func (t *Table) Terms() map[string]string {
	terms := make(map[string]string, len(t.terms))
	for k, v := range t.terms {
		terms[k] = v
	}
	return terms
}

// Len returns the number of terms in the table
func (t *Table) Len() int {
	return len(t.terms)
}

// MaxWords returns the word count of the longest key in the table
func (t *Table) MaxWords() int {
	return t.maxWords
}

// Dictionary maps target language codes to their term tables.
// A Dictionary is never modified after it has been loaded.
type Dictionary struct {
	tables map[string]*Table
}

var loadDefault = sync.OnceValues(func() (*Dictionary, error) {
	return Load(dataFS, "data")
})

// Default returns the dictionary compiled into the binary. It panics if the
// embedded data is malformed, which can only happen with a broken build.
func Default() *Dictionary {
	d, err := loadDefault()
	if err != nil {
		panic(fmt.Sprintf("embedded dictionary data is invalid: %v", err))
	}
	return d
}

// Load reads every *.yaml table found in dir of fsys.
// Keys are stored lowercased and trimmed, matching how terms are looked up.
func Load(fsys fs.FS, dir string) (*Dictionary, error) {
	files, err := fs.Glob(fsys, path.Join(dir, "*.yaml"))
	if err != nil {
		return nil, fmt.Errorf("failed to list dictionary files: %w", err)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no dictionary files found in %s", dir)
	}

	d := &Dictionary{tables: make(map[string]*Table, len(files))}
	for _, file := range files {
		table, err := loadTable(fsys, file)
		if err != nil {
			return nil, err
		}
		if _, dup := d.tables[table.Code]; dup {
			return nil, fmt.Errorf("%s: duplicate table for language %q", file, table.Code)
		}
		d.tables[table.Code] = table
	}

	return d, nil
}

func loadTable(fsys fs.FS, file string) (*Table, error) {
	content, err := fs.ReadFile(fsys, file)
	if err != nil {
		return nil, fmt.Errorf("failed to read dictionary file: %w", err)
	}

	var raw tableFile
	if err := yaml.Unmarshal(content, &raw); err != nil {
		return nil, fmt.Errorf("%s: failed to parse: %w", file, err)
	}

	code := strings.TrimSpace(raw.Language)
	if code == "" {
		return nil, fmt.Errorf("%s: missing language code", file)
	}
	tag, err := language.Parse(code)
	if err != nil {
		return nil, fmt.Errorf("%s: invalid language code %q: %w", file, code, err)
	}
	if len(raw.Terms) == 0 {
		return nil, fmt.Errorf("%s: no terms defined", file)
	}

	table := &Table{
		Code:  code,
		Tag:   tag,
		terms: make(map[string]string, len(raw.Terms)),
	}
	for term, translated := range raw.Terms {
		key := NormalizeKey(term)
		if key == "" {
			return nil, fmt.Errorf("%s: empty term", file)
		}
		if prev, ok := table.terms[key]; ok && prev != translated {
			return nil, fmt.Errorf("%s: conflicting translations for %q", file, key)
		}
		table.terms[key] = translated

		if words := len(strings.Fields(key)); words > table.maxWords {
			table.maxWords = words
		}
	}

	return table, nil
}

// NormalizeKey turns a source term into its lookup key
func NormalizeKey(term string) string {
	return strings.ToLower(strings.TrimSpace(term))
}

// Table returns the table for a language code
func (d *Dictionary) Table(lang string) (*Table, bool) {
	t, ok := d.tables[lang]
	return t, ok
}

// Lookup translates a term for lang; the term is normalized first
func (d *Dictionary) Lookup(lang, term string) (string, bool) {
	t, ok := d.tables[lang]
	if !ok {
		return "", false
	}
	return t.Lookup(NormalizeKey(term))
}

// Supports reports whether lang has a table
func (d *Dictionary) Supports(lang string) bool {
	_, ok := d.tables[lang]
	return ok
}

// Languages returns the supported language codes in sorted order
func (d *Dictionary) Languages() []string {
	codes := make([]string, 0, len(d.tables))
	for code := range d.tables {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// CheckLanguage returns an error wrapping ErrUnsupportedLanguage when lang
// has no table. The message lists the supported codes.
func (d *Dictionary) CheckLanguage(lang string) error {
	if d.Supports(lang) {
		return nil
	}
	return fmt.Errorf("%w: %s. Supported: %s", ErrUnsupportedLanguage, lang, strings.Join(d.Languages(), ", "))
}
