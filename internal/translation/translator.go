package translation

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"codeberg.org/snonux/sittranslate/internal/dictionary"
	"codeberg.org/snonux/sittranslate/internal/termfile"
)

// Translator translates English terms into one target language
type Translator struct {
	// Phrases enables longest-match substitution of multi-word terms
	Phrases bool
	// Coverage, when set, collects matched and missing tokens
	Coverage *Coverage

	lang  string
	table *dictionary.Table
	upper cases.Caser
	lower cases.Caser
}

// NewTranslator creates a translator for lang. An unsupported language is
// not an error: every term then translates to itself.
func NewTranslator(dict *dictionary.Dictionary, lang string) *Translator {
	tag := language.Und
	table, ok := dict.Table(lang)
	if ok {
		tag = table.Tag
	}

	return &Translator{
		lang:  lang,
		table: table,
		upper: cases.Upper(tag),
		lower: cases.Lower(tag),
	}
}

// TranslateTerm translates a single term with the dictionary for lang
func TranslateTerm(dict *dictionary.Dictionary, term, lang string) string {
	return NewTranslator(dict, lang).TranslateTerm(term)
}

// Language returns the target language code
func (t *Translator) Language() string {
	return t.lang
}

// TranslateTerm returns the translation of term, or term itself when the
// dictionary has no entry for it
func (t *Translator) TranslateTerm(term string) string {
	translated, _ := t.translate(term)
	return translated
}

func (t *Translator) translate(term string) (string, bool) {
	if t.table == nil {
		return term, false
	}

	translated, ok := t.table.Lookup(dictionary.NormalizeKey(term))
	if !ok {
		return term, false
	}

	return t.restoreCase(term, translated), true
}

// restoreCase carries the casing of the source over to translated
func (t *Translator) restoreCase(source, translated string) string {
	if isUpper(source) {
		return t.upper.String(translated)
	}

	if first, _ := utf8.DecodeRuneInString(source); unicode.IsUpper(first) {
		return t.capitalize(translated)
	}

	return translated
}

// capitalize upper-cases the first rune and lower-cases the rest
func (t *Translator) capitalize(s string) string {
	first, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return s
	}
	return string(unicode.ToTitle(first)) + t.lower.String(s[size:])
}

// isUpper reports whether s has at least one cased rune and all of its
// cased runes are upper case
func isUpper(s string) bool {
	cased := false
	for _, r := range s {
		switch {
		case unicode.IsLower(r), unicode.IsTitle(r):
			return false
		case unicode.IsUpper(r):
			cased = true
		}
	}
	return cased
}

// TranslateLine translates each whitespace-separated token of line and
// joins the results with single spaces
func (t *Translator) TranslateLine(line string) string {
	tokens := strings.Fields(line)
	out := make([]string, 0, len(tokens))

	for i := 0; i < len(tokens); {
		if t.Phrases {
			if translated, n := t.matchPhrase(tokens[i:]); n > 1 {
				for _, token := range tokens[i : i+n] {
					t.record(token, true)
				}
				out = append(out, translated)
				i += n
				continue
			}
		}

		translated, ok := t.translate(tokens[i])
		t.record(tokens[i], ok)
		out = append(out, translated)
		i++
	}

	return strings.Join(out, " ")
}

// matchPhrase finds the longest multi-word entry at the start of tokens and
// returns its translation and the number of tokens it covers
func (t *Translator) matchPhrase(tokens []string) (string, int) {
	if t.table == nil {
		return "", 0
	}

	for n := min(t.table.MaxWords(), len(tokens)); n > 1; n-- {
		span := strings.Join(tokens[:n], " ")
		if translated, ok := t.table.Lookup(dictionary.NormalizeKey(span)); ok {
			return t.restoreCase(span, translated), n
		}
	}

	return "", 0
}

func (t *Translator) record(term string, matched bool) {
	if t.Coverage != nil {
		t.Coverage.Record(dictionary.NormalizeKey(term), matched)
	}
}

// TranslateText translates every line; blank lines stay blank
func (t *Translator) TranslateText(lines []string) []string {
	out := make([]string, len(lines))
	for i, line := range lines {
		out[i] = t.TranslateLine(line)
	}
	return out
}

// TranslateFile translates the term file src and writes the result to dst
func (t *Translator) TranslateFile(src, dst string) error {
	lines, err := termfile.ReadLines(src)
	if err != nil {
		return err
	}

	return termfile.WriteLines(dst, t.TranslateText(lines))
}
