package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/text/language/display"

	"codeberg.org/snonux/sittranslate/internal/dictionary"
	"codeberg.org/snonux/sittranslate/internal/sit"
	"codeberg.org/snonux/sittranslate/internal/translation"
)

// Run executes the root command: it checks the arguments, translates the
// SIT tree and prints a summary
func Run(cmd *cobra.Command, args []string, flags *Flags) error {
	// Argument errors are reported with usage by cobra; anything later is not
	cmd.SilenceUsage = true

	dict := dictionary.Default()
	out := cmd.OutOrStdout()

	if flags.ListLanguages {
		ListLanguages(out, dict)
		return nil
	}

	rootPath, lang := args[0], args[1]

	if _, err := os.Stat(rootPath); err != nil {
		return fmt.Errorf("path %s does not exist", rootPath)
	}
	if err := dict.CheckLanguage(lang); err != nil {
		return err
	}

	translator := translation.NewTranslator(dict, lang)
	translator.Phrases = viper.GetBool("translation.phrases")
	if viper.GetBool("output.show_missing") {
		translator.Coverage = translation.NewCoverage()
	}

	proc := sit.NewProcessor(sit.Options{
		Root:       rootPath,
		Categories: viper.GetStringSlice("traversal.categories"),
		DryRun:     viper.GetBool("output.dry_run"),
	}, translator)
	proc.Out = out
	proc.Err = cmd.ErrOrStderr()

	fmt.Fprintf(out, "Translating SITs to %s...\n\n", lang)

	summary, err := proc.Run()
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "\nTranslation complete! Processed %d SIT folders\n", summary.Folders)
	if summary.Failures > 0 {
		fmt.Fprintf(out, "Files failed: %d\n", summary.Failures)
	}

	if translator.Coverage != nil {
		printCoverage(out, translator.Coverage)
	}

	return nil
}

// ListLanguages prints the supported target languages
func ListLanguages(w io.Writer, dict *dictionary.Dictionary) {
	namer := display.English.Languages()

	fmt.Fprintln(w, "Supported languages:")
	for _, code := range dict.Languages() {
		table, ok := dict.Table(code)
		if !ok {
			continue
		}
		fmt.Fprintf(w, "  %-4s %-12s %d terms\n", code, namer.Name(table.Tag), table.Len())
	}
}

func printCoverage(w io.Writer, cov *translation.Coverage) {
	missing := cov.Missing()

	fmt.Fprintf(w, "\nDictionary coverage: %d of %d tokens translated\n", cov.Matched(), cov.Total())
	if len(missing) == 0 {
		return
	}

	fmt.Fprintf(w, "Tokens without translation (%d):\n", len(missing))
	for _, key := range missing {
		fmt.Fprintf(w, "  %s (%d)\n", key, cov.MissingCount(key))
	}
}
