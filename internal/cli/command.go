package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"codeberg.org/snonux/sittranslate/internal"
)

// CreateRootCommand creates and configures the root cobra command
func CreateRootCommand(flags *Flags) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "sittranslate <root_path> <target_lang>",
		Short: "SIT term file translator",
		Long: `sittranslate translates the English term files of Sensitive Information
Type (SIT) definitions into another language using a built-in dictionary.

It walks <root_path>/HR and <root_path>/LEGAL, and for every SIT folder that
has both an "en" and a <target_lang> subfolder it rewrites context.txt,
primary.txt and regex_patterns.txt in the target folder.

Examples:
  sittranslate ./Purview fr              # Translate all SITs to French
  sittranslate ./Purview es --dry-run    # Show what would be translated
  sittranslate --list-languages          # Show supported languages`,
		Args: func(cmd *cobra.Command, args []string) error {
			if flags.ListLanguages {
				return nil
			}
			return cobra.MinimumNArgs(2)(cmd, args)
		},
		Version: internal.Version,
	}

	// Set up flags
	setupFlags(rootCmd, flags)

	return rootCmd
}

func setupFlags(cmd *cobra.Command, flags *Flags) {
	// Global flags
	cmd.PersistentFlags().StringVar(&flags.CfgFile, "config", "", "config file (default is $HOME/.sittranslate.yaml)")

	// Local flags
	cmd.Flags().BoolVar(&flags.ListLanguages, "list-languages", false, "List supported target languages and exit")
	cmd.Flags().StringSliceVarP(&flags.Categories, "category", "c", flags.Categories, "Category folders to scan below the root path")
	cmd.Flags().BoolVarP(&flags.DryRun, "dry-run", "n", false, "Show which files would be translated without writing them")
	cmd.Flags().BoolVar(&flags.Phrases, "phrases", false, "Also match multi-word dictionary terms (longest match first)")
	cmd.Flags().BoolVar(&flags.ShowMissing, "show-missing", false, "Print the tokens that had no dictionary entry")

	// Bind flags to viper
	bindFlagsToViper(cmd)
}

func bindFlagsToViper(cmd *cobra.Command) {
	viper.BindPFlag("traversal.categories", cmd.Flags().Lookup("category"))
	viper.BindPFlag("output.dry_run", cmd.Flags().Lookup("dry-run"))
	viper.BindPFlag("output.show_missing", cmd.Flags().Lookup("show-missing"))
	viper.BindPFlag("translation.phrases", cmd.Flags().Lookup("phrases"))
}

// InitConfig initializes viper configuration
func InitConfig(cfgFile string) {
	// A .env file is optional; variables may come from the environment
	_ = godotenv.Load()

	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error getting home directory: %v\n", err)
			return
		}

		// Search config in home directory with name ".sittranslate" (without extension)
		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".sittranslate")
	}

	// Environment variables, e.g. SITTRANSLATE_TRANSLATION_PHRASES
	viper.SetEnvPrefix("SITTRANSLATE")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// Read config file
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}
