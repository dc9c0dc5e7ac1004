// Package cli provides command-line interface setup and configuration
// for the sittranslate application. It handles flag parsing, command
// creation, configuration management using cobra and viper, and the
// pre-flight checks that run before a translation batch.
package cli
