// Package dictionary provides the static English term tables used to
// translate SIT term files. Tables are YAML files compiled into the binary,
// one per target language, and are read-only once loaded.
package dictionary
