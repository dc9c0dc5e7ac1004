//go:build mage

package main

import (
	"os"
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const binary = "sittranslate"

// Default target to run when none is specified
var Default = Build

// Build compiles the sittranslate binary into the project root
func Build() error {
	return sh.RunV("go", "build", "-o", binary, "./cmd/sittranslate")
}

// Test runs all unit tests
func Test() error {
	return sh.RunV("go", "test", "./...")
}

// Vet runs go vet on all packages
func Vet() error {
	return sh.RunV("go", "vet", "./...")
}

// Install builds and copies the binary to ~/go/bin
func Install() error {
	mg.Deps(Build)

	home, err := os.UserHomeDir()
	if err != nil {
		return err
	}
	return sh.Copy(filepath.Join(home, "go", "bin", binary), binary)
}

// Clean removes build artifacts
func Clean() error {
	return sh.Rm(binary)
}
