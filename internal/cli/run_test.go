package cli

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"codeberg.org/snonux/sittranslate/internal/dictionary"
	"codeberg.org/snonux/sittranslate/internal/testutil"
)

// executeCommand runs the root command with args and returns its output
func executeCommand(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()

	viper.Reset()
	flags := NewFlags()
	cmd := CreateRootCommand(flags)
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		return Run(cmd, args, flags)
	}

	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)

	err = cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestRun_TranslatesTree(t *testing.T) {
	root := t.TempDir()
	sitDir := testutil.CreateSITFolder(t, root, "HR", "Applicants", "en", "es")
	testutil.CreateTermFiles(t, sitDir, "en", map[string]string{
		"primary.txt": "client   IBAN\n\nApplicant",
	})
	skipped := testutil.CreateSITFolder(t, root, "LEGAL", "SIT2", "en")
	testutil.CreateTermFiles(t, skipped, "en", map[string]string{"primary.txt": "court"})

	stdout, _, err := executeCommand(t, root, "es")
	if err != nil {
		t.Fatalf("Execute() failed: %v", err)
	}

	testutil.AssertFileContent(t, filepath.Join(sitDir, "es", "primary.txt"), []byte("cliente IBAN\n\nSolicitante"))
	testutil.AssertFileNotExists(t, filepath.Join(skipped, "es"))

	for _, want := range []string{
		"Translating SITs to es...",
		"  Translating " + filepath.Join("Applicants", "es", "primary.txt"),
		"Translation complete! Processed 1 SIT folders",
	} {
		if !strings.Contains(stdout, want) {
			t.Errorf("Expected output to contain %q, got:\n%s", want, stdout)
		}
	}
}

func TestRun_Flags(t *testing.T) {
	root := t.TempDir()
	sitDir := testutil.CreateSITFolder(t, root, "FINANCE", "Letters", "en", "fr")
	testutil.CreateTermFiles(t, sitDir, "en", map[string]string{
		"context.txt": "cover letter from applicant xyz",
	})

	stdout, _, err := executeCommand(t, root, "fr", "--category", "FINANCE", "--phrases", "--show-missing")
	if err != nil {
		t.Fatalf("Execute() failed: %v", err)
	}

	testutil.AssertFileExists(t, filepath.Join(sitDir, "fr", "context.txt"))
	testutil.AssertFileContains(t, filepath.Join(sitDir, "fr", "context.txt"), "lettre de motivation")
	testutil.AssertFileContent(t, filepath.Join(sitDir, "fr", "context.txt"), []byte("lettre de motivation from candidat xyz"))

	for _, want := range []string{
		"Dictionary coverage: 3 of 5 tokens translated",
		"Tokens without translation (2):",
		"  from (1)",
		"  xyz (1)",
	} {
		if !strings.Contains(stdout, want) {
			t.Errorf("Expected output to contain %q, got:\n%s", want, stdout)
		}
	}
}

func TestRun_DryRunWritesNothing(t *testing.T) {
	root := t.TempDir()
	sitDir := testutil.CreateSITFolder(t, root, "HR", "SIT1", "en", "fr")
	testutil.CreateTermFiles(t, sitDir, "en", map[string]string{"primary.txt": "job"})

	stdout, _, err := executeCommand(t, root, "fr", "--dry-run")
	if err != nil {
		t.Fatalf("Execute() failed: %v", err)
	}

	testutil.AssertFileNotExists(t, filepath.Join(sitDir, "fr", "primary.txt"))
	if !strings.Contains(stdout, "Processed 1 SIT folders") {
		t.Errorf("Expected folder count in output, got:\n%s", stdout)
	}
}

func TestRun_Errors(t *testing.T) {
	root := t.TempDir()

	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{
			name:    "missing arguments",
			args:    []string{root},
			wantErr: "requires at least 2 arg(s)",
		},
		{
			name:    "missing root",
			args:    []string{filepath.Join(root, "missing"), "fr"},
			wantErr: "does not exist",
		},
		{
			name:    "unsupported language",
			args:    []string{root, "de"},
			wantErr: "Supported: es, fr",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, stderr, err := executeCommand(t, tt.args...)
			if err == nil {
				t.Fatal("Expected an error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Expected error containing %q, got %v", tt.wantErr, err)
			}
			if !strings.Contains(stderr, "Error:") {
				t.Errorf("Expected error message on stderr, got %q", stderr)
			}
		})
	}
}

func TestRun_UnsupportedLanguageSentinel(t *testing.T) {
	_, _, err := executeCommand(t, t.TempDir(), "xx")
	if !errors.Is(err, dictionary.ErrUnsupportedLanguage) {
		t.Errorf("Expected ErrUnsupportedLanguage, got %v", err)
	}
}

func TestRun_ListLanguages(t *testing.T) {
	stdout, _, err := executeCommand(t, "--list-languages")
	if err != nil {
		t.Fatalf("Execute() failed: %v", err)
	}

	for _, want := range []string{"Supported languages:", "es", "Spanish", "fr", "French", "73 terms"} {
		if !strings.Contains(stdout, want) {
			t.Errorf("Expected output to contain %q, got:\n%s", want, stdout)
		}
	}
}

func TestListLanguages(t *testing.T) {
	fsys := fstest.MapFS{
		"tables/de.yaml": {Data: []byte("language: de\nterms:\n  salary: Gehalt\n  wage: Lohn\n")},
		"tables/it.yaml": {Data: []byte("language: it\nterms:\n  salary: stipendio\n")},
	}
	dict, err := dictionary.Load(fsys, "tables")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	var out bytes.Buffer
	ListLanguages(&out, dict)

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("Expected header and 2 languages, got:\n%s", out.String())
	}
	for _, want := range []string{"de", "German", "2 terms"} {
		if !strings.Contains(lines[1], want) {
			t.Errorf("Expected %q in %q", want, lines[1])
		}
	}
	for _, want := range []string{"it", "Italian", "1 terms"} {
		if !strings.Contains(lines[2], want) {
			t.Errorf("Expected %q in %q", want, lines[2])
		}
	}
}
