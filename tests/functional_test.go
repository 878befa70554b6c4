package tests

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/nala-lang/nala/internal/config"
)

// TestFunctional runs .nala scripts through the compiled binary and
// compares stdout with the sibling .want files. This tests the actual
// binary - what users see.
func TestFunctional(t *testing.T) {
	projectRoot, err := filepath.Abs("..")
	if err != nil {
		t.Fatalf("failed to get project root: %v", err)
	}

	binaryPath := filepath.Join(projectRoot, "nala-test-binary")
	defer os.Remove(binaryPath)

	t.Log("Building fresh binary...")
	build := exec.Command("go", "build", "-o", binaryPath, "./cmd/nala")
	build.Dir = projectRoot
	if output, err := build.CombinedOutput(); err != nil {
		t.Fatalf("failed to build binary: %v\n%s", err, output)
	}

	var testFiles []string
	err = filepath.Walk("scripts", func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() || !config.HasSourceExt(path) {
			return nil
		}
		wantFile := config.TrimSourceExt(path) + ".want"
		if _, err := os.Stat(wantFile); err == nil {
			testFiles = append(testFiles, path)
		}
		return nil
	})
	if err != nil {
		t.Fatalf("failed to collect test files: %v", err)
	}
	if len(testFiles) == 0 {
		t.Fatal("no test scripts found")
	}

	for _, file := range testFiles {
		file := file
		t.Run(filepath.Base(file), func(t *testing.T) {
			want, err := os.ReadFile(config.TrimSourceExt(file) + ".want")
			if err != nil {
				t.Fatalf("failed to read want file: %v", err)
			}

			cmd := exec.Command(binaryPath, "run", file)
			output, err := cmd.Output()
			if err != nil {
				t.Fatalf("script failed: %v", err)
			}

			if got := string(output); got != string(want) {
				t.Errorf("wrong output.\nwant:\n%s\ngot:\n%s", want, got)
			}
		})
	}
}

// TestExitCodes checks the documented process exit codes.
func TestExitCodes(t *testing.T) {
	projectRoot, err := filepath.Abs("..")
	if err != nil {
		t.Fatalf("failed to get project root: %v", err)
	}

	binaryPath := filepath.Join(projectRoot, "nala-exitcode-binary")
	defer os.Remove(binaryPath)

	build := exec.Command("go", "build", "-o", binaryPath, "./cmd/nala")
	build.Dir = projectRoot
	if output, err := build.CombinedOutput(); err != nil {
		t.Fatalf("failed to build binary: %v\n%s", err, output)
	}

	dir := t.TempDir()
	writeScript := func(name, source string) string {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(source), 0644); err != nil {
			t.Fatalf("failed to write script: %v", err)
		}
		return path
	}

	cases := []struct {
		name     string
		path     string
		wantCode int
	}{
		{"ok", writeScript("ok.nala", "print('fine');\n"), config.ExitOK},
		{"runtime_error", writeScript("boom.nala", "print(1/0);\n"), config.ExitRuntimeError},
		{"parse_error", writeScript("bad.nala", "const = ;\n"), config.ExitParseError},
		{"usage_error", filepath.Join(dir, "missing.nala"), config.ExitUsageError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cmd := exec.Command(binaryPath, "run", tc.path)
			err := cmd.Run()

			code := 0
			if exitErr, ok := err.(*exec.ExitError); ok {
				code = exitErr.ExitCode()
			} else if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if code != tc.wantCode {
				t.Errorf("expected exit code %d, got %d", tc.wantCode, code)
			}
		})
	}

	t.Run("wrong_extension", func(t *testing.T) {
		path := filepath.Join(dir, "notnala.txt")
		if err := os.WriteFile(path, []byte("print(1);"), 0644); err != nil {
			t.Fatalf("failed to write script: %v", err)
		}
		cmd := exec.Command(binaryPath, "run", path)
		err := cmd.Run()
		exitErr, ok := err.(*exec.ExitError)
		if !ok || exitErr.ExitCode() != config.ExitUsageError {
			t.Errorf("expected usage error exit code, got %v", err)
		}
	})
}
