package main

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"bisub/internal/api"
	"bisub/internal/services"
)

const bilingualSRT = "1\n00:00:01,000 --> 00:00:02,000\n你好\nHello\n\n2\n00:00:03,000 --> 00:00:04,000\n世界\nWorld\n"

func TestCheckFormatPasses(t *testing.T) {
	env := setupCLITestEnv(t)
	path := env.writeFile(t, "ok.srt", bilingualSRT)

	stdout, _, err := runCLI(t, env, "", "check", "format", path)
	if err != nil {
		t.Fatalf("check format: %v", err)
	}
	for _, want := range []string{"== Format check ==", "[OK]", "PASS", path} {
		if !strings.Contains(stdout, want) {
			t.Fatalf("output missing %q:\n%s", want, stdout)
		}
	}
}

func TestCheckFormatFailsWithDiagnostics(t *testing.T) {
	env := setupCLITestEnv(t)
	broken := strings.Replace(bilingualSRT, "2\n", "5\n", 1)

	stdout, _, err := runCLI(t, env, broken, "check", "format", "-")
	if !errors.Is(err, errCheckFailed) || !errors.Is(err, services.ErrSequential) {
		t.Fatalf("expected errCheckFailed, got %v", err)
	}
	if !strings.Contains(stdout, "Sequence gap") || !strings.Contains(stdout, "stdin") {
		t.Fatalf("expected gap diagnostic, got:\n%s", stdout)
	}
}

func TestCheckSymbolsJSON(t *testing.T) {
	env := setupCLITestEnv(t)
	path := env.writeFile(t, "punct.srt", "1\n00:00:01,000 --> 00:00:02,000\n你好，世界！\nHello\n")

	stdout, _, err := runCLI(t, env, "", "check", "symbols", "--json", path)
	if !errors.Is(err, errCheckFailed) {
		t.Fatalf("expected errCheckFailed, got %v", err)
	}
	var result api.CheckResult
	if err := json.Unmarshal([]byte(stdout), &result); err != nil {
		t.Fatalf("decode json: %v (%q)", err, stdout)
	}
	if result.Status != api.StatusInfo || len(result.Errors) != 1 {
		t.Fatalf("unexpected result %+v", result)
	}
	if !strings.Contains(result.Errors[0], "(found: ！ ，)") {
		t.Fatalf("unexpected finding %q", result.Errors[0])
	}
}

func TestCheckSymbolsFromClipboard(t *testing.T) {
	env := setupCLITestEnv(t)
	env.clipboard.Text = bilingualSRT

	stdout, _, err := runCLI(t, env, "", "check", "symbols", "--paste")
	if err != nil {
		t.Fatalf("check symbols --paste: %v", err)
	}
	if !strings.Contains(stdout, "clipboard") || !strings.Contains(stdout, "PASS") {
		t.Fatalf("unexpected output:\n%s", stdout)
	}
}

func TestCheckRejectsInvalidFlagCombinations(t *testing.T) {
	env := setupCLITestEnv(t)
	path := env.writeFile(t, "ok.srt", bilingualSRT)

	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "watch stdin", args: []string{"check", "format", "--watch"}, want: "--watch needs a file path"},
		{name: "watch clipboard", args: []string{"check", "symbols", "--watch", "--paste"}, want: "--watch needs a file path"},
		{name: "paste and file", args: []string{"check", "format", "--paste", path}, want: "--paste cannot be combined"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := runCLI(t, env, "", tt.args...)
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("expected error containing %q, got %v", tt.want, err)
			}
		})
	}
}
