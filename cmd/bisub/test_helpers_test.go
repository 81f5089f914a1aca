package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"bisub/internal/clipboard"
)

const (
	englishSRT = "1\n00:00:01,000 --> 00:00:02,000\nHello\n\n2\n00:00:03,000 --> 00:00:04,000\nWorld\n"
	chineseSRT = "1\n00:00:01,000 --> 00:00:02,000\n你好(笑)\n\n2\n00:00:03,000 --> 00:00:04,000\n世界\n"
)

type cliTestEnv struct {
	baseDir    string
	configPath string
	clipboard  *clipboard.Memory
}

func setupCLITestEnv(t *testing.T) *cliTestEnv {
	t.Helper()

	base := t.TempDir()
	homeDir := filepath.Join(base, "home")
	if err := os.MkdirAll(homeDir, 0o755); err != nil {
		t.Fatalf("mkdir home: %v", err)
	}
	t.Setenv("HOME", homeDir)
	t.Setenv("BISUB_API_TOKEN", "")

	configPath := filepath.Join(base, "bisub.toml")
	content := strings.Join([]string{
		"[paths]",
		"state_dir = " + quote(filepath.Join(base, "state")),
		"log_dir = " + quote(filepath.Join(base, "logs")),
		"",
		"[input]",
		"detect_encoding = true",
		"",
	}, "\n")
	if err := os.WriteFile(configPath, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	return &cliTestEnv{
		baseDir:    base,
		configPath: configPath,
		clipboard:  &clipboard.Memory{},
	}
}

func quote(value string) string {
	return `"` + strings.ReplaceAll(value, `\`, `\\`) + `"`
}

func (e *cliTestEnv) writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(e.baseDir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func runCLI(t *testing.T, env *cliTestEnv, stdin string, args ...string) (string, string, error) {
	t.Helper()
	cmd := buildRootCommand(env.clipboard)
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(append([]string{"--config", env.configPath}, args...))
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}
