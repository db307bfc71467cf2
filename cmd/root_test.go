package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pterm/pterm"
)

func TestMain(m *testing.M) {
	pterm.DisableOutput()
	os.Exit(m.Run())
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func runRoot(t *testing.T, args ...string) error {
	t.Helper()
	root := NewRootCmd(os.DirFS(".."))
	root.SetArgs(args)
	err := root.Execute()
	if cleanup != nil {
		cleanup()
		cleanup = nil
	}
	return err
}

func TestScenarioCommand(t *testing.T) {
	dir := t.TempDir()
	journal := filepath.Join(dir, "journal.db")
	configPath := writeFile(t, dir, "config.yaml", "database:\n  path: "+journal+"\ndefaults:\n  currency: eur\nlog:\n  level: \"off\"\n")

	if err := runRoot(t, "--config", configPath, "scenario"); err != nil {
		t.Fatalf("built-in scenario err=%v", err)
	}
	if cfg.Defaults.Currency != "EUR" {
		t.Fatalf("currency=%q want=EUR", cfg.Defaults.Currency)
	}

	failing := writeFile(t, dir, "failing.yaml", "name: failing\nsteps:\n  - {op: open, account: a}\n  - {op: withdraw, account: a, amount: \"1\"}\n")
	err := runRoot(t, "--config", configPath, "scenario", failing)
	if err == nil || !strings.Contains(err.Error(), "1 step(s)") {
		t.Fatalf("err=%v want mismatch error", err)
	}

	if err := runRoot(t, "--config", configPath, "history", "--account", "a"); err != nil {
		t.Fatalf("history err=%v", err)
	}
	if err := runRoot(t, "--config", configPath, "info"); err != nil {
		t.Fatalf("info err=%v", err)
	}
}

func TestInvalidCurrencyIsRejected(t *testing.T) {
	dir := t.TempDir()
	configPath := writeFile(t, dir, "config.yaml", "defaults:\n  currency: dollars\nlog:\n  level: \"off\"\n")

	err := runRoot(t, "--config", configPath, "scenario")
	if err == nil || !strings.Contains(err.Error(), "currency") {
		t.Fatalf("err=%v want currency error", err)
	}
}
