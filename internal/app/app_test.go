package app

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/hance08/octopus/internal/config"
)

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger, err := NewLogger("WARN", &buf)
	if err != nil {
		t.Fatal(err)
	}
	logger.Debug("hidden")
	logger.Warn("shown", logger.Args("account", "alice"))

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("debug line leaked at warn level: %q", out)
	}
	if !strings.Contains(out, "shown") || !strings.Contains(out, "alice") {
		t.Fatalf("warn line missing: %q", out)
	}

	if _, err := NewLogger("loud", &buf); err == nil {
		t.Fatal("unknown level should fail")
	}
	if _, err := NewLogger("off", &buf); err != nil {
		t.Fatal(err)
	}
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}

	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"/abs/path.db", "/abs/path.db"},
		{"~", home},
		{"~/octopus/journal.db", filepath.Join(home, "octopus", "journal.db")},
		{"~other", "~other"},
	}
	for _, tt := range tests {
		got, err := ExpandPath(tt.in)
		if err != nil {
			t.Fatal(err)
		}
		if got != tt.want {
			t.Fatalf("ExpandPath(%q)=%q want=%q", tt.in, got, tt.want)
		}
	}
}

func TestNewAppWithFileJournal(t *testing.T) {
	cfg := config.NewDefault()
	cfg.Log.Level = "off"
	cfg.Database.Path = filepath.Join(t.TempDir(), "journal.db")

	a, cleanup, err := NewApp(cfg, os.DirFS("../.."))
	if err != nil {
		t.Fatal(err)
	}
	defer cleanup()

	if _, err := a.Service.Account.OpenAccount("alice", 100); err != nil {
		t.Fatal(err)
	}
	count, err := a.Store.CountEntries(a.Service.SessionID)
	if err != nil {
		t.Fatal(err)
	}
	if count != 1 {
		t.Fatalf("entries=%d want=1", count)
	}
	if _, err := os.Stat(cfg.Database.Path); err != nil {
		t.Fatalf("journal file missing: %v", err)
	}
}

func TestNewAppRejectsBadLogLevel(t *testing.T) {
	cfg := config.NewDefault()
	cfg.Log.Level = "chatty"
	if _, _, err := NewApp(cfg, os.DirFS("../..")); err == nil {
		t.Fatal("expected error")
	}
}
