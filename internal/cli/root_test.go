package cli

import "testing"

func TestRootCommand_Subcommands(t *testing.T) {
	expected := []string{"add", "edit", "remove", "list", "ui", "history", "config", "mcp", "version"}

	registered := make(map[string]bool)
	for _, cmd := range rootCmd.Commands() {
		registered[cmd.Name()] = true
	}

	for _, name := range expected {
		if !registered[name] {
			t.Errorf("expected %q command to be registered", name)
		}
	}
}

func TestSetVersionInfo(t *testing.T) {
	origVersion, origCommit, origDate := appVersion, appCommit, appDate
	defer SetVersionInfo(origVersion, origCommit, origDate)

	SetVersionInfo("1.2.3", "abc123", "2026-08-23")
	if appVersion != "1.2.3" || appCommit != "abc123" || appDate != "2026-08-23" {
		t.Fatal("version info not applied")
	}
}
