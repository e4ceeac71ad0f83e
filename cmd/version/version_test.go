package version

import (
	"context"
	"testing"

	"github.com/urfave/cli/v3"
)

func TestGetCommand(t *testing.T) {
	t.Parallel()

	cmd := GetCommand()

	if cmd == nil {
		t.Fatal("GetCommand() returned nil")
	}
	if cmd.Name != "version" {
		t.Errorf("command name = %q; want %q", cmd.Name, "version")
	}
	if cmd.Usage == "" {
		t.Error("command usage should not be empty")
	}
	if cmd.Action == nil {
		t.Fatal("command action should not be nil")
	}
}

func TestVersionCommand_Execute(t *testing.T) {
	tests := []struct {
		name    string
		version string
	}{
		{"default version", "unknown"},
		{"custom version", "1.2.3"},
		{"semver version", "v2.0.0-beta1"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			origVersion := Version
			defer func() { Version = origVersion }()

			Version = tt.version

			cmd := GetCommand()
			if err := cmd.Action(context.Background(), &cli.Command{}); err != nil {
				t.Errorf("Action() returned unexpected error: %v", err)
			}
		})
	}
}
