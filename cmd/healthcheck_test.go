package cmd

import (
	"path/filepath"
	"testing"

	"github.com/iksnae/power-annotate/testutil"
)

func TestHealthcheckCommand(t *testing.T) {
	flags := tutorialFlags(t)

	tests := []struct {
		name string
		args []string
	}{
		{
			name: "healthy setup",
			args: append([]string{"healthcheck", "--details=false"}, flags...),
		},
		{
			name: "healthy setup with details",
			args: append([]string{"healthcheck", "--details"}, flags...),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := executeCommand(tt.args...); err != nil {
				t.Errorf("healthcheck error = %v", err)
			}
		})
	}
}

func TestHealthcheckCommand_NoTutorial(t *testing.T) {
	dir := testutil.CreateTempDir(t)
	data := testutil.WriteCasesFixture(t, dir)

	// A missing tutorial degrades to a warning, the check still passes
	err := executeCommand("healthcheck",
		"--details=false",
		"--no-cache",
		"--data", data,
		"--tutorial", filepath.Join(dir, "absent.json"),
		"--output", filepath.Join(dir, "annotations"),
		"--annotator", "alice",
	)
	if err != nil {
		t.Errorf("healthcheck error = %v without a tutorial, want nil", err)
	}
}
