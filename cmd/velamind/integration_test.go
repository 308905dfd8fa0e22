// ABOUTME: Integration test that builds the velamind binary.
// ABOUTME: Runs the full daily workflow as separate processes against one data directory.
package main

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

func TestBinaryWorkflow(t *testing.T) {
	if testing.Short() {
		t.Skip("builds the binary")
	}

	tmpDir := t.TempDir()
	binary := filepath.Join(tmpDir, "velamind")
	buildCmd := exec.Command("go", "build", "-o", binary, ".")
	if output, err := buildCmd.CombinedOutput(); err != nil {
		t.Fatalf("Failed to build: %v\n%s", err, output)
	}

	dataDir := filepath.Join(tmpDir, "data")
	env := append(os.Environ(),
		"XDG_CONFIG_HOME="+filepath.Join(tmpDir, "config"),
		"GEMINI_API_KEY=",
	)
	run := func(args ...string) (string, error) {
		fullArgs := append([]string{"--backend", "badger", "--data-dir", dataDir}, args...)
		cmd := exec.Command(binary, fullArgs...)
		cmd.Env = env
		output, err := cmd.CombinedOutput()
		return string(output), err
	}

	output, err := run("onboard", "--name", "Ada", "--age", "34", "--goal", "4")
	if err != nil {
		t.Fatalf("Failed to onboard: %v\n%s", err, output)
	}

	output, err = run("checkin", "--mood", "7", "--sleep", "4", "--journal", "slept well")
	if err != nil {
		t.Fatalf("Failed to check in: %v\n%s", err, output)
	}
	if !strings.Contains(output, "Check-in saved") {
		t.Errorf("Expected 'Check-in saved' in output, got: %s", output)
	}

	output, err = run("history")
	if err != nil {
		t.Fatalf("Failed to list history: %v\n%s", err, output)
	}
	if !strings.Contains(output, "slept well") {
		t.Errorf("Expected journal in history output, got: %s", output)
	}

	output, err = run("stats")
	if err != nil {
		t.Fatalf("Failed to show stats: %v\n%s", err, output)
	}
	if !strings.Contains(output, "1 day") {
		t.Errorf("Expected a one day streak, got: %s", output)
	}

	output, err = run("checkin", "--mood", "12")
	if err == nil {
		t.Errorf("Expected invalid mood to fail, got: %s", output)
	}
}
