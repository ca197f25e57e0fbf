package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func setFlags(t *testing.T, dir string) {
	t.Helper()
	oldLog, oldLevel, oldDB, oldProfile := flagLogFile, flagLogLevel, flagDBPath, flagProfile
	t.Cleanup(func() {
		flagLogFile, flagLogLevel, flagDBPath, flagProfile = oldLog, oldLevel, oldDB, oldProfile
	})
	flagLogFile = filepath.Join(dir, "logs", "champions.log")
	flagLogLevel = "warn"
	flagDBPath = filepath.Join(dir, "champions.db")
	flagProfile = "tester"
}

func TestInteractiveArcadeLogsToFile(t *testing.T) {
	setFlags(t, t.TempDir())

	a, err := openArcade(true)
	if err != nil {
		t.Fatalf("openArcade() error = %v", err)
	}
	a.logger.Warn("level is locked", "level", 7)
	a.profile.Logger.Warn("progress not saved")
	a.Close()

	data, err := os.ReadFile(flagLogFile)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	for _, want := range []string{"level is locked", "progress not saved"} {
		if !strings.Contains(string(data), want) {
			t.Errorf("log file = %q, expected it to contain %q", data, want)
		}
	}
}

func TestNonInteractiveArcadeHasNoLogFile(t *testing.T) {
	setFlags(t, t.TempDir())

	a, err := openArcade(false)
	if err != nil {
		t.Fatalf("openArcade() error = %v", err)
	}
	defer a.Close()

	if a.logFile != nil {
		t.Error("openArcade(false) opened a log file")
	}
	if _, err := os.Stat(flagLogFile); !os.IsNotExist(err) {
		t.Errorf("Stat(log file) error = %v, expected not-exist", err)
	}
}

func TestOpenArcadeRejectsBadLogLevel(t *testing.T) {
	setFlags(t, t.TempDir())
	flagLogLevel = "loud"

	if _, err := openArcade(true); err == nil {
		t.Error("openArcade() error = nil, expected invalid --log-level")
	}
}
