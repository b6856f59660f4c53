package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/username/consumption-calendar/internal/billing"
	"github.com/username/consumption-calendar/internal/calendar"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append(args, "--config", ""))

	err := cmd.Execute()
	return out.String(), err
}

func TestMonthsCmd(t *testing.T) {
	out, err := run(t, "months")
	if err != nil {
		t.Fatalf("months error = %v", err)
	}

	days := make(map[string]string)
	for _, line := range strings.Split(strings.TrimSpace(out), "\n") {
		fields := strings.Fields(line)
		if len(fields) == 3 {
			days[fields[1]] = fields[2]
		}
	}

	for month, want := range map[string]string{"February": "28", "April": "30", "December": "31"} {
		if days[month] != want {
			t.Errorf("%s has %q days, want %s:\n%s", month, days[month], want, out)
		}
	}
}

func TestDayCmd_SeededOutputIsStable(t *testing.T) {
	first, err := run(t, "day", "march", "14", "--seed", "7")
	if err != nil {
		t.Fatalf("day error = %v", err)
	}
	second, err := run(t, "day", "3", "14", "--seed", "7")
	if err != nil {
		t.Fatalf("day error = %v", err)
	}

	if !strings.HasPrefix(first, "Day 14 of March\n") {
		t.Errorf("unexpected output:\n%s", first)
	}
	if first != second {
		t.Errorf("same seed produced different output:\n%s\n---\n%s", first, second)
	}
}

func TestDayCmd_InvalidInput(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr error
	}{
		{"February 30", []string{"day", "feb", "30"}, calendar.ErrInvalidDay},
		{"day not a number", []string{"day", "feb", "x"}, calendar.ErrInvalidDay},
		{"unknown month", []string{"day", "smarch", "1"}, calendar.ErrUnknownMonth},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := run(t, tt.args...)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestMonthCmd_WithDays(t *testing.T) {
	out, err := run(t, "month", "april", "--days", "--seed", "3")
	if err != nil {
		t.Fatalf("month error = %v", err)
	}

	if !strings.HasPrefix(out, "Consultation for April:\n") {
		t.Errorf("unexpected output:\n%s", out)
	}
	if !strings.Contains(out, "min") || !strings.Contains(out, "max") {
		t.Errorf("per-day table does not mark min and max days:\n%s", out)
	}
	if !strings.Contains(out, "over 30 days") {
		t.Errorf("April should have 30 days:\n%s", out)
	}
}

func TestPublishCmd_Disabled(t *testing.T) {
	_, err := run(t, "publish", "may")
	if err == nil || !strings.Contains(err.Error(), "not enabled") {
		t.Errorf("error = %v, want MQTT not enabled", err)
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestPrintDayTable_WriteError(t *testing.T) {
	reports := []billing.DayReport{{Day: 1, TotalKWh: 240}}
	summary := &billing.MonthlySummary{MinDay: 1, MaxDay: 1}

	err := printDayTable(failingWriter{}, reports, summary)
	if err == nil || !strings.Contains(err.Error(), "disk full") {
		t.Errorf("printDayTable() error = %v, want disk full", err)
	}
}

func TestInitFileLogger(t *testing.T) {
	dir := t.TempDir()

	fileLogger, err := initFileLogger(filepath.Join(dir, "logs", "app.log"), "debug")
	if err != nil {
		t.Fatalf("initFileLogger() error = %v", err)
	}
	if fileLogger == nil {
		t.Fatal("initFileLogger() returned nil logger")
	}

	// A regular file cannot be a parent directory
	blocker := filepath.Join(dir, "blocker")
	if err := os.WriteFile(blocker, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := initFileLogger(filepath.Join(blocker, "app.log"), "info"); err == nil {
		t.Error("initFileLogger() under a regular file should fail")
	}
}

func TestRootCmd_UnusableLogFileFallsBackToConsole(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "blocker")
	if err := os.WriteFile(blocker, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("CONSUMPTION_LOG_FILE", filepath.Join(blocker, "app.log"))
	logger = nil

	out, err := run(t, "months")
	if err != nil {
		t.Fatalf("months error = %v", err)
	}
	if !strings.Contains(out, "February") {
		t.Errorf("unexpected output:\n%s", out)
	}
	if logger == nil {
		t.Error("logger was not initialized")
	}
}
