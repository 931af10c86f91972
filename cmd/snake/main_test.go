package main

import (
	"bytes"
	"io"
	"strings"
	"testing"
)

// execute runs the root command with args and returns its stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	flagSeed = 0
	flagConfig = ""
	flagDifficulty = ""
	flagLogLevel = "info"
	flagMoves = 1000
	flagRows = 0
	flagCols = 0

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(io.Discard)
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	return out.String(), err
}

func TestListCommand(t *testing.T) {
	out, err := execute(t, "list")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	for _, id := range []string{"snake", "snake_tiny"} {
		if !strings.Contains(out, id) {
			t.Errorf("list output should contain %q:\n%s", id, out)
		}
	}
}

func TestSimSmallestBoard(t *testing.T) {
	out, err := execute(t, "sim", "--seed", "42", "--rows", "1", "--cols", "4")
	if err != nil {
		t.Fatalf("sim: %v", err)
	}

	// Every direction from the head of a 1x4 board leaves the grid
	if !strings.Contains(out, "moves=1 ") || !strings.Contains(out, "game_over=true") {
		t.Errorf("unexpected summary:\n%s", out)
	}
	if !strings.Contains(out, "*oo@") {
		t.Errorf("unexpected board:\n%s", out)
	}
}

func TestSimDeterministic(t *testing.T) {
	first, err := execute(t, "sim", "--seed", "7", "--moves", "300")
	if err != nil {
		t.Fatalf("sim: %v", err)
	}
	second, err := execute(t, "sim", "--seed", "7", "--moves", "300")
	if err != nil {
		t.Fatalf("sim: %v", err)
	}
	if first != second {
		t.Errorf("same seed produced different runs:\n%s\n---\n%s", first, second)
	}
}

func TestSimRejectsTooSmallBoard(t *testing.T) {
	if _, err := execute(t, "sim", "--rows", "1", "--cols", "3"); err == nil {
		t.Error("expected an error for a 1x3 board")
	}
}

func TestInvalidFlags(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"log level", []string{"list", "--log-level", "loud"}},
		{"difficulty", []string{"sim", "--difficulty", "insane"}},
		{"unknown game", []string{"play", "tetris"}},
		{"missing config", []string{"sim", "--config", "/nonexistent/snake.yaml"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := execute(t, tc.args...); err == nil {
				t.Errorf("expected error for %v", tc.args)
			}
		})
	}
}
