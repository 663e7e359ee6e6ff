package main

import (
	"os"
	"testing"
	"time"

	"github.com/atomicstack/surfaces/internal/app"
	"github.com/atomicstack/surfaces/internal/config"
)

func TestInspectTerminalReportsEveryStream(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "stream")
	if err != nil {
		t.Fatalf("create temp: %v", err)
	}
	defer f.Close()
	info := inspectTerminal([]stdStream{{"stdin", f}, {"stdout", f}, {"stderr", nil}})
	if len(info.Streams) != 3 {
		t.Fatalf("expected 3 streams, got %d", len(info.Streams))
	}
	for i, name := range []string{"stdin", "stdout", "stderr"} {
		if info.Streams[i].Name != name {
			t.Fatalf("expected stream %d name %q, got %q", i, name, info.Streams[i].Name)
		}
		if info.Streams[i].Terminal {
			t.Fatalf("expected %s not to be a terminal", name)
		}
	}
	if info.Interactive {
		t.Fatalf("expected regular files not to count as interactive")
	}
}

func TestSummarizeStreams(t *testing.T) {
	tests := []struct {
		name        string
		states      []streamState
		interactive bool
		sizedBy     string
	}{
		{
			name:        "both terminals",
			states:      []streamState{{Name: "stdin", Terminal: true}, {Name: "stdout", Terminal: true, Cols: 80, Rows: 24}},
			interactive: true,
			sizedBy:     "stdout",
		},
		{
			name:    "piped stdout",
			states:  []streamState{{Name: "stdin", Terminal: true, Cols: 100, Rows: 30}, {Name: "stdout"}},
			sizedBy: "stdin",
		},
		{
			name:   "size error skipped",
			states: []streamState{{Name: "stderr", Terminal: true, Err: "bad ioctl"}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info := summarizeStreams(tt.states)
			if info.Interactive != tt.interactive {
				t.Fatalf("expected interactive %v, got %v", tt.interactive, info.Interactive)
			}
			if info.SizedBy != tt.sizedBy {
				t.Fatalf("expected size from %q, got %q", tt.sizedBy, info.SizedBy)
			}
		})
	}
}

func TestStartupContextIncludesFlags(t *testing.T) {
	cfg := config.Config{
		App: app.Config{
			Width:        80,
			Height:       24,
			ShowFooter:   true,
			Verbose:      true,
			SeedPath:     "seed.yaml",
			PageSize:     25,
			PageInterval: 150 * time.Millisecond,
			OpenOnStart:  true,
			Author:       "you",
		},
		Logging: config.Logging{
			FilePath: "trace.log",
			Trace:    true,
		},
		Flags: map[string]string{
			"seed":  "seed.yaml",
			"width": "80",
		},
		Args: []string{"--seed", "seed.yaml"},
	}

	ctx := startupContext(cfg, terminalInfo{})

	flags, ok := ctx["flags"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected flags map in startup context")
	}
	if flags["seed"] != "seed.yaml" || flags["width"] != "80" {
		t.Fatalf("expected command line flags to be kept, got %v", flags)
	}
	if flags["trace"] != true {
		t.Fatalf("expected trace flag true, got %v", flags["trace"])
	}
	if flags["logFile"] != "trace.log" {
		t.Fatalf("expected log file trace.log, got %v", flags["logFile"])
	}
	if ctx["seed"] != "seed.yaml" {
		t.Fatalf("expected seed path, got %v", ctx["seed"])
	}
	if _, ok := ctx["tty"].(terminalInfo); !ok {
		t.Fatalf("expected terminal info in startup context")
	}
	if got, ok := ctx["config"].(config.Config); !ok || got.App != cfg.App {
		t.Fatalf("expected app config %#v, got %#v", cfg.App, ctx["config"])
	}
}

func TestStartupContextBuiltinSeed(t *testing.T) {
	ctx := startupContext(config.Config{}, terminalInfo{})
	if ctx["seed"] != "builtin" {
		t.Fatalf("expected builtin seed, got %v", ctx["seed"])
	}
}
