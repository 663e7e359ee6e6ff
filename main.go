package main

import (
	"errors"
	"fmt"
	"os"

	"golang.org/x/term"

	"github.com/atomicstack/surfaces/internal/app"
	"github.com/atomicstack/surfaces/internal/config"
	"github.com/atomicstack/surfaces/internal/logging"
	"github.com/atomicstack/surfaces/internal/logging/events"
)

var errNoTerminal = errors.New("surfaces needs an interactive terminal on stdin and stdout")

func main() {
	cfg := config.MustLoad()
	if err := config.Validate(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	logging.Configure(cfg.Logging.FilePath)
	logging.SetTraceEnabled(cfg.Logging.Trace)

	tty := inspectTerminal([]stdStream{
		{"stdin", os.Stdin},
		{"stdout", os.Stdout},
		{"stderr", os.Stderr},
	})
	events.App.Start(startupContext(cfg, tty))

	if !tty.Interactive {
		fail(errNoTerminal)
	}
	if err := app.Run(cfg.App); err != nil {
		fail(err)
	}
}

func fail(err error) {
	logging.Error(err)
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}

// stdStream names one of the process's standard files.
type stdStream struct {
	name string
	file *os.File
}

// streamState is what the terminal check learned about one stream.
type streamState struct {
	Name     string `json:"name"`
	Terminal bool   `json:"terminal"`
	Cols     int    `json:"cols,omitempty"`
	Rows     int    `json:"rows,omitempty"`
	Err      string `json:"err,omitempty"`
}

// terminalInfo summarises the standard streams. Interactive needs both stdin
// and stdout attached to a terminal; the size comes from the first stream
// that reported one.
type terminalInfo struct {
	Interactive bool          `json:"interactive"`
	SizedBy     string        `json:"sized_by,omitempty"`
	Cols        int           `json:"cols,omitempty"`
	Rows        int           `json:"rows,omitempty"`
	Streams     []streamState `json:"streams"`
}

func inspectTerminal(streams []stdStream) terminalInfo {
	states := make([]streamState, 0, len(streams))
	for _, s := range streams {
		st := streamState{Name: s.name}
		if s.file != nil {
			fd := int(s.file.Fd())
			if term.IsTerminal(fd) {
				st.Terminal = true
				cols, rows, err := term.GetSize(fd)
				if err != nil {
					st.Err = err.Error()
				} else {
					st.Cols, st.Rows = cols, rows
				}
			}
		}
		states = append(states, st)
	}
	return summarizeStreams(states)
}

func summarizeStreams(states []streamState) terminalInfo {
	info := terminalInfo{Streams: states}
	terminal := map[string]bool{}
	for _, st := range states {
		terminal[st.Name] = st.Terminal
		if info.SizedBy == "" && st.Terminal && st.Err == "" && st.Cols > 0 {
			info.SizedBy, info.Cols, info.Rows = st.Name, st.Cols, st.Rows
		}
	}
	info.Interactive = terminal["stdin"] && terminal["stdout"]
	return info
}

// startupContext is the trace record written once the logger is ready.
func startupContext(cfg config.Config, tty terminalInfo) map[string]interface{} {
	seed := cfg.App.SeedPath
	if seed == "" {
		seed = "builtin"
	}
	ctx := map[string]interface{}{
		"argv":   cfg.Args,
		"flags":  effectiveFlags(cfg),
		"config": cfg,
		"tty":    tty,
		"seed":   seed,
	}
	if cwd, err := os.Getwd(); err != nil {
		ctx["cwdError"] = err.Error()
	} else {
		ctx["cwd"] = cwd
	}
	return ctx
}

// effectiveFlags merges the flags given on the command line with the
// logging settings that were resolved from them.
func effectiveFlags(cfg config.Config) map[string]interface{} {
	out := make(map[string]interface{}, len(cfg.Flags)+2)
	for name, value := range cfg.Flags {
		out[name] = value
	}
	logFile := cfg.Logging.FilePath
	if logFile == "" {
		logFile = logging.Path()
	}
	out["logFile"] = logFile
	out["trace"] = cfg.Logging.Trace
	return out
}
