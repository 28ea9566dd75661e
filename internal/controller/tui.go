package controller

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"sync/atomic"

	tea "github.com/charmbracelet/bubbletea"

	m "tighten.dev/pkg/tighten/internal/model"
)

// TUI implements UI using Bubble Tea for interactive display. Listings are
// printed statically; only a campaign runs a live program.
type TUI struct {
	output  io.Writer
	program *tea.Program
	done    chan struct{}
	running atomic.Bool
	lines   *lineWriter
}

// NewTUI creates a new TUI.
func NewTUI(output io.Writer) *TUI {
	t := &TUI{output: output}
	t.lines = &lineWriter{send: func(line string) { t.send(outputLineMsg{line: line}) }}

	return t
}

// Start launches the campaign view. In list mode it does nothing.
func (t *TUI) Start(ctx context.Context, options ...StartOption) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	cfg := NewStartConfig(options...)
	if cfg.Mode() != ModeCampaign {
		return nil
	}

	t.program = tea.NewProgram(
		newCampaignModel(cfg.OnQuit()),
		tea.WithOutput(t.output),
		tea.WithContext(ctx),
		tea.WithoutSignalHandler(),
	)
	t.done = make(chan struct{})
	t.running.Store(true)

	go func() {
		defer close(t.done)
		defer t.running.Store(false)

		if _, err := t.program.Run(); err != nil {
			slog.Error("Failed to run campaign view", "error", err)
		}
	}()

	return nil
}

// Close stops the campaign view, leaving its last frame on screen.
func (t *TUI) Close(_ context.Context) {
	if t.program == nil {
		return
	}

	t.lines.flush()
	t.program.Quit()
	<-t.done
}

// Output returns a writer that feeds collaborator output to the view line by
// line.
func (t *TUI) Output() io.Writer {
	return t.lines
}

// DisplayCampaignInfo shows the campaign header.
func (t *TUI) DisplayCampaignInfo(_ context.Context, info CampaignInfo) {
	t.send(campaignInfoMsg{info: info})
}

// DisplayIterationStart shows the batch being validated.
func (t *TUI) DisplayIterationStart(_ context.Context, number int, batch []m.Mutation) {
	t.send(iterationStartMsg{number: number, size: len(batch)})
}

// DisplayIteration records the outcome of an iteration.
func (t *TUI) DisplayIteration(_ context.Context, iteration m.Iteration) {
	t.send(iterationMsg{iteration: iteration})
}

// DisplayMutations prints the candidate table, the same way SimpleUI does.
func (t *TUI) DisplayMutations(ctx context.Context, mutations []m.Mutation, showDiff bool) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	_, _ = fmt.Fprintf(t.output, "\n%s", renderMutationTable(mutations))

	if !showDiff {
		return nil
	}

	for _, mutation := range mutations {
		diff, err := mutation.Diff()
		if err != nil {
			return fmt.Errorf("render diff for %s: %w", mutation, err)
		}

		_, _ = fmt.Fprintln(t.output, colorizeDiff(diff))
	}

	return nil
}

// send drops messages while no program is running; Program.Send would block.
func (t *TUI) send(msg tea.Msg) {
	if t.program == nil || !t.running.Load() {
		return
	}

	t.program.Send(msg)
}

// lineWriter buffers writes and hands out complete lines.
type lineWriter struct {
	mu      sync.Mutex
	pending []byte
	send    func(string)
}

func (w *lineWriter) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.pending = append(w.pending, p...)

	for {
		idx := bytes.IndexByte(w.pending, '\n')
		if idx < 0 {
			break
		}

		line := string(bytes.TrimRight(w.pending[:idx], "\r"))
		w.pending = w.pending[idx+1:]

		w.send(line)
	}

	return len(p), nil
}

func (w *lineWriter) flush() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if len(w.pending) > 0 {
		w.send(string(w.pending))
		w.pending = nil
	}
}
