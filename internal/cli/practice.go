// Package cli runs the interactive terminal practice session on top of
// the scheduler: show the most urgent card, time the learner, record
// the self-graded outcome.
package cli

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"time"

	"github.com/fatih/color"

	"github.com/Its-Rajdip-Shah/mandarin-syllable-flashcards/internal/question"
	"github.com/Its-Rajdip-Shah/mandarin-syllable-flashcards/internal/scheduler"
)

var errEnd = errors.New("end of session")

// Session is one round of the practice loop.
type Session interface {
	Session(ctx context.Context) error
}

// PracticeCLI drives the interactive session.
type PracticeCLI struct {
	scheduler    *scheduler.Scheduler
	stdinReader  *bufio.Reader
	stdoutWriter io.Writer
	bold         *color.Color
	italic       *color.Color
	now          func() time.Time
}

func NewPracticeCLI(s *scheduler.Scheduler) *PracticeCLI {
	return &PracticeCLI{
		scheduler:    s,
		stdinReader:  bufio.NewReader(os.Stdin),
		stdoutWriter: os.Stdout,
		bold:         color.New(color.Bold),
		italic:       color.New(color.Italic),
		now:          time.Now,
	}
}

// Run loops sessions until the learner quits or an interrupt arrives.
func (cli *PracticeCLI) Run(ctx context.Context, session Session) error {
	ctx, cancel := signal.NotifyContext(
		ctx,
		os.Interrupt,
	)
	defer cancel()

	errCh := make(chan error)
	go func() {
		defer close(errCh)

	LOOP:
		for {
			select {
			case <-ctx.Done():
				break LOOP
			default:
			}

			if err := session.Session(ctx); err != nil {
				if errors.Is(err, errEnd) {
					break
				}
				errCh <- err
				break
			}
		}
	}()
	select {
	case <-ctx.Done():
		fmt.Fprintln(cli.stdoutWriter, "Received interrupt signal, exiting...")
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("error: %w", err)
		}
	}
	return nil
}

// payloadView is the subset of a question payload the terminal can
// render; everything else stays opaque.
type payloadView struct {
	Prompt  string          `json:"prompt"`
	Audio   string          `json:"audio"`
	Answer  json.RawMessage `json:"answer"`
	Answers json.RawMessage `json:"answers"`
}

// Session presents one question, times the recall, and records the
// self-graded outcome.
func (cli *PracticeCLI) Session(ctx context.Context) error {
	next, err := cli.scheduler.Next()
	if err != nil {
		return fmt.Errorf("scheduler.Next() > %w", err)
	}

	view := cli.render(next)
	started := cli.now()

	fmt.Fprint(cli.stdoutWriter, "Press Enter to reveal the answer (q to quit): ")
	line, err := cli.stdinReader.ReadString('\n')
	if err != nil {
		return fmt.Errorf("error reading input: %w", err)
	}
	if strings.TrimSpace(line) == "q" {
		return errEnd
	}
	seconds := cli.now().Sub(started).Seconds()

	cli.reveal(next, view)

	correct, err := cli.askCorrect()
	if err != nil {
		return err
	}
	attempts, err := cli.askAttempts()
	if err != nil {
		return err
	}

	if err := cli.scheduler.RecordOutcome(next.ID, attempts, seconds, correct); err != nil {
		return fmt.Errorf("scheduler.RecordOutcome() > %w", err)
	}

	if correct {
		fmt.Fprint(cli.stdoutWriter, "✅ ")
		color.Green("Recorded after %.1fs", seconds)
	} else {
		fmt.Fprint(cli.stdoutWriter, "❌ ")
		color.Red("Recorded, this card will come back soon")
	}
	fmt.Fprintln(cli.stdoutWriter)
	return nil
}

func (cli *PracticeCLI) render(q question.Question) payloadView {
	var view payloadView
	// Ignore parse problems; the payload is opaque and may not carry
	// any of the renderable fields.
	_ = json.Unmarshal(q.Payload, &view)

	fmt.Fprintln(cli.stdoutWriter)
	if view.Prompt != "" {
		_, _ = cli.bold.Fprintln(cli.stdoutWriter, view.Prompt)
	} else {
		_, _ = cli.bold.Fprintf(cli.stdoutWriter, "Question %s (%s)\n", q.ID, q.Type)
	}
	if view.Audio != "" {
		_, _ = cli.italic.Fprintf(cli.stdoutWriter, "Play: %s\n", view.Audio)
	}
	return view
}

func (cli *PracticeCLI) reveal(q question.Question, view payloadView) {
	answer := view.Answer
	if answer == nil {
		answer = view.Answers
	}
	if answer != nil {
		var pretty bytes.Buffer
		if err := json.Indent(&pretty, answer, "", "  "); err == nil {
			fmt.Fprintf(cli.stdoutWriter, "Answer: %s\n", pretty.String())
			return
		}
	}

	var pretty bytes.Buffer
	if err := json.Indent(&pretty, q.Payload, "", "  "); err == nil {
		fmt.Fprintf(cli.stdoutWriter, "Full question:\n%s\n", pretty.String())
	}
}

func (cli *PracticeCLI) askCorrect() (bool, error) {
	for {
		fmt.Fprint(cli.stdoutWriter, "Did you get it right? [y/n]: ")
		line, err := cli.stdinReader.ReadString('\n')
		if err != nil {
			return false, fmt.Errorf("error reading input: %w", err)
		}
		switch strings.ToLower(strings.TrimSpace(line)) {
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		case "q":
			return false, errEnd
		}
	}
}

func (cli *PracticeCLI) askAttempts() (int, error) {
	fmt.Fprint(cli.stdoutWriter, "Tries until correct [1]: ")
	line, err := cli.stdinReader.ReadString('\n')
	if err != nil {
		return 0, fmt.Errorf("error reading input: %w", err)
	}
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return 1, nil
	}
	attempts, err := strconv.Atoi(trimmed)
	if err != nil || attempts < 1 {
		fmt.Fprintln(cli.stdoutWriter, "Not a valid count, recording 1 try")
		return 1, nil
	}
	return attempts, nil
}
