package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/peterh/liner"
	"github.com/vytor/nerdeck/internal/ladder"
	"github.com/vytor/nerdeck/internal/models"
	"github.com/vytor/nerdeck/internal/services"
	"github.com/vytor/nerdeck/internal/srs"
)

// errQuit ends a study session early without reporting an error.
var errQuit = errors.New("quit")

type prompter interface {
	Prompt(prompt string) (string, error)
}

// terminal is a liner-backed prompter. Ctrl-C aborts the prompt.
type terminal struct {
	state *liner.State
}

func newTerminal() *terminal {
	state := liner.NewLiner()
	state.SetCtrlCAborts(true)
	return &terminal{state: state}
}

func (t *terminal) Prompt(prompt string) (string, error) {
	return t.state.Prompt(prompt)
}

func (t *terminal) Close() error {
	return t.state.Close()
}

// studyLoop drives one study session: show the front, reveal the back,
// record the answer. The client keeps its own ladder step per card and
// chooses the next due date from it, as the web client does.
type studyLoop struct {
	study    services.StudyService
	calendar srs.Calendar
	prompt   prompter
	out      io.Writer
}

func (s *studyLoop) Run(ctx context.Context, userID, deckID int64) error {
	session, err := s.study.StartSession(ctx, userID, deckID)
	if err != nil {
		return err
	}
	fmt.Fprintf(s.out, "%s: %d card(s) due\n", session.Deck.Title, len(session.Cards))
	if session.CurrentCard == nil {
		fmt.Fprintln(s.out, "nothing to study today")
		return nil
	}

	current := srs.StudyCard(*session.CurrentCard)
	var right, wrong int
	for {
		correct, err := s.ask(current)
		if errors.Is(err, errQuit) {
			fmt.Fprintf(s.out, "\nstopped: %d right, %d wrong\n", right, wrong)
			return nil
		}
		if err != nil {
			return err
		}

		step, dueAt := ladder.Advance(current.Step, correct, s.calendar.Now())
		answer := services.Answer{CardID: current.ID, IsRight: correct, Step: &step}
		if dueAt != nil {
			answer.DueAt = srs.FormatTimestamp(*dueAt)
		}

		result, err := s.study.SubmitAnswer(ctx, userID, deckID, answer)
		if err != nil {
			return err
		}

		if !correct {
			wrong++
			current.Step = step
			fmt.Fprintln(s.out, "again")
			continue
		}
		right++
		fmt.Fprintf(s.out, "next review in %d day(s)\n", s.calendar.DaysBetween(s.calendar.Now(), *dueAt))

		if result.NextCard == nil {
			fmt.Fprintf(s.out, "done: %d right, %d wrong\n", right, wrong)
			return nil
		}
		current = *result.NextCard
	}
}

// ask shows card and returns whether the student knew it.
func (s *studyLoop) ask(card models.StudyCard) (bool, error) {
	fmt.Fprintf(s.out, "\n[step %d] %s\n", card.Step, card.FrontText)
	line, err := s.read("reveal (enter, q to quit) ")
	if err != nil {
		return false, err
	}
	if isQuit(line) {
		return false, errQuit
	}

	fmt.Fprintf(s.out, "  %s\n", card.BackText)
	for {
		line, err := s.read("right? [y/n] ")
		if err != nil {
			return false, err
		}
		switch strings.ToLower(strings.TrimSpace(line)) {
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		case "q", "quit":
			return false, errQuit
		}
	}
}

func (s *studyLoop) read(prompt string) (string, error) {
	line, err := s.prompt.Prompt(prompt)
	if errors.Is(err, liner.ErrPromptAborted) || errors.Is(err, io.EOF) {
		return "", errQuit
	}
	return line, err
}

func isQuit(line string) bool {
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "q", "quit", "exit":
		return true
	}
	return false
}
