// Package tui holds the interactive prompts used by the registrar CLI when
// it runs in a terminal: credential entry, record pickers and confirmation.
package tui

import (
	"context"
	"errors"
	"io"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/huh/spinner"
)

// ErrAborted is returned when the user cancels a prompt.
var ErrAborted = errors.New("aborted by user")

// Accessible reports whether prompts should run in accessible mode
// (plain line-based input instead of a full-screen form).
func Accessible() bool {
	return os.Getenv("ACCESSIBLE") != ""
}

func runForm(accessible bool, groups ...*huh.Group) error {
	err := huh.NewForm(groups...).WithAccessible(accessible).Run()
	if err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return ErrAborted
		}
		return err
	}
	return nil
}

// Spin runs action behind a spinner titled title, writing to out.
func Spin(out io.Writer, title string, action func(ctx context.Context) error) error {
	err := spinner.New().
		Title(title).
		Accessible(Accessible()).
		Output(out).
		ActionWithErr(action).
		Run()
	if errors.Is(err, huh.ErrUserAborted) {
		return ErrAborted
	}
	return err
}

// Confirm asks a yes/no question. It returns false without error when the
// user declines.
func Confirm(title, affirmative string) (bool, error) {
	ok := false
	err := runForm(Accessible(), huh.NewGroup(
		huh.NewConfirm().
			Title(title).
			Affirmative(affirmative).
			Negative("Cancel").
			Value(&ok),
	))
	if err != nil {
		return false, err
	}
	return ok, nil
}
