package taskpick

import (
	"errors"

	"github.com/koki-develop/go-fzf"
)

// ErrCancelled reports that the user dismissed the picker without choosing.
var ErrCancelled = errors.New("task selection cancelled")

// Pick presents an interactive fuzzy finder over task names. An empty list
// returns an empty selection without opening the finder.
func Pick(tasks []string) (string, error) {
	if len(tasks) == 0 {
		return "", nil
	}

	f, err := fzf.New(
		fzf.WithPrompt("Task > "),
		fzf.WithInputPosition(fzf.InputPositionTop),
		fzf.WithLimit(1),
	)
	if err != nil {
		return "", err
	}

	idxs, err := f.Find(tasks, func(i int) string { return tasks[i] })
	if err != nil {
		return "", err
	}
	if len(idxs) == 0 {
		return "", ErrCancelled
	}

	return tasks[idxs[0]], nil
}
