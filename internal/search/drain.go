package search

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
)

// Drain runs cmd and every command batched under it until none is left,
// feeding their messages to c one at a time on the calling goroutine.
// It returns ctx's error if ctx ends first.
func Drain(ctx context.Context, c *Coordinator, cmd tea.Cmd) error {
	msgs := make(chan tea.Msg)
	outstanding := 0

	spawn := func(cmd tea.Cmd) {
		if cmd == nil {
			return
		}
		outstanding++
		go func() {
			msg := cmd()
			select {
			case msgs <- msg:
			case <-ctx.Done():
			}
		}()
	}

	spawn(cmd)
	for outstanding > 0 {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case msg := <-msgs:
			outstanding--
			if batch, ok := msg.(tea.BatchMsg); ok {
				for _, sub := range batch {
					spawn(sub)
				}
				continue
			}
			c.Update(msg)
		}
	}
	return nil
}
