// Package console is a line-oriented terminal front-end for the registry.
// Each input line is one event (type into a field, press a button); the
// screen is rendered again after every view-model mutation.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"peopleRegistry/internal/logger"
	"peopleRegistry/internal/viewmodel"
)

const helpText = `commands:
  name <text>     set the name field
  email <text>    set the email field
  save            add the draft, or update the user being edited
  edit <id>       load a listed user into the form
  delete <id>     delete a user
  cancel          clear the form and stop editing
  filter <text>   show users whose name or email contains text
  clear           remove the filter
  help            show this text
  quit            exit
`

type Shell struct {
	vm     *viewmodel.ViewModel
	in     io.Reader
	out    io.Writer
	prompt bool
}

type Option func(*Shell)

// WithPrompt prints a "> " prompt before reading each line.
func WithPrompt(enabled bool) Option {
	return func(s *Shell) { s.prompt = enabled }
}

func New(vm *viewmodel.ViewModel, in io.Reader, out io.Writer, opts ...Option) *Shell {
	s := &Shell{vm: vm, in: in, out: out}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run mounts the view-model and processes commands until quit, end of input,
// or ctx is done. Storage errors on mount are returned; later ones are shown
// to the user and the shell keeps going.
func (s *Shell) Run(ctx context.Context) error {
	s.vm.Subscribe(func(st viewmodel.State) { Render(s.out, st) })
	if err := s.vm.Mount(ctx); err != nil {
		return fmt.Errorf("mount: %w", err)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	lines := make(chan string)
	readErr := make(chan error, 1)
	go func() {
		sc := bufio.NewScanner(s.in)
		for sc.Scan() {
			select {
			case lines <- sc.Text():
			case <-ctx.Done():
				return
			}
		}
		readErr <- sc.Err()
		close(lines)
	}()

	for {
		if s.prompt {
			fmt.Fprint(s.out, "> ")
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case line, ok := <-lines:
			if !ok {
				return <-readErr
			}
			if quit := s.handle(ctx, line); quit {
				return nil
			}
		}
	}
}

func (s *Shell) handle(ctx context.Context, line string) (quit bool) {
	cmd, arg, _ := strings.Cut(strings.TrimSpace(line), " ")
	arg = strings.TrimSpace(arg)
	logger.Log.Debugw("command", "cmd", cmd, "arg", arg)

	switch strings.ToLower(cmd) {
	case "":
	case "name":
		s.vm.SetName(arg)
	case "email":
		s.vm.SetEmail(arg)
	case "save":
		s.report(s.vm.Save(ctx))
	case "edit":
		id, ok := s.parseID(arg)
		if !ok {
			return false
		}
		u, found := s.vm.Find(id)
		if !found {
			fmt.Fprintf(s.out, "no listed user with id %d\n", id)
			return false
		}
		s.vm.Edit(u)
	case "delete":
		id, ok := s.parseID(arg)
		if !ok {
			return false
		}
		s.report(s.vm.Delete(ctx, id))
	case "cancel":
		s.vm.Cancel()
	case "filter":
		s.vm.SetFilter(arg)
	case "clear":
		s.vm.ClearFilter()
	case "help", "?":
		fmt.Fprint(s.out, helpText)
	case "quit", "exit":
		return true
	default:
		fmt.Fprintf(s.out, "unknown command %q, type help\n", cmd)
	}
	return false
}

func (s *Shell) parseID(arg string) (int64, bool) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		fmt.Fprintf(s.out, "invalid id %q\n", arg)
		return 0, false
	}
	return id, true
}

func (s *Shell) report(err error) {
	switch {
	case err == nil:
	case errors.Is(err, viewmodel.ErrIncompleteDraft):
		logger.Log.Debugw("save rejected", "error", err)
		fmt.Fprintln(s.out, "name and email are required")
	default:
		logger.Log.Errorw("storage operation failed", "error", err)
		fmt.Fprintf(s.out, "error: %v\n", err)
	}
}
