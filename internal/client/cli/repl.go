package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	SignIn(ctx context.Context) error
	SignUp(ctx context.Context) error
	SignOut(ctx context.Context, all bool) error
	WhoAmI(ctx context.Context) error
	Groups(ctx context.Context) error
	Exercises(ctx context.Context, group string) error
	Exercise(ctx context.Context, id string) error
	Done(ctx context.Context, id string) error
	History(ctx context.Context) error
	Profile(ctx context.Context) error
	Photo(ctx context.Context, path string) error
}

// runREPL reads one command per line from reader and dispatches it to a.
// Prompts and REPL messages are written to w.
// The loop exits on EOF or when the user types "exit" or "quit".
//
//	Not signed in:
//	  - help              show available commands
//	  - signin            sign in with e-mail and password
//	  - signup            create an account and sign in
//	  - exit | quit       leave the program
//
//	Signed in:
//	  - help              show available commands
//	  - groups            list muscle groups
//	  - exercises <group> list exercises of a group
//	  - exercise <id>     show one exercise
//	  - done <id>         mark an exercise as done
//	  - history           show training history
//	  - profile           edit name and password
//	  - photo <path>      upload a profile photo
//	  - whoami            show the signed-in user
//	  - signout [--all]   sign out; --all also erases local data
//	  - exit | quit       leave the program
//
// Command handlers report their own failures; returned errors are ignored so
// that no failure ends the loop.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader, w io.Writer) {
	for {
		fmt.Fprintf(w, "gym %s> ", statusFn())
		line, err := reader.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		arg := strings.Join(parts[1:], " ")

		if cmd == "exit" || cmd == "quit" {
			fmt.Fprintln(w, "Bye!")
			return
		}

		if !a.isLoggedIn() {
			switch cmd {
			case "help":
				fmt.Fprintln(w, "Available commands: signin, signup, exit")
			case "signin", "login":
				_ = a.SignIn(ctx)
			case "signup", "register":
				_ = a.SignUp(ctx)
			default:
				fmt.Fprintln(w, "Unknown command:", cmd, "(sign in first?)")
			}
			continue
		}

		switch cmd {
		case "help":
			fmt.Fprintln(w, "Available commands: groups, exercises <group>, exercise <id>, done <id>, history, profile, photo <path>, whoami, signout [--all], exit")
		case "groups":
			_ = a.Groups(ctx)
		case "exercises":
			if arg == "" {
				fmt.Fprintln(w, "Usage: exercises <group>")
				continue
			}
			_ = a.Exercises(ctx, arg)
		case "exercise":
			if arg == "" {
				fmt.Fprintln(w, "Usage: exercise <id>")
				continue
			}
			_ = a.Exercise(ctx, arg)
		case "done":
			if arg == "" {
				fmt.Fprintln(w, "Usage: done <id>")
				continue
			}
			_ = a.Done(ctx, arg)
		case "history":
			_ = a.History(ctx)
		case "profile":
			_ = a.Profile(ctx)
		case "photo":
			if arg == "" {
				fmt.Fprintln(w, "Usage: photo <path>")
				continue
			}
			_ = a.Photo(ctx, arg)
		case "whoami":
			_ = a.WhoAmI(ctx)
		case "signout", "logout":
			_ = a.SignOut(ctx, arg == "--all")
		default:
			fmt.Fprintln(w, "Unknown command:", cmd)
		}
	}
}
