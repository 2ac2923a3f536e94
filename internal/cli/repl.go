package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a stub.
type execIface interface {
	isLoggedIn() bool
	RegisterInteractive(ctx context.Context) error
	LoginInteractive(ctx context.Context) error
	Logout(ctx context.Context) error
	Whoami(ctx context.Context) error
	ShowPrefs(ctx context.Context) error
	Dashboard(ctx context.Context, view string) error
	DeleteAccount(ctx context.Context, force bool) error
}

// RunREPL starts the interactive loop on stdin after the usual bootstrap.
func (a *App) RunREPL(ctx context.Context) {
	printlnFn("fishlog interactive mode (type 'help' for commands)")
	runREPL(ctx, a, a.status, bufio.NewScanner(os.Stdin))
}

func (a *App) status() string {
	user, _, loading := a.store.Current()
	switch {
	case loading:
		return "..."
	case user != nil:
		return user.Email
	default:
		return "anonymous"
	}
}

// runREPL reads a line from the scanner, parses the first token as the
// command, and dispatches to methods on a. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Errors returned by command handlers are printed and the loop continues;
// a failed command must not end the session.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("fishlog (%s) > ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		var err error
		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: whoami, prefs, dashboard [view], logout, delete-account, exit")
			} else {
				printlnFn("Available commands: register, login, exit")
			}

		case "register":
			err = a.RegisterInteractive(ctx)

		case "login":
			err = a.LoginInteractive(ctx)

		case "logout":
			err = a.Logout(ctx)

		case "whoami":
			err = a.Whoami(ctx)

		case "prefs":
			err = a.ShowPrefs(ctx)

		case "dashboard":
			view := ""
			if len(args) > 0 {
				view = args[0]
			}
			err = a.Dashboard(ctx, view)

		case "delete-account":
			err = a.DeleteAccount(ctx, false)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}

		if err != nil {
			printlnFn("Error:", err.Error())
		}
	}
}
