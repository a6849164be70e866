package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Farms(ctx context.Context) error
	ShowFarm(ctx context.Context, args []string) error
	FarmsNear(ctx context.Context, args []string) error
	CreateFarm(ctx context.Context) error
	DeleteFarm(ctx context.Context, args []string) error
	Whoami(ctx context.Context) error
	ChangeUser(ctx context.Context) error
	ChangePassword(ctx context.Context) error
}

// runREPL starts a simple read–eval–print loop for the farmfinder CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// The farm browsing commands work without a session; the server decides
// what an unauthenticated request may do. Account commands require login
// and say so instead of failing with a server error.
//
// Any errors returned by command handlers are ignored here; handlers print
// their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("ff> %s ", statusFn()))
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

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: farms, show <id>, near <lat> <lon> <radius>, create, delete <id>, whoami, update, passwd, logout, exit")
			} else {
				printlnFn("Available commands: farms, show <id>, near <lat> <lon> <radius>, register, login, exit")
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "f", "farms", "list":
			_ = a.Farms(ctx)

		case "show":
			_ = a.ShowFarm(ctx, args)

		case "near":
			_ = a.FarmsNear(ctx, args)

		case "create":
			_ = a.CreateFarm(ctx)

		case "delete":
			_ = a.DeleteFarm(ctx, args)

		case "whoami":
			_ = a.Whoami(ctx)

		case "update":
			_ = a.ChangeUser(ctx)

		case "passwd":
			_ = a.ChangePassword(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
