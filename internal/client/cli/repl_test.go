package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// stubExec records which commands the REPL dispatched.
type stubExec struct {
	loggedIn bool
	calls    []string
}

func (s *stubExec) record(name string) error {
	s.calls = append(s.calls, name)
	return nil
}

func (s *stubExec) isLoggedIn() bool                                  { return s.loggedIn }
func (s *stubExec) Register(ctx context.Context) error                { return s.record("register") }
func (s *stubExec) Login(ctx context.Context) error                   { return s.record("login") }
func (s *stubExec) Logout(ctx context.Context) error                  { return s.record("logout") }
func (s *stubExec) Farms(ctx context.Context) error                   { return s.record("farms") }
func (s *stubExec) ShowFarm(ctx context.Context, args []string) error { return s.record("show " + strings.Join(args, " ")) }
func (s *stubExec) FarmsNear(ctx context.Context, args []string) error {
	return s.record("near " + strings.Join(args, " "))
}
func (s *stubExec) CreateFarm(ctx context.Context) error { return s.record("create") }
func (s *stubExec) DeleteFarm(ctx context.Context, args []string) error {
	return s.record("delete " + strings.Join(args, " "))
}
func (s *stubExec) Whoami(ctx context.Context) error         { return s.record("whoami") }
func (s *stubExec) ChangeUser(ctx context.Context) error     { return s.record("update") }
func (s *stubExec) ChangePassword(ctx context.Context) error { return s.record("passwd") }

// captureOutput redirects printlnFn into a slice for the duration of the test.
func captureOutput(t *testing.T) *[]string {
	t.Helper()
	var lines []string
	saved := printlnFn
	printlnFn = func(a ...any) (int, error) {
		lines = append(lines, fmt.Sprintln(a...))
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = saved })
	return &lines
}

func runScript(t *testing.T, exec *stubExec, script string) []string {
	t.Helper()
	lines := captureOutput(t)
	scanner := bufio.NewScanner(strings.NewReader(script))
	runREPL(context.Background(), exec, func() string { return "" }, scanner)
	return *lines
}

func TestREPL_DispatchesCommands(t *testing.T) {
	exec := &stubExec{}
	runScript(t, exec, "farms\nshow 3\nnear 48.2 16.35 25\nlogin\nexit\n")

	require.Equal(t, []string{"farms", "show 3", "near 48.2 16.35 25", "login"}, exec.calls)
}

func TestREPL_CommandAliases(t *testing.T) {
	exec := &stubExec{}
	runScript(t, exec, "f\nlist\nexit\n")

	require.Equal(t, []string{"farms", "farms"}, exec.calls)
}

func TestREPL_UnknownCommand(t *testing.T) {
	exec := &stubExec{}
	out := runScript(t, exec, "frobnicate\nexit\n")

	require.Empty(t, exec.calls)

	joined := strings.Join(out, "")
	require.Contains(t, joined, "Unknown command: frobnicate")
}

func TestREPL_EmptyLinesAreSkipped(t *testing.T) {
	exec := &stubExec{}
	runScript(t, exec, "\n   \nfarms\nexit\n")

	require.Equal(t, []string{"farms"}, exec.calls)
}

func TestREPL_ExitSaysGoodbye(t *testing.T) {
	out := runScript(t, &stubExec{}, "exit\n")
	require.Contains(t, strings.Join(out, ""), "Bye!")
}

func TestREPL_StopsOnEOF(t *testing.T) {
	exec := &stubExec{}
	runScript(t, exec, "farms") // no trailing newline, then EOF
	require.Equal(t, []string{"farms"}, exec.calls)
}

func TestREPL_HelpDependsOnSession(t *testing.T) {
	out := runScript(t, &stubExec{loggedIn: false}, "help\nexit\n")
	require.Contains(t, strings.Join(out, ""), "register, login")

	out = runScript(t, &stubExec{loggedIn: true}, "help\nexit\n")
	require.Contains(t, strings.Join(out, ""), "whoami, update, passwd, logout")
}
