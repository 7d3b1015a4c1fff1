package cli

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeExec struct {
	loggedIn bool
	calls    []string
}

func (f *fakeExec) record(format string, args ...any) error {
	f.calls = append(f.calls, fmt.Sprintf(format, args...))
	return nil
}

func (f *fakeExec) isLoggedIn(context.Context) bool { return f.loggedIn }
func (f *fakeExec) Register(context.Context) error  { return f.record("register") }
func (f *fakeExec) Login(context.Context) error {
	f.loggedIn = true
	return f.record("login")
}
func (f *fakeExec) Logout(context.Context) error {
	f.loggedIn = false
	return f.record("logout")
}
func (f *fakeExec) DeleteAccount(context.Context) error { return f.record("delete-account") }
func (f *fakeExec) Products(_ context.Context, q string) error {
	return f.record("products %q", q)
}
func (f *fakeExec) Add(_ context.Context, id string) error    { return f.record("add %s", id) }
func (f *fakeExec) Fave(_ context.Context, id string) error   { return f.record("fave %s", id) }
func (f *fakeExec) Cart(context.Context) error                { return f.record("cart") }
func (f *fakeExec) Remove(_ context.Context, id string) error { return f.record("remove %s", id) }
func (f *fakeExec) Qty(_ context.Context, id string, d int) error {
	return f.record("qty %s %d", id, d)
}
func (f *fakeExec) ClearCart(context.Context) error               { return f.record("clear") }
func (f *fakeExec) FaveAdd(_ context.Context, id string) error    { return f.record("fave-add %s", id) }
func (f *fakeExec) Checkout(context.Context) error                { return f.record("checkout") }
func (f *fakeExec) Profile(context.Context) error                 { return f.record("profile") }
func (f *fakeExec) SetField(_ context.Context, k, v string) error { return f.record("set %s=%q", k, v) }
func (f *fakeExec) SetImage(_ context.Context, slot, path string) error {
	return f.record("%s %s", slot, path)
}
func (f *fakeExec) Support(context.Context) error { return f.record("support") }

func capturePrintln(t *testing.T) *[]string {
	t.Helper()
	var lines []string
	orig := printlnFn
	printlnFn = func(a ...any) (int, error) {
		lines = append(lines, fmt.Sprintln(a...))
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = orig })
	return &lines
}

func TestRunREPL_Dispatch(t *testing.T) {
	capturePrintln(t)

	input := rdr(`help
login
products
search oak  table
add p1
fave p2
cart
remove p1
qty p1 -3
qty p1 +2
clear
fave-add p2
checkout
profile
set name Alice   Smith
avatar /tmp/a.png
cover /tmp/c.png
support
logout
register
delete-account
exit
add never
`)

	exec := &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "guest" }, input)

	assert.Equal(t, []string{
		"login",
		`products ""`,
		`products "oak table"`,
		"add p1",
		"fave p2",
		"cart",
		"remove p1",
		"qty p1 -3",
		"qty p1 2",
		"clear",
		"fave-add p2",
		"checkout",
		"profile",
		`set name="Alice Smith"`,
		"avatar /tmp/a.png",
		"cover /tmp/c.png",
		"support",
		"logout",
		"register",
		"delete-account",
	}, exec.calls)
}

func TestRunREPL_UsageAndUnknown(t *testing.T) {
	lines := capturePrintln(t)

	input := rdr("add\nqty p1\nqty p1 many\nset\navatar\nfoobar\n\nquit\n")
	exec := &fakeExec{loggedIn: true}
	runREPL(context.Background(), exec, func() string { return "[A] alice" }, input)

	assert.Empty(t, exec.calls)
	assert.Contains(t, *lines, "Usage: add <id>\n")
	assert.Contains(t, *lines, "Usage: qty <id> <delta>\n")
	assert.Contains(t, *lines, "Usage: set <name|phone|city> <value>\n")
	assert.Contains(t, *lines, "Usage: avatar <path>\n")
	assert.Contains(t, *lines, "Unknown command: foobar\n")
	assert.Contains(t, *lines, "ynitaziki [A] alice > \n")
	assert.Equal(t, "Bye!\n", (*lines)[len(*lines)-1])
}

func TestRunREPL_HelpDependsOnSession(t *testing.T) {
	lines := capturePrintln(t)

	runREPL(context.Background(), &fakeExec{}, func() string { return "" }, rdr("help\n"))
	assert.Contains(t, *lines, helpGuest+"\n")

	*lines = nil
	runREPL(context.Background(), &fakeExec{loggedIn: true}, func() string { return "" }, rdr("help"))
	assert.Contains(t, *lines, helpUser+"\n")
}
