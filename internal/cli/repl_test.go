package cli

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeExec struct {
	calls []string
	err   error
}

func (f *fakeExec) record(call string) error {
	f.calls = append(f.calls, call)
	return f.err
}

func (f *fakeExec) List(ctx context.Context) error            { return f.record("list") }
func (f *fakeExec) Add(ctx context.Context) error             { return f.record("add") }
func (f *fakeExec) Edit(ctx context.Context, id string) error { return f.record("edit " + id) }
func (f *fakeExec) Delete(ctx context.Context, id string) error {
	return f.record("delete " + id)
}
func (f *fakeExec) Show(ctx context.Context, id string) error { return f.record("show " + id) }
func (f *fakeExec) Count(ctx context.Context) error           { return f.record("count") }
func (f *fakeExec) Save(ctx context.Context) error            { return f.record("save") }

func TestRunREPL_DispatchesCommands(t *testing.T) {
	input := strings.Join([]string{
		"help",
		"",
		"list",
		"l",
		"add",
		"edit abc",
		"show",
		"delete xyz extra",
		"count",
		"save",
		"foobar",
		"exit",
		"list",
	}, "\n")

	exec := &fakeExec{}
	var out bytes.Buffer
	runREPL(context.Background(), exec, func() string { return "status" }, rdr(input), &out)

	assert.Equal(t, []string{"list", "list", "add", "edit abc", "show ", "delete xyz", "count", "save"}, exec.calls)
	assert.Contains(t, out.String(), "Available commands")
	assert.Contains(t, out.String(), "Unknown command: foobar")
	assert.Contains(t, out.String(), "ak status> ")
	assert.True(t, strings.HasSuffix(out.String(), "Bye!\n"), "commands after exit are not run")
}

func TestRunREPL_StopsOnEOF(t *testing.T) {
	exec := &fakeExec{}
	var out bytes.Buffer
	runREPL(context.Background(), exec, func() string { return "" }, rdr("count"), &out)

	assert.Equal(t, []string{"count"}, exec.calls)
}

func TestRunREPL_ReportsHandlerErrors(t *testing.T) {
	exec := &fakeExec{err: errors.New("kaput")}
	var out bytes.Buffer
	runREPL(context.Background(), exec, func() string { return "" }, rdr("list\nquit\n"), &out)

	assert.Contains(t, out.String(), "Error: kaput")
	assert.Contains(t, out.String(), "Bye!")
}
