package cli

import (
	"bufio"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

type stubExec struct {
	calls []string
}

func (s *stubExec) record(name string) error {
	s.calls = append(s.calls, name)
	return nil
}

func (s *stubExec) Login(ctx context.Context) error    { return s.record("login") }
func (s *stubExec) Info(ctx context.Context) error     { return s.record("info") }
func (s *stubExec) Logbooks(ctx context.Context) error { return s.record("logbooks") }
func (s *stubExec) Tags(ctx context.Context) error     { return s.record("tags") }
func (s *stubExec) Levels(ctx context.Context) error   { return s.record("levels") }
func (s *stubExec) NewLog(ctx context.Context) error   { return s.record("newlog") }
func (s *stubExec) Show(ctx context.Context) error     { return s.record("show") }
func (s *stubExec) Search(ctx context.Context) error   { return s.record("search") }
func (s *stubExec) Attach(ctx context.Context) error   { return s.record("attach") }
func (s *stubExec) Download(ctx context.Context) error { return s.record("download") }

func muteOutput(t *testing.T) {
	t.Helper()
	old := printlnFn
	printlnFn = func(...any) (int, error) { return 0, nil }
	t.Cleanup(func() { printlnFn = old })
}

func TestRunREPL_DispatchesCommands(t *testing.T) {
	muteOutput(t)

	in := "info\nlogbooks\ns\nget\nexit\n"
	stub := &stubExec{}
	runREPL(context.Background(), stub, bufio.NewScanner(strings.NewReader(in)))

	require.Equal(t, []string{"info", "logbooks", "search", "download"}, stub.calls)
}

func TestRunREPL_IgnoresUnknownAndBlankLines(t *testing.T) {
	muteOutput(t)

	in := "\nbogus\ntags\nquit\n"
	stub := &stubExec{}
	runREPL(context.Background(), stub, bufio.NewScanner(strings.NewReader(in)))

	require.Equal(t, []string{"tags"}, stub.calls)
}

func TestRunREPL_ExitsOnEOF(t *testing.T) {
	muteOutput(t)

	stub := &stubExec{}
	runREPL(context.Background(), stub, bufio.NewScanner(strings.NewReader("levels\n")))

	require.Equal(t, []string{"levels"}, stub.calls)
}
