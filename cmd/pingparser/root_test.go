package main

import (
	"bytes"
	"context"
	"io"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pingparser/internal/database"
)

const exampleOutput = `PING example.com (93.184.216.34): 56 data bytes
64 bytes from 93.184.216.34: icmp_seq=0 ttl=56 time=10.1 ms

--- example.com ping statistics ---
4 packets transmitted, 4 packets received, 0% packet loss
round-trip min/avg/max = 10.1/15.2/20.3 ms
`

type result struct {
	code   int
	stdout string
	stderr string
}

func runWith(t *testing.T, ctx context.Context, args []string, in io.Reader, piped bool) result {
	t.Helper()

	var stdout, stderr bytes.Buffer
	code := run(ctx, args, streams{in: in, piped: piped, out: &stdout, errOut: &stderr})
	return result{code: code, stdout: stdout.String(), stderr: stderr.String()}
}

func runPiped(t *testing.T, input string, args ...string) result {
	t.Helper()
	return runWith(t, context.Background(), args, strings.NewReader(input), true)
}

func TestRun(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		expected string
	}{
		{name: "default format", args: nil, expected: "example.com,4,4,10.1,15.2,20.3,0"},
		{name: "custom format", args: []string{"+%h avg=%a"}, expected: "example.com avg=15.2"},
		{name: "split format", args: []string{"+%h", "->", "%M"}, expected: "example.com -> 20.3"},
		{name: "dash inside format", args: []string{"+%h", "-", "%l%"}, expected: "example.com - 0%"},
		{name: "empty format", args: []string{"+"}, expected: ""},
		{name: "flag terminator", args: []string{"--", "+%s/%r"}, expected: "4/4"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := runPiped(t, exampleOutput, tt.args...)
			assert.Equal(t, 0, res.code, res.stderr)
			assert.Equal(t, tt.expected, res.stdout)
			assert.Empty(t, res.stderr)
		})
	}
}

func TestRunUsageErrors(t *testing.T) {
	tests := []struct {
		name  string
		args  []string
		piped bool
	}{
		{name: "terminal stdin", args: nil, piped: false},
		{name: "format without plus", args: []string{"%h"}, piped: true},
		{name: "unknown flag", args: []string{"-x"}, piped: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := runWith(t, context.Background(), tt.args, strings.NewReader(exampleOutput), tt.piped)
			assert.Equal(t, 1, res.code)
			assert.Empty(t, res.stdout)
			assert.Contains(t, res.stderr, "Usage:")
			assert.Contains(t, res.stderr, "Default FORMAT is %h,%s,%r,%m,%a,%M,%l")
		})
	}
}

func TestRunHelpAndVersion(t *testing.T) {
	res := runWith(t, context.Background(), []string{"--help"}, strings.NewReader(""), false)
	assert.Equal(t, 0, res.code)
	assert.Contains(t, res.stdout, "%M    maximum ping in milliseconds")
	assert.Contains(t, res.stdout, "PINGPARSER_HISTORY")

	res = runWith(t, context.Background(), []string{"--version"}, strings.NewReader(""), false)
	assert.Equal(t, 0, res.code)
	assert.Contains(t, res.stdout, version)
}

func TestRunMalformedInput(t *testing.T) {
	input := "ping: cannot resolve nowhere.invalid: Unknown host\n"
	res := runPiped(t, input)

	assert.Equal(t, 1, res.code)
	assert.Empty(t, res.stdout)
	assert.Contains(t, res.stderr, "error: invalid ping output: missing host")
	assert.Contains(t, res.stderr, input)
}

func TestRunInvalidConfiguration(t *testing.T) {
	t.Setenv("PINGPARSER_CHART", filepath.Join(t.TempDir(), "latency.png"))

	res := runPiped(t, exampleOutput)
	assert.Equal(t, 1, res.code)
	assert.Empty(t, res.stdout)
	assert.Contains(t, res.stderr, "invalid configuration")
}

func TestRunInterrupted(t *testing.T) {
	pr, pw := io.Pipe()
	t.Cleanup(func() { pw.Close() })

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res := runWith(t, ctx, nil, pr, true)
	assert.Equal(t, 0, res.code)
	assert.Empty(t, res.stdout)
	assert.Empty(t, res.stderr)
}

func TestRunRecordsHistory(t *testing.T) {
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "history.db")
	t.Setenv("PINGPARSER_HISTORY", dbPath)
	t.Setenv("PINGPARSER_CHART", filepath.Join(dir, "latency.png"))

	for i := 0; i < 2; i++ {
		res := runPiped(t, exampleOutput, "+%h")
		require.Equal(t, 0, res.code, res.stderr)
		assert.Equal(t, "example.com", res.stdout)
	}

	db, err := database.New(dbPath)
	require.NoError(t, err)
	defer db.Close()

	entries, err := db.GetRecent(context.Background(), "example.com", 10)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "15.2", entries[1].Summary.AvgPing)
}

func TestRunUnusableHistoryKeepsOutput(t *testing.T) {
	t.Setenv("PINGPARSER_HISTORY", filepath.Join(t.TempDir(), "missing", "history.db"))
	t.Setenv("PINGPARSER_LOG_LEVEL", "warn")

	res := runPiped(t, exampleOutput)
	assert.Equal(t, 0, res.code)
	assert.Equal(t, "example.com,4,4,10.1,15.2,20.3,0", res.stdout)
	assert.Contains(t, res.stderr, "History disabled")
}
