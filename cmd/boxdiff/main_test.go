package main

import (
	"bytes"
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	color.NoColor = true
	os.Exit(m.Run())
}

func TestRun(t *testing.T) {
	testCases := []struct {
		name       string
		input      string
		wantCode   int
		wantStdout string
		wantStderr string
	}{
		{
			name:       "puzzle example",
			input:      "abcde\nfghij\nklmno\npqrst\nfguij\naxcye\nwvxyz\n",
			wantCode:   exitOK,
			wantStdout: "['fgij', 2]\n",
		},
		{
			name:       "surrounding whitespace and blank lines",
			input:      "  abcde \r\n\nfghij\t\nklmno\nfguij\n\n",
			wantCode:   exitOK,
			wantStdout: "['fgij', 2]\n",
		},
		{
			name:       "no matching pair",
			input:      "abc\nxyz\n",
			wantCode:   exitNotFound,
			wantStderr: "boxdiff: no matching pair found\n",
		},
		{
			name:       "empty input",
			input:      "",
			wantCode:   exitValidation,
			wantStderr: "boxdiff: no identifiers supplied\n",
		},
		{
			name:       "invalid UTF-8",
			input:      "a\xffb\na\xfeb\n",
			wantCode:   exitValidation,
			wantStderr: "boxdiff: identifiers are not valid UTF-8: line 1: \"a\\xffb\"; line 2: \"a\\xfeb\"\n",
		},
		{
			name:       "inconsistent lengths",
			input:      "abcde\nabcd\nabcdf\n",
			wantCode:   exitValidation,
			wantStderr: "boxdiff: inconsistent identifier lengths: line 2: \"abcd\" has length 4, want 5\n",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			code := run(config{}, strings.NewReader(tc.input), false, &stdout, &stderr)

			assert.Equal(t, tc.wantCode, code)
			assert.Equal(t, tc.wantStdout, stdout.String())
			assert.Equal(t, tc.wantStderr, stderr.String())
		})
	}
}

func TestRunTerminalStdin(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run(config{}, strings.NewReader("ab\nac\n"), true, &stdout, &stderr)

	assert.Equal(t, exitUsage, code)
	assert.Empty(t, stdout.String())
	assert.Equal(t,
		"The command is intended to work with pipes.\nUsage: cat ids.txt | boxdiff\n",
		stderr.String())
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("broken pipe")
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestRunIOErrors(t *testing.T) {
	t.Run("read", func(t *testing.T) {
		var stdout, stderr bytes.Buffer
		code := run(config{}, failingReader{}, false, &stdout, &stderr)

		assert.Equal(t, exitIO, code)
		assert.Empty(t, stdout.String())
		assert.Equal(t, "boxdiff: read identifiers: broken pipe\n", stderr.String())
	})

	t.Run("write", func(t *testing.T) {
		var stderr bytes.Buffer
		code := run(config{}, strings.NewReader("ab\nac\n"), false, failingWriter{}, &stderr)

		assert.Equal(t, exitIO, code)
		assert.Equal(t, "boxdiff: write result: disk full\n", stderr.String())
	})
}

func TestRunDebugLogging(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run(config{logLevel: "debug"}, strings.NewReader("ab\nac\n"), false, &stdout, &stderr)

	require.Equal(t, exitOK, code)
	assert.Equal(t, "['a', 1]\n", stdout.String())
	assert.Contains(t, stderr.String(), "read identifiers")
	assert.Contains(t, stderr.String(), "found matching pair")
}

func TestNewLoggerUnknownLevel(t *testing.T) {
	var buf bytes.Buffer
	l := newLogger(config{logLevel: "loud"}, &buf)

	assert.Contains(t, buf.String(), "unknown log level")
	assert.False(t, l.Core().Enabled(-1))
	assert.True(t, l.Core().Enabled(defaultLogLevel))
}

func TestReadIdentifiers(t *testing.T) {
	ids, err := readIdentifiers(strings.NewReader("abc\n  def  \n\nghi"))
	require.NoError(t, err)
	assert.Equal(t, []string{"abc", "def", "ghi"}, ids)
}
