package cli

import (
	"bufio"
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetSimpleText(t *testing.T) {
	var out bytes.Buffer
	reader := bufio.NewReader(strings.NewReader("a@b.c\n"))

	got, err := GetSimpleText(reader, "Enter email", &out)

	require.NoError(t, err)
	assert.Equal(t, "a@b.c", got)
	assert.Contains(t, out.String(), "Enter email")
}

func TestGetSimpleText_TrimsWhitespace(t *testing.T) {
	reader := bufio.NewReader(strings.NewReader("  spaced  \n"))
	got, err := GetSimpleText(reader, "x", io.Discard)
	require.NoError(t, err)
	assert.Equal(t, "spaced", got)
}

func TestGetSimpleText_PartialLineAtEOF(t *testing.T) {
	reader := bufio.NewReader(strings.NewReader("no-newline"))
	got, err := GetSimpleText(reader, "x", io.Discard)
	require.NoError(t, err)
	assert.Equal(t, "no-newline", got)
}

func TestGetSimpleText_EmptyInputAtEOF(t *testing.T) {
	reader := bufio.NewReader(strings.NewReader(""))
	_, err := GetSimpleText(reader, "x", io.Discard)
	assert.ErrorIs(t, err, io.EOF)
}

func TestGetPassword(t *testing.T) {
	orig := readPassword
	readPassword = func(fd int) ([]byte, error) { return []byte("secret"), nil }
	t.Cleanup(func() { readPassword = orig })

	var out bytes.Buffer
	pw, err := GetPassword(&out)

	require.NoError(t, err)
	assert.Equal(t, []byte("secret"), pw)
	assert.Contains(t, out.String(), "Enter password: ")
}

func TestWipe(t *testing.T) {
	b := []byte("secret")
	wipe(b)
	assert.Equal(t, make([]byte, len("secret")), b)
}
