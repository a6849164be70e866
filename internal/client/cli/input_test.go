package cli

import (
	"bufio"
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetSimpleText(t *testing.T) {
	var out bytes.Buffer
	reader := bufio.NewReader(strings.NewReader("Sonnenhof\n"))

	text, err := GetSimpleText(reader, "Enter farm name", &out)
	require.NoError(t, err)
	require.Equal(t, "Sonnenhof", text)
	require.Equal(t, "Enter farm name\n> ", out.String())
}

func TestGetSimpleText_TrimsWhitespace(t *testing.T) {
	reader := bufio.NewReader(strings.NewReader("  lena  \n"))

	text, err := GetSimpleText(reader, "Enter username", io.Discard)
	require.NoError(t, err)
	require.Equal(t, "lena", text)
}

func TestGetSimpleText_PartialLineAtEOF(t *testing.T) {
	reader := bufio.NewReader(strings.NewReader("lena"))

	text, err := GetSimpleText(reader, "Enter username", io.Discard)
	require.NoError(t, err)
	require.Equal(t, "lena", text)
}

func TestGetSimpleText_EOF(t *testing.T) {
	reader := bufio.NewReader(strings.NewReader(""))

	_, err := GetSimpleText(reader, "Enter username", io.Discard)
	require.ErrorIs(t, err, io.EOF)
}

func TestGetPassword(t *testing.T) {
	saved := readPassword
	readPassword = func(fd int) ([]byte, error) { return []byte("secret123"), nil }
	t.Cleanup(func() { readPassword = saved })

	var out bytes.Buffer
	pw, err := GetPassword(&out)
	require.NoError(t, err)
	require.Equal(t, []byte("secret123"), pw)
	require.Contains(t, out.String(), "Enter password: ")
}

func TestGetPassword_ReadError(t *testing.T) {
	saved := readPassword
	boom := errors.New("not a terminal")
	readPassword = func(fd int) ([]byte, error) { return nil, boom }
	t.Cleanup(func() { readPassword = saved })

	_, err := GetPassword(io.Discard)
	require.ErrorIs(t, err, boom)
}
