package cli

import (
	"bufio"
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newReader(input string) *bufio.Reader {
	return bufio.NewReader(strings.NewReader(input))
}

func TestGetSimpleText(t *testing.T) {
	var out bytes.Buffer

	got, err := GetSimpleText(newReader("  Motor 04  \n"), "Machine ID:", &out)
	require.NoError(t, err)
	assert.Equal(t, "Motor 04", got)
	assert.Contains(t, out.String(), "Machine ID:")
}

func TestGetSimpleText_EOFAfterPartialLine(t *testing.T) {
	var out bytes.Buffer

	got, err := GetSimpleText(newReader("no newline"), "Value:", &out)
	require.NoError(t, err)
	assert.Equal(t, "no newline", got)
}

func TestGetSimpleText_EOFWithoutInput(t *testing.T) {
	var out bytes.Buffer

	_, err := GetSimpleText(newReader(""), "Value:", &out)
	require.Error(t, err)
}

func TestGetPassword_UsesSeam(t *testing.T) {
	orig := readPassword
	readPassword = func(fd int) ([]byte, error) { return []byte("s3cret"), nil }
	t.Cleanup(func() { readPassword = orig })

	var out bytes.Buffer
	pw, err := GetPassword(&out)
	require.NoError(t, err)
	assert.Equal(t, []byte("s3cret"), pw)
	assert.Contains(t, out.String(), "Enter password:")
}

func TestGetPassword_SeamError(t *testing.T) {
	orig := readPassword
	readPassword = func(fd int) ([]byte, error) { return nil, errors.New("no tty") }
	t.Cleanup(func() { readPassword = orig })

	var out bytes.Buffer
	_, err := GetPassword(&out)
	require.Error(t, err)
}

func TestGetMultiline_JoinsUntilEmptyLine(t *testing.T) {
	var out bytes.Buffer

	got, err := GetMultiline(newReader("first line\nsecond line\n\nignored\n"), "Notes:", &out)
	require.NoError(t, err)
	assert.Equal(t, "first line\nsecond line", got)
}

func TestGetMultiline_ImmediateEmptyLine(t *testing.T) {
	var out bytes.Buffer

	got, err := GetMultiline(newReader("\n"), "Notes:", &out)
	require.NoError(t, err)
	assert.Equal(t, "", got)
}

func TestGetLines(t *testing.T) {
	var out bytes.Buffer

	got, err := GetLines(newReader(" a.txt \nb.png\n\n"), "Paths:", &out)
	require.NoError(t, err)
	assert.Equal(t, []string{"a.txt", "b.png"}, got)
}

func TestGetLines_NoInput_ReturnsEmptyNonNil(t *testing.T) {
	var out bytes.Buffer

	got, err := GetLines(newReader("\n"), "Paths:", &out)
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Empty(t, got)
}

func TestGetChoice(t *testing.T) {
	options := []string{"Pretrim", "Trim", "Final", "Övrigt"}

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"by number", "2\n", "Trim"},
		{"by text", "Final\n", "Final"},
		{"text is case-insensitive", "pretrim\n", "Pretrim"},
		{"out-of-range number passes through", "9\n", "9"},
		{"unknown text passes through", "Paintshop\n", "Paintshop"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var out bytes.Buffer
			got, err := GetChoice(newReader(tc.input), "Place:", options, &out)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestGetChoice_PrintsNumberedOptions(t *testing.T) {
	var out bytes.Buffer

	_, err := GetChoice(newReader("1\n"), "Schedule:", []string{"Planning", "Done"}, &out)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "  1) Planning")
	assert.Contains(t, out.String(), "  2) Done")
}
