package filerange

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test Plan for line-range I/O:
// - Read a middle range of a file with terminators preserved
// - Write-then-read round trip is byte identical
// - Defaults: zero bounds mean first/last line
// - Validation fails before any I/O (invalid bounds on a missing file)
// - Replace splices content and shifts the following lines
// - Replace clamps an out-of-range start to append at end of file
// - Missing files and invalid UTF-8 surface as wrapped errors

func writeFixture(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fixture.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestRead_MiddleRange(t *testing.T) {
	t.Parallel()

	path := writeFixture(t, "one\ntwo\nthree\nfour\nfive\n")

	got, err := Read(path, 2, 4)
	require.NoError(t, err)
	assert.Equal(t, "two\nthree\nfour\n", got)
}

func TestRead_DefaultsToWholeFile(t *testing.T) {
	t.Parallel()

	content := "alpha\nbeta\ngamma"
	path := writeFixture(t, content)

	got, err := Read(path, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, content, got)
}

func TestRead_RoundTripAfterWrite(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "round.txt")
	content := "uno\ndos\ntres\n"
	require.NoError(t, Write(path, content))

	got, err := Read(path, 1, 3)
	require.NoError(t, err)
	assert.Equal(t, content, got)
}

func TestRead_EndClampsToLastLine(t *testing.T) {
	t.Parallel()

	path := writeFixture(t, "a\nb\n")

	got, err := Read(path, 1, 99)
	require.NoError(t, err)
	assert.Equal(t, "a\nb\n", got)
}

func TestRead_InvalidBoundsFailBeforeIO(t *testing.T) {
	t.Parallel()

	// The path does not exist; validation must reject the range first.
	missing := filepath.Join(t.TempDir(), "missing.txt")

	_, err := Read(missing, 5, 2)
	require.ErrorIs(t, err, ErrInvalidRange)

	_, err = Read(missing, -1, 3)
	require.ErrorIs(t, err, ErrInvalidRange)

	err = Replace(missing, "x\n", 4, 1)
	require.ErrorIs(t, err, ErrInvalidRange)
}

func TestRead_MissingFile(t *testing.T) {
	t.Parallel()

	_, err := Read(filepath.Join(t.TempDir(), "missing.txt"), 1, 2)
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestRead_InvalidUTF8(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "binary.dat")
	require.NoError(t, os.WriteFile(path, []byte{0xff, 0xfe, 0x00, 0x80}, 0o644))

	_, err := Read(path, 0, 0)
	require.ErrorIs(t, err, ErrInvalidEncoding)
}

func TestReplace_SplicesAndShifts(t *testing.T) {
	t.Parallel()

	path := writeFixture(t, "one\ntwo\nthree\nfour\nfive\n")

	require.NoError(t, Replace(path, "TWO\n", 2, 3))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "one\nTWO\nfour\nfive\n", string(data))

	// Replacing 2 lines with 1 shrinks the file by exactly 1 line.
	assert.Equal(t, 4, strings.Count(string(data), "\n"))
}

func TestReplace_GrowsLineCount(t *testing.T) {
	t.Parallel()

	path := writeFixture(t, "a\nb\nc\n")

	require.NoError(t, Replace(path, "x\ny\nz\n", 2, 2))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "a\nx\ny\nz\nc\n", string(data))
}

func TestReplace_StartPastEOFAppends(t *testing.T) {
	t.Parallel()

	path := writeFixture(t, "a\nb\n")

	require.NoError(t, Replace(path, "tail\n", 10, 12))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "a\nb\ntail\n", string(data))
}

func TestReplace_WholeFileByDefault(t *testing.T) {
	t.Parallel()

	path := writeFixture(t, "a\nb\nc\n")

	require.NoError(t, Replace(path, "only\n", 0, 0))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "only\n", string(data))
}

func TestReplace_EmptyFileAppends(t *testing.T) {
	t.Parallel()

	path := writeFixture(t, "")

	require.NoError(t, Replace(path, "first\n", 0, 0))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "first\n", string(data))
}
