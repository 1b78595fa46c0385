package mixins

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDedent(t *testing.T) {
	for _, p := range []struct {
		name, text, expected string
	}{
		{"common indent", "  a\n  b\n", "a\nb\n"},
		{"uneven indent", "    a\n  b\n", "  a\nb\n"},
		{"leading newline and trailing indent", "\n\tHello\n\tBye\n\t", "\nHello\nBye\n"},
		{"blank line", "  a\n\n  b", "a\n\nb"},
		{"whitespace-only line", "  a\n   \n  b\n", "a\n\nb\n"},
		{"mixed tabs and spaces", "  a\n \tb\n", " a\n\tb\n"},
		{"no indent", "none\n  x\n", "none\n  x\n"},
		{"empty", "", ""},
	} {
		t.Run(p.name, func(t *testing.T) {
			assert.Equal(t, p.expected, Dedent(p.text))
		})
	}
}

func readFile(t *testing.T, path string) []byte {
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return data
}

func TestMakeFileDedentsAndCreatesDirectories(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "dir", "file.txt")
	name, err := MakeFile(path, `
		Hello
		  world
		`)
	require.NoError(t, err)
	assert.Equal(t, path, name)
	assert.Equal(t, "\nHello\n  world\n", string(readFile(t, path)))
}

func TestMakeFileWithNewline(t *testing.T) {
	path := filepath.Join(t.TempDir(), "crlf.txt")
	_, err := MakeFile(path, "  a\n  b\n", WithNewline("\r\n"))
	require.NoError(t, err)
	assert.Equal(t, "a\r\nb\r\n", string(readFile(t, path)))
}

func TestMakeFileWithoutDedent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "raw.txt")
	_, err := MakeFile(path, "  a\n  b\n", WithoutDedent())
	require.NoError(t, err)
	assert.Equal(t, "  a\n  b\n", string(readFile(t, path)))
}

func TestMakeFileWritesNonASCIIAsUTF8(t *testing.T) {
	path := filepath.Join(t.TempDir(), "unicode.txt")
	_, err := MakeFile(path, "ÿ and ∑\n")
	require.NoError(t, err)
	assert.Equal(t, []byte("\xc3\xbf and \xe2\x88\x91\n"), readFile(t, path))
}

func TestMakeBytesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.bin")
	data := []byte{0xff, 0xfe, 0x00, '\n', ' ', ' '}
	_, err := MakeBytesFile(path, data)
	require.NoError(t, err)
	assert.Equal(t, data, readFile(t, path))
}

func TestMakeFileInCurrentDirectory(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, WithDir(dir, func(string) {
		_, err := MakeFile("here.txt", "x")
		require.NoError(t, err)
	}))
	assert.Equal(t, "x", string(readFile(t, filepath.Join(dir, "here.txt"))))
}
