package textin

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRead_ArgWins(t *testing.T) {
	src := Source{Arg: "from arg", File: "ignored", Stdin: strings.NewReader("ignored")}

	text, err := src.Read()
	require.NoError(t, err)
	assert.Equal(t, "from arg", text)
}

func TestRead_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "post.txt")
	require.NoError(t, os.WriteFile(path, []byte("hello @dj\n"), 0600))

	text, err := Source{File: path}.Read()
	require.NoError(t, err)
	assert.Equal(t, "hello @dj", text)
}

func TestRead_FileMissing(t *testing.T) {
	_, err := Source{File: filepath.Join(t.TempDir(), "nope.txt")}.Read()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read input file")
}

func TestRead_Stdin(t *testing.T) {
	text, err := Source{Stdin: strings.NewReader("piped #rage\n")}.Read()
	require.NoError(t, err)
	assert.Equal(t, "piped #rage", text)
}

func TestRead_HTML(t *testing.T) {
	src := Source{
		Arg:  `<p>big night with <a href="https://ragestate.com">tickets</a> and <b>@dj</b></p>`,
		HTML: true,
	}

	text, err := src.Read()
	require.NoError(t, err)
	assert.Contains(t, text, "big night with")
	assert.Contains(t, text, "https://ragestate.com")
	assert.Contains(t, text, "@dj")
}
