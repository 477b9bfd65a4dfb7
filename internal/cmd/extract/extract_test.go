package extract

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/open-cli-collective/linkify-cli/pkg/segment"
)

func TestRunExtract_MentionsPlain(t *testing.T) {
	buf := new(bytes.Buffer)
	opts := &extractOptions{
		text:    "@a @bb @ccc",
		output:  "plain",
		noColor: true,
	}

	err := runExtract(opts, "USERNAME", segment.ExtractMentions, segment.UniqueMentions, buf)
	require.NoError(t, err)
	assert.Equal(t, "a\nbb\nccc\n", buf.String())
}

func TestRunExtract_Unique(t *testing.T) {
	buf := new(bytes.Buffer)
	opts := &extractOptions{
		text:    "#rage #rage #state",
		output:  "plain",
		unique:  true,
		noColor: true,
	}

	err := runExtract(opts, "TAG", segment.ExtractHashtags, segment.UniqueHashtags, buf)
	require.NoError(t, err)
	assert.Equal(t, "rage\nstate\n", buf.String())
}

func TestRunExtract_URLsJSON(t *testing.T) {
	buf := new(bytes.Buffer)
	opts := &extractOptions{
		text:    "go to https://ragestate.com/events. then https://x.io",
		output:  "json",
		noColor: true,
	}

	err := runExtract(opts, "URL", segment.ExtractURLs, segment.UniqueURLs, buf)
	require.NoError(t, err)

	var urls []string
	require.NoError(t, json.Unmarshal(buf.Bytes(), &urls))
	assert.Equal(t, []string{"https://ragestate.com/events", "https://x.io"}, urls)
}

func TestRunExtract_NoMatches(t *testing.T) {
	buf := new(bytes.Buffer)
	opts := &extractOptions{
		text:    "nothing here",
		output:  "plain",
		noColor: true,
	}

	err := runExtract(opts, "URL", segment.ExtractURLs, segment.UniqueURLs, buf)
	require.NoError(t, err)
	assert.Equal(t, "No matches.\n", buf.String())
}

func TestRunExtract_NoMatchesJSON(t *testing.T) {
	buf := new(bytes.Buffer)
	opts := &extractOptions{
		text:    "nothing here",
		output:  "json",
		noColor: true,
	}

	err := runExtract(opts, "URL", segment.ExtractURLs, segment.UniqueURLs, buf)
	require.NoError(t, err)
	assert.Equal(t, "[]\n", buf.String())
}

func TestRunExtract_InvalidFormat(t *testing.T) {
	opts := &extractOptions{text: "x", output: "yaml"}

	err := runExtract(opts, "URL", segment.ExtractURLs, segment.UniqueURLs, new(bytes.Buffer))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid output format")
}

func TestNewCmdExtract(t *testing.T) {
	cmd := NewCmdExtract()
	assert.Equal(t, "extract", cmd.Use)
	assert.Len(t, cmd.Commands(), 3)
}
