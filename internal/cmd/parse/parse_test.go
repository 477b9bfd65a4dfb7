package parse

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/open-cli-collective/linkify-cli/pkg/segment"
)

func TestRunParse_Table(t *testing.T) {
	buf := new(bytes.Buffer)
	opts := &parseOptions{
		text:    "Check out https://ragestate.com with @djshadow!",
		noColor: true,
	}

	require.NoError(t, runParse(opts, buf))

	out := buf.String()
	assert.Contains(t, out, "KIND")
	assert.Contains(t, out, "url")
	assert.Contains(t, out, "https://ragestate.com")
	assert.Contains(t, out, "mention")
	assert.Contains(t, out, "djshadow")
}

func TestRunParse_JSON(t *testing.T) {
	buf := new(bytes.Buffer)
	opts := &parseOptions{
		text:    "#RAGE2025 is here",
		output:  "json",
		noColor: true,
	}

	require.NoError(t, runParse(opts, buf))

	var segs []struct {
		Kind    string `json:"kind"`
		Content string `json:"content"`
		Tag     string `json:"tag"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &segs))
	require.Len(t, segs, 2)
	assert.Equal(t, "hashtag", segs[0].Kind)
	assert.Equal(t, "#RAGE2025", segs[0].Content)
	assert.Equal(t, "RAGE2025", segs[0].Tag)
	assert.Equal(t, "text", segs[1].Kind)
}

func TestRunParse_Plain(t *testing.T) {
	buf := new(bytes.Buffer)
	opts := &parseOptions{
		text:    "@a #b",
		output:  "plain",
		noColor: true,
	}

	require.NoError(t, runParse(opts, buf))
	assert.Equal(t, "mention\t@a\ta\ntext\t \t\nhashtag\t#b\tb\n", buf.String())
}

func TestRunParse_InvalidFormat(t *testing.T) {
	opts := &parseOptions{text: "x", output: "xml"}

	err := runParse(opts, new(bytes.Buffer))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid output format")
}

func TestRunParse_MissingFile(t *testing.T) {
	opts := &parseOptions{file: "/nonexistent/post.txt", noColor: true}

	err := runParse(opts, new(bytes.Buffer))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read input file")
}

func TestSegTarget(t *testing.T) {
	assert.Equal(t, "", segTarget(segment.Segment{Kind: segment.KindText, Content: "x"}))
	assert.Equal(t, "dj", segTarget(segment.Segment{Kind: segment.KindMention, Username: "dj"}))
	assert.Equal(t, "rage", segTarget(segment.Segment{Kind: segment.KindHashtag, Tag: "rage"}))
	assert.Equal(t, "https://x.io", segTarget(segment.Segment{Kind: segment.KindURL, URL: "https://x.io"}))
}
