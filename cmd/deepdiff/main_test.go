package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/neilotoole/slogt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amp-labs/deepdiff/diff"
	"github.com/amp-labs/deepdiff/yamldiff"
)

func writeDoc(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestRun_EqualDocuments(t *testing.T) {
	t.Parallel()

	doc := "name: checkout\nreplicas: 3\n"
	left := writeDoc(t, "left.yaml", doc)
	right := writeDoc(t, "right.yaml", doc)

	var out bytes.Buffer

	err := run(&out, slogt.New(t), left, right, "text")
	require.NoError(t, err)
	assert.Empty(t, out.String())
}

func TestRun_DivergentDocuments(t *testing.T) {
	t.Parallel()

	left := writeDoc(t, "left.yaml", "replicas: 3\n")
	right := writeDoc(t, "right.yaml", "replicas: 5\n")

	var out bytes.Buffer

	err := run(&out, slogt.New(t), left, right, "text")
	require.ErrorIs(t, err, errDocumentsDiffer)
	assert.Contains(t, out.String(), "left value = '3', right value = '5'")
}

func TestRun_JSONFormat(t *testing.T) {
	t.Parallel()

	left := writeDoc(t, "left.yaml", "replicas: 3\n")
	right := writeDoc(t, "right.yaml", "replicas: 5\n")

	var out bytes.Buffer

	err := run(&out, slogt.New(t), left, right, "json")
	require.ErrorIs(t, err, errDocumentsDiffer)

	var results []diff.Divergence
	require.NoError(t, json.Unmarshal(out.Bytes(), &results))
	require.Len(t, results, 1)
	assert.Equal(t, diff.Equality, results[0].Kind)
}

func TestRun_JSONFormatEqualDocuments(t *testing.T) {
	t.Parallel()

	doc := "name: checkout\n"
	left := writeDoc(t, "left.yaml", doc)
	right := writeDoc(t, "right.yaml", doc)

	var out bytes.Buffer

	err := run(&out, slogt.New(t), left, right, "json")
	require.NoError(t, err)
	assert.JSONEq(t, "[]", out.String())
}

func TestRun_MissingFile(t *testing.T) {
	t.Parallel()

	right := writeDoc(t, "right.yaml", "a: 1\n")

	var out bytes.Buffer

	err := run(&out, slogt.New(t), filepath.Join(t.TempDir(), "absent.yaml"), right, "text")
	require.Error(t, err)
	assert.NotErrorIs(t, err, errDocumentsDiffer)
}

func TestRun_MalformedDocument(t *testing.T) {
	t.Parallel()

	left := writeDoc(t, "left.yaml", "a: [unclosed\n")
	right := writeDoc(t, "right.yaml", "a: 1\n")

	var out bytes.Buffer

	err := run(&out, slogt.New(t), left, right, "text")
	require.ErrorIs(t, err, yamldiff.ErrMalformedDocument)
}

func TestRootCommand_RejectsInvalidFormat(t *testing.T) {
	t.Parallel()

	left := writeDoc(t, "left.yaml", "a: 1\n")
	right := writeDoc(t, "right.yaml", "a: 1\n")

	var out bytes.Buffer

	cmd := newRootCommand(&out)
	cmd.SetArgs([]string{left, right, "--format", "xml"})
	cmd.SetOut(&out)
	cmd.SetErr(&out)

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid format")
}

func TestRootCommand_RequiresTwoArgs(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer

	cmd := newRootCommand(&out)
	cmd.SetArgs([]string{"only-one.yaml"})
	cmd.SetOut(&out)
	cmd.SetErr(&out)

	require.Error(t, cmd.Execute())
}
