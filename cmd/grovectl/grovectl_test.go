package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grovekit/grove/printer"
)

func TestTags(t *testing.T) {
	out, err := captureOutput(t, runTags)
	require.NoError(t, err)

	lines := strings.Fields(out)
	assert.Greater(t, len(lines), 100)
	assert.Contains(t, lines, "a")
	assert.Contains(t, lines, "html")
}

func TestSchema(t *testing.T) {
	out, err := captureOutput(t, func() error { return runSchema("a") })
	require.NoError(t, err)
	assert.Contains(t, out, "tag:        a")
	assert.Contains(t, out, "href")

	_, err = captureOutput(t, func() error { return runSchema("blink") })
	require.Error(t, err, "unknown tags should fail")
}

func TestCheck(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.json")
	require.NoError(t, os.WriteFile(good, []byte(`{
	  "global_attributes": ["id"],
	  "elements": [{"tag": "box", "closing_tag": true, "children": ["#text"]}]
	}`), 0o644))

	out, err := captureOutput(t, func() error { return runCheck(good) })
	require.NoError(t, err)
	assert.Contains(t, out, "ok (1 elements")

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("elements:\n  - tag: box\n    children: [nope]\n"), 0o644))
	_, err = captureOutput(t, func() error { return runCheck(bad) })
	require.Error(t, err, "dangling child references should fail the check")

	_, err = captureOutput(t, func() error { return runCheck(filepath.Join(dir, "x.txt")) })
	require.Error(t, err, "unsupported extensions should fail")
}

func TestRender_Demo(t *testing.T) {
	out, err := captureOutput(t, func() error { return runRender("") })
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "<!DOCTYPE html>\n<html lang=\"en\">"), "got %q", out)
	assert.Contains(t, out, "<title>grove demo</title>")
	assert.Contains(t, out, `<a href="https://html.spec.whatwg.org/">schema-validated</a>`)
}

func TestRender_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.txt")
	require.NoError(t, os.WriteFile(path, []byte("see https://example.com\n"), 0o644))

	out, err := captureOutput(t, func() error { return runRender(path) })
	require.NoError(t, err)
	assert.Contains(t, out, `<div class="soft_pre">`)
	assert.Contains(t, out, `<a href="https://example.com">`)
}

func TestRender_BadFormat(t *testing.T) {
	renderFormat = "hmtl"
	defer func() { renderFormat = "html" }()

	_, err := captureOutput(t, func() error { return runRender("") })
	require.ErrorIs(t, err, printer.ErrUnsupportedFormat)
}
