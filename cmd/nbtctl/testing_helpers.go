package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/joshuapare/nbtkit/internal/testutil"
	"github.com/joshuapare/nbtkit/nbt"
	"github.com/joshuapare/nbtkit/pkg/nbtfile"
	"github.com/stretchr/testify/require"
)

// resetFlags restores every flag variable to its default.
func resetFlags() {
	verbose, quiet, jsonOut, noColor, noMmap = false, false, false, true, false
	treeDepth, treeMaxItems, treeNoTypes, treeCompact = 0, 16, false, false
	getShowType = false
	setType, setBackup, setCompression = "", false, ""
	exportFormat, exportOutput, exportPath, exportTypes, exportIndent = "snbt", "", "", false, 2
	convertCompression, convertLevel = "gzip", 0
	diffPath, diffFull = "", false
	validateLimits = "default"
}

// sampleFile saves root (testutil.Sample when nil) with compression c
// into a temporary directory and returns its path.
func sampleFile(t *testing.T, name string, root nbt.Tag, c nbtfile.Compression) string {
	t.Helper()
	if root == nil {
		root = testutil.Sample()
	}
	opts := nbtfile.DefaultOptions()
	opts.Compression = c
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, nbtfile.Save(path, root, opts))
	return path
}

// loadRoot reads path back for assertions.
func loadRoot(t *testing.T, path string) *nbtfile.File {
	t.Helper()
	opts := nbtfile.DefaultOptions()
	opts.NoMmap = true
	f, err := nbtfile.Load(path, opts)
	require.NoError(t, err)
	return f
}

// captureOutput captures stdout while running a function
func captureOutput(t *testing.T, fn func() error) (string, error) {
	t.Helper()

	origStdout := os.Stdout

	r, w, err := os.Pipe()
	require.NoError(t, err)

	os.Stdout = w

	// Drain concurrently so large outputs cannot block on a full pipe.
	done := make(chan []byte)
	go func() {
		var buf bytes.Buffer
		_, _ = buf.ReadFrom(r)
		done <- buf.Bytes()
	}()

	fnErr := fn()

	w.Close()
	os.Stdout = origStdout
	out := <-done
	r.Close()

	return string(out), fnErr
}

// assertJSON checks that output is valid JSON and returns it decoded
func assertJSON(t *testing.T, output string) map[string]any {
	t.Helper()
	var result map[string]any
	require.NoError(t, json.Unmarshal([]byte(output), &result), "output: %s", output)
	return result
}

// assertContains checks that output contains all expected strings
func assertContains(t *testing.T, output string, expected []string) {
	t.Helper()
	for _, want := range expected {
		if !strings.Contains(output, want) {
			t.Errorf("output missing expected string %q\nGot: %s", want, output)
		}
	}
}

// assertNotContains checks that output doesn't contain unwanted strings
func assertNotContains(t *testing.T, output string, unwanted []string) {
	t.Helper()
	for _, dont := range unwanted {
		if strings.Contains(output, dont) {
			t.Errorf("output contains unwanted string %q\nGot: %s", dont, output)
		}
	}
}
