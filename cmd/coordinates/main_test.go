package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRunDefault(t *testing.T) {
	var stdout, stderr bytes.Buffer

	assert.EqualValues(t, 0, run(nil, &stdout, &stderr))
	assert.Contains(t, stdout.String(), "Coordinates: (0,0)\n")
	assert.Contains(t, stdout.String(), "Coordinates: (9,81)\n")
	assert.Empty(t, stderr.String())
}

func TestRunReportsErrors(t *testing.T) {
	file := filepath.Join(t.TempDir(), "short.yaml")
	assert.Nil(t, os.WriteFile(file, []byte("ys: [1]\n"), 0600))

	var stdout, stderr bytes.Buffer

	assert.EqualValues(t, 1, run([]string{"-config", file}, &stdout, &stderr))
	assert.NotContains(t, stdout.String(), "Coordinates:")
	assert.Contains(t, stderr.String(), "coordinates length mismatch")

	stdout.Reset()
	stderr.Reset()

	missing := filepath.Join(t.TempDir(), "missing.yaml")
	assert.EqualValues(t, 1, run([]string{"-config", missing}, &stdout, &stderr))
	assert.Empty(t, stdout.String())
	assert.True(t, strings.HasPrefix(stderr.String(), "coordinates: load config"))
}

func TestRunBadFlag(t *testing.T) {
	var stdout, stderr bytes.Buffer

	assert.EqualValues(t, 2, run([]string{"-nope"}, &stdout, &stderr))
	assert.NotEmpty(t, stderr.String())
}
