package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"dpwhcli/pkg/contracts"
)

func TestRun_Version(t *testing.T) {
	var stdout, stderr bytes.Buffer

	code := run([]string{"-version"}, strings.NewReader(""), &stdout, &stderr)

	assert.Equal(t, 0, code)
	assert.Contains(t, stdout.String(), contracts.GetVersionString())
	assert.Empty(t, stderr.String())
}

func TestRun_BadFlag(t *testing.T) {
	var stdout, stderr bytes.Buffer

	code := run([]string{"-nope"}, strings.NewReader(""), &stdout, &stderr)

	assert.Equal(t, 2, code)
	assert.Contains(t, stderr.String(), "flag provided but not defined")
}

func TestRun_MissingConfigFile(t *testing.T) {
	var stdout, stderr bytes.Buffer

	code := run([]string{"-config", "does-not-exist.yaml"}, strings.NewReader(""), &stdout, &stderr)

	assert.Equal(t, 1, code)
	assert.Contains(t, stderr.String(), "failed to load configuration")
}
