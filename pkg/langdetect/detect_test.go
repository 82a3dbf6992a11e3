package langdetect_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/mdsite/pkg/langdetect"
)

func TestDetect(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		content  string
		expected string
	}{
		{"shebang bash", "#!/bin/bash\necho hello", "bash"},
		{"shebang python", "#!/usr/bin/env python3\nprint('hello')", "python"},
		{"go package", "package main\n\nfunc main() {}\n", "go"},
		{"html document", "<!DOCTYPE html>\n<html></html>", "html"},
		{"dockerfile", "FROM golang:1.25\nRUN go build", "dockerfile"},
		{"rust main", "fn main() {\n    println!(\"hi\");\n}", "rust"},
		{"python def", "def foo(x):\n    return x", "python"},
		{"sql select", "select * from users;", "sql"},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			lang, ok := langdetect.Detect(testCase.content)
			assert.True(t, ok)
			assert.Equal(t, testCase.expected, lang)
		})
	}
}

func TestDetect_Empty(t *testing.T) {
	t.Parallel()

	lang, ok := langdetect.Detect("   \n")
	assert.False(t, ok)
	assert.Empty(t, lang)
}

func TestNormalize(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "bash", langdetect.Normalize("Shell"))
	assert.Equal(t, "cpp", langdetect.Normalize("C++"))
	assert.Equal(t, "go", langdetect.Normalize("Go"))
	assert.Equal(t, "python", langdetect.Normalize(" python {.numberLines}"))
}
