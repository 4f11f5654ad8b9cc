package ui_test

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/arthur-debert/gig/pkg/ui"
)

func TestFormatString(t *testing.T) {
	tests := []struct {
		name     string
		format   ui.Format
		expected string
	}{
		{name: "auto format", format: ui.FormatAuto, expected: "auto"},
		{name: "terminal format", format: ui.FormatTerminal, expected: "term"},
		{name: "text format", format: ui.FormatText, expected: "text"},
		{name: "unknown format", format: ui.Format(999), expected: "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.format.String())
		})
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected ui.Format
		wantErr  bool
	}{
		{name: "parse auto", input: "auto", expected: ui.FormatAuto},
		{name: "parse empty string as auto", input: "", expected: ui.FormatAuto},
		{name: "parse term", input: "term", expected: ui.FormatTerminal},
		{name: "parse terminal", input: "terminal", expected: ui.FormatTerminal},
		{name: "parse text", input: "text", expected: ui.FormatText},
		{name: "parse plain", input: "plain", expected: ui.FormatText},
		{name: "parse uppercase term", input: "TERM", expected: ui.FormatTerminal},
		{name: "parse json is rejected", input: "json", expected: ui.FormatAuto, wantErr: true},
		{name: "parse invalid format", input: "invalid", expected: ui.FormatAuto, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			format, err := ui.ParseFormat(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), "unknown format")
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.expected, format)
		})
	}
}

func TestDetectFormat(t *testing.T) {
	t.Run("NO_COLOR forces text", func(t *testing.T) {
		t.Setenv("NO_COLOR", "1")
		assert.Equal(t, ui.FormatText, ui.DetectFormat(os.Stderr))
	})

	t.Run("regular file is text", func(t *testing.T) {
		t.Setenv("NO_COLOR", "")
		f, err := os.CreateTemp(t.TempDir(), "out")
		if err != nil {
			t.Fatal(err)
		}
		defer f.Close()
		assert.Equal(t, ui.FormatText, ui.DetectFormat(f))
	})
}

func TestResolve(t *testing.T) {
	buf := &bytes.Buffer{}
	assert.Equal(t, ui.FormatTerminal, ui.Resolve(ui.FormatTerminal, buf))
	assert.Equal(t, ui.FormatText, ui.Resolve(ui.FormatText, buf))
	assert.Equal(t, ui.FormatText, ui.Resolve(ui.FormatAuto, buf), "non-file writers are never styled")
}
