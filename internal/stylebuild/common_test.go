package isb

import (
	"testing"
)

func TestOutputFileName(t *testing.T) {
	tests := []struct {
		source string
		want   string
	}{
		{"a.scss", "a.css"},
		{"src/css/main.scss", "main.css"},
		{"bower_components/bootstrap/scss/bootstrap.scss", "bootstrap.css"},
		{"theme.sass", "theme.css"},
		{"no_ext", "no_ext.css"},
		{"dotted.name.scss", "dotted.name.css"},
	}

	for _, tt := range tests {
		t.Run(tt.source, func(t *testing.T) {
			if got := outputFileName(tt.source); got != tt.want {
				t.Errorf("outputFileName(%q) = %v, want %v", tt.source, got, tt.want)
			}
		})
	}
}

func TestIsPartial(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"src/_vars.scss", true},
		{"_mixins.scss", true},
		{"src/main.scss", false},
		{"src/_dir/main.scss", false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := isPartial(tt.path); got != tt.want {
				t.Errorf("isPartial(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}
