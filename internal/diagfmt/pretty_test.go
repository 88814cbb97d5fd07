package diagfmt

import (
	"bytes"
	"strings"
	"testing"

	"symck/internal/diag"
	"symck/internal/source"
)

// TestPathModes checks the various path-formatting modes.
func TestPathModes(t *testing.T) {
	fs := source.NewFileSet()

	content := []byte("VAR x : boolean\n")
	fileID := fs.AddVirtual("/home/user/project/src/test.smv", content)

	fs.SetBaseDir("/home/user/project")

	bag := diag.NewBag(10)
	d := diag.New(
		diag.SevError,
		diag.CheckUndefinedIdentifier,
		source.Span{File: fileID, Start: 8, End: 15},
		"undefined identifier y",
	)
	bag.Add(&d)

	tests := []struct {
		name     string
		mode     PathMode
		contains string
	}{
		{
			name:     "Absolute path",
			mode:     PathModeAbsolute,
			contains: "/home/user/project/src/test.smv",
		},
		{
			name:     "Relative path",
			mode:     PathModeRelative,
			contains: "src/test.smv",
		},
		{
			name:     "Basename only",
			mode:     PathModeBasename,
			contains: "test.smv",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			opts := PrettyOpts{
				Color:    false,
				Context:  1,
				PathMode: tt.mode,
			}

			Pretty(&buf, bag, fs, opts)
			output := buf.String()

			if !strings.Contains(output, tt.contains) {
				t.Errorf("expected output to contain %q, got:\n%s", tt.contains, output)
			}

			if !strings.Contains(output, "error") {
				t.Error("expected severity label in output")
			}
			if !strings.Contains(output, "CHK9001") {
				t.Error("expected CHK9001 code in output")
			}
			if !strings.Contains(output, "undefined identifier") {
				t.Error("expected error message in output")
			}
		})
	}
}

// TestPathModeAuto checks the automatic path-mode selection.
func TestPathModeAuto(t *testing.T) {
	fs := source.NewFileSet()

	tests := []struct {
		name     string
		path     string
		expected string
	}{
		{
			name:     "Short path - as is",
			path:     "test.smv",
			expected: "test.smv",
		},
		{
			name:     "Long absolute path - basename",
			path:     "/very/long/absolute/path/to/some/nested/directory/file.smv",
			expected: "file.smv",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			content := []byte("VAR x : boolean\n")
			fileID := fs.AddVirtual(tt.path, content)

			bag := diag.NewBag(10)
			d := diag.New(
				diag.SevWarning,
				diag.CheckWarningType,
				source.Span{File: fileID, Start: 8, End: 15},
				"suspicious construct",
			)
			bag.Add(&d)

			var buf bytes.Buffer
			opts := PrettyOpts{
				Color:    false,
				Context:  0,
				PathMode: PathModeAuto,
			}

			Pretty(&buf, bag, fs, opts)
			output := buf.String()

			if !strings.Contains(output, tt.expected) {
				t.Errorf("expected output to contain %q, got:\n%s", tt.expected, output)
			}
		})
	}
}

func TestPrettyNotes(t *testing.T) {
	fs := source.NewFileSet()
	content := []byte("VAR x : 0..10;\n")
	fileID := fs.AddVirtual("test.smv", content)

	bag := diag.NewBag(4)
	primary := source.Span{File: fileID, Start: 8, End: 13}
	d := diag.New(diag.SevWarning, diag.CheckInvalidRange, primary, "lower bound exceeds upper bound")

	noteSpan := source.Span{File: fileID, Start: 4, End: 5}
	d = d.WithNote(noteSpan, "declared here")

	bag.Add(&d)

	var buf bytes.Buffer
	opts := PrettyOpts{
		Color:     false,
		Context:   0,
		PathMode:  PathModeBasename,
		ShowNotes: true,
	}
	Pretty(&buf, bag, fs, opts)

	output := buf.String()

	if !strings.Contains(output, "note: test.smv:1:5") {
		t.Fatalf("expected note with location, got:\n%s", output)
	}
	if !strings.Contains(output, "declared here") {
		t.Fatalf("expected note message, got:\n%s", output)
	}
}

func TestPrettyMultiDiagnosticSeparation(t *testing.T) {
	fs := source.NewFileSet()
	content := []byte("VAR x : boolean;\nVAR y : 0..3;\n")
	fileID := fs.AddVirtual("test.smv", content)

	bag := diag.NewBag(4)
	d1 := diag.New(diag.SevError, diag.CheckUndefinedIdentifier, source.Span{File: fileID, Start: 4, End: 5}, "first")
	d2 := diag.New(diag.SevWarning, diag.CheckWarningType, source.Span{File: fileID, Start: 21, End: 22}, "second")
	bag.Add(&d1)
	bag.Add(&d2)

	var buf bytes.Buffer
	Pretty(&buf, bag, fs, PrettyOpts{Color: false, Context: 0, PathMode: PathModeBasename})

	output := buf.String()
	lines := strings.Split(output, "\n")
	blank := 0
	for _, l := range lines {
		if l == "" {
			blank++
		}
	}
	if blank == 0 {
		t.Fatalf("expected a blank line separating diagnostics, got:\n%s", output)
	}
}
