package mixins

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

type fileOptions struct {
	newline  string
	noDedent bool
}

// FileOption changes how MakeFile turns text into file content.
type FileOption func(*fileOptions)

// WithNewline makes MakeFile write nl in place of each "\n", after dedenting.
func WithNewline(nl string) FileOption {
	return func(o *fileOptions) { o.newline = nl }
}

// WithoutDedent makes MakeFile write the text's indentation as given.
func WithoutDedent() FileOption {
	return func(o *fileOptions) { o.noDedent = true }
}

// MakeFile writes text to the file called name, creating parent directories as needed, and
// returns name. The text is dedented first (see Dedent), so it can be written as an indented
// raw string literal.
func MakeFile(name, text string, opts ...FileOption) (string, error) {
	var o fileOptions
	for _, opt := range opts {
		opt(&o)
	}
	if !o.noDedent {
		text = Dedent(text)
	}
	if o.newline != "" {
		text = strings.ReplaceAll(text, "\n", o.newline)
	}
	return MakeBytesFile(name, []byte(text))
}

// MakeBytesFile writes data to the file called name, creating parent directories as needed, and
// returns name.
func MakeBytesFile(name string, data []byte) (string, error) {
	if dir := filepath.Dir(name); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return "", fmt.Errorf("creating directory for %s: %w", name, err)
		}
	}
	if err := os.WriteFile(name, data, 0644); err != nil {
		return "", fmt.Errorf("writing %s: %w", name, err)
	}
	return name, nil
}

// Dedent removes whitespace that is common to the start of every line of text. Lines that are
// only spaces and tabs are made empty and don't count toward the common prefix.
func Dedent(text string) string {
	lines := strings.SplitAfter(text, "\n")
	margin, haveMargin := "", false
	for i, line := range lines {
		content := strings.TrimSuffix(line, "\n")
		if strings.Trim(content, " \t") == "" {
			lines[i] = line[len(content):]
			continue
		}
		indent := content[:len(content)-len(strings.TrimLeft(content, " \t"))]
		switch {
		case !haveMargin:
			margin, haveMargin = indent, true
		case strings.HasPrefix(indent, margin):
		case strings.HasPrefix(margin, indent):
			margin = indent
		default:
			n := 0
			for n < len(margin) && n < len(indent) && margin[n] == indent[n] {
				n++
			}
			margin = margin[:n]
		}
	}
	if margin == "" {
		return strings.Join(lines, "")
	}
	for i, line := range lines {
		lines[i] = strings.TrimPrefix(line, margin)
	}
	return strings.Join(lines, "")
}
