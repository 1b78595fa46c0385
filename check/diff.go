package check

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/pmezard/go-difflib/difflib"
)

const maxReprLength = 80

// repr formats a value for a failure message. Strings are single-quoted.
func repr(v interface{}) string {
	switch x := v.(type) {
	case nil:
		return "nil"
	case string:
		return quote(x)
	default:
		return fmt.Sprintf("%#v", v)
	}
}

func shortRepr(v interface{}) string {
	r := repr(v)
	if utf8.RuneCountInString(r) < maxReprLength {
		return r
	}
	return string([]rune(r)[:maxReprLength]) + " [truncated]..."
}

func quote(s string) string {
	q := strconv.Quote(s)
	if strings.Contains(s, "'") && !strings.Contains(s, `"`) {
		return q
	}
	body := q[1 : len(q)-1]
	body = strings.ReplaceAll(body, `\"`, `"`)
	body = strings.ReplaceAll(body, "'", `\'`)
	return "'" + body + "'"
}

// splitLines splits s after each newline, keeping the newlines.
func splitLines(s string) []string {
	lines := strings.SplitAfter(s, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// lineDiff renders a line-by-line comparison: "  " marks common lines, "- " lines only in a,
// "+ " lines only in b. Lines are written as they are, so a last line without a newline does
// not get one. In a replaced block the shorter side comes first, and no "?" hint lines are
// produced for similar lines.
func lineDiff(a, b string) string {
	aLines, bLines := splitLines(a), splitLines(b)
	if len(aLines) == 1 && strings.Trim(a, "\r\n") == a {
		aLines = []string{a + "\n"}
		bLines = []string{b + "\n"}
	}

	var out strings.Builder
	write := func(prefix string, lines []string) {
		for _, line := range lines {
			out.WriteString(prefix)
			out.WriteString(line)
		}
	}
	for _, op := range difflib.NewMatcher(aLines, bLines).GetOpCodes() {
		removed, added := aLines[op.I1:op.I2], bLines[op.J1:op.J2]
		switch op.Tag {
		case 'e':
			write("  ", removed)
		case 'd':
			write("- ", removed)
		case 'i':
			write("+ ", added)
		case 'r':
			if len(added) < len(removed) {
				write("+ ", added)
				write("- ", removed)
			} else {
				write("- ", removed)
				write("+ ", added)
			}
		}
	}
	return out.String()
}

// multiLineMessage is the failure message for two unequal strings.
func multiLineMessage(a, b string) string {
	return fmt.Sprintf("%s != %s\n%s", shortRepr(a), shortRepr(b), lineDiff(a, b))
}
