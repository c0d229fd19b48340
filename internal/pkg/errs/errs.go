package errs

import (
	"fmt"
	"strings"

	cr "github.com/cockroachdb/errors"
)

// Wrap and Wrapf return nil for a nil cause so call sites can wrap unconditionally.
func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return cr.Wrap(err, msg)
}

func Wrapf(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return cr.Wrapf(err, format, args...)
}

func New(msg string) error {
	return cr.New(msg)
}

// Mark tags err with mark without changing its message. The mark is only
// visible to Is below, not to the standard library's errors.Is.
func Mark(err error, mark error) error {
	if err == nil {
		return mark
	}
	return cr.Mark(err, mark)
}

// Is reports whether err matches reference through wrapping or a Mark.
func Is(err, reference error) bool {
	return cr.Is(err, reference)
}

// ExtractStackLines renders err with its recorded stack and keeps at most
// maxLines non-empty lines, skipping Go runtime and test harness frames.
func ExtractStackLines(err error, maxLines int) []string {
	if err == nil {
		return nil
	}
	raw := strings.Split(fmt.Sprintf("%+v", err), "\n")
	lines := make([]string, 0, len(raw))
	for i := 0; i < len(raw); i++ {
		line := strings.TrimSpace(raw[i])
		if line == "" {
			continue
		}
		if isHarnessFrame(line) {
			// the file:line entry follows its function name
			i++
			continue
		}
		lines = append(lines, line)
		if maxLines > 0 && len(lines) == maxLines {
			break
		}
	}
	return lines
}

func isHarnessFrame(line string) bool {
	return strings.HasPrefix(line, "runtime.") || strings.HasPrefix(line, "testing.")
}
