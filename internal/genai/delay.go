package genai

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Delay extraction and label formatting. Labels are the wire form the
// text-generation collaborator speaks: "1h", "30m", "1h30m".

var delayPatterns = []struct {
	re   *regexp.Regexp
	unit time.Duration
}{
	{regexp.MustCompile(`(\d+)\s*hours?`), time.Hour},
	{regexp.MustCompile(`(\d+)\s*hrs?`), time.Hour},
	{regexp.MustCompile(`(\d+)\s*minutes?`), time.Minute},
	{regexp.MustCompile(`(\d+)\s*mins?`), time.Minute},
	{regexp.MustCompile(`(\d+)\s*h\b`), time.Hour},
	{regexp.MustCompile(`(\d+)\s*m\b`), time.Minute},
}

var clockPattern = regexp.MustCompile(`(\d+)\s*:\s*(\d+)`)

// ExtractDelay scans free text for a duration expression and returns it
// normalized. It has no tense awareness: "worked for 2 hours" extracts
// 2h just like "back in 2 hours". Callers treat the result as a fallback
// hint only; the prompt's priority rules make the authoritative call.
func ExtractDelay(text string) (time.Duration, bool) {
	lower := strings.ToLower(text)

	for _, p := range delayPatterns {
		if m := p.re.FindStringSubmatch(lower); m != nil {
			n, err := strconv.Atoi(m[1])
			if err != nil || n <= 0 {
				continue
			}
			return time.Duration(n) * p.unit, true
		}
	}

	if m := clockPattern.FindStringSubmatch(lower); m != nil {
		hours, _ := strconv.Atoi(m[1])
		minutes, _ := strconv.Atoi(m[2])
		total := time.Duration(hours)*time.Hour + time.Duration(minutes)*time.Minute
		if total > 0 {
			return total, true
		}
	}

	return 0, false
}

// FormatDelay renders a duration as a delay label: "2h", "45m", "1h30m".
// Sub-minute durations round up to "1m".
func FormatDelay(d time.Duration) string {
	if d <= 0 {
		return "0m"
	}
	if d < time.Minute {
		return "1m"
	}
	hours := int(d / time.Hour)
	minutes := int((d % time.Hour) / time.Minute)
	switch {
	case hours > 0 && minutes > 0:
		return fmt.Sprintf("%dh%dm", hours, minutes)
	case hours > 0:
		return fmt.Sprintf("%dh", hours)
	default:
		return fmt.Sprintf("%dm", minutes)
	}
}

var labelPattern = regexp.MustCompile(`^(?:(\d+)h)?(?:(\d+)m)?$`)

// ParseDelay parses a delay label back into a duration.
func ParseDelay(label string) (time.Duration, error) {
	label = strings.TrimSpace(strings.ToLower(label))
	m := labelPattern.FindStringSubmatch(label)
	if m == nil || (m[1] == "" && m[2] == "") {
		return 0, fmt.Errorf("unrecognized delay label %q", label)
	}
	var d time.Duration
	if m[1] != "" {
		hours, _ := strconv.Atoi(m[1])
		d += time.Duration(hours) * time.Hour
	}
	if m[2] != "" {
		minutes, _ := strconv.Atoi(m[2])
		d += time.Duration(minutes) * time.Minute
	}
	if d == 0 {
		return 0, fmt.Errorf("zero delay label %q", label)
	}
	return d, nil
}
