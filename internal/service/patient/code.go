package patient

import (
	"fmt"
	"regexp"
	"strconv"
)

var codePattern = regexp.MustCompile(`^P(\d{4})-(\d{5})$`)

// FormatCode builds a patient file code such as "P2026-00042". The sequence
// restarts every calendar year and is scoped to a clinic.
func FormatCode(year, seq int) string {
	return fmt.Sprintf("P%d-%05d", year, seq)
}

// ParseCode extracts the year and sequence from a patient code. Returns
// false when the input does not look like a patient code.
func ParseCode(code string) (year, seq int, ok bool) {
	m := codePattern.FindStringSubmatch(code)
	if m == nil {
		return 0, 0, false
	}
	year, _ = strconv.Atoi(m[1])
	seq, _ = strconv.Atoi(m[2])
	return year, seq, true
}
