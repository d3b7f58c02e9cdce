package prescription

import (
	"fmt"
	"strings"
)

// CheckAllergies compares a medication against the patient's recorded
// allergies. A warning is produced when an allergy term and any of the
// medication names contain each other, case-insensitively. Warnings are
// advisory; they never block prescribing.
func CheckAllergies(allergies []string, medicationNames ...string) []string {
	var warnings []string
	for _, allergy := range allergies {
		a := strings.ToLower(strings.TrimSpace(allergy))
		if a == "" {
			continue
		}
		for _, name := range medicationNames {
			n := strings.ToLower(strings.TrimSpace(name))
			if n == "" {
				continue
			}
			if strings.Contains(n, a) || strings.Contains(a, n) {
				warnings = append(warnings,
					fmt.Sprintf("medication %q matches recorded allergy %q", name, allergy))
				break
			}
		}
	}
	return warnings
}
