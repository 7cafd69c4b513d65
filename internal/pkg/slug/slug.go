// Package slug derives the stable document keys used for startups.
package slug

import "strings"

// Make lowercases name, collapses every run of characters outside [a-z0-9]
// into a single '-', and strips leading and trailing dashes.
//
// An empty result means the name had no usable characters.
func Make(name string) string {
	lower := strings.ToLower(name)

	var b strings.Builder
	b.Grow(len(lower))
	pendingDash := false
	for i := 0; i < len(lower); i++ {
		c := lower[i]
		if (c >= 'a' && c <= 'z') || (c >= '0' && c <= '9') {
			if pendingDash && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingDash = false
			b.WriteByte(c)
			continue
		}
		pendingDash = true
	}
	return b.String()
}
