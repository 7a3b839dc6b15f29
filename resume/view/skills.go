package view

import "strings"

// ParseSkills converts the delimited skills text entry into the ordered
// skills sequence: split on comma, trim each piece, drop empty pieces. It is
// the inverse of RenderSkills for sequences of non-empty trimmed strings
// without literal commas; inputs outside that shape are lossy by design.
func ParseSkills(text string) []string {
	parts := strings.Split(text, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// RenderSkills converts the skills sequence back into the text entry.
func RenderSkills(skills []string) string {
	return strings.Join(skills, ", ")
}
