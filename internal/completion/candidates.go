package completion

import "strings"

// BuildCandidates returns override (when non-blank) followed by FallbackModels,
// keeping the first occurrence of each identifier. The result is never empty.
func BuildCandidates(override string) []string {
	all := make([]string, 0, len(FallbackModels)+1)
	if o := strings.TrimSpace(override); o != "" {
		all = append(all, o)
	}
	all = append(all, FallbackModels...)

	seen := make(map[string]struct{}, len(all))
	out := make([]string, 0, len(all))
	for _, m := range all {
		if _, dup := seen[m]; dup {
			continue
		}
		seen[m] = struct{}{}
		out = append(out, m)
	}
	return out
}
