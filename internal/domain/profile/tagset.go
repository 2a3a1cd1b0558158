package profile

import "strings"

// Tag-set fields (skills, target companies, specializations) are arrays edited
// through discrete add/remove operations. Both are idempotent: adding a value
// that is already present or removing one that is absent leaves the set
// unchanged.

func AddTag(set []string, value string) []string {
	value = strings.TrimSpace(value)
	if value == "" {
		return set
	}
	for _, v := range set {
		if v == value {
			return set
		}
	}
	return append(set, value)
}

func RemoveTag(set []string, value string) []string {
	out := set[:0:0]
	for _, v := range set {
		if v != value {
			out = append(out, v)
		}
	}
	return out
}

// DedupeTags drops blank entries and duplicates while keeping first-seen
// order. Drafts are deduplicated once more before persistence.
func DedupeTags(set []string) []string {
	seen := make(map[string]struct{}, len(set))
	out := make([]string, 0, len(set))
	for _, v := range set {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
