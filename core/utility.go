package core

import (
	"fmt"
	"sort"
	"strings"
)

// safeString null-terminates a string for handoff to the native API.
func safeString(s string) string {
	if strings.HasSuffix(s, "\x00") {
		return s
	}
	return fmt.Sprintf("%s\x00", s)
}

// trimNul strips the trailing terminator for registry and blacklist
// lookups.
func trimNul(s string) string {
	return strings.TrimRight(s, "\x00")
}

// sortedCopy returns a sorted copy, so later blacklist checks can binary
// search without touching the caller's slice.
func sortedCopy(in []string) []string {
	if len(in) == 0 {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	sort.Strings(out)
	return out
}

// containsSorted binary-searches a pre-sorted list.
func containsSorted(list []string, s string) bool {
	at := sort.SearchStrings(list, s)
	return at < len(list) && list[at] == s
}

// splitList splits a space-separated option value, dropping empty parts.
func splitList(s string) []string {
	return strings.Fields(s)
}
