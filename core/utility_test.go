package core

import (
	"reflect"
	"testing"
)

func TestSafeString(t *testing.T) {
	if got := safeString("VK_KHR_surface"); got != "VK_KHR_surface\x00" {
		t.Errorf("safeString() = %q", got)
	}
	if got := safeString("VK_KHR_surface\x00"); got != "VK_KHR_surface\x00" {
		t.Errorf("safeString() double-terminated: %q", got)
	}
}

func TestTrimNul(t *testing.T) {
	if got := trimNul("VK_KHR_surface\x00"); got != "VK_KHR_surface" {
		t.Errorf("trimNul() = %q", got)
	}
	if got := trimNul("VK_KHR_surface"); got != "VK_KHR_surface" {
		t.Errorf("trimNul() = %q", got)
	}
}

func TestSortedCopy(t *testing.T) {
	in := []string{"c", "a", "b"}
	out := sortedCopy(in)
	if !reflect.DeepEqual(out, []string{"a", "b", "c"}) {
		t.Errorf("sortedCopy() = %v", out)
	}
	if !reflect.DeepEqual(in, []string{"c", "a", "b"}) {
		t.Error("input slice was reordered")
	}
	if sortedCopy(nil) != nil {
		t.Error("sortedCopy(nil) allocated")
	}
}

func TestContainsSorted(t *testing.T) {
	list := []string{"a", "c", "e"}
	for _, s := range list {
		if !containsSorted(list, s) {
			t.Errorf("containsSorted(%q) = false", s)
		}
	}
	for _, s := range []string{"", "b", "f"} {
		if containsSorted(list, s) {
			t.Errorf("containsSorted(%q) = true", s)
		}
	}
}

func TestSplitList(t *testing.T) {
	got := splitList("  a b   c ")
	if !reflect.DeepEqual(got, []string{"a", "b", "c"}) {
		t.Errorf("splitList() = %v", got)
	}
	if len(splitList("")) != 0 {
		t.Error("splitList of empty input produced entries")
	}
}
