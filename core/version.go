package core

import "fmt"

// Version encodes an API version as major*100 + minor*10, with an
// orthogonal flag marking the ES/Web profile. Ordering is purely numeric
// on the major/minor encoding; the profile flag never participates.
type Version int32

// versionESMask marks the ES/Web profile. It sits above the numeric range
// so that masking it out restores the plain encoding.
const versionESMask Version = 0x10000

// Known API versions.
const (
	// VersionNone is the unspecified-version sentinel. It sorts above
	// every real version, so "still below the next threshold" loops
	// terminate against it.
	VersionNone Version = 0xFFFF

	Vk10 Version = 100
	Vk11 Version = 110
	Vk12 Version = 120
)

// MakeVersion builds a Version value from major and minor numbers.
func MakeVersion(major, minor int) Version {
	return Version(major*100 + minor*10)
}

// MakeVersionES builds an ES/Web-profile Version from major and minor
// numbers.
func MakeVersionES(major, minor int) Version {
	return MakeVersion(major, minor) | versionESMask
}

// Release returns the major and minor numbers, masking out the profile
// flag first. It is the exact inverse of MakeVersion for every
// representable pair.
func (v Version) Release() (major, minor int) {
	n := int(v &^ versionESMask)
	return n / 100, (n % 100) / 10
}

// IsES tells whether the version carries the ES/Web profile flag.
func (v Version) IsES() bool {
	return v&versionESMask != 0
}

// AtLeast reports whether v is at least other. Comparison ignores the
// profile flag on both sides, otherwise ES and desktop versions with equal
// numbers would never match.
func (v Version) AtLeast(other Version) bool {
	return v&^versionESMask >= other&^versionESMask
}

func (v Version) String() string {
	if v&^versionESMask == VersionNone {
		return "None"
	}
	major, minor := v.Release()
	if v.IsES() {
		return fmt.Sprintf("ES %d.%d", major, minor)
	}
	return fmt.Sprintf("%d.%d", major, minor)
}

// VersionFromPacked converts the native 22/12/12-bit packed representation
// reported by the driver. The patch component is dropped.
func VersionFromPacked(raw uint32) Version {
	return MakeVersion(int(raw>>22), int((raw>>12)&0x3ff))
}

// Packed converts back into the native packed representation for the
// creation-parameter structs.
func (v Version) Packed() uint32 {
	if v&^versionESMask == VersionNone {
		return ^uint32(0)
	}
	major, minor := v.Release()
	return uint32(major)<<22 | uint32(minor)<<12
}

func minVersion(a, b Version) Version {
	if a.AtLeast(b) {
		return b
	}
	return a
}
