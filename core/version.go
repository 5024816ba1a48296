// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package core

// Versions reported by the driver. APIVersion is the external API
// version the implementation targets, DriverVersion is our own.
const (
	APIVersion    = 1<<22 | 1<<12 // 1.1.0
	DriverVersion = 1
)

// MakeVersion packs a version triple into the format used by the
// external API (10 bits major, 10 bits minor, 12 bits patch).
func MakeVersion(major, minor, patch uint32) uint32 {
	return major<<22 | minor<<12 | patch
}

// VersionMajor extracts the major number from a packed version.
func VersionMajor(v uint32) uint32 { return v >> 22 & 0x3ff }

// VersionMinor extracts the minor number from a packed version.
func VersionMinor(v uint32) uint32 { return v >> 12 & 0x3ff }

// VersionPatch extracts the patch number from a packed version.
func VersionPatch(v uint32) uint32 { return v & 0xfff }

// EnumerateInstanceVersion reports the packed API version of the
// implementation. It is one of the bootstrap entry points that
// resolve without an instance.
func EnumerateInstanceVersion() uint32 {
	return APIVersion
}
