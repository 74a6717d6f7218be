/*
 * Copyright (c) 2026-present Sigma-Soft, Ltd.
 */

package support

import (
	"cmp"
	"fmt"
	"strconv"
	"strings"
)

// Major version of platform. All compatibility modes have the same major version
const CompatibilityModeMajor = 8

const (
	compatibilityModePrefix  = "Version"
	compatibilityModeDontUse = "DontUse"
)

// Platform compatibility mode, e.g. `8.3.10`.
type CompatibilityMode struct {
	minor   uint
	version uint
}

// Mode used if compatibility is not used or mode is unknown: the latest `8.3.99`
var DefaultCompatibilityMode = CompatibilityMode{minor: 3, version: 99}

func NewCompatibilityMode(minor, version uint) CompatibilityMode {
	return CompatibilityMode{minor: minor, version: version}
}

// Parses compatibility mode from configuration value, e.g. `Version_8_3_10` or `Version8_1`.
//
// Returns DefaultCompatibilityMode for `DontUse` and for unknown values.
func ParseCompatibilityMode(s string) CompatibilityMode {
	if s == "" || strings.EqualFold(s, compatibilityModeDontUse) {
		return DefaultCompatibilityMode
	}
	rest, ok := strings.CutPrefix(s, compatibilityModePrefix)
	if !ok {
		return DefaultCompatibilityMode
	}

	parts := strings.Split(strings.TrimPrefix(rest, "_"), "_")
	if len(parts) < 2 || len(parts) > 3 || parts[0] != strconv.Itoa(CompatibilityModeMajor) {
		return DefaultCompatibilityMode
	}

	nums := make([]uint, 2)
	for i, p := range parts[1:] {
		n, err := strconv.ParseUint(p, 10, 32)
		if err != nil {
			return DefaultCompatibilityMode
		}
		nums[i] = uint(n)
	}
	return CompatibilityMode{minor: nums[0], version: nums[1]}
}

func (m CompatibilityMode) Major() uint   { return CompatibilityModeMajor }
func (m CompatibilityMode) Minor() uint   { return m.minor }
func (m CompatibilityMode) Version() uint { return m.version }

// Renders mode as `8.minor.version`
func (m CompatibilityMode) String() string {
	return fmt.Sprintf("%d.%d.%d", CompatibilityModeMajor, m.minor, m.version)
}

// Compares modes by minor, then by version.
func CompareCompatibilityModes(a, b CompatibilityMode) int {
	if c := cmp.Compare(a.minor, b.minor); c != 0 {
		return c
	}
	return cmp.Compare(a.version, b.version)
}
