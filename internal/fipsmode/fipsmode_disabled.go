//go:build !fips

// Package fipsmode reports whether the binary was built for FIPS
// 140-3 operation. This file is compiled when the "fips" build tag is
// NOT specified: both the AES-SIV and AES-PMAC-SIV profiles are
// available, and self-test failures are reported rather than fatal.
package fipsmode

// Enabled reports whether the binary was built in FIPS mode.
func Enabled() bool { return false }
