// SPDX-License-Identifier: MIT
// Package: random
//
// default.go: package-level functions over a shared, clock-seeded Source.

package random

// std is the process-wide Source used by the package-level functions.
var std = New()

// Default returns the shared Source behind the package-level functions.
func Default() *Source { return std }

// SetSeed reseeds the default Source.
func SetSeed(seed int64) { std.SetSeed(seed) }

// Seed returns the default Source's last seed.
func Seed() int64 { return std.Seed() }

// Uniform draws from [0, 1) on the default Source.
func Uniform() float64 { return std.Uniform() }

// UniformInt draws from [0, n) on the default Source.
func UniformInt(n int32) (int32, error) { return std.UniformInt(n) }

// UniformInt64 draws from [0, n) on the default Source without modulo bias.
func UniformInt64(n int64) (int64, error) { return std.UniformInt64(n) }

// UniformRange draws from [a, b) on the default Source.
func UniformRange(a, b float64) (float64, error) { return std.UniformRange(a, b) }
