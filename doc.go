// Copyright 2024 Charlie Vieth. All rights reserved.
// Use of this source code is governed by the MIT license.

// Package caseconv converts conventionally UTF-8 byte strings between
// lowercase, uppercase, titlecase, and case-folded forms using the Unicode
// default case conversion algorithm plus its locale-sensitive special cases.
//
// Input is not required to be valid UTF-8: ill-formed byte sequences are
// passed through byte-for-byte, which makes every conversion safe to apply
// to binary-safe string types.
//
// Conversions are available lazily through [Iter] or eagerly through
// [Convert] and [Append]. The read-only mapping tables are shared by all
// conversions and safe for concurrent use.
package caseconv

//go:generate go run -tags gen gen.go
