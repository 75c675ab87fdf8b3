// Copyright 2015 The Chromium Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package trace

import "math"

// Kind identifies which accessor of a Value is meaningful.
type Kind uint8

const (
	KindUint64 Kind = iota
	KindInt64
	KindFloat64
	KindBool
	KindString
)

// Value is a small tagged union holding one of the five argument types the
// recorder understands. It is copied by value and carries no allocation of
// its own; a Str Value borrows its backing string rather than copying it.
type Value struct {
	kind Kind
	bits uint64
	str  string
}

// U64 wraps an unsigned integer argument.
func U64(v uint64) Value { return Value{kind: KindUint64, bits: v} }

// I64 wraps a signed integer argument.
func I64(v int64) Value { return Value{kind: KindInt64, bits: uint64(v)} }

// F64 wraps a floating point argument.
func F64(v float64) Value { return Value{kind: KindFloat64, bits: math.Float64bits(v)} }

// Bool wraps a boolean argument.
func Bool(v bool) Value {
	var b uint64
	if v {
		b = 1
	}
	return Value{kind: KindBool, bits: b}
}

// Str wraps a string argument. The caller retains ownership of v; the
// recorder never copies or interns argument values, only span names.
func Str(v string) Value { return Value{kind: KindString, str: v} }

// Kind reports which accessor below is valid.
func (v Value) Kind() Kind { return v.kind }

// Uint64 returns the value assuming Kind() == KindUint64. Calling it on any
// other kind returns a reinterpretation of the stored bits, not an error:
// callers are expected to switch on Kind first.
func (v Value) Uint64() uint64 { return v.bits }

// Int64 returns the value assuming Kind() == KindInt64.
func (v Value) Int64() int64 { return int64(v.bits) }

// Float64 returns the value assuming Kind() == KindFloat64.
func (v Value) Float64() float64 { return math.Float64frombits(v.bits) }

// BoolValue returns the value assuming Kind() == KindBool.
func (v Value) BoolValue() bool { return v.bits != 0 }

// StringValue returns the value assuming Kind() == KindString.
func (v Value) StringValue() string { return v.str }

// Arg pairs an argument name with its value. The Name should be a string
// literal, like a span name. Unlike span names, argument names are not
// interned: each one is written inline as its debug annotation's name.
type Arg struct {
	Name  string
	Value Value
}

// Unit classifies the values recorded on a counter track, mirroring
// Perfetto's CounterDescriptor.Unit enum.
type Unit uint8

const (
	UnitUnspecified Unit = iota
	UnitSizeBytes
	UnitCount
	UnitDurationNS
	UnitDurationUS
	UnitDurationMS
	UnitDurationS
	UnitCustom
)

// CounterKind identifies whether a CounterValue holds an integer or a
// floating point sample.
type CounterKind uint8

const (
	CounterInt64 CounterKind = iota
	CounterFloat64
)

// CounterValue is a tagged union for counter-track samples: either an
// absolute integer level or a floating point one.
type CounterValue struct {
	kind CounterKind
	i    int64
	f    float64
}

// CounterI64 wraps an integer counter sample.
func CounterI64(v int64) CounterValue { return CounterValue{kind: CounterInt64, i: v} }

// CounterF64 wraps a floating point counter sample.
func CounterF64(v float64) CounterValue { return CounterValue{kind: CounterFloat64, f: v} }

// Kind reports which of Int64/Float64 below is valid.
func (c CounterValue) Kind() CounterKind { return c.kind }

func (c CounterValue) Int64() int64     { return c.i }
func (c CounterValue) Float64() float64 { return c.f }

// Handle is returned by Span and passed back to CloseSpan. It encodes the
// position of the begin record in the recording goroutine's buffer and is
// only valid on the goroutine that produced it.
type Handle struct {
	pos uint32
}

// TrackHandle identifies a counter track created by Builder.CreateCounterTrack.
// The zero value is never returned by CreateCounterTrack and is invalid.
type TrackHandle uint64
