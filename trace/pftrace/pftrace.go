// Copyright 2015 The Chromium Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package pftrace

import (
	"bufio"
	"io"
	"math"

	"google.golang.org/protobuf/encoding/protowire"
)

// Writer serializes a stream of TracePacket messages into the on-disk
// Perfetto trace format: a bare sequence of (field 1, LEN, bytes) groups,
// which is byte-for-byte the wire encoding of the top-level
// perfetto.protos.Trace message's repeated "packet" field. A consumer
// never needs to buffer the whole trace in memory to parse it, and
// neither do we to produce it.
type Writer struct {
	w   *bufio.Writer
	err error
}

// NewWriter wraps w. Callers should call Flush once all packets have been
// written.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: bufio.NewWriterSize(w, 64*1024)}
}

// WritePacket appends one already-serialized TracePacket payload to the
// stream, framed with the Trace.packet field tag and a varint length
// prefix. It returns the first error encountered across all calls to this
// Writer; once an error has occurred, subsequent calls are no-ops.
func (w *Writer) WritePacket(payload []byte) error {
	if w.err != nil {
		return w.err
	}
	var buf []byte
	buf = protowire.AppendTag(buf, 1, protowire.BytesType)
	buf = protowire.AppendBytes(buf, payload)
	if _, err := w.w.Write(buf); err != nil {
		w.err = err
	}
	return w.err
}

// Flush flushes any buffered output and returns the first error
// encountered by this Writer, including ones from earlier WritePacket
// calls.
func (w *Writer) Flush() error {
	if w.err != nil {
		return w.err
	}
	if err := w.w.Flush(); err != nil {
		w.err = err
	}
	return w.err
}

func appendNested(dst []byte, field int32, body []byte) []byte {
	dst = protowire.AppendTag(dst, protowire.Number(field), protowire.BytesType)
	return protowire.AppendBytes(dst, body)
}

func appendVarintField(dst []byte, field int32, v uint64) []byte {
	dst = protowire.AppendTag(dst, protowire.Number(field), protowire.VarintType)
	return protowire.AppendVarint(dst, v)
}

func appendStringField(dst []byte, field int32, s string) []byte {
	dst = protowire.AppendTag(dst, protowire.Number(field), protowire.BytesType)
	return protowire.AppendString(dst, s)
}

func appendDoubleField(dst []byte, field int32, v float64) []byte {
	dst = protowire.AppendTag(dst, protowire.Number(field), protowire.Fixed64Type)
	return protowire.AppendFixed64(dst, math.Float64bits(v))
}

func appendBoolField(dst []byte, field int32, v bool) []byte {
	var b uint64
	if v {
		b = 1
	}
	return appendVarintField(dst, field, b)
}

func appendIntField(dst []byte, field int32, v int64) []byte {
	return appendVarintField(dst, field, uint64(v))
}
