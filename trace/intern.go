// Copyright 2015 The Chromium Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package trace

import "unsafe"

// internedName is one entry of a recorder's string table, in first-sight
// order.
type internedName struct {
	id   uint64
	name string
}

// internTable assigns small integer ids to span names, keyed by
// the address of the string's backing data rather than its contents. This
// only yields a stable, collision-free id when name is a string literal
// held in the binary's static data section for the life of the process;
// callers that pass a dynamically constructed string will simply fail to
// dedupe (every call interns a fresh id), which is memory-safe but defeats
// the point, so Span documents the literal-name contract.
type internTable struct {
	ids   map[unsafe.Pointer]uint64
	names []internedName
	next  uint64
}

func newInternTable() *internTable {
	return &internTable{ids: make(map[unsafe.Pointer]uint64, 64)}
}

// intern returns the id for name, assigning a new one on first sight.
func (t *internTable) intern(name string) uint64 {
	if len(name) == 0 {
		return 0
	}
	ptr := unsafe.Pointer(unsafe.StringData(name))
	if id, ok := t.ids[ptr]; ok {
		return id
	}
	t.next++
	id := t.next
	t.ids[ptr] = id
	t.names = append(t.names, internedName{id: id, name: name})
	return id
}
