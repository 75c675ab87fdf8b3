// Copyright 2015 The Chromium Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package pftrace

import (
	"fmt"

	"google.golang.org/protobuf/encoding/protowire"
)

// DecodedPacket is a partial, field-number-indexed view of one
// TracePacket, produced by ReadPackets. It exists so tests can assert on
// the bytes a Writer actually produced instead of on Builder's internal
// state; it is not a general-purpose Perfetto trace reader and only
// understands the fields this package itself writes.
type DecodedPacket struct {
	Timestamp    uint64
	HasTimestamp bool
	SeqID        uint32
	EventType    int64
	HasEvent     bool
	TrackUUID    uint64
	NameIID      uint64
	IsTrackDescr bool
	IsInterned   bool
	IsClockSnap  bool
}

// ReadPackets splits a byte stream written by Writer back into its
// constituent TracePacket payloads.
func ReadPackets(data []byte) ([][]byte, error) {
	var packets [][]byte
	for len(data) > 0 {
		num, typ, n := protowire.ConsumeTag(data)
		if n < 0 {
			return nil, fmt.Errorf("pftrace: bad tag: %w", protowire.ParseError(n))
		}
		if num != 1 || typ != protowire.BytesType {
			return nil, fmt.Errorf("pftrace: unexpected field %d/%d at top level", num, typ)
		}
		data = data[n:]

		payload, n := protowire.ConsumeBytes(data)
		if n < 0 {
			return nil, fmt.Errorf("pftrace: bad length-delimited payload: %w", protowire.ParseError(n))
		}
		packets = append(packets, payload)
		data = data[n:]
	}
	return packets, nil
}

// DecodePacket walks the top-level fields of one TracePacket payload,
// plus the immediate fields of a nested TrackEvent if present.
func DecodePacket(payload []byte) (DecodedPacket, error) {
	var d DecodedPacket
	for len(payload) > 0 {
		num, typ, n := protowire.ConsumeTag(payload)
		if n < 0 {
			return d, fmt.Errorf("pftrace: bad tag: %w", protowire.ParseError(n))
		}
		payload = payload[n:]

		switch int32(num) {
		case fieldPacketTimestamp:
			v, n := protowire.ConsumeVarint(payload)
			if n < 0 {
				return d, fmt.Errorf("pftrace: bad timestamp: %w", protowire.ParseError(n))
			}
			d.Timestamp, d.HasTimestamp = v, true
			payload = payload[n:]
		case fieldPacketSeqID:
			v, n := protowire.ConsumeVarint(payload)
			if n < 0 {
				return d, fmt.Errorf("pftrace: bad seq id: %w", protowire.ParseError(n))
			}
			d.SeqID = uint32(v)
			payload = payload[n:]
		case fieldPacketTrackEvent:
			body, n := protowire.ConsumeBytes(payload)
			if n < 0 {
				return d, fmt.Errorf("pftrace: bad track_event: %w", protowire.ParseError(n))
			}
			if err := decodeTrackEvent(body, &d); err != nil {
				return d, err
			}
			d.HasEvent = true
			payload = payload[n:]
		case fieldPacketTrackDescr:
			_, n := protowire.ConsumeBytes(payload)
			if n < 0 {
				return d, fmt.Errorf("pftrace: bad track_descriptor: %w", protowire.ParseError(n))
			}
			d.IsTrackDescr = true
			payload = payload[n:]
		case fieldPacketInternedData:
			_, n := protowire.ConsumeBytes(payload)
			if n < 0 {
				return d, fmt.Errorf("pftrace: bad interned_data: %w", protowire.ParseError(n))
			}
			d.IsInterned = true
			payload = payload[n:]
		case fieldPacketClockSnapshot:
			_, n := protowire.ConsumeBytes(payload)
			if n < 0 {
				return d, fmt.Errorf("pftrace: bad clock_snapshot: %w", protowire.ParseError(n))
			}
			d.IsClockSnap = true
			payload = payload[n:]
		default:
			n := protowire.ConsumeFieldValue(num, typ, payload)
			if n < 0 {
				return d, fmt.Errorf("pftrace: bad field %d: %w", num, protowire.ParseError(n))
			}
			payload = payload[n:]
		}
	}
	return d, nil
}

func decodeTrackEvent(body []byte, d *DecodedPacket) error {
	for len(body) > 0 {
		num, typ, n := protowire.ConsumeTag(body)
		if n < 0 {
			return fmt.Errorf("pftrace: bad track_event tag: %w", protowire.ParseError(n))
		}
		body = body[n:]

		switch int32(num) {
		case fieldEventType:
			v, n := protowire.ConsumeVarint(body)
			if n < 0 {
				return fmt.Errorf("pftrace: bad event type: %w", protowire.ParseError(n))
			}
			d.EventType = int64(v)
			body = body[n:]
		case fieldEventTrackUUID:
			v, n := protowire.ConsumeVarint(body)
			if n < 0 {
				return fmt.Errorf("pftrace: bad track_uuid: %w", protowire.ParseError(n))
			}
			d.TrackUUID = v
			body = body[n:]
		case fieldEventNameIID:
			v, n := protowire.ConsumeVarint(body)
			if n < 0 {
				return fmt.Errorf("pftrace: bad name_iid: %w", protowire.ParseError(n))
			}
			d.NameIID = v
			body = body[n:]
		default:
			n := protowire.ConsumeFieldValue(num, typ, body)
			if n < 0 {
				return fmt.Errorf("pftrace: bad track_event field %d: %w", num, protowire.ParseError(n))
			}
			body = body[n:]
		}
	}
	return nil
}
