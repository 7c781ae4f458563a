// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2024 The Flokicoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"encoding/json"
	"errors"
	"strconv"
)

// Envelope is the outer datagram every peer message is wrapped in:
// {type, from, data}, where data is either null or a JSON string holding
// the payload's own canonical JSON - the "double encoding" §6 describes.
type Envelope struct {
	Type MsgType `json:"type"`
	From string  `json:"from"`
	Data *string `json:"data"`
}

// NewEnvelope builds an Envelope carrying payload, marshalled as the
// canonical indent-4 JSON string nested inside the outer object. A nil
// payload produces a null data field (used by MsgNewPeerAck and a
// not-found MsgBlock reply).
func NewEnvelope(t MsgType, from string, payload interface{}) (*Envelope, error) {
	if payload == nil {
		return &Envelope{Type: t, From: from}, nil
	}
	b, err := json.MarshalIndent(payload, "", "    ")
	if err != nil {
		return nil, err
	}
	s := string(b)
	return &Envelope{Type: t, From: from, Data: &s}, nil
}

// NewIntEnvelope builds an Envelope whose payload is a bare integer, the
// shape MsgGetBlock's length argument takes.
func NewIntEnvelope(t MsgType, from string, n int64) *Envelope {
	s := strconv.FormatInt(n, 10)
	return &Envelope{Type: t, From: from, Data: &s}
}

// Encode renders e as canonical indent-4 JSON.
func (e *Envelope) Encode() ([]byte, error) {
	return json.MarshalIndent(e, "", "    ")
}

// Decode parses b into an Envelope.
func Decode(b []byte) (*Envelope, error) {
	var e Envelope
	if err := json.Unmarshal(b, &e); err != nil {
		return nil, err
	}
	return &e, nil
}

// ErrNullPayload is returned by DecodePayload/DecodeInt when the envelope's
// data field is null.
var ErrNullPayload = errors.New("wire: envelope has a null payload")

// DecodePayload unmarshals e's data field (itself a JSON string) into v.
func (e *Envelope) DecodePayload(v interface{}) error {
	if e.Data == nil {
		return ErrNullPayload
	}
	return json.Unmarshal([]byte(*e.Data), v)
}

// DecodeInt parses e's data field as a bare integer, the MsgGetBlock shape.
func (e *Envelope) DecodeInt() (int64, error) {
	if e.Data == nil {
		return 0, ErrNullPayload
	}
	return strconv.ParseInt(*e.Data, 10, 64)
}
