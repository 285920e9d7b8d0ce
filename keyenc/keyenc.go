// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

// Package keyenc converts fixed-width integers and byte slices into the
// binary-comparable []byte form the art package's Tree expects as a key:
// lexicographic order on the encoded bytes must match the natural order of
// the original value.
//
// Unsigned integers are big-endian, which is already order-preserving.
// Signed integers are big-endian with the sign bit flipped, so the most
// negative value sorts first. Byte slices are the identity encoding.
//
// This package has a fixed, narrow contract and never imports the art
// package; art never imports it either. Callers that want integer or
// signed keys glue the two together themselves.
package keyenc

import (
	"encoding/binary"
	"errors"
)

// ErrKeyTooLong is returned by the Decode functions when the input length
// differs from the fixed width the decoder expects, whether shorter or
// longer.
var ErrKeyTooLong = errors.New("keyenc: key has the wrong length for this decoder")

// Uint8 encodes v as a single byte.
func Uint8(v uint8) []byte { return []byte{v} }

// DecodeUint8 decodes a single byte produced by Uint8.
func DecodeUint8(b []byte) (uint8, error) {
	if len(b) != 1 {
		return 0, ErrKeyTooLong
	}
	return b[0], nil
}

// Uint16 encodes v big-endian.
func Uint16(v uint16) []byte {
	b := make([]byte, 2)
	binary.BigEndian.PutUint16(b, v)
	return b
}

// DecodeUint16 decodes bytes produced by Uint16.
func DecodeUint16(b []byte) (uint16, error) {
	if len(b) != 2 {
		return 0, ErrKeyTooLong
	}
	return binary.BigEndian.Uint16(b), nil
}

// Uint32 encodes v big-endian.
func Uint32(v uint32) []byte {
	b := make([]byte, 4)
	binary.BigEndian.PutUint32(b, v)
	return b
}

// DecodeUint32 decodes bytes produced by Uint32.
func DecodeUint32(b []byte) (uint32, error) {
	if len(b) != 4 {
		return 0, ErrKeyTooLong
	}
	return binary.BigEndian.Uint32(b), nil
}

// Uint64 encodes v big-endian.
func Uint64(v uint64) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, v)
	return b
}

// DecodeUint64 decodes bytes produced by Uint64.
func DecodeUint64(b []byte) (uint64, error) {
	if len(b) != 8 {
		return 0, ErrKeyTooLong
	}
	return binary.BigEndian.Uint64(b), nil
}

// Int8 encodes v big-endian with the sign bit flipped, so that the
// encoded bytes order the same way the signed values do.
func Int8(v int8) []byte { return []byte{uint8(v) ^ 0x80} }

// DecodeInt8 decodes bytes produced by Int8.
func DecodeInt8(b []byte) (int8, error) {
	if len(b) != 1 {
		return 0, ErrKeyTooLong
	}
	return int8(b[0] ^ 0x80), nil
}

// Int16 encodes v big-endian with the sign bit flipped.
func Int16(v int16) []byte {
	b := make([]byte, 2)
	binary.BigEndian.PutUint16(b, uint16(v)^0x8000)
	return b
}

// DecodeInt16 decodes bytes produced by Int16.
func DecodeInt16(b []byte) (int16, error) {
	if len(b) != 2 {
		return 0, ErrKeyTooLong
	}
	return int16(binary.BigEndian.Uint16(b) ^ 0x8000), nil
}

// Int32 encodes v big-endian with the sign bit flipped.
func Int32(v int32) []byte {
	b := make([]byte, 4)
	binary.BigEndian.PutUint32(b, uint32(v)^0x80000000)
	return b
}

// DecodeInt32 decodes bytes produced by Int32.
func DecodeInt32(b []byte) (int32, error) {
	if len(b) != 4 {
		return 0, ErrKeyTooLong
	}
	return int32(binary.BigEndian.Uint32(b) ^ 0x80000000), nil
}

// Int64 encodes v big-endian with the sign bit flipped.
func Int64(v int64) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, uint64(v)^0x8000000000000000)
	return b
}

// DecodeInt64 decodes bytes produced by Int64.
func DecodeInt64(b []byte) (int64, error) {
	if len(b) != 8 {
		return 0, ErrKeyTooLong
	}
	return int64(binary.BigEndian.Uint64(b) ^ 0x8000000000000000), nil
}

// Bytes is the identity encoding: byte slices are already in their own
// binary-comparable form.
func Bytes(v []byte) []byte {
	out := make([]byte, len(v))
	copy(out, v)
	return out
}

// DecodeBytes is the identity decoding, returning a copy of b.
func DecodeBytes(b []byte) []byte {
	out := make([]byte, len(b))
	copy(out, b)
	return out
}
