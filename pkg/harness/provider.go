/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: provider.go
Description: Fuzzed data provider for the explore-me harness. Slices a raw
fuzz buffer into the typed arguments the target expects, in the same way a
FuzzedDataProvider carves primitives off the front of an engine's byte stream.
*/

package harness

import (
	"encoding/binary"
)

// DataProvider consumes typed values from the front of a raw fuzz buffer.
// A short or exhausted buffer yields zero values, never an error: fuzzing
// engines feed arbitrary byte counts and the decode must be total.
type DataProvider struct {
	data []byte
}

// NewDataProvider wraps a raw fuzz buffer.
func NewDataProvider(data []byte) *DataProvider {
	return &DataProvider{data: data}
}

// ConsumeUint32 takes the next four bytes as a little-endian uint32.
// Fewer than four bytes remaining drains the buffer and returns 0.
func (p *DataProvider) ConsumeUint32() uint32 {
	if len(p.data) < 4 {
		p.data = nil
		return 0
	}
	v := binary.LittleEndian.Uint32(p.data[:4])
	p.data = p.data[4:]
	return v
}

// ConsumeRemainingAsString takes everything left in the buffer as a string.
func (p *DataProvider) ConsumeRemainingAsString() string {
	s := string(p.data)
	p.data = nil
	return s
}

// Remaining reports how many bytes are left unconsumed.
func (p *DataProvider) Remaining() int {
	return len(p.data)
}

// DecodeInvocation decodes a raw fuzz buffer into a target invocation:
// two little-endian uint32s followed by the remainder as a string.
func DecodeInvocation(data []byte) Invocation {
	p := NewDataProvider(data)
	return Invocation{
		A: p.ConsumeUint32(),
		B: p.ConsumeUint32(),
		C: p.ConsumeRemainingAsString(),
	}
}

// EncodeInvocation is the inverse of DecodeInvocation. Used to write corpus
// seed files that a replay run can decode back.
func EncodeInvocation(inv Invocation) []byte {
	buf := make([]byte, 8, 8+len(inv.C))
	binary.LittleEndian.PutUint32(buf[0:4], inv.A)
	binary.LittleEndian.PutUint32(buf[4:8], inv.B)
	return append(buf, inv.C...)
}
