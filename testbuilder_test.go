package jos

import (
	"encoding/binary"
	"encoding/hex"
	"math"
)

// streamBuilder assembles raw protocol bytes for test fixtures. It is not
// part of the package's public surface — this package decodes streams, it
// does not produce them — but hand-building every fixture byte-by-byte
// inline does not scale once fixtures need class descriptors and handles.
// This keeps the _test.go files about assertions, not byte arithmetic.
type streamBuilder struct {
	buf []byte
}

func newStreamBuilder() *streamBuilder {
	return &streamBuilder{}
}

func (b *streamBuilder) header() *streamBuilder {
	b.u16(StreamMagic)
	b.u16(StreamVersion)
	return b
}

func (b *streamBuilder) bytes(p ...byte) *streamBuilder {
	b.buf = append(b.buf, p...)
	return b
}

func (b *streamBuilder) u8(v byte) *streamBuilder {
	return b.bytes(v)
}

func (b *streamBuilder) u16(v uint16) *streamBuilder {
	var tmp [2]byte
	binary.BigEndian.PutUint16(tmp[:], v)
	return b.bytes(tmp[:]...)
}

func (b *streamBuilder) i16(v int16) *streamBuilder { return b.u16(uint16(v)) }

func (b *streamBuilder) u32(v uint32) *streamBuilder {
	var tmp [4]byte
	binary.BigEndian.PutUint32(tmp[:], v)
	return b.bytes(tmp[:]...)
}

func (b *streamBuilder) i32(v int32) *streamBuilder { return b.u32(uint32(v)) }

func (b *streamBuilder) f32(v float32) *streamBuilder {
	return b.u32(math.Float32bits(v))
}

func (b *streamBuilder) f64(v float64) *streamBuilder {
	var tmp [8]byte
	binary.BigEndian.PutUint64(tmp[:], math.Float64bits(v))
	return b.bytes(tmp[:]...)
}

func (b *streamBuilder) utf(s string) *streamBuilder {
	b.u16(uint16(len(s)))
	return b.bytes([]byte(s)...)
}

func (b *streamBuilder) hex8(h string) *streamBuilder {
	decoded, err := hex.DecodeString(h)
	if err != nil {
		panic(err)
	}
	return b.bytes(decoded...)
}

// tcString appends a complete inline TC_STRING content item.
func (b *streamBuilder) tcString(s string) *streamBuilder {
	b.u8(TcString)
	return b.utf(s)
}

func (b *streamBuilder) tcNull() *streamBuilder { return b.u8(TcNull) }

func (b *streamBuilder) tcReference(wire int32) *streamBuilder {
	b.u8(TcReference)
	return b.i32(wire)
}

func (b *streamBuilder) tcEndBlockData() *streamBuilder { return b.u8(TcEndblockdata) }

func (b *streamBuilder) tcBlockData(p []byte) *streamBuilder {
	b.u8(TcBlockdata)
	b.u8(byte(len(p)))
	return b.bytes(p...)
}

func (b *streamBuilder) bytesOf() []byte { return b.buf }

// fieldSpec describes one FieldDesc entry for classDesc and classDescWith.
type fieldSpec struct {
	typeCode  byte
	name      string
	className string // only used when typeCode is 'L' or '['
}

// classDesc appends a full TC_CLASSDESC content item: name, 8-byte UID,
// flags, field table, an empty annotation block (TC_ENDBLOCKDATA only),
// and a TC_NULL super descriptor. A test that needs annotation items or a
// superclass uses classDescWith instead; the common case — no extra
// annotations, no superclass — is covered directly.
func (b *streamBuilder) classDesc(name, uidHex string, flags byte, fields []fieldSpec) *streamBuilder {
	return b.classDescWith(name, uidHex, flags, fields, nil, nil)
}

// classDescWith is the general form: annotation is a caller-built sequence
// of already-encoded content items (each complete with its own type byte),
// terminated automatically with TC_ENDBLOCKDATA; super is the caller-built
// bytes for the super class-descriptor position (TC_NULL if nil).
func (b *streamBuilder) classDescWith(name, uidHex string, flags byte, fields []fieldSpec, annotation []byte, super []byte) *streamBuilder {
	b.u8(TcClassdesc)
	b.utf(name)
	b.hex8(uidHex)
	b.u8(flags)
	b.i16(int16(len(fields)))
	for _, f := range fields {
		b.u8(f.typeCode)
		b.utf(f.name)
		if f.typeCode == 'L' || f.typeCode == '[' {
			b.tcString(f.className)
		}
	}
	if annotation != nil {
		b.bytes(annotation...)
	}
	b.tcEndBlockData()
	if super != nil {
		b.bytes(super...)
	} else {
		b.tcNull()
	}
	return b
}
