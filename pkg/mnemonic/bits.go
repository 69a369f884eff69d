package mnemonic

import (
	"fmt"
	"strings"
)

// Bits is a big-endian bit string. Bit 0 is the most significant bit of
// the first byte. The zero value is an empty bit string ready to use.
type Bits struct {
	buf []byte
	n   int
}

// BitsFromBytes returns the bits of b, most significant bit first.
func BitsFromBytes(b []byte) Bits {
	buf := make([]byte, len(b))
	copy(buf, b)
	return Bits{buf: buf, n: len(b) * 8}
}

// Len returns the number of bits.
func (b Bits) Len() int {
	return b.n
}

// At reports whether bit i is set.
func (b Bits) At(i int) bool {
	if i < 0 || i >= b.n {
		panic(fmt.Sprintf("mnemonic: bit index %d out of range [0,%d)", i, b.n))
	}
	return b.buf[i/8]&(0x80>>(i%8)) != 0
}

// AppendBit appends a single bit.
func (b *Bits) AppendBit(v bool) {
	if b.n%8 == 0 {
		b.buf = append(b.buf, 0)
	}
	if v {
		b.buf[b.n/8] |= 0x80 >> (b.n % 8)
	} else {
		b.buf[b.n/8] &^= 0x80 >> (b.n % 8)
	}
	b.n++
}

// Append appends the low width bits of v, most significant first.
func (b *Bits) Append(v uint64, width int) {
	for i := width - 1; i >= 0; i-- {
		b.AppendBit(v>>uint(i)&1 == 1)
	}
}

// Concat returns b followed by o. Neither operand is modified.
func (b Bits) Concat(o Bits) Bits {
	out := Bits{buf: make([]byte, 0, (b.n+o.n+7)/8)}
	for i := 0; i < b.n; i++ {
		out.AppendBit(b.At(i))
	}
	for i := 0; i < o.n; i++ {
		out.AppendBit(o.At(i))
	}
	return out
}

// Slice returns a copy of bits [from, to).
func (b Bits) Slice(from, to int) Bits {
	if from < 0 || to > b.n || from > to {
		panic(fmt.Sprintf("mnemonic: bit slice [%d:%d] out of range for length %d", from, to, b.n))
	}
	out := Bits{buf: make([]byte, 0, (to-from+7)/8)}
	for i := from; i < to; i++ {
		out.AppendBit(b.At(i))
	}
	return out
}

// Uint reads width bits starting at from as an unsigned integer. Bits past
// the end read as zero.
func (b Bits) Uint(from, width int) uint64 {
	var v uint64
	for i := from; i < from+width; i++ {
		v <<= 1
		if i < b.n && b.At(i) {
			v |= 1
		}
	}
	return v
}

// Bytes returns the bits packed into bytes. A trailing partial byte is
// padded with zero bits on the right.
func (b Bits) Bytes() []byte {
	out := make([]byte, (b.n+7)/8)
	copy(out, b.buf)
	if rem := b.n % 8; rem != 0 {
		out[len(out)-1] &= byte(0xff << (8 - rem))
	}
	return out
}

// Equal reports whether b and o hold the same bits.
func (b Bits) Equal(o Bits) bool {
	if b.n != o.n {
		return false
	}
	for i := 0; i < b.n; i++ {
		if b.At(i) != o.At(i) {
			return false
		}
	}
	return true
}

// String renders the bits as a string of '0' and '1'.
func (b Bits) String() string {
	var sb strings.Builder
	sb.Grow(b.n)
	for i := 0; i < b.n; i++ {
		if b.At(i) {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}

// Pack splits bits into consecutive groups of groupSize bits, reading each
// group as an unsigned big-endian integer. A final partial group is padded
// with zero bits on the right.
func Pack(bits Bits, groupSize int) []int {
	if groupSize <= 0 || groupSize > 62 {
		panic(fmt.Sprintf("mnemonic: invalid group size %d", groupSize))
	}
	groups := (bits.Len() + groupSize - 1) / groupSize
	out := make([]int, groups)
	for g := range out {
		out[g] = int(bits.Uint(g*groupSize, groupSize))
	}
	return out
}

// Unpack is the inverse of Pack: it writes each index as groupSize bits.
// Every index must lie in [0, 2^groupSize).
func Unpack(indices []int, groupSize int) (Bits, error) {
	if groupSize <= 0 || groupSize > 62 {
		panic(fmt.Sprintf("mnemonic: invalid group size %d", groupSize))
	}
	limit := 1 << uint(groupSize)
	out := Bits{buf: make([]byte, 0, (len(indices)*groupSize+7)/8)}
	for pos, idx := range indices {
		if idx < 0 || idx >= limit {
			return Bits{}, fmt.Errorf("%w: %d at position %d", ErrInvalidIndex, idx, pos)
		}
		out.Append(uint64(idx), groupSize)
	}
	return out, nil
}
