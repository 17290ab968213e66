// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"bytes"
	"encoding/binary"
	"math/bits"
)

// AIFF16 returns an uncompressed 16-bit AIFF file holding the interleaved
// samples.
func AIFF16(sampleRate, channels int, samples []int16) []byte {
	const commSize = 18

	dataSize := len(samples) * 2
	ssndSize := 8 + dataSize

	var b bytes.Buffer
	be := binary.BigEndian

	b.WriteString("FORM")
	_ = binary.Write(&b, be, uint32(4+8+commSize+8+ssndSize))
	b.WriteString("AIFF")

	b.WriteString("COMM")
	_ = binary.Write(&b, be, uint32(commSize))
	_ = binary.Write(&b, be, uint16(channels))
	_ = binary.Write(&b, be, uint32(len(samples)/channels))
	_ = binary.Write(&b, be, uint16(16))
	b.Write(extended(uint64(sampleRate)))

	b.WriteString("SSND")
	_ = binary.Write(&b, be, uint32(ssndSize))
	_ = binary.Write(&b, be, uint32(0)) // offset
	_ = binary.Write(&b, be, uint32(0)) // block size
	for _, s := range samples {
		_ = binary.Write(&b, be, s)
	}

	return b.Bytes()
}

// extended encodes a positive integer as an 80-bit IEEE 754 extended
// float, the way AIFF stores sample rates.
func extended(v uint64) []byte {
	out := make([]byte, 10)
	if v == 0 {
		return out
	}

	shift := bits.LeadingZeros64(v)
	exp := uint16(16383 + 63 - shift)
	binary.BigEndian.PutUint16(out[0:2], exp)
	binary.BigEndian.PutUint64(out[2:10], v<<shift)

	return out
}
