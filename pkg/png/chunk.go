package png

import (
	"bytes"
	"encoding/binary"
)

// makeChunk assembles one PNG chunk: payload length (big-endian uint32),
// 4-byte ASCII tag, payload, then the CRC-32 over tag and payload. The
// length field is never covered by the CRC. An empty payload is valid;
// the IEND terminator relies on it.
func makeChunk(tag string, payload []byte) []byte {
	buf := new(bytes.Buffer)
	buf.Grow(12 + len(payload))

	binary.Write(buf, binary.BigEndian, uint32(len(payload)))
	buf.WriteString(tag)
	buf.Write(payload)

	crc := crc32Update(^uint32(0), []byte(tag))
	crc = crc32Update(crc, payload)
	binary.Write(buf, binary.BigEndian, ^crc)

	return buf.Bytes()
}
