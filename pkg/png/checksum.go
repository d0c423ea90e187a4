// Package png produces single-color truecolor PNG files from scratch,
// without using any image or compression library.
package png

// crcPoly is the reflected CRC-32 polynomial used by the PNG chunk CRC.
const crcPoly = 0xEDB88320

// crcTable is the CRC-32 lookup table, built once at startup.
var crcTable = makeCRCTable()

func makeCRCTable() [256]uint32 {
	var table [256]uint32
	for n := range table {
		c := uint32(n)
		for i := 0; i < 8; i++ {
			if c&1 != 0 {
				c = crcPoly ^ (c >> 1)
			} else {
				c >>= 1
			}
		}
		table[n] = c
	}
	return table
}

// crc32Update folds data into a running CRC register. The register is kept
// in its internal (pre-inversion) form so callers can checksum several
// slices without concatenating them.
func crc32Update(c uint32, data []byte) uint32 {
	for _, b := range data {
		c = crcTable[byte(c)^b] ^ (c >> 8)
	}
	return c
}

// CRC32 computes the standard CRC-32 checksum (polynomial 0xEDB88320,
// reflected, initialized to all-ones, inverted at the end). The checksum of
// empty input is 0.
func CRC32(data []byte) uint32 {
	return ^crc32Update(^uint32(0), data)
}

// adlerMod is the largest prime below 65536.
const adlerMod = 65521

// Adler32 computes the Adler-32 checksum used by the zlib stream trailer.
// The checksum of empty input is 1.
func Adler32(data []byte) uint32 {
	a, b := uint32(1), uint32(0)
	for _, x := range data {
		a = (a + uint32(x)) % adlerMod
		b = (b + a) % adlerMod
	}
	return b<<16 | a
}
