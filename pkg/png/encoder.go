package png

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
)

// RGB is an 8-bit-per-channel truecolor value.
type RGB struct {
	R, G, B uint8
}

// MaxDim is the largest width or height the encoder accepts. At this bound
// the raw scanline buffer is roughly 50MB.
const MaxDim = 4096

// ErrInvalidDimensions is returned when width or height falls outside
// [1, MaxDim].
var ErrInvalidDimensions = errors.New("dimensions out of range [1, 4096]")

// signature is the fixed 8-byte PNG file signature.
var signature = [8]byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}

// IHDR constants for 8-bit-per-channel truecolor without alpha.
const (
	bitDepth       = 8
	colorTruecolor = 2
)

// Encode produces a complete PNG file of the given dimensions filled with a
// single color. The result conforms to the PNG specification and decodes
// with any standard decoder. Encoding is atomic: either a whole valid file
// is returned or an error with no partial output. Calls are independent and
// safe to run concurrently.
func Encode(width, height int, c RGB) ([]byte, error) {
	if width < 1 || width > MaxDim || height < 1 || height > MaxDim {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}

	ihdr := makeChunk("IHDR", ihdrPayload(width, height))
	idat := makeChunk("IDAT", zlibStored(scanlines(width, height, c)))
	iend := makeChunk("IEND", nil)

	buf := new(bytes.Buffer)
	buf.Grow(len(signature) + len(ihdr) + len(idat) + len(iend))
	buf.Write(signature[:])
	buf.Write(ihdr)
	buf.Write(idat)
	buf.Write(iend)
	return buf.Bytes(), nil
}

// ihdrPayload lays out the 13-byte IHDR body: dimensions, then the fixed
// format fields. Compression, filter and interlace methods are all zero.
func ihdrPayload(width, height int) []byte {
	p := make([]byte, 13)
	binary.BigEndian.PutUint32(p[0:], uint32(width))
	binary.BigEndian.PutUint32(p[4:], uint32(height))
	p[8] = bitDepth
	p[9] = colorTruecolor
	return p
}

// scanlines expands the fill color into the raw image rows. Each row is a
// zero filter byte ("no filter") followed by width RGB triplets, giving
// height*(1+width*3) bytes total. A flat fill needs no smarter filtering.
func scanlines(width, height int, c RGB) []byte {
	row := make([]byte, 1+width*3)
	for i := 0; i < width; i++ {
		row[1+i*3] = c.R
		row[2+i*3] = c.G
		row[3+i*3] = c.B
	}

	buf := make([]byte, 0, height*len(row))
	for y := 0; y < height; y++ {
		buf = append(buf, row...)
	}
	return buf
}
