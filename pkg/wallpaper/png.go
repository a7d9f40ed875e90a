// png.go — Minimal PNG serializer for the fixed-format wallpaper output.
// Writes truecolor+alpha, 8 bits per channel, no interlacing: signature,
// IHDR, one zlib-compressed IDAT of filter-0 scanlines, IEND. Built by hand
// (encoding/binary + compress/zlib) in the same spirit as a hand-rolled BMP
// writer; no image library is involved.
package wallpaper

import (
	"bytes"
	"compress/zlib"
	"encoding/binary"
	"fmt"
	"hash/crc32"
)

var pngSignature = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}

// EncodePNG serializes a width×height RGBA buffer into a standards-conformant
// PNG byte stream. rgba must hold exactly width*height*4 bytes.
//
// Encoding cannot fail for a well-formed buffer; any error here is an
// internal fault, not bad user input.
func EncodePNG(width, height int, rgba []byte) ([]byte, error) {
	if len(rgba) != width*height*4 {
		return nil, fmt.Errorf("encode png: buffer is %d bytes, want %d for %dx%d RGBA",
			len(rgba), width*height*4, width, height)
	}

	// Scanlines: each row prefixed with filter type 0 (none).
	stride := width * 4
	scanlines := make([]byte, 0, height*(stride+1))
	for y := 0; y < height; y++ {
		scanlines = append(scanlines, 0)
		scanlines = append(scanlines, rgba[y*stride:(y+1)*stride]...)
	}

	var compressed bytes.Buffer
	zw, err := zlib.NewWriterLevel(&compressed, 6)
	if err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	if _, err := zw.Write(scanlines); err != nil {
		return nil, fmt.Errorf("encode png: compress scanlines: %w", err)
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("encode png: flush compressor: %w", err)
	}

	// IHDR: width, height, bit depth 8, color type 6 (truecolor+alpha),
	// compression/filter/interlace all 0.
	ihdr := make([]byte, 13)
	binary.BigEndian.PutUint32(ihdr[0:4], uint32(width))
	binary.BigEndian.PutUint32(ihdr[4:8], uint32(height))
	ihdr[8] = 8
	ihdr[9] = 6

	var out bytes.Buffer
	out.Grow(len(pngSignature) + compressed.Len() + 64)
	out.Write(pngSignature)
	writeChunk(&out, "IHDR", ihdr)
	writeChunk(&out, "IDAT", compressed.Bytes())
	writeChunk(&out, "IEND", nil)

	return out.Bytes(), nil
}

// writeChunk emits one PNG chunk: big-endian length, 4-byte type, payload,
// and a CRC32 over type+payload.
func writeChunk(out *bytes.Buffer, chunkType string, data []byte) {
	var header [8]byte
	binary.BigEndian.PutUint32(header[0:4], uint32(len(data)))
	copy(header[4:8], chunkType)
	out.Write(header[:])
	out.Write(data)

	crc := crc32.NewIEEE()
	crc.Write([]byte(chunkType))
	crc.Write(data)

	var trailer [4]byte
	binary.BigEndian.PutUint32(trailer[:], crc.Sum32())
	out.Write(trailer[:])
}
