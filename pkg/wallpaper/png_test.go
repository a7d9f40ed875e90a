package wallpaper

import (
	"bytes"
	"encoding/binary"
	"hash/crc32"
	"image/png"
	"testing"
)

func TestEncodePNGRejectsBadBufferLength(t *testing.T) {
	if _, err := EncodePNG(4, 4, make([]byte, 10)); err == nil {
		t.Error("expected an error for a mismatched buffer")
	}
}

func TestEncodePNGChunkStructure(t *testing.T) {
	c := NewCanvas(3, 2)
	c.FillGradient(RGB{10, 20, 30}, RGB{40, 50, 60})

	data, err := EncodePNG(c.Width, c.Height, c.Pix)
	if err != nil {
		t.Fatalf("EncodePNG: %v", err)
	}

	if !bytes.HasPrefix(data, pngSignature) {
		t.Fatalf("missing PNG signature, got % x", data[:8])
	}

	// Walk the chunks after the signature.
	var types []string
	rest := data[8:]
	for len(rest) > 0 {
		if len(rest) < 12 {
			t.Fatalf("truncated chunk, %d trailing bytes", len(rest))
		}
		length := binary.BigEndian.Uint32(rest[0:4])
		chunkType := string(rest[4:8])
		if uint32(len(rest)) < 12+length {
			t.Fatalf("chunk %s claims %d bytes, only %d remain", chunkType, length, len(rest)-12)
		}
		payload := rest[8 : 8+length]

		crc := crc32.NewIEEE()
		crc.Write(rest[4:8])
		crc.Write(payload)
		if got := binary.BigEndian.Uint32(rest[8+length : 12+length]); got != crc.Sum32() {
			t.Errorf("chunk %s CRC = %08x, want %08x", chunkType, got, crc.Sum32())
		}

		if chunkType == "IHDR" {
			if w := binary.BigEndian.Uint32(payload[0:4]); w != 3 {
				t.Errorf("IHDR width = %d, want 3", w)
			}
			if h := binary.BigEndian.Uint32(payload[4:8]); h != 2 {
				t.Errorf("IHDR height = %d, want 2", h)
			}
			// bit depth 8, color type 6, compression/filter/interlace 0
			if !bytes.Equal(payload[8:13], []byte{8, 6, 0, 0, 0}) {
				t.Errorf("IHDR tail = %v, want [8 6 0 0 0]", payload[8:13])
			}
		}

		types = append(types, chunkType)
		rest = rest[12+length:]
	}

	if len(types) != 3 || types[0] != "IHDR" || types[1] != "IDAT" || types[2] != "IEND" {
		t.Errorf("chunk sequence = %v, want [IHDR IDAT IEND]", types)
	}
}

func TestEncodePNGRoundTripsThroughStdlibDecoder(t *testing.T) {
	c := NewCanvas(5, 4)
	c.FillGradient(RGB{200, 10, 30}, RGB{20, 60, 220})
	c.SetPixel(2, 1, RGB{1, 2, 3})

	data, err := EncodePNG(c.Width, c.Height, c.Pix)
	if err != nil {
		t.Fatalf("EncodePNG: %v", err)
	}

	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("stdlib decode rejected our stream: %v", err)
	}

	bounds := img.Bounds()
	if bounds.Dx() != 5 || bounds.Dy() != 4 {
		t.Fatalf("decoded bounds = %v", bounds)
	}

	for y := 0; y < c.Height; y++ {
		for x := 0; x < c.Width; x++ {
			r, g, b, a := img.At(x, y).RGBA()
			got := RGB{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8)}
			if want := c.At(x, y); got != want || a != 0xffff {
				t.Fatalf("pixel (%d,%d) = %v a=%d, want %v opaque", x, y, got, a>>8, want)
			}
		}
	}
}

func TestEncodePNGIsDeterministic(t *testing.T) {
	c := NewCanvas(16, 16)
	c.FillGradient(RGB{13, 17, 23}, RGB{40, 44, 52})

	first, err := EncodePNG(c.Width, c.Height, c.Pix)
	if err != nil {
		t.Fatal(err)
	}
	second, err := EncodePNG(c.Width, c.Height, c.Pix)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(first, second) {
		t.Error("identical buffers produced different PNG bytes")
	}
}
