package renderer

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"hash/crc32"
	"math"
)

const metresPerInch = 0.0254

var pngSignature = []byte("\x89PNG\r\n\x1a\n")

// ErrNoResolution is returned by PNGResolution when the file carries no
// physical pixel density.
var ErrNoResolution = errors.New("png has no pHYs chunk")

// withResolution inserts a pHYs chunk recording dpi right after IHDR.
// image/png does not write one.
func withResolution(data []byte, dpi float64) ([]byte, error) {
	end, err := ihdrEnd(data)
	if err != nil {
		return nil, err
	}

	ppm := uint32(math.Round(dpi / metresPerInch))
	body := make([]byte, 9)
	binary.BigEndian.PutUint32(body[0:4], ppm)
	binary.BigEndian.PutUint32(body[4:8], ppm)
	body[8] = 1 // unit: metre

	out := make([]byte, 0, len(data)+len(body)+12)
	out = append(out, data[:end]...)
	out = appendChunk(out, "pHYs", body)
	out = append(out, data[end:]...)
	return out, nil
}

// PNGResolution returns the horizontal DPI recorded in a PNG file.
func PNGResolution(data []byte) (float64, error) {
	if !bytes.HasPrefix(data, pngSignature) {
		return 0, errors.New("not a png file")
	}
	for off := len(pngSignature); off+8 <= len(data); {
		length := int(binary.BigEndian.Uint32(data[off : off+4]))
		typ := string(data[off+4 : off+8])
		body := off + 8
		if body+length+4 > len(data) {
			return 0, fmt.Errorf("truncated %s chunk", typ)
		}
		switch typ {
		case "pHYs":
			if length != 9 || data[body+8] != 1 {
				return 0, ErrNoResolution
			}
			ppm := binary.BigEndian.Uint32(data[body : body+4])
			return float64(ppm) * metresPerInch, nil
		case "IDAT", "IEND":
			return 0, ErrNoResolution
		}
		off = body + length + 4
	}
	return 0, ErrNoResolution
}

func ihdrEnd(data []byte) (int, error) {
	if !bytes.HasPrefix(data, pngSignature) {
		return 0, errors.New("not a png stream")
	}
	start := len(pngSignature)
	if len(data) < start+8 || string(data[start+4:start+8]) != "IHDR" {
		return 0, errors.New("png stream does not start with IHDR")
	}
	end := start + 12 + int(binary.BigEndian.Uint32(data[start:start+4]))
	if end > len(data) {
		return 0, errors.New("truncated IHDR chunk")
	}
	return end, nil
}

func appendChunk(dst []byte, typ string, body []byte) []byte {
	var word [4]byte
	binary.BigEndian.PutUint32(word[:], uint32(len(body)))
	dst = append(dst, word[:]...)
	dst = append(dst, typ...)
	dst = append(dst, body...)

	crc := crc32.NewIEEE()
	crc.Write([]byte(typ))
	crc.Write(body)
	binary.BigEndian.PutUint32(word[:], crc.Sum32())
	return append(dst, word[:]...)
}
