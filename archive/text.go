package archive

import (
	"errors"
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"
)

// Text decoding errors.
var (
	ErrOddLength    = errors.New("archive: odd byte count in UTF-16 text")
	ErrInvalidUTF8  = errors.New("archive: invalid UTF-8 text")
	ErrInvalidUTF16 = errors.New("archive: invalid UTF-16 text")
)

const byteOrderMark = 0xFEFF

var utf16le = unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)

// DecodeText converts the bytes of an XML part to a string. A leading
// little-endian byte-order mark selects UTF-16LE for the rest of the data;
// anything else is taken as UTF-8.
func DecodeText(data []byte) (string, error) {
	if len(data) >= 2 && uint16(data[0])|uint16(data[1])<<8 == byteOrderMark {
		body := data[2:]
		if len(body)%2 != 0 {
			return "", ErrOddLength
		}
		if !validUTF16(body) {
			return "", ErrInvalidUTF16
		}

		out, err := utf16le.NewDecoder().Bytes(body)
		if err != nil {
			return "", ErrInvalidUTF16
		}
		return string(out), nil
	}

	if !utf8.Valid(data) {
		return "", ErrInvalidUTF8
	}
	return string(data), nil
}

// validUTF16 reports whether every surrogate in the little-endian units of
// b is part of a well-formed pair.
func validUTF16(b []byte) bool {
	for i := 0; i+1 < len(b); i += 2 {
		u := uint16(b[i]) | uint16(b[i+1])<<8
		switch {
		case u >= 0xD800 && u < 0xDC00:
			if i+3 >= len(b) {
				return false
			}
			next := uint16(b[i+2]) | uint16(b[i+3])<<8
			if next < 0xDC00 || next > 0xDFFF {
				return false
			}
			i += 2
		case u >= 0xDC00 && u <= 0xDFFF:
			return false
		}
	}
	return true
}
