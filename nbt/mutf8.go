package nbt

import (
	"fmt"
	"unicode/utf16"
	"unicode/utf8"

	"github.com/arloliu/litematic/errs"
)

// Strings are stored in Java's modified UTF-8: U+0000 is written as the two
// bytes C0 80, and runes above U+FFFF are written as a UTF-16 surrogate pair,
// each half encoded as three bytes. Lone surrogates, which Java strings may
// hold, are kept in the Go string as their raw three-byte form so they
// survive a round trip.

// appendMUTF8 appends the modified UTF-8 form of s to dst.
func appendMUTF8(dst []byte, s string) []byte {
	for i := 0; i < len(s); {
		b := s[i]
		if b > 0 && b < utf8.RuneSelf {
			dst = append(dst, b)
			i++

			continue
		}

		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size == 1 {
			if isRawSurrogate(s[i:]) {
				dst = append(dst, s[i], s[i+1], s[i+2])
				i += 3

				continue
			}
			r = utf8.RuneError
		}
		i += size

		switch {
		case r == 0:
			dst = append(dst, 0xc0, 0x80)
		case r < 0x800:
			dst = append(dst, 0xc0|byte(r>>6), 0x80|byte(r)&0x3f)
		case r < 0x10000:
			dst = append3(dst, r)
		default:
			hi, lo := utf16.EncodeRune(r)
			dst = append3(dst, hi)
			dst = append3(dst, lo)
		}
	}

	return dst
}

// mutf8Len returns the encoded length of s without allocating.
func mutf8Len(s string) int {
	n := 0
	for i := 0; i < len(s); {
		b := s[i]
		if b > 0 && b < utf8.RuneSelf {
			n++
			i++

			continue
		}

		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size == 1 && isRawSurrogate(s[i:]) {
			n += 3
			i += 3

			continue
		}
		i += size

		switch {
		case r < 0x800:
			n += 2
		case r < 0x10000:
			n += 3
		default:
			n += 6
		}
	}

	return n
}

// decodeMUTF8 decodes a modified UTF-8 byte string.
func decodeMUTF8(b []byte) (string, error) {
	ascii := true
	for _, c := range b {
		if c == 0 || c >= utf8.RuneSelf {
			ascii = false
			break
		}
	}
	if ascii {
		return string(b), nil
	}

	out := make([]byte, 0, len(b))
	for i := 0; i < len(b); {
		c := b[i]
		switch {
		case c < 0x80:
			out = append(out, c)
			i++
		case c&0xe0 == 0xc0:
			if i+1 >= len(b) || b[i+1]&0xc0 != 0x80 {
				return "", fmt.Errorf("%w: bad 2-byte sequence at %d", errs.ErrInvalidString, i)
			}
			r := rune(c&0x1f)<<6 | rune(b[i+1]&0x3f)
			out = utf8.AppendRune(out, r)
			i += 2
		case c&0xf0 == 0xe0:
			r, ok := decode3(b[i:])
			if !ok {
				return "", fmt.Errorf("%w: bad 3-byte sequence at %d", errs.ErrInvalidString, i)
			}
			if utf16.IsSurrogate(r) {
				if r < 0xdc00 {
					if lo, ok := decode3(b[i+3:]); ok && lo >= 0xdc00 && lo <= 0xdfff {
						out = utf8.AppendRune(out, utf16.DecodeRune(r, lo))
						i += 6

						continue
					}
				}
				out = append(out, b[i], b[i+1], b[i+2])
			} else {
				out = utf8.AppendRune(out, r)
			}
			i += 3
		default:
			return "", fmt.Errorf("%w: unexpected byte 0x%02x at %d", errs.ErrInvalidString, c, i)
		}
	}

	return string(out), nil
}

func decode3(b []byte) (rune, bool) {
	if len(b) < 3 || b[0]&0xf0 != 0xe0 || b[1]&0xc0 != 0x80 || b[2]&0xc0 != 0x80 {
		return 0, false
	}

	return rune(b[0]&0x0f)<<12 | rune(b[1]&0x3f)<<6 | rune(b[2]&0x3f), true
}

func append3(dst []byte, r rune) []byte {
	return append(dst, 0xe0|byte(r>>12), 0x80|byte(r>>6)&0x3f, 0x80|byte(r)&0x3f)
}

// isRawSurrogate reports whether s starts with the three-byte encoding of a
// UTF-16 surrogate (ED A0..BF xx).
func isRawSurrogate(s string) bool {
	return len(s) >= 3 && s[0] == 0xed && s[1]&0xe0 == 0xa0 && s[2]&0xc0 == 0x80
}
