package yaml

import (
	"unicode/utf16"
	"unicode/utf8"
)

// rawBufferSize follows spec §4.1's "small raw buffer (~16 KiB)"
// sizing guidance; the decoded working buffer grows on demand instead
// of being pre-sized, since Go slices already amortize growth.
const rawBufferSize = 16 * 1024

// maxInputSize enforces spec §4.1's "input longer than half of
// SIZE_MAX bytes" rejection; on 64-bit platforms that bound is
// unreachable in practice, so this is a defensive int-overflow guard
// rather than a real-world limit.
const maxInputSize = int(^uint(0) >> 1)

// yaml_parser_set_input_string configures the parser to read from an
// owned byte slice (spec §4.1 "owned byte range").
func yaml_parser_set_input_string(parser *yaml_parser_t, input []byte) bool {
	if len(input) > maxInputSize {
		return yaml_parser_set_reader_error(parser, "input too long", 0, -1)
	}
	parser.source = inputSource{string: input}
	return true
}

// yaml_parser_set_input_reader configures the parser to pull from a
// streaming io.Reader (spec §4.1 "streaming callback").
func yaml_parser_set_input_reader(parser *yaml_parser_t, r interface{ Read([]byte) (int, error) }) bool {
	parser.source = inputSource{reader: r}
	return true
}

// yaml_parser_set_encoding pins the stream encoding, bypassing BOM
// detection.
func yaml_parser_set_encoding(parser *yaml_parser_t, encoding yaml_encoding_t) bool {
	if parser.encoding_set {
		return yaml_parser_set_reader_error(parser, "encoding already set", parser.offset, -1)
	}
	parser.encoding = encoding
	parser.encoding_set = true
	return true
}

func yaml_parser_set_reader_error(parser *yaml_parser_t, problem string, offset int, value rune) bool {
	parser.error = YAML_READER_ERROR
	parser.problem = problem
	parser.problem_mark = yaml_mark_t{index: offset}
	parser.problem_value = value
	parser.problem_offset = offset
	return false
}

// yaml_parser_update_raw_buffer refills raw_buffer from the configured
// source, compacting any unconsumed tail first.
func yaml_parser_update_raw_buffer(parser *yaml_parser_t) bool {
	if parser.eof {
		return true
	}
	if parser.raw_buffer_pos > 0 {
		parser.raw_buffer = append(parser.raw_buffer[:0], parser.raw_buffer[parser.raw_buffer_pos:]...)
		parser.raw_buffer_pos = 0
	}
	if len(parser.raw_buffer) >= rawBufferSize {
		return true
	}

	dest := make([]byte, rawBufferSize-len(parser.raw_buffer))
	var n int
	switch {
	case parser.source.reader != nil:
		var err error
		n, err = parser.source.reader.Read(dest)
		if n == 0 && err != nil {
			parser.eof = true
		}
	case parser.source.string != nil:
		n = copy(dest, parser.source.string)
		parser.source.string = parser.source.string[n:]
		if n == 0 {
			parser.eof = true
		}
	default:
		parser.eof = true
	}
	parser.raw_buffer = append(parser.raw_buffer, dest[:n]...)
	return true
}

// yaml_parser_determine_encoding detects the stream encoding from a BOM
// (spec §4.1) and consumes the BOM bytes, defaulting to UTF-8 if unset
// and no BOM is present.
func yaml_parser_determine_encoding(parser *yaml_parser_t) bool {
	for !parser.eof && len(parser.raw_buffer)-parser.raw_buffer_pos < 4 {
		if !yaml_parser_update_raw_buffer(parser) {
			return false
		}
	}
	b := parser.raw_buffer[parser.raw_buffer_pos:]

	if !parser.encoding_set {
		switch {
		case len(b) >= 3 && b[0] == 0xEF && b[1] == 0xBB && b[2] == 0xBF:
			parser.encoding = YAML_UTF8_ENCODING
			parser.raw_buffer_pos += 3
			parser.offset += 3
		case len(b) >= 2 && b[0] == 0xFF && b[1] == 0xFE:
			parser.encoding = YAML_UTF16LE_ENCODING
			parser.raw_buffer_pos += 2
			parser.offset += 2
		case len(b) >= 2 && b[0] == 0xFE && b[1] == 0xFF:
			parser.encoding = YAML_UTF16BE_ENCODING
			parser.raw_buffer_pos += 2
			parser.offset += 2
		default:
			parser.encoding = YAML_UTF8_ENCODING
		}
		parser.encoding_set = true
	}
	return true
}

// isAllowedControl implements spec §4.1's control-character allow-list:
// TAB, LF, CR, NEL, and the printable ranges. Surrogate halves and
// U+FEFF-as-content are excluded by construction elsewhere (surrogates
// never survive decodeNext; a leading BOM is consumed before this check
// ever sees it).
func isAllowedControl(r rune) bool {
	switch {
	case r == 0x09 || r == 0x0A || r == 0x0D || r == 0x85:
		return true
	case r >= 0x20 && r <= 0x7E:
		return true
	case r == 0xA0:
		return true
	case r >= 0xA1 && r <= 0xD7FF:
		return true
	case r >= 0xE000 && r <= 0xFFFD:
		return true
	case r >= 0x10000 && r <= 0x10FFFF:
		return true
	}
	return false
}

func isPrintableOrAllowedControl(r rune) bool {
	if r < 0x20 || (r >= 0x7F && r < 0xA0) {
		return isAllowedControl(r)
	}
	return r <= 0x10FFFF
}

// decodeNext decodes the next character from raw_buffer starting at
// raw_buffer_pos, per the stream's encoding. ok=false with needMore=true
// means the caller should refill raw_buffer and retry; ok=false with
// needMore=false means parser.error has been set.
func decodeNext(parser *yaml_parser_t) (r rune, rawWidth int, ok, needMore bool) {
	raw := parser.raw_buffer[parser.raw_buffer_pos:]

	switch parser.encoding {
	case YAML_UTF8_ENCODING:
		if len(raw) == 0 {
			return 0, 0, false, true
		}
		r, size := utf8.DecodeRune(raw)
		if r == utf8.RuneError && size <= 1 {
			if !parser.eof && len(raw) < 4 {
				return 0, 0, false, true
			}
			yaml_parser_set_reader_error(parser, "invalid UTF-8 sequence", parser.offset, rune(raw[0]))
			return 0, 0, false, false
		}
		return r, size, true, false

	case YAML_UTF16LE_ENCODING, YAML_UTF16BE_ENCODING:
		if len(raw) < 2 {
			if parser.eof && len(raw) == 1 {
				yaml_parser_set_reader_error(parser, "incomplete UTF-16 sequence", parser.offset, rune(raw[0]))
				return 0, 0, false, false
			}
			return 0, 0, false, true
		}
		u16 := func(b []byte) uint16 {
			if parser.encoding == YAML_UTF16LE_ENCODING {
				return uint16(b[0]) | uint16(b[1])<<8
			}
			return uint16(b[1]) | uint16(b[0])<<8
		}
		w1 := u16(raw)
		if utf16.IsSurrogate(rune(w1)) {
			if len(raw) < 4 {
				if parser.eof {
					yaml_parser_set_reader_error(parser, "isolated UTF-16 surrogate", parser.offset, rune(w1))
					return 0, 0, false, false
				}
				return 0, 0, false, true
			}
			w2 := u16(raw[2:])
			decoded := utf16.DecodeRune(rune(w1), rune(w2))
			if decoded == utf8.RuneError {
				yaml_parser_set_reader_error(parser, "invalid UTF-16 surrogate pair", parser.offset, rune(w1))
				return 0, 0, false, false
			}
			return decoded, 4, true, false
		}
		if w1 >= 0xDC00 && w1 <= 0xDFFF {
			yaml_parser_set_reader_error(parser, "isolated UTF-16 surrogate", parser.offset, rune(w1))
			return 0, 0, false, false
		}
		return rune(w1), 2, true, false
	}
	return 0, 0, false, true
}

// yaml_parser_update_buffer ensures at least `length` decoded characters
// are available from buffer_pos onward, refilling and transcoding as
// needed (spec §4.1). The decoded buffer holds runes directly (rather
// than re-encoded UTF-8 bytes) so the scanner can index characters
// without re-decoding; parser.widths tracks the raw byte width each
// buffered rune was encoded with, so Position.index can still report an
// offset into the raw source rather than the normalized buffer.
func yaml_parser_update_buffer(parser *yaml_parser_t, length int) bool {
	if parser.error != YAML_NO_ERROR {
		return false
	}
	if !parser.encoding_set {
		if !yaml_parser_determine_encoding(parser) {
			return false
		}
	}

	if parser.buffer_pos > 0 && parser.buffer_pos == len(parser.buffer) {
		parser.buffer = parser.buffer[:0]
		parser.widths = parser.widths[:0]
		parser.buffer_pos = 0
	}

	for parser.unread < length {
		if !parser.eof && len(parser.raw_buffer)-parser.raw_buffer_pos < 4 {
			if !yaml_parser_update_raw_buffer(parser) {
				return false
			}
		}

		r, width, ok, needMore := decodeNext(parser)
		if !ok {
			if needMore {
				if parser.eof {
					break
				}
				if !yaml_parser_update_raw_buffer(parser) {
					return false
				}
				continue
			}
			return false
		}

		if !isPrintableOrAllowedControl(r) {
			return yaml_parser_set_reader_error(parser, "control characters are not allowed", parser.offset, r)
		}

		parser.raw_buffer_pos += width
		parser.offset += width
		parser.buffer = append(parser.buffer, r)
		parser.widths = append(parser.widths, width)
		parser.unread++
	}

	if parser.unread < length && parser.eof {
		if len(parser.buffer) == 0 || parser.buffer[len(parser.buffer)-1] != 0 {
			parser.buffer = append(parser.buffer, 0)
			parser.widths = append(parser.widths, 0)
		}
	}
	return true
}
