package yaml

import (
	"io"
	"unicode/utf16"
	"unicode/utf8"
)

// yaml_emitter_set_output_string configures the emitter to append
// encoded output to *buf (spec §4.5 "fixed buffer" / owned-slice sink).
func yaml_emitter_set_output_string(emitter *yaml_emitter_t, buf *[]byte) bool {
	emitter.sink = outputSink{buf: buf}
	return true
}

// yaml_emitter_set_output_writer configures the emitter to stream
// encoded output to an io.Writer (spec §4.5 "streaming callback").
func yaml_emitter_set_output_writer(emitter *yaml_emitter_t, w io.Writer) bool {
	emitter.sink = outputSink{writer: w}
	return true
}

// yaml_emitter_set_output_fixed configures the emitter to write into a
// caller-owned fixed-size buffer, erroring if output would overflow it
// (spec §4.5 "fixed buffer" variant with a hard capacity).
func yaml_emitter_set_output_fixed(emitter *yaml_emitter_t, buf []byte, used *int) bool {
	emitter.sink = outputSink{fixedBuf: buf, fixedUsed: used, fixedLimit: len(buf)}
	return true
}

func yaml_emitter_set_encoding(emitter *yaml_emitter_t, encoding yaml_encoding_t) bool {
	emitter.encoding = encoding
	return true
}

func yaml_emitter_set_writer_error(emitter *yaml_emitter_t, problem string) bool {
	emitter.error = YAML_WRITER_ERROR
	emitter.problem = problem
	return false
}

// yaml_emitter_flush transcodes emitter.buffer (always built as UTF-8
// internally) to the stream's target encoding and writes it to the
// configured sink, emitting a leading BOM on the very first flush for
// non-UTF-8 encodings (spec §4.5 "BOM: emitted on open for non-UTF-8
// encodings").
func yaml_emitter_flush(emitter *yaml_emitter_t) bool {
	if emitter.encoding == YAML_ANY_ENCODING {
		emitter.encoding = YAML_UTF8_ENCODING
	}
	if !emitter.opened {
		emitter.opened = true
		if emitter.encoding != YAML_UTF8_ENCODING {
			var bom []byte
			if emitter.encoding == YAML_UTF16LE_ENCODING {
				bom = []byte{0xFF, 0xFE}
			} else {
				bom = []byte{0xFE, 0xFF}
			}
			if !yaml_emitter_write_raw(emitter, bom) {
				return false
			}
		}
	}
	if len(emitter.buffer) == 0 {
		return true
	}
	out, err := encodeOutput(emitter.encoding, emitter.buffer)
	if err != "" {
		return yaml_emitter_set_writer_error(emitter, err)
	}
	if !yaml_emitter_write_raw(emitter, out) {
		return false
	}
	emitter.buffer = emitter.buffer[:0]
	return true
}

// encodeOutput transcodes UTF-8 encoded bytes to the requested stream
// encoding, reconstituting UTF-16 surrogate pairs for code points at or
// above U+10000 (spec §4.5 "surrogate-pair reconstitution").
func encodeOutput(encoding yaml_encoding_t, data []byte) ([]byte, string) {
	if encoding == YAML_UTF8_ENCODING {
		return data, ""
	}
	little := encoding == YAML_UTF16LE_ENCODING
	out := make([]byte, 0, len(data)*2)
	put := func(u uint16) {
		if little {
			out = append(out, byte(u), byte(u>>8))
		} else {
			out = append(out, byte(u>>8), byte(u))
		}
	}
	for i := 0; i < len(data); {
		r, size := utf8.DecodeRune(data[i:])
		if r == utf8.RuneError && size <= 1 {
			return nil, "invalid UTF-8 sequence in emitted output"
		}
		i += size
		if r >= 0x10000 {
			r1, r2 := utf16.EncodeRune(r)
			put(uint16(r1))
			put(uint16(r2))
		} else {
			put(uint16(r))
		}
	}
	return out, ""
}

// yaml_emitter_write_raw sends already-encoded bytes to whichever sink
// the emitter was configured with.
func yaml_emitter_write_raw(emitter *yaml_emitter_t, data []byte) bool {
	switch {
	case emitter.sink.writer != nil:
		if _, err := emitter.sink.writer.Write(data); err != nil {
			return yaml_emitter_set_writer_error(emitter, err.Error())
		}
	case emitter.sink.buf != nil:
		*emitter.sink.buf = append(*emitter.sink.buf, data...)
	case emitter.sink.fixedUsed != nil:
		if *emitter.sink.fixedUsed+len(data) > emitter.sink.fixedLimit {
			return yaml_emitter_set_writer_error(emitter, "output buffer is too small")
		}
		copy(emitter.sink.fixedBuf[*emitter.sink.fixedUsed:], data)
		*emitter.sink.fixedUsed += len(data)
	default:
		return yaml_emitter_set_writer_error(emitter, "no output sink configured")
	}
	return true
}
