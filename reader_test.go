package yaml

import (
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("reader", func() {
	Describe("encoding detection", func() {
		It("defaults to UTF-8 when no BOM is present", func() {
			var p yaml_parser_t
			yaml_parser_set_input_string(&p, []byte("foo: bar\n"))
			Expect(yaml_parser_determine_encoding(&p)).To(BeTrue())
			Expect(p.encoding).To(Equal(YAML_UTF8_ENCODING))
		})

		It("detects and consumes a UTF-8 BOM", func() {
			input := append([]byte{0xEF, 0xBB, 0xBF}, []byte("foo: bar\n")...)
			var p yaml_parser_t
			yaml_parser_set_input_string(&p, input)
			Expect(yaml_parser_determine_encoding(&p)).To(BeTrue())
			Expect(p.encoding).To(Equal(YAML_UTF8_ENCODING))
			Expect(p.raw_buffer_pos).To(Equal(3))
		})

		It("detects a UTF-16LE BOM", func() {
			input := []byte{0xFF, 0xFE, 'f', 0, 0}
			var p yaml_parser_t
			yaml_parser_set_input_string(&p, input)
			Expect(yaml_parser_determine_encoding(&p)).To(BeTrue())
			Expect(p.encoding).To(Equal(YAML_UTF16LE_ENCODING))
			Expect(p.raw_buffer_pos).To(Equal(2))
		})

		It("rejects setting the encoding twice", func() {
			var p yaml_parser_t
			Expect(yaml_parser_set_encoding(&p, YAML_UTF8_ENCODING)).To(BeTrue())
			Expect(yaml_parser_set_encoding(&p, YAML_UTF16LE_ENCODING)).To(BeFalse())
			Expect(p.error).To(Equal(YAML_READER_ERROR))
		})
	})

	Describe("yaml_parser_update_buffer", func() {
		It("decodes ASCII content and appends a trailing NUL sentinel at EOF", func() {
			var p yaml_parser_t
			yaml_parser_set_input_string(&p, []byte("ab"))
			Expect(yaml_parser_update_buffer(&p, 10)).To(BeTrue())
			Expect(string(p.buffer[:2])).To(Equal("ab"))
			Expect(p.buffer[len(p.buffer)-1]).To(Equal(rune(0)))
		})

		It("rejects raw control characters outside the allow-list", func() {
			var p yaml_parser_t
			yaml_parser_set_input_string(&p, []byte("a\x01b"))
			Expect(yaml_parser_update_buffer(&p, 10)).To(BeFalse())
			Expect(p.error).To(Equal(YAML_READER_ERROR))
		})

		It("allows TAB, LF, and CR as content", func() {
			var p yaml_parser_t
			yaml_parser_set_input_string(&p, []byte("a\tb\nc\r"))
			Expect(yaml_parser_update_buffer(&p, 10)).To(BeTrue())
			Expect(p.error).To(Equal(YAML_NO_ERROR))
		})
	})
})
