package yaml

import (
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

func scanAllTokens(input string) ([]yaml_token_t, error) {
	var p yaml_parser_t
	if !yaml_parser_set_input_string(&p, []byte(input)) {
		return nil, parserError(&p)
	}
	var tokens []yaml_token_t
	for {
		var tok yaml_token_t
		if !yaml_parser_scan(&p, &tok) {
			return nil, parserError(&p)
		}
		tokens = append(tokens, tok)
		if tok.token_type == YAML_STREAM_END_TOKEN {
			return tokens, nil
		}
	}
}

func tokenTypes(tokens []yaml_token_t) []yaml_token_type_t {
	out := make([]yaml_token_type_t, len(tokens))
	for i, t := range tokens {
		out[i] = t.token_type
	}
	return out
}

var _ = Describe("scanner", func() {
	It("scans a simple block mapping", func() {
		tokens, err := scanAllTokens("key: value\n")
		Expect(err).NotTo(HaveOccurred())
		Expect(tokenTypes(tokens)).To(Equal([]yaml_token_type_t{
			YAML_STREAM_START_TOKEN,
			YAML_BLOCK_MAPPING_START_TOKEN,
			YAML_KEY_TOKEN,
			YAML_SCALAR_TOKEN,
			YAML_VALUE_TOKEN,
			YAML_SCALAR_TOKEN,
			YAML_BLOCK_END_TOKEN,
			YAML_STREAM_END_TOKEN,
		}))
	})

	It("scans a block sequence", func() {
		tokens, err := scanAllTokens("- a\n- b\n")
		Expect(err).NotTo(HaveOccurred())
		Expect(tokenTypes(tokens)).To(Equal([]yaml_token_type_t{
			YAML_STREAM_START_TOKEN,
			YAML_BLOCK_SEQUENCE_START_TOKEN,
			YAML_BLOCK_ENTRY_TOKEN,
			YAML_SCALAR_TOKEN,
			YAML_BLOCK_ENTRY_TOKEN,
			YAML_SCALAR_TOKEN,
			YAML_BLOCK_END_TOKEN,
			YAML_STREAM_END_TOKEN,
		}))
	})

	It("scans a flow sequence", func() {
		tokens, err := scanAllTokens("[a, b]\n")
		Expect(err).NotTo(HaveOccurred())
		Expect(tokenTypes(tokens)).To(Equal([]yaml_token_type_t{
			YAML_STREAM_START_TOKEN,
			YAML_FLOW_SEQUENCE_START_TOKEN,
			YAML_SCALAR_TOKEN,
			YAML_FLOW_ENTRY_TOKEN,
			YAML_SCALAR_TOKEN,
			YAML_FLOW_SEQUENCE_END_TOKEN,
			YAML_STREAM_END_TOKEN,
		}))
	})

	It("reports an anchor and alias as distinct tokens", func() {
		tokens, err := scanAllTokens("- &a foo\n- *a\n")
		Expect(err).NotTo(HaveOccurred())
		Expect(tokenTypes(tokens)).To(Equal([]yaml_token_type_t{
			YAML_STREAM_START_TOKEN,
			YAML_BLOCK_SEQUENCE_START_TOKEN,
			YAML_BLOCK_ENTRY_TOKEN,
			YAML_ANCHOR_TOKEN,
			YAML_SCALAR_TOKEN,
			YAML_BLOCK_ENTRY_TOKEN,
			YAML_ALIAS_TOKEN,
			YAML_BLOCK_END_TOKEN,
			YAML_STREAM_END_TOKEN,
		}))
	})

	It("decodes a valid \\x escape", func() {
		tokens, err := scanAllTokens("\"\\x41\"\n")
		Expect(err).NotTo(HaveOccurred())
		var scalars []string
		for _, t := range tokens {
			if t.token_type == YAML_SCALAR_TOKEN {
				scalars = append(scalars, string(t.value))
			}
		}
		Expect(scalars).To(Equal([]string{"A"}))
	})

	It("rejects a \\u escape naming a surrogate code point", func() {
		_, err := scanAllTokens("\"\\uD800\"\n")
		Expect(err).To(HaveOccurred())
	})

	It("rejects a \\U escape above U+10FFFF", func() {
		_, err := scanAllTokens("\"\\U00110000\"\n")
		Expect(err).To(HaveOccurred())
	})

	It("rejects nesting deeper than the instance's max_nest_level", func() {
		var p yaml_parser_t
		p.max_nest_level = 2
		Expect(yaml_parser_set_input_string(&p, []byte("[[[1]]]\n"))).To(BeTrue())
		var tok yaml_token_t
		for {
			if !yaml_parser_scan(&p, &tok) {
				break
			}
			if tok.token_type == YAML_STREAM_END_TOKEN {
				break
			}
		}
		Expect(p.error).To(Equal(YAML_SCANNER_ERROR))
	})
})
