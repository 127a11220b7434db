package yaml

import (
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

func emitEvents(events []yaml_event_t) (string, error) {
	var buf []byte
	var e yaml_emitter_t
	if !yaml_emitter_set_output_string(&e, &buf) {
		return "", emitterError(&e)
	}
	for i := range events {
		if !yaml_emitter_emit(&e, &events[i]) {
			return "", emitterError(&e)
		}
	}
	return string(buf), nil
}

func scalarDoc(value string, style yaml_scalar_style_t) []yaml_event_t {
	return []yaml_event_t{
		{event_type: YAML_STREAM_START_EVENT, encoding: YAML_UTF8_ENCODING},
		{event_type: YAML_DOCUMENT_START_EVENT, implicit: true},
		{event_type: YAML_SCALAR_EVENT, tag: []byte("tag:yaml.org,2002:str"), value: []byte(value), implicit: true, quoted_implicit: true, style: yaml_style_t(style)},
		{event_type: YAML_DOCUMENT_END_EVENT, implicit: true},
		{event_type: YAML_STREAM_END_EVENT},
	}
}

var _ = Describe("emitter", func() {
	It("emits a plain scalar document with no explicit markers", func() {
		out, err := emitEvents(scalarDoc("hello", YAML_PLAIN_SCALAR_STYLE))
		Expect(err).NotTo(HaveOccurred())
		Expect(out).To(Equal("hello\n"))
	})

	It("emits a block mapping with two keys", func() {
		events := []yaml_event_t{
			{event_type: YAML_STREAM_START_EVENT, encoding: YAML_UTF8_ENCODING},
			{event_type: YAML_DOCUMENT_START_EVENT, implicit: true},
			{event_type: YAML_MAPPING_START_EVENT, tag: []byte("tag:yaml.org,2002:map"), implicit: true, style: yaml_style_t(YAML_BLOCK_MAPPING_STYLE)},
			{event_type: YAML_SCALAR_EVENT, tag: []byte("tag:yaml.org,2002:str"), value: []byte("a"), implicit: true, quoted_implicit: true, style: yaml_style_t(YAML_PLAIN_SCALAR_STYLE)},
			{event_type: YAML_SCALAR_EVENT, tag: []byte("tag:yaml.org,2002:str"), value: []byte("1"), implicit: true, quoted_implicit: true, style: yaml_style_t(YAML_PLAIN_SCALAR_STYLE)},
			{event_type: YAML_MAPPING_END_EVENT},
			{event_type: YAML_DOCUMENT_END_EVENT, implicit: true},
			{event_type: YAML_STREAM_END_EVENT},
		}
		out, err := emitEvents(events)
		Expect(err).NotTo(HaveOccurred())
		Expect(out).To(Equal("a: 1\n"))
	})

	It("double-quotes a scalar with a control character via the escape table", func() {
		out, err := emitEvents(scalarDoc("a\tb", YAML_DOUBLE_QUOTED_SCALAR_STYLE))
		Expect(err).NotTo(HaveOccurred())
		Expect(out).To(Equal("\"a\\tb\"\n"))
	})

	It("analyzes a plain scalar's style allowances", func() {
		a := yaml_emitter_analyze_scalar([]byte("plain text"))
		Expect(a.flow_plain_allowed).To(BeTrue())
		Expect(a.block_plain_allowed).To(BeTrue())
		Expect(a.multiline).To(BeFalse())
	})

	It("forbids plain style for a scalar that looks like a flow indicator", func() {
		a := yaml_emitter_analyze_scalar([]byte("[not plain"))
		Expect(a.flow_plain_allowed).To(BeFalse())
	})

	It("marks a multi-line scalar as multiline", func() {
		a := yaml_emitter_analyze_scalar([]byte("line one\nline two"))
		Expect(a.multiline).To(BeTrue())
	})

	It("enforces max_nest_level on deeply nested flow containers", func() {
		var buf []byte
		var e yaml_emitter_t
		e.max_nest_level = 2
		Expect(yaml_emitter_set_output_string(&e, &buf)).To(BeTrue())

		events := []yaml_event_t{
			{event_type: YAML_STREAM_START_EVENT, encoding: YAML_UTF8_ENCODING},
			{event_type: YAML_DOCUMENT_START_EVENT, implicit: true},
			{event_type: YAML_SEQUENCE_START_EVENT, tag: []byte("tag:yaml.org,2002:seq"), implicit: true, style: yaml_style_t(YAML_FLOW_SEQUENCE_STYLE)},
			{event_type: YAML_SEQUENCE_START_EVENT, tag: []byte("tag:yaml.org,2002:seq"), implicit: true, style: yaml_style_t(YAML_FLOW_SEQUENCE_STYLE)},
			{event_type: YAML_SEQUENCE_START_EVENT, tag: []byte("tag:yaml.org,2002:seq"), implicit: true, style: yaml_style_t(YAML_FLOW_SEQUENCE_STYLE)},
			{event_type: YAML_SCALAR_EVENT, tag: []byte("tag:yaml.org,2002:str"), value: []byte("1"), implicit: true, quoted_implicit: true, style: yaml_style_t(YAML_PLAIN_SCALAR_STYLE)},
			{event_type: YAML_SEQUENCE_END_EVENT},
			{event_type: YAML_SEQUENCE_END_EVENT},
			{event_type: YAML_SEQUENCE_END_EVENT},
			{event_type: YAML_DOCUMENT_END_EVENT, implicit: true},
			{event_type: YAML_STREAM_END_EVENT},
		}
		var failed bool
		for i := range events {
			if !yaml_emitter_emit(&e, &events[i]) {
				failed = true
				break
			}
		}
		Expect(failed).To(BeTrue())
		Expect(e.error).To(Equal(YAML_EMITTER_ERROR))
	})
})
