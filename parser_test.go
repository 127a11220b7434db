package yaml

import (
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

func parseAllEvents(input string) ([]yaml_event_t, error) {
	var p yaml_parser_t
	if !yaml_parser_set_input_string(&p, []byte(input)) {
		return nil, parserError(&p)
	}
	var events []yaml_event_t
	for {
		var ev yaml_event_t
		if !yaml_parser_parse(&p, &ev) {
			return nil, parserError(&p)
		}
		events = append(events, ev)
		if ev.event_type == YAML_STREAM_END_EVENT {
			return events, nil
		}
	}
}

func eventTypes(events []yaml_event_t) []yaml_event_type_t {
	out := make([]yaml_event_type_t, len(events))
	for i, e := range events {
		out[i] = e.event_type
	}
	return out
}

var _ = Describe("parser", func() {
	It("parses a single scalar document with implicit start/end", func() {
		events, err := parseAllEvents("foo\n")
		Expect(err).NotTo(HaveOccurred())
		Expect(eventTypes(events)).To(Equal([]yaml_event_type_t{
			YAML_STREAM_START_EVENT,
			YAML_DOCUMENT_START_EVENT,
			YAML_SCALAR_EVENT,
			YAML_DOCUMENT_END_EVENT,
			YAML_STREAM_END_EVENT,
		}))
		Expect(events[1].implicit).To(BeTrue())
		Expect(string(events[2].value)).To(Equal("foo"))
	})

	It("parses a block mapping with a nested sequence value", func() {
		events, err := parseAllEvents("a:\n  - 1\n  - 2\n")
		Expect(err).NotTo(HaveOccurred())
		Expect(eventTypes(events)).To(Equal([]yaml_event_type_t{
			YAML_STREAM_START_EVENT,
			YAML_DOCUMENT_START_EVENT,
			YAML_MAPPING_START_EVENT,
			YAML_SCALAR_EVENT,
			YAML_SEQUENCE_START_EVENT,
			YAML_SCALAR_EVENT,
			YAML_SCALAR_EVENT,
			YAML_SEQUENCE_END_EVENT,
			YAML_MAPPING_END_EVENT,
			YAML_DOCUMENT_END_EVENT,
			YAML_STREAM_END_EVENT,
		}))
	})

	It("marks an explicit document start with '---' as non-implicit", func() {
		events, err := parseAllEvents("---\nfoo\n...\n")
		Expect(err).NotTo(HaveOccurred())
		Expect(events[1].event_type).To(Equal(YAML_DOCUMENT_START_EVENT))
		Expect(events[1].implicit).To(BeFalse())
	})

	It("errors on an unterminated flow sequence", func() {
		_, err := parseAllEvents("[1, 2\n")
		Expect(err).To(HaveOccurred())
	})
})
