package yaml

import (
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("dumper", func() {
	It("generates a flat scalar event run with no anchors", func() {
		doc := NewDocument(nil, nil, true, true)
		doc.AddScalar("", []byte("hello"), PlainScalarStyle)

		events := yaml_dumper_generate_events(doc)
		Expect(eventTypes(events)).To(Equal([]yaml_event_type_t{
			YAML_DOCUMENT_START_EVENT,
			YAML_SCALAR_EVENT,
			YAML_DOCUMENT_END_EVENT,
		}))
		Expect(events[1].anchor).To(BeEmpty())
		Expect(events[1].implicit).To(BeTrue())
	})

	It("assigns an anchor and emits an alias for a node reached twice", func() {
		doc := NewDocument(nil, nil, true, true)
		root := doc.AddSequence("", BlockSequenceStyle)
		shared := doc.AddScalar("", []byte("shared"), PlainScalarStyle)
		doc.AppendSequenceItem(root, shared)
		doc.AppendSequenceItem(root, shared)

		events := yaml_dumper_generate_events(doc)
		Expect(eventTypes(events)).To(Equal([]yaml_event_type_t{
			YAML_DOCUMENT_START_EVENT,
			YAML_SEQUENCE_START_EVENT,
			YAML_SCALAR_EVENT,
			YAML_ALIAS_EVENT,
			YAML_SEQUENCE_END_EVENT,
			YAML_DOCUMENT_END_EVENT,
		}))
		Expect(events[2].anchor).NotTo(BeEmpty())
		Expect(events[3].anchor).To(Equal(events[2].anchor))
	})

	It("marks a non-default tag as non-implicit so it survives round-trip", func() {
		doc := NewDocument(nil, nil, true, true)
		doc.AddScalar("!custom", []byte("x"), PlainScalarStyle)

		events := yaml_dumper_generate_events(doc)
		Expect(events[1].implicit).To(BeFalse())
		Expect(events[1].quoted_implicit).To(BeFalse())
		Expect(string(events[1].tag)).To(Equal("!custom"))
	})

	It("does not re-visit an unshared node's subtree twice", func() {
		doc := NewDocument(nil, nil, true, true)
		root := doc.AddSequence("", BlockSequenceStyle)
		a := doc.AddScalar("", []byte("a"), PlainScalarStyle)
		b := doc.AddScalar("", []byte("b"), PlainScalarStyle)
		doc.AppendSequenceItem(root, a)
		doc.AppendSequenceItem(root, b)

		events := yaml_dumper_generate_events(doc)
		var scalarCount int
		for _, e := range events {
			if e.event_type == YAML_SCALAR_EVENT {
				scalarCount++
			}
		}
		Expect(scalarCount).To(Equal(2))
	})
})
