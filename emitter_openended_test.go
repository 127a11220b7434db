package yaml

import (
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

// These specs cover Open Question decision 1 in DESIGN.md: a block
// scalar written with the keep ("+") chomping indicator, whose last
// line is blank, sets open_ended = 2; the next DocumentEnd that would
// otherwise be implicit is upgraded to an explicit "..." so the blank
// trailing line isn't misread as belonging to the next document.
var _ = Describe("emitter open-ended handling", func() {
	It("sets open_ended=2 when a block scalar's last line is blank", func() {
		var buf []byte
		var e yaml_emitter_t
		Expect(yaml_emitter_set_output_string(&e, &buf)).To(BeTrue())
		Expect(yaml_emitter_write_block_scalar_hints(&e, []byte("foo\n\n"))).To(BeTrue())
		Expect(e.open_ended).To(Equal(2))
	})

	It("leaves open_ended=0 for a block scalar ending in a single line break", func() {
		var buf []byte
		var e yaml_emitter_t
		Expect(yaml_emitter_set_output_string(&e, &buf)).To(BeTrue())
		Expect(yaml_emitter_write_block_scalar_hints(&e, []byte("foo\n"))).To(BeTrue())
		Expect(e.open_ended).To(Equal(0))
	})

	It("upgrades an implicit document end to explicit '...' after a keep-chomped blank trailing line", func() {
		events := []yaml_event_t{
			{event_type: YAML_STREAM_START_EVENT, encoding: YAML_UTF8_ENCODING},
			{event_type: YAML_DOCUMENT_START_EVENT, implicit: true},
			{
				event_type:      YAML_SCALAR_EVENT,
				tag:             []byte("tag:yaml.org,2002:str"),
				value:           []byte("foo\n\n"),
				implicit:        true,
				quoted_implicit: true,
				style:           yaml_style_t(YAML_LITERAL_SCALAR_STYLE),
			},
			{event_type: YAML_DOCUMENT_END_EVENT, implicit: true},
			{event_type: YAML_STREAM_END_EVENT},
		}
		out, err := emitEvents(events)
		Expect(err).NotTo(HaveOccurred())
		Expect(out).To(ContainSubstring("...\n"))
	})

	It("resets open_ended after forcing the explicit end marker", func() {
		var buf []byte
		var e yaml_emitter_t
		Expect(yaml_emitter_set_output_string(&e, &buf)).To(BeTrue())

		events := []yaml_event_t{
			{event_type: YAML_STREAM_START_EVENT, encoding: YAML_UTF8_ENCODING},
			{event_type: YAML_DOCUMENT_START_EVENT, implicit: true},
			{
				event_type:      YAML_SCALAR_EVENT,
				tag:             []byte("tag:yaml.org,2002:str"),
				value:           []byte("foo\n\n"),
				implicit:        true,
				quoted_implicit: true,
				style:           yaml_style_t(YAML_LITERAL_SCALAR_STYLE),
			},
			{event_type: YAML_DOCUMENT_END_EVENT, implicit: true},
		}
		for i := range events {
			Expect(yaml_emitter_emit(&e, &events[i])).To(BeTrue())
		}
		Expect(e.open_ended).To(Equal(0))
	})
})
