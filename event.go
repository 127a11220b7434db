package yaml

// yaml_event_type_t enumerates syntactic event kinds (spec §3 Event).
type yaml_event_type_t int

const (
	YAML_NO_EVENT yaml_event_type_t = iota
	YAML_STREAM_START_EVENT
	YAML_STREAM_END_EVENT
	YAML_DOCUMENT_START_EVENT
	YAML_DOCUMENT_END_EVENT
	YAML_ALIAS_EVENT
	YAML_SCALAR_EVENT
	YAML_SEQUENCE_START_EVENT
	YAML_SEQUENCE_END_EVENT
	YAML_MAPPING_START_EVENT
	YAML_MAPPING_END_EVENT
)

func (t yaml_event_type_t) String() string {
	names := [...]string{
		"none", "stream start", "stream end", "document start",
		"document end", "alias", "scalar", "sequence start",
		"sequence end", "mapping start", "mapping end",
	}
	if int(t) < len(names) {
		return names[t]
	}
	return "unknown event"
}

// yaml_event_t is a tagged union over every syntactic event kind.
type yaml_event_t struct {
	event_type yaml_event_type_t
	start_mark yaml_mark_t
	end_mark   yaml_mark_t

	// STREAM-START
	encoding yaml_encoding_t

	// DOCUMENT-START / DOCUMENT-END
	version_directive *yaml_version_directive_t
	tag_directives    []yaml_tag_directive_t

	// ALIAS: anchor
	// SCALAR: anchor, tag, value, implicit (plain_implicit), quoted_implicit, style
	// SEQUENCE-START / MAPPING-START: anchor, tag, implicit, style
	anchor          []byte
	tag             []byte
	value           []byte
	implicit        bool
	quoted_implicit bool
	style           yaml_style_t
}

// scalarStyle narrows the union style field for a SCALAR event.
func (e *yaml_event_t) scalarStyle() yaml_scalar_style_t {
	return yaml_scalar_style_t(e.style)
}

// sequenceStyle narrows the union style field for a SEQUENCE-START event.
func (e *yaml_event_t) sequenceStyle() yaml_sequence_style_t {
	return yaml_sequence_style_t(e.style)
}

// mappingStyle narrows the union style field for a MAPPING-START event.
func (e *yaml_event_t) mappingStyle() yaml_mapping_style_t {
	return yaml_mapping_style_t(e.style)
}
