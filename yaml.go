// Package yaml implements a YAML 1.1/1.2 token/event/document pipeline
// and its dual emitter, ported in the style of libyaml: a reader, a
// scanner, a pushdown parser, a composer, and a mirror emitter, all
// operating over sticky-error, bool-returning internal routines the way
// yaml_parser_t/yaml_emitter_t do in the C library this package's
// internals are modeled on.
//
// The public surface (Parser, Emitter, Document) wraps that internal
// layer with idiomatic Go errors; callers who only need a document tree
// typically only touch Parser.Load, Document, and Emitter.Dump.
package yaml

import "fmt"

const (
	// Version is this package's own version, distinct from the YAML
	// spec version a stream declares.
	VersionMajor = 0
	VersionMinor = 1
	VersionPatch = 0
)

// yaml_mark_t is a position in the input/output stream.
type yaml_mark_t struct {
	index  int
	line   int
	column int
}

func (m yaml_mark_t) String() string {
	return fmt.Sprintf("line %d, column %d", m.line+1, m.column+1)
}

// yaml_encoding_t is the stream character encoding.
type yaml_encoding_t int

const (
	YAML_ANY_ENCODING yaml_encoding_t = iota
	YAML_UTF8_ENCODING
	YAML_UTF16LE_ENCODING
	YAML_UTF16BE_ENCODING
)

// yaml_break_t is the line break representation used by the writer.
type yaml_break_t int

const (
	YAML_ANY_BREAK yaml_break_t = iota
	YAML_CR_BREAK
	YAML_LN_BREAK
	YAML_CRLN_BREAK
)

// yaml_error_type_t is the error taxonomy from spec §7.
type yaml_error_type_t int

const (
	YAML_NO_ERROR yaml_error_type_t = iota
	YAML_MEMORY_ERROR
	YAML_READER_ERROR
	YAML_SCANNER_ERROR
	YAML_PARSER_ERROR
	YAML_COMPOSER_ERROR
	YAML_WRITER_ERROR
	YAML_EMITTER_ERROR
)

func (k yaml_error_type_t) String() string {
	switch k {
	case YAML_NO_ERROR:
		return "no error"
	case YAML_MEMORY_ERROR:
		return "memory error"
	case YAML_READER_ERROR:
		return "reader error"
	case YAML_SCANNER_ERROR:
		return "scanner error"
	case YAML_PARSER_ERROR:
		return "parser error"
	case YAML_COMPOSER_ERROR:
		return "composer error"
	case YAML_WRITER_ERROR:
		return "writer error"
	case YAML_EMITTER_ERROR:
		return "emitter error"
	}
	return "unknown error"
}

// yaml_scalar_style_t is the source/requested style of a scalar.
type yaml_scalar_style_t int

const (
	YAML_ANY_SCALAR_STYLE yaml_scalar_style_t = iota
	YAML_PLAIN_SCALAR_STYLE
	YAML_SINGLE_QUOTED_SCALAR_STYLE
	YAML_DOUBLE_QUOTED_SCALAR_STYLE
	YAML_LITERAL_SCALAR_STYLE
	YAML_FOLDED_SCALAR_STYLE
)

// yaml_sequence_style_t is the style of a sequence node/event.
type yaml_sequence_style_t int

const (
	YAML_ANY_SEQUENCE_STYLE yaml_sequence_style_t = iota
	YAML_BLOCK_SEQUENCE_STYLE
	YAML_FLOW_SEQUENCE_STYLE
)

// yaml_mapping_style_t is the style of a mapping node/event.
type yaml_mapping_style_t int

const (
	YAML_ANY_MAPPING_STYLE yaml_mapping_style_t = iota
	YAML_BLOCK_MAPPING_STYLE
	YAML_FLOW_MAPPING_STYLE
)

// yaml_style_t is the union style carried on yaml_event_t; scalar,
// sequence, and mapping style constants are all convertible to it since
// they share ordinal 0 ("any") and never overlap meaningfully within a
// single event (only one of the three style enums is ever meaningful
// for a given event_type).
type yaml_style_t int

// yaml_version_directive_t is a parsed %YAML directive.
type yaml_version_directive_t struct {
	major int
	minor int
}

// yaml_tag_directive_t is a parsed %TAG directive, or one of the two
// implicit defaults injected after a document's directives are read.
type yaml_tag_directive_t struct {
	handle []byte
	prefix []byte
}

// default_tag_directives are injected (with allow_duplicates=true) after
// a document's own directives are processed; a document may still
// override them as long as it does so before the injection point, per
// DESIGN.md's recorded open-question decision.
var default_tag_directives = []yaml_tag_directive_t{
	{handle: []byte("!"), prefix: []byte("!")},
	{handle: []byte("!!"), prefix: []byte("tag:yaml.org,2002:")},
}

// defaultMaxNestLevel bounds combined flow+block nesting depth. It is an
// instance default, never process-global mutable state (spec §9
// REDESIGN FLAGS): each yaml_parser_t/yaml_emitter_t copies it into its
// own max_nest_level field at construction and SetMaxNestLevel only ever
// mutates that instance.
const defaultMaxNestLevel = 1000

// simpleKeyMaxLength is the 1024-byte simple-key length bound from spec §3.
const simpleKeyMaxLength = 1024
