package yaml

import "io"

// yaml_parser_state_t enumerates the parser's 23 pushdown states
// (spec §4.3).
type yaml_parser_state_t int

const (
	YAML_PARSE_STREAM_START_STATE yaml_parser_state_t = iota
	YAML_PARSE_IMPLICIT_DOCUMENT_START_STATE
	YAML_PARSE_DOCUMENT_START_STATE
	YAML_PARSE_DOCUMENT_CONTENT_STATE
	YAML_PARSE_DOCUMENT_END_STATE
	YAML_PARSE_BLOCK_NODE_STATE
	YAML_PARSE_BLOCK_NODE_OR_INDENTLESS_SEQUENCE_STATE
	YAML_PARSE_FLOW_NODE_STATE
	YAML_PARSE_BLOCK_SEQUENCE_FIRST_ENTRY_STATE
	YAML_PARSE_BLOCK_SEQUENCE_ENTRY_STATE
	YAML_PARSE_INDENTLESS_SEQUENCE_ENTRY_STATE
	YAML_PARSE_BLOCK_MAPPING_FIRST_KEY_STATE
	YAML_PARSE_BLOCK_MAPPING_KEY_STATE
	YAML_PARSE_BLOCK_MAPPING_VALUE_STATE
	YAML_PARSE_FLOW_SEQUENCE_FIRST_ENTRY_STATE
	YAML_PARSE_FLOW_SEQUENCE_ENTRY_STATE
	YAML_PARSE_FLOW_SEQUENCE_ENTRY_MAPPING_KEY_STATE
	YAML_PARSE_FLOW_SEQUENCE_ENTRY_MAPPING_VALUE_STATE
	YAML_PARSE_FLOW_SEQUENCE_ENTRY_MAPPING_END_STATE
	YAML_PARSE_FLOW_MAPPING_FIRST_KEY_STATE
	YAML_PARSE_FLOW_MAPPING_KEY_STATE
	YAML_PARSE_FLOW_MAPPING_VALUE_STATE
	YAML_PARSE_FLOW_MAPPING_EMPTY_VALUE_STATE
	YAML_PARSE_END_STATE
)

// yaml_simple_key_t is one simple-key candidate slot (spec §3
// SimpleKeyCandidate); one slot exists per flow level plus the block
// slot at index 0 (see simpleKeySlot in scanner.go).
type yaml_simple_key_t struct {
	possible     bool
	required     bool
	token_number int
	mark         yaml_mark_t
}

// inputSource is whichever of the two source kinds (an io.Reader or an
// owned byte slice) a parser was configured with. At most one is set.
type inputSource struct {
	reader io.Reader
	string []byte
}

// outputSink is whichever of the three sink kinds (spec §4.5) an
// emitter was configured with.
type outputSink struct {
	writer     io.Writer
	buf        *[]byte
	fixedBuf   []byte
	fixedUsed  *int
	fixedLimit int
}

// yaml_parser_t is the reader+scanner+parser combined state, mirroring
// libyaml's single struct spanning all three layers. Buffers grow on
// demand (double-on-full), matching spec §5/§9's resource policy.
type yaml_parser_t struct {
	// --- error state (sticky, spec §7) ---
	error        yaml_error_type_t
	problem      string
	problem_mark yaml_mark_t
	problem_value rune // set only for YAML_READER_ERROR (spec §6 "reader errors")
	problem_offset int
	context      string
	context_mark yaml_mark_t

	// --- reader state (spec §4.1) ---
	source          inputSource
	encoding        yaml_encoding_t
	encoding_set    bool
	eof             bool
	raw_buffer      []byte
	raw_buffer_pos  int
	buffer          []rune // decoded characters, trailing 0 sentinel once eof is reached
	widths          []int  // raw byte width each buffer[i] was encoded with
	buffer_pos      int
	unread          int // number of decoded characters available from buffer_pos
	offset          int // raw byte offset consumed so far
	mark            yaml_mark_t

	// --- scanner state (spec §4.2) ---
	stream_start_produced bool
	stream_end_produced   bool
	tokens                []yaml_token_t
	tokens_head           int
	tokens_parsed         int
	token_available       bool
	indent                int
	indents               []int
	flow_level            int
	simple_keys           []yaml_simple_key_t // index 0 = block slot, 1..flow_level = flow slots
	simple_key_allowed    bool

	// --- parser state (spec §4.3) ---
	state          yaml_parser_state_t
	states         []yaml_parser_state_t
	marks          []yaml_mark_t
	tag_directives []yaml_tag_directive_t

	max_nest_level int
}

// yaml_emitter_state_t enumerates the emitter's 18 mirror states
// (spec §4.5).
type yaml_emitter_state_t int

const (
	YAML_EMIT_STREAM_START_STATE yaml_emitter_state_t = iota
	YAML_EMIT_FIRST_DOCUMENT_START_STATE
	YAML_EMIT_DOCUMENT_START_STATE
	YAML_EMIT_DOCUMENT_CONTENT_STATE
	YAML_EMIT_DOCUMENT_END_STATE
	YAML_EMIT_FLOW_SEQUENCE_FIRST_ITEM_STATE
	YAML_EMIT_FLOW_SEQUENCE_ITEM_STATE
	YAML_EMIT_FLOW_MAPPING_FIRST_KEY_STATE
	YAML_EMIT_FLOW_MAPPING_KEY_STATE
	YAML_EMIT_FLOW_MAPPING_SIMPLE_VALUE_STATE
	YAML_EMIT_FLOW_MAPPING_VALUE_STATE
	YAML_EMIT_BLOCK_SEQUENCE_FIRST_ITEM_STATE
	YAML_EMIT_BLOCK_SEQUENCE_ITEM_STATE
	YAML_EMIT_BLOCK_MAPPING_FIRST_KEY_STATE
	YAML_EMIT_BLOCK_MAPPING_KEY_STATE
	YAML_EMIT_BLOCK_MAPPING_SIMPLE_VALUE_STATE
	YAML_EMIT_BLOCK_MAPPING_VALUE_STATE
	YAML_EMIT_END_STATE
)

// scalarAnalysis is the bit-set of allowances computed for a pending
// scalar event (spec §4.5 "Per-scalar analysis").
type scalarAnalysis struct {
	anchor          []byte
	tag             []byte
	value           []byte
	multiline       bool
	flow_plain_allowed  bool
	block_plain_allowed bool
	single_quoted_allowed bool
	block_allowed   bool
	style           yaml_scalar_style_t
}

// yaml_emitter_t is the emitter+writer combined state.
type yaml_emitter_t struct {
	error   yaml_error_type_t
	problem string

	sink     outputSink
	encoding yaml_encoding_t

	canonical   bool
	best_indent int
	best_width  int
	unicode     bool
	line_break  yaml_break_t

	state  yaml_emitter_state_t
	states []yaml_emitter_state_t
	events []yaml_event_t
	events_head int

	indent       int
	flow_level   int
	indents      []int

	root_context      bool
	sequence_context  bool
	mapping_context   bool
	simple_key_context bool

	line    int
	column  int
	whitespace bool
	indention  bool
	open_ended int // 0 = no; 2 = last block scalar kept a trailing blank line, so the next document end writes an explicit "..."

	anchor_data scalarAnalysis
	tag_data    scalarAnalysis
	scalar_data scalarAnalysis

	opened bool
	closed bool

	// buffer accumulates encoded output before a single write to sink,
	// matching libyaml's internal output buffer used ahead of the raw
	// writer flush.
	buffer []byte

	tag_directives []yaml_tag_directive_t

	max_nest_level int
}
