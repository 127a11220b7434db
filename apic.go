package yaml

import (
	"errors"
	"io"
	"unicode/utf8"
)

// This file is the public lifecycle/constructor API (spec §6 "External
// interfaces"): Parser/Emitter wrap the internal yaml_parser_t/
// yaml_emitter_t state, and the per-event-kind constructors below
// mirror WillAbides-yaml/apic.go's one-constructor-per-event-kind
// shape, adapted to validate UTF-8 and duplicate caller-owned byte
// slices per spec §6 "Event constructors ... validating UTF-8 inputs
// and duplicating strings".

// --- style/encoding re-exports ---------------------------------------------

// ScalarStyle is a scalar node/event's representation style.
type ScalarStyle int

const (
	AnyScalarStyle          = ScalarStyle(YAML_ANY_SCALAR_STYLE)
	PlainScalarStyle        = ScalarStyle(YAML_PLAIN_SCALAR_STYLE)
	SingleQuotedScalarStyle = ScalarStyle(YAML_SINGLE_QUOTED_SCALAR_STYLE)
	DoubleQuotedScalarStyle = ScalarStyle(YAML_DOUBLE_QUOTED_SCALAR_STYLE)
	LiteralScalarStyle      = ScalarStyle(YAML_LITERAL_SCALAR_STYLE)
	FoldedScalarStyle       = ScalarStyle(YAML_FOLDED_SCALAR_STYLE)
)

// SequenceStyle is a sequence node/event's representation style.
type SequenceStyle int

const (
	AnySequenceStyle   = SequenceStyle(YAML_ANY_SEQUENCE_STYLE)
	BlockSequenceStyle = SequenceStyle(YAML_BLOCK_SEQUENCE_STYLE)
	FlowSequenceStyle  = SequenceStyle(YAML_FLOW_SEQUENCE_STYLE)
)

// MappingStyle is a mapping node/event's representation style.
type MappingStyle int

const (
	AnyMappingStyle   = MappingStyle(YAML_ANY_MAPPING_STYLE)
	BlockMappingStyle = MappingStyle(YAML_BLOCK_MAPPING_STYLE)
	FlowMappingStyle  = MappingStyle(YAML_FLOW_MAPPING_STYLE)
)

// Encoding is a stream's character encoding.
type Encoding int

const (
	AnyEncoding     = Encoding(YAML_ANY_ENCODING)
	UTF8Encoding    = Encoding(YAML_UTF8_ENCODING)
	UTF16LEEncoding = Encoding(YAML_UTF16LE_ENCODING)
	UTF16BEEncoding = Encoding(YAML_UTF16BE_ENCODING)
)

// LineBreak is the writer's line-break representation.
type LineBreak int

const (
	AnyLineBreak  = LineBreak(YAML_ANY_BREAK)
	CRLineBreak   = LineBreak(YAML_CR_BREAK)
	LNLineBreak   = LineBreak(YAML_LN_BREAK)
	CRLNLineBreak = LineBreak(YAML_CRLN_BREAK)
)

func markToInternal(m Mark) yaml_mark_t {
	return yaml_mark_t{index: m.Index, line: m.Line, column: m.Column}
}

// CheckUTF8 reports whether data is well-formed UTF-8 (spec §6
// "UTF-8 validator"). An empty or nil slice is trivially valid.
func CheckUTF8(data []byte) bool {
	return utf8.Valid(data)
}

func dupBytes(b []byte) []byte {
	if b == nil {
		return nil
	}
	return append([]byte(nil), b...)
}

// --- Token ------------------------------------------------------------------

// TokenType enumerates lexical token kinds (spec §3 Token).
type TokenType int

const (
	NoToken                 = TokenType(YAML_NO_TOKEN)
	StreamStartToken        = TokenType(YAML_STREAM_START_TOKEN)
	StreamEndToken          = TokenType(YAML_STREAM_END_TOKEN)
	VersionDirectiveToken   = TokenType(YAML_VERSION_DIRECTIVE_TOKEN)
	TagDirectiveToken       = TokenType(YAML_TAG_DIRECTIVE_TOKEN)
	DocumentStartToken      = TokenType(YAML_DOCUMENT_START_TOKEN)
	DocumentEndToken        = TokenType(YAML_DOCUMENT_END_TOKEN)
	BlockSequenceStartToken = TokenType(YAML_BLOCK_SEQUENCE_START_TOKEN)
	BlockMappingStartToken  = TokenType(YAML_BLOCK_MAPPING_START_TOKEN)
	BlockEndToken           = TokenType(YAML_BLOCK_END_TOKEN)
	FlowSequenceStartToken  = TokenType(YAML_FLOW_SEQUENCE_START_TOKEN)
	FlowSequenceEndToken    = TokenType(YAML_FLOW_SEQUENCE_END_TOKEN)
	FlowMappingStartToken   = TokenType(YAML_FLOW_MAPPING_START_TOKEN)
	FlowMappingEndToken     = TokenType(YAML_FLOW_MAPPING_END_TOKEN)
	BlockEntryToken         = TokenType(YAML_BLOCK_ENTRY_TOKEN)
	FlowEntryToken          = TokenType(YAML_FLOW_ENTRY_TOKEN)
	KeyToken                = TokenType(YAML_KEY_TOKEN)
	ValueToken              = TokenType(YAML_VALUE_TOKEN)
	AliasToken              = TokenType(YAML_ALIAS_TOKEN)
	AnchorToken             = TokenType(YAML_ANCHOR_TOKEN)
	TagToken                = TokenType(YAML_TAG_TOKEN)
	ScalarToken             = TokenType(YAML_SCALAR_TOKEN)
)

func (t TokenType) String() string { return yaml_token_type_t(t).String() }

// Token is a lexical token (spec §3 Token), the product of Parser.Scan.
type Token struct {
	Type  TokenType
	Start Mark
	End   Mark

	Value  []byte
	Suffix []byte
	Prefix []byte
	Style  ScalarStyle

	Major, Minor int
	Encoding     Encoding
}

func tokenOf(t *yaml_token_t) Token {
	return Token{
		Type:     TokenType(t.token_type),
		Start:    markOf(t.start_mark),
		End:      markOf(t.end_mark),
		Value:    t.value,
		Suffix:   t.suffix,
		Prefix:   t.prefix,
		Style:    ScalarStyle(t.style),
		Major:    t.major,
		Minor:    t.minor,
		Encoding: Encoding(t.encoding),
	}
}

// --- Event -------------------------------------------------------------

// EventType enumerates syntactic event kinds (spec §3 Event).
type EventType int

const (
	NoEvent                = EventType(YAML_NO_EVENT)
	StreamStartEventType   = EventType(YAML_STREAM_START_EVENT)
	StreamEndEventType     = EventType(YAML_STREAM_END_EVENT)
	DocumentStartEventType = EventType(YAML_DOCUMENT_START_EVENT)
	DocumentEndEventType   = EventType(YAML_DOCUMENT_END_EVENT)
	AliasEventType         = EventType(YAML_ALIAS_EVENT)
	ScalarEventType        = EventType(YAML_SCALAR_EVENT)
	SequenceStartEventType = EventType(YAML_SEQUENCE_START_EVENT)
	SequenceEndEventType   = EventType(YAML_SEQUENCE_END_EVENT)
	MappingStartEventType  = EventType(YAML_MAPPING_START_EVENT)
	MappingEndEventType    = EventType(YAML_MAPPING_END_EVENT)
)

func (t EventType) String() string { return yaml_event_type_t(t).String() }

// VersionDirective is a parsed or to-be-written %YAML directive.
type VersionDirective struct {
	Major, Minor int
}

// TagDirective is a parsed or to-be-written %TAG directive.
type TagDirective struct {
	Handle, Prefix []byte
}

// Event is a syntactic event (spec §3 Event): the unit Parser.Parse
// pulls and Emitter.Emit pushes. Only the fields relevant to Type are
// meaningful, matching the internal tagged-union convention.
type Event struct {
	Type  EventType
	Start Mark
	End   Mark

	Encoding Encoding

	VersionDirective *VersionDirective
	TagDirectives    []TagDirective

	Anchor         []byte
	Tag            []byte
	Value          []byte
	Implicit       bool
	QuotedImplicit bool
	ScalarStyle    ScalarStyle
	SequenceStyle  SequenceStyle
	MappingStyle   MappingStyle
}

func eventOf(e *yaml_event_t) Event {
	out := Event{
		Type:           EventType(e.event_type),
		Start:          markOf(e.start_mark),
		End:            markOf(e.end_mark),
		Encoding:       Encoding(e.encoding),
		Anchor:         e.anchor,
		Tag:            e.tag,
		Value:          e.value,
		Implicit:       e.implicit,
		QuotedImplicit: e.quoted_implicit,
		ScalarStyle:    ScalarStyle(e.style),
		SequenceStyle:  SequenceStyle(e.style),
		MappingStyle:   MappingStyle(e.style),
	}
	if e.version_directive != nil {
		out.VersionDirective = &VersionDirective{Major: e.version_directive.major, Minor: e.version_directive.minor}
	}
	for _, td := range e.tag_directives {
		out.TagDirectives = append(out.TagDirectives, TagDirective{Handle: td.handle, Prefix: td.prefix})
	}
	return out
}

func (e *Event) toInternal() yaml_event_t {
	ev := yaml_event_t{
		event_type:      yaml_event_type_t(e.Type),
		start_mark:      markToInternal(e.Start),
		end_mark:        markToInternal(e.End),
		encoding:        yaml_encoding_t(e.Encoding),
		anchor:          e.Anchor,
		tag:             e.Tag,
		value:           e.Value,
		implicit:        e.Implicit,
		quoted_implicit: e.QuotedImplicit,
	}
	switch e.Type {
	case ScalarEventType:
		ev.style = yaml_style_t(e.ScalarStyle)
	case SequenceStartEventType:
		ev.style = yaml_style_t(e.SequenceStyle)
	case MappingStartEventType:
		ev.style = yaml_style_t(e.MappingStyle)
	}
	if e.VersionDirective != nil {
		ev.version_directive = &yaml_version_directive_t{major: e.VersionDirective.Major, minor: e.VersionDirective.Minor}
	}
	for _, td := range e.TagDirectives {
		ev.tag_directives = append(ev.tag_directives, yaml_tag_directive_t{handle: td.Handle, prefix: td.Prefix})
	}
	return ev
}

// --- event constructors (spec §6 "Event constructors") ---------------------

func StreamStartEvent(encoding Encoding) Event {
	return Event{Type: StreamStartEventType, Encoding: encoding}
}

func StreamEndEvent() Event {
	return Event{Type: StreamEndEventType}
}

func DocumentStartEvent(version *VersionDirective, tagDirectives []TagDirective, implicit bool) Event {
	return Event{Type: DocumentStartEventType, VersionDirective: version, TagDirectives: tagDirectives, Implicit: implicit}
}

func DocumentEndEvent(implicit bool) Event {
	return Event{Type: DocumentEndEventType, Implicit: implicit}
}

func NewAliasEvent(anchor []byte) (Event, error) {
	if !CheckUTF8(anchor) {
		return Event{}, errors.New("yaml: alias anchor is not valid UTF-8")
	}
	return Event{Type: AliasEventType, Anchor: dupBytes(anchor)}, nil
}

func NewScalarEvent(anchor, tag, value []byte, plainImplicit, quotedImplicit bool, style ScalarStyle) (Event, error) {
	if !CheckUTF8(anchor) || !CheckUTF8(tag) || !CheckUTF8(value) {
		return Event{}, errors.New("yaml: scalar event field is not valid UTF-8")
	}
	return Event{
		Type:           ScalarEventType,
		Anchor:         dupBytes(anchor),
		Tag:            dupBytes(tag),
		Value:          dupBytes(value),
		Implicit:       plainImplicit,
		QuotedImplicit: quotedImplicit,
		ScalarStyle:    style,
	}, nil
}

func NewSequenceStartEvent(anchor, tag []byte, implicit bool, style SequenceStyle) (Event, error) {
	if !CheckUTF8(anchor) || !CheckUTF8(tag) {
		return Event{}, errors.New("yaml: sequence-start event field is not valid UTF-8")
	}
	return Event{Type: SequenceStartEventType, Anchor: dupBytes(anchor), Tag: dupBytes(tag), Implicit: implicit, SequenceStyle: style}, nil
}

func NewSequenceEndEvent() Event { return Event{Type: SequenceEndEventType} }

func NewMappingStartEvent(anchor, tag []byte, implicit bool, style MappingStyle) (Event, error) {
	if !CheckUTF8(anchor) || !CheckUTF8(tag) {
		return Event{}, errors.New("yaml: mapping-start event field is not valid UTF-8")
	}
	return Event{Type: MappingStartEventType, Anchor: dupBytes(anchor), Tag: dupBytes(tag), Implicit: implicit, MappingStyle: style}, nil
}

func NewMappingEndEvent() Event { return Event{Type: MappingEndEventType} }

// --- Parser ------------------------------------------------------------

// Parser pulls tokens, events, or whole documents from a configured
// input source (spec §6 "Pull APIs"). The zero value is not usable;
// use NewParser.
type Parser struct {
	p yaml_parser_t
}

// NewParser returns a Parser with no input configured; call
// SetInputString or SetInputReader before Scan/Parse/Load.
func NewParser() *Parser {
	return &Parser{p: yaml_parser_t{max_nest_level: defaultMaxNestLevel}}
}

// SetInputString configures the parser to read from a fixed byte slice
// (spec §6 `parser_set_input_string`).
func (p *Parser) SetInputString(input []byte) error {
	if !yaml_parser_set_input_string(&p.p, input) {
		return parserError(&p.p)
	}
	return nil
}

// SetInputReader configures the parser to stream from r (spec §6
// `parser_set_input`, realized over io.Reader per SPEC_FULL.md's
// DOMAIN STACK rather than a bespoke callback/userdata pair).
func (p *Parser) SetInputReader(r io.Reader) error {
	if !yaml_parser_set_input_reader(&p.p, r) {
		return parserError(&p.p)
	}
	return nil
}

// SetEncoding pins the stream encoding, bypassing BOM detection (spec
// §6 `parser_set_encoding`).
func (p *Parser) SetEncoding(encoding Encoding) error {
	if !yaml_parser_set_encoding(&p.p, yaml_encoding_t(encoding)) {
		return parserError(&p.p)
	}
	return nil
}

// SetMaxNestLevel bounds this parser's combined flow+block nesting
// depth (spec §6 `set_max_nest_level`; spec §9 REDESIGN FLAG — this
// mutates only the instance, never a process-global).
func (p *Parser) SetMaxNestLevel(n int) {
	p.p.max_nest_level = n
}

// Scan pulls the next lexical token (spec §6 `parser_scan`).
func (p *Parser) Scan() (Token, error) {
	var tok yaml_token_t
	if !yaml_parser_scan(&p.p, &tok) {
		return Token{}, parserError(&p.p)
	}
	return tokenOf(&tok), nil
}

// Parse pulls the next syntactic event (spec §6 `parser_parse`).
func (p *Parser) Parse() (Event, error) {
	var ev yaml_event_t
	if !yaml_parser_parse(&p.p, &ev) {
		return Event{}, parserError(&p.p)
	}
	return eventOf(&ev), nil
}

// Load composes and returns the next document in the stream, leaving
// the stream positioned for the next call; it returns io.EOF once the
// stream is exhausted (spec §6 `parser_load`, a per-document pull —
// grounded on original_source/examples/apis/loading.c's
// load-then-inspect-then-load-again loop).
func (p *Parser) Load() (*Document, error) {
	doc, ok, err := yaml_composer_compose_one(&p.p)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, io.EOF
	}
	return doc, nil
}

// LoadAll composes every remaining document in the stream in one call.
func (p *Parser) LoadAll() ([]*Document, error) {
	return yaml_composer_compose_all(&p.p)
}

// yaml_parser_scan pulls and removes the next token from the parser's
// lookahead queue, the public-API counterpart of the peek_token/
// skip_token pair parser.go's state machine uses internally.
func yaml_parser_scan(parser *yaml_parser_t, token *yaml_token_t) bool {
	t := peek_token(parser)
	if t == nil {
		return false
	}
	*token = *t
	skip_token(parser)
	return true
}

// --- Emitter -----------------------------------------------------------

// Emitter pushes events, or whole documents, to a configured output
// sink (spec §6 "Push APIs"). The zero value is not usable; use
// NewEmitter.
type Emitter struct {
	e yaml_emitter_t
}

// NewEmitter returns an Emitter with no output configured; call one of
// SetOutputString/SetOutputWriter/SetOutputFixed before Open.
func NewEmitter() *Emitter {
	return &Emitter{e: yaml_emitter_t{max_nest_level: defaultMaxNestLevel}}
}

// SetOutputString configures the emitter to append to *buf (spec §6
// `emitter_set_output_string`, owned-slice variant).
func (em *Emitter) SetOutputString(buf *[]byte) error {
	if !yaml_emitter_set_output_string(&em.e, buf) {
		return emitterError(&em.e)
	}
	return nil
}

// SetOutputWriter configures the emitter to stream to w (spec §6
// `emitter_set_output`, realized over io.Writer).
func (em *Emitter) SetOutputWriter(w io.Writer) error {
	if !yaml_emitter_set_output_writer(&em.e, w) {
		return emitterError(&em.e)
	}
	return nil
}

// SetOutputFixed configures the emitter to write into a caller-owned
// fixed-size buffer, erroring on overflow (spec §6
// `emitter_set_output_string(buf, cap, out_written)`).
func (em *Emitter) SetOutputFixed(buf []byte, used *int) error {
	if !yaml_emitter_set_output_fixed(&em.e, buf, used) {
		return emitterError(&em.e)
	}
	return nil
}

func (em *Emitter) SetEncoding(encoding Encoding) error {
	if !yaml_emitter_set_encoding(&em.e, yaml_encoding_t(encoding)) {
		return emitterError(&em.e)
	}
	return nil
}

func (em *Emitter) SetCanonical(canonical bool) { em.e.canonical = canonical }
func (em *Emitter) SetIndent(n int)             { em.e.best_indent = n }
func (em *Emitter) SetWidth(n int)              { em.e.best_width = n }
func (em *Emitter) SetUnicode(unicode bool)     { em.e.unicode = unicode }
func (em *Emitter) SetLineBreak(lb LineBreak)   { em.e.line_break = yaml_break_t(lb) }

// SetMaxNestLevel bounds this emitter's combined flow+block nesting
// depth (spec §9 REDESIGN FLAG — instance-scoped, never a process
// global).
func (em *Emitter) SetMaxNestLevel(n int) {
	em.e.max_nest_level = n
}

// Open emits STREAM-START (spec §6 `emitter_open`).
func (em *Emitter) Open() error {
	ev := yaml_event_t{event_type: YAML_STREAM_START_EVENT, encoding: yaml_encoding_t(em.e.encoding)}
	if !yaml_emitter_emit(&em.e, &ev) {
		return emitterError(&em.e)
	}
	return nil
}

// Close emits STREAM-END (spec §6 `emitter_close`).
func (em *Emitter) Close() error {
	ev := yaml_event_t{event_type: YAML_STREAM_END_EVENT}
	if !yaml_emitter_emit(&em.e, &ev) {
		return emitterError(&em.e)
	}
	return nil
}

// Flush forces any buffered output to the sink (spec §6 `emitter_flush`).
func (em *Emitter) Flush() error {
	if !yaml_emitter_flush(&em.e) {
		return emitterError(&em.e)
	}
	return nil
}

// Emit pushes a single event (spec §6 `emitter_emit`). Event is passed
// by value, so the "takes ownership even on failure" contract is
// trivially satisfied: the caller's copy is independent of whatever the
// emitter retains.
func (em *Emitter) Emit(ev Event) error {
	internal := ev.toInternal()
	if !yaml_emitter_emit(&em.e, &internal) {
		return emitterError(&em.e)
	}
	return nil
}

// Dump pushes doc's full DocumentStart..DocumentEnd event run, produced
// by the two-pass dumper (spec §6 `emitter_dump`). Callers wrap one or
// more Dump calls between Open and Close to write a multi-document
// stream.
func (em *Emitter) Dump(doc *Document) error {
	for _, built := range yaml_dumper_generate_events(doc) {
		built := built
		if !yaml_emitter_emit(&em.e, &built) {
			return emitterError(&em.e)
		}
	}
	return nil
}
