package yaml

import (
	"strconv"
)

// --- character classification -------------------------------------------

func isBlank(r rune) bool  { return r == ' ' || r == '\t' }
func isSpace(r rune) bool  { return r == ' ' }
func isTab(r rune) bool    { return r == '\t' }
func isBreak(r rune) bool  { return r == '\r' || r == '\n' || r == 0x85 || r == 0x2028 || r == 0x2029 }
func isBlankZ(r rune) bool { return isBlank(r) || isBreak(r) || r == 0 }
func isBreakZ(r rune) bool { return isBreak(r) || r == 0 }
func isZ(r rune) bool      { return r == 0 }
func isDigit(r rune) bool  { return r >= '0' && r <= '9' }
func isAlpha(r rune) bool {
	return r >= '0' && r <= '9' || r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r == '_' || r == '-'
}
func isHex(r rune) bool {
	return isDigit(r) || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}
func hexValue(r rune) int {
	switch {
	case r >= '0' && r <= '9':
		return int(r - '0')
	case r >= 'a' && r <= 'f':
		return int(r-'a') + 10
	default:
		return int(r-'A') + 10
	}
}

// --- low-level cursor -----------------------------------------------------

// cache ensures n characters are available ahead of buffer_pos.
func (p *yaml_parser_t) cache(n int) bool {
	if p.unread >= n {
		return true
	}
	return yaml_parser_update_buffer(p, n)
}

// char returns the character n positions ahead of buffer_pos. Callers
// must cache(n+1) first.
func (p *yaml_parser_t) char(n int) rune {
	return p.buffer[p.buffer_pos+n]
}

func (p *yaml_parser_t) skip() {
	w := p.widths[p.buffer_pos]
	p.mark.index += w
	p.mark.column++
	p.buffer_pos++
	p.unread--
}

func (p *yaml_parser_t) skipLine() {
	if p.char(0) == '\r' && p.char(1) == '\n' {
		p.mark.index += p.widths[p.buffer_pos] + p.widths[p.buffer_pos+1]
		p.buffer_pos += 2
		p.unread -= 2
	} else if isBreak(p.char(0)) {
		p.mark.index += p.widths[p.buffer_pos]
		p.buffer_pos++
		p.unread--
	}
	p.mark.line++
	p.mark.column = 0
}

// readChar appends the current character to buf and advances past it.
func (p *yaml_parser_t) readChar(buf []rune) []rune {
	buf = append(buf, p.char(0))
	p.skip()
	return buf
}

func (p *yaml_parser_t) readLine(buf []rune) []rune {
	if p.char(0) == '\r' && p.char(1) == '\n' {
		buf = append(buf, '\n')
		p.skip()
		p.skip()
	} else if p.char(0) == '\r' || p.char(0) == '\n' || p.char(0) == 0x85 {
		buf = append(buf, '\n')
		p.skip()
	} else if p.char(0) == 0x2028 || p.char(0) == 0x2029 {
		buf = append(buf, p.char(0))
		p.skip()
	}
	return buf
}

// --- token queue ------------------------------------------------------

// tokenNumber is the absolute ordinal of the next token to be enqueued.
// Since the front of parser.tokens is never trimmed (tokens_head tracks
// the logical head the way a ring buffer's would), tokens_parsed always
// equals tokens_head, so len(parser.tokens) alone is the count of every
// token ever enqueued (spec §3 SimpleKeyCandidate.token_number).
func (p *yaml_parser_t) tokenNumber() int { return len(p.tokens) }

func (p *yaml_parser_t) appendToken(tok yaml_token_t) {
	p.tokens = append(p.tokens, tok)
}

// insertToken inserts tok at tokens_head+pos, implementing the retrofit
// mechanism spec §4.2 describes for inserting a BLOCK-MAPPING-START (or
// KEY) ahead of an already-queued simple-key token.
func (p *yaml_parser_t) insertToken(pos int, tok yaml_token_t) {
	index := p.tokens_head + pos
	p.tokens = append(p.tokens, yaml_token_t{})
	copy(p.tokens[index+1:], p.tokens[index:])
	p.tokens[index] = tok
}

// --- simple keys --------------------------------------------------------

func (p *yaml_parser_t) simpleKeySlot() *yaml_simple_key_t {
	for len(p.simple_keys) <= p.flow_level {
		p.simple_keys = append(p.simple_keys, yaml_simple_key_t{})
	}
	return &p.simple_keys[p.flow_level]
}

// yaml_parser_stale_simple_keys invalidates simple-key candidates that
// have crossed a line or exceeded the 1024-byte bound (spec §3); a
// required candidate that becomes invalid this way is a scanner error.
func yaml_parser_stale_simple_keys(parser *yaml_parser_t) bool {
	for i := range parser.simple_keys {
		key := &parser.simple_keys[i]
		if key.possible && (key.mark.line < parser.mark.line ||
			parser.mark.index-key.mark.index > simpleKeyMaxLength) {
			if key.required {
				return yaml_parser_set_scanner_error(parser, "while scanning a simple key",
					key.mark, "could not find expected ':'")
			}
			key.possible = false
		}
	}
	return true
}

func yaml_parser_remove_simple_key(parser *yaml_parser_t) bool {
	key := parser.simpleKeySlot()
	if key.possible && key.required {
		return yaml_parser_set_scanner_error(parser, "while scanning a simple key",
			key.mark, "could not find expected ':'")
	}
	key.possible = false
	return true
}

// yaml_parser_save_simple_key marks the current position as a possible
// simple key, retrofitting a BLOCK-MAPPING-START ahead of it when in
// block context (spec §4.2 roll_indent/retrofit description).
func yaml_parser_save_simple_key(parser *yaml_parser_t) bool {
	required := parser.flow_level == 0 && parser.indent == parser.mark.column
	if parser.simple_key_allowed {
		if !yaml_parser_remove_simple_key(parser) {
			return false
		}
		*parser.simpleKeySlot() = yaml_simple_key_t{
			possible:     true,
			required:     required,
			token_number: parser.tokenNumber(),
			mark:         parser.mark,
		}
	}
	return true
}

// --- indentation ----------------------------------------------------------

// yaml_parser_roll_indent pushes a new indentation level and inserts a
// block collection start token at the simple key's queue position if
// one is pending there (spec §4.2).
func yaml_parser_roll_indent(parser *yaml_parser_t, col, number int, tokenType yaml_token_type_t, mark yaml_mark_t) bool {
	if parser.flow_level > 0 {
		return true
	}
	if parser.indent < col {
		if len(parser.indents)+parser.flow_level >= parser.maxNestLevel() {
			return yaml_parser_set_scanner_error(parser, "while scanning a node", mark, "exceeded maximum nesting depth")
		}
		parser.indents = append(parser.indents, parser.indent)
		parser.indent = col
		tok := yaml_token_t{token_type: tokenType, start_mark: mark, end_mark: mark}
		if number == -1 {
			parser.appendToken(tok)
		} else {
			parser.insertToken(number-parser.tokens_parsed, tok)
		}
	}
	return true
}

// maxNestLevel returns the parser's configured nesting bound, falling
// back to defaultMaxNestLevel for a parser constructed without going
// through NewParser (spec §4.2 "Nesting limit ... configured maximum").
func (parser *yaml_parser_t) maxNestLevel() int {
	if parser.max_nest_level <= 0 {
		return defaultMaxNestLevel
	}
	return parser.max_nest_level
}

// yaml_parser_unroll_indent pops indentation levels back to col,
// emitting a BLOCK-END for each (spec §4.2). Inactive in flow context.
func yaml_parser_unroll_indent(parser *yaml_parser_t, col int) bool {
	if parser.flow_level > 0 {
		return true
	}
	for parser.indent > col {
		parser.appendToken(yaml_token_t{token_type: YAML_BLOCK_END_TOKEN, start_mark: parser.mark, end_mark: parser.mark})
		parser.indent = parser.indents[len(parser.indents)-1]
		parser.indents = parser.indents[:len(parser.indents)-1]
	}
	return true
}

// --- errors -----------------------------------------------------------

func yaml_parser_set_scanner_error(parser *yaml_parser_t, context string, contextMark yaml_mark_t, problem string) bool {
	parser.error = YAML_SCANNER_ERROR
	parser.context = context
	parser.context_mark = contextMark
	parser.problem = problem
	parser.problem_mark = parser.mark
	return false
}

func yaml_parser_set_scanner_error_at(parser *yaml_parser_t, context string, contextMark yaml_mark_t, problem string, mark yaml_mark_t) bool {
	parser.error = YAML_SCANNER_ERROR
	parser.context = context
	parser.context_mark = contextMark
	parser.problem = problem
	parser.problem_mark = mark
	return false
}

// --- scanning entry points ----------------------------------------------

// yaml_parser_fetch_more_tokens keeps fetching tokens until the head of
// the queue is no longer blocked on a pending simple-key decision
// (spec §4.2's lookahead-driven contract).
func yaml_parser_fetch_more_tokens(parser *yaml_parser_t) bool {
	for {
		needMore := false
		if len(parser.tokens) == parser.tokens_head {
			needMore = true
		} else {
			if !yaml_parser_stale_simple_keys(parser) {
				return false
			}
			for i := range parser.simple_keys {
				key := &parser.simple_keys[i]
				if key.possible && key.token_number == parser.tokens_head {
					needMore = true
					break
				}
			}
		}
		if !needMore {
			break
		}
		if !yaml_parser_fetch_next_token(parser) {
			return false
		}
	}
	parser.token_available = true
	return true
}

func yaml_parser_fetch_next_token(parser *yaml_parser_t) bool {
	if !parser.stream_start_produced {
		return yaml_parser_fetch_stream_start(parser)
	}

	if !yaml_parser_scan_to_next_token(parser) {
		return false
	}
	if !yaml_parser_stale_simple_keys(parser) {
		return false
	}
	if !yaml_parser_unroll_indent(parser, parser.mark.column) {
		return false
	}

	if !parser.cache(4) {
		return false
	}
	if isZ(parser.char(0)) {
		return yaml_parser_fetch_stream_end(parser)
	}

	if parser.mark.column == 0 && parser.char(0) == '%' {
		return yaml_parser_fetch_directive(parser)
	}
	if parser.mark.column == 0 && parser.char(0) == '-' && parser.char(1) == '-' && parser.char(2) == '-' && isBlankZ(parser.char(3)) {
		return yaml_parser_fetch_document_indicator(parser, YAML_DOCUMENT_START_TOKEN)
	}
	if parser.mark.column == 0 && parser.char(0) == '.' && parser.char(1) == '.' && parser.char(2) == '.' && isBlankZ(parser.char(3)) {
		return yaml_parser_fetch_document_indicator(parser, YAML_DOCUMENT_END_TOKEN)
	}

	switch parser.char(0) {
	case '[':
		return yaml_parser_fetch_flow_collection_start(parser, YAML_FLOW_SEQUENCE_START_TOKEN)
	case '{':
		return yaml_parser_fetch_flow_collection_start(parser, YAML_FLOW_MAPPING_START_TOKEN)
	case ']':
		return yaml_parser_fetch_flow_collection_end(parser, YAML_FLOW_SEQUENCE_END_TOKEN)
	case '}':
		return yaml_parser_fetch_flow_collection_end(parser, YAML_FLOW_MAPPING_END_TOKEN)
	case ',':
		return yaml_parser_fetch_flow_entry(parser)
	case '-':
		if isBlankZ(parser.char(1)) {
			return yaml_parser_fetch_block_entry(parser)
		}
	case '?':
		if parser.flow_level > 0 || isBlankZ(parser.char(1)) {
			return yaml_parser_fetch_key(parser)
		}
	case ':':
		if parser.flow_level > 0 || isBlankZ(parser.char(1)) {
			return yaml_parser_fetch_value(parser)
		}
	case '*':
		return yaml_parser_fetch_anchor_or_alias(parser, YAML_ALIAS_TOKEN)
	case '&':
		return yaml_parser_fetch_anchor_or_alias(parser, YAML_ANCHOR_TOKEN)
	case '!':
		return yaml_parser_fetch_tag(parser)
	case '|':
		if parser.flow_level == 0 {
			return yaml_parser_fetch_block_scalar(parser, true)
		}
	case '>':
		if parser.flow_level == 0 {
			return yaml_parser_fetch_block_scalar(parser, false)
		}
	case '\'':
		return yaml_parser_fetch_flow_scalar(parser, true)
	case '"':
		return yaml_parser_fetch_flow_scalar(parser, false)
	}

	if isPlainStart(parser.char(0), parser.flow_level > 0) {
		return yaml_parser_fetch_plain_scalar(parser)
	}

	return yaml_parser_set_scanner_error(parser, "while scanning for the next token", parser.mark,
		"found character that cannot start any token")
}

// isPlainStart reports whether r may begin a plain scalar. '-', '?',
// ':' are handled by the caller's dispatch first when followed by a
// blank (block entry / key / value indicators); reaching here with one
// of those characters means it wasn't, so they're valid plain starts.
func isPlainStart(r rune, inFlow bool) bool {
	switch r {
	case ',', '[', ']', '{', '}', '#', '&', '*', '!', '|', '>', '\'', '"', '%', '@', '`':
		return false
	}
	return !isBlankZ(r)
}

// yaml_parser_fetch_stream_start emits STREAM-START exactly once.
func yaml_parser_fetch_stream_start(parser *yaml_parser_t) bool {
	if !parser.cache(1) {
		return false
	}
	mark := parser.mark
	parser.indent = -1
	parser.stream_start_produced = true
	parser.simple_key_allowed = true
	*parser.simpleKeySlot() = yaml_simple_key_t{}
	parser.appendToken(yaml_token_t{
		token_type: YAML_STREAM_START_TOKEN,
		start_mark: mark, end_mark: mark,
		encoding: parser.encoding,
	})
	return true
}

func yaml_parser_fetch_stream_end(parser *yaml_parser_t) bool {
	if parser.mark.column != 0 {
		parser.mark.column = 0
		parser.mark.line++
	}
	if !yaml_parser_unroll_indent(parser, -1) {
		return false
	}
	if !yaml_parser_remove_simple_key(parser) {
		return false
	}
	parser.simple_key_allowed = false
	parser.appendToken(yaml_token_t{token_type: YAML_STREAM_END_TOKEN, start_mark: parser.mark, end_mark: parser.mark})
	return true
}

// yaml_parser_scan_to_next_token consumes blanks, tabs (where allowed),
// comments, and line breaks between tokens (spec §4.2).
func yaml_parser_scan_to_next_token(parser *yaml_parser_t) bool {
	for {
		if !parser.cache(1) {
			return false
		}
		if parser.mark.column == 0 && parser.char(0) == 0xFEFF {
			parser.skip()
		}
		if !parser.cache(2) {
			return false
		}
		for isBlank(parser.char(0)) || (parser.flow_level > 0 && isTab(parser.char(0))) ||
			(!parser.simple_key_allowed && isTab(parser.char(0))) {
			parser.skip()
			if !parser.cache(1) {
				return false
			}
		}
		if parser.char(0) == '#' {
			for !isBreakZ(parser.char(0)) {
				parser.skip()
				if !parser.cache(1) {
					return false
				}
			}
		}
		if isBreak(parser.char(0)) {
			if !parser.cache(2) {
				return false
			}
			parser.skipLine()
			if parser.flow_level == 0 {
				parser.simple_key_allowed = true
			}
		} else {
			break
		}
	}
	return true
}

// --- directives -----------------------------------------------------------

func yaml_parser_fetch_directive(parser *yaml_parser_t) bool {
	if !yaml_parser_unroll_indent(parser, -1) {
		return false
	}
	if !yaml_parser_remove_simple_key(parser) {
		return false
	}
	parser.simple_key_allowed = false

	tok, ok := yaml_parser_scan_directive(parser)
	if !ok {
		return false
	}
	parser.appendToken(tok)
	return true
}

func yaml_parser_scan_directive(parser *yaml_parser_t) (yaml_token_t, bool) {
	start := parser.mark
	parser.skip() // '%'

	name := parser.scanDirectiveName()
	switch string(name) {
	case "YAML":
		return parser.scanVersionDirectiveValue(start)
	case "TAG":
		return parser.scanTagDirectiveValue(start)
	default:
		for !isBreakZ(parser.char(0)) {
			parser.skip()
			if !parser.cache(1) {
				return yaml_token_t{}, false
			}
		}
		yaml_parser_set_scanner_error(parser, "while scanning a directive", start, "found unknown directive name")
		return yaml_token_t{}, false
	}
}

func (p *yaml_parser_t) scanDirectiveName() []rune {
	var name []rune
	for isAlpha(p.char(0)) {
		name = p.readChar(name)
		if !p.cache(1) {
			return name
		}
	}
	return name
}

func (p *yaml_parser_t) scanDirectiveNumber() (int, bool) {
	var digits []rune
	for isDigit(p.char(0)) {
		digits = p.readChar(digits)
		if !p.cache(1) {
			return 0, false
		}
	}
	if len(digits) == 0 || len(digits) > 9 {
		yaml_parser_set_scanner_error(p, "while scanning a %YAML directive", p.mark, "found extremely long version number")
		return 0, false
	}
	n, _ := strconv.Atoi(string(digits))
	return n, true
}

func (p *yaml_parser_t) scanVersionDirectiveValue(start yaml_mark_t) (yaml_token_t, bool) {
	for isBlank(p.char(0)) {
		p.skip()
		if !p.cache(1) {
			return yaml_token_t{}, false
		}
	}
	major, ok := p.scanDirectiveNumber()
	if !ok {
		return yaml_token_t{}, false
	}
	if p.char(0) != '.' {
		yaml_parser_set_scanner_error(p, "while scanning a %YAML directive", start, "did not find expected '.'")
		return yaml_token_t{}, false
	}
	p.skip()
	if !p.cache(1) {
		return yaml_token_t{}, false
	}
	minor, ok := p.scanDirectiveNumber()
	if !ok {
		return yaml_token_t{}, false
	}
	if major != 1 || (minor != 1 && minor != 2) {
		yaml_parser_set_scanner_error(p, "while scanning a %YAML directive", start, "found incompatible YAML document")
		return yaml_token_t{}, false
	}
	end := p.mark
	if !yaml_parser_scan_directive_end(p, start) {
		return yaml_token_t{}, false
	}
	return yaml_token_t{token_type: YAML_VERSION_DIRECTIVE_TOKEN, start_mark: start, end_mark: end, major: major, minor: minor}, true
}

func (p *yaml_parser_t) scanTagDirectiveValue(start yaml_mark_t) (yaml_token_t, bool) {
	for isBlank(p.char(0)) {
		p.skip()
		if !p.cache(1) {
			return yaml_token_t{}, false
		}
	}
	handle, ok := scanTagHandle(p, true, start)
	if !ok {
		return yaml_token_t{}, false
	}
	for isBlank(p.char(0)) {
		p.skip()
		if !p.cache(1) {
			return yaml_token_t{}, false
		}
	}
	prefix, ok := scanTagURI(p, true, start)
	if !ok {
		return yaml_token_t{}, false
	}
	end := p.mark
	if !yaml_parser_scan_directive_end(p, start) {
		return yaml_token_t{}, false
	}
	return yaml_token_t{token_type: YAML_TAG_DIRECTIVE_TOKEN, start_mark: start, end_mark: end, value: runesToRawBytes(handle), prefix: runesToRawBytes(prefix)}, true
}

func yaml_parser_scan_directive_end(p *yaml_parser_t, start yaml_mark_t) bool {
	for isBlank(p.char(0)) {
		p.skip()
		if !p.cache(1) {
			return false
		}
	}
	if p.char(0) == '#' {
		for !isBreakZ(p.char(0)) {
			p.skip()
			if !p.cache(1) {
				return false
			}
		}
	}
	if !isBreakZ(p.char(0)) {
		return yaml_parser_set_scanner_error(p, "while scanning a directive", start, "did not find expected comment or line break")
	}
	return true
}

// --- document indicators, flow indicators, entries ------------------------

func yaml_parser_fetch_document_indicator(parser *yaml_parser_t, tokenType yaml_token_type_t) bool {
	if !yaml_parser_unroll_indent(parser, -1) {
		return false
	}
	if !yaml_parser_remove_simple_key(parser) {
		return false
	}
	parser.simple_key_allowed = false
	start := parser.mark
	parser.skip()
	parser.skip()
	parser.skip()
	parser.appendToken(yaml_token_t{token_type: tokenType, start_mark: start, end_mark: parser.mark})
	return true
}

func yaml_parser_fetch_flow_collection_start(parser *yaml_parser_t, tokenType yaml_token_type_t) bool {
	if !yaml_parser_save_simple_key(parser) {
		return false
	}
	if len(parser.indents)+parser.flow_level >= parser.maxNestLevel() {
		return yaml_parser_set_scanner_error(parser, "while scanning a flow collection", parser.mark, "exceeded maximum nesting depth")
	}
	parser.flow_level++
	parser.simple_key_allowed = true
	start := parser.mark
	parser.skip()
	parser.appendToken(yaml_token_t{token_type: tokenType, start_mark: start, end_mark: parser.mark})
	return true
}

func yaml_parser_fetch_flow_collection_end(parser *yaml_parser_t, tokenType yaml_token_type_t) bool {
	if !yaml_parser_remove_simple_key(parser) {
		return false
	}
	if parser.flow_level > 0 {
		parser.flow_level--
		if len(parser.simple_keys) > parser.flow_level+1 {
			parser.simple_keys = parser.simple_keys[:parser.flow_level+1]
		}
	}
	parser.simple_key_allowed = false
	start := parser.mark
	parser.skip()
	parser.appendToken(yaml_token_t{token_type: tokenType, start_mark: start, end_mark: parser.mark})
	return true
}

func yaml_parser_fetch_flow_entry(parser *yaml_parser_t) bool {
	if !yaml_parser_remove_simple_key(parser) {
		return false
	}
	parser.simple_key_allowed = true
	start := parser.mark
	parser.skip()
	parser.appendToken(yaml_token_t{token_type: YAML_FLOW_ENTRY_TOKEN, start_mark: start, end_mark: parser.mark})
	return true
}

func yaml_parser_fetch_block_entry(parser *yaml_parser_t) bool {
	if parser.flow_level == 0 {
		if !parser.simple_key_allowed {
			return yaml_parser_set_scanner_error(parser, "", parser.mark, "block sequence entries are not allowed in this context")
		}
		if !yaml_parser_roll_indent(parser, parser.mark.column, -1, YAML_BLOCK_SEQUENCE_START_TOKEN, parser.mark) {
			return false
		}
	}
	if !yaml_parser_remove_simple_key(parser) {
		return false
	}
	parser.simple_key_allowed = true
	start := parser.mark
	parser.skip()
	parser.appendToken(yaml_token_t{token_type: YAML_BLOCK_ENTRY_TOKEN, start_mark: start, end_mark: parser.mark})
	return true
}

func yaml_parser_fetch_key(parser *yaml_parser_t) bool {
	if parser.flow_level == 0 {
		if !parser.simple_key_allowed {
			return yaml_parser_set_scanner_error(parser, "", parser.mark, "mapping keys are not allowed in this context")
		}
		if !yaml_parser_roll_indent(parser, parser.mark.column, -1, YAML_BLOCK_MAPPING_START_TOKEN, parser.mark) {
			return false
		}
	}
	if !yaml_parser_remove_simple_key(parser) {
		return false
	}
	parser.simple_key_allowed = parser.flow_level == 0
	start := parser.mark
	parser.skip()
	parser.appendToken(yaml_token_t{token_type: YAML_KEY_TOKEN, start_mark: start, end_mark: parser.mark})
	return true
}

// yaml_parser_fetch_value handles the VALUE (':') indicator, including
// the simple-key commit path: if a simple key is pending at the head of
// the queue, retrofit a KEY token (and, in block context, a
// BLOCK-MAPPING-START) before it (spec §4.2).
func yaml_parser_fetch_value(parser *yaml_parser_t) bool {
	key := parser.simpleKeySlot()
	if key.possible {
		// Insert KEY first, then roll_indent: roll_indent's own insertion
		// at the same token_number lands ahead of the KEY token just
		// inserted there, giving the correct final order
		// BLOCK-MAPPING-START, KEY, <candidate token...> (mirrors
		// go-yaml/yaml's yaml_parser_fetch_value).
		keyTok := yaml_token_t{token_type: YAML_KEY_TOKEN, start_mark: key.mark, end_mark: key.mark}
		parser.insertToken(key.token_number-parser.tokens_parsed, keyTok)
		if !yaml_parser_roll_indent(parser, key.mark.column, key.token_number, YAML_BLOCK_MAPPING_START_TOKEN, key.mark) {
			return false
		}
		key.possible = false
		parser.simple_key_allowed = false
	} else {
		if parser.flow_level == 0 {
			if !parser.simple_key_allowed {
				return yaml_parser_set_scanner_error(parser, "", parser.mark, "mapping values are not allowed in this context")
			}
			if !yaml_parser_roll_indent(parser, parser.mark.column, -1, YAML_BLOCK_MAPPING_START_TOKEN, parser.mark) {
				return false
			}
		}
		parser.simple_key_allowed = parser.flow_level == 0
	}
	start := parser.mark
	parser.skip()
	parser.appendToken(yaml_token_t{token_type: YAML_VALUE_TOKEN, start_mark: start, end_mark: parser.mark})
	return true
}

// --- anchors, aliases, tags -----------------------------------------------

func yaml_parser_fetch_anchor_or_alias(parser *yaml_parser_t, tokenType yaml_token_type_t) bool {
	if !yaml_parser_save_simple_key(parser) {
		return false
	}
	parser.simple_key_allowed = false
	tok, ok := yaml_parser_scan_anchor(parser, tokenType)
	if !ok {
		return false
	}
	parser.appendToken(tok)
	return true
}

func yaml_parser_scan_anchor(parser *yaml_parser_t, tokenType yaml_token_type_t) (yaml_token_t, bool) {
	start := parser.mark
	parser.skip()
	var name []rune
	for isAlpha(parser.char(0)) {
		name = parser.readChar(name)
		if !parser.cache(1) {
			return yaml_token_t{}, false
		}
	}
	if len(name) == 0 {
		yaml_parser_set_scanner_error(parser, "while scanning an anchor or alias", start, "did not find expected alphabetic or numeric character")
		return yaml_token_t{}, false
	}
	if !isBlankZ(parser.char(0)) {
		switch parser.char(0) {
		case '?', ',', ':', ']', '}', '%', '@', '`':
		default:
			yaml_parser_set_scanner_error(parser, "while scanning an anchor or alias", start, "did not find expected alphabetic or numeric character")
			return yaml_token_t{}, false
		}
	}
	return yaml_token_t{token_type: tokenType, start_mark: start, end_mark: parser.mark, value: []byte(string(name))}, true
}

func yaml_parser_fetch_tag(parser *yaml_parser_t) bool {
	if !yaml_parser_save_simple_key(parser) {
		return false
	}
	parser.simple_key_allowed = false
	tok, ok := yaml_parser_scan_tag(parser)
	if !ok {
		return false
	}
	parser.appendToken(tok)
	return true
}

func yaml_parser_scan_tag(parser *yaml_parser_t) (yaml_token_t, bool) {
	start := parser.mark
	var handle, suffix []rune

	if parser.char(1) == '<' {
		parser.skip()
		parser.skip()
		var ok bool
		suffix, ok = scanTagURI(parser, false, start)
		if !ok {
			return yaml_token_t{}, false
		}
		if parser.char(0) != '>' {
			yaml_parser_set_scanner_error(parser, "while scanning a tag", start, "did not find the expected '>'")
			return yaml_token_t{}, false
		}
		parser.skip()
	} else {
		for p2 := 1; ; p2++ {
			if !parser.cache(p2 + 1) {
				return yaml_token_t{}, false
			}
			c := parser.char(p2)
			if c == '!' {
				h, ok := scanTagHandle(parser, false, start)
				if !ok {
					return yaml_token_t{}, false
				}
				handle = h
				break
			}
			if isBlankZ(c) {
				break
			}
		}
		var ok bool
		suffix, ok = scanTagURI(parser, false, start)
		if !ok {
			return yaml_token_t{}, false
		}
		if len(handle) == 0 {
			handle = []rune("!")
		}
	}

	if !isBlankZ(parser.char(0)) {
		yaml_parser_set_scanner_error(parser, "while scanning a tag", start, "did not find expected whitespace or line break")
		return yaml_token_t{}, false
	}

	return yaml_token_t{token_type: YAML_TAG_TOKEN, start_mark: start, end_mark: parser.mark, value: runesToRawBytes(handle), suffix: runesToRawBytes(suffix)}, true
}

// runesToRawBytes converts a []rune built by scanTagHandle/scanTagURI
// back to bytes one-for-one rather than UTF-8 encoding each rune: every
// rune here is either an ASCII source character or a raw byte decoded
// from a %XX URI escape, so a naive string(runes) round-trip through
// []byte would re-encode any escaped byte above 0x7F as a multi-byte
// UTF-8 sequence and corrupt it.
func runesToRawBytes(runes []rune) []byte {
	out := make([]byte, len(runes))
	for i, r := range runes {
		out[i] = byte(r)
	}
	return out
}

func scanTagHandle(p *yaml_parser_t, directive bool, start yaml_mark_t) ([]rune, bool) {
	var handle []rune
	handle = p.readChar(handle) // leading '!'
	if !p.cache(1) {
		return nil, false
	}
	for isAlpha(p.char(0)) {
		handle = p.readChar(handle)
		if !p.cache(1) {
			return nil, false
		}
	}
	if p.char(0) == '!' {
		handle = p.readChar(handle)
		if !p.cache(1) {
			return nil, false
		}
	} else if directive && string(handle) != "!" {
		yaml_parser_set_scanner_error(p, "while scanning a tag directive", start, "did not find expected '!'")
		return nil, false
	}
	return handle, true
}

// --- block scalars (literal '|' / folded '>') ------------------------------

func yaml_parser_fetch_block_scalar(parser *yaml_parser_t, literal bool) bool {
	if !yaml_parser_remove_simple_key(parser) {
		return false
	}
	parser.simple_key_allowed = true
	tok, ok := yaml_parser_scan_block_scalar(parser, literal)
	if !ok {
		return false
	}
	parser.appendToken(tok)
	return true
}

func yaml_parser_scan_block_scalar(parser *yaml_parser_t, literal bool) (yaml_token_t, bool) {
	start := parser.mark
	parser.skip() // '|' or '>'

	chomping := 0 // 0 = clip, 1 = strip, -1 = keep
	increment := 0

	if parser.char(0) == '+' || parser.char(0) == '-' {
		if parser.char(0) == '+' {
			chomping = -1
		} else {
			chomping = 1
		}
		parser.skip()
		if isDigit(parser.char(0)) {
			if parser.char(0) == '0' {
				yaml_parser_set_scanner_error(parser, "while scanning a block scalar", start, "found an indentation indicator equal to 0")
				return yaml_token_t{}, false
			}
			increment = int(parser.char(0) - '0')
			parser.skip()
		}
	} else if isDigit(parser.char(0)) {
		if parser.char(0) == '0' {
			yaml_parser_set_scanner_error(parser, "while scanning a block scalar", start, "found an indentation indicator equal to 0")
			return yaml_token_t{}, false
		}
		increment = int(parser.char(0) - '0')
		parser.skip()
		if parser.char(0) == '+' || parser.char(0) == '-' {
			if parser.char(0) == '+' {
				chomping = -1
			} else {
				chomping = 1
			}
			parser.skip()
		}
	}

	for isBlank(parser.char(0)) {
		parser.skip()
		if !parser.cache(1) {
			return yaml_token_t{}, false
		}
	}
	if parser.char(0) == '#' {
		for !isBreakZ(parser.char(0)) {
			parser.skip()
			if !parser.cache(1) {
				return yaml_token_t{}, false
			}
		}
	}
	if !isBreakZ(parser.char(0)) {
		yaml_parser_set_scanner_error(parser, "while scanning a block scalar", start, "did not find expected comment or line break")
		return yaml_token_t{}, false
	}
	if isBreak(parser.char(0)) {
		if !parser.cache(2) {
			return yaml_token_t{}, false
		}
		parser.skipLine()
	}

	indent := 0
	if increment > 0 {
		if parser.indent >= 0 {
			indent = parser.indent + increment
		} else {
			indent = increment
		}
	}

	var value []rune
	var leadingBlank, trailingBlank bool
	endMark := parser.mark

	for {
		if !parser.cache(1) {
			return yaml_token_t{}, false
		}
		// scan leading blank/breaks, discovering indent if unset
		var breaks []rune
		for {
			for (indent == 0 || parser.mark.column < indent) && parser.char(0) == ' ' {
				parser.skip()
				if !parser.cache(1) {
					return yaml_token_t{}, false
				}
			}
			if parser.mark.column > parser.indent && indent == 0 {
				indent = parser.mark.column
			}
			if !isBreak(parser.char(0)) {
				break
			}
			if !parser.cache(2) {
				return yaml_token_t{}, false
			}
			breaks = append(breaks, '\n')
			parser.skipLine()
		}

		if indent != 0 && parser.mark.column < indent {
			break
		}
		if parser.mark.column < indent {
			break
		}

		if len(breaks) > 0 {
			if !literal && !leadingBlank && len(value) > 0 && breaks[0] == '\n' {
				if len(breaks) == 1 {
					value = append(value, ' ')
				} else {
					value = append(value, breaks[1:]...)
				}
			} else {
				value = append(value, breaks...)
			}
		}

		leadingBlank = isBlank(parser.char(0))
		for !isBreakZ(parser.char(0)) {
			value = parser.readChar(value)
			if !parser.cache(1) {
				return yaml_token_t{}, false
			}
		}
		endMark = parser.mark
		trailingBlank = isBlank(parser.char(0))
		if isZ(parser.char(0)) {
			break
		}
	}

	_ = trailingBlank
	switch chomping {
	case 1: // strip
	case -1: // keep
		value = append(value, '\n')
	default: // clip
		if len(value) > 0 {
			value = append(value, '\n')
		}
	}

	style := YAML_LITERAL_SCALAR_STYLE
	if !literal {
		style = YAML_FOLDED_SCALAR_STYLE
	}
	return yaml_token_t{
		token_type: YAML_SCALAR_TOKEN, start_mark: start, end_mark: endMark,
		value: []byte(string(value)), style: style,
	}, true
}

// --- flow scalars (single/double quoted) -----------------------------------

func yaml_parser_fetch_flow_scalar(parser *yaml_parser_t, single bool) bool {
	if !yaml_parser_save_simple_key(parser) {
		return false
	}
	parser.simple_key_allowed = false
	tok, ok := yaml_parser_scan_flow_scalar(parser, single)
	if !ok {
		return false
	}
	parser.appendToken(tok)
	return true
}

func yaml_parser_scan_flow_scalar(parser *yaml_parser_t, single bool) (yaml_token_t, bool) {
	start := parser.mark
	parser.skip() // opening quote

	var value []rune
	for {
		if !parser.cache(4) {
			return yaml_token_t{}, false
		}
		if parser.mark.column == 0 && (parser.char(0) == '-' && parser.char(1) == '-' && parser.char(2) == '-' ||
			parser.char(0) == '.' && parser.char(1) == '.' && parser.char(2) == '.') && isBlankZ(parser.char(3)) {
			yaml_parser_set_scanner_error(parser, "while scanning a quoted scalar", start, "found unexpected document indicator")
			return yaml_token_t{}, false
		}
		if isZ(parser.char(0)) {
			yaml_parser_set_scanner_error(parser, "while scanning a quoted scalar", start, "found unexpected end of stream")
			return yaml_token_t{}, false
		}

		if isBreak(parser.char(0)) {
			folded, ok := yaml_parser_scan_flow_scalar_breaks(parser, start)
			if !ok {
				return yaml_token_t{}, false
			}
			value = append(value, folded...)
			continue
		}

		if single && parser.char(0) == '\'' && parser.char(1) == '\'' {
			value = append(value, '\'')
			parser.skip()
			parser.skip()
			continue
		}
		if (single && parser.char(0) == '\'') || (!single && parser.char(0) == '"') {
			break
		}

		if !single && parser.char(0) == '\\' && isBreak(parser.char(1)) {
			if !parser.cache(3) {
				return yaml_token_t{}, false
			}
			parser.skip()
			parser.skipLine()
			folded, ok := yaml_parser_scan_flow_scalar_breaks(parser, start)
			if !ok {
				return yaml_token_t{}, false
			}
			value = append(value, folded...)
			continue
		}

		if !single && parser.char(0) == '\\' {
			parser.skip()
			esc := parser.char(0)
			switch esc {
			case '0':
				value = append(value, 0)
			case 'a':
				value = append(value, '\a')
			case 'b':
				value = append(value, '\b')
			case 't', '\t':
				value = append(value, '\t')
			case 'n':
				value = append(value, '\n')
			case 'v':
				value = append(value, '\v')
			case 'f':
				value = append(value, '\f')
			case 'r':
				value = append(value, '\r')
			case 'e':
				value = append(value, 0x1B)
			case ' ':
				value = append(value, ' ')
			case '"':
				value = append(value, '"')
			case '\'':
				value = append(value, '\'')
			case '\\':
				value = append(value, '\\')
			case 'N':
				value = append(value, 0x85)
			case '_':
				value = append(value, 0xA0)
			case 'L':
				value = append(value, 0x2028)
			case 'P':
				value = append(value, 0x2029)
			case 'x':
				r, ok := parser.scanEscapeHex(2, start)
				if !ok {
					return yaml_token_t{}, false
				}
				value = append(value, r)
				continue
			case 'u':
				r, ok := parser.scanEscapeHex(4, start)
				if !ok {
					return yaml_token_t{}, false
				}
				value = append(value, r)
				continue
			case 'U':
				r, ok := parser.scanEscapeHex(8, start)
				if !ok {
					return yaml_token_t{}, false
				}
				value = append(value, r)
				continue
			default:
				yaml_parser_set_scanner_error(parser, "while parsing a quoted scalar", start, "found unknown escape character")
				return yaml_token_t{}, false
			}
			parser.skip()
			continue
		}

		value = parser.readChar(value)
	}
	parser.skip() // closing quote
	endMark := parser.mark

	style := YAML_DOUBLE_QUOTED_SCALAR_STYLE
	if single {
		style = YAML_SINGLE_QUOTED_SCALAR_STYLE
	}
	return yaml_token_t{
		token_type: YAML_SCALAR_TOKEN, start_mark: start, end_mark: endMark,
		value: []byte(string(value)), style: style,
	}, true
}

func (p *yaml_parser_t) scanEscapeHex(width int, start yaml_mark_t) (rune, bool) {
	p.skip() // the x/u/U itself, consumed by caller's switch already positioned on it
	if !p.cache(width + 1) {
		return 0, false
	}
	var v rune
	for i := 0; i < width; i++ {
		if !isHex(p.char(0)) {
			yaml_parser_set_scanner_error(p, "while parsing a quoted scalar", start, "did not find expected hexdecimal number")
			return 0, false
		}
		v = v<<4 | rune(hexValue(p.char(0)))
		p.skip()
	}
	if v >= 0xD800 && v <= 0xDFFF || v > 0x10FFFF {
		yaml_parser_set_scanner_error(p, "while parsing a quoted scalar", start, "found invalid Unicode character escape code")
		return 0, false
	}
	return v, true
}

func yaml_parser_scan_flow_scalar_breaks(parser *yaml_parser_t, start yaml_mark_t) ([]rune, bool) {
	var breaks []rune
	for {
		if !parser.cache(3) {
			return nil, false
		}
		if parser.char(0) == '-' && parser.char(1) == '-' && parser.char(2) == '-' {
			yaml_parser_set_scanner_error(parser, "while scanning a quoted scalar", start, "found unexpected document indicator")
			return nil, false
		}
		for isBlank(parser.char(0)) {
			parser.skip()
			if !parser.cache(1) {
				return nil, false
			}
		}
		if !isBreak(parser.char(0)) {
			break
		}
		if !parser.cache(2) {
			return nil, false
		}
		breaks = append(breaks, '\n')
		parser.skipLine()
	}
	if len(breaks) > 0 {
		if len(breaks) == 1 {
			return []rune{' '}, true
		}
		return breaks[1:], true
	}
	return nil, true
}

// --- plain scalars ----------------------------------------------------

func yaml_parser_fetch_plain_scalar(parser *yaml_parser_t) bool {
	if !yaml_parser_save_simple_key(parser) {
		return false
	}
	parser.simple_key_allowed = false
	tok, ok := yaml_parser_scan_plain_scalar(parser)
	if !ok {
		return false
	}
	parser.appendToken(tok)
	return true
}

func yaml_parser_scan_plain_scalar(parser *yaml_parser_t) (yaml_token_t, bool) {
	start := parser.mark
	endMark := parser.mark
	var value []rune
	var leadingBlank bool
	var whitespaces, leadingBreaks, trailingBreaks []rune
	indent := parser.indent + 1

	for {
		if !parser.cache(4) {
			return yaml_token_t{}, false
		}
		if isZ(parser.char(0)) {
			break
		}
		if parser.char(0) == '#' && len(whitespaces) > 0 {
			break
		}
		if parser.mark.column == 0 &&
			((parser.char(0) == '-' && parser.char(1) == '-' && parser.char(2) == '-') ||
				(parser.char(0) == '.' && parser.char(1) == '.' && parser.char(2) == '.')) &&
			isBlankZ(parser.char(3)) {
			break
		}
		if parser.char(0) == ':' && isBlankZ(parser.char(1)) {
			break
		}
		if parser.flow_level > 0 {
			switch parser.char(0) {
			case ',', '[', ']', '{', '}':
				goto done
			}
		}

		if isBreak(parser.char(0)) || isBlank(parser.char(0)) {
			if isBlank(parser.char(0)) {
				if leadingBlank && int(parser.mark.column) < indent && isTab(parser.char(0)) {
					yaml_parser_set_scanner_error(parser, "while scanning a plain scalar", start, "found a tab character that violates indentation")
					return yaml_token_t{}, false
				}
				whitespaces = append(whitespaces, parser.char(0))
				parser.skip()
			} else {
				if !parser.cache(2) {
					return yaml_token_t{}, false
				}
				if len(leadingBreaks) == 0 {
					whitespaces = whitespaces[:0]
				}
				if leadingBlank {
					trailingBreaks = append(trailingBreaks, '\n')
				} else {
					leadingBreaks = append(leadingBreaks, '\n')
				}
				parser.skipLine()
				leadingBlank = true
			}
			if !parser.cache(1) {
				return yaml_token_t{}, false
			}
			continue
		}

		if parser.flow_level == 0 && leadingBlank && parser.mark.column < indent {
			break
		}
		if leadingBlank {
			if len(trailingBreaks) > 0 {
				value = append(value, trailingBreaks...)
				trailingBreaks = trailingBreaks[:0]
			} else if len(leadingBreaks) > 0 {
				if len(leadingBreaks) == 1 {
					value = append(value, ' ')
				} else {
					value = append(value, leadingBreaks[1:]...)
				}
				leadingBreaks = leadingBreaks[:0]
			}
			leadingBlank = false
		} else if len(whitespaces) > 0 {
			value = append(value, whitespaces...)
			whitespaces = whitespaces[:0]
		}

		value = parser.readChar(value)
		endMark = parser.mark
		if !parser.cache(2) {
			return yaml_token_t{}, false
		}
	}
done:
	if leadingBlank {
		parser.simple_key_allowed = true
	}
	return yaml_token_t{
		token_type: YAML_SCALAR_TOKEN, start_mark: start, end_mark: endMark,
		value: []byte(string(value)), style: YAML_PLAIN_SCALAR_STYLE,
	}, true
}

func scanTagURI(p *yaml_parser_t, directive bool, start yaml_mark_t) ([]rune, bool) {
	var uri []rune

	for {
		if !p.cache(1) {
			return nil, false
		}
		c := p.char(0)
		switch {
		case isAlpha(c) || c == ';' || c == '/' || c == '?' || c == ':' || c == '@' || c == '&' ||
			c == '=' || c == '+' || c == '$' || c == '.' || c == '!' || c == '~' || c == '*' ||
			c == '\'' || c == '(' || c == ')':
			uri = p.readChar(uri)
		case c == '[' || c == ']' || c == ',':
			uri = p.readChar(uri)
		case c == '%':
			p.skip()
			if !p.cache(2) {
				return nil, false
			}
			if !isHex(p.char(0)) || !isHex(p.char(1)) {
				yaml_parser_set_scanner_error(p, "while parsing a tag", start, "did not find URI escaped octet")
				return nil, false
			}
			b := byte(hexValue(p.char(0))<<4 | hexValue(p.char(1)))
			p.skip()
			p.skip()
			uri = append(uri, rune(b))
		default:
			goto done
		}
	}
done:
	if len(uri) == 0 {
		yaml_parser_set_scanner_error(p, "while parsing a tag", start, "did not find expected tag URI")
		return nil, false
	}
	return uri, true
}
