package yaml

import (
	"bytes"
	"fmt"
	"unicode/utf8"
)

// --- low-level character writers ----------------------------------------

func yaml_emitter_write(emitter *yaml_emitter_t, s string) bool {
	emitter.buffer = append(emitter.buffer, s...)
	emitter.column += utf8.RuneCountInString(s)
	return true
}

func yaml_emitter_write_rune(emitter *yaml_emitter_t, r rune) bool {
	var buf [4]byte
	n := utf8.EncodeRune(buf[:], r)
	emitter.buffer = append(emitter.buffer, buf[:n]...)
	emitter.column++
	return true
}

// yaml_emitter_write_break appends a line break in the stream's
// configured style (spec §4.5 "Line breaks: CR, LF, or CRLF; default
// LF"), independent of which break character the source content used.
func yaml_emitter_write_break(emitter *yaml_emitter_t) bool {
	switch emitter.line_break {
	case YAML_CR_BREAK:
		emitter.buffer = append(emitter.buffer, '\r')
	case YAML_CRLN_BREAK:
		emitter.buffer = append(emitter.buffer, '\r', '\n')
	default:
		emitter.buffer = append(emitter.buffer, '\n')
	}
	emitter.column = 0
	emitter.line++
	return true
}

// yaml_emitter_write_indicator writes a structural indicator, inserting
// a single leading space first if one is needed and the cursor isn't
// already at whitespace.
func yaml_emitter_write_indicator(emitter *yaml_emitter_t, indicator string, needWhitespace, isWhitespace, isIndention bool) bool {
	if needWhitespace && !emitter.whitespace {
		if !yaml_emitter_write(emitter, " ") {
			return false
		}
	}
	if !yaml_emitter_write(emitter, indicator) {
		return false
	}
	emitter.whitespace = isWhitespace
	emitter.indention = emitter.indention && isIndention
	return true
}

// yaml_emitter_write_indent breaks the line (if the cursor isn't
// already positioned for one) and pads to the current indent column.
func yaml_emitter_write_indent(emitter *yaml_emitter_t) bool {
	indent := emitter.indent
	if indent < 0 {
		indent = 0
	}
	if !emitter.indention || emitter.column > indent || (emitter.column == indent && !emitter.whitespace) {
		if !yaml_emitter_write_break(emitter) {
			return false
		}
	}
	for emitter.column < indent {
		if !yaml_emitter_write(emitter, " ") {
			return false
		}
	}
	emitter.whitespace = true
	emitter.indention = true
	return true
}

// maxNestLevel mirrors yaml_parser_t.maxNestLevel (scanner.go) for the
// emitter's own instance-scoped nesting bound.
func (emitter *yaml_emitter_t) maxNestLevel() int {
	if emitter.max_nest_level <= 0 {
		return defaultMaxNestLevel
	}
	return emitter.max_nest_level
}

// yaml_emitter_increase_indent pushes the current indent and computes
// the new one (spec §4.5 "Indentation: per-indent-level step
// configurable"), enforcing the same nesting bound as the scanner's
// indent stack.
func yaml_emitter_increase_indent(emitter *yaml_emitter_t, flow, indentless bool) bool {
	if len(emitter.indents) > emitter.maxNestLevel() {
		return yaml_emitter_set_emitter_error(emitter, "exceeded maximum nesting depth")
	}
	emitter.indents = append(emitter.indents, emitter.indent)
	if emitter.indent < 0 {
		if flow {
			emitter.indent = emitter.best_indent
		} else {
			emitter.indent = 0
		}
	} else if !indentless {
		emitter.indent += emitter.best_indent
	}
	return true
}

func (emitter *yaml_emitter_t) popIndent() {
	n := len(emitter.indents) - 1
	emitter.indent = emitter.indents[n]
	emitter.indents = emitter.indents[:n]
}

func (emitter *yaml_emitter_t) popState() yaml_emitter_state_t {
	n := len(emitter.states) - 1
	s := emitter.states[n]
	emitter.states = emitter.states[:n]
	return s
}

// --- errors ---------------------------------------------------------------

func yaml_emitter_set_emitter_error(emitter *yaml_emitter_t, problem string) bool {
	emitter.error = YAML_EMITTER_ERROR
	emitter.problem = problem
	return false
}

// --- per-scalar analysis (spec §4.5) ---------------------------------------

// yaml_emitter_analyze_scalar computes flow/block plain eligibility,
// single-quote eligibility, block-style eligibility, and multiline-ness
// for value, the deciding input to style selection.
func yaml_emitter_analyze_scalar(value []byte) scalarAnalysis {
	an := scalarAnalysis{value: value}
	if len(value) == 0 {
		an.flow_plain_allowed = true
		an.block_plain_allowed = true
		an.single_quoted_allowed = true
		an.block_allowed = false
		return an
	}

	runes := []rune(string(value))
	at := func(i int) rune {
		if i < 0 || i >= len(runes) {
			return 0
		}
		return runes[i]
	}

	blockIndicators := false
	flowIndicators := false
	lineBreaks := false
	specialCharacters := false

	leadingSpace := false
	leadingBreak := false
	trailingSpace := false
	trailingBreak := false
	breakSpace := false
	spaceBreak := false

	if (at(0) == '-' && at(1) == '-' && at(2) == '-') || (at(0) == '.' && at(1) == '.' && at(2) == '.') {
		blockIndicators = true
		flowIndicators = true
	}

	precededByWhitespace := true
	followedByWhitespace := isBlankZ(at(1))

	previousSpace := false
	previousBreak := false

	for i := 0; i < len(runes); i++ {
		r := runes[i]
		if i == 0 {
			switch r {
			case '#', ',', '[', ']', '{', '}', '&', '*', '!', '|', '>', '\'', '"', '%', '@', '`':
				flowIndicators = true
				blockIndicators = true
			case '?', ':':
				flowIndicators = true
				if followedByWhitespace {
					blockIndicators = true
				}
			case '-':
				if followedByWhitespace {
					flowIndicators = true
					blockIndicators = true
				}
			}
		} else {
			switch r {
			case ',', '?', '[', ']', '{', '}':
				flowIndicators = true
			case ':':
				flowIndicators = true
				if followedByWhitespace {
					blockIndicators = true
				}
			case '#':
				if precededByWhitespace {
					flowIndicators = true
					blockIndicators = true
				}
			}
		}

		if r == '\n' {
			lineBreaks = true
		}
		if !(r == '\n' || (r >= 0x20 && r <= 0x7E)) {
			allowed := r == 0x85 || (r >= 0xA0 && r <= 0xD7FF) || (r >= 0xE000 && r <= 0xFFFD) || (r >= 0x10000 && r <= 0x10FFFF)
			if !allowed || r == 0xFEFF {
				specialCharacters = true
			}
		}

		switch r {
		case ' ':
			if i == 0 {
				leadingSpace = true
			}
			if i == len(runes)-1 {
				trailingSpace = true
			}
			if previousBreak {
				breakSpace = true
			}
			previousSpace = true
			previousBreak = false
		case '\n':
			if i == 0 {
				leadingBreak = true
			}
			if i == len(runes)-1 {
				trailingBreak = true
			}
			if previousSpace {
				spaceBreak = true
			}
			previousSpace = false
			previousBreak = true
		default:
			previousSpace = false
			previousBreak = false
		}

		precededByWhitespace = isBlankZ(r)
		followedByWhitespace = isBlankZ(at(i + 2))
	}

	an.multiline = lineBreaks
	an.flow_plain_allowed = true
	an.block_plain_allowed = true
	an.single_quoted_allowed = true
	an.block_allowed = true

	if leadingSpace || leadingBreak || trailingSpace || trailingBreak {
		an.flow_plain_allowed = false
		an.block_plain_allowed = false
	}
	if trailingSpace {
		an.block_allowed = false
	}
	if breakSpace {
		an.flow_plain_allowed = false
		an.block_plain_allowed = false
		an.single_quoted_allowed = false
	}
	if spaceBreak || specialCharacters {
		an.flow_plain_allowed = false
		an.block_plain_allowed = false
		an.single_quoted_allowed = false
		an.block_allowed = false
	}
	if lineBreaks {
		an.flow_plain_allowed = false
		an.block_plain_allowed = false
	}
	if flowIndicators {
		an.flow_plain_allowed = false
	}
	if blockIndicators {
		an.block_plain_allowed = false
	}

	return an
}

func yaml_emitter_analyze_anchor(emitter *yaml_emitter_t, anchor []byte, alias bool) bool {
	noun := "anchor"
	if alias {
		noun = "alias"
	}
	if len(anchor) == 0 {
		return yaml_emitter_set_emitter_error(emitter, noun+" value must not be empty")
	}
	for _, r := range string(anchor) {
		if !isAlpha(r) {
			return yaml_emitter_set_emitter_error(emitter, noun+" value must contain alphanumerical characters only")
		}
	}
	emitter.anchor_data.value = anchor
	return true
}

func yaml_emitter_analyze_tag(emitter *yaml_emitter_t, tag []byte) bool {
	if len(tag) == 0 {
		return yaml_emitter_set_emitter_error(emitter, "tag value must not be empty")
	}
	emitter.tag_data.value = tag
	return true
}

func yaml_emitter_analyze_version_directive(emitter *yaml_emitter_t, vd yaml_version_directive_t) bool {
	if vd.major != 1 || (vd.minor != 1 && vd.minor != 2) {
		return yaml_emitter_set_emitter_error(emitter, "incompatible %YAML directive")
	}
	return true
}

func yaml_emitter_analyze_tag_directive(emitter *yaml_emitter_t, td yaml_tag_directive_t) bool {
	if len(td.handle) == 0 {
		return yaml_emitter_set_emitter_error(emitter, "tag handle must not be empty")
	}
	if td.handle[0] != '!' || td.handle[len(td.handle)-1] != '!' {
		return yaml_emitter_set_emitter_error(emitter, "tag handle must start and end with '!'")
	}
	if len(td.prefix) == 0 {
		return yaml_emitter_set_emitter_error(emitter, "tag prefix must not be empty")
	}
	return true
}

// yaml_emitter_append_tag_directive mirrors
// yaml_parser_append_tag_directive's allow_duplicates contract (parser.go)
// so yaml_emitter_emit_document_start's default-tag injection behaves identically on emit as
// on parse (DESIGN.md Open Question decision 3).
func yaml_emitter_append_tag_directive(emitter *yaml_emitter_t, td yaml_tag_directive_t, allowDuplicates bool) bool {
	for _, existing := range emitter.tag_directives {
		if bytes.Equal(existing.handle, td.handle) {
			if allowDuplicates {
				return true
			}
			return yaml_emitter_set_emitter_error(emitter, "duplicate %TAG directive")
		}
	}
	emitter.tag_directives = append(emitter.tag_directives, td)
	return true
}

func yaml_emitter_analyze_event(emitter *yaml_emitter_t, event *yaml_event_t) bool {
	emitter.anchor_data = scalarAnalysis{}
	emitter.tag_data = scalarAnalysis{}
	emitter.scalar_data = scalarAnalysis{}

	switch event.event_type {
	case YAML_ALIAS_EVENT:
		return yaml_emitter_analyze_anchor(emitter, event.anchor, true)

	case YAML_SCALAR_EVENT:
		if len(event.anchor) > 0 {
			if !yaml_emitter_analyze_anchor(emitter, event.anchor, false) {
				return false
			}
		}
		if len(event.tag) > 0 {
			if !yaml_emitter_analyze_tag(emitter, event.tag) {
				return false
			}
		}
		emitter.scalar_data = yaml_emitter_analyze_scalar(event.value)

	case YAML_SEQUENCE_START_EVENT, YAML_MAPPING_START_EVENT:
		if len(event.anchor) > 0 {
			if !yaml_emitter_analyze_anchor(emitter, event.anchor, false) {
				return false
			}
		}
		if len(event.tag) > 0 {
			if !yaml_emitter_analyze_tag(emitter, event.tag) {
				return false
			}
		}
	}
	return true
}

// --- anchor/tag/directive writers ------------------------------------------

func yaml_emitter_write_anchor(emitter *yaml_emitter_t, indicator string, anchor []byte) bool {
	if !yaml_emitter_write_indicator(emitter, indicator, true, false, false) {
		return false
	}
	return yaml_emitter_write(emitter, string(anchor))
}

// tagURIChar reports whether r may appear unescaped in a percent-encoded
// tag URI (spec grounded on scanTagURI's mirror-image accept set,
// scanner.go).
func tagURIChar(r rune) bool {
	switch r {
	case ';', '/', '?', ':', '@', '&', '=', '+', '$', '.', '!', '~', '*', '\'', '(', ')', '[', ']', ',':
		return true
	}
	return isAlpha(r)
}

func percentEncodeTag(value []byte) string {
	var b bytes.Buffer
	for _, c := range value {
		if tagURIChar(rune(c)) {
			b.WriteByte(c)
		} else {
			fmt.Fprintf(&b, "%%%02X", c)
		}
	}
	return b.String()
}

// yaml_emitter_write_tag writes tag using the longest matching %TAG
// handle prefix registered for the document, or as a verbatim `!<...>`
// when no handle matches (spec §4.5 "Anchor/tag writing").
func yaml_emitter_write_tag(emitter *yaml_emitter_t, tag []byte) bool {
	var bestPrefix, bestHandle []byte
	for _, td := range emitter.tag_directives {
		if len(td.prefix) > 0 && len(td.prefix) >= len(bestPrefix) && bytes.HasPrefix(tag, td.prefix) {
			bestPrefix = td.prefix
			bestHandle = td.handle
		}
	}
	if bestHandle != nil {
		if !yaml_emitter_write_indicator(emitter, string(bestHandle), true, false, false) {
			return false
		}
		suffix := percentEncodeTag(tag[len(bestPrefix):])
		if suffix == "" {
			return true
		}
		return yaml_emitter_write(emitter, suffix)
	}
	if !yaml_emitter_write_indicator(emitter, "!<", true, false, false) {
		return false
	}
	if !yaml_emitter_write(emitter, percentEncodeTag(tag)) {
		return false
	}
	return yaml_emitter_write_indicator(emitter, ">", false, false, false)
}

func yaml_emitter_write_version_directive(emitter *yaml_emitter_t, vd *yaml_version_directive_t) bool {
	if !yaml_emitter_write_indicator(emitter, "%YAML", true, false, false) {
		return false
	}
	if !yaml_emitter_write_indicator(emitter, fmt.Sprintf("%d.%d", vd.major, vd.minor), true, false, false) {
		return false
	}
	return yaml_emitter_write_indent(emitter)
}

func yaml_emitter_write_tag_directive(emitter *yaml_emitter_t, handle, prefix []byte) bool {
	if !yaml_emitter_write_indicator(emitter, "%TAG", true, false, false) {
		return false
	}
	if !yaml_emitter_write_indicator(emitter, string(handle), true, false, false) {
		return false
	}
	if !yaml_emitter_write_indicator(emitter, percentEncodeTag(prefix), true, false, false) {
		return false
	}
	return yaml_emitter_write_indent(emitter)
}

// --- scalar writers ---------------------------------------------------------

func yaml_emitter_write_plain_scalar(emitter *yaml_emitter_t, value []byte, allowBreaks bool) bool {
	if !emitter.whitespace {
		if !yaml_emitter_write_indicator(emitter, " ", false, false, false) {
			return false
		}
	}
	runes := []rune(string(value))
	at := func(i int) rune {
		if i < 0 || i >= len(runes) {
			return 0
		}
		return runes[i]
	}
	spaces := false
	breaks := false
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		switch {
		case isSpace(r):
			if allowBreaks && !spaces && emitter.column > emitter.best_width && !isSpace(at(i+1)) {
				if !yaml_emitter_write_indent(emitter) {
					return false
				}
			} else if !yaml_emitter_write_rune(emitter, r) {
				return false
			}
			spaces = true
		case isBreak(r):
			if !breaks && r == '\n' {
				if !yaml_emitter_write_break(emitter) {
					return false
				}
			}
			if !yaml_emitter_write_break(emitter) {
				return false
			}
			emitter.indention = true
			breaks = true
		default:
			if breaks {
				if !yaml_emitter_write_indent(emitter) {
					return false
				}
			}
			if !yaml_emitter_write_rune(emitter, r) {
				return false
			}
			emitter.indention = false
			spaces = false
			breaks = false
		}
	}
	emitter.whitespace = false
	emitter.indention = false
	return true
}

func yaml_emitter_write_single_quoted_scalar(emitter *yaml_emitter_t, value []byte, allowBreaks bool) bool {
	if !yaml_emitter_write_indicator(emitter, "'", true, false, false) {
		return false
	}
	runes := []rune(string(value))
	at := func(i int) rune {
		if i < 0 || i >= len(runes) {
			return 0
		}
		return runes[i]
	}
	spaces := false
	breaks := false
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		switch {
		case isSpace(r):
			if allowBreaks && !spaces && emitter.column > emitter.best_width && i != 0 && i != len(runes)-1 && !isSpace(at(i+1)) {
				if !yaml_emitter_write_indent(emitter) {
					return false
				}
			} else if !yaml_emitter_write_rune(emitter, r) {
				return false
			}
			spaces = true
		case isBreak(r):
			if !breaks && r == '\n' {
				if !yaml_emitter_write_break(emitter) {
					return false
				}
			}
			if !yaml_emitter_write_break(emitter) {
				return false
			}
			emitter.indention = true
			breaks = true
		default:
			if breaks {
				if !yaml_emitter_write_indent(emitter) {
					return false
				}
			}
			if r == '\'' {
				if !yaml_emitter_write_rune(emitter, '\'') {
					return false
				}
			}
			if !yaml_emitter_write_rune(emitter, r) {
				return false
			}
			spaces = false
			breaks = false
		}
	}
	return yaml_emitter_write_indicator(emitter, "'", false, false, false)
}

func yaml_emitter_write_double_quoted_scalar(emitter *yaml_emitter_t, value []byte, allowBreaks bool) bool {
	if !yaml_emitter_write_indicator(emitter, "\"", true, false, false) {
		return false
	}
	runes := []rune(string(value))
	spaces := false
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		switch {
		case !isPrintableOrAllowedControl(r) || (!emitter.unicode && r > 0x7F) || r == 0xFEFF || isBreak(r) || r == '\t' || r == '"' || r == '\\':
			if !yaml_emitter_write_indicator(emitter, "\\", false, false, false) {
				return false
			}
			if !yaml_emitter_write_double_quoted_escape(emitter, r) {
				return false
			}
			spaces = false
		case isSpace(r):
			if allowBreaks && !spaces && emitter.column > emitter.best_width && i != 0 && i != len(runes)-1 {
				if !yaml_emitter_write_indent(emitter) {
					return false
				}
				if i+1 < len(runes) && isSpace(runes[i+1]) {
					if !yaml_emitter_write_rune(emitter, '\\') {
						return false
					}
				}
			} else if !yaml_emitter_write_rune(emitter, r) {
				return false
			}
			spaces = true
		default:
			if !yaml_emitter_write_rune(emitter, r) {
				return false
			}
			spaces = false
		}
	}
	return yaml_emitter_write_indicator(emitter, "\"", false, false, false)
}

func yaml_emitter_write_double_quoted_escape(emitter *yaml_emitter_t, r rune) bool {
	switch r {
	case 0x00:
		return yaml_emitter_write(emitter, "0")
	case 0x07:
		return yaml_emitter_write(emitter, "a")
	case 0x08:
		return yaml_emitter_write(emitter, "b")
	case 0x09:
		return yaml_emitter_write(emitter, "t")
	case 0x0A:
		return yaml_emitter_write(emitter, "n")
	case 0x0B:
		return yaml_emitter_write(emitter, "v")
	case 0x0C:
		return yaml_emitter_write(emitter, "f")
	case 0x0D:
		return yaml_emitter_write(emitter, "r")
	case 0x1B:
		return yaml_emitter_write(emitter, "e")
	case '"':
		return yaml_emitter_write(emitter, "\"")
	case '\\':
		return yaml_emitter_write(emitter, "\\")
	case 0x85:
		return yaml_emitter_write(emitter, "N")
	case 0xA0:
		return yaml_emitter_write(emitter, "_")
	case 0x2028:
		return yaml_emitter_write(emitter, "L")
	case 0x2029:
		return yaml_emitter_write(emitter, "P")
	}
	var lead string
	var width int
	switch {
	case r <= 0xFF:
		lead, width = "x", 2
	case r <= 0xFFFF:
		lead, width = "u", 4
	default:
		lead, width = "U", 8
	}
	if !yaml_emitter_write(emitter, lead) {
		return false
	}
	for k := (width - 1) * 4; k >= 0; k -= 4 {
		digit := (int(r) >> uint(k)) & 0x0F
		if digit < 10 {
			if !yaml_emitter_write_rune(emitter, rune('0'+digit)) {
				return false
			}
		} else if !yaml_emitter_write_rune(emitter, rune('A'+digit-10)) {
			return false
		}
	}
	return true
}

// yaml_emitter_write_block_scalar_hints writes the explicit indentation
// indicator (when the content's first line would otherwise be ambiguous)
// and the chomping indicator, and sets emitter.open_ended = 2 when the
// block scalar's last line is blank under the keep indicator (spec §4.5
// "Open-ended").
func yaml_emitter_write_block_scalar_hints(emitter *yaml_emitter_t, value []byte) bool {
	runes := []rune(string(value))
	if len(runes) > 0 && (isSpace(runes[0]) || isBreak(runes[0])) {
		hint := string(rune('0' + emitter.best_indent))
		if !yaml_emitter_write_indicator(emitter, hint, false, false, false) {
			return false
		}
	}

	emitter.open_ended = 0

	var chompHint string
	switch {
	case len(runes) == 0:
		chompHint = "-"
	case !isBreak(runes[len(runes)-1]):
		chompHint = "-"
	case len(runes) == 1 || isBreak(runes[len(runes)-2]):
		chompHint = "+"
		emitter.open_ended = 2
	}
	if chompHint == "" {
		return true
	}
	return yaml_emitter_write_indicator(emitter, chompHint, false, false, false)
}

func yaml_emitter_write_literal_scalar(emitter *yaml_emitter_t, value []byte) bool {
	if !yaml_emitter_write_indicator(emitter, "|", true, false, false) {
		return false
	}
	if !yaml_emitter_write_block_scalar_hints(emitter, value) {
		return false
	}
	if !yaml_emitter_write_break(emitter) {
		return false
	}
	emitter.indention = true
	emitter.whitespace = true
	breaks := true
	for _, r := range string(value) {
		if isBreak(r) {
			if !yaml_emitter_write_break(emitter) {
				return false
			}
			emitter.indention = true
			breaks = true
		} else {
			if breaks {
				if !yaml_emitter_write_indent(emitter) {
					return false
				}
			}
			if !yaml_emitter_write_rune(emitter, r) {
				return false
			}
			emitter.indention = false
			breaks = false
		}
	}
	return true
}

func yaml_emitter_write_folded_scalar(emitter *yaml_emitter_t, value []byte) bool {
	if !yaml_emitter_write_indicator(emitter, ">", true, false, false) {
		return false
	}
	if !yaml_emitter_write_block_scalar_hints(emitter, value) {
		return false
	}
	if !yaml_emitter_write_break(emitter) {
		return false
	}
	emitter.indention = true
	emitter.whitespace = true

	runes := []rune(string(value))
	at := func(i int) rune {
		if i < 0 || i >= len(runes) {
			return 0
		}
		return runes[i]
	}
	breaks := true
	leadingSpaces := true
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		if isBreak(r) {
			if !breaks && !leadingSpaces && r == '\n' {
				k := i
				for isBreak(at(k)) {
					k++
				}
				if !isBlankZ(at(k)) {
					if !yaml_emitter_write_break(emitter) {
						return false
					}
				}
			}
			if !yaml_emitter_write_break(emitter) {
				return false
			}
			emitter.indention = true
			breaks = true
			continue
		}
		if breaks {
			if !yaml_emitter_write_indent(emitter) {
				return false
			}
			leadingSpaces = isBlank(r)
		}
		if !breaks && isSpace(r) && !isSpace(at(i+1)) && emitter.column > emitter.best_width {
			if !yaml_emitter_write_indent(emitter) {
				return false
			}
		} else if !yaml_emitter_write_rune(emitter, r) {
			return false
		}
		emitter.indention = false
		breaks = false
	}
	return true
}

func yaml_emitter_process_scalar(emitter *yaml_emitter_t) bool {
	switch emitter.scalar_data.style {
	case YAML_PLAIN_SCALAR_STYLE:
		return yaml_emitter_write_plain_scalar(emitter, emitter.scalar_data.value, !emitter.simple_key_context)
	case YAML_SINGLE_QUOTED_SCALAR_STYLE:
		return yaml_emitter_write_single_quoted_scalar(emitter, emitter.scalar_data.value, !emitter.simple_key_context)
	case YAML_DOUBLE_QUOTED_SCALAR_STYLE:
		return yaml_emitter_write_double_quoted_scalar(emitter, emitter.scalar_data.value, !emitter.simple_key_context)
	case YAML_LITERAL_SCALAR_STYLE:
		return yaml_emitter_write_literal_scalar(emitter, emitter.scalar_data.value)
	case YAML_FOLDED_SCALAR_STYLE:
		return yaml_emitter_write_folded_scalar(emitter, emitter.scalar_data.value)
	}
	return yaml_emitter_set_emitter_error(emitter, "unknown scalar style")
}

// yaml_emitter_select_scalar_style implements spec §4.5's fallback order
// (plain -> single -> double; literal/folded only block-allowed and out
// of flow/simple-key context; canonical forces double-quoted).
func yaml_emitter_select_scalar_style(emitter *yaml_emitter_t, event *yaml_event_t) bool {
	style := event.scalarStyle()
	if style == YAML_ANY_SCALAR_STYLE {
		style = YAML_PLAIN_SCALAR_STYLE
	}
	if emitter.canonical {
		style = YAML_DOUBLE_QUOTED_SCALAR_STYLE
	}
	if emitter.simple_key_context && emitter.scalar_data.multiline {
		style = YAML_DOUBLE_QUOTED_SCALAR_STYLE
	}

	if style == YAML_PLAIN_SCALAR_STYLE {
		if (emitter.flow_level > 0 && !emitter.scalar_data.flow_plain_allowed) ||
			(emitter.flow_level == 0 && !emitter.scalar_data.block_plain_allowed) {
			style = YAML_SINGLE_QUOTED_SCALAR_STYLE
		}
		if len(emitter.scalar_data.value) == 0 && (emitter.flow_level > 0 || emitter.simple_key_context) {
			style = YAML_SINGLE_QUOTED_SCALAR_STYLE
		}
		if len(emitter.tag_data.value) > 0 && !event.implicit {
			style = YAML_SINGLE_QUOTED_SCALAR_STYLE
		}
	}
	if style == YAML_SINGLE_QUOTED_SCALAR_STYLE && !emitter.scalar_data.single_quoted_allowed {
		style = YAML_DOUBLE_QUOTED_SCALAR_STYLE
	}
	if (style == YAML_LITERAL_SCALAR_STYLE || style == YAML_FOLDED_SCALAR_STYLE) &&
		(!emitter.scalar_data.block_allowed || emitter.flow_level > 0 || emitter.simple_key_context) {
		style = YAML_DOUBLE_QUOTED_SCALAR_STYLE
	}

	emitter.scalar_data.style = style
	return true
}

func yaml_emitter_process_anchor(emitter *yaml_emitter_t) bool {
	if len(emitter.anchor_data.value) == 0 {
		return true
	}
	return yaml_emitter_write_anchor(emitter, "&", emitter.anchor_data.value)
}

// yaml_emitter_process_scalar_tag omits the tag entirely when the
// chosen style matches the event's implicit/quoted_implicit hint (spec
// §4.4 "plain scalars without an explicit tag carry plain_implicit";
// §4.5). An event with no tag whose chosen style is not plain and whose
// quoted_implicit is false gets a bare `!` written in place of a tag;
// an event whose tag is literally `!` reaches yaml_emitter_write_tag,
// whose default-directive matching renders it as a bare `!`.
func yaml_emitter_process_scalar_tag(emitter *yaml_emitter_t, event *yaml_event_t) bool {
	if len(emitter.tag_data.value) == 0 {
		if emitter.scalar_data.style != YAML_PLAIN_SCALAR_STYLE && !event.quoted_implicit {
			return yaml_emitter_write_indicator(emitter, "!", true, false, false)
		}
		return true
	}
	if !emitter.canonical {
		plain := emitter.scalar_data.style == YAML_PLAIN_SCALAR_STYLE
		if plain && event.implicit {
			return true
		}
		if !plain && event.quoted_implicit {
			return true
		}
	}
	return yaml_emitter_write_tag(emitter, emitter.tag_data.value)
}

func yaml_emitter_process_collection_tag(emitter *yaml_emitter_t, event *yaml_event_t) bool {
	if len(emitter.tag_data.value) == 0 {
		return true
	}
	if !emitter.canonical && event.implicit {
		return true
	}
	return yaml_emitter_write_tag(emitter, emitter.tag_data.value)
}

// --- event buffering and lookahead -----------------------------------------

func (emitter *yaml_emitter_t) peekEvent(offset int) *yaml_event_t {
	idx := emitter.events_head + offset
	if idx < 0 || idx >= len(emitter.events) {
		return nil
	}
	return &emitter.events[idx]
}

// yaml_emitter_needs_more_events implements spec §4.5's event
// accumulation rule (1 event after DocumentStart, 2 after
// SequenceStart, 3 after MappingStart) by counting nested start/end
// events until the buffered run returns to level 0.
func yaml_emitter_needs_more_events(emitter *yaml_emitter_t) bool {
	if emitter.events_head >= len(emitter.events) {
		return true
	}
	var accumulate int
	switch emitter.events[emitter.events_head].event_type {
	case YAML_DOCUMENT_START_EVENT:
		accumulate = 1
	case YAML_SEQUENCE_START_EVENT:
		accumulate = 2
	case YAML_MAPPING_START_EVENT:
		accumulate = 3
	default:
		return false
	}
	if len(emitter.events)-emitter.events_head > accumulate {
		return false
	}
	level := 0
	for _, e := range emitter.events[emitter.events_head:] {
		switch e.event_type {
		case YAML_DOCUMENT_START_EVENT, YAML_SEQUENCE_START_EVENT, YAML_MAPPING_START_EVENT:
			level++
		case YAML_DOCUMENT_END_EVENT, YAML_SEQUENCE_END_EVENT, YAML_MAPPING_END_EVENT:
			level--
		}
		if level == 0 {
			return false
		}
	}
	return true
}

func yaml_emitter_check_empty_sequence(emitter *yaml_emitter_t) bool {
	e := emitter.peekEvent(0)
	if e == nil || e.event_type != YAML_SEQUENCE_START_EVENT {
		return false
	}
	n := emitter.peekEvent(1)
	return n != nil && n.event_type == YAML_SEQUENCE_END_EVENT
}

func yaml_emitter_check_empty_mapping(emitter *yaml_emitter_t) bool {
	e := emitter.peekEvent(0)
	if e == nil || e.event_type != YAML_MAPPING_START_EVENT {
		return false
	}
	n := emitter.peekEvent(1)
	return n != nil && n.event_type == YAML_MAPPING_END_EVENT
}

func yaml_emitter_check_empty_document(emitter *yaml_emitter_t) bool {
	e := emitter.peekEvent(0)
	if e == nil || e.event_type != YAML_DOCUMENT_START_EVENT {
		return false
	}
	n := emitter.peekEvent(1)
	return n != nil && n.event_type == YAML_SCALAR_EVENT &&
		len(n.anchor) == 0 && len(n.tag) == 0 && n.implicit && len(n.value) == 0
}

// yaml_emitter_check_simple_key implements spec §4.5's simple-key
// eligibility check used before committing to `?`-prefixed block
// mapping keys or flow-mapping key/value pairs: short, single-line,
// and plain/single-quote representable.
func yaml_emitter_check_simple_key(emitter *yaml_emitter_t) bool {
	event := emitter.peekEvent(0)
	if event == nil {
		return false
	}
	length := 0
	switch event.event_type {
	case YAML_ALIAS_EVENT:
		length += len(emitter.anchor_data.value)
	case YAML_SCALAR_EVENT:
		if len(emitter.tag_data.value) > 0 {
			length += len(emitter.tag_data.value) + 1
		}
		length += len(emitter.anchor_data.value) + len(emitter.scalar_data.value)
	case YAML_SEQUENCE_START_EVENT:
		if !yaml_emitter_check_empty_sequence(emitter) {
			return false
		}
		length += len(emitter.anchor_data.value) + len(emitter.tag_data.value)
	case YAML_MAPPING_START_EVENT:
		if !yaml_emitter_check_empty_mapping(emitter) {
			return false
		}
		length += len(emitter.anchor_data.value) + len(emitter.tag_data.value)
	default:
		return false
	}
	if length > 128 {
		return false
	}
	if event.event_type == YAML_SCALAR_EVENT {
		if emitter.scalar_data.multiline {
			return false
		}
		return emitter.scalar_data.flow_plain_allowed || emitter.scalar_data.block_plain_allowed ||
			emitter.scalar_data.single_quoted_allowed
	}
	return true
}

// --- main emit entrypoint and state dispatch --------------------------------

// yaml_emitter_emit enqueues event and drains the state machine as far
// as the buffered lookahead allows (spec §4.5's mirror state machine).
func yaml_emitter_emit(emitter *yaml_emitter_t, event *yaml_event_t) bool {
	emitter.events = append(emitter.events, *event)
	for !yaml_emitter_needs_more_events(emitter) {
		ev := &emitter.events[emitter.events_head]
		if !yaml_emitter_analyze_event(emitter, ev) {
			return false
		}
		if !yaml_emitter_state_machine(emitter, ev) {
			return false
		}
		emitter.events_head++
	}
	return true
}

func yaml_emitter_state_machine(emitter *yaml_emitter_t, event *yaml_event_t) bool {
	switch emitter.state {
	case YAML_EMIT_STREAM_START_STATE:
		return yaml_emitter_emit_stream_start(emitter, event)
	case YAML_EMIT_FIRST_DOCUMENT_START_STATE:
		return yaml_emitter_emit_document_start(emitter, event, true)
	case YAML_EMIT_DOCUMENT_START_STATE:
		return yaml_emitter_emit_document_start(emitter, event, false)
	case YAML_EMIT_DOCUMENT_CONTENT_STATE:
		return yaml_emitter_emit_document_content(emitter, event)
	case YAML_EMIT_DOCUMENT_END_STATE:
		return yaml_emitter_emit_document_end(emitter, event)
	case YAML_EMIT_FLOW_SEQUENCE_FIRST_ITEM_STATE:
		return yaml_emitter_emit_flow_sequence_item(emitter, event, true)
	case YAML_EMIT_FLOW_SEQUENCE_ITEM_STATE:
		return yaml_emitter_emit_flow_sequence_item(emitter, event, false)
	case YAML_EMIT_FLOW_MAPPING_FIRST_KEY_STATE:
		return yaml_emitter_emit_flow_mapping_key(emitter, event, true)
	case YAML_EMIT_FLOW_MAPPING_KEY_STATE:
		return yaml_emitter_emit_flow_mapping_key(emitter, event, false)
	case YAML_EMIT_FLOW_MAPPING_SIMPLE_VALUE_STATE:
		return yaml_emitter_emit_flow_mapping_value(emitter, event, true)
	case YAML_EMIT_FLOW_MAPPING_VALUE_STATE:
		return yaml_emitter_emit_flow_mapping_value(emitter, event, false)
	case YAML_EMIT_BLOCK_SEQUENCE_FIRST_ITEM_STATE:
		return yaml_emitter_emit_block_sequence_item(emitter, event, true)
	case YAML_EMIT_BLOCK_SEQUENCE_ITEM_STATE:
		return yaml_emitter_emit_block_sequence_item(emitter, event, false)
	case YAML_EMIT_BLOCK_MAPPING_FIRST_KEY_STATE:
		return yaml_emitter_emit_block_mapping_key(emitter, event, true)
	case YAML_EMIT_BLOCK_MAPPING_KEY_STATE:
		return yaml_emitter_emit_block_mapping_key(emitter, event, false)
	case YAML_EMIT_BLOCK_MAPPING_SIMPLE_VALUE_STATE:
		return yaml_emitter_emit_block_mapping_value(emitter, event, true)
	case YAML_EMIT_BLOCK_MAPPING_VALUE_STATE:
		return yaml_emitter_emit_block_mapping_value(emitter, event, false)
	case YAML_EMIT_END_STATE:
		return yaml_emitter_set_emitter_error(emitter, "expected nothing after STREAM-END")
	}
	return yaml_emitter_set_emitter_error(emitter, "invalid emitter state")
}

func yaml_emitter_emit_stream_start(emitter *yaml_emitter_t, event *yaml_event_t) bool {
	emitter.open_ended = 0
	if event.event_type != YAML_STREAM_START_EVENT {
		return yaml_emitter_set_emitter_error(emitter, "expected STREAM-START")
	}
	if emitter.encoding == YAML_ANY_ENCODING {
		emitter.encoding = event.encoding
	}
	if emitter.encoding == YAML_ANY_ENCODING {
		emitter.encoding = YAML_UTF8_ENCODING
	}
	if emitter.best_indent < 2 || emitter.best_indent > 9 {
		emitter.best_indent = 2
	}
	if emitter.best_width >= 0 && emitter.best_width <= emitter.best_indent*2 {
		emitter.best_width = 80
	}
	if emitter.best_width < 0 {
		emitter.best_width = 1<<31 - 1
	}
	if emitter.line_break == YAML_ANY_BREAK {
		emitter.line_break = YAML_LN_BREAK
	}
	emitter.indent = -1
	emitter.line = 0
	emitter.column = 0
	emitter.whitespace = true
	emitter.indention = true

	if !yaml_emitter_flush(emitter) {
		return false
	}
	emitter.state = YAML_EMIT_FIRST_DOCUMENT_START_STATE
	return true
}

func yaml_emitter_emit_document_start(emitter *yaml_emitter_t, event *yaml_event_t, first bool) bool {
	if event.event_type == YAML_STREAM_END_EVENT {
		if !yaml_emitter_flush(emitter) {
			return false
		}
		emitter.state = YAML_EMIT_END_STATE
		return true
	}
	if event.event_type != YAML_DOCUMENT_START_EVENT {
		return yaml_emitter_set_emitter_error(emitter, "expected DOCUMENT-START or STREAM-END")
	}

	emitter.tag_directives = emitter.tag_directives[:0]
	if event.version_directive != nil {
		if !yaml_emitter_analyze_version_directive(emitter, *event.version_directive) {
			return false
		}
	}
	for _, td := range event.tag_directives {
		if !yaml_emitter_analyze_tag_directive(emitter, td) {
			return false
		}
		if !yaml_emitter_append_tag_directive(emitter, td, false) {
			return false
		}
	}
	for _, td := range default_tag_directives {
		if !yaml_emitter_append_tag_directive(emitter, td, true) {
			return false
		}
	}

	implicit := event.implicit && first && !emitter.canonical &&
		event.version_directive == nil && len(event.tag_directives) == 0 &&
		emitter.open_ended == 0

	if !implicit {
		if !yaml_emitter_write_indent(emitter) {
			return false
		}
		if event.version_directive != nil {
			if !yaml_emitter_write_version_directive(emitter, event.version_directive) {
				return false
			}
		}
		for _, td := range event.tag_directives {
			if !yaml_emitter_write_tag_directive(emitter, td.handle, td.prefix) {
				return false
			}
		}
	}
	emitter.open_ended = 0

	if yaml_emitter_check_empty_document(emitter) {
		emitter.state = YAML_EMIT_DOCUMENT_CONTENT_STATE
		return true
	}

	if !implicit {
		if !yaml_emitter_write_indicator(emitter, "---", true, false, false) {
			return false
		}
		if emitter.canonical {
			if !yaml_emitter_write_indent(emitter) {
				return false
			}
		}
	}

	emitter.state = YAML_EMIT_DOCUMENT_CONTENT_STATE
	return true
}

func yaml_emitter_emit_document_content(emitter *yaml_emitter_t, event *yaml_event_t) bool {
	emitter.states = append(emitter.states, YAML_EMIT_DOCUMENT_END_STATE)
	return yaml_emitter_emit_node(emitter, event, true, false, false, false)
}

func yaml_emitter_emit_document_end(emitter *yaml_emitter_t, event *yaml_event_t) bool {
	if event.event_type != YAML_DOCUMENT_END_EVENT {
		return yaml_emitter_set_emitter_error(emitter, "expected DOCUMENT-END")
	}
	if !yaml_emitter_write_indent(emitter) {
		return false
	}
	implicit := event.implicit && emitter.open_ended != 2
	if !implicit {
		if !yaml_emitter_write_indicator(emitter, "...", true, false, false) {
			return false
		}
		if !yaml_emitter_write_indent(emitter) {
			return false
		}
		emitter.open_ended = 0
	}
	if !yaml_emitter_flush(emitter) {
		return false
	}
	emitter.state = YAML_EMIT_DOCUMENT_START_STATE
	return true
}

func yaml_emitter_emit_node(emitter *yaml_emitter_t, event *yaml_event_t, root, sequence, mapping, simpleKey bool) bool {
	emitter.root_context = root
	emitter.sequence_context = sequence
	emitter.mapping_context = mapping
	emitter.simple_key_context = simpleKey

	switch event.event_type {
	case YAML_ALIAS_EVENT:
		return yaml_emitter_emit_alias(emitter, event)
	case YAML_SCALAR_EVENT:
		return yaml_emitter_emit_scalar(emitter, event)
	case YAML_SEQUENCE_START_EVENT:
		return yaml_emitter_emit_sequence_start(emitter, event)
	case YAML_MAPPING_START_EVENT:
		return yaml_emitter_emit_mapping_start(emitter, event)
	}
	return yaml_emitter_set_emitter_error(emitter, "expected SCALAR, SEQUENCE-START, MAPPING-START, or ALIAS")
}

func yaml_emitter_emit_alias(emitter *yaml_emitter_t, event *yaml_event_t) bool {
	if !yaml_emitter_write_anchor(emitter, "*", emitter.anchor_data.value) {
		return false
	}
	emitter.state = emitter.popState()
	return true
}

func yaml_emitter_emit_scalar(emitter *yaml_emitter_t, event *yaml_event_t) bool {
	if !yaml_emitter_select_scalar_style(emitter, event) {
		return false
	}
	if !yaml_emitter_process_anchor(emitter) {
		return false
	}
	if !yaml_emitter_process_scalar_tag(emitter, event) {
		return false
	}
	if !yaml_emitter_increase_indent(emitter, true, false) {
		return false
	}
	if !yaml_emitter_process_scalar(emitter) {
		return false
	}
	emitter.popIndent()
	emitter.state = emitter.popState()
	return true
}

func yaml_emitter_emit_sequence_start(emitter *yaml_emitter_t, event *yaml_event_t) bool {
	if !yaml_emitter_process_anchor(emitter) {
		return false
	}
	if !yaml_emitter_process_collection_tag(emitter, event) {
		return false
	}
	if emitter.flow_level > 0 || emitter.canonical || event.sequenceStyle() == YAML_FLOW_SEQUENCE_STYLE ||
		yaml_emitter_check_empty_sequence(emitter) {
		emitter.state = YAML_EMIT_FLOW_SEQUENCE_FIRST_ITEM_STATE
	} else {
		emitter.state = YAML_EMIT_BLOCK_SEQUENCE_FIRST_ITEM_STATE
	}
	return true
}

func yaml_emitter_emit_mapping_start(emitter *yaml_emitter_t, event *yaml_event_t) bool {
	if !yaml_emitter_process_anchor(emitter) {
		return false
	}
	if !yaml_emitter_process_collection_tag(emitter, event) {
		return false
	}
	if emitter.flow_level > 0 || emitter.canonical || event.mappingStyle() == YAML_FLOW_MAPPING_STYLE ||
		yaml_emitter_check_empty_mapping(emitter) {
		emitter.state = YAML_EMIT_FLOW_MAPPING_FIRST_KEY_STATE
	} else {
		emitter.state = YAML_EMIT_BLOCK_MAPPING_FIRST_KEY_STATE
	}
	return true
}

func yaml_emitter_emit_flow_sequence_item(emitter *yaml_emitter_t, event *yaml_event_t, first bool) bool {
	if first {
		if !yaml_emitter_write_indicator(emitter, "[", true, true, false) {
			return false
		}
		if !yaml_emitter_increase_indent(emitter, true, false) {
			return false
		}
		emitter.flow_level++
	}
	if event.event_type == YAML_SEQUENCE_END_EVENT {
		emitter.flow_level--
		emitter.popIndent()
		if emitter.canonical && !first {
			if !yaml_emitter_write_indicator(emitter, ",", false, false, false) {
				return false
			}
			if !yaml_emitter_write_indent(emitter) {
				return false
			}
		}
		if !yaml_emitter_write_indicator(emitter, "]", false, false, false) {
			return false
		}
		emitter.state = emitter.popState()
		return true
	}
	if !first {
		if !yaml_emitter_write_indicator(emitter, ",", false, false, false) {
			return false
		}
	}
	if emitter.canonical || emitter.column > emitter.best_width {
		if !yaml_emitter_write_indent(emitter) {
			return false
		}
	}
	emitter.states = append(emitter.states, YAML_EMIT_FLOW_SEQUENCE_ITEM_STATE)
	return yaml_emitter_emit_node(emitter, event, false, true, false, false)
}

func yaml_emitter_emit_flow_mapping_key(emitter *yaml_emitter_t, event *yaml_event_t, first bool) bool {
	if first {
		if !yaml_emitter_write_indicator(emitter, "{", true, true, false) {
			return false
		}
		if !yaml_emitter_increase_indent(emitter, true, false) {
			return false
		}
		emitter.flow_level++
	}
	if event.event_type == YAML_MAPPING_END_EVENT {
		emitter.flow_level--
		emitter.popIndent()
		if emitter.canonical && !first {
			if !yaml_emitter_write_indicator(emitter, ",", false, false, false) {
				return false
			}
			if !yaml_emitter_write_indent(emitter) {
				return false
			}
		}
		if !yaml_emitter_write_indicator(emitter, "}", false, false, false) {
			return false
		}
		emitter.state = emitter.popState()
		return true
	}
	if !first {
		if !yaml_emitter_write_indicator(emitter, ",", false, false, false) {
			return false
		}
	}
	if emitter.canonical || emitter.column > emitter.best_width {
		if !yaml_emitter_write_indent(emitter) {
			return false
		}
	}
	if !emitter.canonical && yaml_emitter_check_simple_key(emitter) {
		emitter.states = append(emitter.states, YAML_EMIT_FLOW_MAPPING_SIMPLE_VALUE_STATE)
		return yaml_emitter_emit_node(emitter, event, false, false, true, true)
	}
	if !yaml_emitter_write_indicator(emitter, "?", true, false, false) {
		return false
	}
	emitter.states = append(emitter.states, YAML_EMIT_FLOW_MAPPING_VALUE_STATE)
	return yaml_emitter_emit_node(emitter, event, false, false, true, false)
}

func yaml_emitter_emit_flow_mapping_value(emitter *yaml_emitter_t, event *yaml_event_t, simple bool) bool {
	if simple {
		if !yaml_emitter_write_indicator(emitter, ":", false, false, false) {
			return false
		}
	} else {
		if emitter.canonical || emitter.column > emitter.best_width {
			if !yaml_emitter_write_indent(emitter) {
				return false
			}
		}
		if !yaml_emitter_write_indicator(emitter, ":", true, false, false) {
			return false
		}
	}
	emitter.states = append(emitter.states, YAML_EMIT_FLOW_MAPPING_KEY_STATE)
	return yaml_emitter_emit_node(emitter, event, false, false, true, false)
}

func yaml_emitter_emit_block_sequence_item(emitter *yaml_emitter_t, event *yaml_event_t, first bool) bool {
	if first {
		if !yaml_emitter_increase_indent(emitter, false, emitter.mapping_context && !emitter.indention) {
			return false
		}
	}
	if event.event_type == YAML_SEQUENCE_END_EVENT {
		emitter.popIndent()
		emitter.state = emitter.popState()
		return true
	}
	if !yaml_emitter_write_indent(emitter) {
		return false
	}
	if !yaml_emitter_write_indicator(emitter, "-", true, false, true) {
		return false
	}
	emitter.states = append(emitter.states, YAML_EMIT_BLOCK_SEQUENCE_ITEM_STATE)
	return yaml_emitter_emit_node(emitter, event, false, true, false, false)
}

func yaml_emitter_emit_block_mapping_key(emitter *yaml_emitter_t, event *yaml_event_t, first bool) bool {
	if first {
		if !yaml_emitter_increase_indent(emitter, false, false) {
			return false
		}
	}
	if event.event_type == YAML_MAPPING_END_EVENT {
		emitter.popIndent()
		emitter.state = emitter.popState()
		return true
	}
	if !yaml_emitter_write_indent(emitter) {
		return false
	}
	if yaml_emitter_check_simple_key(emitter) {
		emitter.states = append(emitter.states, YAML_EMIT_BLOCK_MAPPING_SIMPLE_VALUE_STATE)
		return yaml_emitter_emit_node(emitter, event, false, false, true, true)
	}
	if !yaml_emitter_write_indicator(emitter, "?", true, false, true) {
		return false
	}
	emitter.states = append(emitter.states, YAML_EMIT_BLOCK_MAPPING_VALUE_STATE)
	return yaml_emitter_emit_node(emitter, event, false, false, true, false)
}

func yaml_emitter_emit_block_mapping_value(emitter *yaml_emitter_t, event *yaml_event_t, simple bool) bool {
	if simple {
		if !yaml_emitter_write_indicator(emitter, ":", false, false, false) {
			return false
		}
	} else {
		if !yaml_emitter_write_indent(emitter) {
			return false
		}
		if !yaml_emitter_write_indicator(emitter, ":", true, false, true) {
			return false
		}
	}
	emitter.states = append(emitter.states, YAML_EMIT_BLOCK_MAPPING_KEY_STATE)
	return yaml_emitter_emit_node(emitter, event, false, false, true, false)
}
