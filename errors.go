package yaml

import "fmt"

// Kind is the public error taxonomy (spec §7), a thin re-export of the
// internal yaml_error_type_t so callers outside this package never need
// to see the internal snake_case type.
type Kind int

const (
	KindNone Kind = Kind(YAML_NO_ERROR)
	KindMemory Kind = Kind(YAML_MEMORY_ERROR)
	KindReader Kind = Kind(YAML_READER_ERROR)
	KindScanner Kind = Kind(YAML_SCANNER_ERROR)
	KindParser Kind = Kind(YAML_PARSER_ERROR)
	KindComposer Kind = Kind(YAML_COMPOSER_ERROR)
	KindWriter Kind = Kind(YAML_WRITER_ERROR)
	KindEmitter Kind = Kind(YAML_EMITTER_ERROR)
)

func (k Kind) String() string {
	return yaml_error_type_t(k).String()
}

// Mark is a caller-visible stream position (spec §3 Position).
type Mark struct {
	Index  int
	Line   int
	Column int
}

func markOf(m yaml_mark_t) Mark {
	return Mark{Index: m.index, Line: m.line, Column: m.column}
}

func (m Mark) String() string {
	return fmt.Sprintf("line %d, column %d", m.Line+1, m.Column+1)
}

// YAMLError is the error type returned by every public Parser/Emitter
// method once the sticky internal error state is observed, bridging
// the teacher's C-style sticky-field error model to an idiomatic Go
// error the way WillAbides-yaml/decode.go's fail() does.
type YAMLError struct {
	Kind        Kind
	Problem     string
	Mark        Mark
	Context     string
	ContextMark Mark

	// ProblemOffset/ProblemValue are set only for KindReader errors
	// (spec §6 "reader errors").
	ProblemOffset int
	ProblemValue  rune
}

func (e *YAMLError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("yaml: %s at %s: %s at %s", e.Context, e.ContextMark, e.Problem, e.Mark)
	}
	return fmt.Sprintf("yaml: %s at %s", e.Problem, e.Mark)
}

// parserError converts a parser's sticky error fields into a YAMLError,
// or returns nil if no error is set.
func parserError(p *yaml_parser_t) error {
	if p.error == YAML_NO_ERROR {
		return nil
	}
	err := &YAMLError{
		Kind:        Kind(p.error),
		Problem:     p.problem,
		Mark:        markOf(p.problem_mark),
		Context:     p.context,
		ContextMark: markOf(p.context_mark),
	}
	if p.error == YAML_READER_ERROR {
		err.ProblemOffset = p.problem_offset
		err.ProblemValue = p.problem_value
	}
	return err
}

// emitterError converts an emitter's sticky error fields into a
// YAMLError, or returns nil if no error is set.
func emitterError(e *yaml_emitter_t) error {
	if e.error == YAML_NO_ERROR {
		return nil
	}
	return &YAMLError{
		Kind:    Kind(e.error),
		Problem: e.problem,
	}
}
