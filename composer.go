package yaml

// yaml_composer_t folds a parser's event stream into a Document's node
// arena, the same responsibility WillAbides-yaml/decode.go's parser
// type gives its anchors map and expect(event_type) dispatch, retargeted
// here from a pointer tree onto the spec's 1-indexed NodeId arena.
type yaml_composer_t struct {
	parser *yaml_parser_t
	doc    *Document

	// anchors maps an anchor name to the node it names, cleared at the
	// start of each document (spec §4.4).
	anchors     map[string]NodeId
	anchorMarks map[string]yaml_mark_t
}

// yaml_composer_compose_all drives the parser to StreamEnd, composing one
// Document per DocumentStart/DocumentEnd pair and returning them in
// order. The first error encountered aborts and is returned; any
// documents composed before the error are discarded, matching the
// all-or-nothing semantics of a single Load call (spec §6 `load`).
func yaml_composer_compose_all(parser *yaml_parser_t) ([]*Document, error) {
	var docs []*Document
	for {
		doc, ok, err := yaml_composer_compose_one(parser)
		if err != nil {
			return nil, err
		}
		if !ok {
			return docs, nil
		}
		docs = append(docs, doc)
	}
}

// yaml_composer_compose_one implements a single `Parser.Load` pull: it
// composes and returns the next document in the stream, or ok=false
// once STREAM-END is reached without error. Grounded on
// original_source/examples/apis/loading.c's load-then-inspect-then-
// load-again loop (spec §6 "parser_load" as a per-document pull that
// leaves the stream positioned for the next call).
func yaml_composer_compose_one(parser *yaml_parser_t) (doc *Document, ok bool, err error) {
	var event yaml_event_t
	if !yaml_parser_parse(parser, &event) {
		return nil, false, parserError(parser)
	}
	if event.event_type == YAML_STREAM_START_EVENT {
		if !yaml_parser_parse(parser, &event) {
			return nil, false, parserError(parser)
		}
	}
	if event.event_type == YAML_STREAM_END_EVENT {
		return nil, false, nil
	}
	if event.event_type != YAML_DOCUMENT_START_EVENT {
		yaml_parser_set_composer_error(parser, "expected document start or stream end", event.start_mark)
		return nil, false, parserError(parser)
	}

	c := &yaml_composer_t{
		parser:      parser,
		anchors:     make(map[string]NodeId),
		anchorMarks: make(map[string]yaml_mark_t),
	}
	c.doc = NewDocument(event.version_directive, event.tag_directives, event.implicit, false)

	doc, err = c.composeDocument()
	if err != nil {
		return nil, false, err
	}
	return doc, true, nil
}

// composeDocument consumes events from DocumentContent through
// DocumentEnd, having already consumed DocumentStart.
func (c *yaml_composer_t) composeDocument() (*Document, error) {
	var event yaml_event_t
	if !yaml_parser_parse(c.parser, &event) {
		return nil, parserError(c.parser)
	}
	if event.event_type != YAML_DOCUMENT_END_EVENT {
		if _, err := c.composeNode(&event); err != nil {
			return nil, err
		}
		if !yaml_parser_parse(c.parser, &event) {
			return nil, parserError(c.parser)
		}
	}
	if event.event_type != YAML_DOCUMENT_END_EVENT {
		yaml_parser_set_composer_error(c.parser, "expected a single root node", event.start_mark)
		return nil, parserError(c.parser)
	}
	c.doc.end_implicit = event.implicit
	return c.doc, nil
}

// composeNode composes the single node (and, recursively, its
// children) described by event, returning its id.
func (c *yaml_composer_t) composeNode(event *yaml_event_t) (NodeId, error) {
	switch event.event_type {
	case YAML_ALIAS_EVENT:
		id, ok := c.anchors[string(event.anchor)]
		if !ok {
			yaml_parser_set_composer_error(c.parser, "found undefined alias", event.start_mark)
			return 0, parserError(c.parser)
		}
		return id, nil

	case YAML_SCALAR_EVENT:
		id := c.doc.AddScalar(string(event.tag), event.value, ScalarStyle(event.scalarStyle()))
		c.doc.nodes[id].start_mark = event.start_mark
		c.doc.nodes[id].end_mark = event.end_mark
		if err := c.registerAnchor(event.anchor, id, event.start_mark); err != nil {
			return 0, err
		}
		return id, nil

	case YAML_SEQUENCE_START_EVENT:
		id := c.doc.AddSequence(string(event.tag), SequenceStyle(event.sequenceStyle()))
		c.doc.nodes[id].start_mark = event.start_mark
		if err := c.registerAnchor(event.anchor, id, event.start_mark); err != nil {
			return 0, err
		}
		if err := c.composeSequence(id); err != nil {
			return 0, err
		}
		return id, nil

	case YAML_MAPPING_START_EVENT:
		id := c.doc.AddMapping(string(event.tag), MappingStyle(event.mappingStyle()))
		c.doc.nodes[id].start_mark = event.start_mark
		if err := c.registerAnchor(event.anchor, id, event.start_mark); err != nil {
			return 0, err
		}
		if err := c.composeMapping(id); err != nil {
			return 0, err
		}
		return id, nil
	}
	yaml_parser_set_composer_error(c.parser, "expected a node", event.start_mark)
	return 0, parserError(c.parser)
}

func (c *yaml_composer_t) composeSequence(seq NodeId) error {
	for {
		var event yaml_event_t
		if !yaml_parser_parse(c.parser, &event) {
			return parserError(c.parser)
		}
		if event.event_type == YAML_SEQUENCE_END_EVENT {
			c.doc.setEnd(seq, event.end_mark)
			return nil
		}
		item, err := c.composeNode(&event)
		if err != nil {
			return err
		}
		c.doc.AppendSequenceItem(seq, item)
	}
}

// composeMapping implements the pair-assembly rule verbatim (spec
// §4.4): a bare key with no value yet is completed by the next node; a
// fresh (key, value) pair is otherwise started.
func (c *yaml_composer_t) composeMapping(m NodeId) error {
	pending := false
	var pendingKey NodeId
	for {
		var event yaml_event_t
		if !yaml_parser_parse(c.parser, &event) {
			return parserError(c.parser)
		}
		if event.event_type == YAML_MAPPING_END_EVENT {
			c.doc.setEnd(m, event.end_mark)
			return nil
		}
		node, err := c.composeNode(&event)
		if err != nil {
			return err
		}
		if pending {
			c.doc.AppendMappingPair(m, pendingKey, node)
			pending = false
		} else {
			pendingKey = node
			pending = true
		}
	}
}

// registerAnchor records name -> id in the per-document anchor
// registry, or errors if name was already registered in this document
// (spec §4.4 "registering a duplicate anchor is an error with both
// positions").
func (c *yaml_composer_t) registerAnchor(name []byte, id NodeId, mark yaml_mark_t) error {
	if len(name) == 0 {
		return nil
	}
	key := string(name)
	if firstMark, ok := c.anchorMarks[key]; ok {
		return yaml_parser_set_composer_error_context(c.parser,
			"found duplicate anchor; first occurrence", firstMark,
			"second occurrence", mark)
	}
	c.anchors[key] = id
	c.anchorMarks[key] = mark
	return nil
}

// --- composer errors (spec §7 KindComposer) -----------------------------

func yaml_parser_set_composer_error(parser *yaml_parser_t, problem string, mark yaml_mark_t) bool {
	parser.error = YAML_COMPOSER_ERROR
	parser.problem = problem
	parser.problem_mark = mark
	return false
}

func yaml_parser_set_composer_error_context(parser *yaml_parser_t, context string, contextMark yaml_mark_t, problem string, mark yaml_mark_t) error {
	parser.error = YAML_COMPOSER_ERROR
	parser.context = context
	parser.context_mark = contextMark
	parser.problem = problem
	parser.problem_mark = mark
	return parserError(parser)
}
