package yaml

import "fmt"

// yaml_dumper_t holds the two-pass state for turning a Document back
// into an event stream (spec §4.6).
type yaml_dumper_t struct {
	doc *Document

	refCounts    map[NodeId]int
	anchors      map[NodeId]string
	nextAnchorID int
	visited      map[NodeId]bool

	events []yaml_event_t
}

// yaml_dumper_generate_events implements spec §4.6's two-pass
// algorithm: pass 1 walks the tree depth-first counting how many times
// each node is reached; any node reached more than once gets a
// monotonic anchor id (rendered "idNNN"). Pass 2 walks the tree again
// in document order, emitting the full node on first visit (carrying
// its anchor, if any) and an Alias event on every subsequent visit.
//
// Grounded on go.yaml.in/yaml/v2/dumper.go's three-stage pipeline
// (Representer -> Desolver -> Serializer), collapsed here into the two
// passes spec §4.6 specifies directly against the node arena instead of
// a reflected Go value, since this package never reflects over Go
// values.
func yaml_dumper_generate_events(doc *Document) []yaml_event_t {
	d := &yaml_dumper_t{
		doc:       doc,
		refCounts: make(map[NodeId]int),
		anchors:   make(map[NodeId]string),
		visited:   make(map[NodeId]bool),
	}

	root := doc.GetRootNode()
	d.countReferences(root)
	for id, count := range d.refCounts {
		if count > 1 {
			d.nextAnchorID++
			d.anchors[id] = fmt.Sprintf("id%03d", d.nextAnchorID)
		}
	}

	d.events = append(d.events, yaml_event_t{
		event_type:        YAML_DOCUMENT_START_EVENT,
		version_directive:  doc.version_directive,
		tag_directives:     doc.tag_directives,
		implicit:           doc.start_implicit,
	})
	if root != 0 {
		d.emitNode(root)
	}
	d.events = append(d.events, yaml_event_t{
		event_type: YAML_DOCUMENT_END_EVENT,
		implicit:   doc.end_implicit,
	})
	return d.events
}

// countReferences visits id and its descendants once each, recursing
// into a node's children only on the node's first visit (later visits
// of an already-counted node only bump its count, since its subtree was
// already walked).
func (d *yaml_dumper_t) countReferences(id NodeId) {
	if id == 0 {
		return
	}
	d.refCounts[id]++
	if d.refCounts[id] > 1 {
		return
	}
	n := d.doc.GetNode(id)
	if n == nil {
		return
	}
	switch n.node_type {
	case YAML_SEQUENCE_NODE:
		for _, item := range n.sequence_items {
			d.countReferences(item)
		}
	case YAML_MAPPING_NODE:
		for _, pair := range n.mapping_pairs {
			d.countReferences(pair.key)
			d.countReferences(pair.value)
		}
	}
}

// isDefaultTag reports whether n's tag is the tag its kind would
// resolve to anyway, so the dumper can mark it implicit and let the
// emitter omit a redundant `!!str`/`!!seq`/`!!map`.
func isDefaultTag(n *yaml_node_t) bool {
	switch n.node_type {
	case YAML_SCALAR_NODE:
		return string(n.tag) == "tag:yaml.org,2002:str"
	case YAML_SEQUENCE_NODE:
		return string(n.tag) == "tag:yaml.org,2002:seq"
	case YAML_MAPPING_NODE:
		return string(n.tag) == "tag:yaml.org,2002:map"
	}
	return false
}

func (d *yaml_dumper_t) emitNode(id NodeId) {
	if d.visited[id] {
		d.events = append(d.events, yaml_event_t{
			event_type: YAML_ALIAS_EVENT,
			anchor:     []byte(d.anchors[id]),
		})
		return
	}
	d.visited[id] = true

	n := d.doc.GetNode(id)
	anchor := []byte(d.anchors[id])
	implicit := isDefaultTag(n)

	switch n.node_type {
	case YAML_SCALAR_NODE:
		d.events = append(d.events, yaml_event_t{
			event_type:      YAML_SCALAR_EVENT,
			anchor:          anchor,
			tag:             n.tag,
			value:           n.scalar_value,
			implicit:        implicit,
			quoted_implicit: implicit,
			style:           yaml_style_t(n.scalar_style),
		})

	case YAML_SEQUENCE_NODE:
		d.events = append(d.events, yaml_event_t{
			event_type: YAML_SEQUENCE_START_EVENT,
			anchor:     anchor,
			tag:        n.tag,
			implicit:   implicit,
			style:      yaml_style_t(n.sequence_style),
		})
		for _, item := range n.sequence_items {
			d.emitNode(item)
		}
		d.events = append(d.events, yaml_event_t{event_type: YAML_SEQUENCE_END_EVENT})

	case YAML_MAPPING_NODE:
		d.events = append(d.events, yaml_event_t{
			event_type: YAML_MAPPING_START_EVENT,
			anchor:     anchor,
			tag:        n.tag,
			implicit:   implicit,
			style:      yaml_style_t(n.mapping_style),
		})
		for _, pair := range n.mapping_pairs {
			d.emitNode(pair.key)
			d.emitNode(pair.value)
		}
		d.events = append(d.events, yaml_event_t{event_type: YAML_MAPPING_END_EVENT})
	}
}
