package yaml

// yaml_node_type_t enumerates node kinds (spec §3 Node).
type yaml_node_type_t int

const (
	YAML_NO_NODE yaml_node_type_t = iota
	YAML_SCALAR_NODE
	YAML_SEQUENCE_NODE
	YAML_MAPPING_NODE
)

// NodeId indexes into a Document's node arena. 0 is the reserved
// "no node" sentinel; the arena is 1-indexed, root at index 1 (spec §3).
type NodeId int

// yaml_node_pair_t is one (key, value) pair in a mapping node's pair
// list, addressed by NodeId rather than pointer (spec §9: "Forbid
// shared mutable aliasing of sub-nodes").
type yaml_node_pair_t struct {
	key   NodeId
	value NodeId
}

// yaml_node_t is a tagged union over scalar/sequence/mapping nodes.
type yaml_node_t struct {
	node_type yaml_node_type_t
	tag       []byte
	start_mark yaml_mark_t
	end_mark   yaml_mark_t

	// SCALAR
	scalar_value []byte
	scalar_style yaml_scalar_style_t

	// SEQUENCE
	sequence_items []NodeId
	sequence_style yaml_sequence_style_t

	// MAPPING
	mapping_pairs []yaml_node_pair_t
	mapping_style yaml_mapping_style_t
}

// Document is the composed/constructed node arena plus stream-level
// directives (spec §3 Document). The zero value is not usable; use
// NewDocument.
type Document struct {
	nodes []yaml_node_t // 1-indexed: nodes[0] is unused padding

	version_directive *yaml_version_directive_t
	tag_directives    []yaml_tag_directive_t

	start_implicit bool
	end_implicit   bool
}

// NewDocument creates an empty document ready to accept nodes via
// AddScalar/AddSequence/AddMapping (spec §6 document_init).
func NewDocument(version *yaml_version_directive_t, tagDirectives []yaml_tag_directive_t, startImplicit, endImplicit bool) *Document {
	return &Document{
		nodes:             make([]yaml_node_t, 1, 16),
		version_directive: version,
		tag_directives:    append([]yaml_tag_directive_t(nil), tagDirectives...),
		start_implicit:    startImplicit,
		end_implicit:      endImplicit,
	}
}

// GetRootNode returns the document's root node id, or 0 if the document
// is empty.
func (d *Document) GetRootNode() NodeId {
	if len(d.nodes) <= 1 {
		return 0
	}
	return 1
}

// GetNode returns a pointer to the node at id, or nil if id is out of
// range (spec §6 document_get_node).
func (d *Document) GetNode(id NodeId) *yaml_node_t {
	if id <= 0 || int(id) >= len(d.nodes) {
		return nil
	}
	return &d.nodes[id]
}

func (d *Document) appendNode(n yaml_node_t) NodeId {
	d.nodes = append(d.nodes, n)
	return NodeId(len(d.nodes) - 1)
}

// AddScalar appends a scalar node and returns its id. An empty tag
// defaults to "!!str" to match the composer's own default-tag rule
// (spec §4.4). style takes the public ScalarStyle enum (apic.go) so
// this document-operations surface is callable outside the package,
// per spec §6.
func (d *Document) AddScalar(tag string, value []byte, style ScalarStyle) NodeId {
	if tag == "" {
		tag = "tag:yaml.org,2002:str"
	}
	return d.appendNode(yaml_node_t{
		node_type:    YAML_SCALAR_NODE,
		tag:          []byte(tag),
		scalar_value: append([]byte(nil), value...),
		scalar_style: yaml_scalar_style_t(style),
	})
}

// AddSequence appends an empty sequence node and returns its id.
func (d *Document) AddSequence(tag string, style SequenceStyle) NodeId {
	if tag == "" {
		tag = "tag:yaml.org,2002:seq"
	}
	return d.appendNode(yaml_node_t{
		node_type:      YAML_SEQUENCE_NODE,
		tag:            []byte(tag),
		sequence_style: yaml_sequence_style_t(style),
	})
}

// AddMapping appends an empty mapping node and returns its id.
func (d *Document) AddMapping(tag string, style MappingStyle) NodeId {
	if tag == "" {
		tag = "tag:yaml.org,2002:map"
	}
	return d.appendNode(yaml_node_t{
		node_type:     YAML_MAPPING_NODE,
		tag:           []byte(tag),
		mapping_style: yaml_mapping_style_t(style),
	})
}

// AppendSequenceItem appends item to the sequence at seq (spec §6
// document_append_sequence_item). Both ids must reference existing
// nodes; seq must be a sequence node.
func (d *Document) AppendSequenceItem(seq, item NodeId) bool {
	n := d.GetNode(seq)
	if n == nil || n.node_type != YAML_SEQUENCE_NODE || d.GetNode(item) == nil {
		return false
	}
	n.sequence_items = append(n.sequence_items, item)
	return true
}

// AppendMappingPair appends a (key, value) pair to the mapping at m
// (spec §6 document_append_mapping_pair).
func (d *Document) AppendMappingPair(m, key, value NodeId) bool {
	n := d.GetNode(m)
	if n == nil || n.node_type != YAML_MAPPING_NODE || d.GetNode(key) == nil || d.GetNode(value) == nil {
		return false
	}
	n.mapping_pairs = append(n.mapping_pairs, yaml_node_pair_t{key: key, value: value})
	return true
}

// setEnd stamps a container node's end position on close (composer
// lifecycle, spec §3 "Nodes ... mutated only to set end-position on
// container close").
func (d *Document) setEnd(id NodeId, mark yaml_mark_t) {
	if n := d.GetNode(id); n != nil {
		n.end_mark = mark
	}
}

// MappingGetValue returns the value node id for the first pair in the
// mapping at m whose key is a scalar equal to key, or 0 if none match
// or m is not a mapping (spec §6 mapping_get_value).
func (d *Document) MappingGetValue(m NodeId, key []byte) NodeId {
	n := d.GetNode(m)
	if n == nil || n.node_type != YAML_MAPPING_NODE {
		return 0
	}
	for _, pair := range n.mapping_pairs {
		k := d.GetNode(pair.key)
		if k != nil && k.node_type == YAML_SCALAR_NODE && string(k.scalar_value) == string(key) {
			return pair.value
		}
	}
	return 0
}

// SequenceGetItem returns the item at the given zero-based index in the
// sequence at seq, or 0 if out of range or seq is not a sequence
// (spec §6 sequence_get_item).
func (d *Document) SequenceGetItem(seq NodeId, index int) NodeId {
	n := d.GetNode(seq)
	if n == nil || n.node_type != YAML_SEQUENCE_NODE || index < 0 || index >= len(n.sequence_items) {
		return 0
	}
	return n.sequence_items[index]
}
