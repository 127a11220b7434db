package yaml

import "strconv"

// GetNodeByPath walks keys through the document starting at the root,
// selecting mapping entries by scalar match and, on a sequence, treating
// a purely-decimal key as a zero-based index; any other shape fails
// with 0 (spec §6 get_node_by_path).
//
// Grounded on original_source/examples/apis/get_by_path.c: a decimal key
// against a mapping is looked up as a string key first (mappings never
// fall back to positional indexing), matching that example's behavior
// of failing rather than guessing when a decimal-looking key has no
// matching string entry.
func (d *Document) GetNodeByPath(keys ...string) NodeId {
	id := d.GetRootNode()
	if id == 0 {
		return 0
	}
	for _, key := range keys {
		n := d.GetNode(id)
		if n == nil {
			return 0
		}
		switch n.node_type {
		case YAML_MAPPING_NODE:
			id = d.MappingGetValue(id, []byte(key))
			if id == 0 {
				return 0
			}
		case YAML_SEQUENCE_NODE:
			index, err := strconv.Atoi(key)
			if err != nil || index < 0 {
				return 0
			}
			id = d.SequenceGetItem(id, index)
			if id == 0 {
				return 0
			}
		default:
			return 0
		}
	}
	return id
}

// ScalarBytes returns the scalar bytes at id, or nil if id does not
// reference a scalar node.
func (d *Document) ScalarBytes(id NodeId) []byte {
	n := d.GetNode(id)
	if n == nil || n.node_type != YAML_SCALAR_NODE {
		return nil
	}
	return n.scalar_value
}

// Tag returns the resolved tag string for id, or "" if id is invalid.
func (d *Document) Tag(id NodeId) string {
	n := d.GetNode(id)
	if n == nil {
		return ""
	}
	return string(n.tag)
}

// Len returns the number of items/pairs for a sequence/mapping node, or
// the byte length of a scalar's value; 0 for an invalid id.
func (d *Document) Len(id NodeId) int {
	n := d.GetNode(id)
	if n == nil {
		return 0
	}
	switch n.node_type {
	case YAML_SCALAR_NODE:
		return len(n.scalar_value)
	case YAML_SEQUENCE_NODE:
		return len(n.sequence_items)
	case YAML_MAPPING_NODE:
		return len(n.mapping_pairs)
	}
	return 0
}
