package yaml_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	yaml "github.com/kestrel-yaml/yaml"
)

func buildSampleDocument() *yaml.Document {
	doc := yaml.NewDocument(nil, nil, true, true)
	root := doc.AddMapping("", yaml.BlockMappingStyle)
	name := doc.AddScalar("", []byte("widget"), yaml.PlainScalarStyle)
	count := doc.AddScalar("", []byte("3"), yaml.PlainScalarStyle)
	item0 := doc.AddScalar("", []byte("a"), yaml.PlainScalarStyle)
	item1 := doc.AddScalar("", []byte("b"), yaml.PlainScalarStyle)
	items := doc.AddSequence("", yaml.BlockSequenceStyle)
	doc.AppendSequenceItem(items, item0)
	doc.AppendSequenceItem(items, item1)

	nameKey := doc.AddScalar("", []byte("name"), yaml.PlainScalarStyle)
	countKey := doc.AddScalar("", []byte("count"), yaml.PlainScalarStyle)
	itemsKey := doc.AddScalar("", []byte("items"), yaml.PlainScalarStyle)
	doc.AppendMappingPair(root, nameKey, name)
	doc.AppendMappingPair(root, countKey, count)
	doc.AppendMappingPair(root, itemsKey, items)
	return doc
}

func TestDocumentGetNodeByPath(t *testing.T) {
	doc := buildSampleDocument()

	cases := []struct {
		name string
		keys []string
		want string
	}{
		{"top-level scalar", []string{"name"}, "widget"},
		{"numeric string key on a mapping", []string{"count"}, "3"},
		{"sequence index", []string{"items", "0"}, "a"},
		{"sequence second index", []string{"items", "1"}, "b"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			id := doc.GetNodeByPath(tc.keys...)
			require.NotZero(t, id)
			require.Equal(t, []byte(tc.want), doc.ScalarBytes(id))
		})
	}
}

func TestDocumentGetNodeByPathMisses(t *testing.T) {
	doc := buildSampleDocument()

	require.Zero(t, doc.GetNodeByPath("missing"))
	require.Zero(t, doc.GetNodeByPath("items", "not-a-number"))
	require.Zero(t, doc.GetNodeByPath("items", "99"))
	require.Zero(t, doc.GetNodeByPath("name", "anything"))
}

func TestDocumentLenAndTag(t *testing.T) {
	doc := buildSampleDocument()
	root := doc.GetRootNode()

	require.Equal(t, 3, doc.Len(root))
	require.Equal(t, "tag:yaml.org,2002:map", doc.Tag(root))

	items := doc.GetNodeByPath("items")
	require.Equal(t, 2, doc.Len(items))

	name := doc.GetNodeByPath("name")
	require.Equal(t, len("widget"), doc.Len(name))
	require.Equal(t, "tag:yaml.org,2002:str", doc.Tag(name))
}

func TestDocumentEmptyDocument(t *testing.T) {
	doc := yaml.NewDocument(nil, nil, true, true)
	require.Zero(t, doc.GetRootNode())
	require.Zero(t, doc.GetNodeByPath("anything"))
}
