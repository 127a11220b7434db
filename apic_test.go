package yaml_test

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/require"

	yaml "github.com/kestrel-yaml/yaml"
)

func TestParserLoadRoundTrip(t *testing.T) {
	p := yaml.NewParser()
	require.NoError(t, p.SetInputString([]byte("name: widget\ncount: 3\n")))

	doc, err := p.Load()
	require.NoError(t, err)
	require.NotNil(t, doc)
	require.Equal(t, []byte("widget"), doc.ScalarBytes(doc.GetNodeByPath("name")))

	_, err = p.Load()
	require.ErrorIs(t, err, io.EOF)
}

func TestParserLoadAllMultiDocument(t *testing.T) {
	p := yaml.NewParser()
	require.NoError(t, p.SetInputString([]byte("a\n---\nb\n---\nc\n")))

	docs, err := p.LoadAll()
	require.NoError(t, err)
	require.Len(t, docs, 3)
	require.Equal(t, []byte("c"), docs[2].ScalarBytes(docs[2].GetRootNode()))
}

func TestParserScanReturnsTokensInOrder(t *testing.T) {
	p := yaml.NewParser()
	require.NoError(t, p.SetInputString([]byte("a: b\n")))

	var types []yaml.TokenType
	for {
		tok, err := p.Scan()
		require.NoError(t, err)
		types = append(types, tok.Type)
		if tok.Type == yaml.StreamEndToken {
			break
		}
	}
	require.Equal(t, []yaml.TokenType{
		yaml.StreamStartToken,
		yaml.BlockMappingStartToken,
		yaml.KeyToken,
		yaml.ScalarToken,
		yaml.ValueToken,
		yaml.ScalarToken,
		yaml.BlockEndToken,
		yaml.StreamEndToken,
	}, types)
}

func TestParserParseReturnsEventsInOrder(t *testing.T) {
	p := yaml.NewParser()
	require.NoError(t, p.SetInputString([]byte("foo\n")))

	var types []yaml.EventType
	for {
		ev, err := p.Parse()
		require.NoError(t, err)
		types = append(types, ev.Type)
		if ev.Type == yaml.StreamEndEventType {
			break
		}
	}
	require.Equal(t, []yaml.EventType{
		yaml.StreamStartEventType,
		yaml.DocumentStartEventType,
		yaml.ScalarEventType,
		yaml.DocumentEndEventType,
		yaml.StreamEndEventType,
	}, types)
}

func TestParserRejectsDeepNesting(t *testing.T) {
	p := yaml.NewParser()
	p.SetMaxNestLevel(2)
	require.NoError(t, p.SetInputString([]byte("[[[1]]]\n")))

	var err error
	for {
		_, scanErr := p.Scan()
		if scanErr != nil {
			err = scanErr
			break
		}
	}
	require.Error(t, err)
	var yerr *yaml.YAMLError
	require.ErrorAs(t, err, &yerr)
	require.Equal(t, yaml.KindScanner, yerr.Kind)
}

func TestEmitterOpenEmitCloseProducesValidYAML(t *testing.T) {
	var buf []byte
	e := yaml.NewEmitter()
	require.NoError(t, e.SetOutputString(&buf))
	require.NoError(t, e.Open())

	scalar, err := yaml.NewScalarEvent(nil, nil, []byte("hello"), true, true, yaml.PlainScalarStyle)
	require.NoError(t, err)
	require.NoError(t, e.Emit(yaml.DocumentStartEvent(nil, nil, true)))
	require.NoError(t, e.Emit(scalar))
	require.NoError(t, e.Emit(yaml.DocumentEndEvent(true)))
	require.NoError(t, e.Close())

	require.Equal(t, "hello\n", string(buf))
}

func TestEmitterDumpRoundTripsThroughParser(t *testing.T) {
	doc := yaml.NewDocument(nil, nil, true, true)
	root := doc.AddMapping("", yaml.BlockMappingStyle)
	a := doc.AddScalar("", []byte("a"), yaml.PlainScalarStyle)
	b := doc.AddScalar("", []byte("1"), yaml.PlainScalarStyle)
	doc.AppendMappingPair(root, a, b)

	var buf []byte
	e := yaml.NewEmitter()
	require.NoError(t, e.SetOutputString(&buf))
	require.NoError(t, e.Open())
	require.NoError(t, e.Dump(doc))
	require.NoError(t, e.Close())

	p := yaml.NewParser()
	require.NoError(t, p.SetInputString(buf))
	roundTripped, err := p.Load()
	require.NoError(t, err)
	require.Equal(t, []byte("1"), roundTripped.ScalarBytes(roundTripped.GetNodeByPath("a")))
}

func TestEmitterSetOutputWriter(t *testing.T) {
	var out bytes.Buffer
	e := yaml.NewEmitter()
	require.NoError(t, e.SetOutputWriter(&out))
	require.NoError(t, e.Open())
	require.NoError(t, e.Emit(yaml.DocumentStartEvent(nil, nil, true)))
	scalar, err := yaml.NewScalarEvent(nil, nil, []byte("x"), true, true, yaml.PlainScalarStyle)
	require.NoError(t, err)
	require.NoError(t, e.Emit(scalar))
	require.NoError(t, e.Emit(yaml.DocumentEndEvent(true)))
	require.NoError(t, e.Close())
	require.NoError(t, e.Flush())

	require.Equal(t, "x\n", out.String())
}

func TestCheckUTF8(t *testing.T) {
	require.True(t, yaml.CheckUTF8([]byte("hello")))
	require.True(t, yaml.CheckUTF8(nil))
	require.False(t, yaml.CheckUTF8([]byte{0xFF, 0xFE, 0xFD}))
}

func TestEventConstructorsRejectInvalidUTF8(t *testing.T) {
	_, err := yaml.NewScalarEvent(nil, nil, []byte{0xFF, 0xFE}, true, true, yaml.PlainScalarStyle)
	require.Error(t, err)

	_, err = yaml.NewAliasEvent([]byte{0xFF})
	require.Error(t, err)

	_, err = yaml.NewSequenceStartEvent([]byte{0xFF}, nil, true, yaml.BlockSequenceStyle)
	require.Error(t, err)

	_, err = yaml.NewMappingStartEvent(nil, []byte{0xFF}, true, yaml.BlockMappingStyle)
	require.Error(t, err)
}

func TestEventConstructorsDuplicateInputBytes(t *testing.T) {
	value := []byte("hello")
	ev, err := yaml.NewScalarEvent(nil, nil, value, true, true, yaml.PlainScalarStyle)
	require.NoError(t, err)

	value[0] = 'X'
	require.Equal(t, []byte("hello"), ev.Value)
}
