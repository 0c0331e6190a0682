package graphio_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lamellae/tda/core"
	"github.com/lamellae/tda/diagram"
	"github.com/lamellae/tda/graphio"
)

func TestReadEdgeList(t *testing.T) {
	in := strings.NewReader(`# weighted path
% alternative comment style
0 1 2.0

1 2 6.0
0 3
`)
	K, err := graphio.ReadEdgeList(in)
	require.NoError(t, err)

	assert.Equal(t, 7, K.Size(), "four vertices and three edges")
	w, err := K.Data(0, 1)
	require.NoError(t, err)
	assert.Equal(t, 2.0, w)
	w, err = K.Data(1, 2)
	require.NoError(t, err)
	assert.Equal(t, 6.0, w)
	w, err = K.Data(0, 3)
	require.NoError(t, err)
	assert.Equal(t, 0.0, w, "missing weight defaults to zero")
}

func TestReadEdgeList_Malformed(t *testing.T) {
	cases := map[string]string{
		"too few fields":  "0\n",
		"too many fields": "0 1 2 3\n",
		"self-loop":       "4 4\n",
		"bad weight":      "0 1 heavy\n",
		"bad vertex":      "a b\n",
		"duplicate edge":  "0 1\n1 0\n",
	}
	for name, input := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := graphio.ReadEdgeList(strings.NewReader(input))
			assert.ErrorIs(t, err, graphio.ErrMalformedInput)
		})
	}
}

func TestReadGML(t *testing.T) {
	in := strings.NewReader(`graph [
  comment "a small triangle fragment"
  node [
    id B
    label "second"
  ]
  node [
    id A
  ]
  node [
    id C
  ]
  edge [
    source B
    target A
    weight 3.5
  ]
  edge [
    source C
    target A
  ]
]
`)
	K, err := graphio.ReadGML(in)
	require.NoError(t, err)

	// Identifiers map lexicographically: A=0, B=1, C=2.
	assert.Equal(t, 5, K.Size())
	w, err := K.Data(0, 1)
	require.NoError(t, err)
	assert.Equal(t, 3.5, w)
	w, err = K.Data(0, 2)
	require.NoError(t, err)
	assert.Equal(t, 0.0, w, "weightless edge inherits the endpoint maximum")
}

func TestReadGML_NodeWeightsPropagate(t *testing.T) {
	in := strings.NewReader(`graph [
  node [
    id a
    weight 1.5
  ]
  node [
    id b
    weight 4
  ]
  edge [
    source a
    target b
  ]
]
`)
	K, err := graphio.ReadGML(in)
	require.NoError(t, err)

	w, err := K.Data(0, 1)
	require.NoError(t, err)
	assert.Equal(t, 4.0, w, "edge takes the heavier endpoint")
	assert.NoError(t, K.ValidateFiltration())
}

func TestReadGML_Errors(t *testing.T) {
	_, err := graphio.ReadGML(strings.NewReader("graph [\n  node [\n    id x\n  ]\n"))
	assert.ErrorIs(t, err, graphio.ErrMalformedInput)

	_, err = graphio.ReadGML(strings.NewReader(`graph [
  node [
    id x
  ]
  node [
    id x
  ]
]
`))
	assert.ErrorIs(t, err, graphio.ErrDuplicateVertex)

	_, err = graphio.ReadGML(strings.NewReader(`graph [
  edge [
    source x
    target y
  ]
]
`))
	assert.ErrorIs(t, err, graphio.ErrUnknownVertex)
}

func TestReadPajek(t *testing.T) {
	in := strings.NewReader(`*Vertices 3
1 "first"
2 "second"
3 "third"
*Edges
1 2 2.5
2 3 1
`)
	K, err := graphio.ReadPajek(in)
	require.NoError(t, err)

	assert.Equal(t, 5, K.Size())
	w, err := K.Data(0, 1)
	require.NoError(t, err)
	assert.Equal(t, 2.5, w)
	w, err = K.Data(1, 2)
	require.NoError(t, err)
	assert.Equal(t, 1.0, w)
}

func TestReadPajek_MirroredArcs(t *testing.T) {
	in := strings.NewReader(`*Vertices 2
*Arcs
1 2 1
2 1 1
`)
	K, err := graphio.ReadPajek(in)
	require.NoError(t, err)
	assert.Equal(t, 3, K.Size(), "mirrored arcs collapse onto one edge")
}

func TestReadPajek_Errors(t *testing.T) {
	_, err := graphio.ReadPajek(strings.NewReader("1 2\n"))
	assert.ErrorIs(t, err, graphio.ErrMalformedInput)

	_, err = graphio.ReadPajek(strings.NewReader("*Vertices 2\n*Edges\n1 5\n"))
	assert.ErrorIs(t, err, graphio.ErrUnknownVertex)

	_, err = graphio.ReadPajek(strings.NewReader("*Sections 2\n"))
	assert.ErrorIs(t, err, graphio.ErrMalformedInput)
}

// writeBatchFiles materialises a two-graph batch: a triangle labelled 1 and
// a single edge labelled -1.
func writeBatchFiles(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	files := map[string]string{
		"DS_A.txt":               "1, 2\n2, 1\n2, 3\n3, 2\n1, 3\n3, 1\n4, 5\n5, 4\n",
		"DS_graph_indicator.txt": "1\n1\n1\n2\n2\n",
		"DS_graph_labels.txt":    "1\n-1\n",
		"DS_node_labels.txt":     "0\n1\n0\n1\n1\n",
	}
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	}

	return filepath.Join(dir, "DS_A.txt")
}

func TestReadSparseAdjacencyBatch(t *testing.T) {
	batch, err := graphio.ReadSparseAdjacencyBatch(writeBatchFiles(t))
	require.NoError(t, err)

	require.Len(t, batch.Complexes, 2)
	assert.Equal(t, 6, batch.Complexes[0].Size(), "triangle: three vertices, three edges")
	assert.Equal(t, 3, batch.Complexes[1].Size(), "edge: two vertices, one edge")
	assert.True(t, batch.Complexes[1].Contains(core.VertexID(0), core.VertexID(1)),
		"global nodes 4 and 5 land on local 0 and 1")

	assert.Equal(t, []string{"1", "-1"}, batch.GraphLabels)
	require.Len(t, batch.NodeLabels, 2)
	assert.Equal(t, []string{"0", "1", "0"}, batch.NodeLabels[0])
	assert.Equal(t, []string{"1", "1"}, batch.NodeLabels[1])
}

func TestReadSparseAdjacencyBatch_LabelsOptional(t *testing.T) {
	path := writeBatchFiles(t)
	require.NoError(t, os.Remove(strings.TrimSuffix(path, "_A.txt")+"_graph_labels.txt"))
	require.NoError(t, os.Remove(strings.TrimSuffix(path, "_A.txt")+"_node_labels.txt"))

	batch, err := graphio.ReadSparseAdjacencyBatch(path)
	require.NoError(t, err)
	assert.Nil(t, batch.GraphLabels)
	assert.Nil(t, batch.NodeLabels)
}

func TestReadSparseAdjacencyBatch_CrossGraphEdge(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "DS_A.txt"), []byte("1, 2\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "DS_graph_indicator.txt"), []byte("1\n2\n"), 0o644))

	_, err := graphio.ReadSparseAdjacencyBatch(filepath.Join(dir, "DS_A.txt"))
	assert.ErrorIs(t, err, graphio.ErrMalformedInput)
}

func TestReadGraphFile_Dispatch(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "net.txt")
	require.NoError(t, os.WriteFile(path, []byte("0 1 1.5\n"), 0o644))

	K, err := graphio.ReadGraphFile(path)
	require.NoError(t, err)
	assert.Equal(t, 3, K.Size())

	_, err = graphio.ReadGraphFile(filepath.Join(dir, "missing.gml"))
	assert.Error(t, err)
}

func TestWriteGML_Golden(t *testing.T) {
	K, err := core.NewComplex(
		core.NewSimplex(0, 0),
		core.NewSimplex(0, 1),
		core.NewSimplex(0, 2),
		core.NewSimplex(2, 0, 1),
		core.NewSimplex(6, 1, 2),
	)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, graphio.WriteGML(&buf, K, []string{"first", "second", "third"}))

	g := goldie.New(t)
	g.Assert(t, "write_gml", buf.Bytes())
}

func TestWriteGML_RoundTrip(t *testing.T) {
	K, err := core.NewComplex(
		core.NewSimplex(0, 0),
		core.NewSimplex(0, 1),
		core.NewSimplex(1.25, 0, 1),
	)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, graphio.WriteGML(&buf, K, nil))

	L, err := graphio.ReadGML(&buf)
	require.NoError(t, err)
	require.Equal(t, K.Size(), L.Size())
	w, err := L.Data(0, 1)
	require.NoError(t, err)
	assert.Equal(t, 1.25, w)
}

func TestWriteDiagram_Golden(t *testing.T) {
	d := diagram.New(0)
	require.NoError(t, d.Add(0, 1))
	require.NoError(t, d.Add(0.5, 2.25))
	d.AddUnpaired(0)

	var buf bytes.Buffer
	require.NoError(t, graphio.WriteDiagram(&buf, d, 12))

	g := goldie.New(t)
	g.Assert(t, "write_diagram", buf.Bytes())
}

func TestWriteDiagram_UnpairedDeath(t *testing.T) {
	d := diagram.New(1)
	d.AddUnpaired(3)

	var buf bytes.Buffer
	require.NoError(t, graphio.WriteDiagram(&buf, d, 12))
	assert.Equal(t, "3\t12\n", buf.String())
}

func TestWriteValuesAndLabels(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, graphio.WriteValues(&buf, []float64{1.5, 2}))
	assert.Equal(t, "1.5\n2\n", buf.String())

	buf.Reset()
	require.NoError(t, graphio.WriteLabels(&buf, []string{"1", "-1"}))
	assert.Equal(t, "1\n-1\n", buf.String())
}
