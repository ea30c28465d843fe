package nodelink

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errs "github.com/matzehuels/linguist/pkg/errors"
	"github.com/matzehuels/linguist/pkg/linguist"
)

func fixture(t *testing.T) *linguist.Index {
	t.Helper()
	idx, err := linguist.Load([]byte(`
TypeScript:
  type: programming
  color: "#3178c6"
  language_id: 1
TSX:
  type: programming
  color: "#3178c6"
  group: TypeScript
  language_id: 2
Fortran Free Form:
  type: programming
  group: Fortran
  language_id: 3
Plain:
  type: data
  language_id: 4
`))
	require.NoError(t, err)
	return idx
}

func TestHierarchy(t *testing.T) {
	g, err := Hierarchy(fixture(t))
	require.NoError(t, err)

	order, err := g.Order()
	require.NoError(t, err)
	assert.Equal(t, 4, order, "Plain takes part in no group")

	_, err = g.Edge("TSX", "TypeScript")
	assert.NoError(t, err)
	_, err = g.Edge("Fortran Free Form", "Fortran")
	assert.NoError(t, err)

	_, props, err := g.VertexWithProperties("TSX")
	require.NoError(t, err)
	assert.Equal(t, "#3178c6", props.Attributes[AttrColor])
	assert.Equal(t, "programming", props.Attributes[AttrType])
	assert.Equal(t, "2", props.Attributes[AttrID])

	// Fortran is only named as a group.
	_, props, err = g.VertexWithProperties("Fortran")
	require.NoError(t, err)
	assert.Empty(t, props.Attributes)

	groups, err := Groups(g)
	require.NoError(t, err)
	assert.Equal(t, map[string][]string{
		"TypeScript": {"TSX"},
		"Fortran":    {"Fortran Free Form"},
	}, groups)
}

func TestHierarchyCycle(t *testing.T) {
	idx, err := linguist.Load([]byte(`
A:
  type: data
  group: B
  language_id: 1
B:
  type: data
  group: A
  language_id: 2
`))
	require.NoError(t, err)

	_, err = Hierarchy(idx)
	require.Error(t, err)
	assert.True(t, errs.Is(err, errs.ErrCodeInvalidDataset))
}

func TestHierarchySelfGroup(t *testing.T) {
	idx, err := linguist.Load([]byte("A:\n  type: data\n  group: A\n  language_id: 1\n"))
	require.NoError(t, err)

	g, err := Hierarchy(idx)
	require.NoError(t, err)
	size, _ := g.Size()
	assert.Zero(t, size)
}

func TestHierarchyEmbedded(t *testing.T) {
	g, err := Hierarchy(linguist.Default())
	require.NoError(t, err)

	groups, err := Groups(g)
	require.NoError(t, err)
	assert.Equal(t, []string{"TSX"}, groups["TypeScript"])
	assert.Equal(t, []string{"Unix Assembly"}, groups["Assembly"])
	assert.Equal(t, []string{"Fortran Free Form"}, groups["Fortran"])
}

func TestToDOT(t *testing.T) {
	idx := fixture(t)

	dot, err := ToDOT(idx, Options{})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(dot, "digraph linguist {\n"))
	assert.Contains(t, dot, "rankdir=BT;")
	assert.Contains(t, dot, `"TSX" [label="TSX", fillcolor="#3178c6", fontcolor="white"];`)
	assert.Contains(t, dot, `"Fortran" [label="Fortran", style="rounded,dashed"];`)
	assert.Contains(t, dot, `"TSX" -> "TypeScript";`)
	assert.Contains(t, dot, `"Fortran Free Form" -> "Fortran";`)
	assert.NotContains(t, dot, "Plain")

	again, err := ToDOT(idx, Options{})
	require.NoError(t, err)
	assert.Equal(t, dot, again, "output is deterministic")

	// Members precede their groups.
	assert.Less(t, strings.Index(dot, `"TSX" [`), strings.Index(dot, `"TypeScript" [`))
}

func TestToDOTOptions(t *testing.T) {
	dot, err := ToDOT(fixture(t), Options{Detailed: true, LeftToRight: true})
	require.NoError(t, err)
	assert.Contains(t, dot, "rankdir=LR;")
	assert.Contains(t, dot, `label="TSX\nprogramming #2"`)
}

func TestContrastColor(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"#ffffff", "black"},
		{"#000000", "white"},
		{"#dea584", "black"},
		{"#3178c6", "white"},
		{"#f1e05a", "black"},
		{"bogus", "black"},
		{"#zzzzzz", "black"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, contrastColor(tt.in), tt.in)
	}
}

func TestNormalizeViewBox(t *testing.T) {
	in := []byte(`<svg width="100pt" height="50pt" viewBox="0.00 0.00 100.00 50.00" xmlns="http://www.w3.org/2000/svg"><g/></svg>`)
	out := string(normalizeViewBox(in))
	assert.Contains(t, out, `viewBox="0 0 100.00 50.00" width="100" height="50"`)
	assert.NotContains(t, out, "pt")

	plain := []byte("<svg><g/></svg>")
	assert.Equal(t, plain, normalizeViewBox(plain))
}

func TestRenderSVG(t *testing.T) {
	if testing.Short() {
		t.Skip("graphviz rendering is slow")
	}
	dot, err := ToDOT(fixture(t), Options{})
	require.NoError(t, err)

	svg, err := RenderSVG(dot)
	require.NoError(t, err)
	assert.Contains(t, string(svg), "<svg")
	assert.Contains(t, string(svg), "TSX")
}
