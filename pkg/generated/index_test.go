package generated

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/platinummonkey/dotnetscan/pkg/inputfile"
)

func TestIndex_NotBuiltAnswersFalse(t *testing.T) {
	idx := NewIndex()
	file := inputfile.MustNew("", "autogenerated")
	idx.Add(file)

	assert.False(t, idx.Built())
	assert.False(t, idx.IsGenerated(file))

	idx.MarkBuilt()
	assert.True(t, idx.Built())
	assert.True(t, idx.IsGenerated(file))
}

func TestIndex_IsGenerated(t *testing.T) {
	base := t.TempDir()
	idx := NewIndex()
	require.NoError(t, idx.AddPath(base, "obj/Model.g.cs"))
	idx.MarkBuilt()

	assert.True(t, idx.IsGenerated(inputfile.MustNew(base, "obj/Model.g.cs")))
	assert.True(t, idx.IsGenerated(inputfile.MustNew(base, `obj\Model.g.cs`)))
	assert.True(t, idx.IsGenerated(inputfile.MustNew("", filepath.Join(base, "obj", "Model.g.cs"))))
	assert.False(t, idx.IsGenerated(inputfile.MustNew(base, "Model.cs")))
	assert.False(t, idx.IsGenerated(nil))
}

func TestIndex_NilIndex(t *testing.T) {
	var idx *Index
	assert.False(t, idx.IsGenerated(inputfile.MustNew("", "a.cs")))
}

func TestIndex_AddNilAndEmptyPath(t *testing.T) {
	idx := NewIndex()
	idx.Add(nil)
	assert.Error(t, idx.AddPath("", ""))
	assert.Zero(t, idx.Len())
}

func TestIndex_LoadList(t *testing.T) {
	base := t.TempDir()
	idx := NewIndex()

	list := `# generated by the build
obj/A.g.cs

  obj/B.designer.cs
`
	n, err := idx.LoadList(strings.NewReader(list), base)
	require.NoError(t, err)
	idx.MarkBuilt()

	assert.Equal(t, 2, n)
	assert.Equal(t, 2, idx.Len())
	assert.True(t, idx.IsGenerated(inputfile.MustNew(base, "obj/B.designer.cs")))
}

func TestIndex_LoadListFile(t *testing.T) {
	base := t.TempDir()
	listPath := filepath.Join(base, "generated.txt")
	require.NoError(t, os.WriteFile(listPath, []byte("a.g.cs\nb.g.cs\na.g.cs\n"), 0644))

	idx := NewIndex()
	n, err := idx.LoadListFile(listPath, base)
	require.NoError(t, err)

	assert.Equal(t, 3, n)
	assert.Equal(t, 2, idx.Len())
}

func TestIndex_LoadListFile_Missing(t *testing.T) {
	idx := NewIndex()
	_, err := idx.LoadListFile(filepath.Join(t.TempDir(), "nope.txt"), "")
	assert.Error(t, err)
}
