package offline

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleTree = `
version: 1
roots:
  - id: pest
    label:
      en: "Pest problem"
      hi: "कीट समस्या"
    children:
      - id: pest-rust
        label:
          en: "Yellow stripes"
        answer:
          text: "Likely rust."
          organic: "Neem oil spray."
`

func writeTree(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tree.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadTree(t *testing.T) {
	tree, err := LoadTree(writeTree(t, sampleTree))
	require.NoError(t, err)
	require.Len(t, tree.Roots, 1)
	assert.Equal(t, 1, tree.Version)
	assert.Equal(t, "pest", tree.Roots[0].ID)
}

func TestFind(t *testing.T) {
	tree, err := LoadTree(writeTree(t, sampleTree))
	require.NoError(t, err)

	n := tree.Find("pest-rust")
	require.NotNil(t, n)
	require.NotNil(t, n.Answer)
	assert.Equal(t, "Likely rust.", n.Answer.Text)

	assert.Nil(t, tree.Find("missing"))
}

func TestLabelInFallsBackToEnglish(t *testing.T) {
	tree, err := LoadTree(writeTree(t, sampleTree))
	require.NoError(t, err)

	root := tree.Roots[0]
	assert.Equal(t, "कीट समस्या", root.LabelIn("hi"))
	assert.Equal(t, "Pest problem", root.LabelIn("ta"))

	leaf := tree.Find("pest-rust")
	assert.Equal(t, "Yellow stripes", leaf.LabelIn("hi"))
}

func TestLoadTreeRejectsLeafWithoutAnswer(t *testing.T) {
	bad := `
roots:
  - id: a
    label: {en: "A"}
`
	_, err := LoadTree(writeTree(t, bad))
	assert.ErrorContains(t, err, "no answer")
}

func TestLoadTreeRejectsDuplicateIDs(t *testing.T) {
	bad := `
roots:
  - id: a
    label: {en: "A"}
    answer: {text: "x"}
  - id: a
    label: {en: "A again"}
    answer: {text: "y"}
`
	_, err := LoadTree(writeTree(t, bad))
	assert.ErrorContains(t, err, "duplicate")
}

func TestShippedTreeLoads(t *testing.T) {
	tree, err := LoadTree(filepath.Join("..", "..", "knowledge", "offline_tree.yaml"))
	require.NoError(t, err)
	assert.NotEmpty(t, tree.Roots)
	assert.NotNil(t, tree.Find("pest-leaf-spots-yellow"))
}
