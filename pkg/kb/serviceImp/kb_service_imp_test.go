package serviceImp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"krishisakhi/entities"
)

type fakeRepo struct {
	docs   []entities.KBDocument
	chunks []entities.KBChunk
	nextID uint
}

func (f *fakeRepo) CreateDoc(d *entities.KBDocument) error {
	f.nextID++
	d.DocID = f.nextID
	f.docs = append(f.docs, *d)
	return nil
}

func (f *fakeRepo) BulkInsertChunks(cs []entities.KBChunk) error {
	f.chunks = append(f.chunks, cs...)
	return nil
}

func (f *fakeRepo) ListDocs() ([]entities.KBDocument, error) { return f.docs, nil }
func (f *fakeRepo) AllChunks() ([]entities.KBChunk, error)   { return f.chunks, nil }

func (f *fakeRepo) DocsByIDs(ids []uint) (map[uint]entities.KBDocument, error) {
	m := map[uint]entities.KBDocument{}
	for _, d := range f.docs {
		for _, id := range ids {
			if d.DocID == id {
				m[id] = d
			}
		}
	}
	return m, nil
}

func (f *fakeRepo) DeleteDoc(id uint) error { return nil }

func TestChunkTextKeepsParagraphs(t *testing.T) {
	text := "First paragraph about wheat.\n\nSecond paragraph about rust disease."
	chunks := chunkText(text, 1000)
	require.Len(t, chunks, 1)
	assert.Contains(t, chunks[0], "wheat")
	assert.Contains(t, chunks[0], "rust")
}

func TestChunkTextSplitsAtLimit(t *testing.T) {
	text := "aaaa\n\nbbbb\n\ncccc"
	chunks := chunkText(text, 5)
	assert.Equal(t, []string{"aaaa", "bbbb", "cccc"}, chunks)
}

func TestChunkTextHardSplitsOversizedParagraph(t *testing.T) {
	long := make([]byte, 0, 2500)
	for i := 0; i < 2500; i++ {
		long = append(long, 'x')
	}
	chunks := chunkText(string(long), 1000)
	require.Len(t, chunks, 3)
	assert.Len(t, chunks[0], 1000)
	assert.Len(t, chunks[2], 500)
}

func TestChunkTextEmpty(t *testing.T) {
	assert.Empty(t, chunkText("   \n\n  ", 1000))
}

func TestKeywordSearchWithoutEmbedder(t *testing.T) {
	repo := &fakeRepo{}
	svc := New(repo, nil)

	_, n, err := svc.UpsertDocument("Wheat rust", "wheat,disease", "Yellow rust appears as stripes on wheat leaves.\n\nSpray propiconazole at first sign.", "")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	_, _, err = svc.UpsertDocument("Onion storage", "onion", "Cure onion bulbs in shade for ten days before storage.", "")
	require.NoError(t, err)

	got, err := svc.Search("rust on wheat leaves", 5)
	require.NoError(t, err)
	require.NotEmpty(t, got)
	assert.Contains(t, got[0].Text, "rust")
}

func TestSearchEmptyQuery(t *testing.T) {
	svc := New(&fakeRepo{}, nil)
	got, err := svc.Search("  ", 5)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestContextForIncludesDocTitle(t *testing.T) {
	repo := &fakeRepo{}
	svc := New(repo, nil)
	_, _, err := svc.UpsertDocument("Wheat rust", "", "Yellow rust appears as stripes on wheat leaves.", "")
	require.NoError(t, err)

	ctx, err := svc.ContextFor("wheat rust")
	require.NoError(t, err)
	assert.Contains(t, ctx, "[Wheat rust]")
	assert.Contains(t, ctx, "stripes")
}

func TestContextForNoMatches(t *testing.T) {
	svc := New(&fakeRepo{}, nil)
	ctx, err := svc.ContextFor("anything")
	require.NoError(t, err)
	assert.Equal(t, "", ctx)
}
