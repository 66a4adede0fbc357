package serviceImp

import (
	"math"
	"sort"
	"strings"

	"krishisakhi/entities"
	"krishisakhi/pkg/kb/embedder"
	"krishisakhi/pkg/kb/repository"
)

type Svc struct {
	r   repository.KBRepository
	emb *embedder.Client
}

func New(r repository.KBRepository, e *embedder.Client) *Svc { return &Svc{r: r, emb: e} }

// chunkText splits on blank lines first so advisory paragraphs stay whole,
// then packs paragraphs into chunks of at most maxRunes.
func chunkText(text string, maxRunes int) []string {
	if maxRunes <= 0 {
		maxRunes = 1000
	}
	var paras []string
	for _, p := range strings.Split(strings.ReplaceAll(text, "\r", ""), "\n\n") {
		p = strings.TrimSpace(p)
		if p != "" {
			paras = append(paras, p)
		}
	}

	var chunks []string
	var cur strings.Builder
	count := 0
	flush := func() {
		if cur.Len() > 0 {
			chunks = append(chunks, cur.String())
			cur.Reset()
			count = 0
		}
	}
	for _, p := range paras {
		n := len([]rune(p))
		if count > 0 && count+n > maxRunes {
			flush()
		}
		if n > maxRunes {
			// oversized paragraph: hard split on rune boundary
			flush()
			runes := []rune(p)
			for len(runes) > maxRunes {
				chunks = append(chunks, string(runes[:maxRunes]))
				runes = runes[maxRunes:]
			}
			if len(runes) > 0 {
				chunks = append(chunks, string(runes))
			}
			continue
		}
		if count > 0 {
			cur.WriteString("\n\n")
			count += 2
		}
		cur.WriteString(p)
		count += n
	}
	flush()
	return chunks
}

func (s *Svc) UpsertDocument(title, tags, text, sourceURL string) (*entities.KBDocument, int, error) {
	d := &entities.KBDocument{Title: title, Tags: tags, SourceURL: sourceURL}
	if err := s.r.CreateDoc(d); err != nil {
		return nil, 0, err
	}

	chs := chunkText(text, 1000)
	if len(chs) == 0 {
		return d, 0, nil
	}

	var embs [][]float32
	if s.emb != nil {
		if e, err := s.emb.Embed(chs); err == nil {
			embs = e
		}
		// embedding failure degrades to keyword search, chunks are kept
	}

	rows := make([]entities.KBChunk, len(chs))
	for i := range chs {
		var embBytes []byte
		if embs != nil && i < len(embs) {
			embBytes = embedder.FloatsToBytes(embs[i])
		}
		rows[i] = entities.KBChunk{DocID: d.DocID, Ord: i, Text: chs[i], Embedding: embBytes}
	}
	if err := s.r.BulkInsertChunks(rows); err != nil {
		return nil, 0, err
	}
	return d, len(rows), nil
}

func tokenize(s string) []string {
	fields := strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return !('a' <= r && r <= 'z') && !('0' <= r && r <= '9')
	})
	var out []string
	for _, f := range fields {
		if len(f) >= 3 {
			out = append(out, f)
		}
	}
	return out
}

func (s *Svc) Search(query string, k int) ([]entities.KBChunk, error) {
	q := strings.TrimSpace(query)
	if q == "" || k <= 0 {
		return nil, nil
	}

	var qvec []float32
	if s.emb != nil {
		if vec, err := s.emb.Embed([]string{q}); err == nil && len(vec) > 0 {
			qvec = vec[0]
		}
	}

	chunks, err := s.r.AllChunks()
	if err != nil {
		return nil, err
	}
	if len(chunks) == 0 {
		return nil, nil
	}

	type scored struct {
		ch entities.KBChunk
		sc float64
	}
	var list []scored

	if len(qvec) > 0 {
		for _, ch := range chunks {
			cv := embedder.BytesToFloats(ch.Embedding)
			if len(cv) != len(qvec) || len(cv) == 0 {
				continue
			}
			var dot, nq, nc float64
			for i := range qvec {
				a, b := float64(qvec[i]), float64(cv[i])
				dot += a * b
				nq += a * a
				nc += b * b
			}
			if nq == 0 || nc == 0 {
				continue
			}
			list = append(list, scored{ch, dot / (math.Sqrt(nq) * math.Sqrt(nc))})
		}
	} else {
		// keyword fallback: fraction of query tokens present in the chunk
		toks := tokenize(q)
		if len(toks) == 0 {
			return nil, nil
		}
		for _, ch := range chunks {
			low := strings.ToLower(ch.Text)
			hits := 0
			for _, t := range toks {
				if strings.Contains(low, t) {
					hits++
				}
			}
			if hits > 0 {
				list = append(list, scored{ch, float64(hits) / float64(len(toks))})
			}
		}
	}

	if len(list) == 0 {
		return nil, nil
	}
	sort.SliceStable(list, func(i, j int) bool { return list[i].sc > list[j].sc })
	if k > len(list) {
		k = len(list)
	}
	out := make([]entities.KBChunk, 0, k)
	for i := 0; i < k; i++ {
		out = append(out, list[i].ch)
	}
	return out, nil
}

const maxContextRunes = 2400

func (s *Svc) ContextFor(query string) (string, error) {
	chunks, err := s.Search(query, 4)
	if err != nil || len(chunks) == 0 {
		return "", err
	}
	ids := make([]uint, 0, len(chunks))
	seen := map[uint]struct{}{}
	for _, ch := range chunks {
		if _, ok := seen[ch.DocID]; !ok {
			seen[ch.DocID] = struct{}{}
			ids = append(ids, ch.DocID)
		}
	}
	meta, _ := s.r.DocsByIDs(ids)

	var b strings.Builder
	total := 0
	for _, ch := range chunks {
		text := ch.Text
		if total+len([]rune(text)) > maxContextRunes {
			break
		}
		if d, ok := meta[ch.DocID]; ok && d.Title != "" {
			b.WriteString("[" + d.Title + "] ")
		}
		b.WriteString(text)
		b.WriteString("\n")
		total += len([]rune(text))
	}
	return strings.TrimSpace(b.String()), nil
}

func (s *Svc) DocsMeta(ids []uint) (map[uint]entities.KBDocument, error) {
	return s.r.DocsByIDs(ids)
}

func (s *Svc) ListDocs() ([]entities.KBDocument, error) { return s.r.ListDocs() }

func (s *Svc) DeleteDoc(id uint) error { return s.r.DeleteDoc(id) }
