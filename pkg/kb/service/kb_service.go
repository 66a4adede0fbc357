package service

import "krishisakhi/entities"

type KBService interface {
	UpsertDocument(title, tags, text, sourceURL string) (*entities.KBDocument, int, error)
	Search(query string, k int) ([]entities.KBChunk, error)
	// ContextFor returns a compact grounding block for chat prompts, or ""
	// when nothing relevant is stored.
	ContextFor(query string) (string, error)
	DocsMeta(ids []uint) (map[uint]entities.KBDocument, error)
	ListDocs() ([]entities.KBDocument, error)
	DeleteDoc(id uint) error
}
