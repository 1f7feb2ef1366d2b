package codec

import (
	"encoding/json"
	"fmt"

	"github.com/kailas-cloud/solrkit/internal/domain"
)

// EncodeAdd serializes documents into the JSON array the update handler
// expects. Field order and duplicate names survive the round trip.
func EncodeAdd(docs []domain.Document) ([]byte, error) {
	body, err := json.Marshal(docs)
	if err != nil {
		return nil, fmt.Errorf("encode documents: %w", err)
	}
	return body, nil
}

// EncodeDeleteByQuery builds a delete-by-query update command.
func EncodeDeleteByQuery(query string) ([]byte, error) {
	body, err := json.Marshal(deleteCommand{Delete: deleteSpec{Query: query}})
	if err != nil {
		return nil, fmt.Errorf("encode delete query: %w", err)
	}
	return body, nil
}

// EncodeDeleteByID builds a delete-by-id update command.
func EncodeDeleteByID(id string) ([]byte, error) {
	body, err := json.Marshal(deleteCommand{Delete: deleteSpec{ID: id}})
	if err != nil {
		return nil, fmt.Errorf("encode delete id: %w", err)
	}
	return body, nil
}

type deleteCommand struct {
	Delete deleteSpec `json:"delete"`
}

type deleteSpec struct {
	Query string `json:"query,omitempty"`
	ID    string `json:"id,omitempty"`
}

// Bare update commands carry no parameters.
func EncodeCommit() []byte   { return []byte(`{"commit":{}}`) }
func EncodeRollback() []byte { return []byte(`{"rollback":{}}`) }
func EncodeOptimize() []byte { return []byte(`{"optimize":{}}`) }
