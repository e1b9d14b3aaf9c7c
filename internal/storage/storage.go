package storage

import "github.com/aoraion/crypto-monthly-performance/internal/model"

// DocumentStore defines a sink for generated documents.
type DocumentStore interface {
	Write(doc *model.Document) error
}
