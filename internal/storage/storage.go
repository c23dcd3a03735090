package storage

import "context"

// CatalogStorage defines the interface for fetching the affirmation catalog
// document from object storage. The service falls back to the embedded
// catalog when no bucket is configured or the fetch fails.
type CatalogStorage interface {
	// FetchCatalog downloads the raw catalog document.
	FetchCatalog(ctx context.Context) ([]byte, error)
}
