package speech

import "context"

// Service is the single entry point for both sides of the voice feature:
// the grouped voice catalog and text-to-speech synthesis.
type Service struct {
	client  Client
	catalog *CatalogCache
}

func NewService(client Client) *Service {
	return &Service{
		client:  client,
		catalog: NewCatalogCache(client),
	}
}

func (s *Service) Voices(ctx context.Context) (Catalog, error) {
	return s.catalog.Voices(ctx)
}

func (s *Service) Synthesize(ctx context.Context, voice, text string) ([]byte, error) {
	return s.client.Synthesize(ctx, voice, text)
}
