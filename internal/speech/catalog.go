package speech

import (
	"context"
	"sort"
	"strings"
	"sync"
)

// CatalogCache fetches the provider voice list once per process and keeps
// the grouped result for every later caller. A failed fetch leaves the
// cache empty, so the next call retries; once populated it is never
// refreshed (a restart picks up new voices).
type CatalogCache struct {
	client Client

	mu      sync.Mutex
	catalog Catalog
}

func NewCatalogCache(client Client) *CatalogCache {
	return &CatalogCache{client: client}
}

func (c *CatalogCache) Voices(ctx context.Context) (Catalog, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.catalog != nil {
		return c.catalog, nil
	}

	voices, err := c.client.ListVoices(ctx)
	if err != nil {
		return nil, err
	}

	c.catalog = buildCatalog(voices)
	return c.catalog, nil
}

func buildCatalog(voices []Voice) Catalog {
	catalog := make(Catalog)
	for _, v := range voices {
		lang := strings.SplitN(v.Locale, "-", 2)[0]
		if lang == "" || v.Gender == "" || v.ShortName == "" {
			continue
		}
		if catalog[lang] == nil {
			catalog[lang] = make(map[string][]string)
		}
		catalog[lang][v.Gender] = append(catalog[lang][v.Gender], v.ShortName)
	}
	for _, genders := range catalog {
		for gender, names := range genders {
			genders[gender] = sortUnique(names)
		}
	}
	return catalog
}

func sortUnique(items []string) []string {
	sort.Strings(items)
	out := items[:0]
	for i, s := range items {
		if i == 0 || s != items[i-1] {
			out = append(out, s)
		}
	}
	return out
}

func sortedKeys[M ~map[string]V, V any](m M) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
