package speech

import "context"

// Voice is one synthesis voice as reported by the TTS provider.
type Voice struct {
	ShortName string `json:"ShortName"`
	Locale    string `json:"Locale"`
	Gender    string `json:"Gender"`
}

// Catalog groups voice short-names by language code, then by gender.
// Lists are sorted and contain no duplicates.
type Catalog map[string]map[string][]string

type Client interface {
	ListVoices(ctx context.Context) ([]Voice, error)
	Synthesize(ctx context.Context, voice, text string) ([]byte, error)
}

// Languages returns the catalog's language codes, sorted.
func (c Catalog) Languages() []string {
	return sortedKeys(c)
}

// Genders returns the genders available for a language, sorted.
func (c Catalog) Genders(lang string) []string {
	return sortedKeys(c[lang])
}

// VoicesFor returns the voice short-names for a language and gender.
func (c Catalog) VoicesFor(lang, gender string) []string {
	return c[lang][gender]
}
