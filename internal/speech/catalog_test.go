package speech

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClient struct {
	voices []Voice
	err    error
	calls  int
}

func (f *fakeClient) ListVoices(ctx context.Context) ([]Voice, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.voices, nil
}

func (f *fakeClient) Synthesize(ctx context.Context, voice, text string) ([]byte, error) {
	return nil, errors.New("not implemented")
}

func TestCatalogFetchedOnce(t *testing.T) {
	client := &fakeClient{voices: []Voice{
		{ShortName: "en-US-AriaNeural", Locale: "en-US", Gender: "Female"},
		{ShortName: "en-GB-RyanNeural", Locale: "en-GB", Gender: "Male"},
	}}
	cache := NewCatalogCache(client)

	first, err := cache.Voices(context.Background())
	require.NoError(t, err)

	second, err := cache.Voices(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, client.calls, "second call must not hit the provider")
	assert.Equal(t, first, second)
}

func TestCatalogFailureRetriesNextCall(t *testing.T) {
	client := &fakeClient{err: errors.New("provider down")}
	cache := NewCatalogCache(client)

	_, err := cache.Voices(context.Background())
	require.Error(t, err)

	client.err = nil
	client.voices = []Voice{{ShortName: "de-DE-KatjaNeural", Locale: "de-DE", Gender: "Female"}}

	catalog, err := cache.Voices(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, client.calls)
	assert.Equal(t, []string{"de-DE-KatjaNeural"}, catalog.VoicesFor("de", "Female"))
}

func TestBuildCatalogGroupsSortsAndDedupes(t *testing.T) {
	catalog := buildCatalog([]Voice{
		{ShortName: "en-US-GuyNeural", Locale: "en-US", Gender: "Male"},
		{ShortName: "en-US-AriaNeural", Locale: "en-US", Gender: "Female"},
		{ShortName: "en-GB-SoniaNeural", Locale: "en-GB", Gender: "Female"},
		{ShortName: "en-US-AriaNeural", Locale: "en-US", Gender: "Female"},
		{ShortName: "es-ES-ElviraNeural", Locale: "es-ES", Gender: "Female"},
		{ShortName: "", Locale: "fr-FR", Gender: "Female"},
	})

	assert.Equal(t, []string{"en", "es"}, catalog.Languages())
	assert.Equal(t, []string{"Female", "Male"}, catalog.Genders("en"))
	assert.Equal(t,
		[]string{"en-GB-SoniaNeural", "en-US-AriaNeural"},
		catalog.VoicesFor("en", "Female"),
	)
	assert.Equal(t, []string{"en-US-GuyNeural"}, catalog.VoicesFor("en", "Male"))
}
