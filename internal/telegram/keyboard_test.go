package telegram

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voicepilot/voicepilot/internal/prefs"
	"github.com/voicepilot/voicepilot/internal/speech"
)

func testCatalog(t *testing.T, voicesPerGender int) speech.Catalog {
	t.Helper()
	catalog := speech.Catalog{
		"en": {"Female": nil, "Male": nil},
		"de": {"Female": nil},
	}
	for lang, genders := range catalog {
		for gender := range genders {
			for i := 0; i < voicesPerGender; i++ {
				genders[gender] = append(genders[gender],
					fmt.Sprintf("%s-XX-Voice%02dNeural", lang, i))
			}
		}
	}
	return catalog
}

func TestVoiceRowsPartitionSortedVoices(t *testing.T) {
	catalog := testCatalog(t, 14)
	current := "en-XX-Voice05Neural"

	rows := voiceRows(catalog, "en", "Female", current)

	// last row is navigation, the rest partition the voice list
	require.GreaterOrEqual(t, len(rows), 2)
	choiceRows, backButtons := rows[:len(rows)-1], rows[len(rows)-1]

	var seen []string
	for _, row := range choiceRows {
		assert.LessOrEqual(t, len(row), rowSize)
		for _, btn := range row {
			require.NotNil(t, btn.CallbackData)
			ev, err := parseNav(*btn.CallbackData)
			require.NoError(t, err)
			assert.Equal(t, navVoiceSet, ev.kind)
			seen = append(seen, ev.voice)

			if ev.voice == current {
				assert.Equal(t, "» "+current+" «", btn.Text)
			} else {
				assert.Equal(t, ev.voice, btn.Text)
			}
		}
	}

	assert.Equal(t, catalog.VoicesFor("en", "Female"), seen,
		"no voice omitted, duplicated or reordered")

	require.Len(t, backButtons, 3)
	assert.Equal(t, "gender_menu_en", *backButtons[0].CallbackData)
	assert.Equal(t, "lang_menu", *backButtons[1].CallbackData)
	assert.Equal(t, "settings_menu", *backButtons[2].CallbackData)
}

func TestLanguageRowsChunked(t *testing.T) {
	catalog := make(speech.Catalog)
	for i := 0; i < 13; i++ {
		lang := fmt.Sprintf("l%02d", i)
		catalog[lang] = map[string][]string{"Female": {lang + "-A"}}
	}

	rows := languageRows(catalog)

	// 13 languages → 6 + 6 + 1, plus the back row
	require.Len(t, rows, 4)
	assert.Len(t, rows[0], 6)
	assert.Len(t, rows[1], 6)
	assert.Len(t, rows[2], 1)
	assert.Equal(t, "settings_menu", *rows[3][0].CallbackData)
}

func TestStyleRowsMarkCurrent(t *testing.T) {
	rows := styleRows(prefs.StylePrecise)

	require.Len(t, rows, len(prefs.Styles())+1)
	for i, style := range prefs.Styles() {
		btn := rows[i][0]
		assert.Equal(t, "style_set_"+style, *btn.CallbackData)
		if style == prefs.StylePrecise {
			assert.Equal(t, "» precise «", btn.Text)
		} else {
			assert.Equal(t, style, btn.Text)
		}
	}
}

func TestTTSRowsShowState(t *testing.T) {
	on := ttsRows(true)
	off := ttsRows(false)

	assert.Equal(t, "TTS: ON", on[0][0].Text)
	assert.Equal(t, "TTS: OFF", off[0][0].Text)
	assert.Equal(t, "tts_toggle", *on[0][0].CallbackData)
}

func TestChunkStrings(t *testing.T) {
	chunks := chunkStrings([]string{"a", "b", "c", "d", "e"}, 2)
	assert.Equal(t, [][]string{{"a", "b"}, {"c", "d"}, {"e"}}, chunks)
	assert.Nil(t, chunkStrings(nil, 2))
}
