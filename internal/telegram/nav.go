package telegram

import (
	"context"
	"fmt"
	"strings"

	"github.com/voicepilot/voicepilot/internal/prefs"
)

// Navigation tokens follow the <menu>_<args...> convention; the mutated
// values ride as the last 1–3 underscore-separated segments.
const (
	tokSettings   = "settings_menu"
	tokLangMenu   = "lang_menu"
	tokGenderMenu = "gender_menu"
	tokVoiceMenu  = "voice_menu"
	tokVoiceSet   = "voice_set"
	tokStyleMenu  = "style_menu"
	tokStyleSet   = "style_set"
	tokTTSMenu    = "tts_menu"
	tokTTSToggle  = "tts_toggle"
	tokTTSSay     = "tts"
)

type navKind int

const (
	navSettings navKind = iota
	navLangMenu
	navGenderMenu
	navVoiceMenu
	navVoiceSet
	navStyleMenu
	navStyleSet
	navTTSMenu
	navTTSToggle
	navTTSSay
)

// navEvent is a parsed navigation token: the menu identity plus whatever
// trailing arguments that menu carries.
type navEvent struct {
	kind   navKind
	lang   string
	gender string
	voice  string
	style  string
}

func parseNav(data string) (navEvent, error) {
	switch data {
	case tokSettings:
		return navEvent{kind: navSettings}, nil
	case tokLangMenu:
		return navEvent{kind: navLangMenu}, nil
	case tokStyleMenu:
		return navEvent{kind: navStyleMenu}, nil
	case tokTTSMenu:
		return navEvent{kind: navTTSMenu}, nil
	case tokTTSToggle:
		return navEvent{kind: navTTSToggle}, nil
	case tokTTSSay:
		return navEvent{kind: navTTSSay}, nil
	}

	switch {
	case strings.HasPrefix(data, tokGenderMenu+"_"):
		args, err := trailing(data, tokGenderMenu, 1)
		if err != nil {
			return navEvent{}, err
		}
		return navEvent{kind: navGenderMenu, lang: args[0]}, nil

	case strings.HasPrefix(data, tokVoiceMenu+"_"):
		args, err := trailing(data, tokVoiceMenu, 2)
		if err != nil {
			return navEvent{}, err
		}
		return navEvent{kind: navVoiceMenu, lang: args[0], gender: args[1]}, nil

	case strings.HasPrefix(data, tokVoiceSet+"_"):
		args, err := trailing(data, tokVoiceSet, 3)
		if err != nil {
			return navEvent{}, err
		}
		return navEvent{kind: navVoiceSet, lang: args[0], gender: args[1], voice: args[2]}, nil

	case strings.HasPrefix(data, tokStyleSet+"_"):
		args, err := trailing(data, tokStyleSet, 1)
		if err != nil {
			return navEvent{}, err
		}
		return navEvent{kind: navStyleSet, style: args[0]}, nil
	}

	return navEvent{}, fmt.Errorf("unknown navigation token: %q", data)
}

// applyNav performs the mutation a set event carries and reports the
// screen to redisplay. Set events land back on the list they came from
// so the fresh marker is visible; everything else passes through.
func applyNav(ctx context.Context, svc prefs.Service, chatID int64, ev navEvent) (navEvent, error) {
	switch ev.kind {
	case navVoiceSet:
		if err := svc.SetVoice(ctx, chatID, ev.voice); err != nil {
			return navEvent{}, err
		}
		return navEvent{kind: navVoiceMenu, lang: ev.lang, gender: ev.gender}, nil

	case navStyleSet:
		if err := svc.SetStyle(ctx, chatID, ev.style); err != nil {
			return navEvent{}, err
		}
		return navEvent{kind: navStyleMenu}, nil

	case navTTSToggle:
		if _, err := svc.ToggleTTS(ctx, chatID); err != nil {
			return navEvent{}, err
		}
		return navEvent{kind: navTTSMenu}, nil
	}
	return ev, nil
}

// trailing splits off the last n underscore-separated segments after the
// menu prefix and validates none is empty.
func trailing(data, prefix string, n int) ([]string, error) {
	rest := strings.TrimPrefix(data, prefix+"_")
	args := strings.Split(rest, "_")
	if len(args) != n {
		return nil, fmt.Errorf("token %q: want %d args, got %d", data, n, len(args))
	}
	for _, a := range args {
		if a == "" {
			return nil, fmt.Errorf("token %q: empty argument", data)
		}
	}
	return args, nil
}
