package igf

import (
	"embed"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

//go:embed locales/*.toml
var localeFS embed.FS

// localizer resolves the labels of the framework's default items
// (navigation arrows, empty-page placeholder) against the embedded
// locale catalog.
type localizer struct {
	loc *i18n.Localizer
}

func newLocalizer(langs ...string) localizer {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	entries, err := localeFS.ReadDir("locales")
	if err == nil {
		for _, entry := range entries {
			data, err := localeFS.ReadFile("locales/" + entry.Name())
			if err != nil {
				continue
			}
			// A malformed catalog file only loses its translations;
			// DefaultMessage fallbacks below still apply.
			_, _ = bundle.ParseMessageFileBytes(data, entry.Name())
		}
	}
	return localizer{loc: i18n.NewLocalizer(bundle, langs...)}
}

func (l localizer) get(id, fallback string) string {
	if l.loc == nil {
		return fallback
	}
	msg, err := l.loc.Localize(&i18n.LocalizeConfig{
		DefaultMessage: &i18n.Message{ID: id, Other: fallback},
	})
	if err != nil {
		return fallback
	}
	return msg
}

func (d *Dispatcher) defaultPrevItem() *Item {
	return NewItem(KindPrevArrow, d.localizer.get("NavPrev", "Previous Page"), AutoPosition)
}

func (d *Dispatcher) defaultNextItem() *Item {
	return NewItem(KindNextArrow, d.localizer.get("NavNext", "Next Page"), AutoPosition)
}

// EmptyPlaceholder returns a localized empty-page placeholder item at
// the given slot, for use with SetPlaceholder.
func (d *Dispatcher) EmptyPlaceholder(position int) *Item {
	return NewItem(KindEmpty, d.localizer.get("EmptyPage", "Nothing here yet"), position)
}
