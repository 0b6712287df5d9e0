// Package i18n holds the user-facing strings of roomsplit in English and
// Turkish, plus the locale-dependent date and month formatting used by
// reports and analytics.
package i18n

import (
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/roomsplit/internal/common"
	"golang.org/x/text/language"
)

// Language is one of the supported locale codes.
type Language string

const (
	English Language = "en"
	Turkish Language = "tr"
)

// Default is used when nothing else is configured or persisted.
const Default = English

// Supported lists the languages in presentation order.
var Supported = []Language{English, Turkish}

var matcher = language.NewMatcher([]language.Tag{language.English, language.Turkish})

// ParseLanguage accepts a BCP 47 tag ("tr", "tr-TR", "en_US") and maps it to
// a supported language.
func ParseLanguage(s string) (Language, error) {
	tag, err := language.Parse(strings.ReplaceAll(strings.TrimSpace(s), "_", "-"))
	if err != nil {
		return "", fmt.Errorf("%w: %q", common.ErrUnsupportedLanguage, s)
	}
	base, _ := tag.Base()
	switch base.String() {
	case "en":
		return English, nil
	case "tr":
		return Turkish, nil
	}
	return "", fmt.Errorf("%w: %q", common.ErrUnsupportedLanguage, s)
}

// MatchAcceptLanguage picks the best supported language for an HTTP
// Accept-Language header. ok is false when the header is empty or unusable.
func MatchAcceptLanguage(header string) (Language, bool) {
	if strings.TrimSpace(header) == "" {
		return "", false
	}
	tags, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(tags) == 0 {
		return "", false
	}
	_, idx, conf := matcher.Match(tags...)
	if conf == language.No {
		return "", false
	}
	if idx == 1 {
		return Turkish, true
	}
	return English, true
}

// Translator resolves message keys for one language.
type Translator struct {
	lang Language
}

func New(lang Language) Translator {
	if _, ok := catalog[lang]; !ok {
		lang = Default
	}
	return Translator{lang: lang}
}

func (t Translator) Language() Language { return t.lang }

// T returns the message for key, falling back to English and finally to
// the key itself.
func (t Translator) T(key string) string {
	if v, ok := catalog[t.lang][key]; ok {
		return v
	}
	if v, ok := catalog[English][key]; ok {
		return v
	}
	return key
}

// DateLayout is the locale's short numeric date layout.
func (t Translator) DateLayout() string {
	if t.lang == Turkish {
		return "02.01.2006"
	}
	return "01/02/2006"
}

func (t Translator) FormatDate(d time.Time) string {
	return d.Format(t.DateLayout())
}

// MonthLabel renders "January 2024" or "Ocak 2024".
func (t Translator) MonthLabel(year int, month time.Month) string {
	names := monthNames[English]
	if n, ok := monthNames[t.lang]; ok {
		names = n
	}
	return fmt.Sprintf("%s %d", names[month-1], year)
}

// TransferLine renders "B owes A" ("B -> A" in Turkish).
func (t Translator) TransferLine(from, to string) string {
	return strings.Join(strings.Fields(fmt.Sprintf("%s %s %s %s %s",
		t.T("roommate"), from, t.T("owes"), t.T("roommate"), to)), " ")
}
