package currency

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message/catalog"
)

// Template keys, also the English text.
const (
	TipAmountKey       = "Tip Amount: %s"
	TotalAmountKey     = "Total Amount: %s"
	PerPersonAmountKey = "Cost per Person: %s"
)

var translations = map[language.Tag][3]string{
	language.English: {TipAmountKey, TotalAmountKey, PerPersonAmountKey},
	language.German:  {"Trinkgeld: %s", "Gesamtbetrag: %s", "Kosten pro Person: %s"},
	language.French:  {"Pourboire : %s", "Montant total : %s", "Coût par personne : %s"},
	language.Spanish: {"Propina: %s", "Importe total: %s", "Costo por persona: %s"},
}

// Supported lists the languages with translated templates, English first.
var Supported = []language.Tag{
	language.English,
	language.German,
	language.French,
	language.Spanish,
}

var (
	messages = newCatalog()
	matcher = language.NewMatcher(Supported)
)

func newCatalog() *catalog.Builder {
	b := catalog.NewBuilder(catalog.Fallback(language.English))
	keys := [3]string{TipAmountKey, TotalAmountKey, PerPersonAmountKey}
	for tag, msgs := range translations {
		for i, key := range keys {
			// Only fails on malformed messages; these are constants.
			_ = b.SetString(tag, key, msgs[i])
		}
	}
	return b
}

// Match picks the locale to format with from an Accept-Language header.
// The first acceptable requested tag is returned whole so its region still
// selects the currency. Without a supported language, fallback is returned.
func Match(acceptLanguage string, fallback language.Tag) language.Tag {
	if acceptLanguage == "" {
		return fallback
	}

	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil {
		return fallback
	}

	for _, t := range tags {
		if _, _, conf := matcher.Match(t); conf != language.No {
			return t
		}
	}
	return fallback
}
