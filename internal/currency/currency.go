// Package currency renders tip results as locale-formatted currency strings.
//
// Number formatting, currency symbols and rounding scales come from
// golang.org/x/text; this package only picks the locale and currency and
// fills the display templates.
package currency

import (
	"fmt"
	"strings"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"tiptime/internal/tip"
)

// Formatter formats amounts for one locale and currency.
type Formatter struct {
	tag     language.Tag
	unit    currency.Unit
	printer *message.Printer
}

// Display holds one string per derived amount.
type Display struct {
	Tip       string `json:"tip"`
	Total     string `json:"total"`
	PerPerson string `json:"per_person"`
}

// New returns a Formatter for the given locale and currency.
func New(tag language.Tag, unit currency.Unit) *Formatter {
	return &Formatter{
		tag:     tag,
		unit:    unit,
		printer: message.NewPrinter(tag, message.Catalog(messages)),
	}
}

// NewForLocale parses a BCP 47 locale and an optional ISO 4217 currency code.
// When currencyCode is empty the currency of the locale's region is used.
func NewForLocale(locale, currencyCode string) (*Formatter, error) {
	tag, err := language.Parse(strings.TrimSpace(locale))
	if err != nil {
		return nil, fmt.Errorf("parse locale %q: %w", locale, err)
	}
	return NewForTag(tag, currencyCode)
}

// NewForTag is NewForLocale for an already parsed tag.
func NewForTag(tag language.Tag, currencyCode string) (*Formatter, error) {
	unit, err := ResolveUnit(tag, currencyCode)
	if err != nil {
		return nil, err
	}
	return New(tag, unit), nil
}

// ResolveUnit returns the currency named by code, or the currency of tag's
// region when code is empty.
func ResolveUnit(tag language.Tag, code string) (currency.Unit, error) {
	code = strings.TrimSpace(code)
	if code != "" {
		unit, err := currency.ParseISO(code)
		if err != nil {
			return currency.Unit{}, fmt.Errorf("parse currency %q: %w", code, err)
		}
		return unit, nil
	}

	unit, conf := currency.FromTag(tag)
	if conf == language.No {
		return currency.Unit{}, fmt.Errorf("no currency for locale %q", tag)
	}
	return unit, nil
}

// Tag returns the formatter's locale.
func (f *Formatter) Tag() language.Tag { return f.tag }

// Unit returns the formatter's currency.
func (f *Formatter) Unit() currency.Unit { return f.unit }

// Format renders amount with the currency symbol and the currency's standard
// number of decimals. The amount itself is not modified.
func (f *Formatter) Format(amount float64) string {
	return f.printer.Sprint(currency.Symbol(f.unit.Amount(amount)))
}

// Amounts formats the three derived amounts of r.
func (f *Formatter) Amounts(r tip.Result) Display {
	return Display{
		Tip:       f.Format(r.Tip),
		Total:     f.Format(r.Total),
		PerPerson: f.Format(r.PerPerson),
	}
}

// Lines renders the localized result lines, e.g. "Tip Amount: $ 9.00".
func (f *Formatter) Lines(r tip.Result) Display {
	amounts := f.Amounts(r)
	return Display{
		Tip:       f.printer.Sprintf(TipAmountKey, amounts.Tip),
		Total:     f.printer.Sprintf(TotalAmountKey, amounts.Total),
		PerPerson: f.printer.Sprintf(PerPersonAmountKey, amounts.PerPerson),
	}
}
