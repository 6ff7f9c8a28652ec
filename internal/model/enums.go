package model

import "strings"

// Currency is a supported settlement currency
type Currency string

const (
	CurrencyUSD Currency = "USD"
	CurrencyEUR Currency = "EUR"
	CurrencyGBP Currency = "GBP"
	CurrencyJPY Currency = "JPY"
	CurrencyCAD Currency = "CAD"
	CurrencyAUD Currency = "AUD"
	CurrencyCHF Currency = "CHF"
	CurrencyCNY Currency = "CNY"
)

// Language is a supported site language
type Language string

const (
	LanguageEN Language = "EN"
	LanguageFR Language = "FR"
	LanguageDE Language = "DE"
	LanguageES Language = "ES"
	LanguageIT Language = "IT"
	LanguagePT Language = "PT"
	LanguageNL Language = "NL"
	LanguageJA Language = "JA"
	LanguageZH Language = "ZH"
)

// SiteStatus is the lifecycle state of a site
type SiteStatus string

const (
	// StatusDraft: not yet published
	StatusDraft SiteStatus = "DRAFT"
	// StatusActive: published and operational
	StatusActive SiteStatus = "ACTIVE"
	// StatusDisabled: not accessible
	StatusDisabled SiteStatus = "DISABLED"
)

var currencies = []Currency{
	CurrencyUSD, CurrencyEUR, CurrencyGBP, CurrencyJPY,
	CurrencyCAD, CurrencyAUD, CurrencyCHF, CurrencyCNY,
}

var languages = []Language{
	LanguageEN, LanguageFR, LanguageDE, LanguageES, LanguageIT,
	LanguagePT, LanguageNL, LanguageJA, LanguageZH,
}

var statuses = []SiteStatus{StatusDraft, StatusActive, StatusDisabled}

// Currencies returns all supported currencies in a stable order
func Currencies() []Currency {
	out := make([]Currency, len(currencies))
	copy(out, currencies)
	return out
}

// Languages returns all supported languages in a stable order
func Languages() []Language {
	out := make([]Language, len(languages))
	copy(out, languages)
	return out
}

// ParseCurrency resolves a currency token case-insensitively.
// It is total: unknown tokens report ok=false, they never panic.
func ParseCurrency(s string) (Currency, bool) {
	token := Currency(strings.ToUpper(strings.TrimSpace(s)))
	for _, c := range currencies {
		if c == token {
			return c, true
		}
	}
	return "", false
}

// ParseLanguage resolves a language token case-insensitively
func ParseLanguage(s string) (Language, bool) {
	token := Language(strings.ToUpper(strings.TrimSpace(s)))
	for _, l := range languages {
		if l == token {
			return l, true
		}
	}
	return "", false
}

// ParseSiteStatus resolves a status token case-insensitively
func ParseSiteStatus(s string) (SiteStatus, bool) {
	token := SiteStatus(strings.ToUpper(strings.TrimSpace(s)))
	for _, st := range statuses {
		if st == token {
			return st, true
		}
	}
	return "", false
}

// CanTransition reports whether a status change is allowed. Any transition is
// permitted except moving a published or disabled site back to DRAFT.
func CanTransition(from, to SiteStatus) bool {
	if to == StatusDraft && (from == StatusActive || from == StatusDisabled) {
		return false
	}
	return true
}
