package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseCurrency(t *testing.T) {
	tests := []struct {
		input string
		want  Currency
		ok    bool
	}{
		{"USD", CurrencyUSD, true},
		{"usd", CurrencyUSD, true},
		{" eur ", CurrencyEUR, true},
		{"Jpy", CurrencyJPY, true},
		{"DOGE", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		got, ok := ParseCurrency(tt.input)
		assert.Equal(t, tt.ok, ok, "input %q", tt.input)
		assert.Equal(t, tt.want, got, "input %q", tt.input)
	}
}

func TestParseLanguage(t *testing.T) {
	got, ok := ParseLanguage("fr")
	assert.True(t, ok)
	assert.Equal(t, LanguageFR, got)

	_, ok = ParseLanguage("tlh")
	assert.False(t, ok)
}

func TestParseSiteStatus(t *testing.T) {
	got, ok := ParseSiteStatus("active")
	assert.True(t, ok)
	assert.Equal(t, StatusActive, got)

	for _, unknown := range []string{"PENDING", "SUSPENDED", "ARCHIVED", "DELETED"} {
		_, ok := ParseSiteStatus(unknown)
		assert.False(t, ok, "status %q must not parse", unknown)
	}
}

func TestCanTransition(t *testing.T) {
	assert.False(t, CanTransition(StatusActive, StatusDraft))
	assert.False(t, CanTransition(StatusDisabled, StatusDraft))

	assert.True(t, CanTransition(StatusDraft, StatusActive))
	assert.True(t, CanTransition(StatusDraft, StatusDisabled))
	assert.True(t, CanTransition(StatusActive, StatusDisabled))
	assert.True(t, CanTransition(StatusDisabled, StatusActive))
	assert.True(t, CanTransition(StatusDraft, StatusDraft))
	assert.True(t, CanTransition(StatusActive, StatusActive))
}

func TestEnumListsAreCopies(t *testing.T) {
	langs := Languages()
	langs[0] = "XX"
	assert.Equal(t, LanguageEN, Languages()[0])

	curs := Currencies()
	curs[0] = "XXX"
	assert.Equal(t, CurrencyUSD, Currencies()[0])
}
