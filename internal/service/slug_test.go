package service

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"site-service/internal/apperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeSlug(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"already normalized", "my-site", "my-site"},
		{"uppercase", "My-Site", "my-site"},
		{"spaces become dashes", "My Cool Site", "my-cool-site"},
		{"whitespace runs collapse", "my   cool \t site", "my-cool-site"},
		{"accents stripped", "Café Štöre", "cafe-store"},
		{"special characters dropped", "my!@#site$%^", "mysite"},
		{"leading and trailing dashes trimmed", "--my-site--", "my-site"},
		{"doubled dashes collapse", "my--cool---site", "my-cool-site"},
		{"surrounding whitespace", "  my site  ", "my-site"},
		{"digits kept", "site 42", "site-42"},
		{"underscores dropped", "my_site", "mysite"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizeSlug(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalizeSlug_Properties(t *testing.T) {
	inputs := []string{
		"Hello World", "ÀÉÎÕÜ", "a - b - c", "x!y?z", "42", "Ça va très bien",
		"  padded  ", "MiXeD CaSe HeRe", "dash-ed---already",
	}

	for _, input := range inputs {
		got, err := NormalizeSlug(input)
		require.NoError(t, err, "input %q", input)

		assert.NotEmpty(t, got, "input %q", input)
		assert.NotContains(t, got, "--", "input %q", input)
		assert.False(t, strings.HasPrefix(got, "-"), "input %q", input)
		assert.False(t, strings.HasSuffix(got, "-"), "input %q", input)
		for _, r := range got {
			valid := (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-'
			assert.True(t, valid, "input %q produced character %q", input, r)
		}

		// Idempotence
		again, err := NormalizeSlug(got)
		require.NoError(t, err)
		assert.Equal(t, got, again, "normalize is not idempotent for %q", input)
	}
}

func TestNormalizeSlug_BlankInput(t *testing.T) {
	for _, input := range []string{"", "   ", "\t\n"} {
		_, err := NormalizeSlug(input)
		require.Error(t, err)
		assert.Equal(t, apperr.InvalidInput, apperr.KindOf(err))
	}
}

func TestNormalizeSlug_TimestampFallback(t *testing.T) {
	fixed := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	// Nothing survives normalization, so the clock-based fallback kicks in
	got, err := normalizeSlug("!!!", func() time.Time { return fixed })
	require.NoError(t, err)
	assert.Equal(t, fmt.Sprintf("site-%d", fixed.UnixMilli()), got)
}

func TestGenerateSlug(t *testing.T) {
	got, err := GenerateSlug("My New Store")
	require.NoError(t, err)
	assert.Equal(t, "my-new-store", got)

	_, err = GenerateSlug("  ")
	require.Error(t, err)
	assert.Equal(t, apperr.InvalidInput, apperr.KindOf(err))
}
