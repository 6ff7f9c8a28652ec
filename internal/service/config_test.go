package service

import (
	"encoding/json"
	"testing"

	"site-service/internal/apperr"
	"site-service/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validSiteConfig() model.SiteConfig {
	return model.SiteConfig{
		BannerURL:           "https://cdn.example.com/banner.jpg",
		Name:                "My Store",
		Title:               "Welcome",
		Subtitle:            "Handmade goods",
		HeroDescription:     "The best handmade goods in town",
		LogoURL:             "https://cdn.example.com/logo.png",
		AboutPortraitOneURL: "https://cdn.example.com/p1.jpg",
		AboutLandscapeURL:   "https://cdn.example.com/l.jpg",
		AboutPortraitTwoURL: "https://cdn.example.com/p2.jpg",
		History:             "Founded in 2020",
		Values:              []string{"quality", "craft"},
		ContactHeading:      "Get in touch",
		ContactDescription:  "We reply within a day",
		ContactDetails:      "hello@example.com",
		PrimaryColor:        "#112233",
		SecondaryColor:      "#445566",
	}
}

func validSiteConfigJSON(t *testing.T) string {
	t.Helper()
	cfg := validSiteConfig()
	data, err := json.Marshal(&cfg)
	require.NoError(t, err)
	return string(data)
}

func TestValidateConfig_Valid(t *testing.T) {
	cfg, err := ValidateConfig(validSiteConfigJSON(t))
	require.NoError(t, err)
	assert.Equal(t, "My Store", cfg.Name)
	assert.Equal(t, []string{"quality", "craft"}, cfg.Values)
}

func TestValidateConfig_RoundTrip(t *testing.T) {
	original := validSiteConfig()
	original.ContactExtraNote = "Closed on Sundays"

	out, err := ConfigJSON(&original)
	require.NoError(t, err)

	parsed, err := ValidateConfig(out)
	require.NoError(t, err)
	assert.Equal(t, original, *parsed)
}

func TestValidateConfig_BlankInput(t *testing.T) {
	for _, input := range []string{"", "   "} {
		_, err := ValidateConfig(input)
		require.Error(t, err)
		assert.Equal(t, apperr.InvalidConfig, apperr.KindOf(err))
	}
}

func TestValidateConfig_MalformedJSON(t *testing.T) {
	_, err := ValidateConfig("{not json")
	require.Error(t, err)
	assert.Equal(t, apperr.InvalidConfig, apperr.KindOf(err))
}

func TestValidateConfig_MissingRequiredField(t *testing.T) {
	cfg := validSiteConfig()
	cfg.Title = ""
	data, err := json.Marshal(&cfg)
	require.NoError(t, err)

	_, err = ValidateConfig(string(data))
	require.Error(t, err)
	assert.Equal(t, apperr.InvalidConfig, apperr.KindOf(err))
	assert.Contains(t, err.Error(), "title")
}

func TestValidateConfig_BlankRequiredField(t *testing.T) {
	cfg := validSiteConfig()
	cfg.PrimaryColor = "   "
	data, err := json.Marshal(&cfg)
	require.NoError(t, err)

	_, err = ValidateConfig(string(data))
	require.Error(t, err)
	assert.Equal(t, apperr.InvalidConfig, apperr.KindOf(err))
	assert.Contains(t, err.Error(), "primaryColor")
}

func TestValidateConfig_EmptyValues(t *testing.T) {
	cfg := validSiteConfig()
	cfg.Values = []string{}
	data, err := json.Marshal(&cfg)
	require.NoError(t, err)

	_, err = ValidateConfig(string(data))
	require.Error(t, err)
	assert.Equal(t, apperr.InvalidConfig, apperr.KindOf(err))
	assert.Contains(t, err.Error(), "values")
}

func TestValidateConfig_MissingValues(t *testing.T) {
	cfg := validSiteConfig()
	cfg.Values = nil
	data, err := json.Marshal(&cfg)
	require.NoError(t, err)

	_, err = ValidateConfig(string(data))
	require.Error(t, err)
	assert.Equal(t, apperr.InvalidConfig, apperr.KindOf(err))
}

func TestValidateConfig_UnknownKeysIgnored(t *testing.T) {
	var doc map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(validSiteConfigJSON(t)), &doc))
	doc["somethingNew"] = "ignored"
	data, err := json.Marshal(doc)
	require.NoError(t, err)

	_, err = ValidateConfig(string(data))
	assert.NoError(t, err)
}

func TestValidateConfig_OptionalExtraNote(t *testing.T) {
	// contactExtraNote may be absent or blank
	cfg, err := ValidateConfig(validSiteConfigJSON(t))
	require.NoError(t, err)
	assert.Empty(t, cfg.ContactExtraNote)
}

func TestIsValidConfig(t *testing.T) {
	assert.True(t, IsValidConfig(validSiteConfigJSON(t)))
	assert.False(t, IsValidConfig(""))
	assert.False(t, IsValidConfig("{}"))
	assert.False(t, IsValidConfig("{not json"))
}
