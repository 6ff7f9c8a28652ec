package service

import (
	"encoding/json"
	"strings"

	"site-service/internal/apperr"
	"site-service/internal/model"
)

// requiredConfigField pairs a JSON key with an accessor so validation
// failures name the offending key.
type requiredConfigField struct {
	name  string
	value func(*model.SiteConfig) string
}

var requiredConfigFields = []requiredConfigField{
	{"bannerUrl", func(c *model.SiteConfig) string { return c.BannerURL }},
	{"name", func(c *model.SiteConfig) string { return c.Name }},
	{"title", func(c *model.SiteConfig) string { return c.Title }},
	{"subtitle", func(c *model.SiteConfig) string { return c.Subtitle }},
	{"heroDescription", func(c *model.SiteConfig) string { return c.HeroDescription }},
	{"logoUrl", func(c *model.SiteConfig) string { return c.LogoURL }},
	{"aboutPortraitOneUrl", func(c *model.SiteConfig) string { return c.AboutPortraitOneURL }},
	{"aboutLandscapeUrl", func(c *model.SiteConfig) string { return c.AboutLandscapeURL }},
	{"aboutPortraitTwoUrl", func(c *model.SiteConfig) string { return c.AboutPortraitTwoURL }},
	{"history", func(c *model.SiteConfig) string { return c.History }},
	{"contactHeading", func(c *model.SiteConfig) string { return c.ContactHeading }},
	{"contactDescription", func(c *model.SiteConfig) string { return c.ContactDescription }},
	{"contactDetails", func(c *model.SiteConfig) string { return c.ContactDetails }},
	{"primaryColor", func(c *model.SiteConfig) string { return c.PrimaryColor }},
	{"secondaryColor", func(c *model.SiteConfig) string { return c.SecondaryColor }},
}

// ValidateConfig parses site configuration JSON and checks it against the
// fixed schema: every required field non-blank and the values list present
// and non-empty. Unknown keys are ignored.
func ValidateConfig(jsonConfig string) (*model.SiteConfig, error) {
	if strings.TrimSpace(jsonConfig) == "" {
		return nil, apperr.New(apperr.InvalidConfig, "site configuration JSON cannot be null or empty")
	}

	var cfg model.SiteConfig
	if err := json.Unmarshal([]byte(jsonConfig), &cfg); err != nil {
		return nil, apperr.Wrap(apperr.InvalidConfig, err, "invalid JSON format")
	}

	var missing []string
	for _, f := range requiredConfigFields {
		if strings.TrimSpace(f.value(&cfg)) == "" {
			missing = append(missing, f.name)
		}
	}
	if cfg.Values == nil {
		missing = append(missing, "values")
	}
	if len(missing) > 0 {
		return nil, apperr.New(apperr.InvalidConfig,
			"site configuration validation failed: %s is required", strings.Join(missing, ", "))
	}
	if len(cfg.Values) == 0 {
		return nil, apperr.New(apperr.InvalidConfig, "values list cannot be empty")
	}

	return &cfg, nil
}

// ConfigJSON serializes a site configuration back to JSON
func ConfigJSON(cfg *model.SiteConfig) (string, error) {
	data, err := json.Marshal(cfg)
	if err != nil {
		return "", apperr.Wrap(apperr.InvalidConfig, err, "failed to convert configuration to JSON")
	}
	return string(data), nil
}

// IsValidConfig reports whether a JSON string is valid site configuration
func IsValidConfig(jsonConfig string) bool {
	_, err := ValidateConfig(jsonConfig)
	return err == nil
}
