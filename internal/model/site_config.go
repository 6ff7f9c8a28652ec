package model

// SiteConfig is the fixed-shape configuration document embedded in a site.
// The JSON key set mirrors the storefront draft contract; unknown keys are
// ignored on parse, missing required keys reject the document.
type SiteConfig struct {
	BannerURL           string   `json:"bannerUrl"`
	Name                string   `json:"name"`
	Title               string   `json:"title"`
	Subtitle            string   `json:"subtitle"`
	HeroDescription     string   `json:"heroDescription"`
	LogoURL             string   `json:"logoUrl"`
	AboutPortraitOneURL string   `json:"aboutPortraitOneUrl"`
	AboutLandscapeURL   string   `json:"aboutLandscapeUrl"`
	AboutPortraitTwoURL string   `json:"aboutPortraitTwoUrl"`
	History             string   `json:"history"`
	Values              []string `json:"values"`
	ContactHeading      string   `json:"contactHeading"`
	ContactDescription  string   `json:"contactDescription"`
	ContactDetails      string   `json:"contactDetails"`
	ContactExtraNote    string   `json:"contactExtraNote,omitempty"`
	PrimaryColor        string   `json:"primaryColor"`
	SecondaryColor      string   `json:"secondaryColor"`
}
