package model

import "time"

// SiteConfig is the singleton site-wide configuration row. SetupKey gates
// creation of administrator accounts and must never reach API responses.
type SiteConfig struct {
	ID              int64     `json:"id"`
	SiteName        string    `json:"siteName"`
	ThemeColor      string    `json:"themeColor"`
	MetaDescription string    `json:"metaDescription"`
	SetupKey        string    `json:"-"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// Hero is the singleton landing section of the public site.
type Hero struct {
	ID                  int64     `json:"id"`
	Greeting            string    `json:"greeting"`
	Name                string    `json:"name"`
	Tagline             string    `json:"tagline"`
	Description         string    `json:"description"`
	PrimaryButtonText   string    `json:"primaryButtonText"`
	PrimaryButtonLink   string    `json:"primaryButtonLink"`
	SecondaryButtonText string    `json:"secondaryButtonText"`
	SecondaryButtonLink string    `json:"secondaryButtonLink"`
	UpdatedAt           time.Time `json:"updatedAt"`
}

// AboutDetail is one icon/label/value triple shown next to the about text.
type AboutDetail struct {
	Icon  string `json:"icon"`
	Label string `json:"label"`
	Value string `json:"value"`
}

// About is the singleton about section. Content is stored as markdown;
// the public endpoint additionally returns a rendered, sanitized HTML form.
type About struct {
	ID        int64         `json:"id"`
	Title     string        `json:"title"`
	Content   string        `json:"content"`
	ImageURL  string        `json:"imageUrl"`
	Details   []AboutDetail `json:"details"`
	UpdatedAt time.Time     `json:"updatedAt"`
}

// SocialLink is one platform/url/icon entry on the contact section.
type SocialLink struct {
	Platform string `json:"platform"`
	URL      string `json:"url"`
	Icon     string `json:"icon"`
}

// ContactInfo is the singleton contact section of the public site.
type ContactInfo struct {
	ID          int64        `json:"id"`
	Email       string       `json:"email"`
	Phone       string       `json:"phone"`
	Location    string       `json:"location"`
	SocialLinks []SocialLink `json:"socialLinks"`
	UpdatedAt   time.Time    `json:"updatedAt"`
}
