package models

// Project is one portfolio entry. Order defines the display sequence on the
// site; CreatedAt/UpdatedAt are epoch milliseconds.
type Project struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Image       string   `json:"image"`
	WebsiteLink string   `json:"websiteLink"`
	TechStack   []string `json:"techStack"`
	Order       int      `json:"order"`
	CreatedAt   int64    `json:"createdAt"`
	UpdatedAt   int64    `json:"updatedAt"`
}

type CreateProjectRequest struct {
	Title       string   `json:"title" binding:"required"`
	Description string   `json:"description" binding:"required"`
	Image       string   `json:"image"`
	WebsiteLink string   `json:"websiteLink"`
	TechStack   []string `json:"techStack"`
}

// UpdateProjectRequest is a partial update: nil pointers leave the stored
// field untouched.
type UpdateProjectRequest struct {
	Title       *string   `json:"title"`
	Description *string   `json:"description"`
	Image       *string   `json:"image"`
	WebsiteLink *string   `json:"websiteLink"`
	TechStack   *[]string `json:"techStack"`
}

type ReorderRequest struct {
	ProjectIDs []string `json:"projectIds" binding:"required"`
}

// SiteSettings holds the site-wide image configuration.
type SiteSettings struct {
	ProfileImage string   `json:"profileImage"`
	SiteImages   []string `json:"siteImages"`
}

// NewSiteSettings returns the empty settings shape used for initialization
// and as the fail-soft fallback on read errors.
func NewSiteSettings() *SiteSettings {
	return &SiteSettings{
		ProfileImage: "",
		SiteImages:   []string{},
	}
}

// UpdateSiteSettingsRequest merges into the stored settings: nil pointers
// leave the stored field untouched.
type UpdateSiteSettingsRequest struct {
	ProfileImage *string   `json:"profileImage"`
	SiteImages   *[]string `json:"siteImages"`
}

// LoginRequest carries the admin password. A missing password simply fails
// the comparison, so no binding constraint here.
type LoginRequest struct {
	Password string `json:"password"`
}
