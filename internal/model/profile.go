package model

// UserProfile is the subject of a compliance case. It is owned by the
// caller and read-only to the pipeline.
type UserProfile struct {
	FullName    string            `json:"full_name"`
	DateOfBirth string            `json:"date_of_birth,omitempty"` // e.g. 1985-03-15
	City        string            `json:"city,omitempty"`
	Employer    string            `json:"employer,omitempty"`
	IDData      map[string]string `json:"id_data,omitempty"` // passport, national ID, etc.
	Aliases     []string          `json:"aliases,omitempty"`
}

// Names returns the full name followed by all aliases.
func (p UserProfile) Names() []string {
	names := make([]string, 0, len(p.Aliases)+1)
	names = append(names, p.FullName)
	names = append(names, p.Aliases...)
	return names
}

// HitType classifies where a media hit came from.
type HitType string

const (
	HitAdverseMedia HitType = "adverse_media"
	HitPEP          HitType = "pep"
	HitWatchlist    HitType = "watchlist"
	HitSanctions    HitType = "sanctions"
)

// MediaHit is one vendor article to review against the subject.
type MediaHit struct {
	Title    string  `json:"title"`
	Snippet  string  `json:"snippet,omitempty"`
	FullText string  `json:"full_text,omitempty"`
	Date     string  `json:"date"`
	Source   string  `json:"source"`
	URL      string  `json:"url,omitempty"`
	HitType  HitType `json:"hit_type,omitempty"`
}

// Content returns the richest text available for the hit:
// full text, then snippet, then title.
func (h MediaHit) Content() string {
	if h.FullText != "" {
		return h.FullText
	}
	if h.Snippet != "" {
		return h.Snippet
	}
	return h.Title
}
