package domain

import (
	"time"
)

// ArticleStatus is the publication state of an article.
type ArticleStatus string

const (
	StatusDraft     ArticleStatus = "draft"
	StatusPublished ArticleStatus = "published"
)

// Language is an article's content language.
type Language string

const (
	LangEN   Language = "en"
	LangZHCN Language = "zh-CN"
)

// ArticleMetadata is the listable part of an article. (site, language, slug)
// is unique per site.
type ArticleMetadata struct {
	ID        string        `json:"id"`
	SiteID    string        `json:"site_id"`
	Language  Language      `json:"language"`
	Slug      string        `json:"slug"`
	Title     string        `json:"title"`
	Excerpt   string        `json:"excerpt"`
	Date      string        `json:"date"` // YYYY-MM-DD, display date
	Status    ArticleStatus `json:"status"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}

// Article is metadata plus the full body. Content is stored in a separate
// table so list queries never drag article bodies along.
type Article struct {
	ArticleMetadata
	Content string `json:"content"`
}

// ArticleFilter narrows article list queries. Empty fields are unfiltered
// except Status, which the service defaults to published.
type ArticleFilter struct {
	SiteID   string
	Language Language
	Status   ArticleStatus
	Page     int
	Limit    int
}

// Pagination describes one page of a list response.
type Pagination struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
	Pages int `json:"pages"`
}
