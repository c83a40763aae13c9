package ports

import (
	"context"

	"github.com/emrekoca/penmark/internal/core/domain"
)

// Repository is the persistence boundary of the core. Credential lookup is
// exact-match on the digest; digest uniqueness is a storage-level constraint,
// not an in-process lock.
type Repository interface {
	// GetAPIKeyByDigest returns (nil, nil) when no credential matches.
	GetAPIKeyByDigest(ctx context.Context, digest string) (*domain.APIKey, error)
	CreateAPIKey(ctx context.Context, key *domain.APIKey) error

	CreateSite(ctx context.Context, site *domain.Site) error
	// GetSiteByID returns (nil, nil) when the site does not exist.
	GetSiteByID(ctx context.Context, id string) (*domain.Site, error)
	// GetSiteByName returns (nil, nil) when the site does not exist.
	GetSiteByName(ctx context.Context, name string) (*domain.Site, error)
	ListSites(ctx context.Context) ([]domain.Site, error)

	// CreateArticle persists metadata and content atomically.
	CreateArticle(ctx context.Context, article *domain.Article) error
	// GetArticle returns (nil, nil) when no article matches.
	GetArticle(ctx context.Context, siteID string, lang domain.Language, slug string) (*domain.Article, error)
	// ListArticles returns one page plus the unpaged total.
	ListArticles(ctx context.Context, filter domain.ArticleFilter) ([]domain.ArticleMetadata, int, error)

	Ping(ctx context.Context) error
}

// ArticleCache is an optional read-through cache for article details.
type ArticleCache interface {
	Get(ctx context.Context, siteID string, lang domain.Language, slug string) (*domain.Article, bool)
	Set(ctx context.Context, article *domain.Article)
	Invalidate(ctx context.Context, siteID string, lang domain.Language, slug string)
	Ping(ctx context.Context) error
}

// SiteService manages sites. All operations are admin-gated upstream.
type SiteService interface {
	CreateSite(ctx context.Context, name string, description *string) (*domain.Site, error)
	ListSites(ctx context.Context) ([]domain.Site, error)
}

// KeyService issues site credentials. It is the only producer of API key
// records in the system.
type KeyService interface {
	// Issue creates a credential for a site. expiresAt is either empty
	// (never expires) or a strict millisecond-precision UTC ISO-8601
	// timestamp in the future. The returned plaintext appears nowhere else.
	Issue(ctx context.Context, siteID, name, expiresAt string) (*domain.IssuedKey, error)
}

// ArticleService manages per-site articles. Callers pass the site identity
// established by authentication; scope checks happen before these run.
type ArticleService interface {
	ListArticles(ctx context.Context, filter domain.ArticleFilter) ([]domain.ArticleMetadata, domain.Pagination, error)
	GetArticle(ctx context.Context, siteID string, lang domain.Language, slug string) (*domain.Article, error)
	CreateArticle(ctx context.Context, article *domain.Article) error
}
