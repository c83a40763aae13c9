package services

import (
	"context"
	"time"

	"github.com/emrekoca/penmark/internal/core/domain"
	"github.com/emrekoca/penmark/internal/core/ports"
	"github.com/google/uuid"
)

const (
	defaultPage  = 1
	defaultLimit = 20
	maxLimit     = 100
)

type articleService struct {
	repo  ports.Repository
	cache ports.ArticleCache // optional, may be nil
}

// NewArticleService creates the article service. cache may be nil, in which
// case every detail read hits the repository.
func NewArticleService(repo ports.Repository, cache ports.ArticleCache) ports.ArticleService {
	return &articleService{repo: repo, cache: cache}
}

func (s *articleService) ListArticles(ctx context.Context, filter domain.ArticleFilter) ([]domain.ArticleMetadata, domain.Pagination, error) {
	if filter.Page <= 0 {
		filter.Page = defaultPage
	}
	if filter.Limit <= 0 {
		filter.Limit = defaultLimit
	}
	if filter.Limit > maxLimit {
		return nil, domain.Pagination{}, domain.E(domain.KindInvalidInput, "limit must be between 1 and 100")
	}
	if filter.Language != "" {
		if err := domain.ValidateLanguage(filter.Language); err != nil {
			return nil, domain.Pagination{}, err
		}
	}
	if filter.Status == "" {
		// Unspecified status means the public view: published only.
		filter.Status = domain.StatusPublished
	} else if err := domain.ValidateStatus(filter.Status); err != nil {
		return nil, domain.Pagination{}, err
	}

	articles, total, err := s.repo.ListArticles(ctx, filter)
	if err != nil {
		return nil, domain.Pagination{}, domain.StoreFailure("list articles", err)
	}

	pages := (total + filter.Limit - 1) / filter.Limit
	return articles, domain.Pagination{
		Page:  filter.Page,
		Limit: filter.Limit,
		Total: total,
		Pages: pages,
	}, nil
}

func (s *articleService) GetArticle(ctx context.Context, siteID string, lang domain.Language, slug string) (*domain.Article, error) {
	if err := domain.ValidateLanguage(lang); err != nil {
		return nil, err
	}
	if err := domain.ValidateSlug(slug); err != nil {
		return nil, err
	}

	if s.cache != nil {
		if article, ok := s.cache.Get(ctx, siteID, lang, slug); ok {
			return article, nil
		}
	}

	article, err := s.repo.GetArticle(ctx, siteID, lang, slug)
	if err != nil {
		return nil, domain.StoreFailure("get article", err)
	}
	if article == nil {
		return nil, domain.E(domain.KindArticleNotFound, "article not found")
	}

	if s.cache != nil {
		s.cache.Set(ctx, article)
	}
	return article, nil
}

func (s *articleService) CreateArticle(ctx context.Context, article *domain.Article) error {
	if err := domain.ValidateLanguage(article.Language); err != nil {
		return err
	}
	if err := domain.ValidateSlug(article.Slug); err != nil {
		return err
	}
	if article.Title == "" {
		return domain.E(domain.KindInvalidInput, "title is required")
	}
	if article.Excerpt == "" {
		return domain.E(domain.KindInvalidInput, "excerpt is required")
	}
	if article.Content == "" {
		return domain.E(domain.KindInvalidInput, "content is required")
	}
	if err := domain.ValidateDate(article.Date); err != nil {
		return err
	}
	if article.Status == "" {
		article.Status = domain.StatusDraft
	} else if err := domain.ValidateStatus(article.Status); err != nil {
		return err
	}

	existing, err := s.repo.GetArticle(ctx, article.SiteID, article.Language, article.Slug)
	if err != nil {
		return domain.StoreFailure("check existing article", err)
	}
	if existing != nil {
		return domain.E(domain.KindArticleExists, "an article with this slug already exists for this language")
	}

	article.ID = uuid.New().String()
	article.CreatedAt = time.Now().UTC()
	article.UpdatedAt = article.CreatedAt
	if err := s.repo.CreateArticle(ctx, article); err != nil {
		return domain.StoreFailure("create article", err)
	}

	if s.cache != nil {
		s.cache.Invalidate(ctx, article.SiteID, article.Language, article.Slug)
	}
	return nil
}
