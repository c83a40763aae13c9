package testutil

import (
	"context"

	"github.com/emrekoca/penmark/internal/core/domain"
	"github.com/stretchr/testify/mock"
)

// MockRepo implements ports.Repository for testing.
type MockRepo struct {
	mock.Mock
}

func (m *MockRepo) GetAPIKeyByDigest(ctx context.Context, digest string) (*domain.APIKey, error) {
	args := m.Called(digest)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.APIKey), args.Error(1)
}

func (m *MockRepo) CreateAPIKey(ctx context.Context, key *domain.APIKey) error {
	args := m.Called(key)
	return args.Error(0)
}

func (m *MockRepo) CreateSite(ctx context.Context, site *domain.Site) error {
	args := m.Called(site)
	return args.Error(0)
}

func (m *MockRepo) GetSiteByID(ctx context.Context, id string) (*domain.Site, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Site), args.Error(1)
}

func (m *MockRepo) GetSiteByName(ctx context.Context, name string) (*domain.Site, error) {
	args := m.Called(name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Site), args.Error(1)
}

func (m *MockRepo) ListSites(ctx context.Context) ([]domain.Site, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Site), args.Error(1)
}

func (m *MockRepo) CreateArticle(ctx context.Context, article *domain.Article) error {
	args := m.Called(article)
	return args.Error(0)
}

func (m *MockRepo) GetArticle(ctx context.Context, siteID string, lang domain.Language, slug string) (*domain.Article, error) {
	args := m.Called(siteID, lang, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Article), args.Error(1)
}

func (m *MockRepo) ListArticles(ctx context.Context, filter domain.ArticleFilter) ([]domain.ArticleMetadata, int, error) {
	args := m.Called(filter)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.ArticleMetadata), args.Int(1), args.Error(2)
}

func (m *MockRepo) Ping(ctx context.Context) error {
	args := m.Called()
	return args.Error(0)
}
