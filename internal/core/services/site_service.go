package services

import (
	"context"
	"time"

	"github.com/emrekoca/penmark/internal/core/domain"
	"github.com/emrekoca/penmark/internal/core/ports"
	"github.com/google/uuid"
)

type siteService struct {
	repo ports.Repository
}

// NewSiteService creates the site management service.
func NewSiteService(repo ports.Repository) ports.SiteService {
	return &siteService{repo: repo}
}

func (s *siteService) CreateSite(ctx context.Context, name string, description *string) (*domain.Site, error) {
	if err := domain.ValidateSiteName(name); err != nil {
		return nil, err
	}

	existing, err := s.repo.GetSiteByName(ctx, name)
	if err != nil {
		return nil, domain.StoreFailure("look up site by name", err)
	}
	if existing != nil {
		return nil, domain.E(domain.KindSiteExists, "a site with this name already exists")
	}

	now := time.Now().UTC()
	site := &domain.Site{
		ID:          uuid.New().String(),
		Name:        name,
		Description: description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.repo.CreateSite(ctx, site); err != nil {
		return nil, domain.StoreFailure("create site", err)
	}
	return site, nil
}

func (s *siteService) ListSites(ctx context.Context) ([]domain.Site, error) {
	sites, err := s.repo.ListSites(ctx)
	if err != nil {
		return nil, domain.StoreFailure("list sites", err)
	}
	return sites, nil
}
