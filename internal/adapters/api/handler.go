package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/emrekoca/penmark/internal/core/auth"
	"github.com/emrekoca/penmark/internal/core/domain"
	"github.com/emrekoca/penmark/internal/core/ports"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// APIHandler handles HTTP requests for site, key and article management.
type APIHandler struct {
	sites      ports.SiteService
	keys       ports.KeyService
	articles   ports.ArticleService
	repo       ports.Repository
	cache      ports.ArticleCache // may be nil
	tenantAuth *auth.TenantAuthenticator
	adminAuth  *auth.AdminAuthenticator
}

// NewAPIHandler creates and returns a new APIHandler instance.
func NewAPIHandler(
	sites ports.SiteService,
	keys ports.KeyService,
	articles ports.ArticleService,
	repo ports.Repository,
	cache ports.ArticleCache,
	tenantAuth *auth.TenantAuthenticator,
	adminAuth *auth.AdminAuthenticator,
) *APIHandler {
	return &APIHandler{
		sites:      sites,
		keys:       keys,
		articles:   articles,
		repo:       repo,
		cache:      cache,
		tenantAuth: tenantAuth,
		adminAuth:  adminAuth,
	}
}

// RegisterRoutes registers the API routes with the provided ServeMux.
// Every protected route passes through exactly one guard; tenant article
// routes additionally pass the scope check.
func (h *APIHandler) RegisterRoutes(mux *http.ServeMux) {
	// Public routes
	mux.HandleFunc("GET /health", h.HealthCheck)
	mux.HandleFunc("GET /metrics", h.Metrics)

	// Admin routes
	mux.HandleFunc("POST /api/sites", h.requireAdmin(h.CreateSite))
	mux.HandleFunc("GET /api/sites", h.requireAdmin(h.ListSites))
	mux.HandleFunc("POST /api/sites/{id}/api-keys", h.requireAdmin(h.CreateAPIKey))

	// Tenant routes (scoped by the {site} path segment)
	mux.HandleFunc("GET /api/sites/{site}/articles", h.requireTenant(requireScope(h.ListArticles)))
	mux.HandleFunc("POST /api/sites/{site}/articles", h.requireTenant(requireScope(h.CreateArticle)))
	mux.HandleFunc("GET /api/sites/{site}/articles/{lang}/{slug}", h.requireTenant(requireScope(h.GetArticle)))
}

// Metrics handles Prometheus metrics scraping requests.
func (h *APIHandler) Metrics(w http.ResponseWriter, r *http.Request) {
	promhttp.Handler().ServeHTTP(w, r)
}

// HealthCheck reports database and cache reachability.
func (h *APIHandler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	status := "UP"
	details := make(map[string]string)

	if err := h.repo.Ping(r.Context()); err != nil {
		status = "DEGRADED"
		details["database"] = err.Error()
	} else {
		details["database"] = "OK"
	}

	if h.cache != nil {
		if err := h.cache.Ping(r.Context()); err != nil {
			status = "DEGRADED"
			details["cache"] = err.Error()
		} else {
			details["cache"] = "OK"
		}
	}

	code := http.StatusOK
	if status == "DEGRADED" {
		code = http.StatusServiceUnavailable
	}
	writeJSON(w, code, map[string]any{"status": status, "details": details})
}

type createSiteRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
}

func (h *APIHandler) CreateSite(w http.ResponseWriter, r *http.Request, _ auth.Identity) {
	var req createSiteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, domain.E(domain.KindInvalidInput, "invalid request body"))
		return
	}

	site, err := h.sites.CreateSite(r.Context(), req.Name, req.Description)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, http.StatusCreated, site)
}

func (h *APIHandler) ListSites(w http.ResponseWriter, r *http.Request, _ auth.Identity) {
	sites, err := h.sites.ListSites(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	if sites == nil {
		sites = []domain.Site{}
	}
	writeSuccess(w, http.StatusOK, map[string]any{"sites": sites})
}

type createAPIKeyRequest struct {
	Name      string `json:"name"`
	ExpiresAt string `json:"expiresAt"`
}

func (h *APIHandler) CreateAPIKey(w http.ResponseWriter, r *http.Request, _ auth.Identity) {
	var req createAPIKeyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, domain.E(domain.KindInvalidInput, "invalid request body"))
		return
	}

	issued, err := h.keys.Issue(r.Context(), r.PathValue("id"), req.Name, req.ExpiresAt)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, http.StatusCreated, issued)
}

func (h *APIHandler) ListArticles(w http.ResponseWriter, r *http.Request, id auth.Identity) {
	q := r.URL.Query()
	filter := domain.ArticleFilter{
		SiteID:   id.SiteID,
		Language: domain.Language(q.Get("lang")),
		Status:   domain.ArticleStatus(q.Get("status")),
	}

	var err error
	if filter.Page, err = parseIntParam(q.Get("page"), 1); err != nil {
		writeError(w, domain.E(domain.KindInvalidInput, "page must be a positive integer"))
		return
	}
	if filter.Limit, err = parseIntParam(q.Get("limit"), 20); err != nil {
		writeError(w, domain.E(domain.KindInvalidInput, "limit must be a positive integer"))
		return
	}

	articles, pagination, err := h.articles.ListArticles(r.Context(), filter)
	if err != nil {
		writeError(w, err)
		return
	}
	if articles == nil {
		articles = []domain.ArticleMetadata{}
	}
	writeSuccess(w, http.StatusOK, map[string]any{
		"articles":   articles,
		"pagination": pagination,
	})
}

func (h *APIHandler) GetArticle(w http.ResponseWriter, r *http.Request, id auth.Identity) {
	article, err := h.articles.GetArticle(r.Context(), id.SiteID, domain.Language(r.PathValue("lang")), r.PathValue("slug"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, article)
}

type createArticleRequest struct {
	Language domain.Language      `json:"language"`
	Slug     string               `json:"slug"`
	Title    string               `json:"title"`
	Excerpt  string               `json:"excerpt"`
	Date     string               `json:"date"`
	Status   domain.ArticleStatus `json:"status"`
	Content  string               `json:"content"`
}

func (h *APIHandler) CreateArticle(w http.ResponseWriter, r *http.Request, id auth.Identity) {
	var req createArticleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, domain.E(domain.KindInvalidInput, "invalid request body"))
		return
	}

	article := &domain.Article{
		ArticleMetadata: domain.ArticleMetadata{
			SiteID:   id.SiteID,
			Language: req.Language,
			Slug:     req.Slug,
			Title:    req.Title,
			Excerpt:  req.Excerpt,
			Date:     req.Date,
			Status:   req.Status,
		},
		Content: req.Content,
	}
	if err := h.articles.CreateArticle(r.Context(), article); err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, http.StatusCreated, map[string]string{
		"id":      article.ID,
		"message": "article created successfully",
	})
}

func parseIntParam(value string, fallback int) (int, error) {
	if value == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil || n < 1 {
		return 0, strconv.ErrSyntax
	}
	return n, nil
}
