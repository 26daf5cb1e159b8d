// Package http wires the REST surface: authentication, route authorization,
// and the resource handlers.
package http

import (
	"log"

	"takecost/internal/config"
	"takecost/internal/domain"
	"takecost/internal/infra/auth/jwt"
	"takecost/internal/infra/auth/rbac"
	"takecost/internal/infra/db"
	"takecost/internal/infra/ratelimit"
	"takecost/internal/infra/userstore"
	"takecost/internal/usecase"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type Server struct {
	cfg config.Config
	r   *gin.Engine

	users       domain.CredentialStore
	verifier    domain.TokenVerifier
	rules       *rbac.Table
	rateLimiter domain.RateLimiter

	login            *usecase.LoginService
	projects         *usecase.ProjectService
	vendors          *usecase.VendorService
	materials        *usecase.MaterialCatalogService
	laborCategories  *usecase.LaborCategoryService
	projectMaterials *usecase.ProjectMaterialService
	projectLabor     *usecase.ProjectLaborService

	// authInitErr holds a fatal auth setup problem (bad JWT secret). The
	// server is constructed anyway so callers get one error path; Run
	// refuses to start.
	authInitErr error
}

// Deps are the server's collaborators, overridable in tests.
type Deps struct {
	Users       domain.CredentialStore
	Issuer      domain.TokenIssuer
	Verifier    domain.TokenVerifier
	Rules       *rbac.Table
	RateLimiter domain.RateLimiter

	Projects         *usecase.ProjectService
	Vendors          *usecase.VendorService
	Materials        *usecase.MaterialCatalogService
	LaborCategories  *usecase.LaborCategoryService
	ProjectMaterials *usecase.ProjectMaterialService
	ProjectLabor     *usecase.ProjectLaborService
}

func NewServer(cfg config.Config, store *db.Store) *Server {
	deps, err := defaultDeps(cfg, store)
	s := NewServerWithDeps(cfg, deps)
	if s.authInitErr == nil {
		s.authInitErr = err
	}
	return s
}

func NewServerWithDeps(cfg config.Config, deps Deps) *Server {
	s := &Server{
		cfg:              cfg,
		users:            deps.Users,
		verifier:         deps.Verifier,
		rules:            deps.Rules,
		rateLimiter:      deps.RateLimiter,
		projects:         deps.Projects,
		vendors:          deps.Vendors,
		materials:        deps.Materials,
		laborCategories:  deps.LaborCategories,
		projectMaterials: deps.ProjectMaterials,
		projectLabor:     deps.ProjectLabor,
	}
	if deps.Users != nil && deps.Issuer != nil {
		s.login = usecase.NewLoginService(deps.Users, deps.Issuer)
	}
	if s.rules == nil {
		s.rules = rbac.DefaultTable()
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(s.authenticate())
	r.Use(s.authorize())
	s.r = r
	s.registerRoutes()
	return s
}

func defaultDeps(cfg config.Config, store *db.Store) (Deps, error) {
	deps := Deps{Rules: rbac.DefaultTable()}

	users, err := userstore.Demo()
	if err != nil {
		return deps, err
	}
	deps.Users = users

	codec, err := jwt.NewCodec(cfg.JWTSecret, nil)
	if err != nil {
		return deps, err
	}
	deps.Issuer = jwt.NewIssuer(codec, cfg.TokenValidity())
	deps.Verifier = jwt.NewVerifier(codec)

	if cfg.RedisAddr != "" {
		limiter, err := ratelimit.NewRedisLimiter(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB, nil)
		if err != nil {
			log.Printf("redis rate limiter unavailable (%v); falling back to memory", err)
			deps.RateLimiter = ratelimit.NewMemoryLimiter(cfg.LoginRateLimitMaxKeys, nil)
		} else {
			deps.RateLimiter = limiter
		}
	} else {
		deps.RateLimiter = ratelimit.NewMemoryLimiter(cfg.LoginRateLimitMaxKeys, nil)
	}

	var gdb *gorm.DB
	if store != nil {
		gdb = store.DB
	}
	projectRepo := db.NewProjectRepository(gdb)
	vendorRepo := db.NewVendorRepository(gdb)
	materialRepo := db.NewMaterialCatalogRepository(gdb)
	laborRepo := db.NewLaborCategoryRepository(gdb)
	deps.Projects = usecase.NewProjectService(projectRepo)
	deps.Vendors = usecase.NewVendorService(vendorRepo)
	deps.Materials = usecase.NewMaterialCatalogService(materialRepo, vendorRepo)
	deps.LaborCategories = usecase.NewLaborCategoryService(laborRepo)
	deps.ProjectMaterials = usecase.NewProjectMaterialService(db.NewProjectMaterialRepository(gdb), projectRepo, materialRepo)
	deps.ProjectLabor = usecase.NewProjectLaborService(db.NewProjectLaborRepository(gdb), projectRepo, laborRepo)
	return deps, nil
}

func (s *Server) registerRoutes() {
	s.r.GET("/healthz", s.handleHealthz)

	api := s.r.Group("/api/v1")
	api.POST("/auth/login", s.handleLogin)
	api.GET("/auth/me", s.handleMe)

	projects := api.Group("/projects")
	projects.GET("", s.handleListProjects)
	projects.POST("", s.handleCreateProject)
	projects.GET("/summary", s.handleProjectsSummary)
	projects.GET("/upcoming", s.handleUpcomingProjects)
	projects.GET("/:id", s.handleGetProject)
	projects.PUT("/:id", s.handleUpdateProject)
	projects.DELETE("/:id", s.handleDeleteProject)
	projects.GET("/:id/estimate", s.handleProjectEstimate)
	projects.GET("/:id/cost-breakdown", s.handleProjectBreakdown)
	projects.GET("/:id/materials", s.handleListProjectMaterials)
	projects.POST("/:id/materials", s.handleAddProjectMaterial)
	projects.PUT("/:id/materials/:itemID", s.handleUpdateProjectMaterial)
	projects.DELETE("/:id/materials/:itemID", s.handleDeleteProjectMaterial)
	projects.GET("/:id/labor", s.handleListProjectLabor)
	projects.POST("/:id/labor", s.handleAddProjectLabor)
	projects.PUT("/:id/labor/:itemID", s.handleUpdateProjectLabor)
	projects.DELETE("/:id/labor/:itemID", s.handleDeleteProjectLabor)

	vendors := api.Group("/vendors")
	vendors.GET("", s.handleListVendors)
	vendors.POST("", s.handleCreateVendor)
	vendors.GET("/:id", s.handleGetVendor)
	vendors.PUT("/:id", s.handleUpdateVendor)
	vendors.DELETE("/:id", s.handleDeleteVendor)

	materials := api.Group("/materials")
	materials.GET("", s.handleListMaterials)
	materials.POST("", s.handleCreateMaterial)
	materials.GET("/:id", s.handleGetMaterial)
	materials.PUT("/:id", s.handleUpdateMaterial)
	materials.DELETE("/:id", s.handleDeleteMaterial)

	labor := api.Group("/labor-categories")
	labor.GET("", s.handleListLaborCategories)
	labor.POST("", s.handleCreateLaborCategory)
	labor.GET("/:id", s.handleGetLaborCategory)
	labor.PUT("/:id", s.handleUpdateLaborCategory)
	labor.DELETE("/:id", s.handleDeleteLaborCategory)
}

// Handler exposes the engine for tests.
func (s *Server) Handler() *gin.Engine {
	return s.r
}

func (s *Server) Run() error {
	if s.authInitErr != nil {
		return s.authInitErr
	}
	return s.r.Run(s.cfg.HTTPAddr)
}

func (s *Server) handleHealthz(c *gin.Context) {
	c.JSON(200, gin.H{"status": "ok"})
}
