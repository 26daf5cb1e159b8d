package http

import (
	"net/http"
	"time"

	"takecost/internal/domain"

	"github.com/gin-gonic/gin"
)

type projectRequest struct {
	Name        string `json:"name" binding:"required,max=255"`
	Description string `json:"description" binding:"max=500"`
	Location    string `json:"location" binding:"max=255"`
	StartDate   string `json:"startDate" binding:"required,datetime=2006-01-02"`
	EndDate     string `json:"endDate" binding:"required,datetime=2006-01-02"`
	Status      string `json:"status" binding:"required,oneof=PLANNED IN_PROGRESS COMPLETED"`
}

func (r projectRequest) toDomain(id int64) domain.Project {
	start, _ := time.Parse(dateLayout, r.StartDate)
	end, _ := time.Parse(dateLayout, r.EndDate)
	return domain.Project{
		ID:          id,
		Name:        r.Name,
		Description: r.Description,
		Location:    r.Location,
		StartDate:   start,
		EndDate:     end,
		Status:      r.Status,
	}
}

type projectResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Location    string `json:"location"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	Status      string `json:"status"`
}

func toProjectResponse(p domain.Project) projectResponse {
	return projectResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Location:    p.Location,
		StartDate:   p.StartDate.Format(dateLayout),
		EndDate:     p.EndDate.Format(dateLayout),
		Status:      p.Status,
	}
}

func (s *Server) handleCreateProject(c *gin.Context) {
	var req projectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}
	created, err := s.projects.Create(c.Request.Context(), req.toDomain(0))
	if err != nil {
		writeDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toProjectResponse(*created))
}

func (s *Server) handleGetProject(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	p, err := s.projects.Get(c.Request.Context(), id)
	if err != nil {
		writeDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, toProjectResponse(*p))
}

func (s *Server) handleUpdateProject(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req projectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}
	updated, err := s.projects.Update(c.Request.Context(), req.toDomain(id))
	if err != nil {
		writeDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, toProjectResponse(*updated))
}

func (s *Server) handleDeleteProject(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := s.projects.Delete(c.Request.Context(), id); err != nil {
		writeDomainError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) handleListProjects(c *gin.Context) {
	page, err := s.projects.List(c.Request.Context(), pageRequest(c))
	if err != nil {
		writeDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, mapPage(page, toProjectResponse))
}

func (s *Server) handleUpcomingProjects(c *gin.Context) {
	projects, err := s.projects.Upcoming(c.Request.Context())
	if err != nil {
		writeDomainError(c, err)
		return
	}
	out := make([]projectResponse, 0, len(projects))
	for _, p := range projects {
		out = append(out, toProjectResponse(p))
	}
	c.JSON(http.StatusOK, out)
}

type estimateResponse struct {
	ProjectID    int64   `json:"projectId"`
	MaterialCost float64 `json:"materialCost"`
	LaborCost    float64 `json:"laborCost"`
	TotalCost    float64 `json:"totalCost"`
}

func (s *Server) handleProjectEstimate(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	e, err := s.projects.Estimate(c.Request.Context(), id)
	if err != nil {
		writeDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, estimateResponse{
		ProjectID:    e.ProjectID,
		MaterialCost: e.MaterialCost,
		LaborCost:    e.LaborCost,
		TotalCost:    e.TotalCost,
	})
}

type breakdownLineResponse struct {
	Kind     string  `json:"kind"`
	Name     string  `json:"name"`
	Quantity float64 `json:"quantity"`
	Rate     float64 `json:"rate"`
	Cost     float64 `json:"cost"`
}

func (s *Server) handleProjectBreakdown(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	lines, err := s.projects.Breakdown(c.Request.Context(), id)
	if err != nil {
		writeDomainError(c, err)
		return
	}
	out := make([]breakdownLineResponse, 0, len(lines))
	for _, l := range lines {
		out = append(out, breakdownLineResponse{
			Kind:     l.Kind,
			Name:     l.Name,
			Quantity: l.Quantity,
			Rate:     l.Rate,
			Cost:     l.Cost,
		})
	}
	c.JSON(http.StatusOK, out)
}

type summaryResponse struct {
	ProjectCount      int64   `json:"projectCount"`
	TotalMaterialCost float64 `json:"totalMaterialCost"`
	TotalLaborCost    float64 `json:"totalLaborCost"`
	TotalCost         float64 `json:"totalCost"`
	AverageCost       float64 `json:"averageCost"`
}

func (s *Server) handleProjectsSummary(c *gin.Context) {
	sum, err := s.projects.Summary(c.Request.Context())
	if err != nil {
		writeDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, summaryResponse{
		ProjectCount:      sum.ProjectCount,
		TotalMaterialCost: sum.TotalMaterialCost,
		TotalLaborCost:    sum.TotalLaborCost,
		TotalCost:         sum.TotalCost,
		AverageCost:       sum.AverageCost,
	})
}
