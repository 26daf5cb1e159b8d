package http

import (
	"net/http"

	"takecost/internal/domain"

	"github.com/gin-gonic/gin"
)

type projectMaterialRequest struct {
	MaterialID int64   `json:"materialId" binding:"required,gt=0"`
	Quantity   float64 `json:"quantity" binding:"required,gt=0"`
	UnitPrice  float64 `json:"unitPrice" binding:"gte=0"`
	Notes      string  `json:"notes" binding:"max=500"`
}

type projectMaterialResponse struct {
	ID         int64   `json:"id"`
	ProjectID  int64   `json:"projectId"`
	MaterialID int64   `json:"materialId"`
	Quantity   float64 `json:"quantity"`
	UnitPrice  float64 `json:"unitPrice"`
	Notes      string  `json:"notes"`
}

func toProjectMaterialResponse(pm domain.ProjectMaterial) projectMaterialResponse {
	return projectMaterialResponse{
		ID:         pm.ID,
		ProjectID:  pm.ProjectID,
		MaterialID: pm.MaterialID,
		Quantity:   pm.Quantity,
		UnitPrice:  pm.UnitPrice,
		Notes:      pm.Notes,
	}
}

func (s *Server) handleAddProjectMaterial(c *gin.Context) {
	projectID, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req projectMaterialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}
	created, err := s.projectMaterials.Create(c.Request.Context(), domain.ProjectMaterial{
		ProjectID:  projectID,
		MaterialID: req.MaterialID,
		Quantity:   req.Quantity,
		UnitPrice:  req.UnitPrice,
		Notes:      req.Notes,
	})
	if err != nil {
		writeDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toProjectMaterialResponse(*created))
}

func (s *Server) handleListProjectMaterials(c *gin.Context) {
	projectID, ok := parseID(c, "id")
	if !ok {
		return
	}
	items, err := s.projectMaterials.ListByProject(c.Request.Context(), projectID)
	if err != nil {
		writeDomainError(c, err)
		return
	}
	out := make([]projectMaterialResponse, 0, len(items))
	for _, pm := range items {
		out = append(out, toProjectMaterialResponse(pm))
	}
	c.JSON(http.StatusOK, out)
}

func (s *Server) handleUpdateProjectMaterial(c *gin.Context) {
	projectID, ok := parseID(c, "id")
	if !ok {
		return
	}
	itemID, ok := parseID(c, "itemID")
	if !ok {
		return
	}
	var req projectMaterialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}
	updated, err := s.projectMaterials.Update(c.Request.Context(), domain.ProjectMaterial{
		ID:         itemID,
		ProjectID:  projectID,
		MaterialID: req.MaterialID,
		Quantity:   req.Quantity,
		UnitPrice:  req.UnitPrice,
		Notes:      req.Notes,
	})
	if err != nil {
		writeDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, toProjectMaterialResponse(*updated))
}

func (s *Server) handleDeleteProjectMaterial(c *gin.Context) {
	projectID, ok := parseID(c, "id")
	if !ok {
		return
	}
	itemID, ok := parseID(c, "itemID")
	if !ok {
		return
	}
	if err := s.projectMaterials.Delete(c.Request.Context(), projectID, itemID); err != nil {
		writeDomainError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

type projectLaborRequest struct {
	LaborCategoryID int64   `json:"laborCategoryId" binding:"required,gt=0"`
	HourlyRate      float64 `json:"hourlyRate" binding:"gte=0"`
	EstimatedHours  float64 `json:"estimatedHours" binding:"required,gt=0"`
}

type projectLaborResponse struct {
	ID              int64   `json:"id"`
	ProjectID       int64   `json:"projectId"`
	LaborCategoryID int64   `json:"laborCategoryId"`
	HourlyRate      float64 `json:"hourlyRate"`
	EstimatedHours  float64 `json:"estimatedHours"`
}

func toProjectLaborResponse(pl domain.ProjectLabor) projectLaborResponse {
	return projectLaborResponse{
		ID:              pl.ID,
		ProjectID:       pl.ProjectID,
		LaborCategoryID: pl.LaborCategoryID,
		HourlyRate:      pl.HourlyRate,
		EstimatedHours:  pl.EstimatedHours,
	}
}

func (s *Server) handleAddProjectLabor(c *gin.Context) {
	projectID, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req projectLaborRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}
	created, err := s.projectLabor.Create(c.Request.Context(), domain.ProjectLabor{
		ProjectID:       projectID,
		LaborCategoryID: req.LaborCategoryID,
		HourlyRate:      req.HourlyRate,
		EstimatedHours:  req.EstimatedHours,
	})
	if err != nil {
		writeDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toProjectLaborResponse(*created))
}

func (s *Server) handleListProjectLabor(c *gin.Context) {
	projectID, ok := parseID(c, "id")
	if !ok {
		return
	}
	items, err := s.projectLabor.ListByProject(c.Request.Context(), projectID)
	if err != nil {
		writeDomainError(c, err)
		return
	}
	out := make([]projectLaborResponse, 0, len(items))
	for _, pl := range items {
		out = append(out, toProjectLaborResponse(pl))
	}
	c.JSON(http.StatusOK, out)
}

func (s *Server) handleUpdateProjectLabor(c *gin.Context) {
	projectID, ok := parseID(c, "id")
	if !ok {
		return
	}
	itemID, ok := parseID(c, "itemID")
	if !ok {
		return
	}
	var req projectLaborRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}
	updated, err := s.projectLabor.Update(c.Request.Context(), domain.ProjectLabor{
		ID:              itemID,
		ProjectID:       projectID,
		LaborCategoryID: req.LaborCategoryID,
		HourlyRate:      req.HourlyRate,
		EstimatedHours:  req.EstimatedHours,
	})
	if err != nil {
		writeDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, toProjectLaborResponse(*updated))
}

func (s *Server) handleDeleteProjectLabor(c *gin.Context) {
	projectID, ok := parseID(c, "id")
	if !ok {
		return
	}
	itemID, ok := parseID(c, "itemID")
	if !ok {
		return
	}
	if err := s.projectLabor.Delete(c.Request.Context(), projectID, itemID); err != nil {
		writeDomainError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
