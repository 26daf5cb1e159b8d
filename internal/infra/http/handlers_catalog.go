package http

import (
	"net/http"

	"takecost/internal/domain"

	"github.com/gin-gonic/gin"
)

type vendorRequest struct {
	Name          string `json:"name" binding:"required,max=255"`
	ContactPerson string `json:"contactPerson" binding:"max=255"`
	Email         string `json:"email" binding:"omitempty,email"`
	Phone         string `json:"phone" binding:"max=50"`
	Address       string `json:"address" binding:"max=500"`
}

type vendorResponse struct {
	ID            int64  `json:"id"`
	Name          string `json:"name"`
	ContactPerson string `json:"contactPerson"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	Address       string `json:"address"`
}

func toVendorResponse(v domain.Vendor) vendorResponse {
	return vendorResponse{
		ID:            v.ID,
		Name:          v.Name,
		ContactPerson: v.ContactPerson,
		Email:         v.Email,
		Phone:         v.Phone,
		Address:       v.Address,
	}
}

func (s *Server) handleCreateVendor(c *gin.Context) {
	var req vendorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}
	created, err := s.vendors.Create(c.Request.Context(), domain.Vendor{
		Name:          req.Name,
		ContactPerson: req.ContactPerson,
		Email:         req.Email,
		Phone:         req.Phone,
		Address:       req.Address,
	})
	if err != nil {
		writeDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toVendorResponse(*created))
}

func (s *Server) handleGetVendor(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	v, err := s.vendors.Get(c.Request.Context(), id)
	if err != nil {
		writeDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, toVendorResponse(*v))
}

func (s *Server) handleUpdateVendor(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req vendorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}
	updated, err := s.vendors.Update(c.Request.Context(), domain.Vendor{
		ID:            id,
		Name:          req.Name,
		ContactPerson: req.ContactPerson,
		Email:         req.Email,
		Phone:         req.Phone,
		Address:       req.Address,
	})
	if err != nil {
		writeDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, toVendorResponse(*updated))
}

func (s *Server) handleDeleteVendor(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := s.vendors.Delete(c.Request.Context(), id); err != nil {
		writeDomainError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) handleListVendors(c *gin.Context) {
	page, err := s.vendors.List(c.Request.Context(), pageRequest(c))
	if err != nil {
		writeDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, mapPage(page, toVendorResponse))
}

type materialRequest struct {
	Name         string  `json:"name" binding:"required,max=255"`
	Category     string  `json:"category" binding:"max=100"`
	Subcategory  string  `json:"subcategory" binding:"max=100"`
	UnitType     string  `json:"unitType" binding:"max=50"`
	UnitPrice    float64 `json:"unitPrice" binding:"required,gt=0"`
	StockQty     float64 `json:"stockQty" binding:"gte=0"`
	LeadTimeDays int     `json:"leadTimeDays" binding:"gte=0"`
	VendorID     *int64  `json:"vendorId"`
}

type materialResponse struct {
	ID           int64   `json:"id"`
	Name         string  `json:"name"`
	Category     string  `json:"category"`
	Subcategory  string  `json:"subcategory"`
	UnitType     string  `json:"unitType"`
	UnitPrice    float64 `json:"unitPrice"`
	StockQty     float64 `json:"stockQty"`
	LeadTimeDays int     `json:"leadTimeDays"`
	VendorID     *int64  `json:"vendorId,omitempty"`
}

func toMaterialResponse(m domain.MaterialCatalog) materialResponse {
	return materialResponse{
		ID:           m.ID,
		Name:         m.Name,
		Category:     m.Category,
		Subcategory:  m.Subcategory,
		UnitType:     m.UnitType,
		UnitPrice:    m.UnitPrice,
		StockQty:     m.StockQty,
		LeadTimeDays: m.LeadTimeDays,
		VendorID:     m.VendorID,
	}
}

func (r materialRequest) toDomain(id int64) domain.MaterialCatalog {
	return domain.MaterialCatalog{
		ID:           id,
		Name:         r.Name,
		Category:     r.Category,
		Subcategory:  r.Subcategory,
		UnitType:     r.UnitType,
		UnitPrice:    r.UnitPrice,
		StockQty:     r.StockQty,
		LeadTimeDays: r.LeadTimeDays,
		VendorID:     r.VendorID,
	}
}

func (s *Server) handleCreateMaterial(c *gin.Context) {
	var req materialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}
	created, err := s.materials.Create(c.Request.Context(), req.toDomain(0))
	if err != nil {
		writeDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toMaterialResponse(*created))
}

func (s *Server) handleGetMaterial(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	m, err := s.materials.Get(c.Request.Context(), id)
	if err != nil {
		writeDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, toMaterialResponse(*m))
}

func (s *Server) handleUpdateMaterial(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req materialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}
	updated, err := s.materials.Update(c.Request.Context(), req.toDomain(id))
	if err != nil {
		writeDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, toMaterialResponse(*updated))
}

func (s *Server) handleDeleteMaterial(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := s.materials.Delete(c.Request.Context(), id); err != nil {
		writeDomainError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) handleListMaterials(c *gin.Context) {
	page, err := s.materials.List(c.Request.Context(), pageRequest(c))
	if err != nil {
		writeDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, mapPage(page, toMaterialResponse))
}

type laborCategoryRequest struct {
	Name        string  `json:"name" binding:"required,max=255"`
	Description string  `json:"description" binding:"max=500"`
	HourlyRate  float64 `json:"hourlyRate" binding:"required,gt=0"`
}

type laborCategoryResponse struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	HourlyRate  float64 `json:"hourlyRate"`
}

func toLaborCategoryResponse(l domain.LaborCategory) laborCategoryResponse {
	return laborCategoryResponse{
		ID:          l.ID,
		Name:        l.Name,
		Description: l.Description,
		HourlyRate:  l.HourlyRate,
	}
}

func (s *Server) handleCreateLaborCategory(c *gin.Context) {
	var req laborCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}
	created, err := s.laborCategories.Create(c.Request.Context(), domain.LaborCategory{
		Name:        req.Name,
		Description: req.Description,
		HourlyRate:  req.HourlyRate,
	})
	if err != nil {
		writeDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toLaborCategoryResponse(*created))
}

func (s *Server) handleGetLaborCategory(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	l, err := s.laborCategories.Get(c.Request.Context(), id)
	if err != nil {
		writeDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, toLaborCategoryResponse(*l))
}

func (s *Server) handleUpdateLaborCategory(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req laborCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}
	updated, err := s.laborCategories.Update(c.Request.Context(), domain.LaborCategory{
		ID:          id,
		Name:        req.Name,
		Description: req.Description,
		HourlyRate:  req.HourlyRate,
	})
	if err != nil {
		writeDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, toLaborCategoryResponse(*updated))
}

func (s *Server) handleDeleteLaborCategory(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := s.laborCategories.Delete(c.Request.Context(), id); err != nil {
		writeDomainError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) handleListLaborCategories(c *gin.Context) {
	page, err := s.laborCategories.List(c.Request.Context(), pageRequest(c))
	if err != nil {
		writeDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, mapPage(page, toLaborCategoryResponse))
}
