package http

import (
	"net/http"
	"strconv"

	"takecost/internal/domain"

	"github.com/gin-gonic/gin"
)

const dateLayout = "2006-01-02"

func parseID(c *gin.Context, param string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(param), 10, 64)
	if err != nil || id <= 0 {
		writeError(c, http.StatusBadRequest, "INVALID_ID", "invalid "+param)
		return 0, false
	}
	return id, true
}

func pageRequest(c *gin.Context) domain.PageRequest {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "0"))
	size, _ := strconv.Atoi(c.DefaultQuery("size", "20"))
	return domain.PageRequest{
		Page:  page,
		Size:  size,
		Order: c.DefaultQuery("order", "asc"),
	}.Normalize()
}

func mapPage[T any, R any](p domain.Page[T], convert func(T) R) domain.Page[R] {
	content := make([]R, 0, len(p.Content))
	for _, item := range p.Content {
		content = append(content, convert(item))
	}
	return domain.Page[R]{
		Content:       content,
		Page:          p.Page,
		Size:          p.Size,
		TotalElements: p.TotalElements,
		TotalPages:    p.TotalPages,
	}
}
