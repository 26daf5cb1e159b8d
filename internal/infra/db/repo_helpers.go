package db

import (
	"context"
	"errors"

	"takecost/internal/domain"

	"gorm.io/gorm"
)

var errDBUnavailable = errors.New("db unavailable")

func orderClause(req domain.PageRequest) string {
	if req.Order == "desc" {
		return "name desc"
	}
	return "name asc"
}

func mapNotFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.ErrNotFound
	}
	return err
}

// listPage runs the count plus offset/limit query every paged listing uses.
func listPage[M any, T any](ctx context.Context, db *gorm.DB, req domain.PageRequest, convert func(M) T) (domain.Page[T], error) {
	req = req.Normalize()
	var total int64
	if err := db.WithContext(ctx).Model(new(M)).Count(&total).Error; err != nil {
		return domain.Page[T]{}, err
	}
	var models []M
	err := db.WithContext(ctx).
		Order(orderClause(req)).
		Offset(req.Page * req.Size).
		Limit(req.Size).
		Find(&models).Error
	if err != nil {
		return domain.Page[T]{}, err
	}
	content := make([]T, 0, len(models))
	for _, m := range models {
		content = append(content, convert(m))
	}
	return domain.NewPage(content, req, total), nil
}
