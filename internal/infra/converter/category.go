package converter

import (
	"course-booking/internal/domain/admin"
	"course-booking/internal/domain/category"
	"course-booking/internal/infra/pgstore"
	"course-booking/internal/pkg/pgconv"
	"course-booking/internal/usecase/readmodel"
)

func CategoryToCreateParams(c *category.Category) pgstore.CreateCategoryParams {
	return pgstore.CreateCategoryParams{
		ID:          c.ID(),
		Name:        c.Name(),
		Description: pgconv.StringPtrToPgtype(c.Description()),
		IsActive:    c.IsActive(),
		Order:       int32(c.Order()),
	}
}

func CategoryRMFromRow(row pgstore.Category) readmodel.CategoryRM {
	return readmodel.CategoryRM{
		ID:          row.ID.String(),
		Name:        row.Name,
		Description: pgconv.StringPtrFromPgtype(row.Description),
		IsActive:    row.IsActive,
		Order:       int(row.Order),
	}
}

func AdminFromRow(row pgstore.Admin) *admin.Admin {
	return admin.Reconstruct(
		row.ID,
		row.Email,
		row.PasswordHash,
		row.IsActive,
		pgconv.TimePtrFromPgtype(row.LastLoginAt),
	)
}

func AdminRMFromRow(row pgstore.Admin) readmodel.AdminRM {
	return readmodel.AdminRM{
		ID:          row.ID,
		Email:       row.Email,
		IsActive:    row.IsActive,
		LastLoginAt: pgconv.TimePtrFromPgtype(row.LastLoginAt),
	}
}
