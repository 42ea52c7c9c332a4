package converter

import (
	"encoding/json"

	"course-booking/internal/domain/course"
	"course-booking/internal/infra/pgstore"
	"course-booking/internal/pkg/errs"
	"course-booking/internal/pkg/pgconv"
	"course-booking/internal/usecase/readmodel"
)

func SchedulesToJSON(schedules []course.Schedule) ([]byte, error) {
	docs := make([]pgstore.ScheduleDoc, 0, len(schedules))
	for _, s := range schedules {
		docs = append(docs, pgstore.ScheduleDoc{
			ID:            s.ID(),
			DateTime:      s.DateTime(),
			EndTime:       s.EndTime(),
			Capacity:      s.Capacity(),
			PCRentalSlots: s.PCRentalSlots(),
		})
	}
	return json.Marshal(docs)
}

func scheduleDocs(raw []byte) ([]pgstore.ScheduleDoc, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	var docs []pgstore.ScheduleDoc
	if err := json.Unmarshal(raw, &docs); err != nil {
		return nil, errs.Wrap(err, "decode schedules")
	}
	return docs, nil
}

func CourseToCreateParams(c *course.Course) (pgstore.CreateCourseParams, error) {
	schedules, err := SchedulesToJSON(c.Schedules())
	if err != nil {
		return pgstore.CreateCourseParams{}, err
	}
	return pgstore.CreateCourseParams{
		ID:          c.ID(),
		Title:       c.Title(),
		Description: c.Description(),
		Category:    pgconv.StringPtrToPgtype(c.Category()),
		IsActive:    c.IsActive(),
		Schedules:   schedules,
		CreatedAt:   pgconv.TimeToPgtype(c.CreatedAt()),
		UpdatedAt:   pgconv.TimeToPgtype(c.UpdatedAt()),
	}, nil
}

func CourseToUpdateParams(c *course.Course) (pgstore.UpdateCourseParams, error) {
	schedules, err := SchedulesToJSON(c.Schedules())
	if err != nil {
		return pgstore.UpdateCourseParams{}, err
	}
	return pgstore.UpdateCourseParams{
		ID:          c.ID(),
		Title:       c.Title(),
		Description: c.Description(),
		Category:    pgconv.StringPtrToPgtype(c.Category()),
		IsActive:    c.IsActive(),
		Schedules:   schedules,
		UpdatedAt:   pgconv.TimeToPgtype(c.UpdatedAt()),
	}, nil
}

func CourseFromRow(row pgstore.Course) (*course.Course, error) {
	docs, err := scheduleDocs(row.Schedules)
	if err != nil {
		return nil, err
	}
	schedules := make([]course.Schedule, 0, len(docs))
	for _, d := range docs {
		schedules = append(schedules, course.ReconstructSchedule(course.ScheduleInput{
			ID:            d.ID,
			DateTime:      d.DateTime,
			EndTime:       d.EndTime,
			Capacity:      d.Capacity,
			PCRentalSlots: d.PCRentalSlots,
		}))
	}
	return course.Reconstruct(
		row.ID,
		row.Title,
		row.Description,
		pgconv.StringPtrFromPgtype(row.Category),
		row.IsActive,
		schedules,
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}

func CourseRMFromRow(row pgstore.Course) (readmodel.CourseRM, error) {
	docs, err := scheduleDocs(row.Schedules)
	if err != nil {
		return readmodel.CourseRM{}, err
	}
	schedules := make([]readmodel.ScheduleRM, 0, len(docs))
	for _, d := range docs {
		schedules = append(schedules, readmodel.ScheduleRM(d))
	}
	return readmodel.CourseRM{
		ID:          row.ID,
		Title:       row.Title,
		Description: row.Description,
		Category:    pgconv.StringPtrFromPgtype(row.Category),
		IsActive:    row.IsActive,
		Schedules:   schedules,
		CreatedAt:   pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:   pgconv.TimeFromPgtype(row.UpdatedAt),
	}, nil
}
