package domain

// Post is a blog entry. BodyMD holds raw Markdown and is never rendered server side.
type Post struct {
	ID          int64  `json:"id"`
	Title       string `json:"title" validate:"required,max=250"`
	PublishDate Date   `json:"publish_date"`
	BodyMD      string `json:"body_md"`
}

type Visit struct {
	ID          int64   `json:"id"`
	VisitorName string  `json:"visitor_name" validate:"required"`
	StartDate   Date    `json:"start_date"`
	EndDate     Date    `json:"end_date"`
	Notes       *string `json:"notes"`
}

// VisitRequirement refers to its visit by id only. The visit is not required to exist.
type VisitRequirement struct {
	ID           int64   `json:"id"`
	VisitID      int64   `json:"visit_id"`
	MealRequest  *string `json:"meal_request"`
	SpecialNotes *string `json:"special_notes"`
}

// PostUpdate replaces every field of an existing post.
type PostUpdate struct {
	Title       string  `json:"title" validate:"required,max=250"`
	PublishDate *Date   `json:"publish_date"`
	BodyMD      *string `json:"body_md" validate:"required"`
}

type VisitInput struct {
	VisitorName string  `json:"visitor_name" validate:"required"`
	StartDate   *Date   `json:"start_date" validate:"required"`
	EndDate     *Date   `json:"end_date" validate:"required"`
	Notes       *string `json:"notes"`
}

type RequirementInput struct {
	VisitID      *int64  `json:"visit_id"`
	MealRequest  *string `json:"meal_request"`
	SpecialNotes *string `json:"special_notes"`
}
