package entity

import "time"

// Blog is a post authored by exactly one user. AuthorID is fixed at creation.
type Blog struct {
	ID               int64
	AuthorID         int64
	Title            string
	ChiefDescription string
	Content          string
	CreatedAt        time.Time
	ModifiedAt       *time.Time

	// AuthorUsername is populated by read queries that join the author.
	AuthorUsername string
}

// BlogPatch carries the fields of a partial update. Nil fields are left unchanged.
type BlogPatch struct {
	Title            *string
	ChiefDescription *string
	Content          *string
}

// IsEmpty reports whether the patch changes nothing.
func (p BlogPatch) IsEmpty() bool {
	return p.Title == nil && p.ChiefDescription == nil && p.Content == nil
}

// Apply copies the set fields of the patch onto the blog.
func (p BlogPatch) Apply(blog *Blog) {
	if p.Title != nil {
		blog.Title = *p.Title
	}
	if p.ChiefDescription != nil {
		blog.ChiefDescription = *p.ChiefDescription
	}
	if p.Content != nil {
		blog.Content = *p.Content
	}
}
