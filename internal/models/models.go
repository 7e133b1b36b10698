package models

import "time"

// PendingRecipe status values. The transition is one-way: a pending row is
// either published or deleted, never moved back.
const (
	StatusPending   = "pending"
	StatusPublished = "published"
)

// User is an account that can log in and moderate submissions. Accounts are
// created only by the seed bootstrap; there is no registration endpoint.
type User struct {
	ID           uint   `gorm:"primarykey" json:"id"`
	Username     string `gorm:"uniqueIndex;not null" json:"username"`
	PasswordHash string `gorm:"not null" json:"-"`
	Name         string `gorm:"not null" json:"name"`
}

// Recipe is a published, publicly visible recipe. AuthorName is a denormalized
// copy of the publishing session's display name, not a foreign key.
type Recipe struct {
	ID           uint      `gorm:"primarykey" json:"id"`
	Title        string    `gorm:"not null" json:"title"`
	Description  string    `gorm:"type:text" json:"description"`
	Ingredients  string    `gorm:"type:text" json:"ingredients"`
	Instructions string    `gorm:"type:text" json:"instructions"`
	PrepTime     int       `json:"prep_time"`
	CookTime     int       `json:"cook_time"`
	Servings     int       `json:"servings"`
	Category     string    `json:"category"`
	AuthorName   string    `json:"author_name"`
	CreatedAt    time.Time `json:"created_at"`
}

// PendingRecipe is an uploaded document awaiting moderator review.
type PendingRecipe struct {
	ID            uint      `gorm:"primarykey" json:"id"`
	Title         string    `json:"title"`
	RawText       string    `gorm:"type:text" json:"raw_text"`
	FileName      string    `json:"file_name"`
	SubmitterName string    `json:"submitter_name"`
	Status        string    `gorm:"default:pending;index" json:"status"`
	CreatedAt     time.Time `json:"created_at"`
}

// Rating is append-only; repeat ratings from the same name accumulate.
type Rating struct {
	ID       uint   `gorm:"primarykey" json:"id"`
	RecipeID uint   `gorm:"index;not null" json:"recipe_id"`
	Rating   int    `gorm:"not null" json:"rating"`
	UserName string `json:"user_name"`
}

// Comment is append-only.
type Comment struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	RecipeID  uint      `gorm:"index;not null" json:"recipe_id"`
	UserName  string    `json:"user_name"`
	Comment   string    `gorm:"type:text" json:"comment"`
	CreatedAt time.Time `json:"created_at"`
}
