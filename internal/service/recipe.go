package service

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/aprilfamily/cookbook-backend/internal/models"
)

// RecipeFields carries the writable recipe attributes supplied by clients.
type RecipeFields struct {
	Title        string `json:"title" binding:"required"`
	Description  string `json:"description"`
	Ingredients  string `json:"ingredients"`
	Instructions string `json:"instructions"`
	PrepTime     int    `json:"prep_time"`
	CookTime     int    `json:"cook_time"`
	Servings     int    `json:"servings"`
	Category     string `json:"category"`
}

func (f RecipeFields) toModel(authorName string) models.Recipe {
	return models.Recipe{
		Title:        f.Title,
		Description:  f.Description,
		Ingredients:  f.Ingredients,
		Instructions: f.Instructions,
		PrepTime:     f.PrepTime,
		CookTime:     f.CookTime,
		Servings:     f.Servings,
		Category:     f.Category,
		AuthorName:   authorName,
	}
}

// RecipeWithStats is a recipe annotated with its rating aggregates.
type RecipeWithStats struct {
	models.Recipe
	AvgRating   float64 `json:"avgRating"`
	RatingCount int64   `json:"ratingCount"`
}

// RecipeDetail adds the recipe's comments, newest first.
type RecipeDetail struct {
	RecipeWithStats
	Comments []models.Comment `json:"comments"`
}

// RecipeService handles the public recipe operations: browse, search, rate,
// comment, and authenticated direct creation.
type RecipeService struct {
	db *gorm.DB
}

func NewRecipeService(db *gorm.DB) *RecipeService {
	return &RecipeService{db: db}
}

// List returns all recipes newest first, optionally filtered by a
// case-insensitive substring match on title or ingredients. Every recipe is
// annotated with avgRating (0 when unrated) and ratingCount.
func (s *RecipeService) List(ctx context.Context, search string) ([]RecipeWithStats, error) {
	query := s.db.WithContext(ctx)
	if search != "" {
		like := "%" + strings.ToLower(search) + "%"
		query = query.Where("LOWER(title) LIKE ? OR LOWER(ingredients) LIKE ?", like, like)
	}

	var recipes []models.Recipe
	if err := query.Order("created_at DESC, id DESC").Find(&recipes).Error; err != nil {
		return nil, err
	}

	stats, err := s.ratingStats(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]RecipeWithStats, len(recipes))
	for i, r := range recipes {
		out[i] = RecipeWithStats{Recipe: r}
		if agg, ok := stats[r.ID]; ok {
			out[i].AvgRating = agg.Avg
			out[i].RatingCount = agg.Cnt
		}
	}
	return out, nil
}

// Get returns one recipe with its rating aggregates and comments newest
// first. Returns ErrNotFound when the id has no row.
func (s *RecipeService) Get(ctx context.Context, id uint) (*RecipeDetail, error) {
	var recipe models.Recipe
	if err := s.db.WithContext(ctx).First(&recipe, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	var agg ratingAgg
	if err := s.db.WithContext(ctx).Model(&models.Rating{}).
		Select("COALESCE(AVG(rating), 0) AS avg, COUNT(*) AS cnt").
		Where("recipe_id = ?", id).
		Scan(&agg).Error; err != nil {
		return nil, err
	}

	comments := make([]models.Comment, 0)
	if err := s.db.WithContext(ctx).
		Where("recipe_id = ?", id).
		Order("created_at DESC, id DESC").
		Find(&comments).Error; err != nil {
		return nil, err
	}

	return &RecipeDetail{
		RecipeWithStats: RecipeWithStats{
			Recipe:      recipe,
			AvgRating:   agg.Avg,
			RatingCount: agg.Cnt,
		},
		Comments: comments,
	}, nil
}

// Create inserts a recipe directly, bypassing moderation.
func (s *RecipeService) Create(ctx context.Context, fields RecipeFields, authorName string) (uint, error) {
	recipe := fields.toModel(authorName)
	if err := s.db.WithContext(ctx).Create(&recipe).Error; err != nil {
		return 0, err
	}
	return recipe.ID, nil
}

// Rate appends a rating row. Ratings are constrained to 1..5; userName
// defaults to "Anonymous". Repeat ratings from the same name accumulate.
func (s *RecipeService) Rate(ctx context.Context, id uint, rating int, userName string) error {
	if rating < 1 || rating > 5 {
		return ErrInvalidRating
	}
	if userName == "" {
		userName = "Anonymous"
	}
	if err := s.ensureRecipeExists(ctx, id); err != nil {
		return err
	}
	return s.db.WithContext(ctx).Create(&models.Rating{
		RecipeID: id,
		Rating:   rating,
		UserName: userName,
	}).Error
}

// Comment appends a comment row.
func (s *RecipeService) Comment(ctx context.Context, id uint, userName, text string) error {
	if err := s.ensureRecipeExists(ctx, id); err != nil {
		return err
	}
	return s.db.WithContext(ctx).Create(&models.Comment{
		RecipeID: id,
		UserName: userName,
		Comment:  text,
	}).Error
}

// Categories returns the distinct non-empty category values across recipes.
func (s *RecipeService) Categories(ctx context.Context) ([]string, error) {
	categories := make([]string, 0)
	err := s.db.WithContext(ctx).Model(&models.Recipe{}).
		Distinct("category").
		Where("category IS NOT NULL AND category <> ''").
		Order("category").
		Pluck("category", &categories).Error
	if err != nil {
		return nil, err
	}
	return categories, nil
}

type ratingAgg struct {
	RecipeID uint
	Avg      float64
	Cnt      int64
}

func (s *RecipeService) ratingStats(ctx context.Context) (map[uint]ratingAgg, error) {
	var rows []ratingAgg
	err := s.db.WithContext(ctx).Model(&models.Rating{}).
		Select("recipe_id, AVG(rating) AS avg, COUNT(*) AS cnt").
		Group("recipe_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	stats := make(map[uint]ratingAgg, len(rows))
	for _, row := range rows {
		stats[row.RecipeID] = row
	}
	return stats, nil
}

func (s *RecipeService) ensureRecipeExists(ctx context.Context, id uint) error {
	var count int64
	if err := s.db.WithContext(ctx).Model(&models.Recipe{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return ErrNotFound
	}
	return nil
}
