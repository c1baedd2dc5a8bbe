package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

const (
	DefaultCategoryColor = "#6366f1"
	DefaultCategoryIcon  = "tag"
)

type CategoryRepository interface {
	Create(ctx context.Context, category *Category) error
	GetByID(ctx context.Context, id uuid.UUID) (*Category, error)
	// GetAllByUser returns the user's categories ordered by name ascending.
	GetAllByUser(ctx context.Context, userID uuid.UUID) ([]Category, error)
	Update(ctx context.Context, category *Category) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// Category labels transactions and anchors budgets. Name length is
// checked at the request boundary, not here.
type Category struct {
	ID        uuid.UUID  `json:"id"`
	UserID    uuid.UUID  `json:"user_id"`
	Name      string     `json:"name"`
	Color     string     `json:"color"`
	Icon      string     `json:"icon"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at"`
}

func NewCategory(userID uuid.UUID, name, color, icon string) *Category {
	if color == "" {
		color = DefaultCategoryColor
	}
	if icon == "" {
		icon = DefaultCategoryIcon
	}
	return &Category{
		ID:        uuid.New(),
		UserID:    userID,
		Name:      name,
		Color:     color,
		Icon:      icon,
		CreatedAt: time.Now().UTC(),
	}
}

// Update replaces only the provided (non-empty) fields.
func (c *Category) Update(name, color, icon string) {
	if name != "" {
		c.Name = name
	}
	if color != "" {
		c.Color = color
	}
	if icon != "" {
		c.Icon = icon
	}
	now := time.Now().UTC()
	c.UpdatedAt = &now
}
