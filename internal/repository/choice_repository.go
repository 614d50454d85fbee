package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/support-search-api/internal/models"
)

// ChoiceRepository reads the choice lists offered by the search form.
type ChoiceRepository struct {
	db *sqlx.DB
}

// NewChoiceRepository constructs the repository.
func NewChoiceRepository(db *sqlx.DB) *ChoiceRepository {
	return &ChoiceRepository{db: db}
}

// ListProducts returns every product as (slug, title).
func (r *ChoiceRepository) ListProducts(ctx context.Context) ([]models.Product, error) {
	const query = `SELECT slug, title FROM products ORDER BY display_order ASC, title ASC`
	var products []models.Product
	if err := r.db.SelectContext(ctx, &products, query); err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return products, nil
}

// ListTopics returns every topic as (slug, title).
func (r *ChoiceRepository) ListTopics(ctx context.Context) ([]models.Topic, error) {
	const query = `SELECT slug, title FROM topics ORDER BY display_order ASC, title ASC`
	var topics []models.Topic
	if err := r.db.SelectContext(ctx, &topics, query); err != nil {
		return nil, fmt.Errorf("list topics: %w", err)
	}
	return topics, nil
}

// ListForums returns every discussion forum as (id, name).
func (r *ChoiceRepository) ListForums(ctx context.Context) ([]models.Forum, error) {
	const query = `SELECT id, name FROM forums ORDER BY display_order ASC, id ASC`
	var forums []models.Forum
	if err := r.db.SelectContext(ctx, &forums, query); err != nil {
		return nil, fmt.Errorf("list forums: %w", err)
	}
	return forums, nil
}
