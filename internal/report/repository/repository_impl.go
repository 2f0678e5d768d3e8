package repository

import (
	"context"
	"fmt"

	"github.com/alsopranab/restaurant-analytics/internal/report/domain"
	"gorm.io/gorm"
)

type repo struct {
	db *gorm.DB
}

func Provide(db *gorm.DB) domain.Repository {
	return &repo{db: db}
}

func (r *repo) Ping(ctx context.Context) error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrSourceUnavailable, err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrSourceUnavailable, err)
	}
	return nil
}

func (r *repo) FetchOrderLines(ctx context.Context) ([]domain.OrderLine, error) {
	var lines []domain.OrderLine
	err := r.db.WithContext(ctx).Raw(
		`SELECT order_details_id, order_id, order_date, order_time, item_id
		 FROM order_details
		 ORDER BY order_details_id`,
	).Scan(&lines).Error
	if err != nil {
		return nil, fmt.Errorf("%w: order_details: %v", domain.ErrQuery, err)
	}
	return lines, nil
}

func (r *repo) FetchMenuItems(ctx context.Context) ([]domain.MenuItem, error) {
	var items []domain.MenuItem
	err := r.db.WithContext(ctx).Raw(
		`SELECT menu_item_id, item_name, category, price
		 FROM menu_items
		 ORDER BY menu_item_id`,
	).Scan(&items).Error
	if err != nil {
		return nil, fmt.Errorf("%w: menu_items: %v", domain.ErrQuery, err)
	}
	return items, nil
}
