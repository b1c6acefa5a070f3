package service

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"gorm.io/gorm"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// PageResult is one page of a listing
type PageResult[T any] struct {
	Items    []T   `json:"items"`
	Total    int64 `json:"total"`
	Page     int   `json:"page"`
	PageSize int   `json:"page_size"`
}

// Pagination normalizes page/page_size into limit and offset
func Pagination(page, pageSize int) (limit, offset, normPage int) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}
	return pageSize, (page - 1) * pageSize, page
}

// normalizeEmail trims and lowercases an email address
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// translate maps a repository error onto the given not-found sentinel, or wraps it with op
func translate(err error, notFound error, op string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return notFound
	}
	return fmt.Errorf("%s: %w", op, err)
}

// roundMoney rounds to paise
func roundMoney(v float64) float64 {
	return math.Round(v*100) / 100
}

// isDuplicate reports a unique constraint violation
func isDuplicate(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey)
}
