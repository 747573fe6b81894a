package cache

import "github.com/selivandex/worldmap-intel/pkg/models"

// CompositeKey is the cache key of a full intelligence response
func CompositeKey(code string) string {
	return "intel:composite:" + code
}

// CategoryKey is the cache key of one category payload
func CategoryKey(category models.Category, code string) string {
	return "intel:" + string(category) + ":" + code
}
