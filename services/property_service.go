package services

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"pgstay-backend/models"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

const listingCacheTTL = 5 * time.Minute

// PropertyService serves the catalog reads and the admin property CRUD.
// Cache is optional: a nil redis client disables it.
type PropertyService struct {
	DB    *gorm.DB
	Cache *redis.Client
}

func NewPropertyService(db *gorm.DB, cache *redis.Client) *PropertyService {
	return &PropertyService{DB: db, Cache: cache}
}

// PropertyFilter narrows the public listing.
type PropertyFilter struct {
	City          string
	Area          string
	OnlyAvailable bool
}

func listingCacheKey(f PropertyFilter) string {
	raw := fmt.Sprintf("city=%s|area=%s|avail=%t", f.City, f.Area, f.OnlyAvailable)
	sum := sha256.Sum256([]byte(raw))
	return "properties:" + hex.EncodeToString(sum[:])
}

// ListProperties returns the catalog, cached per filter.
func (s *PropertyService) ListProperties(ctx context.Context, filter PropertyFilter) ([]models.Property, error) {
	key := listingCacheKey(filter)

	if s.Cache != nil {
		if cached, err := s.Cache.Get(ctx, key).Result(); err == nil {
			var list []models.Property
			if jErr := json.Unmarshal([]byte(cached), &list); jErr == nil {
				return list, nil
			}
		}
	}

	q := s.DB.Preload("Rooms")
	if filter.City != "" {
		q = q.Where("city = ?", filter.City)
	}
	if filter.Area != "" {
		q = q.Where("area = ?", filter.Area)
	}
	if filter.OnlyAvailable {
		q = q.Where("is_available = ?", true)
	}

	var list []models.Property
	if err := q.Order("is_featured DESC, created_at DESC").Find(&list).Error; err != nil {
		return nil, fmt.Errorf("failed to list properties: %w", err)
	}

	if s.Cache != nil {
		if payload, err := json.Marshal(list); err == nil {
			if err := s.Cache.Set(ctx, key, payload, listingCacheTTL).Err(); err != nil {
				log.Printf("warning: failed to cache property listing: %v", err)
			}
		}
	}
	return list, nil
}

// InvalidateListingCache drops every cached listing page. Called on any
// admin write to properties or rooms.
func (s *PropertyService) InvalidateListingCache(ctx context.Context) {
	if s.Cache == nil {
		return
	}
	keys, err := s.Cache.Keys(ctx, "properties:*").Result()
	if err != nil {
		log.Printf("warning: failed to scan listing cache keys: %v", err)
		return
	}
	if len(keys) > 0 {
		if err := s.Cache.Del(ctx, keys...).Err(); err != nil {
			log.Printf("warning: failed to invalidate listing cache: %v", err)
		}
	}
}

// GetProperty loads one property with its rooms.
func (s *PropertyService) GetProperty(id uint) (*models.Property, error) {
	var property models.Property
	if err := s.DB.Preload("Rooms").First(&property, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPropertyNotFound
		}
		return nil, fmt.Errorf("failed to load property: %w", err)
	}
	return &property, nil
}

// CreateProperty inserts a property (admin path).
func (s *PropertyService) CreateProperty(ctx context.Context, property *models.Property) error {
	if property.MonthlyPrice <= 0 {
		return ErrInvalidPrice
	}
	if err := s.DB.Create(property).Error; err != nil {
		return fmt.Errorf("failed to create property: %w", err)
	}
	s.InvalidateListingCache(ctx)
	return nil
}

// UpdateProperty applies a partial update (admin path, last-write-wins).
func (s *PropertyService) UpdateProperty(ctx context.Context, id uint, updates map[string]interface{}) (*models.Property, error) {
	var property models.Property
	if err := s.DB.First(&property, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPropertyNotFound
		}
		return nil, fmt.Errorf("failed to load property: %w", err)
	}
	if err := s.DB.Model(&property).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("failed to update property: %w", err)
	}
	s.InvalidateListingCache(ctx)
	return &property, nil
}

// DeleteProperty soft-deletes a property (admin path).
func (s *PropertyService) DeleteProperty(ctx context.Context, id uint) error {
	res := s.DB.Delete(&models.Property{}, id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete property: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrPropertyNotFound
	}
	s.InvalidateListingCache(ctx)
	return nil
}
