package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"care-scheduler/internal/domain/entity"
	"care-scheduler/internal/domain/repository"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const (
	// Redis key layout for reference data
	redisCategoriesKey     = "reference:categories"
	redisPatientsKey       = "reference:patients:all"
	redisActivePatientsKey = "reference:patients:active"

	// Timeout for individual Redis operations
	redisOpTimeout = 5 * time.Second
)

// ReferenceCache is a Redis read-through cache for the category and patient
// reference data the creation form loads on every open. A cache failure is
// never fatal: reads degrade to PostgreSQL and the result back-fills Redis
// best effort.
type ReferenceCache struct {
	db           *gorm.DB
	redisClient  *redis.Client
	log          *logrus.Logger
	categoryRepo repository.CategoryRepository
	patientRepo  repository.PatientRepository
	ttl          time.Duration
}

func NewReferenceCache(
	db *gorm.DB,
	redisClient *redis.Client,
	log *logrus.Logger,
	categoryRepo repository.CategoryRepository,
	patientRepo repository.PatientRepository,
	ttl time.Duration,
) *ReferenceCache {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &ReferenceCache{
		db:           db,
		redisClient:  redisClient,
		log:          log,
		categoryRepo: categoryRepo,
		patientRepo:  patientRepo,
		ttl:          ttl,
	}
}

// Categories returns all categories, served from Redis when possible.
func (c *ReferenceCache) Categories(ctx context.Context) ([]entity.Category, error) {
	var categories []entity.Category
	if c.readCached(ctx, redisCategoriesKey, &categories) {
		return categories, nil
	}

	categories, err := c.categoryRepo.FindAll(c.db.WithContext(ctx))
	if err != nil {
		return nil, fmt.Errorf("load categories: %w", err)
	}

	c.writeCached(ctx, redisCategoriesKey, categories)
	return categories, nil
}

// Patients returns patients, optionally restricted to active ones, served
// from Redis when possible.
func (c *ReferenceCache) Patients(ctx context.Context, activeOnly bool) ([]entity.Patient, error) {
	key := redisPatientsKey
	if activeOnly {
		key = redisActivePatientsKey
	}

	var patients []entity.Patient
	if c.readCached(ctx, key, &patients) {
		return patients, nil
	}

	patients, err := c.patientRepo.FindAll(c.db.WithContext(ctx), activeOnly)
	if err != nil {
		return nil, fmt.Errorf("load patients: %w", err)
	}

	c.writeCached(ctx, key, patients)
	return patients, nil
}

// Warm primes both reference keys. Called at startup; errors are reported
// but the caller may keep going since reads fall through to the database.
func (c *ReferenceCache) Warm(ctx context.Context) error {
	if err := c.redisClient.Ping(ctx).Err(); err != nil {
		c.log.Warnf("Redis is not available, skipping reference warm-up: %+v", err)
		return fmt.Errorf("redis ping failed: %w", err)
	}

	if _, err := c.Categories(ctx); err != nil {
		return err
	}
	if _, err := c.Patients(ctx, true); err != nil {
		return err
	}
	c.log.Info("Reference data warmed into Redis")
	return nil
}

// readCached reports whether key was present and decoded into dest.
func (c *ReferenceCache) readCached(ctx context.Context, key string, dest interface{}) bool {
	opCtx, cancel := context.WithTimeout(ctx, redisOpTimeout)
	defer cancel()

	payload, err := c.redisClient.Get(opCtx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.log.Warnf("Failed to read %s from Redis: %+v", key, err)
		}
		return false
	}
	if err := json.Unmarshal(payload, dest); err != nil {
		c.log.Warnf("Failed to decode cached %s, dropping key: %+v", key, err)
		c.redisClient.Del(ctx, key)
		return false
	}
	return true
}

func (c *ReferenceCache) writeCached(ctx context.Context, key string, value interface{}) {
	payload, err := json.Marshal(value)
	if err != nil {
		c.log.Warnf("Failed to encode %s for Redis: %+v", key, err)
		return
	}

	opCtx, cancel := context.WithTimeout(ctx, redisOpTimeout)
	defer cancel()

	if err := c.redisClient.Set(opCtx, key, payload, c.ttl).Err(); err != nil {
		c.log.Warnf("Failed to back-fill %s into Redis: %+v", key, err)
	}
}
