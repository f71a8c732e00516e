package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"magazine/internal/logger"
	"magazine/internal/metrics"
	"magazine/internal/models"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

const (
	articleCacheKeyPrefix = "article:"
	listingCacheKeyPrefix = "articles:type:"
	allArticlesCacheKey   = "articles:all"
	cacheExpiration       = 30 * time.Minute
)

// ArticleRepository is the content store as the rest of the service sees
// it. Writes go through UpdateFields as plain whole-value updates: no
// version token, no conflict check, last write wins.
type ArticleRepository interface {
	Create(article *models.Article) error
	FindAll() ([]models.Article, error)
	FindByID(id string) (*models.Article, error)
	FindPublishedByType(articleType string, limit int) ([]models.Article, error)
	UpdateFields(id string, fields map[string]interface{}) error
	InvalidateCache(id string) error
	InvalidateListings() error
}

type articleRepository struct {
	db    *gorm.DB
	redis *redis.Client
	ctx   context.Context
}

func getArticleCacheKey(id string) string {
	return articleCacheKeyPrefix + id
}

func getListingCacheKey(articleType string, limit int) string {
	return fmt.Sprintf("%s%s:%d", listingCacheKeyPrefix, articleType, limit)
}

func NewArticleRepository(db *gorm.DB) ArticleRepository {
	return &articleRepository{
		db:    db,
		redis: nil,
		ctx:   context.Background(),
	}
}

func NewCachedArticleRepository(db *gorm.DB, redisClient *redis.Client) ArticleRepository {
	return &articleRepository{
		db:    db,
		redis: redisClient,
		ctx:   context.Background(),
	}
}

func (r *articleRepository) Create(article *models.Article) error {
	if err := r.db.Create(article).Error; err != nil {
		logger.Error("failed to create article", "error", err)
		return err
	}
	_ = r.InvalidateListings()
	return nil
}

// FindAll returns every article, drafts included, newest first. The full
// listing is cached under its own key and dropped with the typed listings.
func (r *articleRepository) FindAll() ([]models.Article, error) {
	if r.redis != nil {
		cachedData, err := r.redis.Get(r.ctx, allArticlesCacheKey).Result()
		if err == nil {
			var articles []models.Article
			if err := json.Unmarshal([]byte(cachedData), &articles); err == nil {
				metrics.ArticleCacheHits.WithLabelValues("hit").Inc()
				return articles, nil
			}
		}
		metrics.ArticleCacheHits.WithLabelValues("miss").Inc()
	}

	var articles []models.Article
	if err := r.db.Order("created_at DESC").Find(&articles).Error; err != nil {
		return nil, err
	}

	if r.redis != nil {
		articlesJSON, err := json.Marshal(articles)
		if err == nil {
			if err := r.redis.Set(r.ctx, allArticlesCacheKey, articlesJSON, cacheExpiration).Err(); err != nil {
				logger.Warn("failed to cache article listing", "error", err)
			}
		}
	}

	return articles, nil
}

func (r *articleRepository) FindByID(id string) (*models.Article, error) {
	if r.redis == nil {
		var article models.Article
		if err := r.db.Where("id = ?", id).First(&article).Error; err != nil {
			return nil, err
		}
		return &article, nil
	}

	cacheKey := getArticleCacheKey(id)
	cachedData, err := r.redis.Get(r.ctx, cacheKey).Result()
	if err == nil {
		var article models.Article
		if err := json.Unmarshal([]byte(cachedData), &article); err == nil {
			metrics.ArticleCacheHits.WithLabelValues("hit").Inc()
			return &article, nil
		}
		logger.Warn("failed to unmarshal cached article", "id", id, "error", err)
	}
	metrics.ArticleCacheHits.WithLabelValues("miss").Inc()

	var article models.Article
	if err := r.db.Where("id = ?", id).First(&article).Error; err != nil {
		return nil, err
	}

	articleJSON, err := json.Marshal(article)
	if err == nil {
		if err := r.redis.Set(r.ctx, cacheKey, articleJSON, cacheExpiration).Err(); err != nil {
			logger.Warn("failed to cache article", "id", id, "error", err)
		}
	}

	return &article, nil
}

// FindPublishedByType returns published articles of one category, newest
// first. A limit of 0 means no limit.
func (r *articleRepository) FindPublishedByType(articleType string, limit int) ([]models.Article, error) {
	if r.redis != nil {
		cacheKey := getListingCacheKey(articleType, limit)
		cachedData, err := r.redis.Get(r.ctx, cacheKey).Result()
		if err == nil {
			var articles []models.Article
			if err := json.Unmarshal([]byte(cachedData), &articles); err == nil {
				metrics.ArticleCacheHits.WithLabelValues("hit").Inc()
				return articles, nil
			}
		}
		metrics.ArticleCacheHits.WithLabelValues("miss").Inc()
	}

	query := r.db.Where("type = ? AND status = ?", articleType, true).
		Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	var articles []models.Article
	if err := query.Find(&articles).Error; err != nil {
		return nil, err
	}

	if r.redis != nil {
		articlesJSON, err := json.Marshal(articles)
		if err == nil {
			cacheKey := getListingCacheKey(articleType, limit)
			if err := r.redis.Set(r.ctx, cacheKey, articlesJSON, cacheExpiration).Err(); err != nil {
				logger.Warn("failed to cache listing", "type", articleType, "error", err)
			}
		}
	}

	return articles, nil
}

// UpdateFields applies a partial update keyed by id. There is no version
// check; whichever update the database processes last determines the final
// record. Detail and listing caches are dropped so readers see the write.
func (r *articleRepository) UpdateFields(id string, fields map[string]interface{}) error {
	if err := r.db.Model(&models.Article{}).Where("id = ?", id).Updates(fields).Error; err != nil {
		return err
	}
	_ = r.InvalidateCache(id)
	_ = r.InvalidateListings()
	return nil
}

func (r *articleRepository) InvalidateCache(id string) error {
	if r.redis == nil {
		return nil
	}
	return r.redis.Del(r.ctx, getArticleCacheKey(id)).Err()
}

// InvalidateListings drops every cached listing projection.
func (r *articleRepository) InvalidateListings() error {
	if r.redis == nil {
		return nil
	}
	keys, err := r.redis.Keys(r.ctx, listingCacheKeyPrefix+"*").Result()
	if err != nil {
		return err
	}
	keys = append(keys, allArticlesCacheKey)
	return r.redis.Del(r.ctx, keys...).Err()
}
