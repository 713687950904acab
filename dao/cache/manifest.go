package cache

import (
	"Shotshelf/config"
	"Shotshelf/types"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// ErrManifestMiss 缓存中没有该 file key 的清单
var ErrManifestMiss = errors.New("manifest not cached")

type ManifestStorage struct {
	redis *redis.Client
	ttl   time.Duration
}

func NewManifestStorage(rds *redis.Client, conf *config.Categorize) *ManifestStorage {
	return &ManifestStorage{redis: rds, ttl: conf.ManifestTTL}
}

// Set 缓存导出清单
// @params manifest 导出清单，key 取 manifest.FileKey
func (m *ManifestStorage) Set(ctx context.Context, manifest *types.ExportManifest) error {
	b, err := json.Marshal(manifest)
	if err != nil {
		return err
	}
	return m.redis.Set(ctx, m.name(manifest.FileKey), b, m.ttl).Err()
}

// Get 未命中返回 ErrManifestMiss
func (m *ManifestStorage) Get(ctx context.Context, fileKey string) (*types.ExportManifest, error) {
	b, err := m.redis.Get(ctx, m.name(fileKey)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrManifestMiss
	}
	if err != nil {
		return nil, err
	}

	var manifest types.ExportManifest
	if err := json.Unmarshal(b, &manifest); err != nil {
		return nil, err
	}
	return &manifest, nil
}

func (m *ManifestStorage) Del(ctx context.Context, fileKey string) error {
	return m.redis.Del(ctx, m.name(fileKey)).Err()
}

func (m *ManifestStorage) name(fileKey string) string {
	return fmt.Sprintf("export:manifest:%s", fileKey)
}
