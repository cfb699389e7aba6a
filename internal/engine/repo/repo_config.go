// Copyright 2025 Atlas Team
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package repo

import (
	"context"

	"github.com/go-atlas/atlas/internal/engine/consts"
	"github.com/go-atlas/atlas/internal/engine/model"
	"github.com/go-atlas/atlas/pkg/cache"
	"github.com/go-atlas/atlas/pkg/database"
	"github.com/go-atlas/atlas/pkg/log"
)

type IConfigRepository interface {
	CreateConfig(config *model.Config) error
	GetConfigById(configId int64) (*model.Config, error)
	GetValueByKey(ctx context.Context, configKey string) (string, error)
	ListConfigs(query *model.ConfigQuery) ([]model.Config, int64, error)
	UpdateConfig(configId int64, updates map[string]any) error
	DeleteConfigs(configIds []int64) error
	CheckConfigKeyUnique(configKey string, excludeConfigId int64) (bool, error)
	RefreshCache(ctx context.Context) error
}

type ConfigRepo struct {
	database.IDatabase
	cache cache.ICache
}

func NewConfigRepo(db database.IDatabase, cache cache.ICache) IConfigRepository {
	return &ConfigRepo{
		IDatabase: db,
		cache:     cache,
	}
}

// CreateConfig 创建参数配置
func (r *ConfigRepo) CreateConfig(config *model.Config) error {
	return r.Database().Create(config).Error
}

func (r *ConfigRepo) GetConfigById(configId int64) (*model.Config, error) {
	var config model.Config
	if err := r.Database().Where("config_id = ?", configId).First(&config).Error; err != nil {
		return nil, err
	}
	return &config, nil
}

// GetValueByKey 按键取参数值，优先读缓存，未命中回源并写缓存
func (r *ConfigRepo) GetValueByKey(ctx context.Context, configKey string) (string, error) {
	cacheKey := consts.ConfigKey + configKey
	if val, err := r.cache.Get(ctx, cacheKey).Result(); err == nil {
		return val, nil
	}

	var config model.Config
	if err := r.Database().Where("config_key = ?", configKey).First(&config).Error; err != nil {
		return "", err
	}
	if err := r.cache.Set(ctx, cacheKey, config.ConfigValue, 0).Err(); err != nil {
		log.Warnf("cache config %s failed: %v", configKey, err)
	}
	return config.ConfigValue, nil
}

// ListConfigs 参数列表（支持分页）
func (r *ConfigRepo) ListConfigs(query *model.ConfigQuery) ([]model.Config, int64, error) {
	tx := r.Database().Model(&model.Config{})
	if query.ConfigName != "" {
		tx = tx.Where("config_name LIKE ?", "%"+query.ConfigName+"%")
	}
	if query.ConfigKey != "" {
		tx = tx.Where("config_key LIKE ?", "%"+query.ConfigKey+"%")
	}
	if query.ConfigType != "" {
		tx = tx.Where("config_type = ?", query.ConfigType)
	}

	count, err := Count(tx)
	if err != nil {
		return nil, 0, err
	}

	var configs []model.Config
	if err := paginate(tx, query.PageNum, query.PageSize).
		Order("config_id ASC").Find(&configs).Error; err != nil {
		return nil, 0, err
	}
	return configs, count, nil
}

// UpdateConfig 更新参数并失效对应缓存
func (r *ConfigRepo) UpdateConfig(configId int64, updates map[string]any) error {
	old, err := r.GetConfigById(configId)
	if err != nil {
		return err
	}
	if err := r.Database().Model(&model.Config{}).Where("config_id = ?", configId).Updates(updates).Error; err != nil {
		return err
	}
	r.cache.Del(context.Background(), consts.ConfigKey+old.ConfigKey)
	return nil
}

// DeleteConfigs 批量删除参数并失效缓存
func (r *ConfigRepo) DeleteConfigs(configIds []int64) error {
	var configs []model.Config
	if err := r.Database().Where("config_id IN ?", configIds).Find(&configs).Error; err != nil {
		return err
	}
	if err := r.Database().Where("config_id IN ?", configIds).Delete(&model.Config{}).Error; err != nil {
		return err
	}
	for _, c := range configs {
		r.cache.Del(context.Background(), consts.ConfigKey+c.ConfigKey)
	}
	return nil
}

// CheckConfigKeyUnique 校验参数键名唯一性
func (r *ConfigRepo) CheckConfigKeyUnique(configKey string, excludeConfigId int64) (bool, error) {
	tx := r.Database().Model(&model.Config{}).Where("config_key = ?", configKey)
	if excludeConfigId != 0 {
		tx = tx.Where("config_id <> ?", excludeConfigId)
	}
	count, err := Count(tx)
	if err != nil {
		return false, err
	}
	return count == 0, nil
}

// RefreshCache 清空全部参数缓存
func (r *ConfigRepo) RefreshCache(ctx context.Context) error {
	keys, err := r.cache.Keys(ctx, consts.ConfigKey+"*").Result()
	if err != nil {
		return err
	}
	if len(keys) == 0 {
		return nil
	}
	return r.cache.Del(ctx, keys...).Err()
}
