package ctx

import (
	"context"

	"github.com/go-atlas/atlas/pkg/cache"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Context 全局上下文，聚合数据库、缓存与日志实例
type Context struct {
	DB    *gorm.DB
	Redis *redis.Client
	Cache cache.ICache
	Ctx   context.Context
	Log   *zap.SugaredLogger
}

func NewContext(ctx context.Context, db *gorm.DB, rdb *redis.Client, cache cache.ICache, log *zap.SugaredLogger) *Context {
	return &Context{
		DB:    db,
		Redis: rdb,
		Cache: cache,
		Ctx:   ctx,
		Log:   log,
	}
}

func (c *Context) GetCtx() context.Context {
	return c.Ctx
}
