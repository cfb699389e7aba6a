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

package middleware

import (
	"context"
	"strconv"
	"strings"

	"github.com/go-atlas/atlas/internal/engine/consts"
	"github.com/go-atlas/atlas/pkg/cache"
	"github.com/go-atlas/atlas/pkg/http"
	"github.com/go-atlas/atlas/pkg/http/jwt"
	"github.com/go-atlas/atlas/pkg/log"
	"github.com/gofiber/fiber/v2"
)

// AuthorizationMiddleware 认证中间件
// 校验 Bearer 令牌并确认 redis 会话仍然有效
// This function is used as the middleware of fiber.
func AuthorizationMiddleware(secretKey string, cache cache.ICache) fiber.Handler {
	return func(c *fiber.Ctx) error {
		aToken := c.Get("Authorization")
		if aToken == "" {
			return http.WithRepMsg(c, http.Unauthorized.Code, http.Unauthorized.Msg)
		}

		parts := strings.SplitN(aToken, " ", 2)
		if !(len(parts) == 2 && parts[0] == "Bearer") {
			return http.WithRepMsg(c, http.Unauthorized.Code, http.Unauthorized.Msg)
		}

		claims, err := jwt.ParseToken(parts[1], secretKey)
		if err != nil {
			log.Debugf("parse token failed: %v", err)
			return http.WithRepMsg(c, http.Unauthorized.Code, http.Unauthorized.Msg)
		}

		// 会话必须仍在 redis 中，登出或过期即失效
		sessionKey := consts.UserTokenKey + strconv.FormatInt(claims.UserId, 10)
		exists, err := cache.Exists(context.Background(), sessionKey).Result()
		if err != nil {
			log.Errorf("redis check session failed: %v", err)
			return http.WithRepMsg(c, http.InternalError.Code, http.InternalError.Msg)
		}
		if exists == 0 {
			return http.WithRepMsg(c, http.Unauthorized.Code, http.Unauthorized.Msg)
		}

		ttl, err := cache.TTL(context.Background(), sessionKey).Result()
		if err != nil {
			log.Errorf("redis check session TTL failed: %v", err)
			return http.WithRepMsg(c, http.InternalError.Code, http.InternalError.Msg)
		}
		if ttl <= 0 {
			return http.WithRepMsg(c, http.Unauthorized.Code, http.Unauthorized.Msg)
		}

		c.Locals(consts.CLAIMS, claims)
		return c.Next()
	}
}
