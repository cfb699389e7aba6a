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
	"github.com/go-atlas/atlas/internal/engine/consts"
	"github.com/go-atlas/atlas/internal/engine/service"
	"github.com/go-atlas/atlas/pkg/http"
	"github.com/go-atlas/atlas/pkg/http/jwt"
	"github.com/go-atlas/atlas/pkg/log"
	"github.com/gofiber/fiber/v2"
)

// RequirePerm 权限门禁，请求人缺少权限标识时拒绝
func RequirePerm(authSvc *service.AuthService, perm string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims, ok := c.Locals(consts.CLAIMS).(*jwt.AuthClaims)
		if !ok || claims == nil {
			return http.WithRepMsg(c, http.Unauthorized.Code, http.Unauthorized.Msg)
		}

		decision, err := authSvc.CheckPerm(claims.UserId, perm)
		if err != nil {
			log.Errorw("permission check failed", "userId", claims.UserId, "perm", perm, "error", err)
			return http.WithRepMsg(c, http.InternalError.Code, http.InternalError.Msg)
		}
		if !decision.Allowed {
			return denied(c, decision)
		}
		return c.Next()
	}
}

// RequireRole 角色门禁，请求人未持有角色标识时拒绝
func RequireRole(authSvc *service.AuthService, roleKey string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims, ok := c.Locals(consts.CLAIMS).(*jwt.AuthClaims)
		if !ok || claims == nil {
			return http.WithRepMsg(c, http.Unauthorized.Code, http.Unauthorized.Msg)
		}

		decision, err := authSvc.CheckRole(claims.UserId, roleKey)
		if err != nil {
			log.Errorw("role check failed", "userId", claims.UserId, "roleKey", roleKey, "error", err)
			return http.WithRepMsg(c, http.InternalError.Code, http.InternalError.Msg)
		}
		if !decision.Allowed {
			return denied(c, decision)
		}
		return c.Next()
	}
}

func denied(c *fiber.Ctx, decision service.Decision) error {
	if decision.Reason == service.ReasonAccountDisabled {
		return http.WithRepMsg(c, http.AccountDisabled.Code, http.AccountDisabled.Msg)
	}
	return http.WithRepMsg(c, http.PermissionDenied.Code, http.PermissionDenied.Msg)
}
