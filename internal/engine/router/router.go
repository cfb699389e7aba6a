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

package router

import (
	"strconv"
	"strings"
	"time"

	"github.com/go-atlas/atlas/internal/engine/consts"
	"github.com/go-atlas/atlas/internal/engine/repo"
	"github.com/go-atlas/atlas/internal/engine/service"
	"github.com/go-atlas/atlas/pkg/ctx"
	httpx "github.com/go-atlas/atlas/pkg/http"
	"github.com/go-atlas/atlas/pkg/http/jwt"
	"github.com/go-atlas/atlas/pkg/http/middleware"
	"github.com/gofiber/adaptor/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Router struct {
	Http     *httpx.Http
	Ctx      *ctx.Context
	Repos    *repo.Repositories
	Services *service.Services
}

func NewRouter(httpConf *httpx.Http, appCtx *ctx.Context, repos *repo.Repositories, services *service.Services) *Router {
	return &Router{
		Http:     httpConf,
		Ctx:      appCtx,
		Repos:    repos,
		Services: services,
	}
}

func (rt *Router) Router() *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      "Atlas",
		ReadTimeout:  time.Duration(rt.Http.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(rt.Http.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(rt.Http.IdleTimeout) * time.Second,
	})

	// 中间件
	app.Use(
		middleware.ExceptionMiddleware,
		middleware.CorsMiddleware(),
		middleware.AccessLogMiddleware(rt.Http),
	)

	// 健康检查
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})

	if rt.Http.ExposeMetrics {
		app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))
	}

	if rt.Http.PProf {
		rt.debugRouter(app.Group("/debug/pprof"))
	}

	api := app.Group(rt.Http.ContextPath)
	rt.routerGroup(api)

	return app
}

func (rt *Router) routerGroup(r fiber.Router) {
	auth := middleware.AuthorizationMiddleware(rt.Http.Auth.SecretKey, rt.Ctx.Cache)

	rt.authRouter(r, auth)
	rt.userRouter(r, auth)
	rt.roleRouter(r, auth)
	rt.menuRouter(r, auth)
	rt.deptRouter(r, auth)
	rt.postRouter(r, auth)
	rt.dictRouter(r, auth)
	rt.configRouter(r, auth)
	rt.noticeRouter(r, auth)
	rt.logRouter(r, auth)
}

// requirePerm 权限门禁的路由内简写
func (rt *Router) requirePerm(perm string) fiber.Handler {
	return middleware.RequirePerm(rt.Services.Auth, perm)
}

// audit 审计中间件的路由内简写
func (rt *Router) audit(title, businessType string) fiber.Handler {
	return middleware.Audit(rt.Services.Audit, title, businessType)
}

func currentClaims(c *fiber.Ctx) *jwt.AuthClaims {
	claims, _ := c.Locals(consts.CLAIMS).(*jwt.AuthClaims)
	return claims
}

func queryInt(c *fiber.Ctx, key string) int {
	v, err := strconv.Atoi(c.Query(key))
	if err != nil {
		return 0
	}
	return v
}

func pathId(c *fiber.Ctx, key string) (int64, error) {
	return strconv.ParseInt(c.Params(key), 10, 64)
}

// pathIds 解析逗号分隔的ID列表路径参数
func pathIds(c *fiber.Ctx, key string) ([]int64, error) {
	parts := strings.Split(c.Params(key), ",")
	ids := make([]int64, 0, len(parts))
	for _, part := range parts {
		id, err := strconv.ParseInt(strings.TrimSpace(part), 10, 64)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func loginContext(c *fiber.Ctx) service.LoginContext {
	ua := c.Get("User-Agent")
	return service.LoginContext{
		Ip:      c.IP(),
		Browser: browserFromUA(ua),
		Os:      osFromUA(ua),
	}
}

func browserFromUA(ua string) string {
	switch {
	case strings.Contains(ua, "Edg/"):
		return "Edge"
	case strings.Contains(ua, "Chrome/"):
		return "Chrome"
	case strings.Contains(ua, "Firefox/"):
		return "Firefox"
	case strings.Contains(ua, "Safari/"):
		return "Safari"
	default:
		return "Unknown"
	}
}

func osFromUA(ua string) string {
	switch {
	case strings.Contains(ua, "Windows"):
		return "Windows"
	case strings.Contains(ua, "Mac OS"):
		return "Mac OS"
	case strings.Contains(ua, "Android"):
		return "Android"
	case strings.Contains(ua, "iPhone"), strings.Contains(ua, "iPad"):
		return "iOS"
	case strings.Contains(ua, "Linux"):
		return "Linux"
	default:
		return "Unknown"
	}
}
