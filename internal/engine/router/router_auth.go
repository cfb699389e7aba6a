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
	"github.com/go-atlas/atlas/internal/engine/model"
	"github.com/go-atlas/atlas/internal/engine/service"
	"github.com/go-atlas/atlas/pkg/http"
	"github.com/go-atlas/atlas/pkg/log"
	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
)

func (rt *Router) authRouter(r fiber.Router, auth fiber.Handler) {
	r.Get("/captcha_image", rt.captchaImage)
	r.Post("/login", rt.login)
	r.Post("/logout", auth, rt.logout)
	r.Get("/get_info", auth, rt.getInfo)
	r.Get("/get_routers", auth, rt.getRouters)
}

// captchaImage 下发验证码，code 与 uuid 配对，三分钟有效
func (rt *Router) captchaImage(c *fiber.Ctx) error {
	uuid, code, err := rt.Services.User.GenerateCaptcha(c.Context())
	if err != nil {
		log.Errorw("failed to generate captcha", "error", err)
		return http.WithRepMsg(c, http.InternalError.Code, http.InternalError.Msg)
	}
	return http.WithRepMap(c, fiber.Map{
		"uuid": uuid,
		"code": code,
	})
}

func (rt *Router) login(c *fiber.Ctx) error {
	var login model.Login
	if err := c.BodyParser(&login); err != nil {
		return http.WithRepMsg(c, http.CredentialsRequired.Code, http.CredentialsRequired.Msg)
	}

	token, err := rt.Services.User.Login(c.Context(), &login, &rt.Http.Auth, loginContext(c))
	if err != nil {
		return loginError(c, err)
	}
	return http.WithRepMap(c, fiber.Map{"token": token})
}

// loginError 登录失败按原因映射错误码
func loginError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, service.ErrCaptchaIncorrect):
		return http.WithRepMsg(c, http.CaptchaIncorrect.Code, http.CaptchaIncorrect.Msg)
	case errors.Is(err, service.ErrCredentialsRequired):
		return http.WithRepMsg(c, http.CredentialsRequired.Code, http.CredentialsRequired.Msg)
	case errors.Is(err, service.ErrBadCredentials):
		return http.WithRepMsg(c, http.BadCredentials.Code, http.BadCredentials.Msg)
	case errors.Is(err, service.ErrAccountDisabled):
		return http.WithRepMsg(c, http.AccountStopped.Code, http.AccountStopped.Msg)
	default:
		log.Errorw("login failed", "error", err)
		return http.WithRepMsg(c, http.InternalError.Code, http.InternalError.Msg)
	}
}

func (rt *Router) logout(c *fiber.Ctx) error {
	claims := currentClaims(c)
	if claims != nil {
		if err := rt.Services.User.Logout(c.Context(), claims.UserId); err != nil {
			log.Warnw("logout failed", "userId", claims.UserId, "error", err)
		}
	}
	return http.WithRepNotData(c)
}

// getInfo 当前用户信息、角色标识与权限标识
func (rt *Router) getInfo(c *fiber.Ctx) error {
	claims := currentClaims(c)
	user, roleKeys, perms, err := rt.Services.User.GetInfo(claims.UserId)
	if err != nil {
		return http.WithRepMsg(c, http.Failed.Code, err.Error())
	}
	return http.WithRepMap(c, fiber.Map{
		"user":        user,
		"roles":       roleKeys,
		"permissions": perms,
	})
}

// getRouters 当前用户的前端路由
func (rt *Router) getRouters(c *fiber.Ctx) error {
	claims := currentClaims(c)
	routers, err := rt.Services.Menu.RoutersForUser(claims.UserId)
	if err != nil {
		return http.WithRepMsg(c, http.Failed.Code, err.Error())
	}
	return http.WithRepJSON(c, routers)
}
