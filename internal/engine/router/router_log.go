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
	"github.com/go-atlas/atlas/pkg/http"
	"github.com/gofiber/fiber/v2"
)

func (rt *Router) logRouter(r fiber.Router, auth fiber.Handler) {
	operGroup := r.Group("/monitor/operlog", auth)
	{
		operGroup.Get("/", rt.requirePerm("monitor:operlog:list"), rt.listOperLogs)
		operGroup.Delete("/clean", rt.requirePerm("monitor:operlog:remove"), rt.audit("操作日志", model.BusinessTypeCleanAll), rt.cleanOperLogs)
		operGroup.Delete("/:ids", rt.requirePerm("monitor:operlog:remove"), rt.audit("操作日志", model.BusinessTypeDelete), rt.deleteOperLogs)
	}

	loginGroup := r.Group("/monitor/logininfor", auth)
	{
		loginGroup.Get("/", rt.requirePerm("monitor:logininfor:list"), rt.listLoginLogs)
		loginGroup.Delete("/clean", rt.requirePerm("monitor:logininfor:remove"), rt.audit("登录日志", model.BusinessTypeCleanAll), rt.cleanLoginLogs)
		loginGroup.Delete("/:ids", rt.requirePerm("monitor:logininfor:remove"), rt.audit("登录日志", model.BusinessTypeDelete), rt.deleteLoginLogs)
	}
}

func (rt *Router) listOperLogs(c *fiber.Ctx) error {
	query := &model.OperLogQuery{
		PageNum:      queryInt(c, "pageNum"),
		PageSize:     queryInt(c, "pageSize"),
		Title:        c.Query("title"),
		Operator:     c.Query("operName"),
		BusinessType: c.Query("businessType"),
		Status:       c.Query("status"),
		BeginTime:    c.Query("beginTime"),
		EndTime:      c.Query("endTime"),
	}
	logs, total, err := rt.Repos.OperLog.ListOperLogs(query)
	if err != nil {
		return http.WithRepMsg(c, http.Failed.Code, err.Error())
	}
	return http.WithRepRows(c, logs, total)
}

func (rt *Router) deleteOperLogs(c *fiber.Ctx) error {
	ids, err := pathIds(c, "ids")
	if err != nil {
		return http.WithRepMsg(c, http.Failed.Code, "invalid log ids")
	}
	if err := rt.Repos.OperLog.DeleteOperLogs(ids); err != nil {
		return http.WithRepMsg(c, http.Failed.Code, err.Error())
	}
	return http.WithRepNotData(c)
}

func (rt *Router) cleanOperLogs(c *fiber.Ctx) error {
	if err := rt.Repos.OperLog.CleanOperLogs(); err != nil {
		return http.WithRepMsg(c, http.Failed.Code, err.Error())
	}
	return http.WithRepNotData(c)
}

func (rt *Router) listLoginLogs(c *fiber.Ctx) error {
	query := &model.LoginLogQuery{
		PageNum:   queryInt(c, "pageNum"),
		PageSize:  queryInt(c, "pageSize"),
		Username:  c.Query("userName"),
		IpAddr:    c.Query("ipaddr"),
		Status:    c.Query("status"),
		BeginTime: c.Query("beginTime"),
		EndTime:   c.Query("endTime"),
	}
	logs, total, err := rt.Repos.LoginLog.ListLoginLogs(query)
	if err != nil {
		return http.WithRepMsg(c, http.Failed.Code, err.Error())
	}
	return http.WithRepRows(c, logs, total)
}

func (rt *Router) deleteLoginLogs(c *fiber.Ctx) error {
	infoIds, err := pathIds(c, "ids")
	if err != nil {
		return http.WithRepMsg(c, http.Failed.Code, "invalid log ids")
	}
	if err := rt.Repos.LoginLog.DeleteLoginLogs(infoIds); err != nil {
		return http.WithRepMsg(c, http.Failed.Code, err.Error())
	}
	return http.WithRepNotData(c)
}

func (rt *Router) cleanLoginLogs(c *fiber.Ctx) error {
	if err := rt.Repos.LoginLog.CleanLoginLogs(); err != nil {
		return http.WithRepMsg(c, http.Failed.Code, err.Error())
	}
	return http.WithRepNotData(c)
}
