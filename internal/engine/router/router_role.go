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

func (rt *Router) roleRouter(r fiber.Router, auth fiber.Handler) {
	roleGroup := r.Group("/system/role", auth)
	{
		roleGroup.Get("/", rt.requirePerm("system:role:list"), rt.listRoles)
		roleGroup.Post("/", rt.requirePerm("system:role:add"), rt.audit("角色管理", model.BusinessTypeCreate), rt.createRole)
		roleGroup.Put("/", rt.requirePerm("system:role:edit"), rt.audit("角色管理", model.BusinessTypeUpdate), rt.updateRole)
		roleGroup.Put("/change_status", rt.requirePerm("system:role:edit"), rt.audit("角色管理", model.BusinessTypeUpdate), rt.changeRoleStatus)
		roleGroup.Put("/data_scope", rt.requirePerm("system:role:edit"), rt.audit("角色管理", model.BusinessTypeGrant), rt.dataScope)
		roleGroup.Get("/auth_user/allocated_list", rt.requirePerm("system:role:list"), rt.allocatedList)
		roleGroup.Get("/auth_user/unallocated_list", rt.requirePerm("system:role:list"), rt.unallocatedList)
		roleGroup.Put("/auth_user/cancel", rt.requirePerm("system:role:edit"), rt.audit("角色管理", model.BusinessTypeGrant), rt.cancelAuthUser)
		roleGroup.Put("/auth_user/cancel_all", rt.requirePerm("system:role:edit"), rt.audit("角色管理", model.BusinessTypeGrant), rt.cancelAuthUserAll)
		roleGroup.Put("/auth_user/select_all", rt.requirePerm("system:role:edit"), rt.audit("角色管理", model.BusinessTypeGrant), rt.selectAuthUserAll)
		roleGroup.Get("/:ids", rt.requirePerm("system:role:query"), rt.getRole)
		roleGroup.Delete("/:ids", rt.requirePerm("system:role:remove"), rt.audit("角色管理", model.BusinessTypeDelete), rt.deleteRoles)
	}
}

func (rt *Router) listRoles(c *fiber.Ctx) error {
	query := &model.RoleQuery{
		PageNum:  queryInt(c, "pageNum"),
		PageSize: queryInt(c, "pageSize"),
		RoleName: c.Query("roleName"),
		RoleKey:  c.Query("roleKey"),
		Status:   c.Query("status"),
	}
	roles, total, err := rt.Repos.Role.ListRoles(query)
	if err != nil {
		return http.WithRepMsg(c, http.Failed.Code, err.Error())
	}
	return http.WithRepRows(c, roles, total)
}

func (rt *Router) getRole(c *fiber.Ctx) error {
	roleId, err := pathId(c, "ids")
	if err != nil {
		return http.WithRepMsg(c, http.Failed.Code, "invalid role id")
	}
	role, err := rt.Repos.Role.GetRoleById(roleId)
	if err != nil {
		return http.WithRepMsg(c, http.NotFound.Code, "role not found")
	}
	return http.WithRepJSON(c, role)
}

func (rt *Router) createRole(c *fiber.Ctx) error {
	var req struct {
		model.Role
		MenuIds []int64 `json:"menuIds"`
	}
	if err := c.BodyParser(&req); err != nil {
		return http.WithRepMsg(c, http.Failed.Code, "invalid request body")
	}
	if err := rt.Services.Role.CreateRole(&req.Role, req.MenuIds); err != nil {
		return http.WithRepMsg(c, http.Failed.Code, err.Error())
	}
	return http.WithRepNotData(c)
}

func (rt *Router) updateRole(c *fiber.Ctx) error {
	var req struct {
		model.Role
		MenuIds []int64 `json:"menuIds"`
	}
	if err := c.BodyParser(&req); err != nil {
		return http.WithRepMsg(c, http.Failed.Code, "invalid request body")
	}
	updates := map[string]any{
		"role_name":           req.RoleName,
		"role_key":            req.RoleKey,
		"role_sort":           req.RoleSort,
		"status":              req.Status,
		"menu_check_strictly": req.MenuCheckStrictly,
		"dept_check_strictly": req.DeptCheckStrictly,
		"remark":              req.Remark,
	}
	if err := rt.Services.Role.UpdateRole(req.RoleId, updates, req.MenuIds); err != nil {
		return http.WithRepMsg(c, http.Failed.Code, err.Error())
	}
	return http.WithRepNotData(c)
}

func (rt *Router) deleteRoles(c *fiber.Ctx) error {
	roleIds, err := pathIds(c, "ids")
	if err != nil {
		return http.WithRepMsg(c, http.Failed.Code, "invalid role ids")
	}
	if err := rt.Services.Role.DeleteRoles(roleIds); err != nil {
		return http.WithRepMsg(c, http.Failed.Code, err.Error())
	}
	return http.WithRepNotData(c)
}

func (rt *Router) changeRoleStatus(c *fiber.Ctx) error {
	var req struct {
		RoleId int64  `json:"roleId"`
		Status string `json:"status"`
	}
	if err := c.BodyParser(&req); err != nil {
		return http.WithRepMsg(c, http.Failed.Code, "invalid request body")
	}
	if err := rt.Services.Role.ChangeStatus(req.RoleId, req.Status); err != nil {
		return http.WithRepMsg(c, http.Failed.Code, err.Error())
	}
	return http.WithRepNotData(c)
}

func (rt *Router) dataScope(c *fiber.Ctx) error {
	var req model.DataScopeReq
	if err := c.BodyParser(&req); err != nil {
		return http.WithRepMsg(c, http.Failed.Code, "invalid request body")
	}
	if err := rt.Services.Role.UpdateDataScope(&req); err != nil {
		return http.WithRepMsg(c, http.Failed.Code, err.Error())
	}
	return http.WithRepNotData(c)
}

func (rt *Router) allocatedList(c *fiber.Ctx) error {
	roleId := int64(queryInt(c, "roleId"))
	query := &model.UserQuery{
		PageNum:     queryInt(c, "pageNum"),
		PageSize:    queryInt(c, "pageSize"),
		Username:    c.Query("userName"),
		PhoneNumber: c.Query("phonenumber"),
	}
	users, total, err := rt.Repos.User.ListAllocatedUsers(roleId, query)
	if err != nil {
		return http.WithRepMsg(c, http.Failed.Code, err.Error())
	}
	return http.WithRepRows(c, users, total)
}

func (rt *Router) unallocatedList(c *fiber.Ctx) error {
	roleId := int64(queryInt(c, "roleId"))
	query := &model.UserQuery{
		PageNum:     queryInt(c, "pageNum"),
		PageSize:    queryInt(c, "pageSize"),
		Username:    c.Query("userName"),
		PhoneNumber: c.Query("phonenumber"),
	}
	users, total, err := rt.Repos.User.ListUnallocatedUsers(roleId, query)
	if err != nil {
		return http.WithRepMsg(c, http.Failed.Code, err.Error())
	}
	return http.WithRepRows(c, users, total)
}

func (rt *Router) cancelAuthUser(c *fiber.Ctx) error {
	var req struct {
		RoleId int64 `json:"roleId"`
		UserId int64 `json:"userId"`
	}
	if err := c.BodyParser(&req); err != nil {
		return http.WithRepMsg(c, http.Failed.Code, "invalid request body")
	}
	if err := rt.Services.Role.RevokeUsers(req.RoleId, []int64{req.UserId}); err != nil {
		return http.WithRepMsg(c, http.Failed.Code, err.Error())
	}
	return http.WithRepNotData(c)
}

func (rt *Router) cancelAuthUserAll(c *fiber.Ctx) error {
	var req struct {
		RoleId  int64   `json:"roleId"`
		UserIds []int64 `json:"userIds"`
	}
	if err := c.BodyParser(&req); err != nil {
		return http.WithRepMsg(c, http.Failed.Code, "invalid request body")
	}
	if err := rt.Services.Role.RevokeUsers(req.RoleId, req.UserIds); err != nil {
		return http.WithRepMsg(c, http.Failed.Code, err.Error())
	}
	return http.WithRepNotData(c)
}

func (rt *Router) selectAuthUserAll(c *fiber.Ctx) error {
	var req struct {
		RoleId  int64   `json:"roleId"`
		UserIds []int64 `json:"userIds"`
	}
	if err := c.BodyParser(&req); err != nil {
		return http.WithRepMsg(c, http.Failed.Code, "invalid request body")
	}
	if err := rt.Services.Role.AllocateUsers(req.RoleId, req.UserIds); err != nil {
		return http.WithRepMsg(c, http.Failed.Code, err.Error())
	}
	return http.WithRepNotData(c)
}
