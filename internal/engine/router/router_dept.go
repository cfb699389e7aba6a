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
	"strings"

	"github.com/go-atlas/atlas/internal/engine/model"
	"github.com/go-atlas/atlas/pkg/http"
	"github.com/gofiber/fiber/v2"
)

func (rt *Router) deptRouter(r fiber.Router, auth fiber.Handler) {
	deptGroup := r.Group("/system/dept", auth)
	{
		deptGroup.Get("/", rt.requirePerm("system:dept:list"), rt.listDepts)
		deptGroup.Post("/", rt.requirePerm("system:dept:add"), rt.audit("部门管理", model.BusinessTypeCreate), rt.createDept)
		deptGroup.Put("/", rt.requirePerm("system:dept:edit"), rt.audit("部门管理", model.BusinessTypeUpdate), rt.updateDept)
		deptGroup.Get("/tree_select", rt.deptTreeSelect)
		deptGroup.Get("/role_dept_tree_select/:roleId", rt.roleDeptTreeSelect)
		deptGroup.Get("/exclude/:deptId", rt.requirePerm("system:dept:list"), rt.excludeDept)
		deptGroup.Get("/:ids", rt.requirePerm("system:dept:query"), rt.getDept)
		deptGroup.Delete("/:ids", rt.requirePerm("system:dept:remove"), rt.audit("部门管理", model.BusinessTypeDelete), rt.deleteDept)
	}
}

func (rt *Router) listDepts(c *fiber.Ctx) error {
	claims := currentClaims(c)
	query := &model.DeptQuery{
		DeptName: c.Query("deptName"),
		Status:   c.Query("status"),
	}
	depts, err := rt.Services.Dept.ListDepts(claims.UserId, query)
	if err != nil {
		return http.WithRepMsg(c, http.Failed.Code, err.Error())
	}
	return http.WithRepJSON(c, depts)
}

func (rt *Router) getDept(c *fiber.Ctx) error {
	deptId, err := pathId(c, "ids")
	if err != nil {
		return http.WithRepMsg(c, http.Failed.Code, "invalid dept id")
	}
	dept, err := rt.Repos.Dept.GetDeptById(deptId)
	if err != nil {
		return http.WithRepMsg(c, http.NotFound.Code, "department not found")
	}
	return http.WithRepJSON(c, dept)
}

// excludeDept 排除指定结点及其子树的部门列表，用于选择新父级
func (rt *Router) excludeDept(c *fiber.Ctx) error {
	claims := currentClaims(c)
	deptId, err := pathId(c, "deptId")
	if err != nil {
		return http.WithRepMsg(c, http.Failed.Code, "invalid dept id")
	}
	depts, err := rt.Services.Dept.ListDepts(claims.UserId, &model.DeptQuery{})
	if err != nil {
		return http.WithRepMsg(c, http.Failed.Code, err.Error())
	}
	idStr := c.Params("deptId")
	out := make([]model.Dept, 0, len(depts))
	for _, d := range depts {
		if d.DeptId == deptId {
			continue
		}
		if containsAncestor(d.Ancestors, idStr) {
			continue
		}
		out = append(out, d)
	}
	return http.WithRepJSON(c, out)
}

func containsAncestor(ancestors, id string) bool {
	for _, part := range strings.Split(ancestors, ",") {
		if part == id {
			return true
		}
	}
	return false
}

func (rt *Router) createDept(c *fiber.Ctx) error {
	var dept model.Dept
	if err := c.BodyParser(&dept); err != nil {
		return http.WithRepMsg(c, http.Failed.Code, "invalid request body")
	}
	if err := rt.Services.Dept.CreateDept(&dept); err != nil {
		return http.WithRepMsg(c, http.Failed.Code, err.Error())
	}
	return http.WithRepNotData(c)
}

func (rt *Router) updateDept(c *fiber.Ctx) error {
	var dept model.Dept
	if err := c.BodyParser(&dept); err != nil {
		return http.WithRepMsg(c, http.Failed.Code, "invalid request body")
	}
	updates := map[string]any{
		"parent_id": dept.ParentId,
		"dept_name": dept.DeptName,
		"order_num": dept.OrderNum,
		"leader":    dept.Leader,
		"phone":     dept.Phone,
		"email":     dept.Email,
		"status":    dept.Status,
	}
	if err := rt.Services.Dept.UpdateDept(dept.DeptId, updates); err != nil {
		return http.WithRepMsg(c, http.Failed.Code, err.Error())
	}
	return http.WithRepNotData(c)
}

func (rt *Router) deleteDept(c *fiber.Ctx) error {
	deptId, err := pathId(c, "ids")
	if err != nil {
		return http.WithRepMsg(c, http.Failed.Code, "invalid dept id")
	}
	if err := rt.Services.Dept.DeleteDept(deptId); err != nil {
		return http.WithRepMsg(c, http.Failed.Code, err.Error())
	}
	return http.WithRepNotData(c)
}

func (rt *Router) deptTreeSelect(c *fiber.Ctx) error {
	claims := currentClaims(c)
	tree, err := rt.Services.Dept.TreeSelect(claims.UserId)
	if err != nil {
		return http.WithRepMsg(c, http.Failed.Code, err.Error())
	}
	return http.WithRepJSON(c, tree)
}

// roleDeptTreeSelect 部门树及角色自定义数据权限勾选的部门键
func (rt *Router) roleDeptTreeSelect(c *fiber.Ctx) error {
	claims := currentClaims(c)
	roleId, err := pathId(c, "roleId")
	if err != nil {
		return http.WithRepMsg(c, http.Failed.Code, "invalid role id")
	}
	tree, checkedKeys, err := rt.Services.Dept.RoleDeptTreeSelect(claims.UserId, roleId)
	if err != nil {
		return http.WithRepMsg(c, http.Failed.Code, err.Error())
	}
	return http.WithRepMap(c, fiber.Map{
		"depts":       tree,
		"checkedKeys": checkedKeys,
	})
}
