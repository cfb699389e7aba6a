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

func (rt *Router) menuRouter(r fiber.Router, auth fiber.Handler) {
	menuGroup := r.Group("/system/menu", auth)
	{
		menuGroup.Get("/", rt.requirePerm("system:menu:list"), rt.listMenus)
		menuGroup.Post("/", rt.requirePerm("system:menu:add"), rt.audit("菜单管理", model.BusinessTypeCreate), rt.createMenu)
		menuGroup.Put("/", rt.requirePerm("system:menu:edit"), rt.audit("菜单管理", model.BusinessTypeUpdate), rt.updateMenu)
		menuGroup.Get("/tree_select", rt.menuTreeSelect)
		menuGroup.Get("/role_menu_tree_select/:roleId", rt.roleMenuTreeSelect)
		menuGroup.Get("/:ids", rt.requirePerm("system:menu:query"), rt.getMenu)
		menuGroup.Delete("/:ids", rt.requirePerm("system:menu:remove"), rt.audit("菜单管理", model.BusinessTypeDelete), rt.deleteMenu)
	}
}

func (rt *Router) listMenus(c *fiber.Ctx) error {
	query := &model.MenuQuery{
		MenuName: c.Query("menuName"),
		Status:   c.Query("status"),
	}
	menus, err := rt.Repos.Menu.ListMenus(query)
	if err != nil {
		return http.WithRepMsg(c, http.Failed.Code, err.Error())
	}
	return http.WithRepJSON(c, menus)
}

func (rt *Router) getMenu(c *fiber.Ctx) error {
	menuId, err := pathId(c, "ids")
	if err != nil {
		return http.WithRepMsg(c, http.Failed.Code, "invalid menu id")
	}
	menu, err := rt.Repos.Menu.GetMenuById(menuId)
	if err != nil {
		return http.WithRepMsg(c, http.NotFound.Code, "menu not found")
	}
	return http.WithRepJSON(c, menu)
}

func (rt *Router) createMenu(c *fiber.Ctx) error {
	var menu model.Menu
	if err := c.BodyParser(&menu); err != nil {
		return http.WithRepMsg(c, http.Failed.Code, "invalid request body")
	}
	if err := rt.Services.Menu.CreateMenu(&menu); err != nil {
		return http.WithRepMsg(c, http.Failed.Code, err.Error())
	}
	return http.WithRepNotData(c)
}

func (rt *Router) updateMenu(c *fiber.Ctx) error {
	var menu model.Menu
	if err := c.BodyParser(&menu); err != nil {
		return http.WithRepMsg(c, http.Failed.Code, "invalid request body")
	}
	updates := map[string]any{
		"menu_name":      menu.MenuName,
		"parent_id":      menu.ParentId,
		"order_num":      menu.OrderNum,
		"path":           menu.Path,
		"component":      menu.Component,
		"component_name": menu.ComponentName,
		"menu_type":      menu.MenuType,
		"visible":        menu.Visible,
		"perms":          menu.Perms,
		"icon":           menu.Icon,
		"is_frame":       menu.IsFrame,
		"no_cache":       menu.NoCache,
		"status":         menu.Status,
	}
	if err := rt.Services.Menu.UpdateMenu(menu.MenuId, updates); err != nil {
		return http.WithRepMsg(c, http.Failed.Code, err.Error())
	}
	return http.WithRepNotData(c)
}

func (rt *Router) deleteMenu(c *fiber.Ctx) error {
	menuId, err := pathId(c, "ids")
	if err != nil {
		return http.WithRepMsg(c, http.Failed.Code, "invalid menu id")
	}
	if err := rt.Services.Menu.DeleteMenu(menuId); err != nil {
		return http.WithRepMsg(c, http.Failed.Code, err.Error())
	}
	return http.WithRepNotData(c)
}

func (rt *Router) menuTreeSelect(c *fiber.Ctx) error {
	tree, err := rt.Services.Menu.TreeSelect(&model.MenuQuery{Status: model.StatusNormal})
	if err != nil {
		return http.WithRepMsg(c, http.Failed.Code, err.Error())
	}
	return http.WithRepJSON(c, tree)
}

// roleMenuTreeSelect 菜单树及角色已勾选的菜单键
func (rt *Router) roleMenuTreeSelect(c *fiber.Ctx) error {
	roleId, err := pathId(c, "roleId")
	if err != nil {
		return http.WithRepMsg(c, http.Failed.Code, "invalid role id")
	}
	tree, checkedKeys, err := rt.Services.Menu.RoleMenuTreeSelect(roleId)
	if err != nil {
		return http.WithRepMsg(c, http.Failed.Code, err.Error())
	}
	return http.WithRepMap(c, fiber.Map{
		"menus":       tree,
		"checkedKeys": checkedKeys,
	})
}
