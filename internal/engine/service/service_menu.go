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

package service

import (
	"errors"

	"github.com/go-atlas/atlas/internal/engine/model"
	"github.com/go-atlas/atlas/internal/engine/repo"
	"github.com/go-atlas/atlas/pkg/log"
)

// maxTreeDepth 防御畸形父子关系导致的无限递归
const maxTreeDepth = 64

type MenuService struct {
	menuRepo repo.IMenuRepository
	userRepo repo.IUserRepository
	roleRepo repo.IRoleRepository
}

func NewMenuService(menuRepo repo.IMenuRepository, userRepo repo.IUserRepository, roleRepo repo.IRoleRepository) *MenuService {
	return &MenuService{
		menuRepo: menuRepo,
		userRepo: userRepo,
		roleRepo: roleRepo,
	}
}

// BuildLabelTree 将平铺节点组装为 id/label 树。
// 根节点为 parent 为 0 的节点，保持输入顺序；无子节点时 children 缺省；
// 已访问集合保证自引用或环不会导致死循环。
func BuildLabelTree(nodes []model.TreeNode) []*model.LabelTree {
	visited := make(map[int64]struct{})

	var build func(parentId int64, depth int) []*model.LabelTree
	build = func(parentId int64, depth int) []*model.LabelTree {
		if depth > maxTreeDepth {
			return nil
		}
		var out []*model.LabelTree
		for _, node := range nodes {
			if node.ParentId != parentId {
				continue
			}
			if _, ok := visited[node.Id]; ok {
				continue
			}
			visited[node.Id] = struct{}{}
			out = append(out, &model.LabelTree{
				Id:       node.Id,
				Label:    node.Label,
				Children: build(node.Id, depth+1),
			})
		}
		return out
	}

	tree := build(0, 0)
	if tree == nil {
		tree = []*model.LabelTree{}
	}
	return tree
}

// BuildRouteTree 将菜单组装为前端路由。top 为顶层待展开的菜单，all 为子节点查找范围。
// 目录(M)展开为 Layout/ParentView 容器或外链平铺路由，菜单(C)为叶子路由，
// 按钮(F)与外链(L)不产生路由。
func BuildRouteTree(top, all []model.Menu) []*model.RouterVO {
	return buildRoutes(top, all, 0)
}

func buildRoutes(menus, all []model.Menu, depth int) []*model.RouterVO {
	if depth > maxTreeDepth {
		log.Warnf("route tree exceeds depth %d, truncated", maxTreeDepth)
		return nil
	}

	var routers []*model.RouterVO
	for i := range menus {
		menu := &menus[i]
		switch menu.MenuType {
		case model.MenuTypeDir:
			if menu.IsFrame == 0 {
				routers = append(routers, linkRoute(menu))
				continue
			}
			routers = append(routers, dirRoute(menu, all, depth))
		case model.MenuTypeMenu:
			if menu.ParentId == 0 {
				routers = append(routers, topLeafRoute(menu))
			} else {
				routers = append(routers, leafRoute(menu))
			}
		}
		// F 与 L 不可导航，忽略
	}
	return routers
}

// linkRoute 目录型外链，component 为空
func linkRoute(menu *model.Menu) *model.RouterVO {
	link := menu.Path
	return &model.RouterVO{
		Name:   menu.MenuName,
		Path:   menu.Path,
		Hidden: menu.Visible == model.MenuHidden,
		Meta: &model.MetaVO{
			Title:   menu.MenuName,
			Icon:    menu.Icon,
			NoCache: true,
			Link:    &link,
		},
	}
}

// dirRoute 目录容器，顶层挂 Layout，其余挂 ParentView
func dirRoute(menu *model.Menu, all []model.Menu, depth int) *model.RouterVO {
	component := "ParentView"
	path := menu.Path
	if menu.ParentId == 0 {
		component = "Layout"
		path = "/" + menu.Path
	}
	return &model.RouterVO{
		Name:       menu.ComponentName,
		Path:       path,
		Hidden:     menu.Visible == model.MenuHidden,
		Redirect:   "noRedirect",
		Component:  &component,
		AlwaysShow: true,
		Meta: &model.MetaVO{
			Title:      menu.MenuName,
			Icon:       menu.Icon,
			NoCache:    false,
			Breadcrumb: menu.Breadcrumb,
		},
		Children: buildRoutes(childrenOf(menu.MenuId, all), all, depth+1),
	}
}

// topLeafRoute 顶层菜单包一层隐式 Layout
func topLeafRoute(menu *model.Menu) *model.RouterVO {
	component := "Layout"
	return &model.RouterVO{
		Path:      "/",
		Hidden:    menu.Visible == model.MenuHidden,
		Component: &component,
		Children:  []*model.RouterVO{leafRoute(menu)},
	}
}

func leafRoute(menu *model.Menu) *model.RouterVO {
	component := menu.Component
	link := menu.Path
	return &model.RouterVO{
		Name:      menu.ComponentName,
		Path:      menu.Path,
		Hidden:    menu.Visible == model.MenuHidden,
		Component: &component,
		Meta: &model.MetaVO{
			Title:      menu.MenuName,
			Icon:       menu.Icon,
			NoCache:    menu.NoCache,
			Link:       &link,
			Affix:      menu.Affix,
			Breadcrumb: menu.Breadcrumb,
		},
	}
}

func childrenOf(menuId int64, all []model.Menu) []model.Menu {
	var out []model.Menu
	for _, m := range all {
		if m.ParentId == menuId && m.MenuId != menuId {
			out = append(out, m)
		}
	}
	return out
}

// RoutersForUser 取用户可见菜单并组装为前端路由
func (ms *MenuService) RoutersForUser(userId int64) ([]*model.RouterVO, error) {
	menus, err := ms.visibleMenus(userId)
	if err != nil {
		return nil, err
	}
	var top []model.Menu
	for _, m := range menus {
		if m.ParentId == 0 {
			top = append(top, m)
		}
	}
	return BuildRouteTree(top, menus), nil
}

// visibleMenus 超级管理员取全量菜单，其余按启用角色绑定的菜单过滤
func (ms *MenuService) visibleMenus(userId int64) ([]model.Menu, error) {
	roles, err := ms.userRepo.GetRolesByUserId(userId)
	if err != nil {
		return nil, err
	}

	admin := isSuperuser(roles)

	var menus []model.Menu
	if admin {
		menus, err = ms.menuRepo.ListAllMenus()
	} else {
		menus, err = ms.menuRepo.ListMenusByRoleIds(activeRoleIds(roles))
	}
	if err != nil {
		return nil, err
	}

	out := make([]model.Menu, 0, len(menus))
	for _, m := range menus {
		if m.Status != model.StatusNormal {
			continue
		}
		if m.MenuType != model.MenuTypeDir && m.MenuType != model.MenuTypeMenu {
			continue
		}
		// 隐藏菜单只对超级管理员可见
		if !admin && m.Visible != model.MenuVisible {
			continue
		}
		out = append(out, m)
	}
	return out, nil
}

// TreeSelect 菜单下拉树
func (ms *MenuService) TreeSelect(query *model.MenuQuery) ([]*model.LabelTree, error) {
	menus, err := ms.menuRepo.ListMenus(query)
	if err != nil {
		return nil, err
	}
	return BuildLabelTree(menuTreeNodes(menus)), nil
}

// RoleMenuTreeSelect 菜单下拉树及角色已勾选的菜单
func (ms *MenuService) RoleMenuTreeSelect(roleId int64) ([]*model.LabelTree, []int64, error) {
	menus, err := ms.menuRepo.ListAllMenus()
	if err != nil {
		return nil, nil, err
	}
	checkedKeys, err := ms.roleRepo.GetMenuIdsByRoleId(roleId)
	if err != nil {
		return nil, nil, err
	}
	if checkedKeys == nil {
		checkedKeys = []int64{}
	}
	return BuildLabelTree(menuTreeNodes(menus)), checkedKeys, nil
}

func menuTreeNodes(menus []model.Menu) []model.TreeNode {
	nodes := make([]model.TreeNode, 0, len(menus))
	for _, m := range menus {
		nodes = append(nodes, model.TreeNode{Id: m.MenuId, Label: m.MenuName, ParentId: m.ParentId})
	}
	return nodes
}

// CreateMenu 创建菜单
func (ms *MenuService) CreateMenu(menu *model.Menu) error {
	return ms.menuRepo.CreateMenu(menu)
}

// UpdateMenu 更新菜单，拒绝把自身设为父级
func (ms *MenuService) UpdateMenu(menuId int64, updates map[string]any) error {
	if parentId, ok := updates["parent_id"].(int64); ok && parentId == menuId {
		return errors.New("menu cannot be its own parent")
	}
	return ms.menuRepo.UpdateMenu(menuId, updates)
}

// DeleteMenu 删除菜单，存在子菜单或角色绑定时拒绝
func (ms *MenuService) DeleteMenu(menuId int64) error {
	hasChildren, err := ms.menuRepo.HasChildren(menuId)
	if err != nil {
		return err
	}
	if hasChildren {
		return errors.New("menu has children, remove them first")
	}
	bound, err := ms.menuRepo.HasRoleBindings(menuId)
	if err != nil {
		return err
	}
	if bound {
		return errors.New("menu is assigned to roles")
	}
	return ms.menuRepo.DeleteMenu(menuId)
}
