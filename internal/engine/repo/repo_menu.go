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

package repo

import (
	"github.com/go-atlas/atlas/internal/engine/model"
	"github.com/go-atlas/atlas/pkg/database"
)

type IMenuRepository interface {
	CreateMenu(menu *model.Menu) error
	GetMenuById(menuId int64) (*model.Menu, error)
	ListMenus(query *model.MenuQuery) ([]model.Menu, error)
	ListAllMenus() ([]model.Menu, error)
	ListMenusByRoleIds(roleIds []int64) ([]model.Menu, error)
	UpdateMenu(menuId int64, updates map[string]any) error
	DeleteMenu(menuId int64) error
	HasChildren(menuId int64) (bool, error)
	HasRoleBindings(menuId int64) (bool, error)
}

type MenuRepo struct {
	database.IDatabase
}

func NewMenuRepo(db database.IDatabase) IMenuRepository {
	return &MenuRepo{
		IDatabase: db,
	}
}

// CreateMenu 创建菜单
func (r *MenuRepo) CreateMenu(menu *model.Menu) error {
	return r.Database().Create(menu).Error
}

// GetMenuById 根据ID获取菜单
func (r *MenuRepo) GetMenuById(menuId int64) (*model.Menu, error) {
	var menu model.Menu
	if err := r.Database().Where("menu_id = ?", menuId).First(&menu).Error; err != nil {
		return nil, err
	}
	return &menu, nil
}

// ListMenus 菜单列表，按父级和排序号排列
func (r *MenuRepo) ListMenus(query *model.MenuQuery) ([]model.Menu, error) {
	tx := r.Database().Model(&model.Menu{})
	if query.MenuName != "" {
		tx = tx.Where("menu_name LIKE ?", "%"+query.MenuName+"%")
	}
	if query.Status != "" {
		tx = tx.Where("status = ?", query.Status)
	}
	var menus []model.Menu
	err := tx.Order("parent_id ASC, order_num ASC").Find(&menus).Error
	return menus, err
}

// ListAllMenus 全量菜单，供超级管理员构建路由与菜单树
func (r *MenuRepo) ListAllMenus() ([]model.Menu, error) {
	var menus []model.Menu
	err := r.Database().Order("parent_id ASC, order_num ASC").Find(&menus).Error
	return menus, err
}

// ListMenusByRoleIds 按角色集合获取可见菜单，去重
func (r *MenuRepo) ListMenusByRoleIds(roleIds []int64) ([]model.Menu, error) {
	if len(roleIds) == 0 {
		return []model.Menu{}, nil
	}
	var menus []model.Menu
	err := r.Database().Model(&model.Menu{}).
		Distinct("sys_menu.*").
		Joins("JOIN sys_role_menu rm ON rm.menu_id = sys_menu.menu_id").
		Where("rm.role_id IN ?", roleIds).
		Order("sys_menu.parent_id ASC, sys_menu.order_num ASC").
		Find(&menus).Error
	return menus, err
}

// UpdateMenu 更新菜单
func (r *MenuRepo) UpdateMenu(menuId int64, updates map[string]any) error {
	return r.Database().Model(&model.Menu{}).Where("menu_id = ?", menuId).Updates(updates).Error
}

// DeleteMenu 删除菜单及其角色绑定
func (r *MenuRepo) DeleteMenu(menuId int64) error {
	if err := r.Database().Where("menu_id = ?", menuId).Delete(&model.RoleMenu{}).Error; err != nil {
		return err
	}
	return r.Database().Where("menu_id = ?", menuId).Delete(&model.Menu{}).Error
}

// HasChildren 是否存在子菜单，删除前校验
func (r *MenuRepo) HasChildren(menuId int64) (bool, error) {
	count, err := Count(r.Database().Model(&model.Menu{}).Where("parent_id = ?", menuId))
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// HasRoleBindings 是否已被角色引用，删除前校验
func (r *MenuRepo) HasRoleBindings(menuId int64) (bool, error) {
	count, err := Count(r.Database().Model(&model.RoleMenu{}).Where("menu_id = ?", menuId))
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
