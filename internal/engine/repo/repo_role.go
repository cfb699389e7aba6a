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
	"gorm.io/gorm"
)

type IRoleRepository interface {
	CreateRole(role *model.Role, menuIds []int64) error
	GetRoleById(roleId int64) (*model.Role, error)
	ListRoles(query *model.RoleQuery) ([]model.Role, int64, error)
	ListAllRoles() ([]model.Role, error)
	UpdateRole(roleId int64, updates map[string]any, menuIds []int64) error
	UpdateRoleColumns(roleId int64, updates map[string]any) error
	UpdateDataScope(roleId int64, dataScope string, deptIds []int64) error
	DeleteRoles(roleIds []int64) error
	GetPermsByRoleIds(roleIds []int64) ([]string, error)
	GetMenuIdsByRoleId(roleId int64) ([]int64, error)
	GetDeptIdsByRoleId(roleId int64) ([]int64, error)
	CountUserBindings(roleIds []int64) (int64, error)
	CheckRoleKeyUnique(roleKey string, excludeRoleId int64) (bool, error)
}

type RoleRepo struct {
	database.IDatabase
}

func NewRoleRepo(db database.IDatabase) IRoleRepository {
	return &RoleRepo{
		IDatabase: db,
	}
}

// CreateRole 创建角色并绑定菜单
func (r *RoleRepo) CreateRole(role *model.Role, menuIds []int64) error {
	return r.Database().Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(role).Error; err != nil {
			return err
		}
		return createRoleMenus(tx, role.RoleId, menuIds)
	})
}

// GetRoleById 根据ID获取角色
func (r *RoleRepo) GetRoleById(roleId int64) (*model.Role, error) {
	var role model.Role
	if err := r.Database().Where("role_id = ?", roleId).First(&role).Error; err != nil {
		return nil, err
	}
	return &role, nil
}

// ListRoles 角色列表（支持分页）
func (r *RoleRepo) ListRoles(query *model.RoleQuery) ([]model.Role, int64, error) {
	tx := r.Database().Model(&model.Role{})
	if query.RoleName != "" {
		tx = tx.Where("role_name LIKE ?", "%"+query.RoleName+"%")
	}
	if query.RoleKey != "" {
		tx = tx.Where("role_key LIKE ?", "%"+query.RoleKey+"%")
	}
	if query.Status != "" {
		tx = tx.Where("status = ?", query.Status)
	}

	count, err := Count(tx)
	if err != nil {
		return nil, 0, err
	}

	var roles []model.Role
	if err := paginate(tx, query.PageNum, query.PageSize).
		Order("role_sort ASC").Find(&roles).Error; err != nil {
		return nil, 0, err
	}
	return roles, count, nil
}

// ListAllRoles 全量角色，用于下拉选择
func (r *RoleRepo) ListAllRoles() ([]model.Role, error) {
	var roles []model.Role
	err := r.Database().Order("role_sort ASC").Find(&roles).Error
	return roles, err
}

// UpdateRole 更新角色并重建菜单绑定
func (r *RoleRepo) UpdateRole(roleId int64, updates map[string]any, menuIds []int64) error {
	return r.Database().Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.Role{}).Where("role_id = ?", roleId).Updates(updates).Error; err != nil {
			return err
		}
		if err := tx.Where("role_id = ?", roleId).Delete(&model.RoleMenu{}).Error; err != nil {
			return err
		}
		return createRoleMenus(tx, roleId, menuIds)
	})
}

// UpdateRoleColumns 更新角色部分字段
func (r *RoleRepo) UpdateRoleColumns(roleId int64, updates map[string]any) error {
	return r.Database().Model(&model.Role{}).Where("role_id = ?", roleId).Updates(updates).Error
}

// UpdateDataScope 更新数据权限范围，自定义范围时重建部门绑定
func (r *RoleRepo) UpdateDataScope(roleId int64, dataScope string, deptIds []int64) error {
	return r.Database().Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.Role{}).Where("role_id = ?", roleId).
			Update("data_scope", dataScope).Error; err != nil {
			return err
		}
		if err := tx.Where("role_id = ?", roleId).Delete(&model.RoleDept{}).Error; err != nil {
			return err
		}
		if dataScope != model.DataScopeCustom || len(deptIds) == 0 {
			return nil
		}
		bindings := make([]model.RoleDept, 0, len(deptIds))
		for _, deptId := range deptIds {
			bindings = append(bindings, model.RoleDept{RoleId: roleId, DeptId: deptId})
		}
		return tx.Create(&bindings).Error
	})
}

// DeleteRoles 批量删除角色及其绑定
func (r *RoleRepo) DeleteRoles(roleIds []int64) error {
	return r.Database().Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("role_id IN ?", roleIds).Delete(&model.RoleMenu{}).Error; err != nil {
			return err
		}
		if err := tx.Where("role_id IN ?", roleIds).Delete(&model.RoleDept{}).Error; err != nil {
			return err
		}
		return tx.Where("role_id IN ?", roleIds).Delete(&model.Role{}).Error
	})
}

// GetPermsByRoleIds 获取角色集合涉及的全部权限标识，去重后返回
func (r *RoleRepo) GetPermsByRoleIds(roleIds []int64) ([]string, error) {
	if len(roleIds) == 0 {
		return []string{}, nil
	}
	var perms []string
	err := r.Database().Model(&model.Menu{}).
		Distinct("sys_menu.perms").
		Joins("JOIN sys_role_menu rm ON rm.menu_id = sys_menu.menu_id").
		Where("rm.role_id IN ? AND sys_menu.perms <> ''", roleIds).
		Pluck("sys_menu.perms", &perms).Error
	return perms, err
}

func (r *RoleRepo) GetMenuIdsByRoleId(roleId int64) ([]int64, error) {
	var menuIds []int64
	err := r.Database().Model(&model.RoleMenu{}).
		Where("role_id = ?", roleId).Pluck("menu_id", &menuIds).Error
	return menuIds, err
}

func (r *RoleRepo) GetDeptIdsByRoleId(roleId int64) ([]int64, error) {
	var deptIds []int64
	err := r.Database().Model(&model.RoleDept{}).
		Where("role_id = ?", roleId).Pluck("dept_id", &deptIds).Error
	return deptIds, err
}

// CountUserBindings 统计角色被多少用户持有，删除前校验
func (r *RoleRepo) CountUserBindings(roleIds []int64) (int64, error) {
	return Count(r.Database().Model(&model.UserRole{}).Where("role_id IN ?", roleIds))
}

// CheckRoleKeyUnique 校验角色权限字符唯一性
func (r *RoleRepo) CheckRoleKeyUnique(roleKey string, excludeRoleId int64) (bool, error) {
	tx := r.Database().Model(&model.Role{}).Where("role_key = ?", roleKey)
	if excludeRoleId != 0 {
		tx = tx.Where("role_id <> ?", excludeRoleId)
	}
	count, err := Count(tx)
	if err != nil {
		return false, err
	}
	return count == 0, nil
}

func createRoleMenus(tx *gorm.DB, roleId int64, menuIds []int64) error {
	if len(menuIds) == 0 {
		return nil
	}
	bindings := make([]model.RoleMenu, 0, len(menuIds))
	for _, menuId := range menuIds {
		bindings = append(bindings, model.RoleMenu{RoleId: roleId, MenuId: menuId})
	}
	return tx.Create(&bindings).Error
}
