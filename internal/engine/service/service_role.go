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
	"github.com/go-atlas/atlas/internal/engine/model"
	"github.com/go-atlas/atlas/internal/engine/repo"
	"github.com/pkg/errors"
)

type RoleService struct {
	roleRepo repo.IRoleRepository
	userRepo repo.IUserRepository
}

func NewRoleService(roleRepo repo.IRoleRepository, userRepo repo.IUserRepository) *RoleService {
	return &RoleService{
		roleRepo: roleRepo,
		userRepo: userRepo,
	}
}

// CreateRole 创建角色并绑定菜单
func (rs *RoleService) CreateRole(role *model.Role, menuIds []int64) error {
	unique, err := rs.roleRepo.CheckRoleKeyUnique(role.RoleKey, 0)
	if err != nil {
		return err
	}
	if !unique {
		return errors.Errorf("role key %s already exists", role.RoleKey)
	}
	return rs.roleRepo.CreateRole(role, menuIds)
}

// UpdateRole 更新角色，超级角色不可编辑
func (rs *RoleService) UpdateRole(roleId int64, updates map[string]any, menuIds []int64) error {
	role, err := rs.roleRepo.GetRoleById(roleId)
	if err != nil {
		return err
	}
	if role.IsSuperuser() {
		return errors.New("superuser role cannot be modified")
	}
	if roleKey, ok := updates["role_key"].(string); ok {
		unique, err := rs.roleRepo.CheckRoleKeyUnique(roleKey, roleId)
		if err != nil {
			return err
		}
		if !unique {
			return errors.Errorf("role key %s already exists", roleKey)
		}
	}
	return rs.roleRepo.UpdateRole(roleId, updates, menuIds)
}

// ChangeStatus 启停角色
func (rs *RoleService) ChangeStatus(roleId int64, status string) error {
	role, err := rs.roleRepo.GetRoleById(roleId)
	if err != nil {
		return err
	}
	if role.IsSuperuser() {
		return errors.New("superuser role cannot be modified")
	}
	return rs.roleRepo.UpdateRoleColumns(roleId, map[string]any{"status": status})
}

// UpdateDataScope 更新数据权限范围
func (rs *RoleService) UpdateDataScope(req *model.DataScopeReq) error {
	role, err := rs.roleRepo.GetRoleById(req.RoleId)
	if err != nil {
		return err
	}
	if role.IsSuperuser() {
		return errors.New("superuser role cannot be modified")
	}
	return rs.roleRepo.UpdateDataScope(req.RoleId, req.DataScope, req.DeptIds)
}

// DeleteRoles 批量删除角色，被用户持有或为超级角色时拒绝
func (rs *RoleService) DeleteRoles(roleIds []int64) error {
	for _, roleId := range roleIds {
		role, err := rs.roleRepo.GetRoleById(roleId)
		if err != nil {
			return err
		}
		if role.IsSuperuser() {
			return errors.New("superuser role cannot be deleted")
		}
	}
	count, err := rs.roleRepo.CountUserBindings(roleIds)
	if err != nil {
		return err
	}
	if count > 0 {
		return errors.New("role is assigned to users")
	}
	return rs.roleRepo.DeleteRoles(roleIds)
}

// AllocateUsers 批量给用户授予角色
func (rs *RoleService) AllocateUsers(roleId int64, userIds []int64) error {
	for _, userId := range userIds {
		roleIds, err := rs.userRepo.GetRoleIdsByUserId(userId)
		if err != nil {
			return err
		}
		for _, rid := range roleIds {
			if rid == roleId {
				return errors.Errorf("user %d already has this role", userId)
			}
		}
		if err := rs.userRepo.ReplaceUserRoles(userId, append(roleIds, roleId)); err != nil {
			return err
		}
	}
	return nil
}

// RevokeUsers 批量解除用户的角色
func (rs *RoleService) RevokeUsers(roleId int64, userIds []int64) error {
	for _, userId := range userIds {
		roleIds, err := rs.userRepo.GetRoleIdsByUserId(userId)
		if err != nil {
			return err
		}
		kept := make([]int64, 0, len(roleIds))
		for _, rid := range roleIds {
			if rid != roleId {
				kept = append(kept, rid)
			}
		}
		if err := rs.userRepo.ReplaceUserRoles(userId, kept); err != nil {
			return err
		}
	}
	return nil
}
