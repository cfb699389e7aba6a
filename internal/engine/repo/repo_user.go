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
	"time"

	"github.com/go-atlas/atlas/internal/engine/model"
	"github.com/go-atlas/atlas/pkg/database"
	"gorm.io/gorm"
)

type IUserRepository interface {
	CreateUser(user *model.User, roleIds, postIds []int64) error
	GetUserById(userId int64) (*model.User, error)
	GetUserByUsername(username string) (*model.User, error)
	ListUsers(query *model.UserQuery, deptIds []int64) ([]model.User, int64, error)
	UpdateUser(userId int64, updates map[string]any, roleIds, postIds []int64) error
	UpdateUserColumns(userId int64, updates map[string]any) error
	DeleteUsers(userIds []int64) error
	GetRolesByUserId(userId int64) ([]model.Role, error)
	GetRoleIdsByUserId(userId int64) ([]int64, error)
	GetPostIdsByUserId(userId int64) ([]int64, error)
	CheckUsernameUnique(username string, excludeUserId int64) (bool, error)
	RecordLogin(userId int64, ip string, loginAt time.Time) error
	ReplaceUserRoles(userId int64, roleIds []int64) error
	ListAllocatedUsers(roleId int64, query *model.UserQuery) ([]model.User, int64, error)
	ListUnallocatedUsers(roleId int64, query *model.UserQuery) ([]model.User, int64, error)
}

type UserRepo struct {
	database.IDatabase
}

func NewUserRepo(db database.IDatabase) IUserRepository {
	return &UserRepo{
		IDatabase: db,
	}
}

// CreateUser 创建用户并绑定角色、岗位
func (r *UserRepo) CreateUser(user *model.User, roleIds, postIds []int64) error {
	return r.Database().Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return err
		}
		if err := replaceUserBindings(tx, user.UserId, roleIds, postIds); err != nil {
			return err
		}
		return nil
	})
}

// GetUserById 根据ID获取用户
func (r *UserRepo) GetUserById(userId int64) (*model.User, error) {
	var user model.User
	if err := r.Database().Where("user_id = ?", userId).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// GetUserByUsername 根据用户名获取用户，包含密码字段，仅供登录校验
func (r *UserRepo) GetUserByUsername(username string) (*model.User, error) {
	var user model.User
	if err := r.Database().Where("username = ?", username).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// ListUsers 用户列表，deptIds 非空时按数据权限过滤
func (r *UserRepo) ListUsers(query *model.UserQuery, deptIds []int64) ([]model.User, int64, error) {
	tx := r.Database().Model(&model.User{})
	if query.Username != "" {
		tx = tx.Where("username LIKE ?", "%"+query.Username+"%")
	}
	if query.PhoneNumber != "" {
		tx = tx.Where("phone_number LIKE ?", "%"+query.PhoneNumber+"%")
	}
	if query.Status != "" {
		tx = tx.Where("status = ?", query.Status)
	}
	if query.DeptId != 0 {
		// 包含下级部门
		tx = tx.Where("dept_id = ? OR dept_id IN (SELECT dept_id FROM sys_dept WHERE FIND_IN_SET(?, ancestors))",
			query.DeptId, query.DeptId)
	}
	if deptIds != nil {
		tx = tx.Where("dept_id IN ?", deptIds)
	}

	count, err := Count(tx)
	if err != nil {
		return nil, 0, err
	}

	var users []model.User
	if err := paginate(tx, query.PageNum, query.PageSize).
		Order("user_id ASC").Find(&users).Error; err != nil {
		return nil, 0, err
	}
	return users, count, nil
}

// UpdateUser 更新用户并重建角色、岗位绑定
func (r *UserRepo) UpdateUser(userId int64, updates map[string]any, roleIds, postIds []int64) error {
	return r.Database().Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.User{}).Where("user_id = ?", userId).Updates(updates).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", userId).Delete(&model.UserRole{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", userId).Delete(&model.UserPost{}).Error; err != nil {
			return err
		}
		if err := replaceUserBindings(tx, userId, roleIds, postIds); err != nil {
			return err
		}
		return nil
	})
}

// UpdateUserColumns 更新用户部分字段，不涉及绑定
func (r *UserRepo) UpdateUserColumns(userId int64, updates map[string]any) error {
	return r.Database().Model(&model.User{}).Where("user_id = ?", userId).Updates(updates).Error
}

// DeleteUsers 批量删除用户及其绑定
func (r *UserRepo) DeleteUsers(userIds []int64) error {
	return r.Database().Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id IN ?", userIds).Delete(&model.UserRole{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id IN ?", userIds).Delete(&model.UserPost{}).Error; err != nil {
			return err
		}
		return tx.Where("user_id IN ?", userIds).Delete(&model.User{}).Error
	})
}

// GetRolesByUserId 获取用户绑定的角色
func (r *UserRepo) GetRolesByUserId(userId int64) ([]model.Role, error) {
	var roles []model.Role
	err := r.Database().Model(&model.Role{}).
		Joins("JOIN sys_user_role ur ON ur.role_id = sys_role.role_id").
		Where("ur.user_id = ?", userId).
		Order("sys_role.role_sort ASC").
		Find(&roles).Error
	return roles, err
}

func (r *UserRepo) GetRoleIdsByUserId(userId int64) ([]int64, error) {
	var roleIds []int64
	err := r.Database().Model(&model.UserRole{}).
		Where("user_id = ?", userId).Pluck("role_id", &roleIds).Error
	return roleIds, err
}

func (r *UserRepo) GetPostIdsByUserId(userId int64) ([]int64, error) {
	var postIds []int64
	err := r.Database().Model(&model.UserPost{}).
		Where("user_id = ?", userId).Pluck("post_id", &postIds).Error
	return postIds, err
}

// CheckUsernameUnique 校验用户名唯一性，excludeUserId 用于编辑场景排除自身
func (r *UserRepo) CheckUsernameUnique(username string, excludeUserId int64) (bool, error) {
	tx := r.Database().Model(&model.User{}).Where("username = ?", username)
	if excludeUserId != 0 {
		tx = tx.Where("user_id <> ?", excludeUserId)
	}
	count, err := Count(tx)
	if err != nil {
		return false, err
	}
	return count == 0, nil
}

// RecordLogin 登录成功后回写登录IP与时间
func (r *UserRepo) RecordLogin(userId int64, ip string, loginAt time.Time) error {
	return r.Database().Model(&model.User{}).Where("user_id = ?", userId).
		Updates(map[string]any{"login_ip": ip, "login_date": loginAt}).Error
}

// ReplaceUserRoles 重建用户角色绑定，供授权接口使用
func (r *UserRepo) ReplaceUserRoles(userId int64, roleIds []int64) error {
	return r.Database().Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", userId).Delete(&model.UserRole{}).Error; err != nil {
			return err
		}
		return createUserRoles(tx, userId, roleIds)
	})
}

// ListAllocatedUsers 已分配某角色的用户列表
func (r *UserRepo) ListAllocatedUsers(roleId int64, query *model.UserQuery) ([]model.User, int64, error) {
	tx := r.Database().Model(&model.User{}).
		Joins("JOIN sys_user_role ur ON ur.user_id = sys_user.user_id").
		Where("ur.role_id = ?", roleId)
	return filterUsers(tx, query)
}

// ListUnallocatedUsers 未分配某角色的用户列表
func (r *UserRepo) ListUnallocatedUsers(roleId int64, query *model.UserQuery) ([]model.User, int64, error) {
	tx := r.Database().Model(&model.User{}).
		Where("user_id NOT IN (SELECT user_id FROM sys_user_role WHERE role_id = ?)", roleId)
	return filterUsers(tx, query)
}

func filterUsers(tx *gorm.DB, query *model.UserQuery) ([]model.User, int64, error) {
	if query.Username != "" {
		tx = tx.Where("username LIKE ?", "%"+query.Username+"%")
	}
	if query.PhoneNumber != "" {
		tx = tx.Where("phone_number LIKE ?", "%"+query.PhoneNumber+"%")
	}
	count, err := Count(tx)
	if err != nil {
		return nil, 0, err
	}
	var users []model.User
	if err := paginate(tx, query.PageNum, query.PageSize).Find(&users).Error; err != nil {
		return nil, 0, err
	}
	return users, count, nil
}

func replaceUserBindings(tx *gorm.DB, userId int64, roleIds, postIds []int64) error {
	if err := createUserRoles(tx, userId, roleIds); err != nil {
		return err
	}
	if len(postIds) > 0 {
		posts := make([]model.UserPost, 0, len(postIds))
		for _, postId := range postIds {
			posts = append(posts, model.UserPost{UserId: userId, PostId: postId})
		}
		if err := tx.Create(&posts).Error; err != nil {
			return err
		}
	}
	return nil
}

func createUserRoles(tx *gorm.DB, userId int64, roleIds []int64) error {
	if len(roleIds) == 0 {
		return nil
	}
	bindings := make([]model.UserRole, 0, len(roleIds))
	for _, roleId := range roleIds {
		bindings = append(bindings, model.UserRole{UserId: userId, RoleId: roleId})
	}
	return tx.Create(&bindings).Error
}
