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

type IDeptRepository interface {
	CreateDept(dept *model.Dept) error
	GetDeptById(deptId int64) (*model.Dept, error)
	ListDepts(query *model.DeptQuery) ([]model.Dept, error)
	ListAllDepts() ([]model.Dept, error)
	ListDeptIdsByRoleIds(roleIds []int64) ([]int64, error)
	ListDeptIdsByAncestor(deptId int64) ([]int64, error)
	UpdateDept(deptId int64, updates map[string]any) error
	DeleteDept(deptId int64) error
	HasChildren(deptId int64) (bool, error)
	HasUsers(deptId int64) (bool, error)
}

type DeptRepo struct {
	database.IDatabase
}

func NewDeptRepo(db database.IDatabase) IDeptRepository {
	return &DeptRepo{
		IDatabase: db,
	}
}

// CreateDept 创建部门
func (r *DeptRepo) CreateDept(dept *model.Dept) error {
	return r.Database().Create(dept).Error
}

// GetDeptById 根据ID获取部门
func (r *DeptRepo) GetDeptById(deptId int64) (*model.Dept, error) {
	var dept model.Dept
	if err := r.Database().Where("dept_id = ?", deptId).First(&dept).Error; err != nil {
		return nil, err
	}
	return &dept, nil
}

// ListDepts 部门列表
func (r *DeptRepo) ListDepts(query *model.DeptQuery) ([]model.Dept, error) {
	tx := r.Database().Model(&model.Dept{})
	if query.DeptName != "" {
		tx = tx.Where("dept_name LIKE ?", "%"+query.DeptName+"%")
	}
	if query.Status != "" {
		tx = tx.Where("status = ?", query.Status)
	}
	var depts []model.Dept
	err := tx.Order("parent_id ASC, order_num ASC").Find(&depts).Error
	return depts, err
}

// ListAllDepts 全量部门，用于祖先链计算与树构建
func (r *DeptRepo) ListAllDepts() ([]model.Dept, error) {
	var depts []model.Dept
	err := r.Database().Order("parent_id ASC, order_num ASC").Find(&depts).Error
	return depts, err
}

// ListDeptIdsByRoleIds 自定义数据权限绑定的部门集合
func (r *DeptRepo) ListDeptIdsByRoleIds(roleIds []int64) ([]int64, error) {
	if len(roleIds) == 0 {
		return []int64{}, nil
	}
	var deptIds []int64
	err := r.Database().Model(&model.RoleDept{}).
		Distinct("dept_id").
		Where("role_id IN ?", roleIds).
		Pluck("dept_id", &deptIds).Error
	return deptIds, err
}

// ListDeptIdsByAncestor 某部门及其全部下级的部门ID集合
func (r *DeptRepo) ListDeptIdsByAncestor(deptId int64) ([]int64, error) {
	var deptIds []int64
	err := r.Database().Model(&model.Dept{}).
		Where("dept_id = ? OR FIND_IN_SET(?, ancestors)", deptId, deptId).
		Pluck("dept_id", &deptIds).Error
	return deptIds, err
}

// UpdateDept 更新部门
func (r *DeptRepo) UpdateDept(deptId int64, updates map[string]any) error {
	return r.Database().Model(&model.Dept{}).Where("dept_id = ?", deptId).Updates(updates).Error
}

// DeleteDept 删除部门
func (r *DeptRepo) DeleteDept(deptId int64) error {
	return r.Database().Where("dept_id = ?", deptId).Delete(&model.Dept{}).Error
}

// HasChildren 是否存在下级部门
func (r *DeptRepo) HasChildren(deptId int64) (bool, error) {
	count, err := Count(r.Database().Model(&model.Dept{}).Where("parent_id = ?", deptId))
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// HasUsers 部门下是否存在用户
func (r *DeptRepo) HasUsers(deptId int64) (bool, error) {
	count, err := Count(r.Database().Model(&model.User{}).Where("dept_id = ?", deptId))
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
