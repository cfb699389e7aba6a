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
	"strconv"
	"strings"

	"github.com/go-atlas/atlas/internal/engine/model"
	"github.com/go-atlas/atlas/internal/engine/repo"
)

type DeptService struct {
	deptRepo repo.IDeptRepository
	roleRepo repo.IRoleRepository
	authSvc  *AuthService
}

func NewDeptService(deptRepo repo.IDeptRepository, roleRepo repo.IRoleRepository, authSvc *AuthService) *DeptService {
	return &DeptService{
		deptRepo: deptRepo,
		roleRepo: roleRepo,
		authSvc:  authSvc,
	}
}

// ComputeAncestors 计算部门祖先链，自顶向下逗号连接。
// parentId 为 0 时返回空串；父链断裂或成环时在断点截止。
func ComputeAncestors(parents map[int64]int64, parentId int64) string {
	if parentId == 0 {
		return ""
	}

	visited := map[int64]struct{}{parentId: {}}
	chain := []int64{parentId}
	cur := parentId
	for {
		next, ok := parents[cur]
		if !ok || next == 0 {
			break
		}
		if _, seen := visited[next]; seen {
			break
		}
		visited[next] = struct{}{}
		chain = append(chain, next)
		cur = next
	}

	parts := make([]string, 0, len(chain))
	for i := len(chain) - 1; i >= 0; i-- {
		parts = append(parts, strconv.FormatInt(chain[i], 10))
	}
	return strings.Join(parts, ",")
}

// CreateDept 创建部门，祖先链按当前父链落盘
func (ds *DeptService) CreateDept(dept *model.Dept) error {
	if dept.ParentId != 0 {
		parent, err := ds.deptRepo.GetDeptById(dept.ParentId)
		if err != nil {
			return errors.New("parent department not found")
		}
		if parent.Status != model.StatusNormal {
			return errors.New("parent department is disabled")
		}
	}
	depts, err := ds.deptRepo.ListAllDepts()
	if err != nil {
		return err
	}
	dept.Ancestors = ComputeAncestors(parentLinks(depts), dept.ParentId)
	return ds.deptRepo.CreateDept(dept)
}

// UpdateDept 更新部门，父级变化时重算自身祖先链
func (ds *DeptService) UpdateDept(deptId int64, updates map[string]any) error {
	if parentId, ok := updates["parent_id"].(int64); ok {
		if parentId == deptId {
			return errors.New("department cannot be its own parent")
		}
		depts, err := ds.deptRepo.ListAllDepts()
		if err != nil {
			return err
		}
		updates["ancestors"] = ComputeAncestors(parentLinks(depts), parentId)
	}
	return ds.deptRepo.UpdateDept(deptId, updates)
}

// DeleteDept 删除部门，存在下级或在编用户时拒绝
func (ds *DeptService) DeleteDept(deptId int64) error {
	hasChildren, err := ds.deptRepo.HasChildren(deptId)
	if err != nil {
		return err
	}
	if hasChildren {
		return errors.New("department has children, remove them first")
	}
	hasUsers, err := ds.deptRepo.HasUsers(deptId)
	if err != nil {
		return err
	}
	if hasUsers {
		return errors.New("department still has users")
	}
	return ds.deptRepo.DeleteDept(deptId)
}

// ListDepts 按数据权限过滤后的部门列表
func (ds *DeptService) ListDepts(userId int64, query *model.DeptQuery) ([]model.Dept, error) {
	depts, err := ds.deptRepo.ListDepts(query)
	if err != nil {
		return nil, err
	}
	visible, err := ds.authSvc.VisibleDeptIds(userId)
	if err != nil {
		return nil, err
	}
	if visible == nil {
		return depts, nil
	}
	allowed := make(map[int64]struct{}, len(visible))
	for _, id := range visible {
		allowed[id] = struct{}{}
	}
	out := make([]model.Dept, 0, len(depts))
	for _, d := range depts {
		if _, ok := allowed[d.DeptId]; ok {
			out = append(out, d)
		}
	}
	return out, nil
}

// TreeSelect 部门下拉树
func (ds *DeptService) TreeSelect(userId int64) ([]*model.LabelTree, error) {
	depts, err := ds.ListDepts(userId, &model.DeptQuery{Status: model.StatusNormal})
	if err != nil {
		return nil, err
	}
	nodes := make([]model.TreeNode, 0, len(depts))
	for _, d := range depts {
		nodes = append(nodes, model.TreeNode{Id: d.DeptId, Label: d.DeptName, ParentId: d.ParentId})
	}
	return BuildLabelTree(nodes), nil
}

// RoleDeptTreeSelect 部门下拉树及角色自定义数据权限勾选的部门
func (ds *DeptService) RoleDeptTreeSelect(userId, roleId int64) ([]*model.LabelTree, []int64, error) {
	tree, err := ds.TreeSelect(userId)
	if err != nil {
		return nil, nil, err
	}
	checkedKeys, err := ds.roleRepo.GetDeptIdsByRoleId(roleId)
	if err != nil {
		return nil, nil, err
	}
	if checkedKeys == nil {
		checkedKeys = []int64{}
	}
	return tree, checkedKeys, nil
}

func parentLinks(depts []model.Dept) map[int64]int64 {
	links := make(map[int64]int64, len(depts))
	for _, d := range depts {
		links[d.DeptId] = d.ParentId
	}
	return links
}
