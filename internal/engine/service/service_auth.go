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
	"strings"

	"github.com/go-atlas/atlas/internal/engine/model"
	"github.com/go-atlas/atlas/internal/engine/repo"
	"github.com/go-atlas/atlas/pkg/log"
)

// Decision 鉴权结果
type Decision struct {
	Allowed bool
	Reason  string
}

const (
	ReasonAccountDisabled        = "account disabled"
	ReasonInsufficientPermission = "insufficient permission"
	ReasonInsufficientRole       = "insufficient role"
)

var allow = Decision{Allowed: true}

type AuthService struct {
	userRepo repo.IUserRepository
	roleRepo repo.IRoleRepository
	deptRepo repo.IDeptRepository
}

func NewAuthService(userRepo repo.IUserRepository, roleRepo repo.IRoleRepository, deptRepo repo.IDeptRepository) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		roleRepo: roleRepo,
		deptRepo: deptRepo,
	}
}

// Authorize 判定用户是否具备权限标识。
// 顺序固定：账户状态门禁，超级管理员放行，再按启用角色的权限集合匹配。
func Authorize(user *model.User, roles []model.Role, perms []string, required string) Decision {
	if user.Status != model.StatusNormal {
		return Decision{Allowed: false, Reason: ReasonAccountDisabled}
	}
	if isSuperuser(roles) {
		return allow
	}
	if required == "" {
		return allow
	}
	if MatchPerm(perms, required) {
		return allow
	}
	return Decision{Allowed: false, Reason: ReasonInsufficientPermission}
}

// AuthorizeRole 判定用户是否持有指定角色标识
func AuthorizeRole(user *model.User, roles []model.Role, requiredKey string) Decision {
	if user.Status != model.StatusNormal {
		return Decision{Allowed: false, Reason: ReasonAccountDisabled}
	}
	if isSuperuser(roles) {
		return allow
	}
	for _, role := range roles {
		if role.Status != model.StatusNormal {
			continue
		}
		if role.RoleKey == requiredKey {
			return allow
		}
	}
	return Decision{Allowed: false, Reason: ReasonInsufficientRole}
}

// MatchPerm 权限标识匹配，支持全量通配 *:*:* 与按段通配
func MatchPerm(granted []string, required string) bool {
	reqParts := strings.Split(required, ":")
	for _, perm := range granted {
		if perm == model.AllPermission || perm == required {
			return true
		}
		parts := strings.Split(perm, ":")
		if len(parts) != len(reqParts) {
			continue
		}
		matched := true
		for i, part := range parts {
			if part != "*" && part != reqParts[i] {
				matched = false
				break
			}
		}
		if matched {
			return true
		}
	}
	return false
}

func isSuperuser(roles []model.Role) bool {
	for _, role := range roles {
		if role.Status != model.StatusNormal {
			continue
		}
		if role.IsSuperuser() {
			return true
		}
	}
	return false
}

func activeRoleIds(roles []model.Role) []int64 {
	ids := make([]int64, 0, len(roles))
	for _, role := range roles {
		if role.Status == model.StatusNormal {
			ids = append(ids, role.RoleId)
		}
	}
	return ids
}

// CheckPerm 加载用户与角色后执行权限判定
func (as *AuthService) CheckPerm(userId int64, required string) (Decision, error) {
	user, roles, err := as.loadPrincipal(userId)
	if err != nil {
		return Decision{}, err
	}
	var perms []string
	if !isSuperuser(roles) && required != "" {
		perms, err = as.roleRepo.GetPermsByRoleIds(activeRoleIds(roles))
		if err != nil {
			return Decision{}, err
		}
	}
	return Authorize(user, roles, perms, required), nil
}

// CheckRole 加载用户与角色后执行角色判定
func (as *AuthService) CheckRole(userId int64, requiredKey string) (Decision, error) {
	user, roles, err := as.loadPrincipal(userId)
	if err != nil {
		return Decision{}, err
	}
	return AuthorizeRole(user, roles, requiredKey), nil
}

// PermsForUser 用户的全部权限标识，超级管理员返回 *:*:*
func (as *AuthService) PermsForUser(userId int64) ([]string, error) {
	_, roles, err := as.loadPrincipal(userId)
	if err != nil {
		return nil, err
	}
	if isSuperuser(roles) {
		return []string{model.AllPermission}, nil
	}
	return as.roleRepo.GetPermsByRoleIds(activeRoleIds(roles))
}

// RoleKeysForUser 用户启用角色的标识集合，内置 1 号角色缺省标识按 admin 处理
func (as *AuthService) RoleKeysForUser(userId int64) ([]string, error) {
	_, roles, err := as.loadPrincipal(userId)
	if err != nil {
		return nil, err
	}
	keys := make([]string, 0, len(roles))
	for _, role := range roles {
		if role.Status != model.StatusNormal {
			continue
		}
		key := role.RoleKey
		if key == "" && role.RoleId == 1 {
			key = "admin"
		}
		keys = append(keys, key)
	}
	return keys, nil
}

// VisibleDeptIds 按数据权限范围解析用户可见的部门集合。
// 返回 nil 表示不过滤（全部数据权限），每次调用重新计算。
func (as *AuthService) VisibleDeptIds(userId int64) ([]int64, error) {
	user, roles, err := as.loadPrincipal(userId)
	if err != nil {
		return nil, err
	}
	if isSuperuser(roles) {
		return nil, nil
	}

	seen := make(map[int64]struct{})
	var visible []int64
	add := func(ids []int64) {
		for _, id := range ids {
			if _, ok := seen[id]; ok {
				continue
			}
			seen[id] = struct{}{}
			visible = append(visible, id)
		}
	}

	for _, role := range roles {
		if role.Status != model.StatusNormal {
			continue
		}
		switch role.DataScope {
		case model.DataScopeAll:
			return nil, nil
		case model.DataScopeCustom:
			ids, err := as.deptRepo.ListDeptIdsByRoleIds([]int64{role.RoleId})
			if err != nil {
				return nil, err
			}
			add(ids)
		case model.DataScopeDept:
			add([]int64{user.DeptId})
		case model.DataScopeDeptAndBelow:
			ids, err := as.deptRepo.ListDeptIdsByAncestor(user.DeptId)
			if err != nil {
				return nil, err
			}
			add(ids)
		default:
			log.Warnf("unknown data scope %q on role %d", role.DataScope, role.RoleId)
		}
	}
	if visible == nil {
		visible = []int64{}
	}
	return visible, nil
}

func (as *AuthService) loadPrincipal(userId int64) (*model.User, []model.Role, error) {
	user, err := as.userRepo.GetUserById(userId)
	if err != nil {
		return nil, nil, err
	}
	roles, err := as.userRepo.GetRolesByUserId(userId)
	if err != nil {
		return nil, nil, err
	}
	return user, roles, nil
}
