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

package model

// Role 角色表
type Role struct {
	BaseModel
	RoleId            int64  `gorm:"column:role_id;primaryKey;autoIncrement" json:"roleId"`
	RoleName          string `gorm:"column:role_name;not null" json:"roleName"`
	RoleKey           string `gorm:"column:role_key;not null" json:"roleKey"`   // 角色权限字符
	RoleSort          int    `gorm:"column:role_sort;default:0" json:"roleSort"`
	DataScope         string `gorm:"column:data_scope;default:1" json:"dataScope"`
	DeptCheckStrictly bool   `gorm:"column:dept_check_strictly;default:true" json:"deptCheckStrictly"`
	MenuCheckStrictly bool   `gorm:"column:menu_check_strictly;default:true" json:"menuCheckStrictly"`
	Status            string `gorm:"column:status;default:0" json:"status"`     // 0-正常，1-停用
	IsAdmin           bool   `gorm:"column:is_admin;default:false" json:"isAdmin"`
}

func (Role) TableName() string {
	return "sys_role"
}

// 数据范围常量
const (
	DataScopeAll          = "1" // 全部数据权限
	DataScopeCustom       = "2" // 自定义数据权限
	DataScopeDept         = "3" // 本部门数据权限
	DataScopeDeptAndBelow = "4" // 本部门及以下数据权限
)

// SuperRoleId 历史数据中超级管理员的固定角色ID
const SuperRoleId int64 = 1

// AllPermission 超级管理员权限标识
const AllPermission = "*:*:*"

// IsSuperuser 是否超级管理员角色。
// 新数据使用 is_admin 标记，同时兼容历史库中固定 role_id=1 的约定。
func (r *Role) IsSuperuser() bool {
	return r.IsAdmin || r.RoleId == SuperRoleId
}

// RoleQuery 角色列表查询条件
type RoleQuery struct {
	PageNum   int
	PageSize  int
	RoleName  string
	RoleKey   string
	Status    string
	BeginTime string
	EndTime   string
}

// DataScopeReq 数据权限设置请求
type DataScopeReq struct {
	RoleId    int64   `json:"roleId"`
	DataScope string  `json:"dataScope"`
	DeptIds   []int64 `json:"deptIds"`
}
