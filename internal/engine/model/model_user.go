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

import "time"

// User 用户表
type User struct {
	BaseModel
	UserId      int64      `gorm:"column:user_id;primaryKey;autoIncrement" json:"userId"`
	DeptId      int64      `gorm:"column:dept_id;index" json:"deptId"`           // 部门ID
	Username    string     `gorm:"column:username;not null;uniqueIndex" json:"username"`
	Nickname    string     `gorm:"column:nickname" json:"nickname"`
	Email       string     `gorm:"column:email" json:"email"`
	PhoneNumber string     `gorm:"column:phone_number" json:"phoneNumber"`
	Sex         string     `gorm:"column:sex;default:2" json:"sex"`              // 0-男，1-女，2-未知
	Avatar      string     `gorm:"column:avatar" json:"avatar"`
	Password    string     `gorm:"column:password" json:"-"`
	Status      string     `gorm:"column:status;default:0" json:"status"`        // 0-正常，1-停用
	LoginIp     string     `gorm:"column:login_ip" json:"loginIp"`
	LoginDate   *time.Time `gorm:"column:login_date" json:"loginDate"`
}

func (User) TableName() string {
	return "sys_user"
}

// Login 登录请求
type Login struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Code     string `json:"code"`
	Uuid     string `json:"uuid"`
}

// CreateUserReq 新增用户请求
type CreateUserReq struct {
	Username    string  `json:"username"`
	Nickname    string  `json:"nickname"`
	Password    string  `json:"password"`
	Email       string  `json:"email"`
	PhoneNumber string  `json:"phoneNumber"`
	Sex         string  `json:"sex"`
	Status      string  `json:"status"`
	Remark      string  `json:"remark"`
	DeptId      int64   `json:"deptId"`
	RoleIds     []int64 `json:"roleIds"`
	PostIds     []int64 `json:"postIds"`
}

// UpdateUserReq 修改用户请求
type UpdateUserReq struct {
	UserId      int64   `json:"userId"`
	Nickname    string  `json:"nickname"`
	Email       string  `json:"email"`
	PhoneNumber string  `json:"phoneNumber"`
	Sex         string  `json:"sex"`
	Status      string  `json:"status"`
	Remark      string  `json:"remark"`
	DeptId      int64   `json:"deptId"`
	RoleIds     []int64 `json:"roleIds"`
	PostIds     []int64 `json:"postIds"`
}

// UserQuery 用户列表查询条件
type UserQuery struct {
	PageNum     int
	PageSize    int
	DeptId      int64
	Username    string
	PhoneNumber string
	Status      string
	BeginTime   string
	EndTime     string
}

// ChangeStatusReq 修改状态请求
type ChangeStatusReq struct {
	UserId int64  `json:"userId"`
	Status string `json:"status"`
}

// ResetPwdReq 重置密码请求
type ResetPwdReq struct {
	UserId   int64  `json:"userId"`
	Password string `json:"password"`
}

// UpdateProfileReq 个人资料修改请求
type UpdateProfileReq struct {
	Nickname    string `json:"nickname"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
	Sex         string `json:"sex"`
}

// UpdatePwdReq 个人密码修改请求
type UpdatePwdReq struct {
	OldPassword string `json:"oldPassword"`
	NewPassword string `json:"newPassword"`
}
