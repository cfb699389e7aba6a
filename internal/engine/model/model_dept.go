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

// Dept 部门表
type Dept struct {
	BaseModel
	DeptId    int64  `gorm:"column:dept_id;primaryKey;autoIncrement" json:"deptId"`
	ParentId  int64  `gorm:"column:parent_id;default:0;index" json:"parentId"`
	Ancestors string `gorm:"column:ancestors" json:"ancestors"` // 祖级列表，根到直接父级的ID逗号串
	DeptName  string `gorm:"column:dept_name;not null" json:"deptName"`
	OrderNum  int    `gorm:"column:order_num;default:0" json:"orderNum"`
	Leader    string `gorm:"column:leader" json:"leader"`
	Phone     string `gorm:"column:phone" json:"phone"`
	Email     string `gorm:"column:email" json:"email"`
	Status    string `gorm:"column:status;default:0" json:"status"`
}

func (Dept) TableName() string {
	return "sys_dept"
}

// DeptQuery 部门列表查询条件
type DeptQuery struct {
	DeptName string
	Status   string
}
