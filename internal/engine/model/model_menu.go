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

// Menu 菜单表
type Menu struct {
	BaseModel
	MenuId        int64  `gorm:"column:menu_id;primaryKey;autoIncrement" json:"menuId"`
	MenuName      string `gorm:"column:menu_name;not null" json:"menuName"`
	ParentId      int64  `gorm:"column:parent_id;default:0;index" json:"parentId"` // 父菜单ID，0 表示顶级
	OrderNum      int    `gorm:"column:order_num;default:0" json:"orderNum"`
	Path          string `gorm:"column:path" json:"path"`
	Component     string `gorm:"column:component" json:"component"`
	ComponentName string `gorm:"column:component_name" json:"componentName"`
	MenuType      string `gorm:"column:menu_type" json:"menuType"` // M-目录，C-菜单，F-按钮，L-外链
	Visible       string `gorm:"column:visible;default:0" json:"visible"` // 0-显示，1-隐藏
	Perms         string `gorm:"column:perms" json:"perms"`               // 权限标识
	Icon          string `gorm:"column:icon;default:#" json:"icon"`
	IsFrame       int    `gorm:"column:is_frame;default:1" json:"isFrame"`
	NoCache       bool   `gorm:"column:no_cache;default:false" json:"noCache"`
	Affix         bool   `gorm:"column:affix;default:false" json:"affix"`
	Breadcrumb    bool   `gorm:"column:breadcrumb;default:true" json:"breadcrumb"`
	Status        string `gorm:"column:status;default:0" json:"status"`
}

func (Menu) TableName() string {
	return "sys_menu"
}

// 菜单类型常量
const (
	MenuTypeDir    = "M" // 目录
	MenuTypeMenu   = "C" // 菜单
	MenuTypeButton = "F" // 按钮
	MenuTypeLink   = "L" // 外链
)

// 菜单显示状态常量
const (
	MenuVisible = "0"
	MenuHidden  = "1"
)

// TreeNode 树选择的扁平输入结点
type TreeNode struct {
	Id       int64  `json:"id"`
	Label    string `json:"label"`
	ParentId int64  `json:"parent_id"`
}

// LabelTree 树选择结果结点，无子结点时不输出 children 字段
type LabelTree struct {
	Id       int64        `json:"id"`
	Label    string       `json:"label"`
	Children []*LabelTree `json:"children,omitempty"`
}

// MetaVO 前端路由 meta
type MetaVO struct {
	Title      string  `json:"title"`
	Icon       string  `json:"icon"`
	NoCache    bool    `json:"noCache"`
	Link       *string `json:"link"`
	Affix      bool    `json:"affix,omitempty"`
	Breadcrumb bool    `json:"breadcrumb,omitempty"`
}

// RouterVO 前端路由结点
type RouterVO struct {
	Name       string      `json:"name,omitempty"`
	Path       string      `json:"path"`
	Hidden     bool        `json:"hidden"`
	Redirect   string      `json:"redirect,omitempty"`
	Component  *string     `json:"component"`
	AlwaysShow bool        `json:"alwaysShow,omitempty"`
	Meta       *MetaVO     `json:"meta"`
	Children   []*RouterVO `json:"children,omitempty"`
}

// MenuQuery 菜单列表查询条件
type MenuQuery struct {
	MenuName string
	Status   string
}
