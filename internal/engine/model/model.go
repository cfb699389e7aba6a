package model

import "time"

// BaseModel 模型基类，记录创建/更新审计字段
type BaseModel struct {
	CreateBy   string    `gorm:"column:create_by" json:"createBy"`
	CreateTime time.Time `gorm:"column:create_time;autoCreateTime" json:"createTime"`
	UpdateBy   string    `gorm:"column:update_by" json:"updateBy"`
	UpdateTime time.Time `gorm:"column:update_time;autoUpdateTime" json:"updateTime"`
	Remark     string    `gorm:"column:remark" json:"remark"`
}

// 通用状态常量：0-正常，1-停用
const (
	StatusNormal   = "0"
	StatusDisabled = "1"
)
