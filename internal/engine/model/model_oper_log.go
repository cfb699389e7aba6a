/*
Copyright 2025 Atlas Team

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package model

import "time"

// 业务操作类型
const (
	BusinessTypeCreate    = "1" // 新增
	BusinessTypeUpdate    = "2" // 修改
	BusinessTypeDelete    = "3" // 删除
	BusinessTypeGrant     = "4" // 授权
	BusinessTypeExport    = "5" // 导出
	BusinessTypeImport    = "6" // 导入
	BusinessTypeForceExit = "7" // 强退
	BusinessTypeCleanAll  = "8" // 清空数据
)

const (
	OperStatusSuccess = "0"
	OperStatusFailure = "1"
)

// OperLog 操作日志记录
type OperLog struct {
	Id            int64      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Title         string     `gorm:"column:title" json:"title"`
	Method        string     `gorm:"column:method" json:"method"`
	BusinessType  string     `gorm:"column:business_type" json:"businessType"`
	RequestMethod string     `gorm:"column:request_method" json:"requestMethod"`
	RequestUrl    string     `gorm:"column:request_url" json:"requestUrl"`
	RequestParam  string     `gorm:"column:request_param;type:text" json:"requestParam"`
	JsonResult    string     `gorm:"column:json_result;type:text" json:"jsonResult"`
	ErrorMsg      string     `gorm:"column:error_msg;type:text" json:"errorMsg"`
	Ip            string     `gorm:"column:ip" json:"ip"`
	Location      string     `gorm:"column:location" json:"location"`
	Operator      string     `gorm:"column:operator" json:"operator"`
	Status        string     `gorm:"column:status;default:0" json:"status"` // 0-成功，1-失败
	OperTime      *time.Time `gorm:"column:oper_time" json:"operTime"`
}

func (OperLog) TableName() string {
	return "sys_operation_log"
}

// OperLogQuery 操作日志查询条件
type OperLogQuery struct {
	PageNum      int
	PageSize     int
	Title        string
	Operator     string
	BusinessType string
	Status       string
	BeginTime    string
	EndTime      string
}
