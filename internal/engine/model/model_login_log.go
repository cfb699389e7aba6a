package model

import "time"

const (
	LoginStatusSuccess = "0"
	LoginStatusFailure = "1"
)

// LoginLog 登录日志记录
type LoginLog struct {
	InfoId        int64      `gorm:"column:info_id;primaryKey;autoIncrement" json:"infoId"`
	Username      string     `gorm:"column:username" json:"userName"`
	IpAddr        string     `gorm:"column:ipaddr" json:"ipaddr"`
	LoginLocation string     `gorm:"column:login_location" json:"loginLocation"`
	Browser       string     `gorm:"column:browser" json:"browser"`
	Os            string     `gorm:"column:os" json:"os"`
	Status        string     `gorm:"column:status;default:0" json:"status"` // 0-成功，1-失败
	Msg           string     `gorm:"column:msg" json:"msg"`
	LoginTime     *time.Time `gorm:"column:login_time" json:"loginTime"`
}

func (LoginLog) TableName() string {
	return "sys_login_log"
}

// LoginLogQuery 登录日志查询条件
type LoginLogQuery struct {
	PageNum   int
	PageSize  int
	Username  string
	IpAddr    string
	Status    string
	BeginTime string
	EndTime   string
}
