package model

// Notice 通知公告表
type Notice struct {
	BaseModel
	NoticeId      int64  `gorm:"column:notice_id;primaryKey;autoIncrement" json:"noticeId"`
	NoticeTitle   string `gorm:"column:notice_title;not null" json:"noticeTitle"`
	NoticeContent string `gorm:"column:notice_content;type:text" json:"noticeContent"`
	NoticeType    string `gorm:"column:notice_type" json:"noticeType"` // 1-通知，2-公告
	Status        string `gorm:"column:status;default:0" json:"status"`
}

func (Notice) TableName() string {
	return "sys_notice"
}

// NoticeQuery 通知公告查询条件
type NoticeQuery struct {
	PageNum     int
	PageSize    int
	NoticeTitle string
	NoticeType  string
	CreateBy    string
}
