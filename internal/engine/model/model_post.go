package model

// Post 岗位表
type Post struct {
	BaseModel
	PostId   int64  `gorm:"column:post_id;primaryKey;autoIncrement" json:"postId"`
	PostCode string `gorm:"column:post_code;not null" json:"postCode"`
	PostName string `gorm:"column:post_name;not null" json:"postName"`
	PostSort int    `gorm:"column:post_sort;default:0" json:"postSort"`
	Status   string `gorm:"column:status;default:0" json:"status"`
}

func (Post) TableName() string {
	return "sys_post"
}

// PostQuery 岗位列表查询条件
type PostQuery struct {
	PageNum  int
	PageSize int
	PostCode string
	PostName string
	Status   string
}
