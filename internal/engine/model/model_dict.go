package model

// DictType 字典类型表
type DictType struct {
	BaseModel
	DictId   int64  `gorm:"column:dict_id;primaryKey;autoIncrement" json:"dictId"`
	DictName string `gorm:"column:dict_name" json:"dictName"`
	DictType string `gorm:"column:dict_type;uniqueIndex" json:"dictType"`
	Status   string `gorm:"column:status;default:0" json:"status"`
}

func (DictType) TableName() string {
	return "sys_dict_type"
}

// DictData 字典数据表
type DictData struct {
	BaseModel
	DictCode   int64  `gorm:"column:dict_code;primaryKey;autoIncrement" json:"dictCode"`
	DictSort   int    `gorm:"column:dict_sort;default:0" json:"dictSort"`
	DictLabel  string `gorm:"column:dict_label" json:"dictLabel"`
	DictValue  string `gorm:"column:dict_value" json:"dictValue"`
	DictType   string `gorm:"column:dict_type;index" json:"dictType"` // 引用 sys_dict_type.dict_type
	CssClass   string `gorm:"column:css_class" json:"cssClass"`
	ListClass  string `gorm:"column:list_class" json:"listClass"`
	IsDefault  string `gorm:"column:is_default;default:N" json:"isDefault"`
	Status     string `gorm:"column:status;default:0" json:"status"`
}

func (DictData) TableName() string {
	return "sys_dict_data"
}

// DictTypeQuery 字典类型查询条件
type DictTypeQuery struct {
	PageNum   int
	PageSize  int
	DictName  string
	DictType  string
	Status    string
	BeginTime string
	EndTime   string
}

// DictDataQuery 字典数据查询条件
type DictDataQuery struct {
	PageNum   int
	PageSize  int
	DictType  string
	DictLabel string
	Status    string
}
