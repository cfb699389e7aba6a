package model

// Config 参数配置表
type Config struct {
	BaseModel
	ConfigId    int64  `gorm:"column:config_id;primaryKey;autoIncrement" json:"configId"`
	ConfigName  string `gorm:"column:config_name" json:"configName"`
	ConfigKey   string `gorm:"column:config_key;uniqueIndex" json:"configKey"`
	ConfigValue string `gorm:"column:config_value" json:"configValue"`
	ConfigType  string `gorm:"column:config_type;default:Y" json:"configType"` // Y-系统内置，N-否
}

func (Config) TableName() string {
	return "sys_config"
}

// ConfigQuery 参数配置查询条件
type ConfigQuery struct {
	PageNum    int
	PageSize   int
	ConfigName string
	ConfigKey  string
	ConfigType string
	BeginTime  string
	EndTime    string
}
