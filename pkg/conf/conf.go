package conf

import (
	"reflect"

	"github.com/fsnotify/fsnotify"
	"github.com/pkg/errors"
	"github.com/spf13/viper"

	"github.com/go-atlas/atlas/pkg/log"
)

func init() {
	viper.AutomaticEnv()
}

// LoadConfigFile 加载配置目录下的 config.toml，并监听变更
func LoadConfigFile(confDir string, cfg interface{}) error {
	cfgValue := reflect.ValueOf(cfg)
	if cfgValue.Kind() != reflect.Ptr || cfgValue.IsNil() {
		return errors.New("cfg must be a non-nil pointer")
	}

	vCfg := viper.New()
	vCfg.AddConfigPath(confDir)
	vCfg.SetConfigName("config")
	vCfg.SetConfigType("toml")

	if err := vCfg.ReadInConfig(); err != nil {
		return errors.Wrap(err, "failed to read configuration file")
	}

	// 配置动态改变时，重新解析配置文件
	vCfg.WatchConfig()
	vCfg.OnConfigChange(func(e fsnotify.Event) {
		log.Infof("configuration changed, reloading: %s", e.Name)
		if err := vCfg.Unmarshal(cfg); err != nil {
			log.Errorf("failed to unmarshal configuration file: %v", err)
		}
	})

	if err := vCfg.Unmarshal(cfg); err != nil {
		return errors.Wrap(err, "failed to unmarshal configuration file")
	}

	log.Infof("configuration file path: %s", confDir)
	return nil
}
