package config

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/viper"
)

// Config 儲存所有設定資訊
type Config struct {
	Environment string `mapstructure:"ENVIRONMENT"`
	ServerPort  string `mapstructure:"SERVER_PORT"`

	// 資料庫設定，DB_DRIVER 可為 mysql 或 sqlite
	DBDriver   string `mapstructure:"DB_DRIVER"`
	DBHost     string `mapstructure:"DB_HOST"`
	DBPort     string `mapstructure:"DB_PORT"`
	DBUser     string `mapstructure:"DB_USER"`
	DBPassword string `mapstructure:"DB_PASSWORD"`
	DBName     string `mapstructure:"DB_NAME"`
	DBPath     string `mapstructure:"DB_PATH"`
}

// LoadConfig 從環境變數或設定檔載入設定
func LoadConfig(path string) (config Config, err error) {
	viper.AddConfigPath(path)
	viper.SetConfigName(".env")
	viper.SetConfigType("env")

	viper.AutomaticEnv()
	viper.SetDefault("SERVER_PORT", "5000")
	viper.SetDefault("DB_DRIVER", "mysql")
	viper.SetDefault("DB_PORT", "3306")

	err = viper.ReadInConfig()
	if err != nil {
		// 允許設定檔不存在，此時會從環境變數中讀取
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return
		}
	}

	if err = viper.Unmarshal(&config); err != nil {
		return
	}

	err = config.Validate()
	return
}

// Validate 檢查必要設定，缺少時一次回報全部缺少的項目
func (c *Config) Validate() error {
	switch c.DBDriver {
	case "mysql":
		required := map[string]string{
			"DB_HOST":     c.DBHost,
			"DB_USER":     c.DBUser,
			"DB_PASSWORD": c.DBPassword,
			"DB_NAME":     c.DBName,
		}
		var missing []string
		for key, val := range required {
			if val == "" {
				missing = append(missing, key)
			}
		}
		if len(missing) > 0 {
			sort.Strings(missing)
			return fmt.Errorf("缺少必要環境變數: %s", strings.Join(missing, ", "))
		}
	case "sqlite":
		if c.DBPath == "" {
			return fmt.Errorf("缺少必要環境變數: DB_PATH")
		}
	default:
		return fmt.Errorf("不支援的資料庫類型: %s", c.DBDriver)
	}
	return nil
}

// GetDBConnString 回傳 MySQL 連線字串
func (c *Config) GetDBConnString() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName)
}
