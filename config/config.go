package config

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

// Config 应用配置
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	JWT      JWTConfig      `mapstructure:"jwt"`
	Email    EmailConfig    `mapstructure:"email"`
	Ledger   LedgerConfig   `mapstructure:"ledger"`
	Log      LogConfig      `mapstructure:"log"`
}

// ServerConfig 服务器配置
type ServerConfig struct {
	Port    string `mapstructure:"port"`
	Mode    string `mapstructure:"mode"`
	BaseURL string `mapstructure:"base_url"`
}

// DatabaseConfig 数据库配置，driver 支持 mysql / postgres
type DatabaseConfig struct {
	Driver       string `mapstructure:"driver"`
	Host         string `mapstructure:"host"`
	Port         string `mapstructure:"port"`
	Username     string `mapstructure:"username"`
	Password     string `mapstructure:"password"`
	DBName       string `mapstructure:"dbname"`
	Charset      string `mapstructure:"charset"`
	SSLMode      string `mapstructure:"sslmode"`
	MaxIdleConns int    `mapstructure:"max_idle_conns"`
	MaxOpenConns int    `mapstructure:"max_open_conns"`
	LogLevel     string `mapstructure:"log_level"`
}

// JWTConfig JWT配置
type JWTConfig struct {
	Secret      string        `mapstructure:"secret"`
	ExpireHours int           `mapstructure:"expire_hours"`
	ExpireTime  time.Duration `mapstructure:"-"`
}

// EmailConfig 邮件配置
type EmailConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
	From     string `mapstructure:"from"`
}

// LedgerConfig 记账相关配置
type LedgerConfig struct {
	// Timezone 判断“今天”所用的时区，交易日期不能晚于该时区的当天
	Timezone       string         `mapstructure:"timezone"`
	CurrencyLocale string         `mapstructure:"currency_locale"`
	RecentLimit    int            `mapstructure:"recent_limit"`
	Location       *time.Location `mapstructure:"-"`
}

// LogConfig 日志配置
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"` // console / json
}

var (
	// GlobalConfig 全局配置实例
	GlobalConfig *Config
)

// LoadConfig 加载配置
// 优先级: 环境变量 > 外部配置文件 > 嵌入的默认配置
// configPath: 可选的外部配置文件路径
func LoadConfig(configPath string) (*Config, error) {
	// .env 不存在时直接使用系统环境变量
	if err := godotenv.Load(); err == nil {
		log.Info().Msg("已加载 .env 文件")
	}

	v := viper.New()
	v.SetConfigType("yaml")

	// 1. 首先加载嵌入的默认配置
	if err := v.ReadConfig(bytes.NewReader(DefaultConfigYAML)); err != nil {
		return nil, fmt.Errorf("读取内置配置失败: %w", err)
	}

	// 2. 尝试加载外部配置文件（可选，用于覆盖默认配置）
	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.MergeInConfig(); err != nil {
			log.Warn().Err(err).Str("path", configPath).Msg("无法读取指定配置文件")
		} else {
			log.Info().Str("path", configPath).Msg("已合并外部配置文件")
		}
	} else {
		externalViper := viper.New()
		externalViper.SetConfigName("config")
		externalViper.SetConfigType("yaml")
		externalViper.AddConfigPath(".")
		externalViper.AddConfigPath("./config")
		externalViper.AddConfigPath("/etc/moneyflow")
		externalViper.AddConfigPath("$HOME/.moneyflow")

		if err := externalViper.ReadInConfig(); err == nil {
			if err := v.MergeConfigMap(externalViper.AllSettings()); err != nil {
				log.Warn().Err(err).Msg("合并外部配置失败")
			} else {
				log.Info().Str("path", externalViper.ConfigFileUsed()).Msg("已合并外部配置文件")
			}
		}
	}

	// 3. 环境变量覆盖，如 MONEYFLOW_DATABASE_HOST
	v.SetEnvPrefix("MONEYFLOW")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("解析配置失败: %w", err)
	}
	if err := cfg.normalize(); err != nil {
		return nil, err
	}

	GlobalConfig = &cfg
	return &cfg, nil
}

// normalize 填充默认值并解析派生字段
func (c *Config) normalize() error {
	if c.JWT.ExpireHours <= 0 {
		c.JWT.ExpireHours = 24
	}
	c.JWT.ExpireTime = time.Duration(c.JWT.ExpireHours) * time.Hour

	switch c.Database.Driver {
	case "":
		c.Database.Driver = "mysql"
	case "mysql", "postgres":
	default:
		return fmt.Errorf("不支持的数据库驱动: %s", c.Database.Driver)
	}

	if c.Ledger.RecentLimit <= 0 {
		c.Ledger.RecentLimit = 10
	}
	loc := time.Local
	if c.Ledger.Timezone != "" && c.Ledger.Timezone != "Local" {
		l, err := time.LoadLocation(c.Ledger.Timezone)
		if err != nil {
			return fmt.Errorf("无效的时区 %s: %w", c.Ledger.Timezone, err)
		}
		loc = l
	}
	c.Ledger.Location = loc
	return nil
}

// MustLoadConfig 加载配置，失败则 panic
func MustLoadConfig(configPath string) *Config {
	cfg, err := LoadConfig(configPath)
	if err != nil {
		panic(fmt.Sprintf("加载配置失败: %v", err))
	}
	return cfg
}

// GetConfig 获取全局配置
func GetConfig() *Config {
	if GlobalConfig == nil {
		panic("配置未初始化，请先调用 LoadConfig")
	}
	return GlobalConfig
}

// PrintConfig 打印当前配置（隐藏敏感信息）
func PrintConfig() {
	if GlobalConfig == nil {
		return
	}
	log.Info().
		Str("port", GlobalConfig.Server.Port).
		Str("mode", GlobalConfig.Server.Mode).
		Str("database", fmt.Sprintf("%s://%s@%s:%s/%s",
			GlobalConfig.Database.Driver,
			GlobalConfig.Database.Username,
			GlobalConfig.Database.Host,
			GlobalConfig.Database.Port,
			GlobalConfig.Database.DBName)).
		Bool("email", GlobalConfig.Email.Enabled).
		Str("timezone", GlobalConfig.Ledger.Location.String()).
		Str("currency_locale", GlobalConfig.Ledger.CurrencyLocale).
		Msg("当前配置")
}
