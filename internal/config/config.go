package config

import (
	"fmt"
	"strings"

	"github.com/blues/spacedao/internal/logger"
	"github.com/spf13/viper"
)

const (
	StorageMemory   = "memory"
	StoragePostgres = "postgres"

	ChainProviderMock     = "mock"
	ChainProviderEthereum = "ethereum"
)

type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Storage  StorageConfig  `mapstructure:"storage"`
	Database DatabaseConfig `mapstructure:"database"`
	Chain    ChainConfig    `mapstructure:"chain"`
	Task     TaskConfig     `mapstructure:"task"`
	Log      LogConfig      `mapstructure:"log"`
}

type ServerConfig struct {
	Port string `mapstructure:"port"`
	Mode string `mapstructure:"mode"`
}

// StorageConfig 存储后端配置
type StorageConfig struct {
	Driver string `mapstructure:"driver"` // memory 或 postgres
	Seed   bool   `mapstructure:"seed"`   // 启动时写入示例数据
}

type DatabaseConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	DBName   string `mapstructure:"dbname"`
	SSLMode  string `mapstructure:"sslmode"`
}

// DSN 生成 postgres 连接串
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// ChainConfig 钱包查询配置
type ChainConfig struct {
	Provider string `mapstructure:"provider"`  // mock 或 ethereum
	RpcUrl   string `mapstructure:"rpc_url"`   // RPC节点URL
	PoolSize int    `mapstructure:"pool_size"` // 批量查询余额的协程数
	Timeout  int    `mapstructure:"timeout"`   // 单次查询超时（秒）
}

type TaskConfig struct {
	StatsInterval int `mapstructure:"stats_interval"` // 秒，默认 0 不启用
}

type LogConfig struct {
	Level  string `mapstructure:"level"`  // 日志级别: debug, info, warn, error, fatal
	Output string `mapstructure:"output"` // 输出目标: stdout, stderr, file
	File   string `mapstructure:"file"`   // 日志文件路径（当output为file时使用）
}

// GetLevel 实现 logger.LogConfig 接口
func (l LogConfig) GetLevel() string {
	return l.Level
}

// GetOutput 实现 logger.LogConfig 接口
func (l LogConfig) GetOutput() string {
	return l.Output
}

// GetFile 实现 logger.LogConfig 接口
func (l LogConfig) GetFile() string {
	return l.File
}

// Load 加载配置，失败直接退出
func Load() *Config {
	cfg, err := LoadFrom(".", "./config", "/etc/spacedao")
	if err != nil {
		logger.Fatal("Unable to load config: %v", err)
	}
	return cfg
}

// LoadFrom 从指定目录查找 config.yaml，环境变量 SPACEDAO_* 优先
func LoadFrom(paths ...string) (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	for _, p := range paths {
		v.AddConfigPath(p)
	}

	// 设置默认值
	v.SetDefault("server.port", "5000")
	v.SetDefault("server.mode", "debug")
	v.SetDefault("storage.driver", StorageMemory)
	v.SetDefault("storage.seed", true)
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.password", "")
	v.SetDefault("database.dbname", "spacedao")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("chain.provider", ChainProviderMock)
	v.SetDefault("chain.rpc_url", "")
	v.SetDefault("chain.pool_size", 8)
	v.SetDefault("chain.timeout", 10)
	v.SetDefault("task.stats_interval", 0)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.output", "stdout")
	v.SetDefault("log.file", "logs/app.log")

	// 自动读取环境变量，例如 SPACEDAO_SERVER_PORT
	v.SetEnvPrefix("SPACEDAO")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		logger.Warn("Config file not found, using defaults and environment")
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config into struct: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate 校验枚举类配置
func (c *Config) Validate() error {
	switch c.Storage.Driver {
	case StorageMemory, StoragePostgres:
	default:
		return fmt.Errorf("unsupported storage driver %q", c.Storage.Driver)
	}

	switch c.Chain.Provider {
	case ChainProviderMock:
	case ChainProviderEthereum:
		if c.Chain.RpcUrl == "" {
			return fmt.Errorf("chain.rpc_url is required for provider %q", c.Chain.Provider)
		}
	default:
		return fmt.Errorf("unsupported chain provider %q", c.Chain.Provider)
	}

	if c.Task.StatsInterval < 0 {
		return fmt.Errorf("task.stats_interval must not be negative")
	}
	return nil
}
