// Package config 读取本地服务的配置：命令行 > 环境变量 > YAML 文件 > 默认值
package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Addr        string `yaml:"addr"`
	WebDir      string `yaml:"web_dir"`
	MobileDir   string `yaml:"mobile_dir"`
	RecordDir   string `yaml:"record_dir"`
	LogLevel    string `yaml:"log_level"`
	LogFile     string `yaml:"log_file"`
	OpenBrowser bool   `yaml:"open_browser"`
}

func Default() Config {
	return Config{
		Addr:        ":2888",
		WebDir:      "./web",
		RecordDir:   "./records",
		LogLevel:    "info",
		OpenBrowser: true,
	}
}

var ErrBadConfigFile = errors.New("bad config file")

// LoadFile 用 YAML 文件覆盖 base 中出现的字段；path 为空时原样返回
func LoadFile(path string, base Config) (Config, error) {
	if path == "" {
		return base, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return base, err
	}
	cfg := base
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return base, fmt.Errorf("%s: %w: %v", path, ErrBadConfigFile, err)
	}
	return cfg, nil
}

// Load 解析命令行。-config 指定的文件先于环境变量生效，命令行最后覆盖。
func Load(fs *flag.FlagSet, args []string) (Config, error) {
	cfgPath := getenv("XIANGQI_CONFIG", "")
	for i, a := range args {
		switch {
		case a == "-config" || a == "--config":
			if i+1 < len(args) {
				cfgPath = args[i+1]
			}
		case strings.HasPrefix(a, "-config=") || strings.HasPrefix(a, "--config="):
			_, cfgPath, _ = strings.Cut(a, "=")
		}
	}

	base, err := LoadFile(cfgPath, Default())
	if err != nil {
		return base, err
	}

	cfg := base
	fs.String("config", cfgPath, "YAML config file")
	fs.StringVar(&cfg.Addr, "addr", getenv("XIANGQI_ADDR", base.Addr), "listen address")
	fs.StringVar(&cfg.WebDir, "web", getenv("XIANGQI_WEB", base.WebDir), "directory with index.html / js / css")
	fs.StringVar(&cfg.MobileDir, "web-mobile", getenv("XIANGQI_WEB_MOBILE", base.MobileDir), "directory with mobile assets (default: same as -web)")
	fs.StringVar(&cfg.RecordDir, "records", getenv("XIANGQI_RECORDS", base.RecordDir), "directory for saved records")
	fs.StringVar(&cfg.LogLevel, "log-level", getenv("XIANGQI_LOG_LEVEL", base.LogLevel), "trace|debug|info|warn|error")
	fs.StringVar(&cfg.LogFile, "log-file", getenv("XIANGQI_LOG_FILE", base.LogFile), "write logs to this file instead of stderr")
	fs.BoolVar(&cfg.OpenBrowser, "open", getenb("XIANGQI_OPEN", base.OpenBrowser), "open the browser after start")
	if err := fs.Parse(args); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// SetupLogging 按配置设置 logrus 的级别与输出，返回需要关闭的日志文件（可能为 nil）
func (c Config) SetupLogging(log *logrus.Logger) (*os.File, error) {
	lvl, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return nil, err
	}
	log.SetLevel(lvl)
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	if c.LogFile == "" {
		return nil, nil
	}
	f, err := os.OpenFile(c.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, err
	}
	log.SetOutput(f)
	return f, nil
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenb(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "1", "true", "t", "yes", "y", "on":
			return true
		case "0", "false", "f", "no", "n", "off":
			return false
		}
	}
	return def
}
