package core

import (
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
)

func MustLoadBaseConfig(path string) CoreConfig {
	if path == "" {
		return LoadBaseConfigFromENV()
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	conf := &CoreConfig{}
	if err = toml.Unmarshal(raw, conf); err != nil {
		panic(err)
	}

	return *conf
}

func LoadBaseConfigFromENV() CoreConfig {
	var c CoreConfig
	c.FromENV()
	return c
}

type CoreConfig struct {
	Addr     string        `toml:"addr"`
	Log      Log           `toml:"log"`
	Postgres PGConfig      `toml:"postgres"`
	Preview  PreviewConfig `toml:"preview"`
	Security Security      `toml:"security"`
}

func (c *CoreConfig) FromENV() {
	c.Addr = os.Getenv("DEVSHARE_API_SERVICE_ADDRESS")
	c.Log.FromENV()
	c.Postgres.FromENV()
	c.Preview.FromENV()
	c.Security.FromENV()
}

type PGConfig struct {
	DSN string `toml:"dsn"`
}

func (m *PGConfig) FromENV() {
	m.DSN = os.Getenv("DEVSHARE_API_POSTGRESQL_DSN")
}

func (c PGConfig) FormatDSN() string {
	return c.DSN
}

// PreviewConfig controls the Open Graph fetcher used to enrich resources.
type PreviewConfig struct {
	TimeoutSeconds int    `toml:"timeout_seconds"`
	UserAgent      string `toml:"user_agent"`
}

func (p *PreviewConfig) FromENV() {
	if raw := os.Getenv("DEVSHARE_PREVIEW_TIMEOUT_SECONDS"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil {
			p.TimeoutSeconds = v
		}
	}
	p.UserAgent = os.Getenv("DEVSHARE_PREVIEW_USER_AGENT")
}

type Security struct {
	JWTSecret string `toml:"jwt_secret"`
}

func (s *Security) FromENV() {
	s.JWTSecret = os.Getenv("DEVSHARE_JWT_SECRET")
}

type Log struct {
	Level string `toml:"level"`
	Path  string `toml:"path"`
}

func (l *Log) FromENV() {
	l.Level = os.Getenv("DEVSHARE_API_LOG_LEVEL")
	l.Path = os.Getenv("DEVSHARE_API_LOG_PATH")
}

func (l *Log) SlogLevel() slog.Level {
	switch strings.ToLower(l.Level) {
	case "info":
		return slog.LevelInfo
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelDebug
	}
}
