// Package config はtodopluginサーバーの設定を環境変数（および任意の設定ファイル）から読み込む。
package config

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/nao1215/todoplugin/pkg/middleware"
)

// EnvConfigFile は設定ファイルのパスを指定する環境変数名。
const EnvConfigFile = "TODOPLUGIN_CONFIG"

// 設定キー。環境変数名と同じ綴りで参照する。
const (
	keyPort            = "port"
	keyAllowedOrigin   = "allowed_origin"
	keyPublicURL       = "public_url"
	keyContactEmail    = "contact_email"
	keyLegalInfoURL    = "legal_info_url"
	keyShutdownTimeout = "shutdown_timeout"
	keyConfigFile      = "config_file"
)

// Config はサーバーの実行時設定。
type Config struct {
	// Port はサーバーのリッスンポート。
	Port string
	// AllowedOrigin はプリフライトを受け付ける唯一のオリジン。
	AllowedOrigin string
	// PublicURL は外部から見たサーバーのベースURL。マニフェストのURL生成に使う。
	PublicURL string
	// ContactEmail はマニフェストに載せる連絡先メールアドレス。
	ContactEmail string
	// LegalInfoURL はマニフェストに載せる利用規約のURL。
	LegalInfoURL string
	// ShutdownTimeout はグレースフルシャットダウンの待ち時間。
	ShutdownTimeout time.Duration
}

// ErrInvalidConfig は設定値が不正な場合に返すエラー。
var ErrInvalidConfig = errors.New("設定値が不正です")

// Load は環境変数から設定を読み込んで検証する。
// TODOPLUGIN_CONFIG が設定されている場合はそのファイルを先に読み込み、環境変数で上書きする。
func Load() (*Config, error) {
	return load(viper.New())
}

// load は与えられたviperインスタンスから設定を組み立てる。テストから直接呼ぶ。
func load(v *viper.Viper) (*Config, error) {
	v.SetDefault(keyPort, "8080")
	v.SetDefault(keyAllowedOrigin, middleware.DefaultAllowedOrigin)
	v.SetDefault(keyContactEmail, "support@example.com")
	v.SetDefault(keyShutdownTimeout, 5*time.Second)

	if err := v.BindEnv(keyConfigFile, EnvConfigFile); err != nil {
		return nil, fmt.Errorf("環境変数 %s のバインドに失敗: %w", EnvConfigFile, err)
	}
	for _, key := range []string{keyPort, keyAllowedOrigin, keyPublicURL, keyContactEmail, keyLegalInfoURL, keyShutdownTimeout} {
		if err := v.BindEnv(key, strings.ToUpper(key)); err != nil {
			return nil, fmt.Errorf("環境変数 %s のバインドに失敗: %w", strings.ToUpper(key), err)
		}
	}

	if path := v.GetString(keyConfigFile); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("設定ファイル %s の読み込みに失敗: %w", path, err)
		}
	}

	cfg := &Config{
		Port:            v.GetString(keyPort),
		AllowedOrigin:   v.GetString(keyAllowedOrigin),
		PublicURL:       strings.TrimSuffix(v.GetString(keyPublicURL), "/"),
		ContactEmail:    v.GetString(keyContactEmail),
		LegalInfoURL:    v.GetString(keyLegalInfoURL),
		ShutdownTimeout: v.GetDuration(keyShutdownTimeout),
	}
	if cfg.PublicURL == "" {
		cfg.PublicURL = "http://localhost:" + cfg.Port
	}
	if cfg.LegalInfoURL == "" {
		cfg.LegalInfoURL = cfg.PublicURL + "/legal"
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// validate は設定値の整合性を検証する。
func (c *Config) validate() error {
	port, err := strconv.Atoi(c.Port)
	if err != nil || port < 1 || port > 65535 {
		return fmt.Errorf("%w: PORT=%q は1〜65535の数値である必要があります", ErrInvalidConfig, c.Port)
	}

	u, err := url.Parse(c.PublicURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%w: PUBLIC_URL=%q は絶対http(s) URLである必要があります", ErrInvalidConfig, c.PublicURL)
	}

	if c.ShutdownTimeout <= 0 {
		return fmt.Errorf("%w: SHUTDOWN_TIMEOUT=%v は正の値である必要があります", ErrInvalidConfig, c.ShutdownTimeout)
	}
	return nil
}

// Addr はhttp.Serverに渡すリッスンアドレスを返す。
func (c *Config) Addr() string {
	return ":" + c.Port
}
