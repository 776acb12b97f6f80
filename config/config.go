package config

import (
	"fmt"
	"time"
)

type Configs struct {
	Env string `toml:"env"`

	Database  DatabaseConfigs  `toml:"database"`
	ApiServer APIServerConfigs `toml:"api_server"`
	Auth      AuthConfigs      `toml:"auth"`
	Storage   S3Configs        `toml:"storage"`
	File      FileConfigs      `toml:"file"`
	Redis     RedisConfigs     `toml:"redis"`
	Pix       PixConfigs       `toml:"pix"`
	Email     EmailConfigs     `toml:"email"`
	Log       LogConfigs       `toml:"log"`
}

// IsProduction reports whether outbound side effects (real SMTP, real PIX
// orders) should happen.
func (c Configs) IsProduction() bool {
	return c.Env == "production"
}

type DatabaseConfigs struct {
	Type     string `toml:"type"`
	Host     string `toml:"host"`
	Port     string `toml:"port"`
	Database string `toml:"database"`
	User     string `toml:"user"`
	Password string `toml:"password"`
	File     string `toml:"file"`
}

func (d *DatabaseConfigs) ConnectionString() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		d.User,
		d.Password,
		d.Host,
		d.Port,
		d.Database,
	)
}

type ServerConfigs struct {
	Host string `toml:"host"`
	Port string `toml:"port"`
	Cert string `toml:"cert"`
	Key  string `toml:"key"`
}

func (s ServerConfigs) Address() string {
	return fmt.Sprintf("%s:%s", s.Host, s.Port)
}

type APIServerConfigs struct {
	ServerConfigs

	MaxLimit       int      `toml:"max_limit"`
	DefaultLimit   int      `toml:"default_limit"`
	AllowedOrigins []string `toml:"allowed_origins"`
}

type AuthConfigs struct {
	TokenSecret string       `toml:"token_secret"`
	AccessToken TokenConfigs `toml:"access_token"`

	// AdminPassword may be a bcrypt hash or a plain value.
	AdminUsername string `toml:"admin_username"`
	AdminPassword string `toml:"admin_password"`
}

type TokenConfigs struct {
	Name       string        `toml:"name"`
	Expiration time.Duration `toml:"expiration"`
}

type S3Configs struct {
	Region         string `toml:"region"`
	Endpoint       string `toml:"endpoint"`
	PublicEndpoint string `toml:"public_endpoint"`
	AccessKey      string `toml:"access_key"`
	SecretKey      string `toml:"secret_key"`
	Bucket         string `toml:"bucket"`
	SSLDisabled    bool   `toml:"ssl_disabled"`
}

type FileConfigs struct {
	// MaxSize is in MiB.
	MaxSize int `toml:"max_size"`
}

func (f FileConfigs) MaxBytes() int64 {
	return int64(f.MaxSize) * 1024 * 1024
}

type RedisConfigs struct {
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
}

type PixConfigs struct {
	Enabled      bool   `toml:"enabled"`
	Endpoint     string `toml:"endpoint"`
	ClientKey    string `toml:"client_key"`
	ClientSecret string `toml:"client_secret"`
	CallbackURL  string `toml:"callback_url"`

	// WebhookToken, when set, must be sent by the gateway as the token query
	// parameter of the callback URL.
	WebhookToken string `toml:"webhook_token"`
}

type EmailConfigs struct {
	Enabled  bool   `toml:"enabled"`
	Host     string `toml:"host"`
	Port     int    `toml:"port"`
	Username string `toml:"username"`
	Password string `toml:"password"`
	FromName string `toml:"from_name"`
}

type LogConfigs struct {
	Level    string `toml:"level"`
	Encoding string `toml:"encoding"`
}

// Default returns the configuration used when neither the config file nor
// the environment overrides a value.
func Default() Configs {
	return Configs{
		Env: "local",
		Database: DatabaseConfigs{
			Type:     "sqlite",
			Host:     "localhost",
			Port:     "3306",
			Database: "raffle",
			User:     "root",
			File:     "raffle.db",
		},
		ApiServer: APIServerConfigs{
			ServerConfigs: ServerConfigs{Port: "8080"},
			MaxLimit:      100,
			DefaultLimit:  20,
		},
		Auth: AuthConfigs{
			AccessToken: TokenConfigs{
				Name:       "access_token",
				Expiration: 24 * time.Hour,
			},
			AdminUsername: "ADMIN",
		},
		Storage: S3Configs{
			Region: "us-east-1",
			Bucket: "images",
		},
		File: FileConfigs{MaxSize: 5},
		Pix: PixConfigs{
			Endpoint: "https://api.horsepay.io",
		},
		Email: EmailConfigs{
			Port:     587,
			FromName: "Rifa Premiada",
		},
		Log: LogConfigs{
			Level:    "info",
			Encoding: "json",
		},
	}
}
