package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

// Load reads the defaults, then the TOML file at path if it exists, then the
// environment. An empty path skips the file.
func Load(path string, getenv func(string) string) (Configs, error) {
	cfg := Default()

	if path != "" {
		if _, err := toml.DecodeFile(path, &cfg); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return cfg, fmt.Errorf("cannot decode %s: %w", path, err)
		}
	}

	if getenv == nil {
		getenv = os.Getenv
	}

	if err := applyEnv(&cfg, getenv); err != nil {
		return cfg, err
	}

	return cfg, nil
}

type envSetter func(value string) error

func stringEnv(dst *string) envSetter {
	return func(v string) error {
		*dst = v
		return nil
	}
}

func intEnv(dst *int) envSetter {
	return func(v string) error {
		n, err := strconv.Atoi(v)
		if err != nil {
			return err
		}
		*dst = n
		return nil
	}
}

func boolEnv(dst *bool) envSetter {
	return func(v string) error {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return err
		}
		*dst = b
		return nil
	}
}

func durationEnv(dst *time.Duration) envSetter {
	return func(v string) error {
		d, err := time.ParseDuration(v)
		if err != nil {
			return err
		}
		*dst = d
		return nil
	}
}

func listEnv(dst *[]string) envSetter {
	return func(v string) error {
		*dst = nil
		for _, s := range strings.Split(v, ",") {
			if s = strings.TrimSpace(s); s != "" {
				*dst = append(*dst, s)
			}
		}
		return nil
	}
}

func applyEnv(cfg *Configs, getenv func(string) string) error {
	setters := map[string]envSetter{
		"ENV": stringEnv(&cfg.Env),

		"DB_TYPE":     stringEnv(&cfg.Database.Type),
		"DB_HOST":     stringEnv(&cfg.Database.Host),
		"DB_PORT":     stringEnv(&cfg.Database.Port),
		"DB_NAME":     stringEnv(&cfg.Database.Database),
		"DB_USER":     stringEnv(&cfg.Database.User),
		"DB_PASSWORD": stringEnv(&cfg.Database.Password),
		"DB_FILE":     stringEnv(&cfg.Database.File),

		"API_HOST":        stringEnv(&cfg.ApiServer.Host),
		"API_PORT":        stringEnv(&cfg.ApiServer.Port),
		"MAX_LIMIT":       intEnv(&cfg.ApiServer.MaxLimit),
		"DEFAULT_LIMIT":   intEnv(&cfg.ApiServer.DefaultLimit),
		"ALLOWED_ORIGINS": listEnv(&cfg.ApiServer.AllowedOrigins),

		"TOKEN_SECRET":            stringEnv(&cfg.Auth.TokenSecret),
		"ACCESS_TOKEN_NAME":       stringEnv(&cfg.Auth.AccessToken.Name),
		"ACCESS_TOKEN_EXPIRATION": durationEnv(&cfg.Auth.AccessToken.Expiration),
		"ADMIN_USERNAME":          stringEnv(&cfg.Auth.AdminUsername),
		"ADMIN_PASSWORD":          stringEnv(&cfg.Auth.AdminPassword),

		"STORAGE_REGION":          stringEnv(&cfg.Storage.Region),
		"STORAGE_ENDPOINT":        stringEnv(&cfg.Storage.Endpoint),
		"STORAGE_PUBLIC_ENDPOINT": stringEnv(&cfg.Storage.PublicEndpoint),
		"STORAGE_ACCESS_KEY":      stringEnv(&cfg.Storage.AccessKey),
		"STORAGE_SECRET_KEY":      stringEnv(&cfg.Storage.SecretKey),
		"STORAGE_BUCKET":          stringEnv(&cfg.Storage.Bucket),
		"STORAGE_SSL_DISABLED":    boolEnv(&cfg.Storage.SSLDisabled),

		"FILE_MAX_SIZE": intEnv(&cfg.File.MaxSize),

		"REDIS_ADDR":     stringEnv(&cfg.Redis.Addr),
		"REDIS_PASSWORD": stringEnv(&cfg.Redis.Password),
		"REDIS_DB":       intEnv(&cfg.Redis.DB),

		"PIX_ENABLED":       boolEnv(&cfg.Pix.Enabled),
		"PIX_ENDPOINT":      stringEnv(&cfg.Pix.Endpoint),
		"PIX_CLIENT_KEY":    stringEnv(&cfg.Pix.ClientKey),
		"PIX_CLIENT_SECRET": stringEnv(&cfg.Pix.ClientSecret),
		"PIX_CALLBACK_URL":  stringEnv(&cfg.Pix.CallbackURL),
		"PIX_WEBHOOK_TOKEN": stringEnv(&cfg.Pix.WebhookToken),

		"EMAIL_ENABLED":   boolEnv(&cfg.Email.Enabled),
		"EMAIL_HOST":      stringEnv(&cfg.Email.Host),
		"EMAIL_PORT":      intEnv(&cfg.Email.Port),
		"EMAIL_USER":      stringEnv(&cfg.Email.Username),
		"EMAIL_PASS":      stringEnv(&cfg.Email.Password),
		"EMAIL_FROM_NAME": stringEnv(&cfg.Email.FromName),

		"LOG_LEVEL":    stringEnv(&cfg.Log.Level),
		"LOG_ENCODING": stringEnv(&cfg.Log.Encoding),
	}

	for name, set := range setters {
		value := getenv(name)
		if value == "" {
			continue
		}

		if err := set(value); err != nil {
			return fmt.Errorf("invalid %s: %w", name, err)
		}
	}

	return nil
}
