/**
* Name: 			config.go
* Description: 		서버 시작 시 한 번 읽어들이는 설정
* Workflow: 		.env 로드, 환경변수 파싱, validator 로 검증 (fail fast)
 */

package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

type Config struct {
	Port    string `validate:"required,numeric"`
	GinMode string `validate:"oneof=debug release test"`

	// Google service account
	GoogleClientEmail string `validate:"required,email"`
	GooglePrivateKey  string `validate:"required"`
	GoogleSheetID     string `validate:"required"`

	SheetRange       string `validate:"required"`
	ValueInputOption string `validate:"oneof=RAW USER_ENTERED"`

	AppendRetries   int           `validate:"min=0,max=10"`
	RetryBaseDelay  time.Duration `validate:"min=0"`
	WritesPerMinute int           `validate:"min=0"`

	// 0 이면 요청 타임아웃 없음
	RequestTimeout time.Duration `validate:"min=0"`

	LogLevel string `validate:"oneof=debug info warn error"`
	LogFile  string

	CORSAllowOrigins []string
}

const (
	DefaultPort             = "8080"
	DefaultSheetRange       = "A1:D1"
	DefaultValueInputOption = "RAW"
	DefaultRetryBaseDelay   = 500 * time.Millisecond
)

var validate = validator.New()

// Load reads .env (if any) and the process environment into a validated Config.
func Load(envFiles ...string) (*Config, error) {
	if err := godotenv.Load(envFiles...); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("config.Load(): failed to read env file: %w", err)
	}
	return FromEnv(os.Getenv)
}

// FromEnv builds a Config from an env lookup function.
func FromEnv(getenv func(string) string) (*Config, error) {
	cfg := &Config{
		Port:              valueOr(getenv("PORT"), DefaultPort),
		GinMode:           valueOr(getenv("GIN_MODE"), "release"),
		GoogleClientEmail: getenv("GOOGLE_CLIENT_EMAIL"),
		GooglePrivateKey:  normalizePrivateKey(getenv("GOOGLE_PRIVATE_KEY")),
		GoogleSheetID:     getenv("GOOGLE_SHEET_ID"),
		SheetRange:        valueOr(getenv("SHEET_RANGE"), DefaultSheetRange),
		ValueInputOption:  strings.ToUpper(valueOr(getenv("SHEET_VALUE_INPUT_OPTION"), DefaultValueInputOption)),
		LogLevel:          strings.ToLower(valueOr(getenv("LOG_LEVEL"), "info")),
		LogFile:           getenv("LOG_FILE"),
		CORSAllowOrigins:  splitList(getenv("CORS_ALLOW_ORIGINS")),
	}

	var err error
	if cfg.AppendRetries, err = intOr(getenv("SHEETS_APPEND_RETRIES"), 0); err != nil {
		return nil, fmt.Errorf("config: SHEETS_APPEND_RETRIES: %w", err)
	}
	if cfg.WritesPerMinute, err = intOr(getenv("SHEETS_WRITES_PER_MINUTE"), 0); err != nil {
		return nil, fmt.Errorf("config: SHEETS_WRITES_PER_MINUTE: %w", err)
	}
	if cfg.RetryBaseDelay, err = durationOr(getenv("SHEETS_RETRY_BASE_DELAY"), DefaultRetryBaseDelay); err != nil {
		return nil, fmt.Errorf("config: SHEETS_RETRY_BASE_DELAY: %w", err)
	}
	if cfg.RequestTimeout, err = durationOr(getenv("REQUEST_TIMEOUT"), 0); err != nil {
		return nil, fmt.Errorf("config: REQUEST_TIMEOUT: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate reports every missing or malformed key at once.
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("config: %w", err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s (%s)", envKey(fe.Field()), fe.Tag()))
	}
	return fmt.Errorf("config: invalid settings: %s", strings.Join(msgs, ", "))
}

// Addr is the gin listen address.
func (c *Config) Addr() string {
	return ":" + c.Port
}

var envKeys = map[string]string{
	"Port":              "PORT",
	"GinMode":           "GIN_MODE",
	"GoogleClientEmail": "GOOGLE_CLIENT_EMAIL",
	"GooglePrivateKey":  "GOOGLE_PRIVATE_KEY",
	"GoogleSheetID":     "GOOGLE_SHEET_ID",
	"SheetRange":        "SHEET_RANGE",
	"ValueInputOption":  "SHEET_VALUE_INPUT_OPTION",
	"AppendRetries":     "SHEETS_APPEND_RETRIES",
	"RetryBaseDelay":    "SHEETS_RETRY_BASE_DELAY",
	"WritesPerMinute":   "SHEETS_WRITES_PER_MINUTE",
	"RequestTimeout":    "REQUEST_TIMEOUT",
	"LogLevel":          "LOG_LEVEL",
}

func envKey(field string) string {
	if k, ok := envKeys[field]; ok {
		return k
	}
	return field
}

// .env 에 한 줄로 들어간 키는 "\n" 이 이스케이프 되어 있음
func normalizePrivateKey(key string) string {
	return strings.ReplaceAll(key, `\n`, "\n")
}

func valueOr(v, def string) string {
	if strings.TrimSpace(v) == "" {
		return def
	}
	return v
}

func intOr(v string, def int) (int, error) {
	if strings.TrimSpace(v) == "" {
		return def, nil
	}
	return strconv.Atoi(strings.TrimSpace(v))
}

func durationOr(v string, def time.Duration) (time.Duration, error) {
	if strings.TrimSpace(v) == "" {
		return def, nil
	}
	return time.ParseDuration(strings.TrimSpace(v))
}

func splitList(v string) []string {
	var out []string
	for _, s := range strings.Split(v, ",") {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
