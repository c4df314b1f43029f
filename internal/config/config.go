package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"

	"github.com/oshokin/httpfmt/internal/format"
	"github.com/oshokin/httpfmt/internal/format/converter"
	"github.com/oshokin/httpfmt/internal/logger"
	"github.com/oshokin/httpfmt/internal/utils"
)

// Config holds all configuration settings.
type Config struct {
	// LogLevel specifies the process logging verbosity level.
	LogLevel string `mapstructure:"log_level" yaml:"log_level"`
	// RecordLevel is the level attached to emitted HTTP records.
	RecordLevel string `mapstructure:"record_level" yaml:"record_level"`
	// Sanitize enables redaction of sensitive headers, cookies and URI passwords.
	Sanitize bool `mapstructure:"sanitize" yaml:"sanitize"`
	// SensitiveHeaders lists the header names whose values are redacted.
	SensitiveHeaders []string `mapstructure:"sensitive_headers" yaml:"sensitive_headers"`
	// SensitiveCookies lists the cookie names whose values are redacted.
	SensitiveCookies []string `mapstructure:"sensitive_cookies" yaml:"sensitive_cookies"`
	// CookieDateLayout is the time layout of rendered cookie Expires attributes.
	CookieDateLayout string `mapstructure:"cookie_date_layout" yaml:"cookie_date_layout"`
	// CookieTimeZone is the IANA time zone of rendered cookie Expires attributes.
	CookieTimeZone string `mapstructure:"cookie_time_zone" yaml:"cookie_time_zone"`
	// XMLIndent is the number of spaces per XML nesting level.
	XMLIndent int `mapstructure:"xml_indent" yaml:"xml_indent"`
	// HTMLIndent is the number of spaces per HTML nesting level.
	HTMLIndent int `mapstructure:"html_indent" yaml:"html_indent"`
	// PrettifyCacheSize is the LRU size of every prettifier; 0 disables caching.
	PrettifyCacheSize int `mapstructure:"prettify_cache_size" yaml:"prettify_cache_size"`
	// BodyTypes adds "mime/type=TYPE" entries to the body type table.
	BodyTypes []string `mapstructure:"body_types" yaml:"body_types"`
	// MaxBodySize is the largest text body logged in full (e.g., "1MB", "64KB"); "0" disables the limit.
	MaxBodySize string `mapstructure:"max_body_size" yaml:"max_body_size"`
	// OutputPath is the directory where records are written as files; empty logs them instead.
	OutputPath string `mapstructure:"output_path" yaml:"output_path"`
	// MongoURI is the MongoDB connection string; empty disables the MongoDB sink.
	MongoURI string `mapstructure:"mongo_uri" yaml:"mongo_uri"`
	// MongoDatabase is the MongoDB database receiving records.
	MongoDatabase string `mapstructure:"mongo_database" yaml:"mongo_database"`
	// MongoCollection is the MongoDB collection receiving records.
	MongoCollection string `mapstructure:"mongo_collection" yaml:"mongo_collection"`
	// ParsedLogLevel is the parsed process log level.
	ParsedLogLevel zapcore.Level `yaml:"-"`
	// ParsedRecordLevel is the parsed record level.
	ParsedRecordLevel zapcore.Level `yaml:"-"`
	// ParsedMaxBodySize is the parsed body size limit in bytes; 0 means unlimited.
	ParsedMaxBodySize int64 `yaml:"-"`
	// ParsedCookieLocation is the loaded cookie time zone.
	ParsedCookieLocation *time.Location `yaml:"-"`
	// ParsedBodyTypes is the default body type table merged with BodyTypes.
	ParsedBodyTypes map[string]format.BodyType `yaml:"-"`
}

const (
	// DefaultConfigFilename is the default name of the configuration file.
	DefaultConfigFilename = ".httpfmt.yaml"

	// DefaultMaxBodySize is the default text body size limit.
	DefaultMaxBodySize = "1MB"

	// DefaultMongoDatabase is the default MongoDB database name.
	DefaultMongoDatabase = "httpfmt"

	// DefaultMongoCollection is the default MongoDB collection name.
	DefaultMongoCollection = "records"

	// maxIndent is the largest accepted indentation.
	maxIndent = 16

	bodyTypeSeparator = "="
)

// Static error definitions for better error handling.
var (
	// ErrUnknownLogLevel indicates that the log level is not recognized.
	ErrUnknownLogLevel = errors.New("unknown log level")
	// ErrUnknownRecordLevel indicates that the record level is not recognized.
	ErrUnknownRecordLevel = errors.New("unknown record level")
	// ErrInvalidIndent indicates that an indentation setting is out of range.
	ErrInvalidIndent = errors.New("indent must be between 0 and 16")
	// ErrInvalidCacheSize indicates that the prettifier cache size is negative.
	ErrInvalidCacheSize = errors.New("prettify_cache_size cannot be negative")
	// ErrInvalidBodyType indicates a malformed body_types entry.
	ErrInvalidBodyType = errors.New("invalid body_types entry")
	// ErrEmptyMongoDatabase indicates that the MongoDB sink has no database name.
	ErrEmptyMongoDatabase = errors.New("mongo_database cannot be empty when mongo_uri is set")
	// ErrEmptyMongoCollection indicates that the MongoDB sink has no collection name.
	ErrEmptyMongoCollection = errors.New("mongo_collection cannot be empty when mongo_uri is set")
)

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		LogLevel:          "info",
		RecordLevel:       "info",
		Sanitize:          true,
		SensitiveHeaders:  append([]string(nil), converter.SensitiveHeaders...),
		SensitiveCookies:  append([]string(nil), converter.SessionCookies...),
		CookieDateLayout:  converter.DefaultCookieDateLayout,
		CookieTimeZone:    "UTC",
		XMLIndent:         2,
		HTMLIndent:        2,
		PrettifyCacheSize: 0,
		MaxBodySize:       DefaultMaxBodySize,
		MongoDatabase:     DefaultMongoDatabase,
		MongoCollection:   DefaultMongoCollection,
	}
}

// LoadConfig loads configuration settings from a YAML file.
// When configFilename is empty and the default file does not exist, the defaults are returned.
func LoadConfig(configFilename string) (*Config, error) {
	explicit := configFilename != ""
	if !explicit {
		configFilename = DefaultConfigFilename
	}

	v := newViper()
	v.SetConfigFile(configFilename)

	if err := v.ReadInConfig(); err != nil {
		var pathErr *os.PathError
		if !explicit && errors.As(err, &pathErr) {
			return Default(), nil
		}

		return nil, fmt.Errorf("failed to read config from file: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

func newViper() *viper.Viper {
	v := viper.New()
	defaults := Default()

	v.SetDefault("log_level", defaults.LogLevel)
	v.SetDefault("record_level", defaults.RecordLevel)
	v.SetDefault("sanitize", defaults.Sanitize)
	v.SetDefault("sensitive_headers", defaults.SensitiveHeaders)
	v.SetDefault("sensitive_cookies", defaults.SensitiveCookies)
	v.SetDefault("cookie_date_layout", defaults.CookieDateLayout)
	v.SetDefault("cookie_time_zone", defaults.CookieTimeZone)
	v.SetDefault("xml_indent", defaults.XMLIndent)
	v.SetDefault("html_indent", defaults.HTMLIndent)
	v.SetDefault("prettify_cache_size", defaults.PrettifyCacheSize)
	v.SetDefault("max_body_size", defaults.MaxBodySize)
	v.SetDefault("mongo_database", defaults.MongoDatabase)
	v.SetDefault("mongo_collection", defaults.MongoCollection)

	return v
}

// ValidateConfig checks the configuration for validity and sets derived fields.
//
//nolint:cyclop,funlen // Validation functions naturally have high complexity and length due to sequential checks.
func ValidateConfig(cfg *Config) error {
	var err error

	parsedLogLevel, isLogLevelCorrect := logger.ParseLogLevel(cfg.LogLevel)
	if !isLogLevelCorrect {
		return fmt.Errorf("%w: '%s'", ErrUnknownLogLevel, cfg.LogLevel)
	}

	cfg.ParsedLogLevel = parsedLogLevel

	parsedRecordLevel, isRecordLevelCorrect := logger.ParseLogLevel(cfg.RecordLevel)
	if !isRecordLevelCorrect {
		return fmt.Errorf("%w: '%s'", ErrUnknownRecordLevel, cfg.RecordLevel)
	}

	cfg.ParsedRecordLevel = parsedRecordLevel

	if cfg.XMLIndent < 0 || cfg.XMLIndent > maxIndent {
		return fmt.Errorf("%w: xml_indent is %d", ErrInvalidIndent, cfg.XMLIndent)
	}

	if cfg.HTMLIndent < 0 || cfg.HTMLIndent > maxIndent {
		return fmt.Errorf("%w: html_indent is %d", ErrInvalidIndent, cfg.HTMLIndent)
	}

	if cfg.PrettifyCacheSize < 0 {
		return ErrInvalidCacheSize
	}

	if cfg.CookieDateLayout == "" {
		cfg.CookieDateLayout = converter.DefaultCookieDateLayout
	}

	cfg.ParsedCookieLocation, err = time.LoadLocation(cfg.CookieTimeZone)
	if err != nil {
		return fmt.Errorf("failed to load cookie time zone: %w", err)
	}

	var parsedMaxBodySize uint64

	maxBodySize := strings.TrimSpace(cfg.MaxBodySize)
	if maxBodySize != "" && maxBodySize != "0" {
		parsedMaxBodySize, err = humanize.ParseBytes(maxBodySize)
		if err != nil {
			return fmt.Errorf("failed to parse max body size: %w", err)
		}
	}

	cfg.ParsedMaxBodySize = utils.SafeUint64ToInt64(parsedMaxBodySize)

	cfg.ParsedBodyTypes, err = parseBodyTypes(cfg.BodyTypes)
	if err != nil {
		return err
	}

	if cfg.MongoURI != "" {
		if strings.TrimSpace(cfg.MongoDatabase) == "" {
			return ErrEmptyMongoDatabase
		}

		if strings.TrimSpace(cfg.MongoCollection) == "" {
			return ErrEmptyMongoCollection
		}
	}

	return nil
}

func parseBodyTypes(entries []string) (map[string]format.BodyType, error) {
	table := format.DefaultBodyTypes()

	for _, entry := range entries {
		mimeType, typeName, found := strings.Cut(entry, bodyTypeSeparator)

		mimeType = strings.TrimSpace(mimeType)
		if !found || mimeType == "" {
			return nil, fmt.Errorf("%w: '%s'", ErrInvalidBodyType, entry)
		}

		bodyType, ok := format.ParseBodyType(typeName)
		if !ok {
			return nil, fmt.Errorf("%w: unknown type in '%s'", ErrInvalidBodyType, entry)
		}

		table[mimeType] = bodyType
	}

	return table, nil
}

// FormatConfig builds the rendering configuration of a validated Config.
func (c *Config) FormatConfig() format.Config {
	location := c.ParsedCookieLocation
	if location == nil {
		location = time.UTC
	}

	layout := c.CookieDateLayout
	if layout == "" {
		layout = converter.DefaultCookieDateLayout
	}

	bodyTypes := c.ParsedBodyTypes
	if bodyTypes == nil {
		bodyTypes = format.DefaultBodyTypes()
	}

	cfg := format.Config{
		URIConverter:    converter.DefaultURI,
		HeaderConverter: converter.DefaultHeader,
		CookieConverter: converter.NewCookie(layout, location),
		ParamConverter:  converter.DefaultParam,
		Prettifiers:     format.NewPrettifiers(c.XMLIndent, c.HTMLIndent, c.PrettifyCacheSize),
		BodyTypes:       bodyTypes,
	}

	if c.Sanitize {
		cfg.URIConverter = converter.SanitizingURI
		cfg.HeaderConverter = converter.NewSanitizingHeader(c.SensitiveHeaders...)
		cfg.CookieConverter = converter.NewSanitizingCookie(c.SensitiveCookies, layout, location)
	}

	return cfg
}
