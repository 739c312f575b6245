// Package config provides Viper-based configuration loading for the zone server.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// ServerConfig holds top-level server settings.
type ServerConfig struct {
	// Mode is the server operation mode: "standalone" or "backend".
	Mode string `mapstructure:"mode"`
	// Type is the server type identifier reported in logs.
	Type string `mapstructure:"type"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	// Enabled toggles the PostgreSQL-backed character and content providers.
	Enabled         bool          `mapstructure:"enabled"`
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	Name            string        `mapstructure:"name"`
	SSLMode         string        `mapstructure:"sslmode"`
	MaxConns        int32         `mapstructure:"max_conns"`
	MinConns        int32         `mapstructure:"min_conns"`
	MaxConnLifetime time.Duration `mapstructure:"max_conn_lifetime"`
}

// DSN returns the PostgreSQL connection string.
//
// Precondition: Host, Port, User, and Name must be non-empty.
// Postcondition: Returns a valid PostgreSQL DSN string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.Name, d.SSLMode,
	)
}

// LoggingConfig holds structured logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: "debug", "info", "warn", "error".
	Level string `mapstructure:"level"`
	// Format is the log output format: "json" or "console".
	Format string `mapstructure:"format"`
}

// GameServerConfig holds the zone gRPC listener settings.
type GameServerConfig struct {
	// GRPCHost is the bind address for the zone gRPC service.
	GRPCHost string `mapstructure:"grpc_host"`
	// GRPCPort is the TCP port for the zone gRPC service.
	GRPCPort int `mapstructure:"grpc_port"`
}

// Addr returns the "host:port" gRPC address.
//
// Postcondition: Returns a non-empty string in "host:port" format.
func (g GameServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", g.GRPCHost, g.GRPCPort)
}

// ZoneConfig holds the tuning knobs shared by every zone room.
type ZoneConfig struct {
	// TickInterval is the maintenance tick period.
	TickInterval time.Duration `mapstructure:"tick_interval"`
	// IdleTimeout is how long a session may go unseen before it is reclaimed.
	IdleTimeout time.Duration `mapstructure:"idle_timeout"`
	// AttackRange is the maximum distance between a hint position and a target.
	AttackRange int `mapstructure:"attack_range"`
	// DefaultAttackMs is the basic-attack cadence given to new sessions.
	DefaultAttackMs int `mapstructure:"default_attack_ms"`
	// DefaultMaxHP is the health given to new sessions.
	DefaultMaxHP int `mapstructure:"default_max_hp"`
	// DefaultDamage is the placeholder damage-per-hit until stats are computed.
	DefaultDamage int `mapstructure:"default_damage"`
	// PersonalBudget is the mob budget of a personal phase.
	PersonalBudget int `mapstructure:"personal_budget"`
	// PartyBaseBudget is a party phase's budget before member scaling.
	PartyBaseBudget int `mapstructure:"party_base_budget"`
	// PartyMemberBudget is the budget each party member adds.
	PartyMemberBudget int `mapstructure:"party_member_budget"`
	// PartyMaxBonus caps the member-scaled part of a party budget.
	PartyMaxBonus int `mapstructure:"party_max_bonus"`
	// MinRespawn is the floor applied to respawn gates after a personal kill.
	MinRespawn time.Duration `mapstructure:"min_respawn"`
}

// DefaultZoneConfig returns the zone knobs SetDefaults registers.
func DefaultZoneConfig() ZoneConfig {
	return ZoneConfig{
		TickInterval:      5 * time.Second,
		IdleTimeout:       60 * time.Second,
		AttackRange:       150,
		DefaultAttackMs:   600,
		DefaultMaxHP:      100,
		DefaultDamage:     5,
		PersonalBudget:    6,
		PartyBaseBudget:   6,
		PartyMemberBudget: 2,
		PartyMaxBonus:     4,
		MinRespawn:        300 * time.Millisecond,
	}
}

// ContentConfig selects where zone content is read from.
type ContentConfig struct {
	// Source is "yaml" or "postgres".
	Source string `mapstructure:"source"`
	// Dir is the directory of zone YAML files when Source is "yaml".
	Dir string `mapstructure:"dir"`
}

// ScriptingConfig holds optional Lua overrides.
type ScriptingConfig struct {
	// DamageScript is a Lua file defining damage_per_hit; empty disables scripting.
	DamageScript string `mapstructure:"damage_script"`
	// InstructionLimit caps opcodes per script call; 0 uses the scripting default.
	InstructionLimit int `mapstructure:"instruction_limit"`
}

// Config is the top-level application configuration.
type Config struct {
	Server     ServerConfig     `mapstructure:"server"`
	Database   DatabaseConfig   `mapstructure:"database"`
	Logging    LoggingConfig    `mapstructure:"logging"`
	GameServer GameServerConfig `mapstructure:"gameserver"`
	Zone       ZoneConfig       `mapstructure:"zone"`
	Content    ContentConfig    `mapstructure:"content"`
	Scripting  ScriptingConfig  `mapstructure:"scripting"`
}

// Validate checks all configuration invariants.
//
// Postcondition: Returns nil if configuration is valid, or an error describing all violations.
func (c Config) Validate() error {
	var errs []string

	if err := validateServer(c.Server); err != nil {
		errs = append(errs, err.Error())
	}
	if c.Database.Enabled {
		if err := validateDatabase(c.Database); err != nil {
			errs = append(errs, err.Error())
		}
	}
	if err := validateLogging(c.Logging); err != nil {
		errs = append(errs, err.Error())
	}
	if err := validateGameServer(c.GameServer); err != nil {
		errs = append(errs, err.Error())
	}
	if err := validateZone(c.Zone); err != nil {
		errs = append(errs, err.Error())
	}
	if err := validateContent(c.Content, c.Database); err != nil {
		errs = append(errs, err.Error())
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}

func validateServer(s ServerConfig) error {
	validModes := map[string]bool{"standalone": true, "backend": true}
	if !validModes[s.Mode] {
		return fmt.Errorf("server.mode must be one of [standalone, backend], got %q", s.Mode)
	}
	if s.Type == "" {
		return errors.New("server.type must not be empty")
	}
	return nil
}

func validateDatabase(d DatabaseConfig) error {
	var errs []string
	if d.Host == "" {
		errs = append(errs, "database.host must not be empty")
	}
	if d.Port < 1 || d.Port > 65535 {
		errs = append(errs, fmt.Sprintf("database.port must be 1-65535, got %d", d.Port))
	}
	if d.User == "" {
		errs = append(errs, "database.user must not be empty")
	}
	if d.Name == "" {
		errs = append(errs, "database.name must not be empty")
	}
	validSSL := map[string]bool{"disable": true, "require": true, "verify-ca": true, "verify-full": true}
	if !validSSL[d.SSLMode] {
		errs = append(errs, fmt.Sprintf("database.sslmode must be one of [disable, require, verify-ca, verify-full], got %q", d.SSLMode))
	}
	if d.MaxConns < 1 {
		errs = append(errs, fmt.Sprintf("database.max_conns must be >= 1, got %d", d.MaxConns))
	}
	if d.MinConns < 0 {
		errs = append(errs, fmt.Sprintf("database.min_conns must be >= 0, got %d", d.MinConns))
	}
	if d.MinConns > d.MaxConns {
		errs = append(errs, "database.min_conns must not exceed database.max_conns")
	}
	if len(errs) > 0 {
		return fmt.Errorf("%s", strings.Join(errs, "; "))
	}
	return nil
}

func validateGameServer(g GameServerConfig) error {
	var errs []string
	if g.GRPCHost == "" {
		errs = append(errs, "gameserver.grpc_host must not be empty")
	}
	if g.GRPCPort < 1 || g.GRPCPort > 65535 {
		errs = append(errs, fmt.Sprintf("gameserver.grpc_port must be 1-65535, got %d", g.GRPCPort))
	}
	if len(errs) > 0 {
		return fmt.Errorf("%s", strings.Join(errs, "; "))
	}
	return nil
}

func validateZone(z ZoneConfig) error {
	var errs []string
	if z.TickInterval <= 0 {
		errs = append(errs, "zone.tick_interval must be > 0")
	}
	if z.IdleTimeout <= 0 {
		errs = append(errs, "zone.idle_timeout must be > 0")
	}
	if z.AttackRange < 1 {
		errs = append(errs, fmt.Sprintf("zone.attack_range must be >= 1, got %d", z.AttackRange))
	}
	if z.DefaultAttackMs < 1 {
		errs = append(errs, fmt.Sprintf("zone.default_attack_ms must be >= 1, got %d", z.DefaultAttackMs))
	}
	if z.DefaultMaxHP < 1 {
		errs = append(errs, fmt.Sprintf("zone.default_max_hp must be >= 1, got %d", z.DefaultMaxHP))
	}
	if z.DefaultDamage < 1 {
		errs = append(errs, fmt.Sprintf("zone.default_damage must be >= 1, got %d", z.DefaultDamage))
	}
	if z.PersonalBudget < 1 {
		errs = append(errs, fmt.Sprintf("zone.personal_budget must be >= 1, got %d", z.PersonalBudget))
	}
	if z.PartyBaseBudget < 1 {
		errs = append(errs, fmt.Sprintf("zone.party_base_budget must be >= 1, got %d", z.PartyBaseBudget))
	}
	if z.PartyMemberBudget < 0 {
		errs = append(errs, fmt.Sprintf("zone.party_member_budget must be >= 0, got %d", z.PartyMemberBudget))
	}
	if z.PartyMaxBonus < 0 {
		errs = append(errs, fmt.Sprintf("zone.party_max_bonus must be >= 0, got %d", z.PartyMaxBonus))
	}
	if z.MinRespawn < 0 {
		errs = append(errs, "zone.min_respawn must not be negative")
	}
	if len(errs) > 0 {
		return fmt.Errorf("%s", strings.Join(errs, "; "))
	}
	return nil
}

func validateContent(c ContentConfig, d DatabaseConfig) error {
	switch c.Source {
	case "yaml":
		if c.Dir == "" {
			return errors.New("content.dir must not be empty when content.source is yaml")
		}
	case "postgres":
		if !d.Enabled {
			return errors.New("content.source postgres requires database.enabled")
		}
	default:
		return fmt.Errorf("content.source must be one of [yaml, postgres], got %q", c.Source)
	}
	return nil
}

func validateLogging(l LoggingConfig) error {
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[l.Level] {
		return fmt.Errorf("logging.level must be one of [debug, info, warn, error], got %q", l.Level)
	}
	validFormats := map[string]bool{"json": true, "console": true}
	if !validFormats[l.Format] {
		return fmt.Errorf("logging.format must be one of [json, console], got %q", l.Format)
	}
	return nil
}

// Load reads configuration from the given file path, applies environment variable
// overrides, and validates the result.
//
// Precondition: path must be a valid file path to a YAML configuration file.
// Postcondition: Returns a valid Config or a non-nil error.
func Load(path string) (Config, error) {
	v := viper.New()
	v.SetConfigFile(path)

	// Environment variable overrides with SKIRMISH_ prefix
	v.SetEnvPrefix("SKIRMISH")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	SetDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return Config{}, fmt.Errorf("reading config file: %w", err)
	}

	return LoadFromViper(v)
}

// LoadFromViper builds a Config from an already-configured Viper instance.
//
// Precondition: v must be non-nil and have configuration values set.
// Postcondition: Returns a valid Config or a non-nil error.
func LoadFromViper(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshalling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// SetDefaults registers every default value on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("server.mode", "standalone")
	v.SetDefault("server.type", "zone")

	v.SetDefault("database.enabled", false)
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "skirmish")
	v.SetDefault("database.password", "skirmish")
	v.SetDefault("database.name", "skirmish")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_conns", 10)
	v.SetDefault("database.min_conns", 2)
	v.SetDefault("database.max_conn_lifetime", "1h")

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")

	v.SetDefault("gameserver.grpc_host", "127.0.0.1")
	v.SetDefault("gameserver.grpc_port", 50061)

	v.SetDefault("zone.tick_interval", "5s")
	v.SetDefault("zone.idle_timeout", "60s")
	v.SetDefault("zone.attack_range", 150)
	v.SetDefault("zone.default_attack_ms", 600)
	v.SetDefault("zone.default_max_hp", 100)
	v.SetDefault("zone.default_damage", 5)
	v.SetDefault("zone.personal_budget", 6)
	v.SetDefault("zone.party_base_budget", 6)
	v.SetDefault("zone.party_member_budget", 2)
	v.SetDefault("zone.party_max_bonus", 4)
	v.SetDefault("zone.min_respawn", "300ms")

	v.SetDefault("content.source", "yaml")
	v.SetDefault("content.dir", "content/zones")

	v.SetDefault("scripting.damage_script", "")
	v.SetDefault("scripting.instruction_limit", 0)
}
