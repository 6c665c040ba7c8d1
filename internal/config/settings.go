package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, e.g. FLAPPY_FPS=30.
const EnvPrefix = "FLAPPY"

// Setting keys, shared by flags, environment variables and viper.
const (
	KeyFPS      = "fps"
	KeySeed     = "seed"
	KeyConfig   = "config"
	KeyMute     = "mute"
	KeyLogLevel = "log-level"
	KeyLogFile  = "log-file"
	KeySSHAddr  = "ssh"
	KeyHostKey  = "host-key"
	KeyIdle     = "idle-timeout"
	KeyMaxTime  = "max-timeout"
)

// Settings are the runtime options of the flappy binary.
// Game constants live in FlappyConfig; these only affect how a run is hosted.
type Settings struct {
	FPS         int
	Seed        int64 // 0 picks a time-based seed
	ConfigPath  string
	Mute        bool
	LogLevel    string
	LogFile     string
	SSHAddr     string
	HostKeyPath string
	IdleTimeout time.Duration
	MaxTimeout  time.Duration
}

// DefaultSettings returns the settings used when nothing is overridden.
func DefaultSettings() Settings {
	return Settings{
		FPS:         60,
		LogLevel:    "info",
		SSHAddr:     ":23234",
		HostKeyPath: ".ssh/flappy_ed25519",
		IdleTimeout: 10 * time.Minute,
		MaxTimeout:  2 * time.Hour,
	}
}

// NewViper returns a viper instance with defaults and environment overrides
// wired. Flags are bound separately with BindFlags.
func NewViper() *viper.Viper {
	v := viper.New()
	d := DefaultSettings()

	v.SetDefault(KeyFPS, d.FPS)
	v.SetDefault(KeySeed, d.Seed)
	v.SetDefault(KeyConfig, d.ConfigPath)
	v.SetDefault(KeyMute, d.Mute)
	v.SetDefault(KeyLogLevel, d.LogLevel)
	v.SetDefault(KeyLogFile, d.LogFile)
	v.SetDefault(KeySSHAddr, d.SSHAddr)
	v.SetDefault(KeyHostKey, d.HostKeyPath)
	v.SetDefault(KeyIdle, d.IdleTimeout)
	v.SetDefault(KeyMaxTime, d.MaxTimeout)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v
}

// RegisterPlayFlags adds the flags shared by every command that runs a game.
func RegisterPlayFlags(fs *pflag.FlagSet) {
	d := DefaultSettings()
	fs.Int(KeyFPS, d.FPS, "simulation ticks per second")
	fs.Int64(KeySeed, d.Seed, "random seed for pipe gaps (0 = time based)")
	fs.StringP(KeyConfig, "c", d.ConfigPath, "path to a flappy.yaml with game constants")
	fs.Bool(KeyMute, d.Mute, "disable sound")
	fs.String(KeyLogLevel, d.LogLevel, "log level (debug, info, warn, error)")
	fs.String(KeyLogFile, d.LogFile, "write logs to this file")
}

// RegisterServeFlags adds the SSH hosting flags.
func RegisterServeFlags(fs *pflag.FlagSet) {
	d := DefaultSettings()
	fs.String(KeySSHAddr, d.SSHAddr, "SSH listen address")
	fs.String(KeyHostKey, d.HostKeyPath, "path to the SSH host key (created if missing)")
	fs.Duration(KeyIdle, d.IdleTimeout, "disconnect idle sessions after this long")
	fs.Duration(KeyMaxTime, d.MaxTimeout, "maximum session length")
}

// BindFlags makes flags the highest-priority source for their keys.
func BindFlags(v *viper.Viper, fs *pflag.FlagSet) error {
	if err := v.BindPFlags(fs); err != nil {
		return fmt.Errorf("failed to bind flags: %w", err)
	}
	return nil
}

// LoadSettings resolves Settings from v and validates them.
func LoadSettings(v *viper.Viper) (Settings, error) {
	s := Settings{
		FPS:         v.GetInt(KeyFPS),
		Seed:        v.GetInt64(KeySeed),
		ConfigPath:  v.GetString(KeyConfig),
		Mute:        v.GetBool(KeyMute),
		LogLevel:    strings.ToLower(v.GetString(KeyLogLevel)),
		LogFile:     v.GetString(KeyLogFile),
		SSHAddr:     v.GetString(KeySSHAddr),
		HostKeyPath: v.GetString(KeyHostKey),
		IdleTimeout: v.GetDuration(KeyIdle),
		MaxTimeout:  v.GetDuration(KeyMaxTime),
	}

	if s.FPS < 1 || s.FPS > 240 {
		return s, fmt.Errorf("%w: fps must be within [1, 240], got %d", ErrInvalidConfig, s.FPS)
	}
	switch s.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return s, fmt.Errorf("%w: unknown log level %q", ErrInvalidConfig, s.LogLevel)
	}
	return s, nil
}

// TickInterval returns the wall-clock duration of one simulation tick.
func (s Settings) TickInterval() time.Duration {
	return time.Second / time.Duration(s.FPS)
}
