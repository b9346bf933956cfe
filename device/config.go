package device

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config carries every tunable the device wiring reads. Zero values are
// never used directly; load through LoadConfig or start from
// DefaultConfig and override fields.
type Config struct {
	// TransportMax is the sink's largest acceptable payload in bytes.
	// Frame headers are carved out of this, not added on top.
	TransportMax int `mapstructure:"transport_max"`

	// CycleCapacity bounds the scheduler's registration table.
	CycleCapacity int `mapstructure:"cycle_capacity"`

	// PhotoInterval is the spacing between captures. Zero means
	// single-shot: one photo, then the capture cycle disarms itself.
	PhotoInterval time.Duration `mapstructure:"photo_interval"`

	// PhotoRetryInterval spaces retry attempts after a failed capture.
	PhotoRetryInterval time.Duration `mapstructure:"photo_retry_interval"`

	// PhotoRetryMax bounds retry attempts per failed capture. When the
	// budget is spent the retry cycle disarms and waits for the next
	// regular capture slot.
	PhotoRetryMax int `mapstructure:"photo_retry_max"`

	// AudioEnabled arms the microphone cycles.
	AudioEnabled bool `mapstructure:"audio_enabled"`

	// AudioFrameSize is the size of one logical microphone frame.
	AudioFrameSize int `mapstructure:"audio_frame_size"`

	// AudioRingSize is the accumulation ring capacity in bytes. Must
	// hold at least one frame.
	AudioRingSize int `mapstructure:"audio_ring_size"`

	// ConnCheckInterval spaces link-state probes.
	ConnCheckInterval time.Duration `mapstructure:"conn_check_interval"`

	// BatteryInterval spaces battery gauge reads.
	BatteryInterval time.Duration `mapstructure:"battery_interval"`

	// LogLevel is a logrus level name ("debug", "info", ...).
	LogLevel string `mapstructure:"log_level"`
}

// DefaultConfig mirrors the firmware's compiled-in defaults.
func DefaultConfig() Config {
	return Config{
		TransportMax:       503,
		CycleCapacity:      32,
		PhotoInterval:      30 * time.Second,
		PhotoRetryInterval: 2 * time.Second,
		PhotoRetryMax:      3,
		AudioEnabled:       true,
		AudioFrameSize:     1000,
		AudioRingSize:      8000,
		ConnCheckInterval:  500 * time.Millisecond,
		BatteryInterval:    60 * time.Second,
		LogLevel:           "info",
	}
}

// LoadConfig reads settings through viper: defaults first, then an
// optional config file, then PENDANT_* environment variables. An empty
// path skips the file stage.
func LoadConfig(path string) (Config, error) {
	v := viper.New()

	def := DefaultConfig()
	v.SetDefault("transport_max", def.TransportMax)
	v.SetDefault("cycle_capacity", def.CycleCapacity)
	v.SetDefault("photo_interval", def.PhotoInterval)
	v.SetDefault("photo_retry_interval", def.PhotoRetryInterval)
	v.SetDefault("photo_retry_max", def.PhotoRetryMax)
	v.SetDefault("audio_enabled", def.AudioEnabled)
	v.SetDefault("audio_frame_size", def.AudioFrameSize)
	v.SetDefault("audio_ring_size", def.AudioRingSize)
	v.SetDefault("conn_check_interval", def.ConnCheckInterval)
	v.SetDefault("battery_interval", def.BatteryInterval)
	v.SetDefault("log_level", def.LogLevel)

	v.SetEnvPrefix("pendant")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects settings the wiring cannot honor.
func (c Config) Validate() error {
	if c.TransportMax <= 4 {
		return fmt.Errorf("transport_max %d leaves no payload room", c.TransportMax)
	}
	if c.CycleCapacity <= 0 {
		return fmt.Errorf("cycle_capacity must be positive, got %d", c.CycleCapacity)
	}
	if c.AudioEnabled {
		if c.AudioFrameSize <= 0 {
			return fmt.Errorf("audio_frame_size must be positive, got %d", c.AudioFrameSize)
		}
		if c.AudioRingSize < c.AudioFrameSize {
			return fmt.Errorf("audio_ring_size %d cannot hold one %d-byte frame",
				c.AudioRingSize, c.AudioFrameSize)
		}
	}
	if c.PhotoRetryMax < 0 {
		return fmt.Errorf("photo_retry_max must not be negative, got %d", c.PhotoRetryMax)
	}
	return nil
}
