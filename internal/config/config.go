package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Source  SourceConfig  `yaml:"source"`
	Forward ForwardConfig `yaml:"forward"`
	Web     WebConfig     `yaml:"web"`
	Tracker TrackerConfig `yaml:"tracker"`
	Alert   AlertConfig   `yaml:"alert"`
	Sim     SimConfig     `yaml:"sim"`
}

type SourceConfig struct {
	// Kind selects the feed: "tcp", "serial" or "sim".
	Kind string `yaml:"kind"`

	Addr           string        `yaml:"addr"`
	ReconnectDelay time.Duration `yaml:"reconnect_delay"`

	Device string `yaml:"device"`
	Baud   int    `yaml:"baud"`

	MaxLineBytes int `yaml:"max_line_bytes"`
}

type ForwardConfig struct {
	Enable bool   `yaml:"enable"`
	Dest   string `yaml:"dest"`
}

type WebConfig struct {
	Enable bool   `yaml:"enable"`
	Listen string `yaml:"listen"`
}

type TrackerConfig struct {
	MaxVessels int           `yaml:"max_vessels"`
	TTL        time.Duration `yaml:"ttl"`
	NameTTL    time.Duration `yaml:"name_ttl"`
}

type AlertConfig struct {
	// CPANm triggers a close-encounter warning below this distance.
	CPANm float64 `yaml:"cpa_nm"`
	// TCPAMax ignores encounters further out than this.
	TCPAMax time.Duration `yaml:"tcpa_max"`
}

type SimConfig struct {
	CenterLatDeg float64       `yaml:"center_lat_deg"`
	CenterLonDeg float64       `yaml:"center_lon_deg"`
	RadiusNm     float64       `yaml:"radius_nm"`
	Period       time.Duration `yaml:"period"`
	SpeedKt      float64       `yaml:"speed_kt"`
	Vessels      int           `yaml:"vessels"`
}

func Load(path string) (Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}

	var cfg Config
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return Config{}, err
	}

	if cfg.Source.Kind == "" {
		cfg.Source.Kind = "tcp"
	}
	switch cfg.Source.Kind {
	case "tcp":
		if cfg.Source.Addr == "" {
			return Config{}, fmt.Errorf("source.addr is required for kind=tcp")
		}
	case "serial":
		if cfg.Source.Device == "" {
			return Config{}, fmt.Errorf("source.device is required for kind=serial")
		}
	case "sim":
	default:
		return Config{}, fmt.Errorf("source.kind must be tcp, serial or sim")
	}
	if cfg.Source.ReconnectDelay <= 0 {
		cfg.Source.ReconnectDelay = 1 * time.Second
	}
	if cfg.Source.Baud <= 0 {
		cfg.Source.Baud = 38400
	}
	if cfg.Source.MaxLineBytes <= 0 {
		cfg.Source.MaxLineBytes = 1024
	}

	if cfg.Forward.Enable && cfg.Forward.Dest == "" {
		return Config{}, fmt.Errorf("forward.dest is required when forward.enable is true")
	}

	if cfg.Web.Enable && cfg.Web.Listen == "" {
		cfg.Web.Listen = ":8080"
	}

	if cfg.Tracker.MaxVessels <= 0 {
		cfg.Tracker.MaxVessels = 1000
	}
	if cfg.Tracker.TTL <= 0 {
		cfg.Tracker.TTL = 10 * time.Minute
	}
	if cfg.Tracker.NameTTL <= 0 {
		cfg.Tracker.NameTTL = cfg.Tracker.TTL
	}

	if cfg.Alert.CPANm <= 0 {
		cfg.Alert.CPANm = 0.5
	}
	if cfg.Alert.TCPAMax <= 0 {
		cfg.Alert.TCPAMax = 30 * time.Minute
	}

	// Simulator defaults (safe even when another source is selected).
	if cfg.Sim.Period <= 0 {
		cfg.Sim.Period = 10 * time.Minute
	}
	if cfg.Sim.RadiusNm <= 0 {
		cfg.Sim.RadiusNm = 2.0
	}
	if cfg.Sim.SpeedKt <= 0 {
		cfg.Sim.SpeedKt = 8
	}
	if cfg.Sim.Vessels <= 0 {
		cfg.Sim.Vessels = 3
	}
	if cfg.Sim.CenterLatDeg == 0 && cfg.Sim.CenterLonDeg == 0 {
		// The Solent, a busy and recognisable default.
		cfg.Sim.CenterLatDeg = 50.77
		cfg.Sim.CenterLonDeg = -1.30
	}

	return cfg, nil
}
