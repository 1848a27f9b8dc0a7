package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/hupe1980/slotlist"
	"github.com/hupe1980/slotlist/archive"
	"github.com/hupe1980/slotlist/blobstore/minio"
	"github.com/hupe1980/slotlist/dump"
)

// Config is the TOML configuration of the slotlist tool.
type Config struct {
	List    ListConfig    `toml:"list"`
	Log     LogConfig     `toml:"log"`
	Dump    DumpConfig    `toml:"dump"`
	Archive ArchiveConfig `toml:"archive"`
}

// ListConfig configures the list under test.
type ListConfig struct {
	Capacity         int    `toml:"capacity"`
	Validation       string `toml:"validation"`
	MemoryLimit      int64  `toml:"memory_limit"`
	AdvisoryInterval string `toml:"advisory_interval"`
}

// LogConfig configures the tool's own log output on stderr.
type LogConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

// DumpConfig selects which diagnostics the list reports to.
type DumpConfig struct {
	// Text writes a text dump to stderr on every report.
	Text bool `toml:"text"`
	// Color is "auto", "always" or "never".
	Color string `toml:"color"`
	// HTML appends an HTML log to a rotating file.
	HTML dump.LogFileConfig `toml:"html"`
	// GraphDir receives one dot file per report.
	GraphDir string `toml:"graph_dir"`
	// RenderPNG renders each dot file with the dot binary.
	RenderPNG bool `toml:"render_png"`
}

// ArchiveConfig selects where reports are archived.
type ArchiveConfig struct {
	// Backend is "", "local", "s3" or "minio". Empty disables archiving.
	Backend     string       `toml:"backend"`
	Dir         string       `toml:"dir"`
	Codec       string       `toml:"codec"`
	Compression string       `toml:"compression"`
	Parallelism int          `toml:"parallelism"`
	S3          S3Config     `toml:"s3"`
	MinIO       minio.Config `toml:"minio"`
}

// S3Config configures the S3 backend. Credentials come from the default
// AWS credential chain.
type S3Config struct {
	Bucket    string `toml:"bucket"`
	Prefix    string `toml:"prefix"`
	Region    string `toml:"region"`
	Endpoint  string `toml:"endpoint"`
	PathStyle bool   `toml:"path_style"`
}

func defaultConfig() Config {
	return Config{
		List: ListConfig{
			Capacity:   slotlist.DefaultCapacity,
			Validation: "medium",
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
		Dump: DumpConfig{
			Color: "auto",
			HTML: dump.LogFileConfig{
				MaxSizeMB:  10,
				MaxBackups: 3,
			},
		},
		Archive: ArchiveConfig{
			Dir:         "dumps",
			Codec:       "go-json",
			Compression: "zstd",
			Parallelism: 4,
		},
	}
}

// loadConfig decodes path over the defaults. An empty path yields the
// defaults. Unknown keys are rejected.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return cfg, err
	}
	defer f.Close()

	if err := decodeConfig(f, &cfg); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func decodeConfig(r io.Reader, cfg *Config) error {
	md, err := toml.NewDecoder(r).Decode(cfg)
	if err != nil {
		return err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return fmt.Errorf("unknown config keys: %s", strings.Join(keys, ", "))
	}
	return cfg.validate()
}

func (c *Config) validate() error {
	var errs []error
	if c.List.Capacity <= 0 {
		errs = append(errs, fmt.Errorf("list.capacity must be positive, got %d", c.List.Capacity))
	}
	if _, ok := slotlist.ParseValidationLevel(c.List.Validation); !ok {
		errs = append(errs, fmt.Errorf("list.validation: unknown level %q", c.List.Validation))
	}
	if c.List.AdvisoryInterval != "" {
		if _, err := time.ParseDuration(c.List.AdvisoryInterval); err != nil {
			errs = append(errs, fmt.Errorf("list.advisory_interval: %w", err))
		}
	}
	switch c.Dump.Color {
	case "auto", "always", "never":
	default:
		errs = append(errs, fmt.Errorf("dump.color: unknown mode %q", c.Dump.Color))
	}
	switch c.Archive.Backend {
	case "", "local", "s3", "minio":
	default:
		errs = append(errs, fmt.Errorf("archive.backend: unknown backend %q", c.Archive.Backend))
	}
	if _, err := archive.ParseCompression(c.Archive.Compression); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// listOptions translates the list section into slotlist options.
func (c *Config) listOptions() []slotlist.Option {
	level, _ := slotlist.ParseValidationLevel(c.List.Validation)
	opts := []slotlist.Option{slotlist.WithValidation(level)}
	if c.List.MemoryLimit > 0 {
		opts = append(opts, slotlist.WithMemoryLimit(c.List.MemoryLimit))
	}
	if d, err := time.ParseDuration(c.List.AdvisoryInterval); err == nil && d > 0 {
		opts = append(opts, slotlist.WithGrowthAdvisoryInterval(d))
	}
	return opts
}

func encodeConfig(w io.Writer, cfg Config) error {
	return toml.NewEncoder(w).Encode(cfg)
}
