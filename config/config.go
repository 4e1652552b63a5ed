package config

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

//go:embed config.yaml
var defaults embed.FS

const confName = "config.yaml"

type TransectConfig struct {
	Length float64 `yaml:"length"`
}

type CatalogConfig struct {
	Sorted bool     `yaml:"sorted"`
	Seed   []string `yaml:"seed"`
}

type EntryConfig struct {
	DefaultSpan float64 `yaml:"default_span"`
	Step        float64 `yaml:"step"`
}

type ExportConfig struct {
	Dir     string `yaml:"dir"`
	CSVName string `yaml:"csv_name"`
	Format  string `yaml:"format"`
}

type LogConfig struct {
	File  string `yaml:"file"`
	Level string `yaml:"level"`
}

// Settings is one parsed version of the config file.
type Settings struct {
	Transect TransectConfig `yaml:"transect"`
	Catalog  CatalogConfig  `yaml:"catalog"`
	Entry    EntryConfig    `yaml:"entry"`
	Export   ExportConfig   `yaml:"export"`
	Log      LogConfig      `yaml:"log"`
}

type Config struct {
	log     *zap.Logger
	watcher *fsnotify.Watcher
	done    chan struct{}

	file string

	mu       sync.RWMutex
	settings Settings
}

// Defaults returns the embedded settings without touching the filesystem.
func Defaults() Settings {
	content, err := fs.ReadFile(defaults, confName)
	if err != nil {
		panic(fmt.Sprintf("embedded config missing: %v", err))
	}
	var s Settings
	if err := yaml.Unmarshal(content, &s); err != nil {
		panic(fmt.Sprintf("embedded config invalid: %v", err))
	}
	return s
}

// Dir is where the config file lives unless a path is given explicitly.
func Dir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "transecta")
	}
	return filepath.Join(os.Getenv("HOME"), ".transecta")
}

// Load reads the config file at path, or at Dir()/config.yaml when path is
// empty, writing the embedded defaults there first if it does not exist.
// Values from the environment (and a .env file in the working directory)
// override the file.
func Load(path string) (*Config, error) {
	if path == "" {
		path = filepath.Join(Dir(), confName)
	}
	cfg := &Config{log: zap.NewNop(), file: path}

	if err := cfg.writeConfigIfMissing(); err != nil {
		return nil, err
	}
	// a missing .env is the normal case
	_ = godotenv.Load()

	s, err := cfg.read()
	if err != nil {
		return nil, err
	}
	cfg.settings = s
	return cfg, nil
}

// UseLogger replaces the no-op logger Load starts with.
func (cfg *Config) UseLogger(log *zap.Logger) {
	cfg.log = log
}

func (cfg *Config) File() string {
	return cfg.file
}

func (cfg *Config) Settings() Settings {
	cfg.mu.RLock()
	defer cfg.mu.RUnlock()
	return cfg.settings
}

func (cfg *Config) writeConfigIfMissing() error {
	if _, err := os.Stat(cfg.file); err == nil {
		return nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("could not stat config file: %w", err)
	}

	content, err := fs.ReadFile(defaults, confName)
	if err != nil {
		return fmt.Errorf("could not read embedded config file: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(cfg.file), 0o755); err != nil {
		return fmt.Errorf("could not create config directory: %w", err)
	}
	if err := os.WriteFile(cfg.file, content, 0o664); err != nil {
		return fmt.Errorf("could not write config file: %w", err)
	}
	return nil
}

func (cfg *Config) read() (Settings, error) {
	content, err := os.ReadFile(cfg.file)
	if err != nil {
		return Settings{}, fmt.Errorf("could not read config file: %w", err)
	}
	s := Defaults()
	dec := yaml.NewDecoder(bytes.NewReader(content))
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil && !errors.Is(err, io.EOF) {
		return Settings{}, fmt.Errorf("could not parse %s: %w", cfg.file, err)
	}
	if err := applyEnvOverrides(&s); err != nil {
		return Settings{}, err
	}
	if err := s.Validate(); err != nil {
		return Settings{}, fmt.Errorf("%s: %w", cfg.file, err)
	}
	return s, nil
}

func applyEnvOverrides(s *Settings) error {
	if v := strings.TrimSpace(os.Getenv("TRANSECTA_LENGTH")); v != "" {
		length, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("TRANSECTA_LENGTH: %w", err)
		}
		s.Transect.Length = length
	}
	if v := strings.TrimSpace(os.Getenv("TRANSECTA_EXPORT_DIR")); v != "" {
		s.Export.Dir = v
	}
	if v := strings.TrimSpace(os.Getenv("TRANSECTA_LOG_LEVEL")); v != "" {
		s.Log.Level = v
	}
	return nil
}

func (s Settings) Validate() error {
	l := s.Transect.Length
	if !(l > 0) || math.IsInf(l, 0) {
		return fmt.Errorf("transect.length must be a positive number, got %v", l)
	}
	if !(s.Entry.DefaultSpan > 0) {
		return fmt.Errorf("entry.default_span must be positive, got %v", s.Entry.DefaultSpan)
	}
	if !(s.Entry.Step > 0) {
		return fmt.Errorf("entry.step must be positive, got %v", s.Entry.Step)
	}
	return nil
}

// Watch rereads the config file whenever it is written and hands the new
// settings to onChange. A file that fails to parse is logged and the
// previous settings stay in effect. Close stops watching.
func (cfg *Config) Watch(onChange func(Settings)) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("could not create file watcher: %w", err)
	}
	// Editors often replace the file, so watch the directory.
	if err := watcher.Add(filepath.Dir(cfg.file)); err != nil {
		watcher.Close()
		return fmt.Errorf("could not watch config file: %w", err)
	}
	cfg.watcher = watcher
	cfg.done = make(chan struct{})

	go cfg.rereadConfigOnFileChange(onChange)
	return nil
}

func (cfg *Config) rereadConfigOnFileChange(onChange func(Settings)) {
	defer close(cfg.done)
	for {
		select {
		case event, ok := <-cfg.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != filepath.Clean(cfg.file) {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			s, err := cfg.read()
			if err != nil {
				cfg.log.Warn("config reload failed", zap.Error(err))
				continue
			}
			cfg.mu.Lock()
			cfg.settings = s
			cfg.mu.Unlock()
			cfg.log.Info("config reloaded", zap.String("file", cfg.file))
			if onChange != nil {
				onChange(s)
			}
		case err, ok := <-cfg.watcher.Errors:
			if !ok {
				return
			}
			cfg.log.Error("config watcher", zap.Error(err))
		}
	}
}

// Close stops a running Watch and waits for it to finish.
func (cfg *Config) Close() error {
	if cfg.watcher == nil {
		return nil
	}
	err := cfg.watcher.Close()
	<-cfg.done
	cfg.watcher = nil
	return err
}
