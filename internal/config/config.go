package config

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Game    GameConfig    `mapstructure:"game"`
	Logging LoggingConfig `mapstructure:"logging"`
	UI      UIConfig      `mapstructure:"ui"`
}

// GameConfig holds game mechanics configuration
type GameConfig struct {
	BoardSize int `mapstructure:"board_size"`
	// Fleet maps ship length to the number of ships of that length.
	// Keys are strings because config map keys always are.
	Fleet     map[string]int  `mapstructure:"fleet"`
	Placement PlacementConfig `mapstructure:"placement"`
	Computer  ComputerConfig  `mapstructure:"computer"`
	// Seed fixes the random source when non-zero
	Seed int64 `mapstructure:"seed"`
}

// PlacementConfig holds random fleet placement settings
type PlacementConfig struct {
	MaxAttempts int `mapstructure:"max_attempts"`
}

// ComputerConfig holds computer opponent settings
type ComputerConfig struct {
	ShotAttempts int `mapstructure:"shot_attempts"`
}

// LoggingConfig holds log output settings
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	// Events lists the game event types written to the log; empty logs all
	Events []string `mapstructure:"events"`
}

// UIConfig holds console front end settings
type UIConfig struct {
	Color           string `mapstructure:"color"`
	ShowCoordinates bool   `mapstructure:"show_coordinates"`
}

const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"

	// MaxBoardSize keeps every column addressable by a single letter
	MaxBoardSize = 26
)

var (
	// Global config instance
	mu  sync.RWMutex
	cfg *Config
	v   *viper.Viper

	// baseFile is the main config file and envFile the environment overlay
	// merged over it. Both are re-read, in that order, when either changes.
	baseFile string
	envFile  string
)

// flagKeys maps command line flag names to config keys
var flagKeys = map[string]string{
	"log-level":  "logging.level",
	"log-format": "logging.format",
	"color":      "ui.color",
	"board-size": "game.board_size",
	"seed":       "game.seed",
}

// DefaultFleet returns the standard fleet: one 5, two 3s and three 2s.
func DefaultFleet() map[string]int {
	return map[string]int{"5": 1, "3": 2, "2": 3}
}

// setViperDefaults sets all default values using Viper's SetDefault.
// game.fleet has no viper default: viper merges nested map defaults into a
// configured map key by key, which would mix the default ships into a custom
// fleet. The fallback is applied after unmarshalling instead.
func setViperDefaults(v *viper.Viper) {
	// Game defaults
	v.SetDefault("game.board_size", 10)
	v.SetDefault("game.placement.max_attempts", 1000)
	v.SetDefault("game.computer.shot_attempts", 1000)
	v.SetDefault("game.seed", 0)

	// Logging defaults
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.events", []string{})

	// UI defaults
	v.SetDefault("ui.color", ColorAuto)
	v.SetDefault("ui.show_coordinates", true)
}

// Init initializes the configuration
func Init(configPath string) error {
	v = viper.New()
	baseFile, envFile = "", ""

	// Set defaults before loading any config
	setViperDefaults(v)

	// Set config file
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		// Default config locations
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
		v.AddConfigPath("/etc/battleship")
	}

	// Set environment variable prefix
	v.SetEnvPrefix("BSHIP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file
	if err := v.ReadInConfig(); err != nil {
		// A specific file that does not exist falls back to defaults
		if configPath != "" {
			if !errors.Is(err, fs.ErrNotExist) {
				return fmt.Errorf("error reading config file: %w", err)
			}
		} else if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("error reading config file: %w", err)
		}
	}
	baseFile = v.ConfigFileUsed()

	return reload()
}

// reload unmarshals the viper state into a fresh Config and validates it.
// The global instance is only replaced when the new state is valid.
func reload() error {
	next := &Config{}
	if err := v.Unmarshal(next); err != nil {
		return fmt.Errorf("unable to decode config into struct: %w", err)
	}
	if len(next.Game.Fleet) == 0 {
		next.Game.Fleet = DefaultFleet()
	}

	if err := Validate(next); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	mu.Lock()
	cfg = next
	mu.Unlock()
	return nil
}

// BindFlags lets explicitly set command line flags override file and
// environment values. Flags the set does not define are ignored.
func BindFlags(fs *pflag.FlagSet) error {
	if v == nil {
		return fmt.Errorf("config not initialized - call Init() first")
	}

	for name, key := range flagKeys {
		flag := fs.Lookup(name)
		if flag == nil {
			continue
		}
		if err := v.BindPFlag(key, flag); err != nil {
			return fmt.Errorf("binding flag %s: %w", name, err)
		}
	}

	return reload()
}

// Get returns the global config instance
func Get() *Config {
	mu.RLock()
	c := cfg
	mu.RUnlock()

	if c == nil {
		// Initialize with defaults if not already initialized
		if err := Init(""); err != nil {
			panic("failed to initialize config with defaults: " + err.Error())
		}
		return Get()
	}
	return c
}

// LoadEnvironmentConfig merges config.<env>.yaml, from the directory of the
// base config file, over the loaded config. A missing overlay is ignored.
func LoadEnvironmentConfig(env string) error {
	if env == "" {
		return nil
	}

	path := fmt.Sprintf("config.%s.yaml", env)
	if baseFile != "" {
		path = filepath.Join(filepath.Dir(baseFile), path)
	}
	if err := mergeFile(path); err != nil {
		return err
	}
	envFile = path

	return reload()
}

// mergeFile merges path over the current viper state
func mergeFile(path string) error {
	v.SetConfigFile(path)
	if err := v.MergeInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("error merging environment config %s: %w", path, err)
	}
	return nil
}

// reread rebuilds the viper state from the base file and then the overlay.
func reread() error {
	if baseFile != "" {
		v.SetConfigFile(baseFile)
		if err := v.ReadInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("error reading config file: %w", err)
		}
	}
	if envFile != "" {
		if err := mergeFile(envFile); err != nil {
			return err
		}
	}
	return reload()
}

// ConfigFilePath returns the path of the base config file, if any
func ConfigFilePath() string {
	return baseFile
}

// watchedFiles returns the absolute paths of the base file and the overlay
func watchedFiles() map[string]bool {
	files := make(map[string]bool, 2)
	for _, f := range []string{baseFile, envFile} {
		if f == "" {
			continue
		}
		if abs, err := filepath.Abs(f); err == nil {
			f = abs
		}
		files[filepath.Clean(f)] = true
	}
	return files
}

// WatchConfig hot-reloads the configuration when the base file or the
// environment overlay is written. onChange runs after a valid reload;
// onError receives reloads that failed, in which case the previous config
// stays active. The returned function stops the watcher.
func WatchConfig(onChange func(*Config), onError func(error)) (func(), error) {
	files := watchedFiles()
	if len(files) == 0 {
		return nil, fmt.Errorf("no config file to watch")
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating config watcher: %w", err)
	}

	// Watch directories, not files: editors often replace a file on save
	dirs := make(map[string]bool, len(files))
	for f := range files {
		dir := filepath.Dir(f)
		if dirs[dir] {
			continue
		}
		dirs[dir] = true
		if err := watcher.Add(dir); err != nil {
			_ = watcher.Close()
			return nil, fmt.Errorf("watching %s: %w", dir, err)
		}
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if !files[filepath.Clean(event.Name)] {
					continue
				}
				if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
					continue
				}
				if err := reread(); err != nil {
					if onError != nil {
						onError(fmt.Errorf("reloading %s: %w", event.Name, err))
					}
					continue
				}
				if onChange != nil {
					onChange(Get())
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				if onError != nil {
					onError(fmt.Errorf("watching config: %w", err))
				}
			}
		}
	}()

	var once sync.Once
	stop := func() {
		once.Do(func() {
			_ = watcher.Close()
			<-done
		})
	}
	return stop, nil
}

// FleetCounts converts the configured fleet into ship length -> count.
func (g GameConfig) FleetCounts() (map[int]int, error) {
	counts := make(map[int]int, len(g.Fleet))
	for key, count := range g.Fleet {
		length, err := strconv.Atoi(strings.TrimSpace(key))
		if err != nil {
			return nil, fmt.Errorf("game.fleet key %q is not a ship length", key)
		}
		counts[length] = count
	}
	return counts, nil
}

// Validate validates the configuration values
func Validate(c *Config) error {
	// Validate game mechanics
	if c.Game.BoardSize < 2 || c.Game.BoardSize > MaxBoardSize {
		return fmt.Errorf("game.board_size must be between 2 and %d", MaxBoardSize)
	}
	if c.Game.Placement.MaxAttempts <= 0 {
		return fmt.Errorf("game.placement.max_attempts must be positive")
	}
	if c.Game.Computer.ShotAttempts <= 0 {
		return fmt.Errorf("game.computer.shot_attempts must be positive")
	}

	counts, err := c.Game.FleetCounts()
	if err != nil {
		return err
	}
	lengths := make([]int, 0, len(counts))
	for length := range counts {
		lengths = append(lengths, length)
	}
	sort.Ints(lengths)

	ships, cells := 0, 0
	for _, length := range lengths {
		count := counts[length]
		if length <= 0 || length > c.Game.BoardSize {
			return fmt.Errorf("game.fleet ship length %d must be between 1 and %d", length, c.Game.BoardSize)
		}
		if count < 0 {
			return fmt.Errorf("game.fleet count for length %d must be non-negative", length)
		}
		ships += count
		cells += count * length
	}
	if ships == 0 {
		return fmt.Errorf("game.fleet must contain at least one ship")
	}
	if cells > c.Game.BoardSize*c.Game.BoardSize {
		return fmt.Errorf("game.fleet covers %d cells, more than the board holds", cells)
	}

	// Validate logging
	if _, err := zerolog.ParseLevel(strings.ToLower(c.Logging.Level)); err != nil {
		return fmt.Errorf("logging.level %q is not a valid level", c.Logging.Level)
	}
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json")
	}

	// Validate UI
	switch c.UI.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("ui.color must be one of %s, %s, %s", ColorAuto, ColorAlways, ColorNever)
	}

	return nil
}
