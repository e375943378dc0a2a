package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/spf13/viper"
)

const (
	KeyTheme         = "theme"
	KeyLocale        = "locale.name"
	KeyLocaleDir     = "locale.dir"
	KeyOutputFormat  = "output.format"
	KeyAppName       = "app.name"
	KeyDialogWidth   = "dialog.width"
	KeyPreviewTick   = "preview.tick"
	KeyPreviewStep   = "preview.step"
	KeyPreviewFailAt = "preview.fail-at"
	KeyFeedURL       = "update.feed"
	KeyFeedTimeout   = "update.timeout"
	KeySkipped       = "update.skipped"
)

const (
	// DefaultDialogWidth is the lipgloss content width of the update dialog.
	DefaultDialogWidth = 64
	// DefaultAppName is substituted into dialog copy when nothing is configured.
	DefaultAppName = "Arduino IDE"

	dirName   = ".ideupdater"
	envPrefix = "IU"
)

type initSettings struct {
	workingDir        string
	projectConfigPath string
	userConfigPath    string
}

// Option configures Initialize behaviour. Useful for tests to override paths.
type Option func(*initSettings)

// WithWorkingDir overrides the directory used for project config discovery.
func WithWorkingDir(dir string) Option {
	return func(cfg *initSettings) {
		cfg.workingDir = dir
	}
}

// WithProjectConfig explicitly sets the project config path instead of discovery.
func WithProjectConfig(path string) Option {
	return func(cfg *initSettings) {
		cfg.projectConfigPath = path
	}
}

// WithUserConfig overrides the default user config path.
func WithUserConfig(path string) Option {
	return func(cfg *initSettings) {
		cfg.userConfigPath = path
	}
}

var (
	configOnce sync.Once
	configMu   sync.RWMutex
	configInst *viper.Viper
	initErr    error

	// userConfigPathOverride is used by tests to redirect SaveTheme.
	userConfigPathOverride string
)

// Initialize loads configuration using the precedence:
// defaults < user config < project config < environment variables < overrides.
func Initialize(opts ...Option) error {
	configOnce.Do(func() {
		settings := initSettings{}
		for _, opt := range opts {
			opt(&settings)
		}
		initErr = configure(&settings)
	})
	return initErr
}

// ApplyOverrides injects values typically coming from CLI flags.
func ApplyOverrides(overrides map[string]any) error {
	if len(overrides) == 0 {
		return nil
	}
	return update(func(v *viper.Viper) {
		for k, val := range overrides {
			v.Set(k, val)
		}
	})
}

// Set updates a configuration key at runtime, initializing on demand.
func Set(key string, value any) error {
	return update(func(v *viper.Viper) { v.Set(key, value) })
}

func update(apply func(*viper.Viper)) error {
	if err := Initialize(); err != nil {
		return err
	}
	configMu.Lock()
	defer configMu.Unlock()
	if configInst == nil {
		return fmt.Errorf("configuration not initialized")
	}
	apply(configInst)
	return nil
}

// lookup reads key with the given viper getter. Lookups never fail: an
// unusable configuration yields the zero value.
func lookup[T any](key string, get func(*viper.Viper, string) T) T {
	v, err := getViper()
	if err != nil {
		var zero T
		return zero
	}
	return get(v, key)
}

// GetString fetches a string configuration value, initializing on demand.
func GetString(key string) string { return lookup(key, (*viper.Viper).GetString) }

// GetInt fetches an integer configuration value.
func GetInt(key string) int { return lookup(key, (*viper.Viper).GetInt) }

// GetFloat fetches a float configuration value.
func GetFloat(key string) float64 { return lookup(key, (*viper.Viper).GetFloat64) }

// GetDuration fetches a duration configuration value.
func GetDuration(key string) time.Duration { return lookup(key, (*viper.Viper).GetDuration) }

func configure(settings *initSettings) error {
	workingDir := strings.TrimSpace(settings.workingDir)
	if workingDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("determine working directory: %w", err)
		}
		workingDir = wd
	}

	userConfigPath := strings.TrimSpace(settings.userConfigPath)
	if userConfigPath == "" {
		path, err := defaultUserConfigPath()
		if err != nil {
			return err
		}
		userConfigPath = path
	}

	projectConfigPath := strings.TrimSpace(settings.projectConfigPath)
	if projectConfigPath == "" {
		path, err := findProjectConfig(workingDir)
		if err != nil {
			return err
		}
		projectConfigPath = path
	}

	v := viper.New()
	v.SetConfigType("yaml")
	setDefaults(v)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if err := mergeConfigFile(v, userConfigPath); err != nil {
		return fmt.Errorf("load user config: %w", err)
	}
	if err := mergeConfigFile(v, projectConfigPath); err != nil {
		return fmt.Errorf("load project config: %w", err)
	}

	configMu.Lock()
	defer configMu.Unlock()
	configInst = v
	return nil
}

func mergeConfigFile(v *viper.Viper, path string) error {
	if strings.TrimSpace(path) == "" {
		return nil
	}
	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("stat %s: %w", path, err)
	}
	if info.IsDir() {
		return fmt.Errorf("config path %s is a directory", path)
	}
	//nolint:gosec // G304: Config loader intentionally reads user and project config files
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := v.MergeConfig(bytes.NewReader(data)); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}

func defaultUserConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("determine user home: %w", err)
	}
	return filepath.Join(home, dirName, "config.yaml"), nil
}

func findProjectConfig(startDir string) (string, error) {
	if strings.TrimSpace(startDir) == "" {
		return "", nil
	}
	dir := startDir
	for {
		candidate := filepath.Join(dir, dirName, "config.yaml")
		info, err := os.Stat(candidate)
		if err == nil {
			if info.IsDir() {
				return "", fmt.Errorf("config path %s is a directory", candidate)
			}
			return candidate, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("stat %s: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", nil
		}
		dir = parent
	}
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(KeyTheme, "tokyonight")
	v.SetDefault(KeyLocale, "en")
	v.SetDefault(KeyLocaleDir, "")
	v.SetDefault(KeyOutputFormat, "rich")
	v.SetDefault(KeyAppName, DefaultAppName)
	v.SetDefault(KeyDialogWidth, DefaultDialogWidth)
	v.SetDefault(KeyPreviewTick, 150*time.Millisecond)
	v.SetDefault(KeyPreviewStep, 4.0)
	v.SetDefault(KeyPreviewFailAt, 0)
	v.SetDefault(KeyFeedURL, "")
	v.SetDefault(KeyFeedTimeout, 5*time.Second)
	v.SetDefault(KeySkipped, "")
}

func getViper() (*viper.Viper, error) {
	if err := Initialize(); err != nil {
		return nil, err
	}
	configMu.RLock()
	defer configMu.RUnlock()
	if configInst == nil {
		return nil, fmt.Errorf("configuration not initialized")
	}
	return configInst, nil
}

func reset() {
	configMu.Lock()
	defer configMu.Unlock()
	configInst = nil
	initErr = nil
	configOnce = sync.Once{}
	userConfigPathOverride = ""
}

// ResetForTesting clears package state for tests in other packages.
// Returns a cleanup function that should be deferred.
func ResetForTesting(t interface{ TempDir() string }) func() {
	reset()
	tmp := t.TempDir()
	_ = Initialize(WithWorkingDir(tmp), WithUserConfig(filepath.Join(tmp, "user.yaml")))
	return reset
}

// SaveTheme persists the theme name to the appropriate config file.
// A project config (.ideupdater/config.yaml) is updated when one exists,
// otherwise the user config is written, creating its directory if needed.
func SaveTheme(themeName string) error {
	return saveValue(KeyTheme, themeName)
}

// SaveSkippedVersion records the version the user chose to skip so later
// feed checks stop offering it.
func SaveSkippedVersion(version string) error {
	if err := saveValue(KeySkipped, version); err != nil {
		return err
	}
	return Set(KeySkipped, version)
}

func saveValue(key string, value any) error {
	targetPath, err := findWritableConfigPath()
	if err != nil {
		return fmt.Errorf("find config path: %w", err)
	}

	v := viper.New()
	v.SetConfigType("yaml")
	v.SetConfigFile(targetPath)
	_ = v.ReadInConfig() // missing file is fine

	v.Set(key, value)

	//nolint:gosec // G301: User config directory needs standard permissions
	if err := os.MkdirAll(filepath.Dir(targetPath), 0755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	if err := v.WriteConfigAs(targetPath); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

func findWritableConfigPath() (string, error) {
	if wd, err := os.Getwd(); err == nil {
		if projectPath, err := findProjectConfig(wd); err == nil && projectPath != "" {
			return projectPath, nil
		}
	}
	if userConfigPathOverride != "" {
		return userConfigPathOverride, nil
	}
	return defaultUserConfigPath()
}
