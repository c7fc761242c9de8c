package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const appName = "pccollector"

// DefaultCategories is the catalog partition used when none is configured.
var DefaultCategories = []string{
	"korean_albums",
	"japanese_albums",
	"korean_pob",
	"japanese_pob",
}

// DefaultRoster is the ordered member roster used for search phrase detection.
// An "Alias=Member" entry makes the alias phrase resolve to Member.
var DefaultRoster = []string{
	"Bang Chan",
	"Chan=Bang Chan",
	"Lee Know",
	"Changbin",
	"Hyunjin",
	"HAN",
	"Felix",
	"Seungmin",
	"I.N",
}

type Config struct {
	DataDir    string   `koanf:"data_dir"`   // directory holding <category>.json files
	Categories []string `koanf:"categories"` // ordered catalog categories
	Roster     []string `koanf:"roster"`     // member names for search, longest phrase wins
	Database   string   `koanf:"database"`   // sqlite path, empty means XDG data dir
	LogLevel   string   `koanf:"log_level"`  // debug, info, warn, error
	LogFile    string   `koanf:"log_file"`   // empty means XDG state dir

	Albums AlbumsConfig `koanf:"albums"`
	Images ImagesConfig `koanf:"images"`
	Backup BackupConfig `koanf:"backup"`
}

// AlbumsConfig holds album grouping preferences.
type AlbumsConfig struct {
	CollapsedByDefault *bool `koanf:"collapsed_by_default"` // default: true
}

// ImagesConfig holds image resolution settings.
type ImagesConfig struct {
	Base string `koanf:"base"` // root containing photocards/ and ui/
}

// BackupConfig holds backup export settings.
type BackupConfig struct {
	Dir string `koanf:"dir"` // where backups and share sheets are written
}

func Load() (*Config, error) {
	return LoadFrom(getConfigPaths()...)
}

// LoadFrom reads the given TOML files in order; later files override earlier ones.
// Missing files are skipped.
func LoadFrom(paths ...string) (*Config, error) {
	k := koanf.New(".")

	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, err
			}
		}
	}

	cfg := &Config{
		DataDir: "data",
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	cfg.DataDir = expandPath(cfg.DataDir)
	cfg.Database = expandPath(cfg.Database)
	cfg.LogFile = expandPath(cfg.LogFile)
	cfg.Images.Base = strings.TrimSuffix(expandPath(cfg.Images.Base), "/")
	cfg.Backup.Dir = expandPath(cfg.Backup.Dir)

	if env := strings.TrimSpace(os.Getenv("PCCOLLECTOR_LOG_LEVEL")); env != "" {
		cfg.LogLevel = env
	}

	return cfg, nil
}

func getConfigPaths() []string {
	paths := []string{}

	// 1. ~/.config/pccollector/config.toml
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", appName, "config.toml"))
	}

	// 2. ./config.toml (pwd, highest priority)
	paths = append(paths, "config.toml")

	return paths
}

// ExpandPath replaces a leading ~ with the user's home directory.
func ExpandPath(path string) string {
	return expandPath(path)
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

// GetCategories returns the configured categories, or the defaults.
func (c *Config) GetCategories() []string {
	if len(c.Categories) == 0 {
		return DefaultCategories
	}
	return c.Categories
}

// GetRoster returns the configured roster, or the defaults.
func (c *Config) GetRoster() []string {
	if len(c.Roster) == 0 {
		return DefaultRoster
	}
	return c.Roster
}

// AlbumsCollapsedByDefault reports whether albums without saved state start collapsed.
func (c *Config) AlbumsCollapsedByDefault() bool {
	if c.Albums.CollapsedByDefault == nil {
		return true
	}
	return *c.Albums.CollapsedByDefault
}

// GetLogLevel returns the configured log level, defaulting to "info".
func (c *Config) GetLogLevel() string {
	if c.LogLevel == "" {
		return "info"
	}
	return strings.ToLower(c.LogLevel)
}

// DatabasePath returns the sqlite path, creating the XDG location when unset.
func (c *Config) DatabasePath() (string, error) {
	if c.Database != "" {
		return c.Database, nil
	}
	return xdg.DataFile(filepath.Join(appName, appName+".db"))
}

// LogPath returns the log file path, creating the XDG location when unset.
func (c *Config) LogPath() (string, error) {
	if c.LogFile != "" {
		return c.LogFile, nil
	}
	return xdg.StateFile(filepath.Join(appName, appName+".log"))
}

// BackupDir returns the directory backups are written to.
// Falls back to the user's download directory, then the working directory.
func (c *Config) BackupDir() string {
	if c.Backup.Dir != "" {
		return c.Backup.Dir
	}
	if xdg.UserDirs.Download != "" {
		return xdg.UserDirs.Download
	}
	return "."
}

// ImageBase returns the root for image resources, defaulting to <data_dir>/../assets/images.
func (c *Config) ImageBase() string {
	if c.Images.Base != "" {
		return c.Images.Base
	}
	return filepath.Join(filepath.Dir(filepath.Clean(c.DataDir)), "assets", "images")
}
