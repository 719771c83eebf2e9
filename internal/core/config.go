package core

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"sync"

	"github.com/jinzhu/copier"
	"github.com/julien-sobczak/nt-flashcards/internal/markdown"
	"github.com/pelletier/go-toml/v2"
)

// Name of the directory containing the configuration and the saved sessions
const ConfigDirName = ".nt-flashcards"

// Default .nt-flashcards/config content
const DefaultConfig = `
[callout]
keyword="card"

[snippet]
enabled=true
text="!c"

[style]
color="#ff0000"

[session]
persist=true
shuffle=false
`

var (
	// Lazy-load configuration and ensure a single read
	configOnce      sync.Once
	configSingleton *Config
)

// Note: Fields must be public for toml package to unmarshall
type ConfigFile struct {
	Callout ConfigCallout
	Snippet ConfigSnippet
	Style   ConfigStyle
	Session ConfigSession
}
type ConfigCallout struct {
	// Name inside the callout tag (ex: "card" for "> [!card]-")
	Keyword string
}
type ConfigSnippet struct {
	Enabled bool
	// Text expanded into a callout opening (ex: "!c")
	Text string
}
type ConfigStyle struct {
	// Accent color as #rrggbb
	Color string
}
type ConfigSession struct {
	// Save the current position when quitting
	Persist bool
	// Shuffle the deck when starting a new session
	Shuffle bool
}

/* Main config */

type Config struct {
	// Absolute top directory containing the .nt-flashcards sub-directory
	RootDirectory string

	// .nt-flashcards/config content
	ConfigFile ConfigFile
}

func CurrentConfig() *Config {
	configOnce.Do(func() {
		var err error
		configSingleton, err = ReadConfigFromDirectory(currentHome())
		if err != nil {
			fmt.Fprintf(os.Stderr, "Unable to read current configuration: %v\n", err)
			os.Exit(1)
		}
	})
	return configSingleton
}

func currentHome() string {
	// Supports overriding the root directory mainly for testing purposes.
	if path, ok := os.LookupEnv("NT_FLASHCARDS_HOME"); ok {
		abspath, err := filepath.Abs(path)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Failed to evaluate $NT_FLASHCARDS_HOME")
			os.Exit(1)
		}
		return abspath
	}

	home, err := os.UserHomeDir()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Unable to determine home directory: %v\n", err)
		os.Exit(1)
	}
	return home
}

// ReadConfigFromDirectory loads the configuration present in the .nt-flashcards sub-directory.
// Default values are used when the file does not exist.
func ReadConfigFromDirectory(path string) (*Config, error) {
	configFile, err := parseConfigFile(DefaultConfig)
	if err != nil {
		return nil, err
	}

	configPath := filepath.Join(path, ConfigDirName, "config")
	content, err := os.ReadFile(configPath)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("unable to read %s: %w", configPath, err)
	}
	if err == nil {
		// Values present in the file override the defaults
		if err := toml.Unmarshal(content, configFile); err != nil {
			return nil, fmt.Errorf("invalid configuration %s: %w", configPath, err)
		}
	}

	config := &Config{
		RootDirectory: path,
		ConfigFile:    *configFile,
	}
	if err := config.Check(); err != nil {
		return nil, fmt.Errorf("invalid configuration %s: %w", configPath, err)
	}
	return config, nil
}

func parseConfigFile(content string) (*ConfigFile, error) {
	var result ConfigFile
	if err := toml.Unmarshal([]byte(content), &result); err != nil {
		return nil, err
	}
	return &result, nil
}

var reKeyword = regexp.MustCompile(`^[\w-]+$`)

// Check validates the configuration.
func (c *Config) Check() error {
	keyword := c.ConfigFile.Callout.Keyword
	if keyword != "" && !reKeyword.MatchString(keyword) {
		return fmt.Errorf("invalid callout keyword %q", keyword)
	}
	if _, _, _, err := HexToRGB(c.ConfigFile.Style.Color); err != nil {
		return err
	}
	if c.ConfigFile.Snippet.Enabled && strings.ContainsAny(c.ConfigFile.Snippet.Text, " \t\n") {
		return fmt.Errorf("invalid snippet %q: whitespaces are not allowed", c.ConfigFile.Snippet.Text)
	}
	return nil
}

// Override replaces the configuration values by the non-empty values of the given file.
// Used to apply command-line flags.
func (c *Config) Override(overrides ConfigFile) error {
	option := copier.Option{IgnoreEmpty: true}
	if err := copier.CopyWithOption(&c.ConfigFile.Callout, &overrides.Callout, option); err != nil {
		return err
	}
	if err := copier.CopyWithOption(&c.ConfigFile.Snippet, &overrides.Snippet, option); err != nil {
		return err
	}
	if err := copier.CopyWithOption(&c.ConfigFile.Style, &overrides.Style, option); err != nil {
		return err
	}
	if err := copier.CopyWithOption(&c.ConfigFile.Session, &overrides.Session, option); err != nil {
		return err
	}
	return c.Check()
}

// Syntax returns the callout syntax to recognize flashcards.
func (c *Config) Syntax() markdown.CalloutSyntax {
	return markdown.CalloutSyntax{Keyword: c.ConfigFile.Callout.Keyword}
}

// Snippet returns the snippet to expand, or an empty string when disabled.
func (c *Config) Snippet() string {
	if !c.ConfigFile.Snippet.Enabled {
		return ""
	}
	return c.ConfigFile.Snippet.Text
}

// ConfigPath returns the path to the configuration file.
func (c *Config) ConfigPath() string {
	return filepath.Join(c.RootDirectory, ConfigDirName, "config")
}

// SessionsDir returns the directory where sessions are saved.
func (c *Config) SessionsDir() string {
	return filepath.Join(c.RootDirectory, ConfigDirName, "sessions")
}

// WriteDefault creates the configuration file if missing.
// It returns false when a file already exists.
func (c *Config) WriteDefault() (bool, error) {
	path := c.ConfigPath()
	if _, err := os.Stat(path); err == nil {
		return false, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), os.ModePerm); err != nil {
		return false, err
	}
	if err := os.WriteFile(path, []byte(strings.TrimPrefix(DefaultConfig, "\n")), 0644); err != nil {
		return false, err
	}
	return true, nil
}

// HexToRGB parses a #rrggbb color.
func HexToRGB(hex string) (r, g, b int, err error) {
	if len(hex) != 7 || hex[0] != '#' {
		return 0, 0, 0, fmt.Errorf("invalid color %q: expected #rrggbb", hex)
	}
	values := make([]int, 3)
	for i := range values {
		value, err := strconv.ParseUint(hex[1+2*i:3+2*i], 16, 8)
		if err != nil {
			return 0, 0, 0, fmt.Errorf("invalid color %q: %w", hex, err)
		}
		values[i] = int(value)
	}
	return values[0], values[1], values[2], nil
}
