package config

import (
	"fmt"
	"net"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

const (
	DefaultConfigPath = "/etc/coreborn"
	ConfigFileName    = "coreborn.yml"
)

// Config holds all coreborn API settings
type Config struct {
	// TrustedProxies is a list of CIDR ranges for trusted reverse proxies.
	// X-Forwarded-For is only honored when the direct peer is inside one
	// of these ranges.
	TrustedProxies []string `yaml:"trusted_proxies"`

	// CallbackURL is the exact OpenID return_to address. Assertions whose
	// return_to differs are rejected.
	CallbackURL string `yaml:"callback_url"`

	// FrontendURL is where the browser is sent after login, with the
	// access token appended as a query parameter.
	FrontendURL string `yaml:"frontend_url"`

	// SteamEndpoint is the OpenID provider login URL.
	SteamEndpoint string `yaml:"steam_endpoint"`

	// SteamAPIKey authorizes player profile lookups.
	SteamAPIKey string `yaml:"steam_api_key"`

	// RemovalQuorum is the distinct-reporter count that triggers
	// automatic deletion of a position.
	RemovalQuorum int `yaml:"removal_quorum"`

	// AdminRole is the permission role that bypasses the removal quorum.
	AdminRole string `yaml:"admin_role"`

	// CatalogPath optionally points at a YAML resource catalog that
	// overrides the compiled-in one.
	CatalogPath string `yaml:"catalog_path"`

	// sources tracks where each value came from
	sources map[string]string

	// configFilePath is the path to the config file
	configFilePath string
}

// Attribute represents a configuration attribute with its value and source
type Attribute struct {
	Name   string
	Value  string
	Source string
}

// Global singleton config
var (
	globalConfig *Config
	configMu     sync.RWMutex
)

// Get returns the global configuration, loading it if necessary
func Get() *Config {
	configMu.RLock()
	if globalConfig != nil {
		configMu.RUnlock()
		return globalConfig
	}
	configMu.RUnlock()

	configMu.Lock()
	defer configMu.Unlock()

	if globalConfig == nil {
		cfg, err := Load()
		if err != nil {
			globalConfig = newDefault()
		} else {
			globalConfig = cfg
		}
	}
	return globalConfig
}

// Reload reloads the configuration from file and environment
func Reload() error {
	cfg, err := Load()
	if err != nil {
		return err
	}

	configMu.Lock()
	globalConfig = cfg
	configMu.Unlock()
	return nil
}

// newDefault returns a config with default values
func newDefault() *Config {
	return &Config{
		TrustedProxies: []string{},
		CallbackURL:    "http://beta.coreborn.app/auth",
		FrontendURL:    "http://beta.coreborn.app/",
		SteamEndpoint:  "https://steamcommunity.com/openid/login",
		RemovalQuorum:  4,
		AdminRole:      "admin",
		sources:        make(map[string]string),
	}
}

// Load loads configuration from file and environment variables.
// Environment variables take precedence over file values.
func Load() (*Config, error) {
	config := newDefault()

	for _, name := range attributeNames() {
		config.sources[name] = "default"
	}

	configPath := os.Getenv("COREBORN_CONFIG_PATH")
	if configPath == "" {
		configPath = DefaultConfigPath
	}
	config.configFilePath = filepath.Join(configPath, ConfigFileName)

	if data, err := os.ReadFile(config.configFilePath); err == nil {
		var fileConfig Config
		if err := yaml.Unmarshal(data, &fileConfig); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", config.configFilePath, err)
		}
		config.applyFileConfig(&fileConfig)
	}

	config.applyEnvConfig()

	return config, nil
}

func attributeNames() []string {
	return []string{
		"trusted_proxies", "callback_url", "frontend_url", "steam_endpoint",
		"steam_api_key", "removal_quorum", "admin_role", "catalog_path",
	}
}

func (c *Config) applyFileConfig(file *Config) {
	if len(file.TrustedProxies) > 0 {
		c.TrustedProxies = file.TrustedProxies
		c.sources["trusted_proxies"] = "file"
	}
	if file.CallbackURL != "" {
		c.CallbackURL = file.CallbackURL
		c.sources["callback_url"] = "file"
	}
	if file.FrontendURL != "" {
		c.FrontendURL = file.FrontendURL
		c.sources["frontend_url"] = "file"
	}
	if file.SteamEndpoint != "" {
		c.SteamEndpoint = file.SteamEndpoint
		c.sources["steam_endpoint"] = "file"
	}
	if file.SteamAPIKey != "" {
		c.SteamAPIKey = file.SteamAPIKey
		c.sources["steam_api_key"] = "file"
	}
	if file.RemovalQuorum != 0 {
		c.RemovalQuorum = file.RemovalQuorum
		c.sources["removal_quorum"] = "file"
	}
	if file.AdminRole != "" {
		c.AdminRole = file.AdminRole
		c.sources["admin_role"] = "file"
	}
	if file.CatalogPath != "" {
		c.CatalogPath = file.CatalogPath
		c.sources["catalog_path"] = "file"
	}
}

func (c *Config) applyEnvConfig() {
	if val := os.Getenv("COREBORN_TRUSTED_PROXIES"); val != "" {
		c.TrustedProxies = splitAndTrim(val)
		c.sources["trusted_proxies"] = "environment"
	}
	if val := os.Getenv("COREBORN_CALLBACK_URL"); val != "" {
		c.CallbackURL = val
		c.sources["callback_url"] = "environment"
	}
	if val := os.Getenv("COREBORN_FRONTEND_URL"); val != "" {
		c.FrontendURL = val
		c.sources["frontend_url"] = "environment"
	}
	if val := os.Getenv("COREBORN_STEAM_ENDPOINT"); val != "" {
		c.SteamEndpoint = val
		c.sources["steam_endpoint"] = "environment"
	}
	if val := os.Getenv("COREBORN_STEAM_API_KEY"); val != "" {
		c.SteamAPIKey = val
		c.sources["steam_api_key"] = "environment"
	}
	if val := os.Getenv("COREBORN_REMOVAL_QUORUM"); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			c.RemovalQuorum = i
			c.sources["removal_quorum"] = "environment"
		}
	}
	if val := os.Getenv("COREBORN_ADMIN_ROLE"); val != "" {
		c.AdminRole = val
		c.sources["admin_role"] = "environment"
	}
	if val := os.Getenv("COREBORN_CATALOG_PATH"); val != "" {
		c.CatalogPath = val
		c.sources["catalog_path"] = "environment"
	}
}

// ConfigFilePath returns the path to the config file
func (c *Config) ConfigFilePath() string {
	return c.configFilePath
}

// Source returns the source of a configuration attribute
func (c *Config) Source(name string) string {
	if c.sources == nil {
		return "default"
	}
	if s, ok := c.sources[name]; ok {
		return s
	}
	return "default"
}

// IsTrustedProxy checks if an IP belongs to a trusted reverse proxy
func (c *Config) IsTrustedProxy(ip string) bool {
	if len(c.TrustedProxies) == 0 {
		return false
	}

	parsedIP := net.ParseIP(ip)
	if parsedIP == nil {
		return false
	}

	for _, cidr := range c.TrustedProxies {
		_, network, err := net.ParseCIDR(cidr)
		if err != nil {
			// Try as plain IP
			if net.ParseIP(cidr) != nil && cidr == ip {
				return true
			}
			continue
		}
		if network.Contains(parsedIP) {
			return true
		}
	}
	return false
}

// Validate validates the configuration
func (c *Config) Validate() error {
	for _, cidr := range c.TrustedProxies {
		if _, _, err := net.ParseCIDR(cidr); err != nil {
			if net.ParseIP(cidr) == nil {
				return fmt.Errorf("invalid trusted_proxies value: %s", cidr)
			}
		}
	}

	if c.RemovalQuorum < 1 {
		return fmt.Errorf("removal_quorum must be at least 1, got %d", c.RemovalQuorum)
	}

	if c.CallbackURL == "" {
		return fmt.Errorf("callback_url must not be empty")
	}

	return nil
}

// Attributes returns all configuration attributes with their values and sources
func (c *Config) Attributes() []Attribute {
	redactedKey := ""
	if c.SteamAPIKey != "" {
		redactedKey = "(set)"
	}
	return []Attribute{
		{Name: "trusted_proxies", Value: strings.Join(c.TrustedProxies, ","), Source: c.Source("trusted_proxies")},
		{Name: "callback_url", Value: c.CallbackURL, Source: c.Source("callback_url")},
		{Name: "frontend_url", Value: c.FrontendURL, Source: c.Source("frontend_url")},
		{Name: "steam_endpoint", Value: c.SteamEndpoint, Source: c.Source("steam_endpoint")},
		{Name: "steam_api_key", Value: redactedKey, Source: c.Source("steam_api_key")},
		{Name: "removal_quorum", Value: strconv.Itoa(c.RemovalQuorum), Source: c.Source("removal_quorum")},
		{Name: "admin_role", Value: c.AdminRole, Source: c.Source("admin_role")},
		{Name: "catalog_path", Value: c.CatalogPath, Source: c.Source("catalog_path")},
	}
}

// FormatText returns a text representation of the configuration
func (c *Config) FormatText() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Config file: %s\n\n", c.configFilePath))
	sb.WriteString(fmt.Sprintf("%-20s %-45s %s\n", "NAME", "VALUE", "SOURCE"))
	sb.WriteString(fmt.Sprintf("%-20s %-45s %s\n", "----", "-----", "------"))

	for _, attr := range c.Attributes() {
		value := attr.Value
		if value == "" {
			value = "(not set)"
		}
		sb.WriteString(fmt.Sprintf("%-20s %-45s %s\n", attr.Name, value, attr.Source))
	}
	return sb.String()
}

func splitAndTrim(s string) []string {
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			result = append(result, p)
		}
	}
	return result
}
