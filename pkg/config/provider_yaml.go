package config

import (
	"os"

	"gopkg.in/yaml.v2"
)

// APIKeyEnvVar overrides feed.api_key when set, so the write-protected
// channel key can stay out of the config file.
const APIKeyEnvVar = "THINGSPEAK_API_KEY"

// YAMLProvider implements ConfigProvider for YAML configuration files
type YAMLProvider struct {
	filename string
	config   *ConfigData
}

// YAML-tagged mirror structs; converted to the internal format on load.
type feedYAML struct {
	Endpoint     string         `yaml:"endpoint,omitempty"`
	ChannelID    string         `yaml:"channel_id"`
	APIKey       string         `yaml:"api_key,omitempty"`
	Results      int            `yaml:"results,omitempty"`
	PollInterval string         `yaml:"poll_interval,omitempty"`
	Fields       feedFieldsYAML `yaml:"fields"`
}

type feedFieldsYAML struct {
	PM25        string `yaml:"pm25,omitempty"`
	PM10        string `yaml:"pm10,omitempty"`
	Temperature string `yaml:"temperature,omitempty"`
	Humidity    string `yaml:"humidity,omitempty"`
}

type cacheYAML struct {
	TTL string `yaml:"ttl,omitempty"`
}

type restYAML struct {
	ListenAddr  string `yaml:"listen_addr,omitempty"`
	Port        int    `yaml:"port,omitempty"`
	TLSCertPath string `yaml:"cert,omitempty"`
	TLSKeyPath  string `yaml:"key,omitempty"`
}

// NewYAMLProvider creates a new YAML configuration provider
func NewYAMLProvider(filename string) *YAMLProvider {
	return &YAMLProvider{
		filename: filename,
	}
}

// LoadConfig loads the complete configuration from the YAML file
func (y *YAMLProvider) LoadConfig() (*ConfigData, error) {
	cfgFile, err := os.ReadFile(y.filename)
	if err != nil {
		return nil, err
	}

	var yamlConfig struct {
		Feed  feedYAML  `yaml:"feed"`
		Cache cacheYAML `yaml:"cache,omitempty"`
		REST  restYAML  `yaml:"rest,omitempty"`
	}

	if err := yaml.Unmarshal(cfgFile, &yamlConfig); err != nil {
		return nil, err
	}

	config := &ConfigData{
		Feed: FeedData{
			Endpoint:     yamlConfig.Feed.Endpoint,
			ChannelID:    yamlConfig.Feed.ChannelID,
			APIKey:       yamlConfig.Feed.APIKey,
			Results:      yamlConfig.Feed.Results,
			PollInterval: yamlConfig.Feed.PollInterval,
			Fields: FeedFieldsData{
				PM25:        yamlConfig.Feed.Fields.PM25,
				PM10:        yamlConfig.Feed.Fields.PM10,
				Temperature: yamlConfig.Feed.Fields.Temperature,
				Humidity:    yamlConfig.Feed.Fields.Humidity,
			},
		},
		Cache: CacheData{
			TTL: yamlConfig.Cache.TTL,
		},
		REST: RESTServerData{
			ListenAddr:  yamlConfig.REST.ListenAddr,
			Port:        yamlConfig.REST.Port,
			TLSCertPath: yamlConfig.REST.TLSCertPath,
			TLSKeyPath:  yamlConfig.REST.TLSKeyPath,
		},
	}

	// Environment wins over the file for the API key.
	if key := os.Getenv(APIKeyEnvVar); key != "" {
		config.Feed.APIKey = key
	}

	y.config = config
	return config, nil
}

// GetFeed returns the feed configuration section
func (y *YAMLProvider) GetFeed() (*FeedData, error) {
	if y.config == nil {
		if _, err := y.LoadConfig(); err != nil {
			return nil, err
		}
	}
	return &y.config.Feed, nil
}

// GetRESTServer returns the REST server configuration section
func (y *YAMLProvider) GetRESTServer() (*RESTServerData, error) {
	if y.config == nil {
		if _, err := y.LoadConfig(); err != nil {
			return nil, err
		}
	}
	return &y.config.REST, nil
}

// Close is a no-op for file-backed configuration
func (y *YAMLProvider) Close() error {
	return nil
}
