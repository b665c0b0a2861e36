// Package config defines the configuration data model and its providers.
package config

// ConfigProvider defines the interface for configuration data sources
type ConfigProvider interface {
	// Load complete configuration
	LoadConfig() (*ConfigData, error)

	// Get specific configuration sections
	GetFeed() (*FeedData, error)
	GetRESTServer() (*RESTServerData, error)

	Close() error
}

// ConfigData represents the complete configuration structure
type ConfigData struct {
	Feed  FeedData       `json:"feed"`
	Cache CacheData      `json:"cache,omitempty"`
	REST  RESTServerData `json:"rest,omitempty"`
}

// FeedData holds configuration for the upstream sensor feed
type FeedData struct {
	Endpoint     string         `json:"endpoint,omitempty"`
	ChannelID    string         `json:"channel_id"`
	APIKey       string         `json:"api_key,omitempty"`
	Results      int            `json:"results,omitempty"`
	PollInterval string         `json:"poll_interval,omitempty"`
	Fields       FeedFieldsData `json:"fields"`
}

// FeedFieldsData maps channel field numbers to metrics, e.g. pm25: field1
type FeedFieldsData struct {
	PM25        string `json:"pm25,omitempty"`
	PM10        string `json:"pm10,omitempty"`
	Temperature string `json:"temperature,omitempty"`
	Humidity    string `json:"humidity,omitempty"`
}

// CacheData holds the reading cache configuration
type CacheData struct {
	TTL string `json:"ttl,omitempty"`
}

// RESTServerData holds the REST server configuration
type RESTServerData struct {
	ListenAddr  string `json:"listen_addr,omitempty"`
	Port        int    `json:"port,omitempty"`
	TLSCertPath string `json:"cert,omitempty"`
	TLSKeyPath  string `json:"key,omitempty"`
}
