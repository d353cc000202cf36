package config

// File represents the structure of the config.yaml configuration file.
type File struct {
	Servers  []ServerDTO `yaml:"servers"`
	Cache    CacheDTO    `yaml:"cache"`
	Fetch    FetchDTO    `yaml:"fetch"`
	Download DownloadDTO `yaml:"download"`
}

// ServerDTO represents a server definition in the configuration.
type ServerDTO struct {
	Name     string `yaml:"name"`
	URL      string `yaml:"url"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
}

// CacheDTO holds the listing cache tunables.
type CacheDTO struct {
	TTLSeconds int `yaml:"ttl_seconds"`
}

// FetchDTO holds the HTTP fetch tunables.
type FetchDTO struct {
	TimeoutSeconds      int `yaml:"timeout_seconds"`
	ProbeTimeoutSeconds int `yaml:"probe_timeout_seconds"`
	MaxRetries          int `yaml:"max_retries"`
}

// DownloadDTO holds the download target settings.
type DownloadDTO struct {
	Dir string `yaml:"dir"`
}
