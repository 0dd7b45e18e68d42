package config

// DefaultConfigFile is the config path used when --config is not given.
const DefaultConfigFile = ".gallery.yml"

// EnvPrefix is the prefix of environment variable overrides.
const EnvPrefix = "GALLERY_"

// DefaultStaticExcludes are glob patterns never served from the static directory.
var DefaultStaticExcludes = []string{
	"**/.*",
	"**/*.map",
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Host:          "0.0.0.0",
		Port:          8080,
		Title:         "HTMX Infinite Scroll Gallery",
		ImageBaseURL:  "https://picsum.photos/800/800",
		HTMXURL:       "https://unpkg.com/htmx.org@1.9.3/dist/htmx.min.js",
		StaticDir:     "static",
		StaticExclude: append([]string(nil), DefaultStaticExcludes...),
	}
}
