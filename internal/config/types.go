package config

// Config is the top-level gallery configuration, corresponding to .gallery.yml.
type Config struct {
	Host            string   `yaml:"host" koanf:"host"`
	Port            int      `yaml:"port" koanf:"port"`
	Title           string   `yaml:"title" koanf:"title"`
	Intro           string   `yaml:"intro,omitempty" koanf:"intro"`
	ImageBaseURL    string   `yaml:"image_base_url" koanf:"image_base_url"`
	HTMXURL         string   `yaml:"htmx_url" koanf:"htmx_url"`
	StaticDir       string   `yaml:"static_dir" koanf:"static_dir"`
	StaticExclude   []string `yaml:"static_exclude" koanf:"static_exclude"`
	AllowAllOrigins bool     `yaml:"allow_all_origins" koanf:"allow_all_origins"`
}
