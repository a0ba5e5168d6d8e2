package config

// Config carries the generator's runtime settings, resolved by viper from
// defaults, an optional config.yaml and PORTFOLIO_* environment variables.
type Config struct {
	TemplatePath string `mapstructure:"templatePath"`
	OutputDir    string `mapstructure:"outputDir"`
	ImagePrefix  string `mapstructure:"imagePrefix"`
	Verbose      bool   `mapstructure:"verbose"`
}
