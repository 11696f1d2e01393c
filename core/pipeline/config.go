package pipeline

import "time"

// MaxURLs is the most URLs processed in one run.
const MaxURLs = 5

// Config holds run settings resolved from flags, environment and the
// config file.
type Config struct {
	URLsFile   string `yaml:"urls" mapstructure:"urls"`
	OutputDir  string `yaml:"outdir" mapstructure:"outdir"`
	WaitMillis int    `yaml:"wait" mapstructure:"wait"`
	Scroll     bool   `yaml:"scroll" mapstructure:"scroll"`
	Screenshot bool   `yaml:"screenshot" mapstructure:"screenshot"`
	PDF        bool   `yaml:"pdf" mapstructure:"pdf"`
	ExportData bool   `yaml:"export_data" mapstructure:"export_data"`
	UserAgent  string `yaml:"user_agent" mapstructure:"user_agent"`
	ChromePath string `yaml:"chrome_path" mapstructure:"chrome_path"`
	Verbose    bool   `yaml:"verbose" mapstructure:"verbose"`
}

// DefaultConfig returns the settings used when nothing overrides them.
func DefaultConfig() Config {
	return Config{
		URLsFile:   "URLs.txt",
		OutputDir:  "out",
		WaitMillis: 2000,
	}
}

// Wait returns the extra post-idle wait as a duration. Negative values
// count as zero.
func (c Config) Wait() time.Duration {
	if c.WaitMillis <= 0 {
		return 0
	}
	return time.Duration(c.WaitMillis) * time.Millisecond
}
