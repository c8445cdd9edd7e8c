package model

import "time"

// DefaultBaseURL is the upstream generator endpoint
const DefaultBaseURL = "https://www.fakenamegenerator.com/advanced.php?t=country"

// SwitchOn is the only value that enables an On/Off option
const SwitchOn = "On"

// Config holds the complete configuration for a run.
// It is built once at startup and passed to every component that needs it.
type Config struct {
	Advanced AdvancedOptions `mapstructure:"advanced_options" yaml:"advanced_options"`
	QR       QROptions       `mapstructure:"qr_options" yaml:"qr_options"`
	Output   OutputOptions   `mapstructure:"output_options" yaml:"output_options"`
	HTTP     HTTPOptions     `mapstructure:"http_options" yaml:"http_options"`
}

// AdvancedOptions control the upstream query parameters
type AdvancedOptions struct {
	NameSet string `mapstructure:"name_set" yaml:"name_set"`
	Country string `mapstructure:"country" yaml:"country"`
	Gen     string `mapstructure:"gen" yaml:"gen"`
	AgeMin  string `mapstructure:"age_min" yaml:"age_min"`
	AgeMax  string `mapstructure:"age_max" yaml:"age_max"`
}

// QROptions gate QR code rendering
type QROptions struct {
	GenerateQR string `mapstructure:"generate_qr" yaml:"generate_qr"` // "On" enables, anything else disables
}

// Enabled reports whether QR rendering is switched on
func (o QROptions) Enabled() bool {
	return o.GenerateQR == SwitchOn
}

// OutputOptions control where records are written
type OutputOptions struct {
	Dir string `mapstructure:"output_dir" yaml:"output_dir"`
}

// HTTPOptions control the single outbound request
type HTTPOptions struct {
	BaseURL       string        `mapstructure:"base_url" yaml:"base_url"`
	Timeout       time.Duration `mapstructure:"timeout" yaml:"timeout"`
	MaxBodyBytes  int64         `mapstructure:"max_body_bytes" yaml:"max_body_bytes"`
	RespectRobots string        `mapstructure:"respect_robots" yaml:"respect_robots"` // "On" consults robots.txt before fetching
	HTTPProxy     string        `mapstructure:"http_proxy" yaml:"http_proxy,omitempty"`
	HTTPSProxy    string        `mapstructure:"https_proxy" yaml:"https_proxy,omitempty"`
}

// RobotsEnabled reports whether robots.txt should be consulted
func (o HTTPOptions) RobotsEnabled() bool {
	return o.RespectRobots == SwitchOn
}

// DefaultConfig returns the built-in defaults
func DefaultConfig() *Config {
	return &Config{
		Advanced: AdvancedOptions{
			NameSet: "us",
			Country: "us",
			Gen:     "0",
			AgeMin:  "18",
			AgeMax:  "99",
		},
		QR: QROptions{
			GenerateQR: "Off",
		},
		Output: OutputOptions{
			Dir: "output",
		},
		HTTP: HTTPOptions{
			BaseURL:       DefaultBaseURL,
			Timeout:       10 * time.Second,
			MaxBodyBytes:  2_000_000,
			RespectRobots: "Off",
		},
	}
}
