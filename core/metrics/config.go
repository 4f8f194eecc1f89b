package metrics

import "fmt"

// Config defines settings for metrics sinks.
type Config struct {
	// Sinks lists the enabled sinks: "prometheus" and/or "log".
	Sinks []string `json:"sinks"`
	// Textfile is where the prometheus sink writes its exposition on flush.
	Textfile string `json:"textfile"`
}

// Validate checks sink names and that the prometheus sink has somewhere to write.
func (c Config) Validate() error {
	for _, s := range c.Sinks {
		switch s {
		case "log", "nop":
		case "prometheus":
			if c.Textfile == "" {
				return fmt.Errorf("metrics: prometheus sink requires textfile")
			}
		default:
			return fmt.Errorf("metrics: unknown sink %q", s)
		}
	}
	return nil
}
