// Package config provides YAML + environment configuration loading,
// merging, and validation for the maestro orchestrator.
package config

// Config is the umbrella configuration object returned by Initialize()
// and carried through the application. Sections are never nil after a
// successful Initialize.
type Config struct {
	configDir string

	LLM       *LLMConfig
	Planner   *PlannerConfig
	Approval  *ApprovalConfig
	Queue     *QueueConfig
	Sandbox   *SandboxConfig
	Gateway   *GatewayConfig
	Retention *RetentionConfig
	Notifier  *NotifierConfig
	Server    *ServerConfig
	Features  *FeatureFlags
}

// ConfigDir returns the configuration directory path.
func (c *Config) ConfigDir() string {
	return c.configDir
}

// Endpoint retrieves a configured LLM endpoint by name.
func (c *Config) Endpoint(name string) (*EndpointConfig, bool) {
	for i := range c.LLM.Endpoints {
		if c.LLM.Endpoints[i].Name == name {
			return &c.LLM.Endpoints[i], true
		}
	}
	return nil, false
}

// Stats contains statistics about loaded configuration.
type Stats struct {
	Endpoints int
	Features  int
}

// Stats returns configuration statistics for startup logging.
func (c *Config) Stats() Stats {
	s := Stats{Endpoints: len(c.LLM.Endpoints)}
	if c.Features.GenerateAlternatives {
		s.Features++
	}
	if c.Features.WebSearch {
		s.Features++
	}
	if c.Features.ProceduralRecall {
		s.Features++
	}
	if c.Features.ApprovalNotifications {
		s.Features++
	}
	return s
}
