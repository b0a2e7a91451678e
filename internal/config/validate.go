package config

import "fmt"

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in (0, 65535] (got %d)", c.Server.Port)
	}

	if c.Database.MaxConns < c.Database.MinConns {
		return fmt.Errorf("database.max_conns (%d) must be >= database.min_conns (%d)",
			c.Database.MaxConns, c.Database.MinConns)
	}

	if err := c.Glossary.validate(); err != nil {
		return fmt.Errorf("glossary: %w", err)
	}

	return nil
}

func (g *GlossaryConfig) validate() error {
	if g.MaxEntries <= 0 {
		return fmt.Errorf("max_entries must be > 0 (got %d)", g.MaxEntries)
	}
	if g.MaxTitleLen <= 0 {
		return fmt.Errorf("max_title_len must be > 0 (got %d)", g.MaxTitleLen)
	}
	if g.MaxRulesPerEntry <= 0 {
		return fmt.Errorf("max_rules_per_entry must be > 0 (got %d)", g.MaxRulesPerEntry)
	}
	return nil
}
