/*
Package matrix is a typed front-end over the permute engine for generating
every combination of options for a struct type T, without going through the
reflective declaration surface.

Each builder method registers a mutation group, the different possible values
for one field. Perm() yields the cartesian product of all groups, every
possible combination of the registered options.

# Basic Usage

Define a struct and use the builder to specify options for each field:

	type Config struct {
		Debug   bool
		Timeout string
	}

	m := matrix.New[Config]().
		Boolean(func(c *Config, v bool) { c.Debug = v }).
		String(func(c *Config, v string) { c.Timeout = v }, "30s", "60s")

	for config := range m.Perm() {
		// Yields 4 combinations: all combinations of Debug (true/false) and Timeout (30s/60s)
		fmt.Printf("Debug=%t Timeout=%s\n", config.Debug, config.Timeout)
	}

# Custom Types

For custom types, use the Assign function directly:

	type LogLevel int
	const (
		Info LogLevel = iota
		Warning
		Error
	)

	type Config struct {
		Level LogLevel
	}

	m := matrix.New[Config]()
	matrix.Assign(m, func(c *Config, v LogLevel) { c.Level = v }, Info, Warning, Error)
*/
package matrix
