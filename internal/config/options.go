package config

import "os"

// EnvLookup resolves environment variables.
type EnvLookup func(string) (string, bool)

// DefaultEnvLookup reads from the process environment.
func DefaultEnvLookup(key string) (string, bool) {
	return os.LookupEnv(key)
}

type loadOptions struct {
	envLookup  EnvLookup
	readFile   func(string) ([]byte, error)
	homeDir    func() (string, error)
	configPath string
	overrides  Overrides
}

// Option customizes Load.
type Option func(*loadOptions)

// WithEnv replaces the environment lookup.
func WithEnv(lookup EnvLookup) Option {
	return func(o *loadOptions) {
		if lookup != nil {
			o.envLookup = lookup
		}
	}
}

// WithFileReader replaces the function used to read the config file.
func WithFileReader(reader func(string) ([]byte, error)) Option {
	return func(o *loadOptions) {
		if reader != nil {
			o.readFile = reader
		}
	}
}

// WithHomeDir replaces home directory resolution.
func WithHomeDir(fn func() (string, error)) Option {
	return func(o *loadOptions) {
		if fn != nil {
			o.homeDir = fn
		}
	}
}

// WithConfigPath forces a specific config file.
func WithConfigPath(path string) Option {
	return func(o *loadOptions) {
		o.configPath = path
	}
}

// WithOverrides applies caller overrides with the highest precedence.
func WithOverrides(overrides Overrides) Option {
	return func(o *loadOptions) {
		o.overrides = overrides
	}
}
