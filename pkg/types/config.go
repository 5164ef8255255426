package types

import "errors"

// Config holds backend selection and parameters for Store.Attach.
type Config struct {
	Backend    string `json:"backend" yaml:"backend"`
	DataDir    string `json:"data_dir" yaml:"data_dir"`
	HistoryCap int    `json:"history_cap" yaml:"history_cap"`
}

// Supported backend names.
const (
	BackendMemory = "memory"
	BackendSQLite = "sqlite"
)

// DefaultHistoryCap is the per-delegator history length used when the
// config does not set one.
const DefaultHistoryCap = 16

// Config validation errors.
var (
	ErrBackendEmpty      = errors.New("backend must not be empty")
	ErrBackendUnknown    = errors.New("unknown backend")
	ErrHistoryCapInvalid = errors.New("history cap must not be negative")
)

// knownBackends lists the backends that Validate accepts.
var knownBackends = map[string]bool{
	BackendMemory: true,
	BackendSQLite: true,
}

// Validate checks that the Config is well-formed. It returns a sentinel
// error from this package on failure.
func (c Config) Validate() error {
	if c.Backend == "" {
		return ErrBackendEmpty
	}
	if !knownBackends[c.Backend] {
		return ErrBackendUnknown
	}
	if c.HistoryCap < 0 {
		return ErrHistoryCapInvalid
	}
	return nil
}

// EffectiveHistoryCap returns the configured history cap, or
// DefaultHistoryCap when unset.
func (c Config) EffectiveHistoryCap() int {
	if c.HistoryCap == 0 {
		return DefaultHistoryCap
	}
	return c.HistoryCap
}
