// Engine configuration payloads.
//
// Open takes a structured settings payload serialized as JSON, mirroring the
// original engine contract. The engine interprets individual items through
// typed getters; the binding above passes the payload through without
// inspecting it.
package engine

import (
	"math"

	json "github.com/goccy/go-json"
)

// Config is a parsed settings payload. The zero value is an empty config.
type Config struct {
	items map[string]any
}

// ConfigFromJSON parses a JSON settings payload. An empty payload yields an
// empty config; malformed JSON or a non-object payload reports
// ConfigParsingError.
func ConfigFromJSON(data []byte) (*Config, Status) {
	if len(data) == 0 {
		return &Config{}, OK
	}
	var items map[string]any
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, ConfigParsingError
	}
	return &Config{items: items}, OK
}

// Int64 returns an integer item. A missing item reports NotFound; a non-
// numeric or fractional value reports ConfigTypeError.
func (c *Config) Int64(name string) (int64, Status) {
	v, ok := c.items[name]
	if !ok {
		return 0, NotFound
	}
	f, ok := v.(float64) // JSON numbers decode as float64
	if !ok || f != math.Trunc(f) {
		return 0, ConfigTypeError
	}
	return int64(f), OK
}

// String returns a string item. A missing item reports NotFound; any other
// type reports ConfigTypeError.
func (c *Config) String(name string) (string, Status) {
	v, ok := c.items[name]
	if !ok {
		return "", NotFound
	}
	s, ok := v.(string)
	if !ok {
		return "", ConfigTypeError
	}
	return s, OK
}

// Bool returns a boolean item. A missing item reports NotFound; any other
// type reports ConfigTypeError.
func (c *Config) Bool(name string) (bool, Status) {
	v, ok := c.items[name]
	if !ok {
		return false, NotFound
	}
	b, ok := v.(bool)
	if !ok {
		return false, ConfigTypeError
	}
	return b, OK
}
