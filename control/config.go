package control

import (
	"reflect"

	"github.com/go-viper/mapstructure/v2"
	"github.com/invopop/jsonschema"
	"github.com/pkg/errors"
	"github.com/spf13/cast"

	"go.viam.com/pathfollow/utils"
)

// ControllerType names one of the controller implementations.
type ControllerType string

// The supported controller types.
const (
	TypeProportional ControllerType = "proportional"
	TypePID          ControllerType = "pid"
	TypeBangBang     ControllerType = "bang_bang"
)

// Config describes a controller. Only the fields of the chosen Type are read.
type Config struct {
	Type ControllerType `json:"type"`

	Coefficient float64 `json:"coefficient,omitempty"`

	Kp            float64 `json:"kp,omitempty"`
	Ki            float64 `json:"ki,omitempty"`
	Kd            float64 `json:"kd,omitempty"`
	IntegralLimit float64 `json:"integral_limit,omitempty"`

	High float64 `json:"high,omitempty"`
	Low  float64 `json:"low,omitempty"`

	Target float64  `json:"target,omitempty"`
	Min    *float64 `json:"min,omitempty"`
	Max    *float64 `json:"max,omitempty"`
}

// Validate ensures all parts of the config are valid.
func (cfg *Config) Validate(path string) error {
	switch cfg.Type {
	case TypeProportional, TypePID, TypeBangBang:
	case "":
		return utils.NewConfigValidationFieldRequiredError(path, "type")
	default:
		return utils.NewConfigValidationError(path, errors.Errorf("unsupported controller type %q", cfg.Type))
	}
	if cfg.Type == TypePID && cfg.IntegralLimit < 0 {
		return utils.NewConfigValidationError(path, errors.New("integral_limit cannot be negative"))
	}
	if cfg.Min != nil && cfg.Max != nil && *cfg.Min > *cfg.Max {
		return utils.NewConfigValidationError(path,
			errors.Errorf("min (%v) cannot be greater than max (%v)", *cfg.Min, *cfg.Max))
	}
	return nil
}

// ConfigSchema returns the JSON schema of Config.
func ConfigSchema() *jsonschema.Schema {
	return jsonschema.Reflect(&Config{})
}

// DecodeConfig converts a loosely typed attribute map, such as one read from a JSON
// config file, into a Config. Numbers may be given as strings. Unknown keys are rejected.
func DecodeConfig(attributes map[string]interface{}) (Config, error) {
	var conf Config
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:     "json",
		Result:      &conf,
		ErrorUnused: true,
		DecodeHook:  mapstructure.DecodeHookFuncType(numberFromString),
	})
	if err != nil {
		return Config{}, err
	}
	if err := decoder.Decode(attributes); err != nil {
		return Config{}, errors.Wrap(err, "decoding controller attributes")
	}
	return conf, nil
}

// numberFromString converts string values bound for float fields, as they arrive from
// environment variables and command line flags.
func numberFromString(_, to reflect.Type, data interface{}) (interface{}, error) {
	if _, ok := data.(string); !ok || to.Kind() != reflect.Float64 {
		return data, nil
	}
	return cast.ToFloat64E(data)
}

// NewController validates cfg and builds the controller it describes.
func NewController(cfg Config) (Controller, error) {
	if err := cfg.Validate("controller"); err != nil {
		return nil, err
	}
	var c Controller
	switch cfg.Type {
	case TypeProportional:
		c = NewProportional(cfg.Coefficient)
	case TypePID:
		c = NewPID(cfg.Kp, cfg.Ki, cfg.Kd, cfg.IntegralLimit)
	case TypeBangBang:
		c = NewBangBang(cfg.High, cfg.Low)
	default:
		return nil, errors.Errorf("unsupported controller type %q", cfg.Type)
	}
	c.SetTarget(cfg.Target)
	if cfg.Min != nil {
		c.SetMin(*cfg.Min)
	}
	if cfg.Max != nil {
		c.SetMax(*cfg.Max)
	}
	return c, nil
}
