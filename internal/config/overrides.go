package config

import (
	"fmt"
	"slices"

	"github.com/mitchellh/mapstructure"
)

// Overrides carries per-request board parameters from loosely typed
// sources such as HTTP query strings and MCP tool arguments. Nil fields
// leave the base configuration untouched.
type Overrides struct {
	Size     *int  `mapstructure:"size"`
	Dice     *int  `mapstructure:"dice"`
	Jail     *int  `mapstructure:"jail"`
	GoToJail *int  `mapstructure:"goto_jail"`
	Chance   []int `mapstructure:"chance"`
	Power    *int  `mapstructure:"power"`
}

// DecodeOverrides reads overrides from a generic map. Strings are parsed as
// numbers and a comma separated string is accepted for chance.
func DecodeOverrides(input map[string]any) (Overrides, error) {
	var o Overrides
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook:       mapstructure.StringToSliceHookFunc(","),
		WeaklyTypedInput: true,
		Result:           &o,
	})
	if err != nil {
		return Overrides{}, err
	}
	if err := dec.Decode(input); err != nil {
		return Overrides{}, fmt.Errorf("decode overrides: %w", err)
	}
	return o, nil
}

// Empty reports whether no field is set.
func (o Overrides) Empty() bool {
	return o.Size == nil && o.Dice == nil && o.Jail == nil &&
		o.GoToJail == nil && o.Chance == nil && o.Power == nil
}

// Apply returns a copy of c with the overrides in place, validated.
func (c Config) Apply(o Overrides) (Config, error) {
	out := c
	out.ChanceSpaces = slices.Clone(c.ChanceSpaces)

	set := func(dst *int, v *int) {
		if v != nil {
			*dst = *v
		}
	}
	set(&out.Size, o.Size)
	set(&out.Dice, o.Dice)
	set(&out.Jail, o.Jail)
	set(&out.GoToJail, o.GoToJail)
	set(&out.Power, o.Power)
	if o.Chance != nil {
		out.ChanceSpaces = slices.Clone(o.Chance)
	}

	if err := out.Validate(); err != nil {
		return Config{}, err
	}
	return out, nil
}
