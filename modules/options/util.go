package options

import (
	"errors"
	"strconv"
)

// SetRequired returns a copy of the option with the required flag changed.
func SetRequired(option Option, required bool) *Option {
	option.Required = required
	return &option
}

// SetDefaultValue returns a copy of the option with a new default value.
func SetDefaultValue(option Option, value string) *Option {
	option.Value = value
	return &option
}

func CreateDeepCopyOfOptions(original []*Option) []*Option {
	copiedOptions := make([]*Option, len(original))

	for i, option := range original {
		newOption := *option
		copiedOptions[i] = &newOption
	}

	return copiedOptions
}

// ValidateOption ensures the provided option is in the list of options and
// valid. It checks if the option is required and has a valid format.
func ValidateOption(opt Option, options []*Option) error {

	for _, option := range options {
		if option.Name == opt.Name {

			// Not required and empty
			if !opt.Required && option.Value == "" {
				return nil
			}

			// Required and empty
			if opt.Required && option.Value == "" {
				return errors.New(option.Name + " is required")
			}

			if opt.ValueFormat != nil && !opt.ValueFormat.MatchString(option.Value) {
				return errors.New(option.Name + " is an invalid format")
			}

			// Check if the option value is of the correct type when non-string
			switch opt.Type {
			case Bool:
				_, err := strconv.ParseBool(option.Value)
				return err
			case Int:
				_, err := strconv.Atoi(option.Value)
				return err
			}
		}
	}

	return nil
}

func ValidateOptions(opts []*Option, required []*Option) error {
	for _, opt := range required {
		err := ValidateOption(*opt, opts)
		if err != nil {
			return err
		}
	}
	return nil
}
