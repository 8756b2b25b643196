package prompts

import (
	"strings"

	"github.com/charmbracelet/huh"
)

// PromptInput prompts for a text input. An empty answer falls back to defaultValue.
func PromptInput(message string, defaultValue string, validator func(string) error) (string, error) {
	var inputVal string

	input := huh.NewInput().
		Title(message).
		Value(&inputVal)

	if defaultValue != "" {
		input.Placeholder(defaultValue)
	}

	if validator != nil {
		input.Validate(validator)
	}

	if err := input.Run(); err != nil {
		return "", err
	}

	if strings.TrimSpace(inputVal) == "" {
		return defaultValue, nil
	}

	return inputVal, nil
}

// PromptSelect prompts for one of options, preselecting def.
func PromptSelect[T comparable](message string, options []huh.Option[T], def T) (T, error) {
	selected := def

	err := huh.NewSelect[T]().
		Title(message).
		Options(options...).
		Value(&selected).
		Height(10).
		Run()

	return selected, err
}
