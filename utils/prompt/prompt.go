package promptutils

import (
	"errors"
	"fmt"
	"strings"

	"github.com/manifoldco/promptui"
)

// ErrInterrupted is returned when the user cancels an interactive prompt.
var ErrInterrupted = errors.New("operation interrupted")

type Prompter interface {
	PromptRequired(label string) (string, error)
	PromptWithDefault(label, defaultValue string) (string, error)
	PromptForConfirmation(label string) bool
}

type RealPrompter struct{}

func NewPrompt() Prompter {
	return &RealPrompter{}
}

func (p *RealPrompter) PromptRequired(label string) (string, error) {
	prompt := promptui.Prompt{
		Label: label,
		Validate: func(input string) error {
			if strings.TrimSpace(input) == "" {
				return fmt.Errorf("value is required")
			}
			return nil
		},
	}
	result, err := prompt.Run()
	if err != nil {
		return "", handlePromptError(err)
	}
	return strings.TrimSpace(result), nil
}

func (p *RealPrompter) PromptWithDefault(label, defaultValue string) (string, error) {
	prompt := promptui.Prompt{
		Label:   label,
		Default: defaultValue,
	}
	result, err := prompt.Run()
	if err != nil {
		return "", handlePromptError(err)
	}
	result = strings.TrimSpace(result)
	if result == "" {
		return defaultValue, nil
	}
	return result, nil
}

func (p *RealPrompter) PromptForConfirmation(label string) bool {
	prompt := promptui.Prompt{
		Label:     label,
		IsConfirm: true,
	}
	result, err := prompt.Run()
	if err != nil {
		return false
	}
	return strings.HasPrefix(strings.ToLower(result), "y")
}

func handlePromptError(err error) error {
	if errors.Is(err, promptui.ErrInterrupt) {
		fmt.Println("\nReceived termination signal. Exiting.")
		return ErrInterrupted
	}
	return fmt.Errorf("prompt failed: %w", err)
}
