package gatekeeper

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/reglet-dev/reglet-capability-sdk/capability"
)

// Ensure implementations satisfy the interface.
var _ capability.Prompter = (*TerminalPrompter)(nil)

// TerminalPrompter provides interactive terminal prompting for API keys.
type TerminalPrompter struct{}

// NewTerminalPrompter creates a new TerminalPrompter.
func NewTerminalPrompter() *TerminalPrompter {
	return &TerminalPrompter{}
}

// IsInteractive checks if we're running in an interactive terminal.
func (p *TerminalPrompter) IsInteractive() bool {
	fileInfo, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return (fileInfo.Mode() & os.ModeCharDevice) != 0
}

// PromptForKey asks the user for a key, hiding the input. The form does not
// accept a value until req.Validate passes.
func (p *TerminalPrompter) PromptForKey(req capability.KeyRequest) (string, error) {
	var value string

	input := huh.NewInput().
		Title(req.Title).
		Description(req.Description).
		EchoMode(huh.EchoModePassword).
		Value(&value)
	if req.Validate != nil {
		input = input.Validate(req.Validate)
	}

	if err := input.Run(); err != nil {
		return "", err
	}
	return value, nil
}

// FormatNonInteractiveError creates a helpful error message for non-interactive mode.
// The manual-edit hint is included only when storePath is set.
func (p *TerminalPrompter) FormatNonInteractiveError(missing []string, storePath string) error {
	var msg strings.Builder
	msg.WriteString("Providers require API keys (running in non-interactive mode)\n\n")
	msg.WriteString("Missing keys:\n")

	for _, name := range missing {
		msg.WriteString(fmt.Sprintf("  - %s\n", name))
	}

	msg.WriteString("\nTo provide these keys:\n")
	msg.WriteString("  1. Run interactively and enter them when prompted\n")
	if storePath != "" {
		msg.WriteString(fmt.Sprintf("  2. Manually edit: %s\n", storePath))
	}

	return fmt.Errorf("%s", msg.String())
}
