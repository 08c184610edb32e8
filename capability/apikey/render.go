package apikey

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/reglet-dev/reglet-capability-sdk/provider"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	hintStyle  = lipgloss.NewStyle().Faint(true)
)

func render(title, providerName string, minLen int) string {
	return lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render(title),
		fmt.Sprintf("Provider %s needs an API key to continue.", providerName),
		hintStyle.Render(fmt.Sprintf("Keys must be at least %d characters long.", minLen)),
	)
}

func displayName(p any) string {
	if n, ok := p.(provider.Named); ok && n.Name() != "" {
		return n.Name()
	}
	return fmt.Sprintf("%T", p)
}
