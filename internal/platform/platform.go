package platform

import (
	"bytes"
	"fmt"
	"net/url"
	"os/exec"
	"runtime"
	"strings"
)

// ValidateURL checks that raw is an absolute http(s) address and returns it
// trimmed.
func ValidateURL(raw string) (string, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", fmt.Errorf("empty URL")
	}
	parsed, err := url.Parse(trimmed)
	if err != nil {
		return "", fmt.Errorf("invalid URL format")
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return "", fmt.Errorf("unsupported URL scheme: %q", parsed.Scheme)
	}
	if parsed.Host == "" {
		return "", fmt.Errorf("invalid URL host")
	}
	return trimmed, nil
}

func OpenURLInBrowser(url string) error {
	name, args := browserCommand(runtime.GOOS, url)
	return exec.Command(name, args...).Run()
}

func browserCommand(goos, url string) (string, []string) {
	switch goos {
	case "darwin":
		return "open", []string{url}
	case "windows":
		return "rundll32", []string{"url.dll,FileProtocolHandler", url}
	default:
		return "xdg-open", []string{url}
	}
}

func CopyToClipboard(text string) error {
	return copyWith(text, exec.LookPath, func(command []string, text string) error {
		cmd := exec.Command(command[0], command[1:]...)
		cmd.Stdin = bytes.NewBufferString(text)
		return cmd.Run()
	})
}

// copyWith tries each installed clipboard command in turn until one runs.
func copyWith(text string, lookPath func(string) (string, error), run func([]string, string) error) error {
	candidates := clipboardCommands(lookPath)
	if len(candidates) == 0 {
		return fmt.Errorf("no clipboard command available")
	}
	var lastErr error
	for _, command := range candidates {
		if lastErr = run(command, text); lastErr == nil {
			return nil
		}
	}
	return fmt.Errorf("clipboard commands failed: %w", lastErr)
}

func clipboardCommands(lookPath func(string) (string, error)) [][]string {
	commands := [][]string{
		{"pbcopy"},
		{"xclip", "-selection", "clipboard"},
		{"wl-copy"},
	}
	var available [][]string
	for _, c := range commands {
		if _, err := lookPath(c[0]); err == nil {
			available = append(available, c)
		}
	}
	return available
}
