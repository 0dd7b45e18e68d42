package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/manifoldco/promptui"
)

// RunWizard runs an interactive configuration wizard, saves the result to
// path and returns it.
func RunWizard(path string) (*Config, error) {
	fmt.Println("Let's configure your gallery.")
	fmt.Println()

	cfg := DefaultConfig()

	if _, err := os.Stat(path); err == nil {
		overwrite := promptui.Prompt{
			Label:     fmt.Sprintf("%s already exists, overwrite", path),
			IsConfirm: true,
		}
		if _, err := overwrite.Run(); err != nil {
			return nil, fmt.Errorf("keeping existing %s", path)
		}
	}

	// 1. Page title.
	titlePrompt := promptui.Prompt{
		Label:   "Page title",
		Default: cfg.Title,
	}
	title, err := titlePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("title: %w", err)
	}
	cfg.Title = title

	// 2. Port.
	portPrompt := promptui.Prompt{
		Label:   "Port to listen on",
		Default: strconv.Itoa(cfg.Port),
		Validate: func(s string) error {
			p, err := strconv.Atoi(s)
			if err != nil || p < 0 || p > 65535 {
				return fmt.Errorf("port must be a number between 0 and 65535")
			}
			return nil
		},
	}
	portStr, err := portPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("port: %w", err)
	}
	cfg.Port, _ = strconv.Atoi(portStr)

	// 3. Placeholder image source.
	imagePrompt := promptui.Select{
		Label: "Placeholder image size",
		Items: []string{
			"https://picsum.photos/800/800",
			"https://picsum.photos/400/400",
			"https://picsum.photos/1200/1200",
		},
	}
	_, cfg.ImageBaseURL, err = imagePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("image source: %w", err)
	}

	// 4. Static directory.
	staticPrompt := promptui.Prompt{
		Label:   "Static assets directory",
		Default: cfg.StaticDir,
	}
	cfg.StaticDir, err = staticPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("static dir: %w", err)
	}

	// 5. Extra exclude patterns.
	excludePrompt := promptui.Prompt{
		Label:   "Extra static exclude patterns (comma-separated, leave blank for defaults)",
		Default: "",
	}
	excludeStr, err := excludePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("exclude patterns: %w", err)
	}
	cfg.StaticExclude = append(cfg.StaticExclude, splitAndTrim(excludeStr)...)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if err := cfg.Save(path); err != nil {
		return nil, fmt.Errorf("saving config: %w", err)
	}

	fmt.Printf("\nConfiguration saved to %s\n", path)
	return cfg, nil
}

// splitAndTrim splits a comma-separated string and trims whitespace.
func splitAndTrim(s string) []string {
	var result []string
	for _, part := range strings.Split(s, ",") {
		if token := strings.TrimSpace(part); token != "" {
			result = append(result, token)
		}
	}
	return result
}
