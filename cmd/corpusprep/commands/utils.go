// ABOUTME: Shared utility functions for CLI commands
// ABOUTME: Store opening, flag fallbacks and display helpers
package commands

import (
	"fmt"
	"time"

	"github.com/harper/corpusprep/internal/faults"
	"github.com/harper/corpusprep/internal/storage"
)

// openStore connects to the configured dataset store
func openStore() (storage.Store, error) {
	store, err := storage.Open(cfg)
	if err != nil {
		return nil, fmt.Errorf("initializing storage: %w", err)
	}
	return store, nil
}

// firstNonEmpty returns the first argument that is not the empty string
func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// invalidParameter tags err as a bad argument so main exits accordingly
func invalidParameter(err error) error {
	return fmt.Errorf("%w: %w", faults.ErrInvalidParameter, err)
}

// truncate shortens a string to maxLen, adding "..." if truncated
func truncate(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return string(runes[:maxLen])
	}
	return string(runes[:maxLen-3]) + "..."
}

// formatTime formats a time for display
func formatTime(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	diff := time.Since(t)

	if diff < time.Minute {
		return "just now"
	} else if diff < time.Hour {
		mins := int(diff.Minutes())
		return fmt.Sprintf("%dm ago", mins)
	} else if diff < 24*time.Hour {
		hours := int(diff.Hours())
		return fmt.Sprintf("%dh ago", hours)
	} else if diff < 7*24*time.Hour {
		days := int(diff.Hours() / 24)
		return fmt.Sprintf("%dd ago", days)
	}
	return t.Format("2006-01-02")
}
