// Package errmsg provides consistent error formatting for user-facing messages.
package errmsg

import (
	"context"
	"errors"
	"fmt"
)

// Op represents an operation that can fail.
type Op string

// Operation constants - grouped by domain.
const (
	// Search operations
	OpSearchArtists Op = "search artists"
	OpSearchAlbums  Op = "search albums"
	OpSearchTracks  Op = "search tracks"

	// Chart operations
	OpChartArtists Op = "load top artists"
	OpChartTracks  Op = "load top tracks"

	// Artist discovery
	OpSimilarArtists Op = "load similar artists"

	// Sharing and links
	OpCopyLink Op = "copy link"
	OpOpenLink Op = "open link"
)

// Format creates a user-friendly error message.
func Format(op Op, err error) string {
	if err == nil {
		return ""
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Sprintf("Failed to %s: request timed out", op)
	}
	return fmt.Sprintf("Failed to %s: %v", op, err)
}

// FormatWith creates an error message with additional context.
func FormatWith(op Op, context string, err error) string {
	if err == nil {
		return ""
	}
	if context == "" {
		return Format(op, err)
	}
	return fmt.Sprintf("Failed to %s '%s': %v", op, context, err)
}
