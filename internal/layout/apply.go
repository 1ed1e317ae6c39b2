package layout

import (
	"context"
	"fmt"

	"github.com/yourusername/placer-cli/internal/client"
	"github.com/yourusername/placer-cli/internal/logging"
)

// Apply sends placements to the backend as move+resize pairs.
// Continues on individual errors to place as many windows as possible;
// a window's move+resize pair is the unit of atomicity, never the batch.
func Apply(ctx context.Context, c *client.Client, placements []Placement) error {
	successCount := 0
	errorCount := 0

	for _, p := range placements {
		err := c.Move(ctx, p.WindowID, p.Frame.X, p.Frame.Y)
		if err == nil {
			err = c.Resize(ctx, p.WindowID, p.Frame.Width, p.Frame.Height)
		}

		if err != nil {
			logging.Warn().Uint32("window", p.WindowID).Err(err).Msg("placement failed")
			errorCount++
		} else {
			successCount++
		}
	}

	// Only fail if NO windows could be placed
	if successCount == 0 && errorCount > 0 {
		return fmt.Errorf("failed to place all %d windows", errorCount)
	}

	return nil
}
