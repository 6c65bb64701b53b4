// SPDX-License-Identifier: MPL-2.0

package notify

import (
	"context"
	"fmt"
	"os/exec"
)

// Send shows a desktop notification with the given summary and body.
func Send(ctx context.Context, summary, body string) error {
	cmd := exec.CommandContext(ctx, "notify-send", summary, body)
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to send notification: %w", err)
	}
	return nil
}
