package commands

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/allisson/userguard/internal/app"
	"github.com/allisson/userguard/internal/config"
)

// RunCleanResetTokens deletes expired password reset tokens. Expired tokens
// are already unusable; this keeps the table from growing unbounded. In
// dry-run mode nothing is deleted.
func RunCleanResetTokens(ctx context.Context, dryRun bool) error {
	cfg := config.Load()

	container := app.NewContainer(cfg)
	logger := container.Logger()
	logger.Info("cleaning expired reset tokens", slog.Bool("dry_run", dryRun))

	defer closeContainer(container, logger)

	if dryRun {
		fmt.Println("Dry-run mode: expired reset tokens would be deleted")
		return nil
	}

	repo, err := container.ResetTokenRepository()
	if err != nil {
		return fmt.Errorf("failed to initialize reset token repository: %w", err)
	}

	count, err := repo.DeleteExpired(ctx, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("failed to delete expired reset tokens: %w", err)
	}

	fmt.Printf("Successfully deleted %d expired reset token(s)\n", count)
	logger.Info("cleanup completed", slog.Int64("count", count))
	return nil
}
