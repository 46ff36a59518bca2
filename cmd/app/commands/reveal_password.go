package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	userUseCase "github.com/septer/septer/internal/user/usecase"
)

// RunRevealPassword prints the recovered plaintext password of the account with email.
func RunRevealPassword(
	ctx context.Context,
	userUseCase userUseCase.UserUseCase,
	logger *slog.Logger,
	email string,
	writer io.Writer,
) error {
	password, err := userUseCase.RecoverPassword(ctx, email)
	if err != nil {
		return fmt.Errorf("failed to recover password: %w", err)
	}

	_, _ = fmt.Fprintln(writer, password)

	logger.Warn("password revealed", slog.String("email", email))
	return nil
}
