package commands

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"strings"

	userUseCase "github.com/septer/septer/internal/user/usecase"
)

// RunCreateGuardian seeds a Guardian account. When password is empty it is
// read from the first line of io.Reader.
//
// Requirements: Database must be migrated and accessible.
func RunCreateGuardian(
	ctx context.Context,
	userUseCase userUseCase.UserUseCase,
	logger *slog.Logger,
	email string,
	password string,
	format string,
	io IOTuple,
) error {
	if password == "" {
		var err error
		password, err = promptForPassword(io)
		if err != nil {
			return err
		}
	}

	user, err := userUseCase.CreateGuardian(ctx, email, password)
	if err != nil {
		return fmt.Errorf("failed to create guardian: %w", err)
	}

	if format == "json" {
		if err := writeJSON(io.Writer, map[string]string{
			"id":    user.ID.String(),
			"email": user.Email,
			"role":  user.Role.String(),
		}); err != nil {
			return err
		}
	} else {
		_, _ = fmt.Fprintln(io.Writer, "Guardian created successfully")
		_, _ = fmt.Fprintf(io.Writer, "ID: %s\n", user.ID)
		_, _ = fmt.Fprintf(io.Writer, "Email: %s\n", user.Email)
	}

	logger.Info("guardian created", slog.String("user_id", user.ID.String()))
	return nil
}

func promptForPassword(io IOTuple) (string, error) {
	if io.Reader == nil {
		return "", fmt.Errorf("password is required")
	}

	_, _ = fmt.Fprint(io.Writer, "Enter password: ")
	line, err := bufio.NewReader(io.Reader).ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("failed to read password: %w", err)
	}
	_, _ = fmt.Fprintln(io.Writer)

	password := strings.TrimRight(line, "\r\n")
	if password == "" {
		return "", fmt.Errorf("password is required")
	}
	return password, nil
}
