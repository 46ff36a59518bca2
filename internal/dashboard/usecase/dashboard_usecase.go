package usecase

import (
	"context"
	"log/slog"

	"golang.org/x/sync/errgroup"

	cryptoService "github.com/septer/septer/internal/crypto/service"
	dashboardDomain "github.com/septer/septer/internal/dashboard/domain"
	userUseCase "github.com/septer/septer/internal/user/usecase"
)

// dashboardUseCase implements DashboardUseCase.
type dashboardUseCase struct {
	dashboardRepo DashboardRepository
	userRepo      userUseCase.UserRepository
	cipher        cryptoService.CredentialCipher
	logger        *slog.Logger
}

// Get runs the three queries concurrently. The first failing query cancels the others.
func (d *dashboardUseCase) Get(
	ctx context.Context,
	page dashboardDomain.Page,
) (*dashboardDomain.Dashboard, error) {
	dashboard := &dashboardDomain.Dashboard{}
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		total, err := d.dashboardRepo.CountConversations(gctx)
		if err != nil {
			return err
		}
		dashboard.TotalQuestions = total
		return nil
	})

	g.Go(func() error {
		questions, err := d.dashboardRepo.ListQuestions(gctx, page.Offset, page.Limit)
		if err != nil {
			return err
		}
		dashboard.Questions = questions
		return nil
	})

	g.Go(func() error {
		users, err := d.userRepo.List(gctx, page.Offset, page.Limit)
		if err != nil {
			return err
		}

		entries := make([]*dashboardDomain.UserEntry, 0, len(users))
		for _, user := range users {
			password, err := d.cipher.Recover(user.Password)
			if err != nil {
				d.logger.Warn("failed to recover password",
					slog.String("user_id", user.ID.String()),
					slog.Any("error", err))
				password = ""
			}
			entries = append(entries, &dashboardDomain.UserEntry{
				ID:       user.ID,
				Email:    user.Email,
				Role:     user.Role,
				Password: password,
			})
		}
		dashboard.Users = entries
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return dashboard, nil
}

// NewDashboardUseCase creates a new DashboardUseCase.
func NewDashboardUseCase(
	dashboardRepo DashboardRepository,
	userRepo userUseCase.UserRepository,
	cipher cryptoService.CredentialCipher,
	logger *slog.Logger,
) DashboardUseCase {
	return &dashboardUseCase{
		dashboardRepo: dashboardRepo,
		userRepo:      userRepo,
		cipher:        cipher,
		logger:        logger,
	}
}
