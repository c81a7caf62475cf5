package status

import (
	"context"
	"errors"
	"fmt"
	"strings"

	domain "bark-backend/internal/domain/status"

	"go.uber.org/zap"
)

var ErrInvalidCategory = errors.New("invalid status category")

type Usecase struct {
	repo domain.Repository
	log  *zap.Logger
}

func NewUsecase(r domain.Repository, log *zap.Logger) *Usecase {
	if log == nil {
		log = zap.NewNop()
	}
	return &Usecase{repo: r, log: log}
}

func (u *Usecase) List(ctx context.Context) ([]domain.Status, error) {
	return u.repo.List(ctx)
}

func (u *Usecase) Get(ctx context.Context, id uint) (*domain.Status, error) {
	return u.repo.GetByID(ctx, id)
}

func (u *Usecase) Create(ctx context.Context, in StatusInput) (*domain.Status, error) {
	s := &domain.Status{}
	if err := apply(s, in); err != nil {
		return nil, err
	}
	if err := u.repo.Create(ctx, s); err != nil {
		return nil, fmt.Errorf("create status: %w", err)
	}
	u.log.Info("status created", zap.Uint("status_id", s.ID), zap.String("name", s.Name))
	return s, nil
}

func (u *Usecase) Update(ctx context.Context, id uint, in StatusInput) (*domain.Status, error) {
	s, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := apply(s, in); err != nil {
		return nil, err
	}
	if err := u.repo.Save(ctx, s); err != nil {
		return nil, fmt.Errorf("save status %d: %w", id, err)
	}
	return s, nil
}

func (u *Usecase) Delete(ctx context.Context, id uint) error {
	if err := u.repo.Delete(ctx, id); err != nil {
		return err
	}
	u.log.Info("status deleted", zap.Uint("status_id", id))
	return nil
}

func apply(s *domain.Status, in StatusInput) error {
	c, ok := domain.ParseCategory(in.Category)
	if !ok {
		return fmt.Errorf("%w: %q", ErrInvalidCategory, in.Category)
	}
	s.Category = c
	s.Name = strings.TrimSpace(in.Name)
	s.Order = in.Order
	s.ColorCode = in.ColorCode
	if s.ColorCode == "" {
		s.ColorCode = domain.DefaultColor
	}
	return nil
}
