package discounts

import (
	"context"
	"errors"
	"fmt"

	"github.com/AnshGupta06/Mindsettler-GWOC-26-sub001/internal/domain"
	ruleRepo "github.com/AnshGupta06/Mindsettler-GWOC-26-sub001/internal/infra/storage/discountrule"
	"github.com/AnshGupta06/Mindsettler-GWOC-26-sub001/internal/service/discounts/models"
)

// Service сервис администрирования правил скидок
type Service struct {
	ruleRepo  RuleRepository
	txManager TransactionManager
	logger    Logger
}

// NewService создает новый экземпляр сервиса скидок
func NewService(ruleRepo RuleRepository, txManager TransactionManager, logger Logger) *Service {
	return &Service{
		ruleRepo:  ruleRepo,
		txManager: txManager,
		logger:    logger,
	}
}

// CreateRule создает новое правило скидки
func (s *Service) CreateRule(ctx context.Context, req *models.CreateRuleRequest) (*models.RuleResponse, error) {
	s.logger.Info("CreateRule: from=%d, to=%d, percent=%.2f",
		req.BookingCountFrom, req.BookingCountTo, req.DiscountPercent)

	if err := validateRule(req); err != nil {
		s.logger.Warn("CreateRule: validation failed: %v", err)
		return nil, err
	}

	created, err := s.ruleRepo.Create(ctx, req.ToDomainRule())
	if err != nil {
		s.logger.Error("CreateRule: repository error: %v", err)
		return nil, fmt.Errorf("%w: CreateRule - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateRule: successfully created rule id=%d", created.ID)
	return models.FromDomainRule(created), nil
}

// DeleteRule удаляет правило скидки
func (s *Service) DeleteRule(ctx context.Context, id int64) error {
	s.logger.Info("DeleteRule: deleting rule id=%d", id)

	if err := s.ruleRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, ruleRepo.ErrRuleNotFound) {
			s.logger.Warn("DeleteRule: rule id=%d not found", id)
			return ErrRuleNotFound
		}
		s.logger.Error("DeleteRule: repository error for rule id=%d: %v", id, err)
		return fmt.Errorf("%w: DeleteRule - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("DeleteRule: successfully deleted rule id=%d", id)
	return nil
}

// ListRules возвращает все правила скидок, включая неактивные
func (s *Service) ListRules(ctx context.Context) (*models.RuleListResponse, error) {
	rules, err := s.ruleRepo.ListAll(ctx)
	if err != nil {
		s.logger.Error("ListRules: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListRules - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListRules: fetched %d rules", len(rules))
	return models.FromDomainRuleList(rules), nil
}

// GetStatus возвращает состояние глобального переключателя скидок
func (s *Service) GetStatus(ctx context.Context) (*models.StatusResponse, error) {
	enabled, err := s.ruleRepo.GetGlobalEnabled(ctx)
	if err != nil {
		s.logger.Error("GetStatus: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetStatus - repository error: %v", ErrInternal, err)
	}

	return &models.StatusResponse{Enabled: enabled}, nil
}

// Toggle переключает глобальный переключатель скидок и возвращает новое состояние
// Выключенный переключатель подавляет все тиры независимо от их is_active флагов
func (s *Service) Toggle(ctx context.Context, enable bool) (*models.StatusResponse, error) {
	s.logger.Info("Toggle: setting global discount switch to %v", enable)

	if err := s.ruleRepo.SetGlobalEnabled(ctx, enable); err != nil {
		s.logger.Error("Toggle: repository error: %v", err)
		return nil, fmt.Errorf("%w: Toggle - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Toggle: global discount switch is now %v", enable)
	return &models.StatusResponse{Enabled: enable}, nil
}

// ResetToDefaults атомарно заменяет всю таблицу правил дефолтным набором
//
// Очистка и засев выполняются одной транзакцией: читатели ListRules/ListActive
// никогда не видят пустую таблицу в середине сброса
func (s *Service) ResetToDefaults(ctx context.Context) (*models.RuleListResponse, error) {
	s.logger.Info("ResetToDefaults: replacing rule table with %d default tiers", len(domain.DefaultDiscountRules))

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		if err := s.ruleRepo.DeleteAll(txCtx); err != nil {
			return fmt.Errorf("%w: ResetToDefaults - delete all: %v", ErrInternal, err)
		}
		if err := s.ruleRepo.CreateMany(txCtx, domain.DefaultDiscountRules); err != nil {
			return fmt.Errorf("%w: ResetToDefaults - seed defaults: %v", ErrInternal, err)
		}
		return nil
	})

	if err != nil {
		s.logger.Error("ResetToDefaults: transaction failed: %v", err)
		return nil, err
	}

	rules, err := s.ruleRepo.ListAll(ctx)
	if err != nil {
		s.logger.Error("ResetToDefaults: failed to reload rules: %v", err)
		return nil, fmt.Errorf("%w: ResetToDefaults - reload rules: %v", ErrInternal, err)
	}

	s.logger.Info("ResetToDefaults: rule table now contains %d rules", len(rules))
	return models.FromDomainRuleList(rules), nil
}

// validateRule проверяет диапазон и процент правила
func validateRule(req *models.CreateRuleRequest) error {
	if req.BookingCountFrom < 0 || req.BookingCountTo < 0 {
		return fmt.Errorf("%w: booking counts must not be negative", ErrInvalidInput)
	}

	if req.BookingCountFrom > req.BookingCountTo {
		return ErrInvalidRange
	}

	if req.DiscountPercent <= 0 || req.DiscountPercent > domain.MaxDiscountPercent {
		return ErrInvalidPercent
	}

	if req.Label != nil && len(*req.Label) > domain.MaxLabelLength {
		return fmt.Errorf("%w: label is too long", ErrInvalidInput)
	}

	return nil
}
