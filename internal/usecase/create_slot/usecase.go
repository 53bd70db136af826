package create_slot

import (
	"context"
	"fmt"

	"github.com/AnshGupta06/Mindsettler-GWOC-26-sub001/internal/domain"
)

// UseCase use case публикации слота доступности
type UseCase struct {
	slotRepo  SlotRepository
	txManager TransactionManager
	logger    Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	slotRepo SlotRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		slotRepo:  slotRepo,
		txManager: txManager,
		logger:    logger,
	}
}

// Execute выполняет use case создания слота
//
// Проверка пересечений и вставка выполняются как единое целое в сериализуемой
// транзакции: без этого два конкурентных запроса на пересекающиеся интервалы
// могут оба пройти проверку и оба закоммититься, нарушив инвариант календаря
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateSlot: date=%s, start=%s, end=%s, mode=%s",
		req.Date.Format(domain.DateFormat), req.StartTime.Format("15:04"), req.EndTime.Format("15:04"), req.Mode)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateSlot: validation failed: %v", err)
		return nil, err
	}

	var result *domain.Slot

	// 2. Проверка пересечений + вставка в одной сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 2.1. Читаем весь текущий набор слотов с блокировкой (FOR UPDATE)
		existing, err := uc.slotRepo.List(txCtx)
		if err != nil {
			uc.logger.Error("CreateSlot: failed to list slots: %v", err)
			return fmt.Errorf("%w: failed to list slots: %v", ErrInternal, err)
		}

		// 2.2. Проверяем кандидата против всех слотов
		// Режим (online/offline) не участвует в проверке: календарь один
		if domain.HasConflict(req.StartTime, req.EndTime, existing) {
			uc.logger.Warn("CreateSlot: conflict with existing slot, start=%s, end=%s",
				req.StartTime.Format("15:04"), req.EndTime.Format("15:04"))
			return ErrSlotConflict
		}

		// 2.3. Создаем слот
		slot := &domain.Slot{
			Date:      req.Date,
			StartTime: req.StartTime,
			EndTime:   req.EndTime,
			Mode:      req.Mode,
			IsBooked:  false,
		}

		created, err := uc.slotRepo.Create(txCtx, slot)
		if err != nil {
			uc.logger.Error("CreateSlot: failed to create slot: %v", err)
			return fmt.Errorf("%w: failed to create slot: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateSlot: successfully created slot id=%d", result.ID)

	return &Response{
		ID:        result.ID,
		Date:      result.Date,
		StartTime: result.StartTime,
		EndTime:   result.EndTime,
		Mode:      result.Mode,
		IsBooked:  result.IsBooked,
		CreatedAt: result.CreatedAt,
		UpdatedAt: result.UpdatedAt,
	}, nil
}
