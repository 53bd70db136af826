package slots

import (
	"context"
	"errors"
	"fmt"

	slotRepo "github.com/AnshGupta06/Mindsettler-GWOC-26-sub001/internal/infra/storage/slot"
	"github.com/AnshGupta06/Mindsettler-GWOC-26-sub001/internal/service/slots/models"
)

// Service сервис жизненного цикла слотов: просмотр, удаление, бронирование
// Создание слотов живет в отдельном usecase из-за транзакционной проверки пересечений
type Service struct {
	slotRepo SlotRepository
	logger   Logger
}

// NewService создает новый экземпляр сервиса слотов
func NewService(slotRepo SlotRepository, logger Logger) *Service {
	return &Service{
		slotRepo: slotRepo,
		logger:   logger,
	}
}

// List возвращает все слоты календаря
func (s *Service) List(ctx context.Context) (*models.SlotListResponse, error) {
	slots, err := s.slotRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d slots", len(slots))
	return models.FromDomainSlotList(slots), nil
}

// Delete удаляет слот
// Забронированные слоты неизменяемы через этот интерфейс - отмена сессии
// относится к booking flow
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.logger.Info("Delete: deleting slot id=%d", id)

	if err := s.slotRepo.Delete(ctx, id); err != nil {
		switch {
		case errors.Is(err, slotRepo.ErrSlotNotFound):
			s.logger.Warn("Delete: slot id=%d not found", id)
			return ErrSlotNotFound
		case errors.Is(err, slotRepo.ErrSlotBooked):
			s.logger.Warn("Delete: slot id=%d is booked, refusing to delete", id)
			return ErrSlotBooked
		default:
			s.logger.Error("Delete: repository error for slot id=%d: %v", id, err)
			return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
		}
	}

	s.logger.Info("Delete: successfully deleted slot id=%d", id)
	return nil
}

// MarkBooked переводит слот из свободного в забронированный
// Единственный путь мутации is_booked; переход выполняется ровно один раз,
// проигравший конкурентный вызов получает ErrSlotAlreadyBooked
func (s *Service) MarkBooked(ctx context.Context, id int64) (*models.SlotResponse, error) {
	s.logger.Info("MarkBooked: booking slot id=%d", id)

	if err := s.slotRepo.MarkBooked(ctx, id); err != nil {
		switch {
		case errors.Is(err, slotRepo.ErrSlotNotFound):
			s.logger.Warn("MarkBooked: slot id=%d not found", id)
			return nil, ErrSlotNotFound
		case errors.Is(err, slotRepo.ErrSlotAlreadyBooked):
			s.logger.Warn("MarkBooked: slot id=%d is already booked", id)
			return nil, ErrSlotAlreadyBooked
		default:
			s.logger.Error("MarkBooked: repository error for slot id=%d: %v", id, err)
			return nil, fmt.Errorf("%w: MarkBooked - repository error: %v", ErrInternal, err)
		}
	}

	slot, err := s.slotRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("MarkBooked: failed to reload slot id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: MarkBooked - failed to reload slot: %v", ErrInternal, err)
	}

	s.logger.Info("MarkBooked: successfully booked slot id=%d", id)
	return models.FromDomainSlot(slot), nil
}
