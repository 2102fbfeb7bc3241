package booking

import (
	"context"
	"errors"
	"fmt"

	"fastfare/internal/entities"
)

// Service принимает события жизненного цикла бронирования из Kafka
// и диспетчеризует их в shipment-сервис через фабрику обработчиков.
type Service struct {
	kindFactory HandlerFactory
}

func New(kindFactory HandlerFactory) *Service {
	return &Service{
		kindFactory: kindFactory,
	}
}

func (s *Service) ProcessBookingEvent(ctx context.Context, event entities.BookingEvent) error {
	executeFn, err := s.kindFactory.GetHandler(event.Kind)
	if err != nil {
		// неизвестные виды событий просто пропускаем
		if errors.Is(err, ErrUndefinedEventKind) {
			return nil
		}
		return err
	}

	if err := executeFn(ctx, event); err != nil {
		return fmt.Errorf("handle %s event: %w", event.Kind, err)
	}

	return nil
}
