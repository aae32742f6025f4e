package waybill

import (
	"context"
	"errors"
	"fmt"
	"time"

	"shipment/internal/entities"
)

// сколько раз перечитываем пул, если конкурент увел накладные между select и reserve
const defaultReserveAttempts = 3

type Config struct {
	MinStock        int
	BatchSize       int
	ReservationTTL  time.Duration
	ReserveAttempts int
}

type Service struct {
	repository Repository
	gateway    CarrierGateway
	cfg        Config
	now        func() time.Time
}

func New(repository Repository, gateway CarrierGateway, cfg Config) *Service {
	if cfg.ReserveAttempts <= 0 {
		cfg.ReserveAttempts = defaultReserveAttempts
	}

	return &Service{
		repository: repository,
		gateway:    gateway,
		cfg:        cfg,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// GetAvailable нехватка в пуле не ошибка, вызывающий сам решает, что делать с остатком.
func (s *Service) GetAvailable(ctx context.Context, count int, source *entities.WaybillSourceType) ([]entities.Waybill, error) {
	if !isValidCount(count) {
		return nil, ErrInvalidCount
	}
	if source != nil && !source.IsValid() {
		return nil, ErrInvalidSource
	}

	waybills, err := s.repository.GetAvailable(ctx, count, entities.WaybillFilter{Source: source})
	if err != nil {
		return nil, fmt.Errorf("get available waybills: %w", err)
	}
	return waybills, nil
}

func (s *Service) Reserve(ctx context.Context, codes []string, reservedBy string) (int64, error) {
	if !isValidCodes(codes) {
		return 0, ErrInvalidCode
	}
	if !isValidActor(reservedBy) {
		return 0, ErrInvalidActor
	}

	reserved, err := s.repository.Reserve(ctx, codes, reservedBy)
	if err != nil {
		return 0, fmt.Errorf("reserve waybills: %w", err)
	}
	return int64(len(reserved)), nil
}

// Use повторный вызов по уже used/cancelled накладной это no-op.
func (s *Service) Use(ctx context.Context, code, orderID, shipmentID string) error {
	if !isValidCode(code) {
		return ErrInvalidCode
	}
	if orderID == "" || shipmentID == "" {
		return ErrMissingOwner
	}

	if _, err := s.repository.Use(ctx, code, orderID, shipmentID); err != nil {
		return fmt.Errorf("use waybill: %w", err)
	}
	return nil
}

func (s *Service) Cancel(ctx context.Context, code string) error {
	if !isValidCode(code) {
		return ErrInvalidCode
	}

	if _, err := s.repository.Cancel(ctx, code); err != nil {
		return fmt.Errorf("cancel waybill: %w", err)
	}
	return nil
}

func (s *Service) Release(ctx context.Context, codes []string, reservedBy string) (int64, error) {
	if !isValidCodes(codes) {
		return 0, ErrInvalidCode
	}
	if !isValidActor(reservedBy) {
		return 0, ErrInvalidActor
	}

	released, err := s.repository.Release(ctx, codes, reservedBy)
	if err != nil {
		return 0, fmt.Errorf("release waybills: %w", err)
	}
	return released, nil
}

func (s *Service) Add(ctx context.Context, waybills []entities.Waybill) (int64, error) {
	for _, w := range waybills {
		if !isValidCode(w.Code) {
			return 0, ErrInvalidCode
		}
		if !w.Source.IsValid() {
			return 0, ErrInvalidSource
		}
	}

	added, err := s.repository.Add(ctx, waybills)
	if err != nil {
		return 0, fmt.Errorf("add waybills: %w", err)
	}
	return added, nil
}

// Acquire резервирует count накладных: сначала из пула, недостачу добирает
// одним запросом к перевозчику ровно на размер недостачи.
func (s *Service) Acquire(ctx context.Context, count int, reservedBy string) ([]entities.Waybill, error) {
	if !isValidCount(count) {
		return nil, ErrInvalidCount
	}
	if !isValidActor(reservedBy) {
		return nil, ErrInvalidActor
	}

	acquired, err := s.reserveFromPool(ctx, count, reservedBy)
	if err != nil {
		return nil, err
	}

	shortfall := count - len(acquired)
	if shortfall == 0 {
		return acquired, nil
	}

	fetched, err := s.fetch(ctx, shortfall)
	if err != nil {
		return nil, s.releaseOnError(ctx, acquired, reservedBy, fmt.Errorf("fetch waybills: %w", err))
	}

	if _, err := s.repository.Add(ctx, fetched); err != nil {
		return nil, s.releaseOnError(ctx, acquired, reservedBy, fmt.Errorf("add fetched waybills: %w", err))
	}

	reservedCodes, err := s.repository.Reserve(ctx, codesOf(fetched), reservedBy)
	if err != nil {
		return nil, s.releaseOnError(ctx, acquired, reservedBy, fmt.Errorf("reserve fetched waybills: %w", err))
	}
	acquired = append(acquired, pick(fetched, reservedCodes)...)

	if len(acquired) < count {
		return nil, s.releaseOnError(ctx, acquired, reservedBy, ErrPoolExhausted)
	}
	return acquired, nil
}

// Replenish best-effort: гонки между несколькими воркерами могут пере- или недолить пул.
func (s *Service) Replenish(ctx context.Context) (int64, error) {
	if s.cfg.MinStock <= 0 || s.cfg.BatchSize <= 0 {
		return 0, nil
	}

	stats, err := s.repository.CountByStatus(ctx)
	if err != nil {
		return 0, fmt.Errorf("count waybills: %w", err)
	}

	configured := s.gateway.IsConfigured()

	// запас считаем только по тем номерам, которые Acquire сможет выдать
	usable := stats.GeneratedDemo
	if configured {
		usable = stats.Generated - stats.GeneratedDemo
	}

	deficit := int64(s.cfg.MinStock) - usable
	var added int64
	for deficit > 0 {
		batch := min(int64(s.cfg.BatchSize), deficit)

		waybills, err := s.gateway.GenerateWaybills(ctx, int(batch))
		if err != nil {
			return added, fmt.Errorf("generate waybills: %w", err)
		}
		if configured {
			// перевозчик недоступен и шлюз отдал demo: в пул их не кладем
			waybills = withoutDemo(waybills)
			if len(waybills) == 0 {
				return added, ErrCarrierNoStock
			}
		}
		if len(waybills) == 0 {
			break
		}

		n, err := s.repository.Add(ctx, waybills)
		if err != nil {
			return added, fmt.Errorf("add waybills: %w", err)
		}

		added += n
		deficit -= int64(len(waybills))
	}

	return added, nil
}

func (s *Service) ExpireReservations(ctx context.Context) (int64, error) {
	if s.cfg.ReservationTTL <= 0 {
		return 0, nil
	}

	expired, err := s.repository.ExpireReservations(ctx, s.now().Add(-s.cfg.ReservationTTL))
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return 0, fmt.Errorf("expire reservations timed out: %w", err)
		}
		return 0, fmt.Errorf("expire reservations: %w", err)
	}
	return expired, nil
}

func (s *Service) Stats(ctx context.Context) (*entities.WaybillPoolStats, error) {
	stats, err := s.repository.CountByStatus(ctx)
	if err != nil {
		return nil, fmt.Errorf("waybill stats: %w", err)
	}
	return stats, nil
}

// Generate накладные для ручного запроса: bulk/single идут к перевозчику
// и складываются в пул, pool только показывает свободные без резерва.
func (s *Service) Generate(ctx context.Context, count int, mode entities.WaybillFetchMode) ([]entities.Waybill, error) {
	if !isValidCount(count) {
		return nil, ErrInvalidCount
	}

	var (
		waybills []entities.Waybill
		err      error
	)
	switch mode {
	case entities.WaybillFetchPool:
		return s.GetAvailable(ctx, count, nil)
	case entities.WaybillFetchSingle:
		if count != 1 {
			return nil, ErrInvalidCount
		}
		waybills, err = s.fetch(ctx, 1)
	case entities.WaybillFetchBulk:
		waybills, err = s.gateway.GenerateWaybills(ctx, count)
	default:
		return nil, ErrInvalidFetchMode
	}
	if err != nil {
		return nil, fmt.Errorf("generate waybills: %w", err)
	}

	if _, err := s.repository.Add(ctx, waybills); err != nil {
		return nil, fmt.Errorf("add waybills: %w", err)
	}
	return waybills, nil
}

func (s *Service) reserveFromPool(ctx context.Context, count int, reservedBy string) ([]entities.Waybill, error) {
	acquired := make([]entities.Waybill, 0, count)

	// с токеном demo-номера из пула не выдаем, перевозчик их отклонит;
	// без токена наоборот, номера перевозчика все равно не оформить
	demo := !s.gateway.IsConfigured()
	filter := entities.WaybillFilter{Demo: &demo}

	for attempt := 0; attempt < s.cfg.ReserveAttempts && len(acquired) < count; attempt++ {
		need := count - len(acquired)

		available, err := s.repository.GetAvailable(ctx, need, filter)
		if err != nil {
			return nil, s.releaseOnError(ctx, acquired, reservedBy, fmt.Errorf("get available waybills: %w", err))
		}
		if len(available) == 0 {
			break
		}

		reservedCodes, err := s.repository.Reserve(ctx, codesOf(available), reservedBy)
		if err != nil {
			return nil, s.releaseOnError(ctx, acquired, reservedBy, fmt.Errorf("reserve waybills: %w", err))
		}
		acquired = append(acquired, pick(available, reservedCodes)...)

		// пул отдал меньше нужного и гонки не было: перечитывать нечего
		if len(available) < need && len(reservedCodes) == len(available) {
			break
		}
	}

	return acquired, nil
}

// fetch одна накладная через single-эндпоинт, больше через bulk.
func (s *Service) fetch(ctx context.Context, count int) ([]entities.Waybill, error) {
	if count == 1 {
		w, err := s.gateway.FetchSingleWaybill(ctx)
		if err != nil {
			return nil, err
		}
		return []entities.Waybill{*w}, nil
	}
	return s.gateway.GenerateWaybills(ctx, count)
}

func (s *Service) releaseOnError(ctx context.Context, acquired []entities.Waybill, reservedBy string, cause error) error {
	if len(acquired) == 0 {
		return cause
	}

	if _, err := s.repository.Release(context.WithoutCancel(ctx), codesOf(acquired), reservedBy); err != nil {
		return errors.Join(cause, fmt.Errorf("release waybills: %w", err))
	}
	return cause
}

func codesOf(waybills []entities.Waybill) []string {
	codes := make([]string, len(waybills))
	for i, w := range waybills {
		codes[i] = w.Code
	}
	return codes
}

func withoutDemo(waybills []entities.Waybill) []entities.Waybill {
	issued := make([]entities.Waybill, 0, len(waybills))
	for _, w := range waybills {
		if !w.IsDemo() {
			issued = append(issued, w)
		}
	}
	return issued
}

func pick(waybills []entities.Waybill, codes []string) []entities.Waybill {
	set := make(map[string]struct{}, len(codes))
	for _, c := range codes {
		set[c] = struct{}{}
	}

	picked := make([]entities.Waybill, 0, len(codes))
	for _, w := range waybills {
		if _, ok := set[w.Code]; ok {
			w.Status = entities.WaybillReserved
			picked = append(picked, w)
		}
	}
	return picked
}
