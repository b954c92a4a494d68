// README: Tax service: request orchestration, day grouping, cache and audit.
package tax

import (
	"context"
	"errors"
	"sort"
	"time"

	"go.uber.org/zap"

	"tollgate/internal/modules/vehicle"
	"tollgate/internal/types"
)

var (
	ErrUnknownVehicleType = errors.New("unsupported vehicle type")
	ErrNoPassages         = errors.New("at least one passage time is required")
	ErrTooManyPassages    = errors.New("too many passage times")
	ErrDateSpanTooWide    = errors.New("passage times span too many days")
)

type Service struct {
	calc  *Calculator
	store *Store
	cache *Cache
	log   *zap.Logger
}

// NewService wires the calculator with its optional collaborators. Store and
// cache may be nil; the service then computes without auditing or caching.
func NewService(calc *Calculator, store *Store, cache *Cache, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{calc: calc, store: store, cache: cache, log: log}
}

type CalculateCommand struct {
	VehicleType  string
	PassageTimes []time.Time
}

// Calculate resolves the vehicle category, validates the request, and
// produces the multi-day result. Cache reads/writes and the audit insert are
// best-effort: their failures are logged and never surfaced to the caller.
func (s *Service) Calculate(ctx context.Context, cmd CalculateCommand) (*Result, error) {
	category, err := vehicle.Resolve(cmd.VehicleType)
	if err != nil {
		return nil, ErrUnknownVehicleType
	}
	if err := s.validatePassages(cmd.PassageTimes); err != nil {
		return nil, err
	}

	key := CacheKey(cmd.VehicleType, cmd.PassageTimes)
	if s.cache != nil {
		res, ok, err := s.cache.Get(ctx, key)
		if err != nil {
			s.log.Warn("result cache read failed", zap.Error(err))
		} else if ok {
			s.log.Debug("result cache hit", zap.String("vehicle_type", cmd.VehicleType))
			return res, nil
		}
	}

	res := s.calculate(cmd.VehicleType, category, cmd.PassageTimes)

	if s.cache != nil {
		if err := s.cache.Set(ctx, key, res); err != nil {
			s.log.Warn("result cache write failed", zap.Error(err))
		}
	}
	if s.store != nil {
		rec := &CalculationRecord{
			VehicleType:     res.VehicleType,
			PassageCount:    len(res.PassageDetails),
			TotalTax:        res.TotalTax,
			TollFreeVehicle: res.TollFreeVehicle,
			CalculatedAt:    time.Now(),
		}
		if err := s.store.RecordCalculation(ctx, rec); err != nil {
			s.log.Warn("audit record failed", zap.Error(err))
		}
	}

	s.log.Debug("tax calculation completed",
		zap.String("vehicle_type", cmd.VehicleType),
		zap.Int("passages", len(cmd.PassageTimes)),
		zap.Int("total_tax", res.TotalTax))
	return res, nil
}

func (s *Service) calculate(vehicleType string, category vehicle.Category, passageTimes []time.Time) *Result {
	byDay := make(map[types.Date][]time.Time)
	for _, t := range passageTimes {
		d := types.DateOf(t)
		byDay[d] = append(byDay[d], t)
	}
	days := make([]types.Date, 0, len(byDay))
	for d := range byDay {
		days = append(days, d)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })

	tollFreeVehicle := category.TollFree()
	res := &Result{
		VehicleType:     vehicleType,
		TollFreeVehicle: tollFreeVehicle,
		DailySummaries:  make([]DailySummary, 0, len(days)),
		PassageDetails:  make([]PassageDetail, 0, len(passageTimes)),
	}

	for _, day := range days {
		passages := byDay[day]
		sort.Slice(passages, func(i, j int) bool { return passages[i].Before(passages[j]) })

		dailyTax := s.calc.DayTax(category, passages)

		for _, p := range passages {
			fee := s.calc.TollFee(p, category)
			tollFreeDay := s.calc.Rules().IsTollFreeDate(p)
			res.PassageDetails = append(res.PassageDetails, PassageDetail{
				PassageTime:     p,
				IndividualFee:   fee,
				EffectiveFee:    fee,
				TollFreeDay:     tollFreeDay,
				IncludedInTotal: fee > 0,
				Reason:          passageReason(vehicleType, fee, tollFreeDay, tollFreeVehicle),
			})
		}

		// Reporting heuristic: a regular day whose passages all came out to
		// zero is flagged like a toll-free day.
		tollFreeDay := dailyTax == 0 && !tollFreeVehicle && len(passages) > 0
		res.DailySummaries = append(res.DailySummaries, DailySummary{
			Date:         day,
			DailyTax:     dailyTax,
			PassageCount: len(passages),
			TollFreeDay:  tollFreeDay,
			Reason:       dayReason(tollFreeVehicle, tollFreeDay),
		})
		res.TotalTax += dailyTax

		s.log.Debug("daily tax computed",
			zap.String("date", day.String()),
			zap.Int("passages", len(passages)),
			zap.Int("daily_tax", dailyTax))
	}
	return res
}

// ScheduleInfo is the published toll schedule, served by the schedule
// endpoint.
type ScheduleInfo struct {
	MaxDailyTax                 int            `json:"maxDailyTax"`
	SingleChargeIntervalMinutes int            `json:"singleChargeIntervalMinutes"`
	TollFreeMonths              []int          `json:"tollFreeMonths"`
	TollFreeVehicleTypes        []string       `json:"tollFreeVehicleTypes"`
	TimeSlots                   []TimeSlotInfo `json:"timeSlots"`
}

type TimeSlotInfo struct {
	Window string `json:"window"`
	Fee    int    `json:"fee"`
}

func (s *Service) Schedule() ScheduleInfo {
	rules := s.calc.Rules()
	info := ScheduleInfo{
		MaxDailyTax:                 rules.MaxDailyTax,
		SingleChargeIntervalMinutes: rules.SingleChargeWindowMins,
	}
	for _, m := range rules.TollFreeMonths {
		info.TollFreeMonths = append(info.TollFreeMonths, int(m))
	}
	for _, v := range vehicle.Types {
		if c, err := vehicle.Resolve(v); err == nil && c.TollFree() {
			info.TollFreeVehicleTypes = append(info.TollFreeVehicleTypes, v)
		}
	}
	for _, slot := range rules.Slots {
		info.TimeSlots = append(info.TimeSlots, TimeSlotInfo{Window: slot.Window(), Fee: slot.Fee})
	}
	return info
}

func (s *Service) VehicleTypes() []string {
	return vehicle.Types
}

// RunRetentionSweeper periodically prunes audit records older than the
// retention period. Returns when ctx is cancelled or when no store is wired.
func (s *Service) RunRetentionSweeper(ctx context.Context, interval, retention time.Duration) {
	if s.store == nil {
		return
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			n, err := s.store.PruneOlderThan(ctx, time.Now().Add(-retention))
			if err != nil {
				s.log.Warn("audit prune failed", zap.Error(err))
				continue
			}
			if n > 0 {
				s.log.Info("pruned audit records", zap.Int64("count", n))
			}
		}
	}
}
