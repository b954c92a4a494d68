// README: Calculation request validation limits and advisory checks.
package tax

import (
	"time"

	"go.uber.org/zap"

	"tollgate/internal/types"
)

const (
	maxPassagesPerRequest = 100
	maxDaysSpan           = 7
)

func (s *Service) validatePassages(passageTimes []time.Time) error {
	if len(passageTimes) == 0 {
		return ErrNoPassages
	}
	if len(passageTimes) > maxPassagesPerRequest {
		return ErrTooManyPassages
	}

	earliest, latest := passageTimes[0], passageTimes[0]
	for _, t := range passageTimes[1:] {
		if t.Before(earliest) {
			earliest = t
		}
		if t.After(latest) {
			latest = t
		}
	}
	span := int(types.DateOf(latest).Time().Sub(types.DateOf(earliest).Time()).Hours() / 24)
	if span > maxDaysSpan {
		return ErrDateSpanTooWide
	}

	s.warnAdvisory(passageTimes)
	return nil
}

// warnAdvisory flags unusual but accepted requests: far-future passages and
// years missing from the holiday tables. Neither rejects the request.
func (s *Service) warnAdvisory(passageTimes []time.Time) {
	maxFuture := time.Now().AddDate(1, 0, 0)
	for _, t := range passageTimes {
		if t.After(maxFuture) {
			s.log.Warn("request contains passage times more than 1 year in the future")
			break
		}
	}
	holidays := s.calc.Rules().Holidays
	for _, t := range passageTimes {
		if _, ok := holidays[t.Year()]; !ok {
			s.log.Warn("request contains years outside the holiday tables; holiday exemptions will not apply",
				zap.Int("year", t.Year()))
			break
		}
	}
}
