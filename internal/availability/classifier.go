package availability

import (
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// Classifier определяет доступность отдельного слота
type Classifier struct {
	Date            time.Time // целевая дата в часовом поясе организации
	ServiceDuration int
	Break           *DayWindow // nil = без перерыва
	MinAdvance      time.Duration
	Now             time.Time
	Busy            []domain.BusyInterval // отсортированы по началу
}

// InBreak проверяет попадание начала слота в перерыв
// Проверяется только минута начала, а не весь интервал слота
func (c *Classifier) InBreak(start int) bool {
	if c.Break == nil {
		return false
	}
	return start >= c.Break.OpenMinutes && start < c.Break.CloseMinutes
}

// TooSoon проверяет, что до начала слота осталось меньше MinAdvance
func (c *Classifier) TooSoon(start int) bool {
	y, m, d := c.Date.Date()
	slotAt := time.Date(y, m, d, start/60, start%60, 0, 0, c.Date.Location())
	return slotAt.Sub(c.Now) < c.MinAdvance
}

// Overlaps проверяет пересечение [start, start+duration) с занятыми интервалами
func (c *Classifier) Overlaps(start int) bool {
	end := start + c.ServiceDuration
	for _, interval := range c.Busy {
		// Интервалы отсортированы: дальше начинаются только более поздние
		if interval.StartMinutes >= end {
			break
		}
		if interval.Overlaps(start, end) {
			return true
		}
	}
	return false
}

// IsAvailable слот доступен, если не выполняется ни одно из условий
func (c *Classifier) IsAvailable(start int) bool {
	return !c.InBreak(start) && !c.TooSoon(start) && !c.Overlaps(start)
}
