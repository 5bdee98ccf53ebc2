package availability

import (
	"fmt"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

// assembleSlots формирует ответ в порядке генерации, недоступные слоты не отбрасываются
func assembleSlots(candidates []int, classifier *Classifier) ([]domain.Slot, error) {
	slots := make([]domain.Slot, 0, len(candidates))
	for _, start := range candidates {
		ts, err := types.NewTimeStringFromMinutes(start)
		if err != nil {
			return nil, fmt.Errorf("%w: slot start %d: %v", ErrInvalidInput, start, err)
		}
		slots = append(slots, domain.Slot{
			Time:      ts,
			Available: classifier.IsAvailable(start),
		})
	}
	return slots, nil
}
