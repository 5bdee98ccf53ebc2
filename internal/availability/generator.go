package availability

// GenerateCandidates возвращает минуты начала слотов: от открытия с шагом slotDuration,
// пока слот длительностью serviceDuration помещается до закрытия
func GenerateCandidates(window DayWindow, slotDuration, serviceDuration int) []int {
	candidates := make([]int, 0)
	if slotDuration <= 0 || serviceDuration <= 0 {
		return candidates
	}

	for start := window.OpenMinutes; start+serviceDuration <= window.CloseMinutes; start += slotDuration {
		candidates = append(candidates, start)
	}

	return candidates
}
