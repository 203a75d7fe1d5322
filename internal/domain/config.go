package domain

import "time"

// SimulatorConfig параметры симуляции бронирований и контактной формы
type SimulatorConfig struct {
	Delay       time.Duration // искусственная задержка каждого вызова
	FailureRate float64       // вероятность инжектированного отказа при бронировании, [0, 1]
	WriteBack   bool          // увеличивать Booked после успешного бронирования
}

// DefaultSimulatorConfig returns the configuration of the demo backend
func DefaultSimulatorConfig() SimulatorConfig {
	return SimulatorConfig{
		Delay:       DefaultArtificialDelay,
		FailureRate: DefaultFailureRate,
		WriteBack:   false,
	}
}

// InjectsFailures returns true if random booking failures are enabled
func (c SimulatorConfig) InjectsFailures() bool {
	return c.FailureRate > 0
}
