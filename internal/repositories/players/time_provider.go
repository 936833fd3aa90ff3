package players

import "time"

//go:generate mockgen -destination=mock/mock_time_provider.go -package=mockplayers -source=time_provider.go

type TimeProvider interface {
	Now() time.Time
}

// RealTimeProvider reads the wall clock
type RealTimeProvider struct{}

func (RealTimeProvider) Now() time.Time {
	return time.Now().UTC()
}
