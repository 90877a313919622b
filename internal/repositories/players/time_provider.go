package players

import "time"

//go:generate mockgen -destination=mocks/mock_time_provider.go -package=mocks -source=time_provider.go

type TimeProvider interface {
	Now() time.Time
}

type utcTimeProvider struct{}

func (utcTimeProvider) Now() time.Time {
	return time.Now().UTC()
}

// NewTimeProvider returns a TimeProvider backed by the wall clock in UTC
func NewTimeProvider() TimeProvider {
	return utcTimeProvider{}
}
