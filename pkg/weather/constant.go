package weather

import "time"

const (
	// DefaultBaseURL is the tsukumijima weather forecast API endpoint
	DefaultBaseURL = "https://weather.tsukumijima.net/api"

	// DefaultTimeout is the default HTTP client timeout
	DefaultTimeout = 15 * time.Second
)
