package config

const (
	// DefaultTimeoutMS is the default per-subprocess timeout in milliseconds
	DefaultTimeoutMS = 1000
	// DefaultReportFile is the default campaign report file name
	DefaultReportFile = "last-campaign.json"
	// DefaultReportDir is the default report directory
	DefaultReportDir = "storage"
	// DefaultMaxStdinLen is the default stdin length cap for the random generator
	DefaultMaxStdinLen = 64
	// DefaultMaxArgs is the default argument count cap for the random generator
	DefaultMaxArgs = 4
)
