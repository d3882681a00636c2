package validator

import "time"

const (
	defaultWorkerCount = 8

	heightBatchLimit uint64 = 100

	resultFlushThreshold = 5000
	resultFlushInterval  = 1 * time.Second
	resultWriteRate      = 20

	sleepDuration     = 5 * time.Second
	longSleepDuration = 30 * time.Second
)
