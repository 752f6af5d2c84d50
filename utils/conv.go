package utils

import "time"

func DurationS(seconds float64) time.Duration {
	return time.Duration(seconds * float64(time.Second))
}

func KiB(n float64) int64 {
	return int64(n * 1024)
}

func MiB(n float64) int64 {
	return int64(n * 1024 * 1024)
}
