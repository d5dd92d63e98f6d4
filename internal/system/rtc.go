// internal/system/rtc.go
package system

import "time"

// RTC is a monotonic clock counting seconds since it was created.
type RTC struct {
	start time.Time
}

func NewRTC() *RTC {
	return &RTC{start: time.Now()}
}

func (r *RTC) Now() float64 {
	return time.Since(r.start).Seconds()
}
