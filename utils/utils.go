package utils

import (
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
)

// PanicIfError logs and panics when err is set.
func PanicIfError(msg string, err error) {
	if err != nil {
		log.Errorf("%s%v", msg, err)
		panic(fmt.Sprintf("%s%v", msg, err))
	}
}

// Timing logs the seconds elapsed since start using a format with one %f verb.
func Timing(start time.Time, format string) float64 {
	elapsed := time.Since(start).Seconds()
	log.Debugf(format, elapsed)
	return elapsed
}
