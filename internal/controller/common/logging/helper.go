package logginghelper

import (
	"github.com/Egor213/CodeActivity/internal/domain"
	log "github.com/sirupsen/logrus"
)

func LogServed(logger log.FieldLogger, activity []domain.DayActivity) {
	fields := log.Fields{"active_days": len(activity)}
	if len(activity) > 0 {
		fields["first"] = activity[0].Date
		fields["last"] = activity[len(activity)-1].Date
	}
	logger.WithFields(fields).Info("Activity served")
}

func LogError(logger log.FieldLogger, err error) {
	logger.WithFields(log.Fields{
		"error": err,
	}).Error("Failed to get activity")
}

func LogPanic(logger log.FieldLogger, recovered any) {
	logger.WithFields(log.Fields{
		"panic": recovered,
	}).Error("Recovered from panic while getting activity")
}
