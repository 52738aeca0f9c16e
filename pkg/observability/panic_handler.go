package observability

import (
	"runtime/debug"

	"github.com/sirupsen/logrus"
)

// RecoverPanic recovers from a panic and logs it at Warn level. It must be
// called directly in a defer statement:
//
//	defer observability.RecoverPanic(log, "generated file lookup")
//
// The panic is not re-raised; the surrounding function returns whatever its
// named results held when the panic happened.
func RecoverPanic(log logrus.FieldLogger, operation string) {
	if r := recover(); r != nil {
		if log == nil {
			log = logrus.StandardLogger()
		}
		log.WithFields(logrus.Fields{
			"panic":     r,
			"operation": operation,
			"stack":     string(debug.Stack()),
		}).Warn("panic recovered")
	}
}
