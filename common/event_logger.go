package common

import (
	"go.uber.org/zap"
)

// LogEventBook writes one Debug entry per page of book. Payload fields are
// attached as structured fields; pages that fail to decode are logged with
// their raw size instead.
func LogEventBook(logger *zap.Logger, domain string, book *EventBook) {
	if logger == nil || book == nil {
		return
	}
	if !logger.Core().Enabled(zap.DebugLevel) {
		return
	}

	for _, page := range book.Pages {
		if page == nil {
			continue
		}
		fields := []zap.Field{
			zap.String("domain", domain),
			zap.Stringer("root", book.Root),
			zap.Uint32("sequence", page.Sequence),
			zap.String("event_type", page.EventType()),
		}
		if page.CreatedAt != nil {
			fields = append(fields, zap.Time("created_at", page.CreatedAt.AsTime()))
		}

		payload, err := UnpackEvent(page)
		if err != nil {
			fields = append(fields, zap.Int("raw_bytes", len(page.Event.GetValue())), zap.Error(err))
		} else {
			fields = append(fields, zap.Any("payload", payload.AsMap()))
		}
		logger.Debug("journal event", fields...)
	}
}
