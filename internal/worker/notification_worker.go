package worker

import (
	"github.com/laredo-ist/workorder-service/internal/events"
	"github.com/laredo-ist/workorder-service/internal/service"
)

// StartNotificationWorker wires notification handlers to the dispatcher.
func StartNotificationWorker(notifications *service.NotificationService, dispatcher events.Dispatcher) {
	if notifications == nil || dispatcher == nil {
		return
	}
	notifications.Register(dispatcher)
}
