package application

import (
	"time"

	"github.com/jamaicaconnect/starlink-tracker/internal/pkg/infrastructure/logging"
	"github.com/jamaicaconnect/starlink-tracker/internal/pkg/infrastructure/repositories/models"
)

//deviceLifecycleEvent is published on the message queue after a successful mutation
type deviceLifecycleEvent struct {
	Action    string    `json:"action"`
	DeviceID  string    `json:"deviceId"`
	Parish    string    `json:"parish"`
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

//ContentType returns the content type of the message payload
func (e *deviceLifecycleEvent) ContentType() string {
	return "application/json"
}

//TopicName returns the topic that lifecycle events are published on
func (e *deviceLifecycleEvent) TopicName() string {
	return "device.lifecycle"
}

//publishDeviceLifecycleEvent notifies downstream consumers about a mutation.
//Publish failures are logged and never fail the request that caused them.
func publishDeviceLifecycleEvent(log logging.Logger, messenger MessagingContext, action string, device *models.Device) {
	if messenger == nil {
		return
	}

	event := &deviceLifecycleEvent{
		Action:    action,
		DeviceID:  device.DeviceID,
		Parish:    device.Parish,
		Status:    string(device.Status),
		Timestamp: time.Now().UTC(),
	}

	if err := messenger.PublishOnTopic(event); err != nil {
		log.Warnf("Failed to publish %s event for device %s: %s", action, device.DeviceID, err.Error())
	}
}
