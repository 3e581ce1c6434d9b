package services

import (
	"github.com/sirupsen/logrus"

	"github.com/iota-uz/commerce-admin/modules/menus/domain/menu"
	"github.com/iota-uz/commerce-admin/pkg/eventbus"
)

// RegisterActionLog records every menu mutation that reached the API.
func RegisterActionLog(bus eventbus.EventBus, logger *logrus.Logger) {
	log := logger.WithField("component", "menus")
	bus.Subscribe(func(e *menu.UpdatedEvent) {
		entry := log.WithField("menu-id", e.MenuID)
		if e.Rejected > 0 {
			entry.WithField("rejected", e.Rejected).Warn("menu partly updated")
			return
		}
		entry.Info("menu updated")
	})
	bus.Subscribe(func(e *menu.DeletedEvent) {
		log.WithField("menu-id", e.MenuID).Info("menu deleted")
	})
}
