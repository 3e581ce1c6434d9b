package services

import (
	"bytes"
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"github.com/iota-uz/commerce-admin/modules/menus/domain/menu"
	"github.com/iota-uz/commerce-admin/pkg/eventbus"
)

func TestRegisterActionLog(t *testing.T) {
	quiet := logrus.New()
	quiet.SetOutput(io.Discard)
	bus := eventbus.NewEventPublisher(quiet)

	var buf bytes.Buffer
	logger := logrus.New()
	logger.SetOutput(&buf)
	logger.SetFormatter(&logrus.JSONFormatter{})
	RegisterActionLog(bus, logger)

	bus.Publish(&menu.UpdatedEvent{MenuID: "m1"})
	bus.Publish(&menu.DeletedEvent{MenuID: "m2"})
	bus.Publish(&menu.UpdatedEvent{MenuID: "m3", Rejected: 2})

	out := buf.String()
	require.Contains(t, out, `"menu-id":"m1"`)
	require.Contains(t, out, `"msg":"menu updated"`)
	require.Contains(t, out, `"menu-id":"m2"`)
	require.Contains(t, out, `"msg":"menu deleted"`)
	require.Contains(t, out, `"msg":"menu partly updated"`)
	require.Contains(t, out, `"rejected":2`)
}
