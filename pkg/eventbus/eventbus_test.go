package eventbus

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"github.com/iota-uz/commerce-admin/pkg/logging"
)

type menuSaved struct {
	id string
}

type pageTypeSearched struct {
	query string
}

func bufferedLogger(level logrus.Level) (*logrus.Logger, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	log := logrus.New()
	log.SetOutput(buf)
	log.SetLevel(level)
	return log, buf
}

func TestPublisher_Publish(t *testing.T) {
	t.Parallel()

	t.Run("delivers to matching handler", func(t *testing.T) {
		publisher := NewEventPublisher(logging.ConsoleLogger(logrus.WarnLevel))
		var got string
		publisher.Subscribe(func(e *menuSaved) {
			got = e.id
		})
		publisher.Publish(&menuSaved{id: "menu-1"})
		require.Equal(t, "menu-1", got)
	})

	t.Run("warns when nothing matches", func(t *testing.T) {
		log, buf := bufferedLogger(logrus.WarnLevel)
		publisher := NewEventPublisher(log)
		publisher.Subscribe(func(e *menuSaved) {
			t.Error("should not be called")
		})
		publisher.Publish(&pageTypeSearched{query: "x"})
		require.Contains(t, buf.String(), "eventbus.Publish: no matching subscribers")
	})

	t.Run("recovers from panicking handler", func(t *testing.T) {
		log, buf := bufferedLogger(logrus.WarnLevel)
		publisher := NewEventPublisher(log)
		called := false
		publisher.Subscribe(func(e *menuSaved) { panic("boom") })
		publisher.Subscribe(func(e *menuSaved) { called = true })

		require.NotPanics(t, func() {
			publisher.Publish(&menuSaved{id: "1"})
		})
		require.True(t, called)
		require.Contains(t, buf.String(), "panicked")
		require.NotContains(t, buf.String(), "no matching subscribers")
	})

	t.Run("all handlers panicking counts as unhandled", func(t *testing.T) {
		log, buf := bufferedLogger(logrus.WarnLevel)
		publisher := NewEventPublisher(log)
		publisher.Subscribe(func(e *menuSaved) { panic("always") })
		publisher.Publish(&menuSaved{})
		require.Contains(t, buf.String(), "no matching subscribers")
	})
}

func TestMatchSignature(t *testing.T) {
	require.True(t, MatchSignature(func(e *menuSaved) {}, []interface{}{&menuSaved{}}))
	require.False(t, MatchSignature(func(e *menuSaved) {}, []interface{}{&pageTypeSearched{}}))
	require.False(t, MatchSignature(func(e *menuSaved) {}, []interface{}{}))
	require.False(t, MatchSignature(func(e *menuSaved) {}, []interface{}{&menuSaved{}, &menuSaved{}}))
	require.True(t, MatchSignature(func(ctx context.Context) {}, []interface{}{context.Background()}))
	require.True(t, MatchSignature(func(e *menuSaved) {}, []interface{}{nil}))
	require.False(t, MatchSignature("not a func", []interface{}{}))
}

func TestPublisher_PublishE(t *testing.T) {
	t.Parallel()

	t.Run("no subscribers", func(t *testing.T) {
		publisher := NewEventPublisher(nil)
		err := publisher.PublishE(&menuSaved{})
		require.ErrorIs(t, err, ErrNoSubscribers)
	})

	t.Run("joins handler errors", func(t *testing.T) {
		publisher := NewEventPublisher(nil)
		err1 := errors.New("err1")
		err2 := errors.New("err2")
		publisher.Subscribe(func(e *menuSaved) error { return err1 })
		publisher.Subscribe(func(e *menuSaved) error { return nil })
		publisher.Subscribe(func(e *menuSaved) error { return err2 })

		err := publisher.PublishE(&menuSaved{})
		require.ErrorIs(t, err, err1)
		require.ErrorIs(t, err, err2)
	})

	t.Run("panic surfaces as error", func(t *testing.T) {
		publisher := NewEventPublisher(nil)
		called := false
		publisher.Subscribe(func(e *menuSaved) error { panic("boom") })
		publisher.Subscribe(func(e *menuSaved) error { called = true; return nil })

		err := publisher.PublishE(&menuSaved{})
		require.Error(t, err)
		require.Contains(t, err.Error(), "boom")
		require.True(t, called)
	})

	t.Run("invalid return type", func(t *testing.T) {
		publisher := NewEventPublisher(nil)
		publisher.Subscribe(func(e *menuSaved) int { return 1 })
		require.ErrorIs(t, publisher.PublishE(&menuSaved{}), ErrInvalidHandlerReturn)
	})

	t.Run("void handlers succeed", func(t *testing.T) {
		publisher := NewEventPublisher(nil)
		publisher.Subscribe(func(e *menuSaved) {})
		require.NoError(t, publisher.PublishE(&menuSaved{}))
	})
}

func onSaved(e *menuSaved)           {}
func onSearched(e *pageTypeSearched) {}

func TestPublisher_Unsubscribe(t *testing.T) {
	publisher := NewEventPublisher(nil)
	publisher.Subscribe(onSaved)
	publisher.Subscribe(onSearched)
	require.Equal(t, 2, publisher.SubscribersCount())

	publisher.Unsubscribe(onSaved)
	require.Equal(t, 1, publisher.SubscribersCount())
	require.ErrorIs(t, publisher.PublishE(&menuSaved{}), ErrNoSubscribers)
	require.NoError(t, publisher.PublishE(&pageTypeSearched{}))

	publisher.Unsubscribe("not a func")
	require.Equal(t, 1, publisher.SubscribersCount())

	publisher.Clear()
	require.Zero(t, publisher.SubscribersCount())
}

func TestPublisher_SubscribeRejectsNonFunc(t *testing.T) {
	publisher := NewEventPublisher(nil)
	require.Panics(t, func() {
		publisher.Subscribe(42)
	})
}
