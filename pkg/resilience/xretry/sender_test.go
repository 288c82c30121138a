package xretry

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omeyang/xpubsub/pkg/transport/xeth"
)

// scriptedChannel 按脚本依次返回错误的 SendChannel 桩。
type scriptedChannel struct {
	errs  []error
	calls int
}

func (c *scriptedChannel) Send(_ []byte) error {
	defer func() { c.calls++ }()
	if c.calls < len(c.errs) {
		return c.errs[c.calls]
	}
	return nil
}

func TestSender_RetriesTransmitFailure(t *testing.T) {
	ch := &scriptedChannel{errs: []error{
		fmt.Errorf("%w: carrier lost", xeth.ErrTransmit),
		fmt.Errorf("%w: carrier lost", xeth.ErrTransmit),
	}}

	s, err := NewSender(ch, WithDelay(1), WithMaxSendDelay(1))
	require.NoError(t, err)

	require.NoError(t, s.Send(context.Background(), []byte("payload")))
	assert.Equal(t, 3, ch.calls)
}

func TestSender_ExhaustsAttempts(t *testing.T) {
	transmitErr := fmt.Errorf("%w: carrier lost", xeth.ErrTransmit)
	ch := &scriptedChannel{errs: []error{transmitErr, transmitErr, transmitErr}}

	s, err := NewSender(ch, WithAttempts(2), WithDelay(1), WithMaxSendDelay(1))
	require.NoError(t, err)

	err = s.Send(context.Background(), nil)
	assert.ErrorIs(t, err, xeth.ErrTransmit)
	assert.Equal(t, 2, ch.calls)
}

func TestSender_StateErrorIsPermanent(t *testing.T) {
	ch := &scriptedChannel{errs: []error{
		fmt.Errorf("%w: send requires publisher", xeth.ErrInvalidState),
	}}

	s, err := NewSender(ch, WithAttempts(5), WithDelay(1))
	require.NoError(t, err)

	err = s.Send(context.Background(), nil)
	assert.ErrorIs(t, err, xeth.ErrInvalidState)
	assert.Equal(t, 1, ch.calls)
}

func TestSender_NilChannel(t *testing.T) {
	_, err := NewSender(nil)
	assert.ErrorIs(t, err, ErrNilChannel)
}
