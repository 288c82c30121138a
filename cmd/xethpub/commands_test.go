package main

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"
)

// runSendArgs 解析 send 命令参数并返回 resolvePayload 的结果。
func runSendArgs(t *testing.T, args ...string) ([]byte, error) {
	t.Helper()

	var payload []byte
	var payloadErr error

	cmd := createSendCommand()
	cmd.Action = func(_ context.Context, cmd *cli.Command) error {
		payload, payloadErr = resolvePayload(cmd)
		return nil
	}
	app := &cli.Command{Name: "test", Commands: []*cli.Command{cmd}}

	argv := append([]string{"test", "send"}, args...)
	require.NoError(t, app.Run(context.Background(), argv))
	return payload, payloadErr
}

func TestResolvePayload_Hex(t *testing.T) {
	payload, err := runSendArgs(t, "--payload", "68656c6c6f")
	require.NoError(t, err)
	assert.Equal(t, []byte("hello"), payload)
}

func TestResolvePayload_Text(t *testing.T) {
	payload, err := runSendArgs(t, "--text", "hello")
	require.NoError(t, err)
	assert.Equal(t, []byte("hello"), payload)
}

func TestResolvePayload_InvalidHex(t *testing.T) {
	_, err := runSendArgs(t, "--payload", "zz")
	var usageErr *usageError
	assert.ErrorAs(t, err, &usageErr)
}

func TestResolvePayload_Missing(t *testing.T) {
	_, err := runSendArgs(t)
	var usageErr *usageError
	assert.ErrorAs(t, err, &usageErr)
}

func TestResolvePayload_Conflict(t *testing.T) {
	_, err := runSendArgs(t, "--payload", "00", "--text", "x")
	var usageErr *usageError
	assert.ErrorAs(t, err, &usageErr)
}
