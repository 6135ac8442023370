package server

import (
	"context"
	"errors"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestServer_ServeAndShutdown(t *testing.T) {
	t.Parallel()

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	hookCalled := make(chan struct{})
	srv := New(Config{ShutdownTimeout: time.Second}, Liveness(),
		WithShutdownHook(func(context.Context) error {
			close(hookCalled)
			return nil
		}),
	)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Serve(ctx, ln) }()

	require.Eventually(t, func() bool {
		resp, err := http.Get("http://" + ln.Addr().String())
		if err != nil {
			return false
		}
		_ = resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 2*time.Second, 10*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("server did not stop")
	}
	<-hookCalled
}

func TestServer_ShutdownHookError(t *testing.T) {
	t.Parallel()

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	hookErr := errors.New("close failed")
	srv := New(Config{}, Liveness(), WithShutdownHook(func(context.Context) error { return hookErr }))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.ErrorIs(t, srv.Serve(ctx, ln), hookErr)
}

func TestNew_Defaults(t *testing.T) {
	t.Parallel()

	srv := New(Config{}, http.NotFoundHandler())
	require.Equal(t, defaultAddress, srv.config.Address)
	require.Equal(t, defaultShutdownTimeout, srv.config.ShutdownTimeout)
	require.Equal(t, defaultWriteTimeout, srv.config.WriteTimeout)
}
