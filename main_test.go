package main

import (
	"context"
	"testing"
	"time"

	"github.com/Drolfothesgnir/kbdplus/util"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func TestRunGinServer_InvalidAddress(t *testing.T) {
	waitGroup, ctx := errgroup.WithContext(context.Background())

	err := RunGinServer(ctx, waitGroup, util.Config{
		HTTPServerAddress: "http://localhost",
		ShutdownTimeout:   time.Second,
	})
	require.ErrorIs(t, err, util.ErrMissingPort)

	// nothing was started
	require.NoError(t, waitGroup.Wait())
}
