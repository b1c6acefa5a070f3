//go:build integration
// +build integration

package repository

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"testing"

	"lpg-backoffice/internal/testutils"
)

// TestMain removes the shared postgres container when the run ends or is interrupted
func TestMain(m *testing.M) {
	interrupted := make(chan os.Signal, 1)
	signal.Notify(interrupted, os.Interrupt, syscall.SIGTERM)
	go func() {
		sig := <-interrupted
		log.Printf("repository tests stopped by %s, removing containers", sig)
		testutils.CleanupSharedContainer()
		os.Exit(1)
	}()

	code := m.Run()
	signal.Stop(interrupted)
	testutils.CleanupSharedContainer()
	os.Exit(code)
}
