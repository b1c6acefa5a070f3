package cache

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConnectDisabled(t *testing.T) {
	client, err := Connect(context.Background(), "")
	require.NoError(t, err)
	assert.Nil(t, client)
}

func TestConnectBadURL(t *testing.T) {
	_, err := Connect(context.Background(), "http://not-redis")
	assert.Error(t, err)
}
