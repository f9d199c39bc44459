package kafka_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/niksmo/storefront/internal/adapter/kafka"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDialTLSOpt(t *testing.T) {
	t.Run("MissingCA", func(t *testing.T) {
		dir := t.TempDir()
		_, err := kafka.DialTLSOpt(
			filepath.Join(dir, "ca.pem"),
			filepath.Join(dir, "client.pem"),
			filepath.Join(dir, "client-key.pem"),
		)
		assert.Error(t, err)
	})

	t.Run("InvalidCA", func(t *testing.T) {
		dir := t.TempDir()
		ca := filepath.Join(dir, "ca.pem")
		require.NoError(t, os.WriteFile(ca, []byte("not a certificate"), 0o600))

		_, err := kafka.DialTLSOpt(
			ca,
			filepath.Join(dir, "client.pem"),
			filepath.Join(dir, "client-key.pem"),
		)
		assert.ErrorIs(t, err, kafka.ErrInvalidCA)
	})
}
