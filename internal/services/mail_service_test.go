package services

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLogMailServiceHandlesShortTokens(t *testing.T) {
	mail := NewLogMailService()

	require.NotPanics(t, func() {
		require.NoError(t, mail.SendPasswordResetMail("a@x.com", "abc"))
	})
	require.NoError(t, mail.SendPasswordResetMail("a@x.com", ""))
}
