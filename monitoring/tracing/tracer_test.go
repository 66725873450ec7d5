package tracing

import (
	"testing"

	"github.com/prysmaticlabs/keymanager-cli/testing/assert"
	"github.com/prysmaticlabs/keymanager-cli/testing/require"
	logTest "github.com/sirupsen/logrus/hooks/test"
)

func TestSetup(t *testing.T) {
	hook := logTest.NewGlobal()
	defer func() {
		require.NoError(t, Setup("", "", 0, false))
	}()

	require.NoError(t, Setup("", "", 0, false))
	require.ErrorContains(t, "tracing service name cannot be empty", Setup("", "http://127.0.0.1:14268/api/traces", 1, true))
	require.ErrorContains(t, "between 0 and 1", Setup("keymanager", "http://127.0.0.1:14268/api/traces", 1.5, true))
	assert.LogsDoNotContain(t, hook, "Tracing keymanager API requests")

	require.NoError(t, Setup("keymanager", "http://127.0.0.1:14268/api/traces", 0.5, true))
	assert.LogsContain(t, hook, "Tracing keymanager API requests")
}
