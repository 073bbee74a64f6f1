package events

import (
	"testing"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestStdLoggerWithKeepsParentFields(t *testing.T) {
	var (
		core, logs = observer.New(zap.DebugLevel)
		parent     = StdLogger(zap.New(core)).With(watermill.LogFields{"topic": "shapes", "id": 1})
		child      = parent.With(watermill.LogFields{"topic": "pets"})
	)

	child.Info("published", watermill.LogFields{"id": 2})
	parent.Info("published", nil)

	entries := logs.All()
	assert.Len(t, entries, 2)
	assert.Equal(t, "pets", entries[0].ContextMap()["topic"])
	assert.EqualValues(t, 2, entries[0].ContextMap()["id"])
	assert.Equal(t, "shapes", entries[1].ContextMap()["topic"])
	assert.EqualValues(t, 1, entries[1].ContextMap()["id"])
}
