package factory

import "go.uber.org/zap"

// Logger is used by factories built without OptLogger.
var Logger = zap.NewNop()
