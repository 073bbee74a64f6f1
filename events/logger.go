package events

import (
	"fmt"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/imdario/mergo"
	"github.com/jinzhu/copier"
	"go.uber.org/zap"
)

type llogger struct {
	log    *zap.SugaredLogger
	fields watermill.LogFields
}

// StdLogger adapts a zap logger for watermill.
func StdLogger(logger *zap.Logger) watermill.LoggerAdapter {
	return &llogger{
		log: logger.Sugar(),
	}
}

// merged returns a fresh map of the adapter's fields overridden by fields. The adapter's
// own field map is left as is.
func (log *llogger) merged(fields watermill.LogFields) map[string]interface{} {
	var m = make(map[string]interface{}, len(log.fields)+len(fields))

	if len(log.fields) > 0 {
		if err := copier.CopyWithOption(&m, log.fields, copier.Option{DeepCopy: true}); err != nil {
			for key, field := range log.fields {
				m[key] = field
			}
		}
	}

	if len(fields) > 0 {
		if err := mergo.Map(&m, map[string]interface{}(fields), mergo.WithOverride); err != nil {
			for key, field := range fields {
				m[key] = field
			}
		}
	}
	return m
}

func (log *llogger) fieldsArgs(fields watermill.LogFields) []interface{} {
	var args []interface{}

	for key, field := range log.merged(fields) {
		args = append(args, key, field)
	}

	return args
}

func (log *llogger) Error(msg string, err error, fields watermill.LogFields) {
	log.log.Errorw(fmt.Sprintf("%s: %v", msg, err), log.fieldsArgs(fields)...)
}

func (log *llogger) Info(msg string, fields watermill.LogFields) {
	log.log.Infow(msg, log.fieldsArgs(fields)...)
}

func (log *llogger) Debug(msg string, fields watermill.LogFields) {
	log.log.Debugw(msg, log.fieldsArgs(fields)...)
}

func (log *llogger) Trace(msg string, fields watermill.LogFields) {
	log.log.Debugw(msg, log.fieldsArgs(fields)...)
}

func (log *llogger) With(fields watermill.LogFields) watermill.LoggerAdapter {
	return &llogger{
		log:    log.log,
		fields: log.merged(fields),
	}
}
