package fiberlog

import "github.com/sirupsen/logrus"

// Config - настройки access-лога api
type Config struct {
	Logger *logrus.Logger
	Tags   []string
}

// ConfigDefault - набор полей по умолчанию
var ConfigDefault Config = Config{
	Logger: nil,
	Tags: []string{
		TagStatus,
		TagLatency,
		TagMethod,
		TagPath,
		TagIP,
	},
}
