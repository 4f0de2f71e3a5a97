package logger

import (
	"go.uber.org/zap"
)

var log *zap.SugaredLogger

func Init() {
	zl, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	log = zl.Sugar()
}

func L() *zap.SugaredLogger {
	if log == nil {
		Init()
	}
	return log
}

func Sync() {
	if log != nil {
		_ = log.Sync()
	}
}
