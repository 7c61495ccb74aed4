package main

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
)

func setupLogging(level string) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		lvl = log.InfoLevel
	}
	log.SetLevel(lvl)
	log.SetFormatter(&log.JSONFormatter{
		DisableTimestamp: true,
	})
	log.SetOutput(os.Stdout)
}

// retryLogger sends retryablehttp's own messages to logrus at debug. The
// forwarder logs the outcome of every post itself.
type retryLogger struct{}

func (retryLogger) Error(msg string, kv ...interface{}) { log.WithFields(kvFields(kv)).Debug(msg) }
func (retryLogger) Warn(msg string, kv ...interface{})  { log.WithFields(kvFields(kv)).Debug(msg) }
func (retryLogger) Info(msg string, kv ...interface{})  { log.WithFields(kvFields(kv)).Debug(msg) }
func (retryLogger) Debug(msg string, kv ...interface{}) { log.WithFields(kvFields(kv)).Debug(msg) }

func kvFields(kv []interface{}) log.Fields {
	fields := log.Fields{}
	for i := 0; i+1 < len(kv); i += 2 {
		fields[fmt.Sprint(kv[i])] = fmt.Sprint(kv[i+1])
	}
	return fields
}
