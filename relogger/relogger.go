package relogger // import "code.cloudfoundry.org/regscan/relogger"

import (
	"bytes"
	"encoding/json"
	"io"
	"strings"

	"code.cloudfoundry.org/lager/v3"
	"code.cloudfoundry.org/lager/v3/chug"
	errorspkg "github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Relogger writes lager lines, and the JSON lines of a logrus JSONFormatter,
// to a destination lager logger.
type Relogger struct {
	dest lager.Logger
}

func NewRelogger(destination lager.Logger) *Relogger {
	return &Relogger{
		dest: destination,
	}
}

// NewLogrus returns a logrus logger relogging every entry to destination.
// Level filtering is left to the destination's sinks.
func NewLogrus(destination lager.Logger) *logrus.Logger {
	return &logrus.Logger{
		Out:       NewRelogger(destination),
		Formatter: &logrus.JSONFormatter{},
		Hooks:     make(logrus.LevelHooks),
		Level:     logrus.DebugLevel,
	}
}

func (r *Relogger) Write(data []byte) (n int, err error) {
	RelogBytes(r.dest, data)
	return len(data), nil
}

func RelogBytes(destination lager.Logger, source []byte) {
	buffer := bytes.NewBuffer(source)
	RelogStream(destination, buffer)
}

func RelogStream(destination lager.Logger, input io.Reader) {
	entries := make(chan chug.Entry)
	go chug.Chug(input, entries)
	for entry := range entries {
		if entry.IsLager && entry.Log.Message != "" {
			relog(destination, entry.Log)
			continue
		}
		relogLogrus(destination, entry.Raw)
	}
}

func relog(logger lager.Logger, entry chug.LogEntry) {
	data := entry.Data
	if data == nil {
		data = lager.Data{}
	}
	data["original_timestamp"] = entry.Timestamp

	switch entry.LogLevel {
	case lager.DEBUG:
		logger.Debug(entry.Message, data)
	case lager.INFO:
		logger.Info(entry.Message, data)
	case lager.ERROR, lager.FATAL:
		logger.Error(entry.Message, entry.Error, data)
	}
}

func relogLogrus(logger lager.Logger, line []byte) {
	fields := map[string]interface{}{}
	if err := json.Unmarshal(line, &fields); err != nil {
		return
	}

	message, _ := fields[logrus.FieldKeyMsg].(string)
	levelName, _ := fields[logrus.FieldKeyLevel].(string)
	if message == "" || levelName == "" {
		return
	}

	data := lager.Data{}
	for key, value := range fields {
		switch key {
		case logrus.FieldKeyMsg, logrus.FieldKeyLevel:
		case logrus.FieldKeyTime:
			data["original_timestamp"] = value
		default:
			data[key] = value
		}
	}

	level, err := logrus.ParseLevel(levelName)
	if err != nil {
		level = logrus.InfoLevel
	}

	action := actionName(message)
	switch {
	case level <= logrus.ErrorLevel:
		logger.Error(action, errorspkg.New(message), data)
	case level <= logrus.WarnLevel:
		logger.Info(action, data)
	default:
		logger.Debug(action, data)
	}
}

// actionName turns "Failed to load docker creds" into the lager style
// "failed-to-load-docker-creds".
func actionName(message string) string {
	return strings.Join(strings.Fields(strings.ToLower(message)), "-")
}
