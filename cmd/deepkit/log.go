package main

import (
	"fmt"
	"io"
	"time"

	"github.com/sirupsen/logrus"
)

// log writes to stderr; stdout carries the MCP transport.
var log = logrus.New()

func setupLogging(level string, out io.Writer) error {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}
	log.SetLevel(lvl)
	log.SetOutput(out)
	log.SetFormatter(&logrus.JSONFormatter{
		TimestampFormat: time.RFC3339Nano,
	})
	return nil
}
