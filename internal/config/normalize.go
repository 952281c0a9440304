package config

import (
	"fmt"
	"os"
	"strings"
)

// Normalize expands paths, applies environment fallbacks, and fills empty
// fields with defaults. Load applies it automatically; callers assembling a
// document by hand (the wizard, config set) run it before validating.
func (c *Config) Normalize() error {
	return c.normalize()
}

func (c *Config) normalize() error {
	c.ServerName = strings.TrimSpace(c.ServerName)
	if c.ServerName == "" {
		c.ServerName = defaultServerName
	}
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeQueue()
	c.normalizeWorker()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	var err error
	if strings.TrimSpace(c.Paths.Config) == "" {
		c.Paths.Config = defaultConfigLocation
	}
	if c.Paths.Config, err = expandPath(c.Paths.Config); err != nil {
		return fmt.Errorf("paths.config: %w", err)
	}
	if strings.TrimSpace(c.Paths.Private) == "" {
		c.Paths.Private = defaultPrivateDir
	}
	if c.Paths.Private, err = expandPath(c.Paths.Private); err != nil {
		return fmt.Errorf("paths.private: %w", err)
	}
	if strings.TrimSpace(c.Paths.Upload) == "" {
		c.Paths.Upload = defaultUploadDir
	}
	if c.Paths.Upload, err = expandPath(c.Paths.Upload); err != nil {
		return fmt.Errorf("paths.upload: %w", err)
	}
	if strings.TrimSpace(c.Paths.Log) == "" {
		c.Paths.Log = defaultLogDir
	}
	if c.Paths.Log, err = expandPath(c.Paths.Log); err != nil {
		return fmt.Errorf("paths.log: %w", err)
	}
	return nil
}

func (c *Config) normalizeQueue() {
	c.Queue.URL = strings.TrimSpace(c.Queue.URL)
	if c.Queue.URL == "" {
		if value, ok := os.LookupEnv("BENDER_QUEUE_URL"); ok {
			c.Queue.URL = strings.TrimSpace(value)
		}
	}
	if c.Queue.URL == "" {
		c.Queue.URL = defaultQueueURL
	}
	c.Queue.Exchange = strings.TrimSpace(c.Queue.Exchange)
	if c.Queue.Exchange == "" {
		c.Queue.Exchange = defaultQueueExchange
	}
	c.Queue.TaskRoutingKey = strings.TrimSpace(c.Queue.TaskRoutingKey)
	if c.Queue.TaskRoutingKey == "" {
		c.Queue.TaskRoutingKey = defaultTaskRoutingKey
	}
}

func (c *Config) normalizeWorker() {
	c.Worker.ID = strings.TrimSpace(c.Worker.ID)
	if c.Worker.ID == "" {
		c.Worker.ID = NewWorkerID()
	}
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
