package config

import (
	"errors"
	"fmt"
	"strings"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.ServerName) == "" {
		return errors.New("server_name must be set")
	}
	if err := c.validatePaths(); err != nil {
		return err
	}
	if err := c.validateQueue(); err != nil {
		return err
	}
	if err := c.validateServer(); err != nil {
		return err
	}
	if err := c.validateJanitor(); err != nil {
		return err
	}
	if err := c.validateWorker(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validatePaths() error {
	if strings.TrimSpace(c.Paths.Config) == "" {
		return errors.New("paths.config must be set")
	}
	if strings.TrimSpace(c.Paths.Private) == "" {
		return errors.New("paths.private must be set")
	}
	if strings.TrimSpace(c.Paths.Upload) == "" {
		return errors.New("paths.upload must be set")
	}
	if strings.TrimSpace(c.Paths.Log) == "" {
		return errors.New("paths.log must be set")
	}
	return nil
}

func (c *Config) validateQueue() error {
	url := strings.TrimSpace(c.Queue.URL)
	if url == "" {
		return errors.New("queue.url must be set")
	}
	if !strings.HasPrefix(url, "amqp://") && !strings.HasPrefix(url, "amqps://") {
		return fmt.Errorf("queue.url must use the amqp:// or amqps:// scheme, got %q", url)
	}
	if strings.TrimSpace(c.Queue.Exchange) == "" {
		return errors.New("queue.exchange must be set")
	}
	if strings.TrimSpace(c.Queue.TaskRoutingKey) == "" {
		return errors.New("queue.task_routing_key must be set")
	}
	return nil
}

func (c *Config) validateServer() error {
	if c.Server.Port == 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be between 1 and 65535, got %d", c.Server.Port)
	}
	if c.Server.MaxUploadMiB == 0 {
		return errors.New("server.max_upload_mib must be greater than zero")
	}
	if c.Server.Workers == 0 {
		return errors.New("server.workers must be greater than zero")
	}
	return nil
}

func (c *Config) validateJanitor() error {
	if c.Janitor.IntervalSeconds == 0 {
		return errors.New("janitor.interval_seconds must be greater than zero")
	}
	return nil
}

func (c *Config) validateWorker() error {
	if strings.TrimSpace(c.Worker.ID) == "" {
		return errors.New("worker.id must be set")
	}
	if c.Worker.ParallelTasks == 0 {
		return errors.New("worker.parallel_tasks must be greater than zero")
	}
	if c.Worker.HeartbeatSeconds == 0 {
		return errors.New("worker.heartbeat_seconds must be greater than zero")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level: unsupported value %q", c.Logging.Level)
	}
	return nil
}
