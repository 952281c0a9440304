package config

import "github.com/google/uuid"

const (
	defaultServerName               = "bender"
	defaultConfigLocation           = "~/.config/bender/config.toml"
	defaultPrivateDir               = "~/.local/share/bender/private"
	defaultUploadDir                = "/data"
	defaultLogDir                   = "~/.local/share/bender/logs"
	defaultQueueURL                 = "amqp://localhost:5672/%2f"
	defaultQueueExchange            = "bender"
	defaultTaskRoutingKey           = "task"
	defaultServerPort               = 8000
	defaultMaxUploadMiB             = 2048
	defaultKeepAliveSeconds         = 8
	defaultServerWorkers            = 4
	defaultJanitorIntervalSeconds   = 300
	defaultKeepFinishedHours        = 48
	defaultKeepErroredHours         = 168
	defaultOrphanGraceMinutes       = 30
	defaultWorkerParallelTasks      = 1
	defaultWorkerHeartbeatSeconds   = 15
	defaultWorkerGracePeriodSeconds = 60
	defaultLogFormat                = "console"
	defaultLogLevel                 = "info"
)

// Default returns a Config populated with repository defaults.
// The worker ID is generated fresh on every call.
func Default() Config {
	return Config{
		ServerName: defaultServerName,
		Paths: Paths{
			Config:  defaultConfigLocation,
			Private: defaultPrivateDir,
			Upload:  defaultUploadDir,
			Log:     defaultLogDir,
		},
		Queue: Queue{
			URL:            defaultQueueURL,
			Exchange:       defaultQueueExchange,
			TaskRoutingKey: defaultTaskRoutingKey,
		},
		Server: Server{
			Port:             defaultServerPort,
			MaxUploadMiB:     defaultMaxUploadMiB,
			KeepAliveSeconds: defaultKeepAliveSeconds,
			Workers:          defaultServerWorkers,
		},
		Janitor: Janitor{
			IntervalSeconds:    defaultJanitorIntervalSeconds,
			KeepFinishedHours:  defaultKeepFinishedHours,
			KeepErroredHours:   defaultKeepErroredHours,
			OrphanGraceMinutes: defaultOrphanGraceMinutes,
		},
		Worker: Worker{
			ID:                 NewWorkerID(),
			ParallelTasks:      defaultWorkerParallelTasks,
			HeartbeatSeconds:   defaultWorkerHeartbeatSeconds,
			GracePeriodSeconds: defaultWorkerGracePeriodSeconds,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}

// NewWorkerID returns a fresh worker instance identifier.
func NewWorkerID() string {
	return uuid.NewString()
}

// IsDefault reports whether the config carries repository defaults. The
// generated worker ID is ignored since it differs on every Default call.
func (c *Config) IsDefault() bool {
	base := Default()
	base.Worker.ID = c.Worker.ID
	return *c == base
}
