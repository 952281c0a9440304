package wizard

import (
	"fmt"

	"bender/internal/config"
)

// fieldSpec describes one leaf field of the configuration document: its
// dotted key, the label shown to the operator, and accessors against a
// Config. Fields with a fresh function bypass the dialog and are recomputed
// on every pass.
type fieldSpec struct {
	key   string
	label string
	get   func(*config.Config) Value
	set   func(*config.Config, Value)
	fresh func(current, result *config.Config)
}

// sectionSpec groups the fields of one configuration section in their fixed
// dialog order.
type sectionSpec struct {
	title  string
	fields []fieldSpec
}

// topLevelFields returns the document's scalar fields outside any section.
func topLevelFields() []fieldSpec {
	return []fieldSpec{
		{
			key:   "server_name",
			label: "Server name",
			get:   func(c *config.Config) Value { return Text(c.ServerName) },
			set:   func(c *config.Config, v Value) { c.ServerName = v.String() },
		},
	}
}

// documentSections returns the section dialogs in their fixed declaration
// order. The order is part of the wizard's contract: transcripts must read
// the same way on every run.
func documentSections() []sectionSpec {
	return []sectionSpec{
		{
			title: "Paths",
			fields: []fieldSpec{
				{
					key:   "paths.config",
					label: "Config file",
					get:   func(c *config.Config) Value { return Text(c.Paths.Config) },
					fresh: func(current, result *config.Config) { result.Paths.Config = current.Paths.Config },
				},
				{
					key:   "paths.private",
					label: "Private data directory",
					get:   func(c *config.Config) Value { return Text(c.Paths.Private) },
					set:   func(c *config.Config, v Value) { c.Paths.Private = v.String() },
				},
				{
					key:   "paths.upload",
					label: "Upload directory",
					get:   func(c *config.Config) Value { return Text(c.Paths.Upload) },
					set:   func(c *config.Config, v Value) { c.Paths.Upload = v.String() },
				},
				{
					key:   "paths.log",
					label: "Log directory",
					get:   func(c *config.Config) Value { return Text(c.Paths.Log) },
					set:   func(c *config.Config, v Value) { c.Paths.Log = v.String() },
				},
			},
		},
		{
			title: "Queue",
			fields: []fieldSpec{
				{
					key:   "queue.url",
					label: "Broker URL",
					get:   func(c *config.Config) Value { return Text(c.Queue.URL) },
					set:   func(c *config.Config, v Value) { c.Queue.URL = v.String() },
				},
				{
					key:   "queue.exchange",
					label: "Exchange",
					get:   func(c *config.Config) Value { return Text(c.Queue.Exchange) },
					set:   func(c *config.Config, v Value) { c.Queue.Exchange = v.String() },
				},
				{
					key:   "queue.task_routing_key",
					label: "Task routing key",
					get:   func(c *config.Config) Value { return Text(c.Queue.TaskRoutingKey) },
					set:   func(c *config.Config, v Value) { c.Queue.TaskRoutingKey = v.String() },
				},
			},
		},
		{
			title: "Server",
			fields: []fieldSpec{
				{
					key:   "server.port",
					label: "Port",
					get:   func(c *config.Config) Value { return UnsignedInt(uint64(c.Server.Port)) },
					set:   func(c *config.Config, v Value) { c.Server.Port = uint(v.Uint()) },
				},
				{
					key:   "server.max_upload_mib",
					label: "Upload limit (MiB)",
					get:   func(c *config.Config) Value { return UnsignedInt(c.Server.MaxUploadMiB) },
					set:   func(c *config.Config, v Value) { c.Server.MaxUploadMiB = v.Uint() },
				},
				{
					key:   "server.keep_alive_seconds",
					label: "Keep-alive (seconds)",
					get:   func(c *config.Config) Value { return UnsignedInt(uint64(c.Server.KeepAliveSeconds)) },
					set:   func(c *config.Config, v Value) { c.Server.KeepAliveSeconds = uint(v.Uint()) },
				},
				{
					key:   "server.workers",
					label: "Framework workers",
					get:   func(c *config.Config) Value { return UnsignedInt(uint64(c.Server.Workers)) },
					set:   func(c *config.Config, v Value) { c.Server.Workers = uint(v.Uint()) },
				},
			},
		},
		{
			title: "Janitor",
			fields: []fieldSpec{
				{
					key:   "janitor.interval_seconds",
					label: "Sweep interval (seconds)",
					get:   func(c *config.Config) Value { return UnsignedInt(uint64(c.Janitor.IntervalSeconds)) },
					set:   func(c *config.Config, v Value) { c.Janitor.IntervalSeconds = uint(v.Uint()) },
				},
				{
					key:   "janitor.keep_finished_hours",
					label: "Keep finished jobs (hours)",
					get:   func(c *config.Config) Value { return UnsignedInt(uint64(c.Janitor.KeepFinishedHours)) },
					set:   func(c *config.Config, v Value) { c.Janitor.KeepFinishedHours = uint(v.Uint()) },
				},
				{
					key:   "janitor.keep_errored_hours",
					label: "Keep errored jobs (hours)",
					get:   func(c *config.Config) Value { return UnsignedInt(uint64(c.Janitor.KeepErroredHours)) },
					set:   func(c *config.Config, v Value) { c.Janitor.KeepErroredHours = uint(v.Uint()) },
				},
				{
					key:   "janitor.orphan_grace_minutes",
					label: "Orphan grace (minutes)",
					get:   func(c *config.Config) Value { return UnsignedInt(uint64(c.Janitor.OrphanGraceMinutes)) },
					set:   func(c *config.Config, v Value) { c.Janitor.OrphanGraceMinutes = uint(v.Uint()) },
				},
			},
		},
		{
			title: "Worker",
			fields: []fieldSpec{
				{
					key:   "worker.id",
					label: "Instance id",
					get:   func(c *config.Config) Value { return Identifier(c.Worker.ID) },
					fresh: func(current, result *config.Config) { result.Worker.ID = config.NewWorkerID() },
				},
				{
					key:   "worker.parallel_tasks",
					label: "Parallel tasks",
					get:   func(c *config.Config) Value { return UnsignedInt(uint64(c.Worker.ParallelTasks)) },
					set:   func(c *config.Config, v Value) { c.Worker.ParallelTasks = uint(v.Uint()) },
				},
				{
					key:   "worker.heartbeat_seconds",
					label: "Heartbeat (seconds)",
					get:   func(c *config.Config) Value { return UnsignedInt(uint64(c.Worker.HeartbeatSeconds)) },
					set:   func(c *config.Config, v Value) { c.Worker.HeartbeatSeconds = uint(v.Uint()) },
				},
				{
					key:   "worker.grace_period_seconds",
					label: "Shutdown grace (seconds)",
					get:   func(c *config.Config) Value { return SignedInt(c.Worker.GracePeriodSeconds) },
					set:   func(c *config.Config, v Value) { c.Worker.GracePeriodSeconds = v.Int() },
				},
			},
		},
		{
			title: "Logging",
			fields: []fieldSpec{
				{
					key:   "logging.format",
					label: "Log format",
					get:   func(c *config.Config) Value { return Text(c.Logging.Format) },
					set:   func(c *config.Config, v Value) { c.Logging.Format = v.String() },
				},
				{
					key:   "logging.level",
					label: "Log level",
					get:   func(c *config.Config) Value { return Text(c.Logging.Level) },
					set:   func(c *config.Config, v Value) { c.Logging.Level = v.String() },
				},
			},
		},
	}
}

func allFields() []fieldSpec {
	fields := topLevelFields()
	for _, section := range documentSections() {
		fields = append(fields, section.fields...)
	}
	return fields
}

// Keys lists every dotted field key in dialog order.
func Keys() []string {
	fields := allFields()
	keys := make([]string, 0, len(fields))
	for _, f := range fields {
		keys = append(keys, f.key)
	}
	return keys
}

// Get renders the value stored under the dotted key.
func Get(cfg *config.Config, key string) (string, error) {
	for _, f := range allFields() {
		if f.key == key {
			return f.get(cfg).String(), nil
		}
	}
	return "", fmt.Errorf("unknown configuration key %q", key)
}

// Set parses raw according to the field's kind and stores it under the
// dotted key. Generated fields refuse manual values.
func Set(cfg *config.Config, key, raw string) error {
	for _, f := range allFields() {
		if f.key != key {
			continue
		}
		if f.set == nil {
			return fmt.Errorf("%s: %w", key, ErrGeneratedValue)
		}
		value, err := f.get(cfg).Parse(raw)
		if err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
		f.set(cfg, value)
		return nil
	}
	return fmt.Errorf("unknown configuration key %q", key)
}
