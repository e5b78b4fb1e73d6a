package scip

import (
	"go.uber.org/zap"

	"github.com/bartolsthoorn/goscip/internal/native"
)

// Option configures a model at creation time.
type Option func(*config)

type config struct {
	engine  native.Engine
	driver  string
	logger  *zap.Logger
	metrics *Metrics
}

func defaultConfig() *config {
	return &config{
		driver: DefaultDriver,
	}
}

// WithEngine uses e instead of opening one through a driver. The model
// takes ownership and frees e on Close.
func WithEngine(e native.Engine) Option {
	return func(c *config) {
		c.engine = e
	}
}

// WithDriver selects a registered engine driver by name.
func WithDriver(name string) Option {
	return func(c *config) {
		c.driver = name
	}
}

// WithLogger sets the logger for this model.
func WithLogger(l *zap.Logger) Option {
	return func(c *config) {
		c.logger = l
	}
}

// WithMetrics records plugin and handle activity of this model in m.
func WithMetrics(m *Metrics) Option {
	return func(c *config) {
		c.metrics = m
	}
}
