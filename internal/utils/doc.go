// Package utils holds the ambient plumbing shared by the dsp commands.
//
// ConfigurationLoader layers embedded defaults, configuration files, and
// environment variables through Viper; LoggerFactory builds zap loggers in
// structured or console form.
package utils
