// Package config loads the optional cli-template configuration file.
//
// Configuration is read from config.yaml inside a single directory. The
// default directory is ~/.config/cli-template; CLI_TEMPLATE_CONFIG_PATH or
// the --config-path flag select another one. A missing file is not an error:
// the defaults from GetDefaultConfig are used, and keys absent from the file
// keep their default values.
//
// # File Format
//
//	hello:
//	  defaultName: World
//	table:
//	  defaultStyle: simple
//	progress:
//	  defaultType: simple
//	  pacing:
//	    simple: 30ms
//	    custom: 40ms
//	    multi: 50ms
//	output:
//	  color: true
//	prompt:
//	  plain: false
//
// Default style and type tokens must be ones the table and progress commands
// accept. Pacing delays must not be negative; zero disables the delay.
package config
