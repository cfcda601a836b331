// FILE: failwrite/src/cmd/failwrite/help.go
package main

const helpText = `failwrite: append base64-encoded counter records to a line-oriented log.

Usage:
  failwrite [command] [options]
  failwrite [options]

Commands:
  config [path]            Write the default configuration (default: failwrite.toml)
  help                     Display this help message
  version                  Display version information

Application Control:
  -c, --config <path>      Path to configuration file (default: failwrite.toml)
  -h, --help               Display this help message and exit
  -v, --version            Display version information and exit
  -q, --quiet              Suppress all console output, including errors

Appender:
      --appender.count <n>          Last id written; ids 0..n inclusive (default: 999)
      --appender.format <name>      json or msgpack (default: msgpack)
      --appender.output_path <p>    Output log file (default: failed_events.log)
      --appender.sync <bool>        Flush every line to disk (default: true)
      --appender.on_skip <policy>   log or fail on unencodable records (default: log)

Logging:
      --logging.output <mode>       file, stdout, stderr, split, all, none (default: stderr)
      --logging.level <level>       debug, info, warn, error (default: info)

Configuration Sources (Precedence: CLI > Env > File > Defaults):
  - CLI flags override all other settings
  - Environment variables (FAILWRITE_APPENDER_COUNT, ...) override file settings
  - FAILWRITE_CONFIG_FILE / FAILWRITE_CONFIG_DIR locate the TOML file

Examples:
  # Write 1000 msgpack lines to failed_events.log
  failwrite

  # Write ids 0..2 as JSON to a custom file
  failwrite --appender.format=json --appender.count=2 --appender.output_path=/tmp/events.log
`
