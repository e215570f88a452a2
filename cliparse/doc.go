// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

LoadDotEnv reads an optional .env file, then ParseFlags returns a Config:

	if err := cliparse.LoadDotEnv(); err != nil {
		log.Fatal(err)
	}
	cfg, err := cliparse.ParseFlags(os.Args[1:])

# CLI Flags and Environment Variables

	-p          PORT                 Server port (default 3318)
	-t          DATABASE_TYPE        sqlite or postgres (default sqlite)
	-d          DATABASE_URL         Database URL (default file:mess.db)
	-m          MENU_OPTIONS_SOURCE  Option document URL or path (default meal_options.xml)
	-tz         MESS_TIMEZONE        IANA timezone (default Asia/Kolkata)
	-admin-key  ADMIN_KEY            Admin key for ledger dumps (required)
	-log-level  LOG_LEVEL            debug, info, warn, error (default info)
	-log-file   LOG_FILE             Rotating log file (default stdout)

Environment only:

	FETCH_TIMEOUT        Option document fetch timeout (default 10s)
	BALLOT_RATE_PER_MIN  Ballot submissions per user per minute (default 6)
	LOG_MAX_SIZE_MB      Log file size before rotation (default 10)
	LOG_MAX_BACKUPS      Rotated files kept (default 3)
	LOG_MAX_AGE_DAYS     Days rotated files are kept (default 28)

CLI flags take precedence over environment variables. Malformed numbers,
durations or timezones are errors rather than silently defaulted.
*/
package cliparse
