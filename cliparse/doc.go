// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles configuration from the environment and CLI flags.

# Sources

Values come from, in increasing priority:

 1. defaults
 2. environment variables (optionally loaded from a .env file)
 3. command line flags

# Settings

	PORT (-p)                      server port, default 3318
	COOKIE_MAX_AGE (-cookie-max-age) seconds, default one year, 0 = session
	COOKIE_SECURE (-secure)        Secure attribute, default false
	ID_POLICY (-id-policy)         counter (default) or count
	MALFORMED_POLICY (-malformed)  fail (default) or skip
	LOG_FORMAT (-log-format)       text (default) or json

ID_POLICY=count reproduces the legacy allocation (id = number of entries),
which can overwrite an entry after a delete. MALFORMED_POLICY=skip renders
the list without cookies that fail to parse instead of failing the page.

# Usage

	if err := cliparse.LoadDotEnv(".env"); err != nil {
		log.Fatal(err)
	}
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}

	mux := router.NewRouter(cfg)
*/
package cliparse
