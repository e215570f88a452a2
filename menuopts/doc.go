// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package menuopts loads the mess menu-option document.

# Document

The document is XML, fetched over HTTP(S) or read from a local file:

	<menu>
	  <day name="monday">
	    <meal type="breakfast">
	      <option id="mon-b1">Idli Sambar</option>
	      <option>Poha</option>
	    </meal>
	  </day>
	</menu>

Day names and meal types must be known, and nothing but whitespace or
comments may follow the root element. A repeated day replaces the earlier
one. Options keep document order, blank options are skipped, and a missing
id becomes "opt-<index>".

# Cache

Every successful load is cached under "menu_options:cache". When the source
cannot be fetched or parsed, Load returns the cached copy with FromCache set.
With nothing cached the error wraps both the failure and ErrNoCache.
*/
package menuopts
