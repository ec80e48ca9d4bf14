// Package wildmatch implements anchored glob-style wildcard matching.
//
// A pattern is an ordinary string in which two characters are reserved:
// '?' matches exactly one arbitrary character, and '*' matches any run of
// characters, including none. Everything else is a literal and must match
// exactly. Matching is case sensitive and anchored at both ends — the
// pattern must account for the whole subject, not a substring of it.
// Wildcard characters appearing in the subject have no special meaning.
//
// # Quick Start
//
//	wildmatch.Match("*.log", "debug.log")   // true
//	wildmatch.Match("debug?.log", "debug.log") // false ('?' needs a character)
//	wildmatch.Match("", "")                 // true
//
// # Algorithm
//
// The matcher is a two-phase forward scan with a single retraction point.
// Phase one walks pattern and subject in lockstep until the first '*'.
// From there on, the positions just past the most recent '*' run are kept
// as a fallback pair; a later literal mismatch rewinds to the fallback and
// slides it forward, never further back than that star. Re-anchoring the
// fallback at each new '*' is what keeps the scan effectively linear on
// adversarial repeated-character inputs instead of exponential.
//
// The package ships the algorithm in independent realizations — Match
// walks forward cursors (slice narrowing), MatchPortable and MatchRunes
// walk explicit integer offsets. They implement the identical contract;
// disagreement between them on any input is a bug. Keeping them separate
// is deliberate: each serves as a cross-check on the others.
//
// # Concurrency
//
// All matching functions are pure: they read their inputs, keep no state
// between calls, and allocate nothing. Any number of goroutines may call
// them concurrently on any inputs.
package wildmatch

// Match reports whether subject matches pattern in full. It is the
// forward-cursor realization: both strings are consumed from the front by
// re-slicing, one character at a time, byte-wise.
//
// For text where '?' must consume one code point rather than one byte,
// use MatchRunes.
func Match(pattern, subject string) bool {
	// Scan up to the first '*', comparing a character at a time.
	for {
		if len(subject) == 0 {
			// A trailing run of stars still matches the empty remainder.
			for len(pattern) > 0 && pattern[0] == '*' {
				pattern = pattern[1:]
			}
			return len(pattern) == 0
		}
		if len(pattern) == 0 {
			return false
		}
		if pattern[0] == '*' {
			break
		}
		if pattern[0] != subject[0] && pattern[0] != '?' {
			return false
		}
		pattern = pattern[1:]
		subject = subject[1:]
	}

	// Got wild: collapse the star run. A run of stars is one star.
	for len(pattern) > 0 && pattern[0] == '*' {
		pattern = pattern[1:]
	}
	if len(pattern) == 0 {
		return true // trailing star matches whatever subject remains
	}

	// Seek the first prospective anchor for the character after the star.
	if pattern[0] != '?' {
		for subject[0] != pattern[0] {
			subject = subject[1:]
			if len(subject) == 0 {
				return false
			}
		}
	}

	// Fallback pair: the positions to retry from after a literal
	// mismatch. Re-anchored at every subsequent star, never rewound.
	fbPattern := pattern
	fbSubject := subject

	// Walk out the rest of both strings, retrying on mismatch.
	for {
		if len(pattern) > 0 && pattern[0] == '*' {
			// Got wild again.
			for len(pattern) > 0 && pattern[0] == '*' {
				pattern = pattern[1:]
			}
			if len(pattern) == 0 {
				return true
			}
			if len(subject) == 0 {
				return false
			}
			if pattern[0] != '?' {
				for subject[0] != pattern[0] {
					subject = subject[1:]
					if len(subject) == 0 {
						return false
					}
				}
			}
			fbPattern = pattern
			fbSubject = subject
		} else {
			if len(subject) == 0 {
				return len(pattern) == 0
			}
			if len(pattern) == 0 || (pattern[0] != subject[0] && pattern[0] != '?') {
				// Literal mismatch. Any '?' at the fallback consumes one
				// subject character unconditionally, so step both past them.
				for len(fbPattern) > 0 && fbPattern[0] == '?' {
					fbPattern = fbPattern[1:]
					if len(fbSubject) > 0 {
						fbSubject = fbSubject[1:]
					}
				}

				pattern = fbPattern
				if len(fbSubject) == 0 {
					return len(pattern) == 0
				}

				// Fall back, but never past the most recent star.
				for {
					fbSubject = fbSubject[1:]
					if len(fbSubject) == 0 {
						return len(pattern) == 0
					}
					if len(pattern) > 0 && pattern[0] == fbSubject[0] {
						break
					}
				}
				subject = fbSubject
			}
		}

		// Check for the end, at the end.
		if len(subject) == 0 {
			return len(pattern) == 0
		}
		pattern = pattern[1:]
		subject = subject[1:]
	}
}
