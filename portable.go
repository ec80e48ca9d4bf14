package wildmatch

// MatchPortable reports whether subject matches pattern in full. It is
// the integer-offset realization of the same contract as Match: the same
// two-phase scan, driven by explicit indices with a bounds check before
// every read instead of cursor narrowing.
//
// MatchPortable and Match must agree on every input, valid UTF-8 or not.
// Both are kept exported as independent implementations so that either
// can vouch for the other.
func MatchPortable(pattern, subject string) bool {
	iWild := 0 // index into both strings during the lockstep scan
	var iTame int

	// Fallback pair. Written in the star branch below before the second
	// loop can be entered, and only read there — phase two is unreachable
	// without a star having seeded these.
	var fbWild, fbTame int

	// Scan up to the first '*', comparing a character at a time.
	for {
		if iWild >= len(subject) {
			if iWild < len(pattern) {
				for pattern[iWild] == '*' {
					iWild++
					if iWild >= len(pattern) {
						return true
					}
				}
				return false
			}
			return true
		}
		if iWild >= len(pattern) {
			return false
		}
		if pattern[iWild] == '*' {
			// Got wild: collapse the star run.
			iTame = iWild
			for {
				iWild++
				if iWild >= len(pattern) {
					return true // trailing star
				}
				if pattern[iWild] != '*' {
					break
				}
			}

			// Seek the first prospective anchor.
			if pattern[iWild] != '?' {
				for pattern[iWild] != subject[iTame] {
					iTame++
					if iTame >= len(subject) {
						return false
					}
				}
			}

			fbWild = iWild
			fbTame = iTame
			break
		}
		if pattern[iWild] != subject[iWild] && pattern[iWild] != '?' {
			return false
		}
		iWild++
	}

	// Walk out the rest of both strings, retrying on mismatch.
	for {
		if iWild < len(pattern) && pattern[iWild] == '*' {
			// Got wild again.
			for {
				iWild++
				if iWild >= len(pattern) {
					return true
				}
				if pattern[iWild] != '*' {
					break
				}
			}
			if iTame >= len(subject) {
				return false
			}
			if pattern[iWild] != '?' {
				for pattern[iWild] != subject[iTame] {
					iTame++
					if iTame >= len(subject) {
						return false
					}
				}
			}
			fbWild = iWild
			fbTame = iTame
		} else {
			if iTame >= len(subject) {
				return iWild >= len(pattern)
			}
			if iWild >= len(pattern) ||
				(pattern[iWild] != subject[iTame] && pattern[iWild] != '?') {
				// Literal mismatch. '?' at the fallback consumes one
				// subject character unconditionally; step both past them.
				for fbWild < len(pattern) && pattern[fbWild] == '?' {
					fbWild++
					fbTame++
				}

				iWild = fbWild

				// Fall back, but never past the most recent star.
				for {
					fbTame++
					if fbTame >= len(subject) {
						return iWild >= len(pattern)
					}
					if iWild < len(pattern) && pattern[iWild] == subject[fbTame] {
						break
					}
				}
				iTame = fbTame
			}
		}

		// Check for the end, at the end.
		if iTame >= len(subject) {
			return iWild >= len(pattern)
		}
		iWild++
		iTame++
	}
}

// MatchRunes reports whether subject matches pattern in full, comparing
// code points rather than bytes: '?' consumes exactly one rune, so
// multi-byte characters are matched as units. Callers typically convert
// with []rune(s). For case-insensitive matching, lower both inputs before
// converting; the matcher itself never folds case.
//
// On ASCII input MatchRunes agrees with Match and MatchPortable.
func MatchRunes(pattern, subject []rune) bool {
	iWild := 0
	var iTame int
	var fbWild, fbTame int // fallback pair, seeded in the star branch

	// Scan up to the first '*', comparing a rune at a time.
	for {
		if iWild >= len(subject) {
			if iWild < len(pattern) {
				for pattern[iWild] == '*' {
					iWild++
					if iWild >= len(pattern) {
						return true
					}
				}
				return false
			}
			return true
		}
		if iWild >= len(pattern) {
			return false
		}
		if pattern[iWild] == '*' {
			iTame = iWild
			for {
				iWild++
				if iWild >= len(pattern) {
					return true
				}
				if pattern[iWild] != '*' {
					break
				}
			}

			if pattern[iWild] != '?' {
				for pattern[iWild] != subject[iTame] {
					iTame++
					if iTame >= len(subject) {
						return false
					}
				}
			}

			fbWild = iWild
			fbTame = iTame
			break
		}
		if pattern[iWild] != subject[iWild] && pattern[iWild] != '?' {
			return false
		}
		iWild++
	}

	// Walk out the rest of both slices, retrying on mismatch.
	for {
		if iWild < len(pattern) && pattern[iWild] == '*' {
			for {
				iWild++
				if iWild >= len(pattern) {
					return true
				}
				if pattern[iWild] != '*' {
					break
				}
			}
			if iTame >= len(subject) {
				return false
			}
			if pattern[iWild] != '?' {
				for pattern[iWild] != subject[iTame] {
					iTame++
					if iTame >= len(subject) {
						return false
					}
				}
			}
			fbWild = iWild
			fbTame = iTame
		} else {
			if iTame >= len(subject) {
				return iWild >= len(pattern)
			}
			if iWild >= len(pattern) ||
				(pattern[iWild] != subject[iTame] && pattern[iWild] != '?') {
				for fbWild < len(pattern) && pattern[fbWild] == '?' {
					fbWild++
					fbTame++
				}

				iWild = fbWild

				for {
					fbTame++
					if fbTame >= len(subject) {
						return iWild >= len(pattern)
					}
					if iWild < len(pattern) && pattern[iWild] == subject[fbTame] {
						break
					}
				}
				iTame = fbTame
			}
		}

		if iTame >= len(subject) {
			return iWild >= len(pattern)
		}
		iWild++
		iTame++
	}
}
