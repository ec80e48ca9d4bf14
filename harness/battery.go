package harness

import "strings"

// Long adversarial inputs shared by the wild and tame batteries. The
// repeated-prefix structure forces the matcher to retry from many
// plausible anchor positions.
var (
	longRepeatA = strings.Repeat("a", 90) + "b"

	longMixed = "abababababababababababababababababababaacacacacaca" +
		"cacadaeafagahaiajakalaaaaaaaaaaaaaaaaaffafagaagggagaaaaaaaab"

	// Single-character edits deep inside longMixed.
	longMixedX = strings.Replace(longMixed, "aiajakal", "aiajaxal", 1)
	longMixedG = strings.Replace(longMixed, "fagaagggag", "fagaggggag", 1)

	// Self-similar prefixes with literal stars in the subject.
	starAbc = "abc*abcd*abcde*abcdef*abcdefg*abcdefgh*abcdefghi*" +
		"abcdefghij*abcdefghijk*abcdefghijkl*abcdefghijklm*abcdefghijklmn"
	tameAbc = "abcabcdabcdeabcdefabcdefgabcdefghabcdefghi" +
		"abcdefghijabcdefghijkabcdefghijklabcdefghijklmabcdefghijklmn"
)

// WildCases returns the wildcard comparison battery: star and question
// handling, repeated-character backtracking, and adversarial many-star
// patterns.
func WildCases() []Case {
	return []Case{
		// First wildcard after a total match.
		{"Hi", "Hi*", true},

		// Mismatch after '*'.
		{"abc", "ab*d", false},

		// Repeating character sequences.
		{"abcccd", "*ccd", true},
		{"mississipissippi", "*issip*ss*", true},
		{"xxxx*zzzzzzzzy*f", "xxxx*zzy*fffff", false},
		{"xxxx*zzzzzzzzy*f", "xxx*zzy*f", true},
		{"xxxxzzzzzzzzyf", "xxxx*zzy*fffff", false},
		{"xxxxzzzzzzzzyf", "xxxx*zzy*f", true},
		{"xyxyxyzyxyz", "xy*z*xyz", true},
		{"mississippi", "*sip*", true},
		{"xyxyxyxyz", "xy*xyz", true},
		{"mississippi", "mi*sip*", true},
		{"ababac", "*abac*", true},
		{"aaazz", "a*zz*", true},
		{"a12b12", "*12*23", false},
		{"a12b12", "a12b", false},
		{"a12b12", "*12*12*", true},

		// Repeating text matching '*' and then '?', in that order.
		{"caaab", "*a?b", true},

		// '*' appearing in the subject as a literal.
		{"*", "*", true},
		{"a*abab", "a*b", true},
		{"a*r", "a*", true},
		{"a*ar", "a*aar", false},

		// Double wildcard scenarios.
		{"XYXYXYZYXYz", "XY*Z*XYz", true},
		{"missisSIPpi", "*SIP*", true},
		{"mississipPI", "*issip*PI", true},
		{"miSsissippi", "mi*sip*", true},
		{"miSsissippi", "mi*Sip*", false},
		{"abAbac", "*Abac*", true},
		{"aAazz", "a*zz*", true},
		{"A12b12", "*12*23", false},
		{"a12B12", "*12*12*", true},
		{"oWn", "*oWn*", true},

		// Completely tame (no wildcards).
		{"bLah", "bLah", true},
		{"bLah", "bLaH", false},

		// Simple mixed wildcards.
		{"a", "*?", true},
		{"ab", "*?", true},
		{"abc", "*?", true},

		// Mixed wildcards including false-positive coverage.
		{"a", "??", false},
		{"ab", "?*?", true},
		{"ab", "*?*?*", true},
		{"abc", "?**?*?", true},
		{"abc", "?**?*&?", false},
		{"abcd", "?b*??", true},
		{"abcd", "?a*??", false},
		{"abcd", "?**?c?", true},
		{"abcd", "?**?d?", false},
		{"abcde", "?*b*?*d*?", true},

		// Single-character matches.
		{"bLah", "bL?h", true},
		{"bLaaa", "bLa?", false},
		{"bLah", "bLa?", true},
		{"bLaH", "?Lah", false},
		{"bLaH", "?LaH", true},

		// Many-wildcard scenarios.
		{longRepeatA, "a*a*a*a*a*a*aa*aaa*a*a*b", true},
		{longMixed, "*a*b*ba*ca*a*aa*aaa*fa*ga*b*", true},
		{longMixed, "*a*b*ba*ca*a*x*aaa*fa*ga*b*", false},
		{longMixed, "*a*b*ba*ca*aaaa*fa*ga*gggg*b*", false},
		{longMixed, "*a*b*ba*ca*aaaa*fa*ga*ggg*b*", true},
		{"aaabbaabbaab", "*aabbaa*a*", true},
		{strings.Repeat("a*", 17), strings.Repeat("a*", 17), true},
		{strings.Repeat("a", 17), "*" + strings.Repeat("a*", 17), true},
		{strings.Repeat("a", 16), "*" + strings.Repeat("a*", 17), false},
		{starAbc, strings.Repeat("abc*", 17), false},
		{starAbc, strings.Repeat("abc*", 12), true},
		{"abc*abcd*abcd*abc*abcd", "abc*abc*abc*abc*abc", false},
		{"abc*abcd*abcd*abc*abcd*abcd*abc*abcd*abc*abc*abcd",
			"abc*abc*abc*abc*abc*abc*abc*abc*abc*abc*abcd", true},
		{"abc", "********a********b********c********", true},
		{"********a********b********c********", "abc", false},
		{"abc", "********a********b********b********", false},
		{"*abc*", "***a*b*c***", true},

		// Empty-input corners.
		{"", "?", false},
		{"", "*?", false},
		{"", "", true},
		{"a", "", false},
	}
}

// TameCases returns the battery with no '*' wildcards: literal equality,
// case sensitivity, and '?' handling only.
func TameCases() []Case {
	return []Case{
		// Last-character mismatch.
		{"abc", "abd", false},

		// Repeating character sequences.
		{"abcccd", "abcccd", true},
		{"mississipissippi", "mississipissippi", true},
		{"xxxxzzzzzzzzyf", "xxxxzzzzzzzzyfffff", false},
		{"xxxxzzzzzzzzyf", "xxxxzzzzzzzzyf", true},
		{"xxxxzzzzzzzzyf", "xxxxzzy.fffff", false},
		{"xyxyxyzyxyz", "xyxyxyzyxyz", true},
		{"mississippi", "mississippi", true},
		{"xyxyxyxyz", "xyxyxyxyz", true},
		{"m ississippi", "m ississippi", true},
		{"ababac", "ababac?", false},
		{"dababac", "ababac", false},
		{"aaazz", "aaazz", true},
		{"a12b12", "1212", false},
		{"a12b12", "a12b", false},
		{"a12b12", "a12b12", true},

		// A mix of cases.
		{"n", "n", true},
		{"aabab", "aabab", true},
		{"ar", "ar", true},
		{"aar", "aaar", false},
		{"XYXYXYZYXYz", "XYXYXYZYXYz", true},
		{"missisSIPpi", "missisSIPpi", true},
		{"mississipPI", "mississipPI", true},
		{"miSsissippi", "miSsissippi", true},
		{"miSsissippi", "miSsisSippi", false},
		{"abAbac", "abAbac", true},
		{"aAazz", "aAazz", true},
		{"A12b12", "A12b123", false},
		{"a12B12", "a12B12", true},
		{"oWn", "oWn", true},
		{"bLah", "bLah", true},
		{"bLah", "bLaH", false},

		// Single '?' cases.
		{"a", "a", true},
		{"ab", "a?", true},
		{"abc", "ab?", true},

		// Mixed '?' cases.
		{"a", "??", false},
		{"ab", "??", true},
		{"abc", "???", true},
		{"abcd", "????", true},
		{"abc", "????", false},
		{"abcd", "?b??", true},
		{"abcd", "?a??", false},
		{"abcd", "??c?", true},
		{"abcd", "??d?", false},
		{"abcde", "?b?d*?", true},

		// Longer strings.
		{longRepeatA, longRepeatA, true},
		{longMixed, longMixed, true},
		{longMixed, longMixedX, false},
		{longMixed, longMixedG, false},
		{"aaabbaabbaab", "aaabbaabbaab", true},
		{strings.Repeat("a", 34), strings.Repeat("a", 34), true},
		{strings.Repeat("a", 17), strings.Repeat("a", 17), true},
		{strings.Repeat("a", 16), strings.Repeat("a", 17), false},
		{tameAbc, strings.Repeat("abc", 17), false},
		{tameAbc, tameAbc, true},
		{"abcabcdabcdabcabcd", "abcabc?abcabcabc", false},
		{"abcabcdabcdabcabcdabcdabcabcdabcabcabcd",
			"abcabc?abc?abcabc?abc?abc?bc?abc?bc?bcd", true},
		{"?abc?", "?abc?", true},
	}
}

// EmptyCases returns the battery where one side or the other is empty.
// Only an empty or all-star pattern matches an empty subject, and no
// non-empty subject matches an empty pattern.
func EmptyCases() []Case {
	return []Case{
		// Empty subject.
		{"", "abd", false},
		{"", "abcccd", false},
		{"", "mississipissippi", false},
		{"", "xxxxzzzzzzzzyfffff", false},
		{"", "xxxxzzzzzzzzyf", false},
		{"", "xxxxzzy.fffff", false},
		{"", "xyxyxyzyxyz", false},
		{"", "mississippi", false},
		{"", "xyxyxyxyz", false},
		{"", "m ississippi", false},
		{"", "ababac*", false},
		{"", "ababac", false},
		{"", "aaazz", false},
		{"", "1212", false},
		{"", "a12b", false},
		{"", "a12b12", false},
		{"", "n", false},
		{"", "aabab", false},
		{"", "ar", false},
		{"", "aaar", false},
		{"", "XYXYXYZYXYz", false},
		{"", "missisSIPpi", false},
		{"", "mississipPI", false},
		{"", "miSsissippi", false},
		{"", "miSsisSippi", false},
		{"", "abAbac", false},
		{"", "aAazz", false},
		{"", "A12b123", false},
		{"", "a12B12", false},
		{"", "oWn", false},
		{"", "bLah", false},
		{"", "bLaH", false},

		// Both empty.
		{"", "", true},

		// Empty pattern.
		{"abc", "", false},
		{"abcccd", "", false},
		{"mississipissippi", "", false},
		{"xxxxzzzzzzzzyf", "", false},
		{"xyxyxyzyxyz", "", false},
		{"mississippi", "", false},
		{"xyxyxyxyz", "", false},
		{"m ississippi", "", false},
		{"ababac", "", false},
		{"dababac", "", false},
		{"aaazz", "", false},
		{"a12b12", "", false},
		{"n", "", false},
		{"aabab", "", false},
		{"ar", "", false},
		{"aar", "", false},
		{"XYXYXYZYXYz", "", false},
		{"missisSIPpi", "", false},
		{"mississipPI", "", false},
		{"miSsissippi", "", false},
		{"abAbac", "", false},
		{"aAazz", "", false},
		{"A12b12", "", false},
		{"a12B12", "", false},
		{"oWn", "", false},
		{"bLah", "", false},

		// Stars against the empty subject.
		{"", "*", true},
		{"", "**", true},
		{"", "*a", false},
	}
}

// UnicodeCases returns the battery for the rune realization: '?' must
// consume exactly one code point, and literals compare as whole runes.
// U+A72A and U+A73F share their low byte with '*' and '?' — rune equality
// must not degrade to byte equality.
func UnicodeCases() []Case {
	return []Case{
		// Multi-byte literals.
		{"日本語", "日本語", true},
		{"日本語", "日本", false},
		{"日本語", "本語", false},

		// '?' consumes one code point, never part of one.
		{"日本語", "日?語", true},
		{"日本語", "日??", true},
		{"Schloß", "Schlo?", true},
		{"Schloß", "Schlo??", false},
		{"héllo", "h?llo", true},

		// '*' over multi-byte runs.
		{"日本語", "*語", true},
		{"日本語", "日*", true},
		{"漢字テスト", "漢*ト", true},
		{"漢字テスト", "漢*な", false},
		{"🂡🚀♥🀄", "*♥🀄", true},
		{"🂡🚀♥🀄", "🂡*", true},
		{"🂡🚀♥🀄", "?🚀*", true},
		{"🂡🚀♥🀄", "🂡🚀♥", false},

		// Case sensitivity holds beyond ASCII.
		{"Ж", "ж", false},
		{"ΑΒΓ", "ΑΒΓ", true},
		{"ΑΒΓ", "αβγ", false},

		// Runes whose code points end in 0x2A ('*') and 0x3F ('?').
		{"Ꜫ", "*", true},
		{"Ꜫꜿ", "Ꜫ?", true},
		{"Ꜫꜿ", "?ꜿ", true},
		{"**", "Ꜫ?", false},
		{"??", "Ꜫꜿ", false},
		{"Ꜫꜿ", "**", true},

		// Empty-input corners hold for runes too.
		{"", "", true},
		{"", "*", true},
		{"語", "", false},
		{"", "?", false},
	}
}
