package extract

import "regexp"

// The five category grammars. All are RE2-compatible as written; the
// credential matcher uses the capture-the-whole-assignment form, so no
// lookbehind is needed anywhere.
var (
	// Street addresses: qualifier, street words, 1-5 digit number,
	// 5-digit postal code, town words, 2-letter region code.
	addressPattern = regexp.MustCompile(`(via|viale|piazza|strada)(\s[A-Za-z]+\.?)+\s\d{1,5}[\s,]{1,2}\d{5}\s(\w+\.?\s)+[A-Za-z]{2}`)

	// Email addresses: dot-separated local part over the full RFC
	// symbol set, then a dotted domain whose labels are alnum/hyphen.
	emailPattern = regexp.MustCompile("([\\w!#$%&'*+\\-/=?^_`{|}~]+\\.)*(\\.?[\\w!#$%&'*+\\-/=?^_`{|}~]+)+@(\\w([\\w-]+\\.))+([\\w-]+\\.)*([\\w-]{1,}\\w)")

	// Telephone numbers: optional +country code, 3-3-4 grouping with
	// optional separators. Purely syntactic.
	telephonePattern = regexp.MustCompile(`(\+\d{1,2}\s)?\(?\d{3}\)?[\s-]?\d{3}[\s-]?\d{4}`)

	// Credential-like assignments: an identifier containing key,
	// password, pwd, secret or token, then = or :, then the rest of
	// the line. Broad and noisy on purpose, the remainder of the line
	// preserves context around the value.
	tokenPattern = regexp.MustCompile(`(["']?[\w-]*(?i:key|password|pwd|secret|token)[\w-]*["']?\s*[=:]).*`)

	// URLs: any alphabetic scheme, dotted hostname or dotted-quad
	// host, optional port and path segments.
	urlPattern = regexp.MustCompile(`[A-Za-z]+://((\w[\w-]*\.)*\w+|([0-2]?\d{1,2}\.){3}[0-2]?\d{1,2})(:[0-6]?\d{1,4})?(/[\w?&=%.£$]+)*`)
)
