// Package rules supplies leaf validators: pipe Actions that check a
// type-checked value against a single constraint and either pass it
// through unchanged or fail with one Issue. Trim, ToLowerCase and
// ToUpperCase instead return a normalized value and never fail; And and Or
// combine other actions and can return several issues.
package rules

import (
	"math/big"
	"net/mail"
	"net/url"
	"regexp"
	"strings"

	"github.com/jussisaurio/valibot"
	"github.com/jussisaurio/valibot/i18n"
)

func issue(info valibot.ValidateInfo, validation string, input any) valibot.Issues {
	return valibot.Issues{valibot.NewIssue(info, validation, i18n.T(validation, nil), input)}
}

// And runs every action and concatenates every Issue; it only short-circuits
// when info.AbortPipeEarly is set.
func And[T any](actions ...valibot.Action[T]) valibot.Action[T] {
	return func(v T, info valibot.ValidateInfo) valibot.Result[T] {
		var out valibot.Issues
		for _, a := range actions {
			res := a(v, info)
			if !res.IsOk() {
				out = valibot.AppendIssues(out, res.Issues()...)
				if info.AbortPipeEarly {
					return valibot.Err[T](out)
				}
			}
		}
		if len(out) > 0 {
			return valibot.Err[T](out)
		}
		return valibot.Ok(v)
	}
}

// Or succeeds if any action succeeds; on total failure it returns the
// shortest branch's issues.
func Or[T any](actions ...valibot.Action[T]) valibot.Action[T] {
	return func(v T, info valibot.ValidateInfo) valibot.Result[T] {
		var best valibot.Issues
		found := false
		for _, a := range actions {
			res := a(v, info)
			if res.IsOk() {
				return res
			}
			if !found || len(res.Issues()) < len(best) {
				best = res.Issues()
				found = true
			}
		}
		if found {
			return valibot.Err[T](best)
		}
		return valibot.Ok(v)
	}
}

// ---- string rules ----

// MinLength rejects strings shorter than n runes.
func MinLength(n int) valibot.Action[string] {
	return func(v string, info valibot.ValidateInfo) valibot.Result[string] {
		if len([]rune(v)) < n {
			return valibot.Err[string](issue(info, valibot.ValidationMinLength, v))
		}
		return valibot.Ok(v)
	}
}

// MaxLength rejects strings longer than n runes.
func MaxLength(n int) valibot.Action[string] {
	return func(v string, info valibot.ValidateInfo) valibot.Result[string] {
		if len([]rune(v)) > n {
			return valibot.Err[string](issue(info, valibot.ValidationMaxLength, v))
		}
		return valibot.Ok(v)
	}
}

// Length rejects strings whose rune length is not exactly n.
func Length(n int) valibot.Action[string] {
	return func(v string, info valibot.ValidateInfo) valibot.Result[string] {
		if len([]rune(v)) != n {
			return valibot.Err[string](issue(info, valibot.ValidationLength, v))
		}
		return valibot.Ok(v)
	}
}

// Pattern rejects strings that do not match re.
func Pattern(re *regexp.Regexp) valibot.Action[string] {
	return func(v string, info valibot.ValidateInfo) valibot.Result[string] {
		if !re.MatchString(v) {
			return valibot.Err[string](issue(info, valibot.ValidationPattern, v))
		}
		return valibot.Ok(v)
	}
}

// Email rejects strings that are not a syntactically valid RFC 5322 address.
func Email() valibot.Action[string] {
	return func(v string, info valibot.ValidateInfo) valibot.Result[string] {
		if _, err := mail.ParseAddress(v); err != nil {
			return valibot.Err[string](issue(info, valibot.ValidationEmail, v))
		}
		return valibot.Ok(v)
	}
}

// URL rejects strings that are not a syntactically valid absolute URL.
func URL() valibot.Action[string] {
	return func(v string, info valibot.ValidateInfo) valibot.Result[string] {
		u, err := url.Parse(v)
		if err != nil || !u.IsAbs() {
			return valibot.Err[string](issue(info, valibot.ValidationURL, v))
		}
		return valibot.Ok(v)
	}
}

var uuidPattern = regexp.MustCompile(`^[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}$`)

// UUID rejects strings that are not a canonical 8-4-4-4-12 hex UUID.
func UUID() valibot.Action[string] {
	return func(v string, info valibot.ValidateInfo) valibot.Result[string] {
		if !uuidPattern.MatchString(v) {
			return valibot.Err[string](issue(info, valibot.ValidationUUID, v))
		}
		return valibot.Ok(v)
	}
}

// Emoji rejects strings containing no emoji-range rune.
func Emoji() valibot.Action[string] {
	return func(v string, info valibot.ValidateInfo) valibot.Result[string] {
		for _, r := range v {
			if isEmojiRune(r) {
				return valibot.Ok(v)
			}
		}
		return valibot.Err[string](issue(info, valibot.ValidationEmoji, v))
	}
}

func isEmojiRune(r rune) bool {
	switch {
	case r >= 0x1F300 && r <= 0x1FAFF:
		return true
	case r >= 0x2600 && r <= 0x27BF:
		return true
	case r >= 0x1F1E6 && r <= 0x1F1FF:
		return true
	default:
		return false
	}
}

// StartsWith rejects strings not prefixed by prefix.
func StartsWith(prefix string) valibot.Action[string] {
	return func(v string, info valibot.ValidateInfo) valibot.Result[string] {
		if !strings.HasPrefix(v, prefix) {
			return valibot.Err[string](issue(info, valibot.ValidationStartsWith, v))
		}
		return valibot.Ok(v)
	}
}

// EndsWith rejects strings not suffixed by suffix.
func EndsWith(suffix string) valibot.Action[string] {
	return func(v string, info valibot.ValidateInfo) valibot.Result[string] {
		if !strings.HasSuffix(v, suffix) {
			return valibot.Err[string](issue(info, valibot.ValidationEndsWith, v))
		}
		return valibot.Ok(v)
	}
}

// Includes rejects strings not containing sub.
func Includes(sub string) valibot.Action[string] {
	return func(v string, info valibot.ValidateInfo) valibot.Result[string] {
		if !strings.Contains(v, sub) {
			return valibot.Err[string](issue(info, valibot.ValidationIncludes, v))
		}
		return valibot.Ok(v)
	}
}

// Trim normalizes v by trimming leading/trailing whitespace. Unlike the
// other string rules it always succeeds; it exists to run in the same pipe
// slot as the checks above.
func Trim() valibot.Action[string] {
	return func(v string, info valibot.ValidateInfo) valibot.Result[string] {
		return valibot.Ok(strings.TrimSpace(v))
	}
}

// ToLowerCase lower-cases v.
func ToLowerCase() valibot.Action[string] {
	return func(v string, info valibot.ValidateInfo) valibot.Result[string] {
		return valibot.Ok(strings.ToLower(v))
	}
}

// ToUpperCase upper-cases v.
func ToUpperCase() valibot.Action[string] {
	return func(v string, info valibot.ValidateInfo) valibot.Result[string] {
		return valibot.Ok(strings.ToUpper(v))
	}
}

// ---- numeric rules ----

// Min rejects numbers below n.
func Min(n float64) valibot.Action[float64] {
	return func(v float64, info valibot.ValidateInfo) valibot.Result[float64] {
		if v < n {
			return valibot.Err[float64](issue(info, valibot.ValidationMinValue, v))
		}
		return valibot.Ok(v)
	}
}

// Max rejects numbers above n.
func Max(n float64) valibot.Action[float64] {
	return func(v float64, info valibot.ValidateInfo) valibot.Result[float64] {
		if v > n {
			return valibot.Err[float64](issue(info, valibot.ValidationMaxValue, v))
		}
		return valibot.Ok(v)
	}
}

// Integer rejects numbers with a non-zero fractional part.
func Integer() valibot.Action[float64] {
	return func(v float64, info valibot.ValidateInfo) valibot.Result[float64] {
		if v != float64(int64(v)) {
			return valibot.Err[float64](issue(info, valibot.ValidationInteger, v))
		}
		return valibot.Ok(v)
	}
}

// MultipleOf rejects numbers that are not an exact multiple of step.
func MultipleOf(step float64) valibot.Action[float64] {
	return func(v float64, info valibot.ValidateInfo) valibot.Result[float64] {
		if step == 0 {
			return valibot.Ok(v)
		}
		q := v / step
		if q != float64(int64(q)) {
			return valibot.Err[float64](issue(info, valibot.ValidationMultipleOf, v))
		}
		return valibot.Ok(v)
	}
}

// Finite rejects Inf and NaN.
func Finite() valibot.Action[float64] {
	return func(v float64, info valibot.ValidateInfo) valibot.Result[float64] {
		if v != v || v > 1.7976931348623157e+308 || v < -1.7976931348623157e+308 {
			return valibot.Err[float64](issue(info, valibot.ValidationFinite, v))
		}
		return valibot.Ok(v)
	}
}

// Luhn rejects numeric strings failing the Luhn mod-10 checksum, the
// standard check for card-like identifiers.
func Luhn() valibot.Action[string] {
	return func(v string, info valibot.ValidateInfo) valibot.Result[string] {
		if !luhnValid(v) {
			return valibot.Err[string](issue(info, valibot.ValidationLuhn, v))
		}
		return valibot.Ok(v)
	}
}

func luhnValid(s string) bool {
	sum := 0
	alt := false
	for i := len(s) - 1; i >= 0; i-- {
		c := s[i]
		if c < '0' || c > '9' {
			return false
		}
		d := int(c - '0')
		if alt {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		sum += d
		alt = !alt
	}
	return len(s) > 0 && sum%10 == 0
}

// ---- bigint rules ----

// MinBig rejects *big.Int values below n.
func MinBig(n *big.Int) valibot.Action[*big.Int] {
	return func(v *big.Int, info valibot.ValidateInfo) valibot.Result[*big.Int] {
		if v.Cmp(n) < 0 {
			return valibot.Err[*big.Int](issue(info, valibot.ValidationMinValue, v))
		}
		return valibot.Ok(v)
	}
}

// MaxBig rejects *big.Int values above n.
func MaxBig(n *big.Int) valibot.Action[*big.Int] {
	return func(v *big.Int, info valibot.ValidateInfo) valibot.Result[*big.Int] {
		if v.Cmp(n) > 0 {
			return valibot.Err[*big.Int](issue(info, valibot.ValidationMaxValue, v))
		}
		return valibot.Ok(v)
	}
}

// ---- generic rules ----

// Custom wraps an arbitrary predicate as an Action, failing with
// ValidationCustom when pred returns false.
func Custom[T any](pred func(T) bool) valibot.Action[T] {
	return func(v T, info valibot.ValidateInfo) valibot.Result[T] {
		if !pred(v) {
			return valibot.Err[T](issue(info, valibot.ValidationCustom, v))
		}
		return valibot.Ok(v)
	}
}
