package jsmath

import (
	"errors"
	"math"
	"math/big"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// NaN is the Number.NaN constant.
var NaN = math.NaN()

// maxFractionDigits bounds the digit count accepted by ToExponential.
const maxFractionDigits = 100

// ToNumber converts v to a number the way Number(value) does. Numbers are
// returned unchanged, booleans convert to 1 or 0, and strings are parsed.
// Anything else converts to NaN.
func ToNumber(v interface{}) float64 {
	switch v := v.(type) {
	case float64:
		return v
	case Number:
		return float64(v)
	case bool:
		return boolToNumber(v)
	case Boolean:
		return boolToNumber(bool(v))
	case string:
		return parseNumber(v)
	case String:
		return parseNumber(string(v))
	default:
		return math.NaN()
	}
}

func boolToNumber(b bool) float64 {
	if b {
		return 1
	}
	return 0
}

func parseNumber(s string) float64 {
	s = strings.TrimSpace(s)
	switch s {
	case "":
		return 0
	case "Infinity", "+Infinity":
		return math.Inf(1)
	case "-Infinity":
		return math.Inf(-1)
	}

	if len(s) > 2 && s[0] == '0' {
		radix := 0
		switch s[1] {
		case 'x', 'X':
			radix = 16
		case 'o', 'O':
			radix = 8
		case 'b', 'B':
			radix = 2
		}
		if radix != 0 {
			u, err := strconv.ParseUint(s[2:], radix, 64)
			if err != nil {
				return math.NaN()
			}
			return float64(u)
		}
	}

	// strconv also accepts spellings such as "inf", "nan" and hex
	// mantissas, none of which are numeric literals here.
	for _, c := range s {
		if !(c >= '0' && c <= '9' || c == '.' || c == 'e' || c == 'E' || c == '+' || c == '-') {
			return math.NaN()
		}
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return math.NaN()
	}
	return f
}

// FormatNumber renders x the way Number.prototype.toString does with no
// radix: shortest round-tripping digits, "0" for both zeros, and exponent
// notation for magnitudes outside [1e-7, 1e21).
func FormatNumber(x float64) string {
	switch {
	case math.IsNaN(x):
		return "NaN"
	case x == 0:
		return "0"
	case math.IsInf(x, 1):
		return "Infinity"
	case math.IsInf(x, -1):
		return "-Infinity"
	}

	sign := ""
	if x < 0 {
		sign, x = "-", -x
	}

	digits, exp := shortestDigits(x)
	k, n := len(digits), exp+1

	switch {
	case k <= n && n <= 21:
		return sign + digits + strings.Repeat("0", n-k)
	case 0 < n && n <= 21:
		return sign + digits[:n] + "." + digits[n:]
	case -6 < n && n <= 0:
		return sign + "0." + strings.Repeat("0", -n) + digits
	default:
		m := digits[:1]
		if k > 1 {
			m += "." + digits[1:]
		}
		return sign + m + "e" + exponentString(n-1)
	}
}

// shortestDigits returns the shortest decimal digit string that round-trips
// x, along with the decimal exponent of its first digit.
func shortestDigits(x float64) (string, int) {
	s := strconv.FormatFloat(x, 'e', -1, 64)
	i := strings.IndexByte(s, 'e')
	exp, _ := strconv.Atoi(s[i+1:])
	return strings.Replace(s[:i], ".", "", 1), exp
}

func exponentString(e int) string {
	if e < 0 {
		return "-" + strconv.Itoa(-e)
	}
	return "+" + strconv.Itoa(e)
}

// ToExponential renders v in exponential notation the way
// Number.prototype.toExponential does. Strings are converted with ToNumber
// first. With no fractionDigits the shortest round-tripping digits are used;
// otherwise the exact value of v is rounded half away from zero to
// fractionDigits digits after the point.
//
// The second result is false if v is neither a number nor a string, or if
// fractionDigits is outside [0, 100].
func ToExponential(v interface{}, fractionDigits ...int) (string, bool) {
	var x float64
	switch v.(type) {
	case float64, Number, string, String:
		x = ToNumber(v)
	default:
		return "", false
	}

	if !isFinite(x) {
		return FormatNumber(x), true
	}

	sign := ""
	if x < 0 {
		sign = "-"
	}
	x = math.Abs(x)

	if len(fractionDigits) == 0 {
		digits, exp := shortestDigits(x)
		m := digits[:1]
		if len(digits) > 1 {
			m += "." + digits[1:]
		}
		return sign + m + "e" + exponentString(exp), true
	}

	f := fractionDigits[0]
	if f < 0 || f > maxFractionDigits {
		return "", false
	}

	if x == 0 {
		m := "0"
		if f > 0 {
			m += "." + strings.Repeat("0", f)
		}
		return m + "e+0", true
	}

	d := exactDecimal(x)
	e := len(d.Coefficient().String()) - 1 + int(d.Exponent())
	r := d.Round(int32(f - e))
	if r.Cmp(decimal.New(1, int32(e+1))) >= 0 {
		e++
	}
	return sign + r.Shift(int32(-e)).StringFixed(int32(f)) + "e" + exponentString(e), true
}

// exactDecimal returns the exact decimal value of the finite, positive
// double x.
func exactDecimal(x float64) decimal.Decimal {
	frac, exp := math.Frexp(x)
	coef := big.NewInt(int64(frac * (1 << 53)))
	exp -= 53

	if exp >= 0 {
		return decimal.NewFromBigInt(coef.Lsh(coef, uint(exp)), 0)
	}

	// m·2^-k = m·5^k·10^-k
	five := new(big.Int).Exp(big.NewInt(5), big.NewInt(int64(-exp)), nil)
	return decimal.NewFromBigInt(coef.Mul(coef, five), int32(exp))
}
