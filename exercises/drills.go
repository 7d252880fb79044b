package exercises

import (
	"errors"
	"fmt"
	"math/rand"
	"slices"
	"strconv"
	"strings"
)

// ErrBadRange is returned when a random range is empty (lo ≥ hi) or a
// requested count is negative.
var ErrBadRange = errors.New("exercises: invalid range")

// yesNo is the lookup-table form of the boolean drill.
var yesNo = map[bool]string{
	true:  "Yes",
	false: "No",
}

// YesNo maps true to "Yes" and false to "No".
func YesNo(b bool) string {
	return yesNo[b]
}

// Negative returns -|v|. Values that are already negative come back unchanged.
//
//	39 → -39
//	-7 → -7
func Negative(v int) int {
	if v < 0 {
		return v
	}
	return -v
}

// SortedCopy returns vals sorted ascending. The input is not modified.
func SortedCopy(vals []int) []int {
	out := slices.Clone(vals)
	slices.Sort(out)
	return out
}

// ArizonaCities is the "City, ST" fixture used by the filtering drill.
var ArizonaCities = []string{
	"New York, NY",
	"Chattanooga, TN",
	"Hobart, MN",
	"Kingman, AZ",
	"Yachats, OR",
	"Bisbee, AZ",
	"Muskogee, OK",
	"Tucson, AZ",
}

// FilterByState keeps the "City, ST" entries whose state code equals state.
// Order is preserved; the comparison is on the text after the last comma,
// trimmed of spaces.
func FilterByState(cities []string, state string) []string {
	out := make([]string, 0, len(cities))
	for _, c := range cities {
		i := strings.LastIndexByte(c, ',')
		if i < 0 {
			continue
		}
		if strings.TrimSpace(c[i+1:]) == state {
			out = append(out, c)
		}
	}
	return out
}

// Multiply is the repaired "this code doesn't work" drill.
func Multiply(a, b int) int {
	return a * b
}

// FizzBuzz returns the words for 1..n:
// "FizzBuzz" for multiples of 15, "Fizz" for 3, "Buzz" for 5, else the number.
// n ≤ 0 yields an empty slice.
func FizzBuzz(n int) []string {
	if n <= 0 {
		return []string{}
	}
	out := make([]string, n)
	for v := 1; v <= n; v++ {
		switch {
		case v%15 == 0:
			out[v-1] = "FizzBuzz"
		case v%3 == 0:
			out[v-1] = "Fizz"
		case v%5 == 0:
			out[v-1] = "Buzz"
		default:
			out[v-1] = strconv.Itoa(v)
		}
	}
	return out
}

// RandomBool draws a fair coin from r.
func RandomBool(r *rand.Rand) bool {
	return r.Intn(2) == 1
}

// RandomInt draws uniformly from [lo, hi).
func RandomInt(r *rand.Rand, lo, hi int) (int, error) {
	if lo >= hi {
		return 0, fmt.Errorf("%w: [%d, %d)", ErrBadRange, lo, hi)
	}
	return lo + r.Intn(hi-lo), nil
}

// RandomInts draws n values uniformly from [lo, hi).
func RandomInts(r *rand.Rand, lo, hi, n int) ([]int, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: count %d", ErrBadRange, n)
	}
	if lo >= hi {
		return nil, fmt.Errorf("%w: [%d, %d)", ErrBadRange, lo, hi)
	}
	out := make([]int, n)
	for i := range out {
		out[i] = lo + r.Intn(hi-lo)
	}
	return out, nil
}
