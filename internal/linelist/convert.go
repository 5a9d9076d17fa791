package linelist

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}

	return false
}

// atoi parses the longest leading decimal integer of s, after optional
// whitespace and sign. Text without one yields 0; overflow saturates.
func atoi(s string) int {
	i := 0
	for i < len(s) && isSpace(s[i]) {
		i++
	}

	negative := false
	if i < len(s) && (s[i] == '-' || s[i] == '+') {
		negative = s[i] == '-'
		i++
	}

	n := 0
	for ; i < len(s) && s[i] >= '0' && s[i] <= '9'; i++ {
		d := int(s[i] - '0')

		if negative {
			if n < (math.MinInt+d)/10 {
				return math.MinInt
			}

			n = n*10 - d
		} else {
			if n > (math.MaxInt-d)/10 {
				return math.MaxInt
			}

			n = n*10 + d
		}
	}

	return n
}

// Ints converts every line to an integer, in list order, using its numeric prefix.
// Lines without one convert to 0.
func (l *List) Ints() []int {
	nums := make([]int, 0, l.Len())
	if l == nil {
		return nums
	}

	for _, ln := range l.lines {
		nums = append(nums, atoi(ln.text))
	}

	return nums
}

// StrictInts is like Ints but requires every line to be a whole integer.
func (l *List) StrictInts() ([]int, error) {
	nums := make([]int, 0, l.Len())
	if l == nil {
		return nums, nil
	}

	for _, ln := range l.lines {
		n, err := strconv.Atoi(strings.TrimSpace(ln.text))
		if err != nil {
			return nil, NewErrFormat(l.source, ln.number, fmt.Sprintf("not an integer: %q", ln.text))
		}

		nums = append(nums, n)
	}

	return nums, nil
}
