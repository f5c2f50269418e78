package analyzer

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

var numericRe = regexp.MustCompile(`\d+(?:\.\d+)?`)

// HexColor converts a CSS rgb()/rgba() string to #rrggbb from its first
// three numeric components; alpha is ignored. Strings with fewer than three
// components are returned unchanged.
func HexColor(css string) string {
	nums := numericRe.FindAllString(css, 3)
	if len(nums) < 3 {
		return css
	}
	var b strings.Builder
	b.WriteByte('#')
	for _, n := range nums {
		f, err := strconv.ParseFloat(n, 64)
		if err != nil {
			return css
		}
		v := int(f)
		if v > 255 {
			v = 255
		}
		fmt.Fprintf(&b, "%02x", v)
	}
	return b.String()
}

func isRGB(css string) bool {
	return strings.HasPrefix(css, "rgb")
}

// tally accumulates weight per key and ranks keys by weight, keeping
// first-seen order among equals.
type tally struct {
	order  []string
	weight map[string]float64
}

func newTally() *tally {
	return &tally{weight: make(map[string]float64)}
}

func (t *tally) add(key string, w float64) {
	if _, ok := t.weight[key]; !ok {
		t.order = append(t.order, key)
	}
	t.weight[key] += w
}

func (t *tally) ranked() []string {
	out := append([]string(nil), t.order...)
	sort.SliceStable(out, func(i, j int) bool {
		return t.weight[out[i]] > t.weight[out[j]]
	})
	return out
}

func top(list []string, n int) []string {
	if len(list) > n {
		return list[:n]
	}
	return list
}
