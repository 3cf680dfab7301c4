package corruptor

import "strings"

// Relax collapses every run of three identical lowercase letters into two.
func Relax(name string) string {
	for c := 'a'; c <= 'z'; c++ {
		triple := strings.Repeat(string(c), 3)
		if !strings.Contains(name, triple) {
			continue
		}
		double := triple[:2]
		for strings.Contains(name, triple) {
			name = strings.ReplaceAll(name, triple, double)
		}
	}
	return name
}
