// Package metrics exposes Prometheus collectors that report corruptor activity.
package metrics

import (
	"sort"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

const (
	namespace = "namecorruptor"
	subsystem = "corruptor"
)

// Metrics implements corruptor.Observer on top of Prometheus counters.
type Metrics struct {
	probes      prometheus.Counter
	corruptions *prometheus.CounterVec
	exhausted   prometheus.Counter
}

// MustNewMetrics constructs a Metrics instance using the provided registerer.
// Registration errors panic, mirroring promauto.
func MustNewMetrics(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	m := &Metrics{
		probes: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "probes_total",
			Help:      "Patterns tried against a name.",
		}),
		corruptions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "corruptions_total",
			Help:      "Successful substitutions by pattern index.",
		}, []string{"pattern"}),
		exhausted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "exhausted_total",
			Help:      "Searches where no pattern changed the name.",
		}),
	}
	reg.MustRegister(m.probes, m.corruptions, m.exhausted)
	return m
}

func (m *Metrics) Probed(int) {
	m.probes.Inc()
}

func (m *Metrics) Corrupted(index int, _, _ string) {
	m.corruptions.WithLabelValues(strconv.Itoa(index)).Inc()
}

func (m *Metrics) Exhausted(string) {
	m.exhausted.Inc()
}

// Summary is a point-in-time reading of the corruptor counters.
type Summary struct {
	Probes      int
	Corruptions int
	Exhausted   int
	// ByPattern maps pattern index to successful substitutions.
	ByPattern map[int]int
}

// TopPatterns returns pattern indexes ordered by descending use, ties by index.
func (s Summary) TopPatterns() []int {
	indexes := make([]int, 0, len(s.ByPattern))
	for idx := range s.ByPattern {
		indexes = append(indexes, idx)
	}
	sort.Slice(indexes, func(i, j int) bool {
		a, b := indexes[i], indexes[j]
		if s.ByPattern[a] != s.ByPattern[b] {
			return s.ByPattern[a] > s.ByPattern[b]
		}
		return a < b
	})
	return indexes
}

// Snapshot gathers the corruptor counters from g.
func Snapshot(g prometheus.Gatherer) (Summary, error) {
	summary := Summary{ByPattern: map[int]int{}}
	families, err := g.Gather()
	if err != nil {
		return summary, err
	}

	prefix := namespace + "_" + subsystem + "_"
	for _, family := range families {
		switch family.GetName() {
		case prefix + "probes_total":
			summary.Probes = sumCounters(family.GetMetric())
		case prefix + "exhausted_total":
			summary.Exhausted = sumCounters(family.GetMetric())
		case prefix + "corruptions_total":
			for _, metric := range family.GetMetric() {
				count := int(metric.GetCounter().GetValue())
				summary.Corruptions += count
				for _, label := range metric.GetLabel() {
					if label.GetName() != "pattern" {
						continue
					}
					if idx, err := strconv.Atoi(label.GetValue()); err == nil {
						summary.ByPattern[idx] += count
					}
				}
			}
		}
	}
	return summary, nil
}

func sumCounters(metrics []*dto.Metric) int {
	total := 0
	for _, metric := range metrics {
		total += int(metric.GetCounter().GetValue())
	}
	return total
}
