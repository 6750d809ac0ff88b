// metrics.go --  This file is part of goHF project.
// Mirzaeva Irina, 2024
//
//	goHF is distributed in the hope that it will be useful,
//	but WITHOUT ANY WARRANTY; without even the implied warranty
//	of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
//	See the GNU General Public License for more details.
//
//	You should have received a copy of the GNU General Public License
//	along with this program.  If not, see http://www.gnu.org/licenses/
//
// ------------------------------------------------

// Package metrics instruments building and refreshing Coulomb integral
// tables with prometheus collectors.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Table collects fill/update statistics. A nil *Table is valid and records
// nothing.
type Table struct {
	evaluations *prometheus.CounterVec
	entries     prometheus.Gauge
	values      prometheus.Gauge
	duration    *prometheus.HistogramVec
}

// NewTable registers the table collectors with reg. Each table that should
// be reported separately needs its own registry or a distinct namespace.
func NewTable(reg prometheus.Registerer, namespace string) *Table {
	f := promauto.With(reg)
	return &Table{
		evaluations: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "qk",
			Name:      "evaluations_total",
			Help:      "Number of base integrals computed, by operation.",
		}, []string{"op"}),
		entries: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "qk",
			Name:      "entries",
			Help:      "Number of canonical quadruples stored.",
		}),
		values: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "qk",
			Name:      "values",
			Help:      "Number of stored integrals over all multipolarities.",
		}),
		duration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "qk",
			Name:      "duration_seconds",
			Help:      "Wall time of fill and update passes.",
			Buckets:   prometheus.ExponentialBuckets(0.001, 4, 10),
		}, []string{"op"}),
	}
}

// Observe records one pass of op ("fill", "update", ...).
func (t *Table) Observe(op string, evaluations int, took time.Duration) {
	if t == nil {
		return
	}
	t.evaluations.WithLabelValues(op).Add(float64(evaluations))
	t.duration.WithLabelValues(op).Observe(took.Seconds())
}

// Size records the current table size.
func (t *Table) Size(entries, values int) {
	if t == nil {
		return
	}
	t.entries.Set(float64(entries))
	t.values.Set(float64(values))
}

// Entries is the gauge of stored canonical quadruples.
func (t *Table) Entries() prometheus.Gauge { return t.entries }

// Values is the gauge of stored integrals.
func (t *Table) Values() prometheus.Gauge { return t.values }

// Evaluations is the evaluation counter of op.
func (t *Table) Evaluations(op string) prometheus.Counter {
	return t.evaluations.WithLabelValues(op)
}
