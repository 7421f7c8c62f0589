// Package metrics exposes Prometheus counters describing executed commands.
package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/viant/shellsim/model"
	"github.com/viant/shellsim/model/types"
)

var (
	commandsMetric = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "shellsim_commands_total",
		Help: "Total number of simulated command lines by category, result kind and exit code.",
	}, []string{"category", "kind", "exit_code"})
	rejectionsMetric = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "shellsim_policy_rejections_total",
		Help: "Total number of commands rejected by policy before simulation.",
	}, []string{"category", "command"})
	panicsMetric = promauto.NewCounter(prometheus.CounterOpts{
		Name: "shellsim_simulator_panics_total",
		Help: "Total number of simulator panics recovered by the dispatcher.",
	})
)

// Observe records an executed command.
func Observe(category types.Category, result *model.Result) {
	if result == nil {
		return
	}
	commandsMetric.WithLabelValues(category.String(), string(result.Kind), strconv.Itoa(result.ExitCode)).Inc()
}

// Rejected records a policy rejection.
func Rejected(category types.Category, command string) {
	rejectionsMetric.WithLabelValues(category.String(), command).Inc()
}

// Recovered records a recovered simulator panic.
func Recovered() {
	panicsMetric.Inc()
}
