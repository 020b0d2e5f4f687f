// Package telemetry owns the per-turn observability surface: prometheus
// instruments and the structured LLM call trace.
package telemetry

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	turnsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "concierge",
		Name:      "turns_total",
		Help:      "Turns handled, by channel and outcome.",
	}, []string{"channel", "outcome"})

	turnDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "concierge",
		Name:      "turn_duration_seconds",
		Help:      "End-to-end turn latency.",
		Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
	}, []string{"channel"})

	guardrailVerdicts = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "concierge",
		Name:      "guardrail_verdicts_total",
		Help:      "Final guardrail verdicts, by action and block reason.",
	}, []string{"action", "reason"})

	guardrailCorrections = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "concierge",
		Name:      "guardrail_corrections_total",
		Help:      "Correction re-prompts requested, by correction type.",
	}, []string{"type"})

	toolOutcomes = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "concierge",
		Name:      "tool_outcomes_total",
		Help:      "Tool invocations, by tool and outcome.",
	}, []string{"tool", "outcome"})

	llmCalls = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "concierge",
		Name:      "llm_calls_total",
		Help:      "Model invocations and deterministic bypasses, by reason.",
	}, []string{"called", "reason"})

	llmDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "concierge",
		Name:      "llm_call_duration_seconds",
		Help:      "Latency of a single model round trip.",
		Buckets:   []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
	})

	llmTokens = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "concierge",
		Name:      "llm_tokens_total",
		Help:      "Tokens consumed, by direction.",
	}, []string{"direction"})

	sessionLocks = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "concierge",
		Name:      "session_locks_total",
		Help:      "Sessions locked, by reason.",
	}, []string{"reason"})

	verificationResults = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "concierge",
		Name:      "verification_attempts_total",
		Help:      "Identity verification attempts, by result.",
	}, []string{"result"})
)

// ObserveTurn records the top-level counters for one finished turn.
func ObserveTurn(channel, outcome string, elapsed time.Duration) {
	turnsTotal.WithLabelValues(channel, outcome).Inc()
	turnDuration.WithLabelValues(channel).Observe(elapsed.Seconds())
}

// ObserveGuardrail records the final verdict of the output chain.
func ObserveGuardrail(action, reason string) {
	if reason == "" {
		reason = "none"
	}
	guardrailVerdicts.WithLabelValues(action, reason).Inc()
}

// ObserveCorrection records one correction re-prompt.
func ObserveCorrection(correctionType string) {
	guardrailCorrections.WithLabelValues(correctionType).Inc()
}

// ObserveTool records one tool invocation outcome.
func ObserveTool(tool, outcome string) {
	toolOutcomes.WithLabelValues(tool, outcome).Inc()
}

// ObserveLLMCall records whether the model ran and why, plus latency and
// token counts when it did.
func ObserveLLMCall(called bool, reason string, elapsed time.Duration, inputTokens, outputTokens int) {
	calledLabel := "false"
	if called {
		calledLabel = "true"
		llmDuration.Observe(elapsed.Seconds())
		llmTokens.WithLabelValues("input").Add(float64(inputTokens))
		llmTokens.WithLabelValues("output").Add(float64(outputTokens))
	}
	llmCalls.WithLabelValues(calledLabel, reason).Inc()
}

// ObserveLock records a session lock.
func ObserveLock(reason string) {
	sessionLocks.WithLabelValues(reason).Inc()
}

// ObserveVerification records one verification attempt result
// (passed, failed, locked).
func ObserveVerification(result string) {
	verificationResults.WithLabelValues(result).Inc()
}
