package tools

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/desteklab/concierge/pkg/catalog"
	"github.com/desteklab/concierge/pkg/models"
	"github.com/desteklab/concierge/pkg/outcome"
)

// InvocationStore is the idempotency record behind the executor. Lookup
// returns (nil, nil) when no record exists; Record returns the winning
// result when a concurrent insert on the same key got there first.
type InvocationStore interface {
	Lookup(ctx context.Context, sessionID, turnID, toolName, argsHash string) (*models.ToolResult, error)
	Record(ctx context.Context, sessionID, turnID, toolName, argsHash string, result *models.ToolResult) (*models.ToolResult, error)
}

// Executor runs tools with argument validation, an idempotency record,
// bounded retries on infrastructure failures, and a per-call timeout.
type Executor struct {
	registry   *Registry
	store      InvocationStore
	catalog    *catalog.Catalog
	timeout    time.Duration
	maxRetries int

	schemas map[string]*jsonschema.Schema
}

// NewExecutor creates an executor. Tool schemas are compiled eagerly so
// a malformed schema fails at startup, not mid-turn.
func NewExecutor(registry *Registry, store InvocationStore, cat *catalog.Catalog, timeout time.Duration, maxRetries int) (*Executor, error) {
	e := &Executor{
		registry:   registry,
		store:      store,
		catalog:    cat,
		timeout:    timeout,
		maxRetries: maxRetries,
		schemas:    make(map[string]*jsonschema.Schema),
	}

	registry.mu.RLock()
	defer registry.mu.RUnlock()
	for name, tool := range registry.tools {
		def := tool.Definition()
		if def.Parameters == nil {
			continue
		}
		compiled, err := compileSchema(name, def.Parameters)
		if err != nil {
			return nil, fmt.Errorf("tool %q: %w", name, err)
		}
		e.schemas[name] = compiled
	}
	return e, nil
}

func compileSchema(name string, parameters map[string]any) (*jsonschema.Schema, error) {
	// Round-trip through JSON so the compiler sees plain decoded values.
	raw, err := json.Marshal(parameters)
	if err != nil {
		return nil, fmt.Errorf("failed to encode schema: %w", err)
	}
	doc, err := jsonschema.UnmarshalJSON(strings.NewReader(string(raw)))
	if err != nil {
		return nil, fmt.Errorf("failed to decode schema: %w", err)
	}
	compiler := jsonschema.NewCompiler()
	resource := name + ".schema.json"
	if err := compiler.AddResource(resource, doc); err != nil {
		return nil, fmt.Errorf("failed to add schema resource: %w", err)
	}
	compiled, err := compiler.Compile(resource)
	if err != nil {
		return nil, fmt.Errorf("failed to compile schema: %w", err)
	}
	return compiled, nil
}

// Execute runs one tool call end to end. The returned result always
// carries a valid outcome and a non-empty message; the error return is
// reserved for executor-level failures (unknown tool, broken storage).
func (e *Executor) Execute(ctx context.Context, name string, inv *Invocation) (*models.ToolResult, error) {
	tool, ok := e.registry.Get(name)
	if !ok {
		return nil, fmt.Errorf("unknown tool %q", name)
	}

	inv.Args = models.CanonicalizeArgs(inv.Args)

	// 1. Validate arguments before anything runs or is recorded.
	if result := e.validate(name, inv); result != nil {
		return result, nil
	}

	// 2. Idempotency: a replayed (session, turn, tool, args) returns the
	// recorded result without re-executing.
	argsHash := hashArgs(inv.Args)
	if cached, err := e.store.Lookup(ctx, inv.SessionID, inv.TurnID, name, argsHash); err != nil {
		return nil, err
	} else if cached != nil {
		slog.Info("Tool call replayed from idempotency record",
			"tool", name, "session_id", inv.SessionID, "turn_id", inv.TurnID)
		return cached, nil
	}

	// 3. Run with retries. Only INFRA_ERROR retries; domain outcomes are
	// final on the first attempt.
	result := e.runWithRetries(ctx, tool, inv)

	e.forceMessage(result, inv)

	// 4. Record the invocation. A constraint race means a concurrent
	// replay beat us; its recorded result wins.
	if recorded, err := e.store.Record(ctx, inv.SessionID, inv.TurnID, name, argsHash, result); err != nil {
		slog.Error("Failed to record tool invocation", "tool", name, "error", err)
	} else if recorded != nil {
		return recorded, nil
	}

	return result, nil
}

func (e *Executor) validate(name string, inv *Invocation) *models.ToolResult {
	schema, ok := e.schemas[name]
	if !ok {
		return nil
	}
	// Round-trip so numbers and nested values match decoded-JSON form.
	raw, err := json.Marshal(inv.Args)
	if err != nil {
		return e.failureResult(name, inv, outcome.InfraError)
	}
	doc, err := jsonschema.UnmarshalJSON(strings.NewReader(string(raw)))
	if err != nil {
		return e.failureResult(name, inv, outcome.InfraError)
	}
	if err := schema.Validate(doc); err != nil {
		result := models.NewToolResult(name, outcome.ValidationError,
			e.catalog.Get(inv.BusinessID, catalog.KeyNeedIdentifier, inv.Language))
		result.Data = map[string]any{"field": offendingField(err)}
		return result
	}
	return nil
}

func (e *Executor) runWithRetries(ctx context.Context, tool Tool, inv *Invocation) *models.ToolResult {
	name := tool.Definition().Name

	var result *models.ToolResult
	operation := func() error {
		callCtx, cancel := context.WithTimeout(ctx, e.timeout)
		defer cancel()

		r, err := tool.Execute(callCtx, inv)
		if err != nil {
			slog.Warn("Tool execution failed", "tool", name, "error", err)
			result = e.failureResult(name, inv, outcome.InfraError)
			return err
		}
		if r == nil {
			result = e.failureResult(name, inv, outcome.InfraError)
			return nil
		}
		if !r.Outcome.IsValid() {
			r.Outcome = outcome.Normalize(string(r.Outcome))
			r.Success = r.Outcome == outcome.OK
		}
		result = r
		if r.Outcome == outcome.InfraError {
			return fmt.Errorf("tool %q reported infrastructure failure", name)
		}
		return nil
	}

	policy := backoff.WithContext(
		backoff.WithMaxRetries(backoff.NewExponentialBackOff(), uint64(e.maxRetries)), ctx)
	if err := backoff.Retry(operation, policy); err != nil && result == nil {
		result = e.failureResult(name, inv, outcome.InfraError)
	}
	return result
}

func (e *Executor) forceMessage(result *models.ToolResult, inv *Invocation) {
	if result.Message != "" {
		return
	}
	key := catalog.KeySafeFallback
	if result.Outcome == outcome.InfraError {
		key = catalog.KeyToolFailure
	}
	result.Message = e.catalog.Get(inv.BusinessID, key, inv.Language)
}

func (e *Executor) failureResult(name string, inv *Invocation, o outcome.Outcome) *models.ToolResult {
	return models.NewToolResult(name, o,
		e.catalog.Get(inv.BusinessID, catalog.KeyToolFailure, inv.Language))
}

// hashArgs derives the idempotency hash from the canonical JSON encoding
// of the arguments. Map keys serialize sorted, so equal argument sets
// hash equally regardless of construction order.
func hashArgs(args map[string]any) string {
	raw, err := json.Marshal(args)
	if err != nil {
		raw = []byte(fmt.Sprintf("%v", args))
	}
	sum := sha256.Sum256(raw)
	return hex.EncodeToString(sum[:])
}

func offendingField(err error) string {
	var validationErr *jsonschema.ValidationError
	if errors.As(err, &validationErr) {
		for _, cause := range validationErr.Causes {
			if len(cause.InstanceLocation) > 0 {
				return strings.Join(cause.InstanceLocation, ".")
			}
		}
		if len(validationErr.InstanceLocation) > 0 {
			return strings.Join(validationErr.InstanceLocation, ".")
		}
	}
	return ""
}
