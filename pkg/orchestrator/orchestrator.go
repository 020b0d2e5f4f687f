// Package orchestrator drives one conversational turn end to end:
// session resolution, locks and pre-model safety exits, routing, the
// model-tool loop, the guardrail chain with its correction loop, and the
// single persist step. It never sends messages; adapters do.
package orchestrator

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/desteklab/concierge/pkg/catalog"
	"github.com/desteklab/concierge/pkg/classifier"
	"github.com/desteklab/concierge/pkg/config"
	"github.com/desteklab/concierge/pkg/events"
	"github.com/desteklab/concierge/pkg/grounding"
	"github.com/desteklab/concierge/pkg/guardrails"
	"github.com/desteklab/concierge/pkg/identity"
	"github.com/desteklab/concierge/pkg/llm"
	"github.com/desteklab/concierge/pkg/models"
	"github.com/desteklab/concierge/pkg/outcome"
	"github.com/desteklab/concierge/pkg/session"
	"github.com/desteklab/concierge/pkg/telemetry"
	"github.com/desteklab/concierge/pkg/tools"
)

// SessionResolver maps channel identities onto session IDs.
type SessionResolver interface {
	Resolve(ctx context.Context, req *models.TurnRequest) (string, error)
}

// StateStore loads and persists per-session turn state and the chat log.
type StateStore interface {
	Load(ctx context.Context, sessionID string) (*models.TurnState, error)
	Persist(ctx context.Context, sessionID string, state *models.TurnState, entries []models.ChatLogEntry) error
	History(ctx context.Context, sessionID string, limit int) ([]models.ChatLogEntry, error)
}

// LockStore reads and writes session locks.
type LockStore interface {
	Active(ctx context.Context, sessionID string) (*session.Lock, error)
	LockSession(ctx context.Context, sessionID string, reason session.LockReason, ttl time.Duration) error
}

// ProofDeriver grades channel possession evidence.
type ProofDeriver interface {
	Derive(ctx context.Context, cc identity.ChannelContext) *models.IdentityProof
}

// Autoverifier applies channel proof to a verification-required result.
type Autoverifier interface {
	Apply(ctx context.Context, enabled bool, proof *models.IdentityProof, result *models.ToolResult, state *models.TurnState) bool
}

// Deps wires the orchestrator. Every field is required except Recorder.
type Deps struct {
	Config     *config.Config
	Catalog    *catalog.Catalog
	Sessions   SessionResolver
	States     StateStore
	Locks      LockStore
	Serializer *session.Serializer
	Throttle   *guardrails.Throttle
	Chain      *guardrails.Chain
	Verifier   *identity.Verifier
	Proofs     ProofDeriver
	Autoverify Autoverifier
	Registry   *tools.Registry
	Runner     llm.ToolRunner
	Client     llm.Client
	Recorder   events.Recorder
}

// Orchestrator owns the turn pipeline.
type Orchestrator struct {
	deps Deps
	loop *llm.Loop
}

// New creates an orchestrator from its dependencies.
func New(deps Deps) *Orchestrator {
	return &Orchestrator{
		deps: deps,
		loop: llm.NewLoop(deps.Client, deps.Runner),
	}
}

// historyLimit caps the transcript entries replayed to the model.
const historyLimit = 20

// HandleIncomingMessage processes one turn. It never returns an error:
// every failure mode maps to an outcome with a deterministic localized
// message, and residual panics surface as INFRA_ERROR.
func (o *Orchestrator) HandleIncomingMessage(ctx context.Context, req *models.TurnRequest) (resp *models.TurnResponse) {
	start := time.Now()
	business := o.deps.Config.Business(req.BusinessID)
	language := req.Language
	if language == "" {
		language = business.Language
	}

	defer func() {
		if r := recover(); r != nil {
			slog.Error("Turn panicked", "business_id", req.BusinessID, "panic", r)
			resp = o.fatal(req, language, start)
		}
	}()

	if !req.Channel.IsValid() || req.UserMessage == "" {
		resp = o.fatal(req, language, start)
		resp.Outcome = outcome.ValidationError
		resp.Metadata.Outcome = outcome.ValidationError
		resp.Metrics.Outcome = outcome.ValidationError
		return resp
	}

	ctx, cancel := context.WithTimeout(ctx, o.deps.Config.Runtime.TurnDeadline)
	defer cancel()

	sessionID, err := o.deps.Sessions.Resolve(ctx, req)
	if err != nil {
		slog.Error("Session resolution failed", "business_id", req.BusinessID, "error", err)
		return o.fatal(req, language, start)
	}
	turnID := req.MessageID
	if turnID == "" {
		turnID = uuid.New().String()
	}

	// The serializer is held from lock check through persist so the
	// state machine is atomic against concurrent turns on this session.
	o.deps.Serializer.Do(sessionID, func() {
		resp = o.runTurn(ctx, req, business, sessionID, turnID, language, start)
	})
	return resp
}

func (o *Orchestrator) runTurn(ctx context.Context, req *models.TurnRequest, business config.BusinessConfig, sessionID, turnID, language string, start time.Time) *models.TurnResponse {
	// 1. Session lock. A lock that cannot be read counts as locked.
	lock, err := o.deps.Locks.Active(ctx, sessionID)
	if err != nil {
		slog.Error("Lock check failed, refusing turn", "session_id", sessionID, "error", err)
		return o.refuse(req, sessionID, turnID, language, catalog.KeySessionLocked, "session_locked", start, true)
	}
	if lock != nil {
		key := catalog.KeySessionLocked
		switch lock.Reason {
		case session.LockPIIRisk:
			key = catalog.KeySessionLockedPII
		case session.LockEnumeration:
			key = catalog.KeySessionLockedEnum
		}
		return o.refuse(req, sessionID, turnID, language, key, "session_locked", start, true)
	}

	// 2. Throttle.
	if !o.deps.Throttle.Allow(sessionID) {
		resp := o.refuse(req, sessionID, turnID, language, catalog.KeyThrottled, "throttled", start, false)
		resp.Metrics.Security.SessionThrottled = true
		return resp
	}

	// 3. Deterministic input safety. Critical findings never reach the
	// model.
	finding := guardrails.InspectInput(req.UserMessage)
	if finding.ContentSafety {
		o.recordEvent(ctx, sessionID, req.BusinessID, events.TypeContentSafety, map[string]any{"reasons": finding.Reasons})
		return o.refuse(req, sessionID, turnID, language, catalog.KeyContentSafety, "content_safety", start, false)
	}
	if finding.InjectionCritical {
		o.recordEvent(ctx, sessionID, req.BusinessID, events.TypeInjection, map[string]any{"reasons": finding.Reasons})
		return o.refuse(req, sessionID, turnID, language, catalog.KeyInjectionRefusal, "injection_critical", start, false)
	}

	// 4. State.
	state, err := o.deps.States.Load(ctx, sessionID)
	if err != nil {
		slog.Error("State load failed", "session_id", sessionID, "error", err)
		return o.fatal(req, language, start)
	}
	if state.FlowStatus == models.FlowTerminated {
		resp := o.refuse(req, sessionID, turnID, language, catalog.KeySessionTerminated, "session_terminated", start, false)
		resp.ShouldEndSession = true
		return resp
	}

	// 5. Route.
	decision := classifier.Decide(state, business, req.UserMessage)
	switch decision.Route {
	case classifier.RouteVerification:
		return o.verificationTurn(ctx, req, state, sessionID, turnID, language, start)
	case classifier.RouteChatter:
		return o.chatterTurn(ctx, req, state, decision, sessionID, turnID, language, start)
	default:
		return o.modelTurn(ctx, req, business, state, decision, finding, sessionID, turnID, language, start)
	}
}

// verificationTurn handles a turn while verification is pending: the
// message is an answer to the challenge, never a new query. No model
// call happens.
func (o *Orchestrator) verificationTurn(ctx context.Context, req *models.TurnRequest, state *models.TurnState, sessionID, turnID, language string, start time.Time) *models.TurnResponse {
	anchor := state.Verification.Anchor
	match := o.deps.Verifier.VerifyAgainstAnchor(anchor, req.UserMessage)

	var reply string
	var oc outcome.Outcome
	var toolResults []*models.ToolResult
	toolSucceeded := false

	if match != identity.MatchNone {
		telemetry.ObserveVerification("passed")
		pendingTool := state.Verification.PendingTool
		pendingArgs := state.Verification.PendingArgs

		state.Verification.Status = models.VerificationVerified
		state.Verification.MatchedField = string(match)
		state.Verification.Attempts = 0
		state.Verification.PendingTool = ""
		state.Verification.PendingArgs = nil

		reply, oc, toolResults = o.replayPendingTool(ctx, req, state, sessionID, turnID, language, pendingTool, pendingArgs)
		toolSucceeded = oc == outcome.OK && len(toolResults) > 0
	} else {
		telemetry.ObserveVerification("failed")
		state.Verification.Attempts++
		if state.Verification.Attempts >= o.deps.Config.Guardrails.EnumThreshold {
			return o.enumerationLock(ctx, req, state, sessionID, turnID, language, start)
		}
		reply = o.message(req.BusinessID, catalog.KeyVerificationFailed, language)
		oc = outcome.VerificationRequired
	}

	verdict := grounding.Classify(reply, grounding.Signals{
		ToolSucceeded: toolSucceeded,
		ToolCalled:    len(toolResults) > 0,
		Deterministic: true,
	})
	state.ResponseGrounding = string(verdict)

	o.persist(ctx, sessionID, state, req.UserMessage, reply, "verification", "", string(verdict))
	return o.finish(req, sessionID, turnID, language, state, reply, oc,
		telemetry.Bypass(sessionID, turnID, req.BusinessID, string(req.Channel), "verification_turn"),
		nil, toolResults, start)
}

// replayPendingTool re-executes the call that triggered verification,
// now against a verified state. The replay is a fresh turn, so the
// idempotency record does not return the pre-verification result.
func (o *Orchestrator) replayPendingTool(ctx context.Context, req *models.TurnRequest, state *models.TurnState, sessionID, turnID, language, pendingTool string, pendingArgs map[string]any) (string, outcome.Outcome, []*models.ToolResult) {
	if pendingTool == "" {
		return o.message(req.BusinessID, catalog.KeySafeFallback, language), outcome.OK, nil
	}

	inv := &tools.Invocation{
		BusinessID: req.BusinessID,
		SessionID:  sessionID,
		TurnID:     turnID,
		Language:   language,
		Args:       pendingArgs,
		State:      state,
	}
	result, err := o.deps.Runner.Execute(ctx, pendingTool, inv)
	if err != nil {
		slog.Error("Pending tool replay failed", "tool", pendingTool, "error", err)
		return o.message(req.BusinessID, catalog.KeyToolFailure, language), outcome.InfraError, nil
	}
	telemetry.ObserveTool(result.Name, string(result.Outcome))
	o.applyResultToState(state, result, pendingArgs)
	return result.Message, result.Outcome, []*models.ToolResult{result}
}

func (o *Orchestrator) enumerationLock(ctx context.Context, req *models.TurnRequest, state *models.TurnState, sessionID, turnID, language string, start time.Time) *models.TurnResponse {
	ttl := o.deps.Config.Guardrails.EnumLockTTL
	if err := o.deps.Locks.LockSession(ctx, sessionID, session.LockEnumeration, ttl); err != nil {
		slog.Error("Failed to apply enumeration lock", "session_id", sessionID, "error", err)
	}
	telemetry.ObserveLock(string(session.LockEnumeration))
	telemetry.ObserveVerification("locked")
	o.recordEvent(ctx, sessionID, req.BusinessID, events.TypeEnumerationLock,
		map[string]any{"attempts": state.Verification.Attempts})

	state.ResetVerification()
	reply := o.message(req.BusinessID, catalog.KeySessionLockedEnum, language)
	o.persist(ctx, sessionID, state, req.UserMessage, reply, "verification", string(guardrails.ActionBlock), "")

	resp := o.finish(req, sessionID, turnID, language, state, reply, outcome.Denied,
		telemetry.Bypass(sessionID, turnID, req.BusinessID, string(req.Channel), "enumeration_lock"),
		nil, nil, start)
	resp.ShouldEndSession = true
	resp.ForceEnd = true
	return resp
}

func (o *Orchestrator) chatterTurn(ctx context.Context, req *models.TurnRequest, state *models.TurnState, decision classifier.Decision, sessionID, turnID, language string, start time.Time) *models.TurnResponse {
	reply := o.message(req.BusinessID, catalog.KeySafeFallback, language)
	verdict := grounding.Classify(reply, grounding.Signals{Chatter: true, Deterministic: true})
	state.ResponseGrounding = string(verdict)

	o.persist(ctx, sessionID, state, req.UserMessage, reply, decision.Classification.Intent, "", string(verdict))
	resp := o.finish(req, sessionID, turnID, language, state, reply, outcome.OK,
		telemetry.Bypass(sessionID, turnID, req.BusinessID, string(req.Channel), "chatter"),
		nil, nil, start)
	resp.Metadata.MessageType = decision.Classification.Intent
	resp.Metadata.ResponseGrounding = string(verdict)
	return resp
}

// modelTurn runs the full model path: anchor-change handling, the
// tool loop, autoverify, the guardrail chain with its bounded correction
// loop, grounding, and persist.
func (o *Orchestrator) modelTurn(ctx context.Context, req *models.TurnRequest, business config.BusinessConfig, state *models.TurnState, decision classifier.Decision, finding guardrails.InputFinding, sessionID, turnID, language string, start time.Time) *models.TurnResponse {
	// A new order number invalidates a verification earned on another
	// record before anything else sees the state.
	o.handleAnchorChange(state, decision.Classification.Slots)
	if decision.MergeSlots {
		for field, value := range decision.Classification.Slots {
			state.ExtractedSlots[field] = value
		}
	}

	history, err := o.deps.States.History(ctx, sessionID, historyLimit)
	if err != nil {
		slog.Warn("History load failed, continuing without transcript", "session_id", sessionID, "error", err)
	}
	proof := o.deps.Proofs.Derive(ctx, identity.ChannelContext{
		Channel:       req.Channel,
		BusinessID:    req.BusinessID,
		ChannelUserID: req.ChannelUserID,
	})

	gated := o.deps.Registry.Available(state, business)
	chatReq := llm.Build(llm.BuildContext{
		Business:           business,
		Language:           language,
		State:              state,
		History:            history,
		UserMessage:        req.UserMessage,
		InjectionSuspected: finding.InjectionSuspected,
		Tools:              gated,
		HistoryLimit:       historyLimit,
	})
	inv := &tools.Invocation{
		BusinessID: req.BusinessID,
		SessionID:  sessionID,
		TurnID:     turnID,
		Language:   language,
		State:      state,
		Proof:      proof,
	}

	llmStart := time.Now()
	loopRes, err := o.loop.Run(ctx, chatReq, inv, o.deps.Config.Runtime.MaxIterationsFor(string(req.Channel)))
	llmElapsed := time.Since(llmStart)
	trace := telemetry.Called(sessionID, turnID, req.BusinessID, string(req.Channel))
	trace.Iterations = loopRes.Iterations
	trace.InputTokens = loopRes.InputTokens
	trace.OutputTokens = loopRes.OutputTokens
	telemetry.ObserveLLMCall(true, string(req.Channel), llmElapsed, loopRes.InputTokens, loopRes.OutputTokens)

	if err != nil {
		slog.Error("Model loop failed", "session_id", sessionID, "error", err)
		reply := o.message(req.BusinessID, catalog.KeyToolFailure, language)
		o.persist(ctx, sessionID, state, req.UserMessage, reply, decision.Classification.Intent, "", "")
		return o.finish(req, sessionID, turnID, language, state, reply, outcome.InfraError, trace, loopRes, loopRes.ToolResults, start)
	}

	// Autoverify: channel possession proof may satisfy the verification
	// a tool just demanded.
	upgraded := false
	if loopRes.Terminal != nil {
		enabled := business.FlagEnabled(config.FlagChannelProofAutoverify)
		if o.deps.Autoverify.Apply(ctx, enabled, proof, loopRes.Terminal, state) {
			upgraded = true
			loopRes.Terminal.Message = recordSummary(loopRes.Terminal.Data, loopRes.Terminal.Message)
			loopRes.Reply = loopRes.Terminal.Message
		}
	}

	for _, result := range loopRes.ToolResults {
		telemetry.ObserveTool(result.Name, string(result.Outcome))
		o.applyResultToState(state, result, loopRes.TerminalArgs)
	}

	reply := loopRes.Reply
	if reply == "" {
		reply = o.message(req.BusinessID, catalog.KeySafeFallback, language)
	}

	reply, chainRes, repromptCount := o.guard(ctx, req, business, state, decision, loopRes, chatReq, reply, language)

	if chainRes.Lock != nil {
		if err := o.deps.Locks.LockSession(ctx, sessionID, chainRes.Lock.Reason, chainRes.Lock.TTL); err != nil {
			slog.Error("Failed to apply guardrail lock", "session_id", sessionID, "error", err)
		}
		telemetry.ObserveLock(string(chainRes.Lock.Reason))
		o.recordEvent(ctx, sessionID, req.BusinessID, events.TypePIIBlock,
			map[string]any{"violations": chainRes.Violations})
	}
	if chainRes.BlockReason == "identity_mismatch" {
		o.recordEvent(ctx, sessionID, req.BusinessID, events.TypeIdentityBlock, nil)
	}

	oc := outcome.Highest(loopRes.Outcomes())
	if chainRes.Denied {
		oc = outcome.Denied
	} else if chainRes.Action == guardrails.ActionNeedMinInfo {
		oc = outcome.NeedMoreInfo
	}

	verdict := grounding.Classify(reply, grounding.Signals{
		ToolSucceeded:  loopRes.HadToolSuccess(),
		ToolCalled:     len(loopRes.ToolsCalled) > 0,
		Chatter:        decision.Classification.Chatter,
		EntityResolved: len(state.ExtractedSlots) > 0,
		Deterministic:  chainRes.Action != guardrails.ActionPass || (loopRes.Terminal != nil && !upgraded),
	})
	state.ResponseGrounding = string(verdict)

	o.persist(ctx, sessionID, state, req.UserMessage, reply, decision.Classification.Intent, string(chainRes.Action), string(verdict))
	telemetry.ObserveGuardrail(string(chainRes.Action), chainRes.BlockReason)

	resp := o.finish(req, sessionID, turnID, language, state, reply, oc, trace, loopRes, loopRes.ToolResults, start)
	resp.Metadata.GuardrailAction = string(chainRes.Action)
	resp.Metadata.MessageType = decision.Classification.Intent
	resp.Metadata.ResponseGrounding = string(verdict)
	resp.Metrics.Security.Action = string(chainRes.Action)
	resp.Metrics.Security.Blocked = chainRes.Action == guardrails.ActionBlock
	resp.Metrics.Security.BlockReason = chainRes.BlockReason
	resp.Metrics.Security.Violations = chainRes.Violations
	resp.Metrics.Security.RepromptCount = repromptCount
	resp.Metrics.Security.InjectionDetected = finding.InjectionSuspected
	if chainRes.Lock != nil {
		resp.ShouldEndSession = true
		resp.ForceEnd = true
	}
	return resp
}

// guard runs the output chain with the bounded correction loop: at most
// MaxCorrections re-prompts per correction type, each corrected response
// re-checked from the firewall down. Exhausted corrections fall back to
// deterministic safe text.
func (o *Orchestrator) guard(ctx context.Context, req *models.TurnRequest, business config.BusinessConfig, state *models.TurnState, decision classifier.Decision, loopRes *llm.LoopResult, chatReq *llm.Request, reply, language string) (string, *guardrails.Result, int) {
	maxCorrections := o.deps.Config.Guardrails.MaxCorrections
	if maxCorrections < 0 {
		maxCorrections = 0
	}
	attempts := map[string]int{}
	exhausted := map[string]bool{}
	if maxCorrections == 0 {
		for _, kind := range guardrails.CorrectionTypes {
			exhausted[kind] = true
		}
	}
	repromptCount := 0
	firewallCounted := false

	// One initial evaluation plus one re-evaluation per allowed re-prompt.
	maxChainPasses := 1 + maxCorrections*len(guardrails.CorrectionTypes)

	var result *guardrails.Result
	for pass := 0; pass < maxChainPasses; pass++ {
		result = o.deps.Chain.Evaluate(&guardrails.Input{
			BusinessID:      req.BusinessID,
			Language:        language,
			Response:        reply,
			UserMessage:     req.UserMessage,
			Intent:          decision.Classification.Intent,
			State:           state,
			ToolResults:     loopRes.ToolResults,
			ToolsCalled:     loopRes.ToolsCalled,
			CorrectionsUsed: exhausted,
			Business:        business,
		})
		if !firewallCounted && violated(result.Violations, "firewall") {
			state.FirewallOffenses++
			firewallCounted = true
		}
		if result.Correction == nil {
			return result.Response, result, repromptCount
		}

		correction := result.Correction
		attempts[correction.Type]++
		if attempts[correction.Type] >= maxCorrections {
			exhausted[correction.Type] = true
		}
		telemetry.ObserveCorrection(correction.Type)
		repromptCount++

		corrected, err := o.reprompt(ctx, chatReq, reply, correction.Constraint)
		if err != nil {
			slog.Warn("Correction re-prompt failed", "type", correction.Type, "error", err)
			continue
		}
		reply = corrected
	}

	// Every correction type exhausted without a clean pass.
	result.Action = guardrails.ActionSanitize
	return o.message(req.BusinessID, catalog.KeySafeFallback, language), result, repromptCount
}

// reprompt asks the model to rewrite its own answer under a constraint.
func (o *Orchestrator) reprompt(ctx context.Context, chatReq *llm.Request, previous, constraint string) (string, error) {
	corrected := &llm.Request{
		System: chatReq.System,
		Messages: append(append([]llm.Message{}, chatReq.Messages...),
			llm.Message{Role: llm.RoleAssistant, Content: previous},
			llm.Message{Role: llm.RoleUser, Content: "Rewrite your previous answer. " + constraint}),
	}
	resp, err := o.deps.Client.Chat(ctx, corrected)
	if err != nil {
		return "", err
	}
	if resp.Content == "" {
		return "", fmt.Errorf("empty correction response")
	}
	return resp.Content, nil
}

// handleAnchorChange restarts verification when the user names an order
// other than the one the current verification was earned on.
func (o *Orchestrator) handleAnchorChange(state *models.TurnState, slots map[string]string) {
	newOrder := slots[models.FieldOrderNumber]
	if newOrder == "" {
		return
	}
	ver := state.Verification
	if ver.Status != models.VerificationVerified || ver.Anchor == nil {
		return
	}
	if ver.Anchor.AnchorType == "order_number" && ver.Anchor.Value == newOrder {
		return
	}
	slog.Info("Anchor change detected, restarting verification",
		"previous", ver.Anchor.Value, "requested", newOrder)
	state.ResetVerification()
	state.ActiveFlow = models.FlowTagOrderStatus
	state.FlowStatus = models.FlowInProgress
	state.ExtractedSlots[models.FieldOrderNumber] = newOrder
}

// applyResultToState folds one tool result into the session state.
func (o *Orchestrator) applyResultToState(state *models.TurnState, result *models.ToolResult, terminalArgs map[string]any) {
	switch result.Outcome {
	case outcome.VerificationRequired:
		if ic := result.IdentityContext; ic != nil {
			attempts := state.Verification.Attempts
			state.Verification = models.Verification{
				Status:      models.VerificationPending,
				Anchor:      ic.Anchor,
				Attempts:    attempts,
				PendingTool: result.Name,
				PendingArgs: terminalArgs,
			}
			state.FlowStatus = models.FlowInProgress
			if tool, ok := o.deps.Registry.Get(result.Name); ok {
				state.ActiveFlow = tool.Definition().Flow
			}
		}
	case outcome.NotFound:
		queryType, _ := result.Data["query_type"].(string)
		value, _ := result.Data["value"].(string)
		state.LastNotFound = &models.NotFoundContext{QueryType: queryType, Value: value, At: time.Now()}
		state.FlowStatus = models.FlowNotFound
	case outcome.ValidationError:
		state.FlowStatus = models.FlowValidationError
	case outcome.OK:
		state.FlowStatus = models.FlowPostResult
	}

	for _, event := range result.StateEvents {
		if event.Type == outcome.EventFlowResolved {
			state.FlowStatus = models.FlowResolved
			state.ActiveFlow = ""
		}
	}
}

func (o *Orchestrator) persist(ctx context.Context, sessionID string, state *models.TurnState, userMessage, reply, messageType, guardrailAction, responseGrounding string) {
	entries := []models.ChatLogEntry{
		{Role: "user", Text: userMessage, MessageType: messageType},
		{Role: "assistant", Text: reply, GuardrailAction: guardrailAction, ResponseGrounding: responseGrounding},
	}
	if err := o.deps.States.Persist(ctx, sessionID, state, entries); err != nil {
		slog.Error("State persist failed", "session_id", sessionID, "error", err)
	}
}

// refuse builds a deterministic pre-model refusal. No state is loaded or
// persisted; the session is untouched.
func (o *Orchestrator) refuse(req *models.TurnRequest, sessionID, turnID, language, key, reason string, start time.Time, forceEnd bool) *models.TurnResponse {
	reply := o.message(req.BusinessID, key, language)
	trace := telemetry.Bypass(sessionID, turnID, req.BusinessID, string(req.Channel), reason)

	resp := o.finish(req, sessionID, turnID, language, nil, reply, outcome.Denied, trace, nil, nil, start)
	resp.Metrics.Security.Action = string(guardrails.ActionBlock)
	resp.Metrics.Security.Blocked = true
	resp.Metrics.Security.BlockReason = reason
	resp.ForceEnd = forceEnd
	return resp
}

// fatal is the outer safety net response.
func (o *Orchestrator) fatal(req *models.TurnRequest, language string, start time.Time) *models.TurnResponse {
	reply := o.message(req.BusinessID, catalog.KeyFatalError, language)
	trace := telemetry.Bypass("", "", req.BusinessID, string(req.Channel), "fatal_error")
	return o.finish(req, "", "", language, nil, reply, outcome.InfraError, trace, nil, nil, start)
}

// finish assembles the response, emits the turn trace, and records the
// turn metrics. Exactly one trace is emitted per turn.
func (o *Orchestrator) finish(req *models.TurnRequest, sessionID, turnID, language string, state *models.TurnState, reply string, oc outcome.Outcome, trace telemetry.Trace, loopRes *llm.LoopResult, toolResults []*models.ToolResult, start time.Time) *models.TurnResponse {
	elapsed := time.Since(start)

	metrics := &models.TurnMetrics{
		Outcome: oc,
		Security: models.SecurityTelemetry{
			Action:       string(guardrails.ActionPass),
			LatencyMs:    elapsed.Milliseconds(),
			FeatureFlags: o.deps.Config.FlagSnapshot(req.BusinessID),
		},
	}
	meta := models.TurnMetadata{Outcome: oc}
	trace.ApplyTo(&meta)

	resp := &models.TurnResponse{
		Reply:    reply,
		Outcome:  oc,
		Metadata: meta,
		State:    state,
		Metrics:  metrics,
	}
	if loopRes != nil {
		resp.InputTokens = loopRes.InputTokens
		resp.OutputTokens = loopRes.OutputTokens
		resp.ToolsCalled = loopRes.ToolsCalled
		metrics.ToolsCalled = loopRes.ToolsCalled
	}
	for _, result := range toolResults {
		resp.Metadata.ToolOutcomes = append(resp.Metadata.ToolOutcomes, result.Outcome)
	}

	trace.Emit(metrics)
	if trace.Bypassed {
		telemetry.ObserveLLMCall(false, trace.BypassReason, 0, 0, 0)
	}
	telemetry.ObserveTurn(string(req.Channel), string(oc), elapsed)
	return resp
}

func (o *Orchestrator) recordEvent(ctx context.Context, sessionID, businessID, eventType string, detail map[string]any) {
	if o.deps.Recorder == nil {
		return
	}
	o.deps.Recorder.Record(ctx, events.Event{
		SessionID:  sessionID,
		BusinessID: businessID,
		Type:       eventType,
		Detail:     detail,
	})
}

func (o *Orchestrator) message(businessID, key, language string) string {
	return o.deps.Catalog.Get(businessID, key, language)
}

// recordSummary shapes a deterministic reply from an autoverified
// record.
func recordSummary(data map[string]any, fallback string) string {
	orderNumber, _ := data["order_number"].(string)
	status, _ := data["status"].(string)
	if orderNumber != "" && status != "" {
		return fmt.Sprintf("%s: %s", orderNumber, status)
	}
	if status != "" {
		return status
	}
	return fallback
}

func violated(violations []string, name string) bool {
	for _, v := range violations {
		if v == name {
			return true
		}
	}
	return false
}
