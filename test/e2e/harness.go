// Package e2e boots a complete concierge instance over a real
// PostgreSQL schema, with only the chat-completions provider scripted.
package e2e

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/desteklab/concierge/pkg/catalog"
	"github.com/desteklab/concierge/pkg/config"
	"github.com/desteklab/concierge/pkg/database"
	"github.com/desteklab/concierge/pkg/directory"
	"github.com/desteklab/concierge/pkg/events"
	"github.com/desteklab/concierge/pkg/guardrails"
	"github.com/desteklab/concierge/pkg/identity"
	"github.com/desteklab/concierge/pkg/models"
	"github.com/desteklab/concierge/pkg/orchestrator"
	"github.com/desteklab/concierge/pkg/session"
	"github.com/desteklab/concierge/pkg/tools"
	testdb "github.com/desteklab/concierge/test/database"
)

// TestApp is a fully wired orchestrator over a per-test database schema.
type TestApp struct {
	Config   *config.Config
	DB       *database.Client
	LLM      *ScriptedLLMClient
	Catalog  *catalog.Catalog
	Recorder *events.EntRecorder
	Orch     *orchestrator.Orchestrator

	t *testing.T
}

type appOptions struct {
	// toolDirectory overrides the directory the tools read from, for
	// failure injection. Proof derivation and autoverify keep the real
	// database-backed directory.
	toolDirectory tools.Directory
}

// WithToolDirectory routes tool lookups through a custom directory.
func WithToolDirectory(dir tools.Directory) func(*appOptions) {
	return func(o *appOptions) { o.toolDirectory = dir }
}

func testAppConfig() *config.Config {
	return &config.Config{
		Runtime: config.RuntimeConfig{
			TurnDeadline:     10 * time.Second,
			StateTTL:         time.Hour,
			ToolTimeout:      2 * time.Second,
			ToolMaxRetries:   0,
			MaxIterations:    3,
			EmailIterations:  3,
			ThrottlePerMin:   60,
			ThrottleBurst:    20,
			SerializerShards: 8,
		},
		LLM: config.LLMConfig{Model: "scripted"},
		Guardrails: config.GuardrailsConfig{
			ToolRequiredIntents: []string{"order_status", "debt_inquiry"},
			PIILockTTL:          time.Hour,
			EnumLockTTL:         time.Hour,
			EnumThreshold:       3,
			MaxCorrections:      1,
		},
		Businesses: map[string]config.BusinessConfig{
			"biz-1": {
				Name:     "Test Mağaza",
				Language: "tr",
				FeatureFlags: map[string]bool{
					config.FlagClassifierEnabled: true,
				},
			},
			"biz-auto": {
				Name:     "Test Mağaza",
				Language: "tr",
				FeatureFlags: map[string]bool{
					config.FlagClassifierEnabled:      true,
					config.FlagChannelProofAutoverify: true,
				},
			},
		},
	}
}

// NewTestApp boots the full stack against a fresh schema.
func NewTestApp(t *testing.T, opts ...func(*appOptions)) *TestApp {
	var options appOptions
	for _, opt := range opts {
		opt(&options)
	}

	cfg := testAppConfig()
	dbClient := testdb.NewTestClient(t)

	cat := catalog.New(cfg.Messages)
	recorder := events.NewEntRecorder(dbClient.Client)
	dir := directory.NewService(dbClient.Client)

	var toolDir tools.Directory = dir
	if options.toolDirectory != nil {
		toolDir = options.toolDirectory
	}

	registry := tools.NewRegistry()
	for _, tool := range []tools.Tool{
		tools.NewOrderStatusTool(toolDir, cat),
		tools.NewDebtInquiryTool(toolDir, cat),
		tools.NewCallbackRequestTool(toolDir, cat),
		tools.NewComplaintTool(cat),
	} {
		require.NoError(t, registry.Register(tool))
	}
	executor, err := tools.NewExecutor(registry, tools.NewEntInvocationStore(dbClient.Client), cat,
		cfg.Runtime.ToolTimeout, cfg.Runtime.ToolMaxRetries)
	require.NoError(t, err)

	chain, err := guardrails.NewChain(cfg.Guardrails, cat)
	require.NoError(t, err)

	llmClient := NewScriptedLLMClient()
	orch := orchestrator.New(orchestrator.Deps{
		Config:     cfg,
		Catalog:    cat,
		Sessions:   session.NewMapper(dbClient.Client),
		States:     session.NewStateStore(dbClient.Client, cfg.Runtime.StateTTL),
		Locks:      session.NewLockService(dbClient.Client),
		Serializer: session.NewSerializer(cfg.Runtime.SerializerShards),
		Throttle:   guardrails.NewThrottle(cfg.Runtime.ThrottlePerMin, cfg.Runtime.ThrottleBurst),
		Chain:      chain,
		Verifier:   identity.NewVerifier(cat),
		Proofs:     identity.NewProofDeriver(dir),
		Autoverify: identity.NewAutoverifyGate(dir),
		Registry:   registry,
		Runner:     executor,
		Client:     llmClient,
		Recorder:   recorder,
	})

	return &TestApp{
		Config:   cfg,
		DB:       dbClient,
		LLM:      llmClient,
		Catalog:  cat,
		Recorder: recorder,
		Orch:     orch,
		t:        t,
	}
}

// Turn runs one turn through the orchestrator.
func (a *TestApp) Turn(channel models.Channel, businessID, channelUserID, messageID, message string) *models.TurnResponse {
	a.t.Helper()
	return a.Orch.HandleIncomingMessage(context.Background(), &models.TurnRequest{
		Channel:       channel,
		BusinessID:    businessID,
		ChannelUserID: channelUserID,
		MessageID:     messageID,
		UserMessage:   message,
	})
}

// SeedCustomer inserts a directory customer row.
func (a *TestApp) SeedCustomer(businessID, id, name, phone, email string) {
	a.t.Helper()
	a.DB.Customer.Create().
		SetID(id).
		SetBusinessID(businessID).
		SetName(name).
		SetPhone(phone).
		SetEmail(email).
		SaveX(context.Background())
}

// SeedOrder inserts a directory order row anchored on a customer.
func (a *TestApp) SeedOrder(businessID, id, orderNumber, customerID, customerName, customerPhone, status string) {
	a.t.Helper()
	a.DB.Order.Create().
		SetID(id).
		SetBusinessID(businessID).
		SetOrderNumber(orderNumber).
		SetCustomerID(customerID).
		SetCustomerName(customerName).
		SetCustomerPhone(customerPhone).
		SetStatus(status).
		SaveX(context.Background())
}
