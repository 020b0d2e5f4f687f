package tools

import (
	"fmt"
	"sort"
	"sync"

	"github.com/desteklab/concierge/pkg/config"
	"github.com/desteklab/concierge/pkg/models"
)

// Registry holds registered tools and answers availability queries.
// Availability is the security boundary the LLM sees: a tool absent
// from the gated set cannot be called no matter what the model emits.
type Registry struct {
	mu    sync.RWMutex
	tools map[string]Tool
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{tools: make(map[string]Tool)}
}

// Register adds a tool. Duplicate names are a programming error.
func (r *Registry) Register(tool Tool) error {
	def := tool.Definition()
	if def.Name == "" {
		return fmt.Errorf("tool has empty name")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.tools[def.Name]; exists {
		return fmt.Errorf("tool %q already registered", def.Name)
	}
	r.tools[def.Name] = tool
	return nil
}

// Get returns a tool by name.
func (r *Registry) Get(name string) (Tool, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	tool, ok := r.tools[name]
	return tool, ok
}

// Available returns the gated tool set for a turn, sorted by name:
//
//   - Tenant allow-list filtering (empty list means every tool).
//   - While verification is pending, only the tool that triggered it
//     stays visible so the model cannot be steered onto a new record
//     mid-verification.
//   - With an active flow, that flow's tools plus flow-neutral tools.
func (r *Registry) Available(state *models.TurnState, business config.BusinessConfig) []Tool {
	allowed := map[string]bool{}
	for _, name := range business.AllowedTools {
		allowed[name] = true
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	var available []Tool
	for name, tool := range r.tools {
		if len(allowed) > 0 && !allowed[name] {
			continue
		}
		if !r.gatePasses(tool.Definition(), state) {
			continue
		}
		available = append(available, tool)
	}
	sort.Slice(available, func(i, j int) bool {
		return available[i].Definition().Name < available[j].Definition().Name
	})
	return available
}

func (r *Registry) gatePasses(def Definition, state *models.TurnState) bool {
	if state == nil {
		return true
	}
	if state.Verification.Status == models.VerificationPending {
		return def.Name == state.Verification.PendingTool
	}
	if state.FlowStatus == models.FlowInProgress && state.ActiveFlow != "" {
		return def.Flow == "" || def.Flow == state.ActiveFlow
	}
	return true
}

// Names returns the names of the given tools, for telemetry.
func Names(ts []Tool) []string {
	names := make([]string, len(ts))
	for i, t := range ts {
		names[i] = t.Definition().Name
	}
	return names
}
