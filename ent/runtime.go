// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/desteklab/concierge/ent/callbackrequest"
	"github.com/desteklab/concierge/ent/chatmessage"
	"github.com/desteklab/concierge/ent/conversationstate"
	"github.com/desteklab/concierge/ent/customer"
	"github.com/desteklab/concierge/ent/order"
	"github.com/desteklab/concierge/ent/schema"
	"github.com/desteklab/concierge/ent/securityevent"
	"github.com/desteklab/concierge/ent/sessionlock"
	"github.com/desteklab/concierge/ent/sessionmapping"
	"github.com/desteklab/concierge/ent/toolinvocation"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	callbackrequestFields := schema.CallbackRequest{}.Fields()
	_ = callbackrequestFields
	// callbackrequestDescCreatedAt is the schema descriptor for created_at field.
	callbackrequestDescCreatedAt := callbackrequestFields[7].Descriptor()
	// callbackrequest.DefaultCreatedAt holds the default value on creation for the created_at field.
	callbackrequest.DefaultCreatedAt = callbackrequestDescCreatedAt.Default.(func() time.Time)
	chatmessageFields := schema.ChatMessage{}.Fields()
	_ = chatmessageFields
	// chatmessageDescCreatedAt is the schema descriptor for created_at field.
	chatmessageDescCreatedAt := chatmessageFields[7].Descriptor()
	// chatmessage.DefaultCreatedAt holds the default value on creation for the created_at field.
	chatmessage.DefaultCreatedAt = chatmessageDescCreatedAt.Default.(func() time.Time)
	conversationstateFields := schema.ConversationState{}.Fields()
	_ = conversationstateFields
	// conversationstateDescVersion is the schema descriptor for version field.
	conversationstateDescVersion := conversationstateFields[2].Descriptor()
	// conversationstate.DefaultVersion holds the default value on creation for the version field.
	conversationstate.DefaultVersion = conversationstateDescVersion.Default.(int)
	// conversationstateDescUpdatedAt is the schema descriptor for updated_at field.
	conversationstateDescUpdatedAt := conversationstateFields[4].Descriptor()
	// conversationstate.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	conversationstate.DefaultUpdatedAt = conversationstateDescUpdatedAt.Default.(func() time.Time)
	// conversationstate.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	conversationstate.UpdateDefaultUpdatedAt = conversationstateDescUpdatedAt.UpdateDefault.(func() time.Time)
	customerFields := schema.Customer{}.Fields()
	_ = customerFields
	// customerDescBalance is the schema descriptor for balance field.
	customerDescBalance := customerFields[7].Descriptor()
	// customer.DefaultBalance holds the default value on creation for the balance field.
	customer.DefaultBalance = customerDescBalance.Default.(float64)
	// customerDescCreatedAt is the schema descriptor for created_at field.
	customerDescCreatedAt := customerFields[8].Descriptor()
	// customer.DefaultCreatedAt holds the default value on creation for the created_at field.
	customer.DefaultCreatedAt = customerDescCreatedAt.Default.(func() time.Time)
	orderFields := schema.Order{}.Fields()
	_ = orderFields
	// orderDescStatus is the schema descriptor for status field.
	orderDescStatus := orderFields[7].Descriptor()
	// order.DefaultStatus holds the default value on creation for the status field.
	order.DefaultStatus = orderDescStatus.Default.(string)
	// orderDescTotal is the schema descriptor for total field.
	orderDescTotal := orderFields[11].Descriptor()
	// order.DefaultTotal holds the default value on creation for the total field.
	order.DefaultTotal = orderDescTotal.Default.(float64)
	// orderDescCreatedAt is the schema descriptor for created_at field.
	orderDescCreatedAt := orderFields[12].Descriptor()
	// order.DefaultCreatedAt holds the default value on creation for the created_at field.
	order.DefaultCreatedAt = orderDescCreatedAt.Default.(func() time.Time)
	securityeventFields := schema.SecurityEvent{}.Fields()
	_ = securityeventFields
	// securityeventDescCreatedAt is the schema descriptor for created_at field.
	securityeventDescCreatedAt := securityeventFields[5].Descriptor()
	// securityevent.DefaultCreatedAt holds the default value on creation for the created_at field.
	securityevent.DefaultCreatedAt = securityeventDescCreatedAt.Default.(func() time.Time)
	sessionlockFields := schema.SessionLock{}.Fields()
	_ = sessionlockFields
	// sessionlockDescCreatedAt is the schema descriptor for created_at field.
	sessionlockDescCreatedAt := sessionlockFields[4].Descriptor()
	// sessionlock.DefaultCreatedAt holds the default value on creation for the created_at field.
	sessionlock.DefaultCreatedAt = sessionlockDescCreatedAt.Default.(func() time.Time)
	sessionmappingFields := schema.SessionMapping{}.Fields()
	_ = sessionmappingFields
	// sessionmappingDescCreatedAt is the schema descriptor for created_at field.
	sessionmappingDescCreatedAt := sessionmappingFields[4].Descriptor()
	// sessionmapping.DefaultCreatedAt holds the default value on creation for the created_at field.
	sessionmapping.DefaultCreatedAt = sessionmappingDescCreatedAt.Default.(func() time.Time)
	toolinvocationFields := schema.ToolInvocation{}.Fields()
	_ = toolinvocationFields
	// toolinvocationDescCreatedAt is the schema descriptor for created_at field.
	toolinvocationDescCreatedAt := toolinvocationFields[7].Descriptor()
	// toolinvocation.DefaultCreatedAt holds the default value on creation for the created_at field.
	toolinvocation.DefaultCreatedAt = toolinvocationDescCreatedAt.Default.(func() time.Time)
}
