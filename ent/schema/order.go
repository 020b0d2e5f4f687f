package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Order is a tenant directory record queried by the order-status tool
// and used as a verification anchor.
type Order struct {
	ent.Schema
}

// Fields of the Order.
func (Order) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("order_id").
			Unique().
			Immutable(),
		field.String("business_id").
			Immutable(),
		field.String("order_number").
			Immutable(),
		field.String("customer_id").
			Optional(),
		field.String("customer_name").
			Optional(),
		field.String("customer_phone").
			Optional(),
		field.String("customer_email").
			Optional(),
		field.String("status").
			Default("processing").
			Comment("processing, shipped, delivered, cancelled, returned"),
		field.String("tracking_number").
			Optional(),
		field.String("carrier").
			Optional(),
		field.JSON("items", []map[string]interface{}{}).
			Optional(),
		field.Float("total").
			Default(0),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the Order.
func (Order) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("customer", Customer.Type).
			Ref("orders").
			Field("customer_id").
			Unique(),
	}
}

// Indexes of the Order.
func (Order) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("business_id", "order_number").
			Unique(),
		index.Fields("business_id", "customer_phone"),
	}
}
