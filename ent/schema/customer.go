package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Customer is a tenant directory record. Identity proof and the
// verification service read it; tools anchor sensitive queries on it.
type Customer struct {
	ent.Schema
}

// Fields of the Customer.
func (Customer) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("customer_id").
			Unique().
			Immutable(),
		field.String("business_id").
			Immutable(),
		field.String("name"),
		field.String("phone").
			Optional().
			Comment("E.164 where available"),
		field.String("email").
			Optional(),
		field.String("tc").
			Optional().
			Sensitive(),
		field.String("vkn").
			Optional().
			Sensitive(),
		field.Float("balance").
			Default(0).
			Comment("Outstanding debt; negative means credit"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the Customer.
func (Customer) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("orders", Order.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Customer.
func (Customer) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("business_id", "phone"),
		index.Fields("business_id", "email"),
	}
}
