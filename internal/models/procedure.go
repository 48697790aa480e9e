package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Procedure is an entry of the clinic's procedure catalog. Value is in BRL.
type Procedure struct {
	ID    primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Order int                `bson:"order" json:"order"`
	Name  string             `bson:"name" json:"name"`
	Value float64            `bson:"value" json:"value"`
}

type ProcedureFields struct {
	Order *int     `json:"order" binding:"required"`
	Name  string   `json:"name" binding:"required"`
	Value *float64 `json:"value" binding:"required"`
}
