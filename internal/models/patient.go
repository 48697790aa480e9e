package models

import "go.mongodb.org/mongo-driver/bson/primitive"

type Patient struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name       string             `bson:"name" json:"name"`
	Age        int                `bson:"age" json:"age"`
	Phone      string             `bson:"phone" json:"phone"`
	Notes      string             `bson:"notes" json:"notes"`
	Odontogram Odontogram         `bson:"odontogram" json:"odontogram"`
}

// PatientDetails holds the editable fields of a patient record. Editing a
// patient never touches its odontogram.
type PatientDetails struct {
	Name  string `json:"name" binding:"required"`
	Age   *int   `json:"age" binding:"required"`
	Phone string `json:"phone" binding:"required"`
	Notes string `json:"notes"`
}
