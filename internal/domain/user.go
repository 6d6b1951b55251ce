package domain

import "go.mongodb.org/mongo-driver/bson/primitive"

// User is an account record. The identifier is assigned by the store on
// insert. The password field holds a bcrypt hash, never the plaintext.
type User struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name     string             `bson:"name" json:"name"`
	Email    string             `bson:"email" json:"email"`
	Password string             `bson:"password" json:"-"`
}
