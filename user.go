package formbox

import (
	"time"
)

// User is a registered account. PasswordHash is a bcrypt hash and is never
// serialized to JSON.
type User struct {
	ID           UserID    `bson:"_id,omitempty" json:"id,omitempty"`
	Name         string    `bson:"name" json:"name"`
	Email        string    `bson:"email" json:"email"`
	PasswordHash string    `bson:"password" json:"-"`
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt"`
}
