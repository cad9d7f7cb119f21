package entities

import "time"

// StarKind names the entity types that can be starred.
type StarKind string

const (
	StarKindBooking  StarKind = "booking"
	StarKindProject  StarKind = "project"
	StarKindCustomer StarKind = "customer"
)

func (k StarKind) Valid() bool {
	switch k {
	case StarKindBooking, StarKindProject, StarKindCustomer:
		return true
	}
	return false
}

// StarredItem marks an entity as a favourite of a user.
//
// Storage model (DynamoDB):
//   - PK: owner ("<user_id>#<kind>")
//   - SK: object_id
type StarredItem struct {
	Kind     StarKind  `json:"kind"`
	ObjectID string    `json:"object_id"`
	UserID   string    `json:"user_id"`
	Created  time.Time `json:"created"`
}
