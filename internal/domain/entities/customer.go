package entities

import "github.com/shopspring/decimal"

// Customer is the party projects are billed to.
//
// Storage model (DynamoDB):
//   - PK: id
//
// (name1, name2, name3) is unique among customers.
type Customer struct {
	ID            string              `json:"id"`
	Name1         string              `json:"name1"`
	Name2         string              `json:"name2,omitempty"`
	Name3         string              `json:"name3,omitempty"`
	Address       Address             `json:"address"`
	Communication *Communication      `json:"communication,omitempty"`
	DailyRate     decimal.NullDecimal `json:"daily_rate"`

	Audit
}

func (c Customer) NameTuple() []string {
	return nonEmpty(c.Name1, c.Name2, c.Name3)
}

func (c Customer) JoinName(sep string) string {
	return joinLines(c.NameTuple(), sep)
}
