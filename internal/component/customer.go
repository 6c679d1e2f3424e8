package component

import "donut-tell-me/internal/ecs"

const CCustomer ecs.ComponentType = 3

// CustomerState is where a customer is in their visit.
type CustomerState uint8

const (
	CustomerInLine  CustomerState = iota // waiting, hidden
	CustomerCurrent                      // at the counter
	CustomerRegular                      // got a perfect donut, lingering before leaving
	CustomerLeft                         // gone; entity is about to be destroyed
)

func (s CustomerState) String() string {
	switch s {
	case CustomerInLine:
		return "in line"
	case CustomerCurrent:
		return "current"
	case CustomerRegular:
		return "regular"
	}
	return "left"
}

type Customer struct {
	Name   string
	State  CustomerState
	Ticket int // position in line; lower is served first
	Visits int // times this customer reached the counter
}

func (Customer) Type() ecs.ComponentType { return CCustomer }
