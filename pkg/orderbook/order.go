package orderbook

import "fmt"

type Side string

const (
	BUY  Side = "BUY"
	SELL Side = "SELL"
)

// Code is the single-letter wire form of the side.
func (s Side) Code() string {
	if s == SELL {
		return "S"
	}
	return "B"
}

func (s Side) String() string {
	return string(s)
}

type Action string

const (
	ADD    Action = "ADD"
	CANCEL Action = "CANCEL"
	MODIFY Action = "MODIFY"
)

type Order struct {
	ID     int64
	Side   Side
	Price  int64
	Qty    int64 // remaining, decremented in place on fills
	Action Action
}

func (o *Order) String() string {
	return fmt.Sprintf("%s %d %s %d@%d", o.Action, o.ID, o.Side, o.Qty, o.Price)
}
