package orderbook

import (
	"fmt"
	"strconv"
	"strings"
)

const messageFields = 5

// IDLookup reports whether an order id is currently resting.
type IDLookup interface {
	Contains(id int64) bool
}

// ParseMessage turns one raw line of the form action,orderid,side,quantity,price
// into an Order, checking the id against the currently resting ids. It never
// mutates anything; recording the rejected line is up to the caller.
func ParseMessage(line string, ids IDLookup) (*Order, error) {
	fields := strings.Split(line, ",")

	action, err := parseAction(strings.TrimSpace(fields[0]))
	if err != nil {
		return nil, err
	}
	if len(fields) != messageFields {
		return nil, fmt.Errorf("%w: expected %d fields, got %d", ErrMalformedMessage, messageFields, len(fields))
	}

	id, err := parseInt("orderid", fields[1])
	if err != nil {
		return nil, err
	}
	sideToken := strings.TrimSpace(fields[2])
	qty, err := parseInt("quantity", fields[3])
	if err != nil {
		return nil, err
	}
	price, err := parseInt("price", fields[4])
	if err != nil {
		return nil, err
	}

	if id <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidOrderID, id)
	}

	switch action {
	case ADD:
		if ids.Contains(id) {
			return nil, fmt.Errorf("%w: %d", ErrDuplicateOrderID, id)
		}
	case CANCEL, MODIFY:
		if !ids.Contains(id) {
			return nil, fmt.Errorf("%w: %d", ErrUnknownOrderID, id)
		}
	}

	if price < 0 || qty < 0 {
		return nil, fmt.Errorf("%w: quantity=%d price=%d", ErrNegativeValue, qty, price)
	}

	side, err := parseSide(sideToken)
	if err != nil {
		return nil, err
	}

	return &Order{
		ID:     id,
		Side:   side,
		Price:  price,
		Qty:    qty,
		Action: action,
	}, nil
}

func parseAction(token string) (Action, error) {
	switch token {
	case "A":
		return ADD, nil
	case "X":
		return CANCEL, nil
	case "M":
		return MODIFY, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownAction, token)
}

func parseSide(token string) (Side, error) {
	switch token {
	case "B":
		return BUY, nil
	case "S":
		return SELL, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidSide, token)
}

// parseInt accepts 32-bit values only, so level totals and the running trade
// aggregate stay far from int64 overflow.
func parseInt(name, token string) (int64, error) {
	v, err := strconv.ParseInt(strings.TrimSpace(token), 10, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: %s %q", ErrMalformedMessage, name, token)
	}
	return v, nil
}
