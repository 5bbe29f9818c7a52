package orderbook

import "slices"

// priceLadder keeps the distinct prices of one side in ascending order.
type priceLadder struct {
	prices []int64
}

func (l *priceLadder) Len() int {
	return len(l.prices)
}

func (l *priceLadder) At(i int) int64 {
	return l.prices[i]
}

func (l *priceLadder) Push(price int64) {
	i, found := slices.BinarySearch(l.prices, price)
	if found {
		return
	}
	l.prices = slices.Insert(l.prices, i, price)
}

func (l *priceLadder) Remove(price int64) {
	i, found := slices.BinarySearch(l.prices, price)
	if !found {
		return
	}
	l.prices = slices.Delete(l.prices, i, i+1)
}

// Lowest returns the smallest price, if any.
func (l *priceLadder) Lowest() (int64, bool) {
	if len(l.prices) == 0 {
		return 0, false
	}
	return l.prices[0], true
}

// Highest returns the largest price, if any.
func (l *priceLadder) Highest() (int64, bool) {
	if len(l.prices) == 0 {
		return 0, false
	}
	return l.prices[len(l.prices)-1], true
}

// Ceil returns the smallest price >= price, if any.
func (l *priceLadder) Ceil(price int64) (int64, bool) {
	i, _ := slices.BinarySearch(l.prices, price)
	if i == len(l.prices) {
		return 0, false
	}
	return l.prices[i], true
}
