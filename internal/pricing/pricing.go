// Package pricing holds the money arithmetic shared by the order workflow.
package pricing

// UnitPrice returns ceil(price - price*discount/100) in integer currency
// units. The result is frozen into an order line at checkout; later catalog
// changes never alter it.
func UnitPrice(price, discount int) int {
	num := price*100 - price*discount
	if num <= 0 {
		return 0
	}
	return (num + 99) / 100
}
