package domain

// OrderItemView is a line item with its product reference resolved for
// display. Product is nil when the referenced product no longer exists;
// the snapshot fields on the item itself still carry the captured data.
type OrderItemView struct {
	OrderItem
	Product *Product `json:"productData,omitempty"`
}

// OrderView decorates an order for API responses with resolved items and
// the localized status label.
type OrderView struct {
	Order
	Items       []OrderItemView `json:"items"`
	StatusLabel string          `json:"statusLabel"`
}

// NewOrderView resolves o's items against products keyed by hex id.
func NewOrderView(o Order, products map[string]*Product) OrderView {
	items := make([]OrderItemView, len(o.Items))
	for i, item := range o.Items {
		items[i] = OrderItemView{
			OrderItem: item,
			Product:   products[item.ProductID.Hex()],
		}
	}

	return OrderView{
		Order:       o,
		Items:       items,
		StatusLabel: o.Status.Label(),
	}
}
