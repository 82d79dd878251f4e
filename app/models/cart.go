package models

// CartItem is a single shopper pick held in the session cart. It is a
// snapshot of the product at add-to-cart time: the price string is the
// one resolved for the chosen carat and is never re-resolved afterwards.
// Adding the same configuration twice produces two separate entries.
type CartItem struct {
	ProductID      string `json:"productId"`
	Name           string `json:"name"`
	Carat          string `json:"carat"`
	RingMetal      string `json:"metal"`
	Price          string `json:"price"`
	Image          string `json:"image,omitempty"`
	SpecialEdition bool   `json:"specialEdition,omitempty"`
}
