// internal/core/domain/sale.go
package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Sale represents a store listing of a catalog game
type Sale struct {
	ID       int64           `json:"id"`
	GameID   int64           `json:"game_id"`
	OurPrice decimal.Decimal `json:"our_price"`

	// Denormalized from the game
	GameName      *string          `json:"game_name,omitempty"`
	GameGenre     *string          `json:"game_genre,omitempty"`
	PriceCheap    *decimal.Decimal `json:"price_cheap,omitempty"`
	PriceExternal *decimal.Decimal `json:"price_external,omitempty"`

	CreatedAt *Timestamp `json:"created_at,omitempty"`
	UpdatedAt *Timestamp `json:"updated_at,omitempty"`
}

// SaleInput is the create/update payload for a store listing.
// Price is kept as the raw user input so malformed values surface as
// validation errors instead of decode failures.
type SaleInput struct {
	GameID *int64  `json:"game_id,omitempty"`
	Price  *string `json:"our_price,omitempty"`
}

// SalePayload is the body sent to the backend
type SalePayload struct {
	GameID   *int64           `json:"game_id,omitempty"`
	OurPrice *decimal.Decimal `json:"our_price,omitempty"`
}

// Validate checks a create request: a game must be selected and the price
// must be a positive number.
func (in SaleInput) Validate() (SalePayload, error) {
	if in.GameID == nil || *in.GameID <= 0 {
		return SalePayload{}, &ValidationError{Field: "game_id", Message: "select a game first"}
	}
	if in.Price == nil {
		return SalePayload{}, &ValidationError{Field: "our_price", Message: "enter a valid price"}
	}
	price, err := parsePrice(*in.Price)
	if err != nil {
		return SalePayload{}, err
	}
	return SalePayload{GameID: in.GameID, OurPrice: &price}, nil
}

// ValidatePartial checks an update request: at least one field must be set
// and any set field must be valid.
func (in SaleInput) ValidatePartial() (SalePayload, error) {
	if in.GameID == nil && in.Price == nil {
		return SalePayload{}, &ValidationError{Field: "body", Message: "nothing to update"}
	}
	var out SalePayload
	if in.GameID != nil {
		if *in.GameID <= 0 {
			return SalePayload{}, &ValidationError{Field: "game_id", Message: "select a game first"}
		}
		out.GameID = in.GameID
	}
	if in.Price != nil {
		price, err := parsePrice(*in.Price)
		if err != nil {
			return SalePayload{}, err
		}
		out.OurPrice = &price
	}
	return out, nil
}

func parsePrice(raw string) (decimal.Decimal, error) {
	price, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil || !price.IsPositive() {
		return decimal.Decimal{}, &ValidationError{Field: "our_price", Message: "enter a valid price"}
	}
	return price.Round(2), nil
}
