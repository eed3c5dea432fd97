package part

import "github.com/movilfix/repairshop-api/internal/httperr"

// Stock adjustment directions accepted by the API.
const (
	DirectionAdd    = "add"
	DirectionRemove = "remove"
)

// ApplyStockDelta is the single stock guard: every path that changes
// stock.current routes through it, so current never goes negative no matter
// who the caller is. Returns the new current level.
func ApplyStockDelta(current, quantity int, direction string) (int, error) {
	switch direction {
	case DirectionAdd:
		return current + quantity, nil
	case DirectionRemove:
		if quantity > current {
			return current, httperr.ErrBusiness(httperr.CodeInsufficientStock)
		}
		return current - quantity, nil
	default:
		return current, httperr.ErrBusiness(httperr.CodeInvalidStockAction)
	}
}
