// README: Vehicle type to tax category resolution.
package vehicle

import (
	"errors"
	"strings"
)

// Category is the tax classification derived from a vehicle type. It is
// resolved once per request; the engine never re-derives it.
type Category int

const (
	CategoryStandard Category = iota
	CategoryTollFree
)

func (c Category) TollFree() bool {
	return c == CategoryTollFree
}

var ErrUnknownType = errors.New("unknown vehicle type")

// Types lists every supported vehicle type, in the order they are reported
// by the vehicle-types endpoint.
var Types = []string{
	"Car",
	"Motorcycle",
	"Tractor",
	"Emergency",
	"Diplomat",
	"Foreign",
	"Military",
}

var categories = map[string]Category{
	"Car":        CategoryStandard,
	"Motorcycle": CategoryTollFree,
	"Tractor":    CategoryTollFree,
	"Emergency":  CategoryTollFree,
	"Diplomat":   CategoryTollFree,
	"Foreign":    CategoryTollFree,
	"Military":   CategoryTollFree,
}

// Resolve maps a vehicle type identifier to its category. Leading and
// trailing whitespace is tolerated; unknown or empty types are an error,
// never a default charge.
func Resolve(vehicleType string) (Category, error) {
	c, ok := categories[strings.TrimSpace(vehicleType)]
	if !ok {
		return CategoryStandard, ErrUnknownType
	}
	return c, nil
}
