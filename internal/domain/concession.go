package domain

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

var ErrInvalidConcession = errors.New("invalid concession item")

type ConcessionCategory string

const (
	CategoryBeverage ConcessionCategory = "beverage"
	CategoryPopcorn  ConcessionCategory = "popcorn"
	CategoryHotFood  ConcessionCategory = "hot_food"
)

type ConcessionSize string

const (
	SizeSmall  ConcessionSize = "S"
	SizeMedium ConcessionSize = "M"
	SizeLarge  ConcessionSize = "L"
)

func (c ConcessionCategory) Label() string {
	switch c {
	case CategoryBeverage:
		return "Beverage"
	case CategoryPopcorn:
		return "Popcorn"
	case CategoryHotFood:
		return "Hot food"
	default:
		return "Unknown"
	}
}

// sized reports whether items of the category are sold in cup/bucket sizes.
func (c ConcessionCategory) sized() bool {
	switch c {
	case CategoryBeverage, CategoryPopcorn:
		return true
	default:
		return false
	}
}

// ConcessionItem is one food or beverage product. Kinds differ only by Category.
type ConcessionItem struct {
	Name     string
	Category ConcessionCategory
	Size     ConcessionSize
	Price    decimal.Decimal
}

func (i ConcessionItem) Validate() error {
	if i.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidConcession)
	}

	switch i.Category {
	case CategoryBeverage, CategoryPopcorn, CategoryHotFood:
	default:
		return fmt.Errorf("%w: unknown category %q", ErrInvalidConcession, i.Category)
	}

	if i.Category.sized() {
		switch i.Size {
		case SizeSmall, SizeMedium, SizeLarge:
		default:
			return fmt.Errorf("%w: %s needs a size S, M or L", ErrInvalidConcession, i.Category.Label())
		}
	} else if i.Size != "" {
		return fmt.Errorf("%w: %s is not sold by size", ErrInvalidConcession, i.Category.Label())
	}

	if !i.Price.IsPositive() {
		return fmt.Errorf("%w: price must be positive", ErrInvalidConcession)
	}

	return nil
}

type ConcessionLine struct {
	Item     ConcessionItem
	Quantity int
}

type ConcessionOrder struct {
	Lines []ConcessionLine
}

func (o ConcessionOrder) Validate() error {
	if len(o.Lines) == 0 {
		return fmt.Errorf("%w: order has no items", ErrInvalidConcession)
	}

	for _, l := range o.Lines {
		if err := l.Item.Validate(); err != nil {
			return err
		}
		if l.Quantity < 1 {
			return fmt.Errorf("%w: quantity of %s must be positive", ErrInvalidConcession, l.Item.Name)
		}
	}

	return nil
}

func (o ConcessionOrder) Total() decimal.Decimal {
	total := decimal.Zero

	for _, l := range o.Lines {
		total = total.Add(l.Item.Price.Mul(decimal.NewFromInt(int64(l.Quantity))))
	}

	return total
}

// Subtotals groups the order total by category.
func (o ConcessionOrder) Subtotals() map[ConcessionCategory]decimal.Decimal {
	subtotals := make(map[ConcessionCategory]decimal.Decimal)

	for _, l := range o.Lines {
		line := l.Item.Price.Mul(decimal.NewFromInt(int64(l.Quantity)))
		subtotals[l.Item.Category] = subtotals[l.Item.Category].Add(line)
	}

	return subtotals
}
