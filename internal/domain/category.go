package domain

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

type CategoryClass string

const (
	CategoryFirst    CategoryClass = "FIRST"
	CategoryBusiness CategoryClass = "BUSINESS"
	CategoryEconomy  CategoryClass = "ECONOMY"
)

// Category is one booking tier: its fare multiplier, the numeric seat range
// it owns and the benefits shown to the passenger. Values come from
// configuration; instances are never mutated after NewCategorySet.
type Category struct {
	Class          CategoryClass
	Name           string
	Multiplier     decimal.Decimal
	SeatRangeStart int
	SeatRangeEnd   int
	Benefits       string
}

// SeatPrefix is the first letter of the tier name, "F" for First Class.
func (c Category) SeatPrefix() string {
	return strings.ToUpper(c.Name[:1])
}

func (c Category) SeatCode(index int) string {
	return fmt.Sprintf("%s%d", c.SeatPrefix(), index)
}

// ContainsSeat reports whether a seat code belongs to this tier: the prefix
// matches and the index falls inside [SeatRangeStart, SeatRangeEnd].
func (c Category) ContainsSeat(seatCode string) bool {
	prefix := c.SeatPrefix()
	if !strings.HasPrefix(seatCode, prefix) {
		return false
	}
	index, err := strconv.Atoi(seatCode[len(prefix):])
	if err != nil {
		return false
	}
	return index >= c.SeatRangeStart && index <= c.SeatRangeEnd
}

// CategorySet is the closed set of booking tiers, validated at construction.
// Selectors resolve by menu position, tier name or class.
type CategorySet struct {
	ordered []Category
}

func NewCategorySet(categories []Category) (*CategorySet, error) {
	if len(categories) == 0 {
		return nil, fmt.Errorf("category set is empty")
	}
	seenPrefix := make(map[string]string)
	for i, c := range categories {
		if c.Name == "" {
			return nil, fmt.Errorf("category %d has empty name", i+1)
		}
		if !c.Multiplier.IsPositive() {
			return nil, fmt.Errorf("category %s: multiplier must be positive", c.Name)
		}
		if c.SeatRangeStart < 1 || c.SeatRangeEnd < c.SeatRangeStart {
			return nil, fmt.Errorf("category %s: invalid seat range [%d, %d]", c.Name, c.SeatRangeStart, c.SeatRangeEnd)
		}
		if other, ok := seenPrefix[c.SeatPrefix()]; ok {
			return nil, fmt.Errorf("categories %s and %s share seat prefix %s", other, c.Name, c.SeatPrefix())
		}
		seenPrefix[c.SeatPrefix()] = c.Name
		for _, prev := range categories[:i] {
			if c.SeatRangeStart <= prev.SeatRangeEnd && prev.SeatRangeStart <= c.SeatRangeEnd {
				return nil, fmt.Errorf("categories %s and %s have overlapping seat ranges", prev.Name, c.Name)
			}
		}
	}
	set := &CategorySet{ordered: make([]Category, len(categories))}
	copy(set.ordered, categories)
	return set, nil
}

// Resolve maps a caller-supplied selector to a tier. Accepted forms: the
// tier's menu position ("1", "2", "3"), its name or its class,
// case-insensitive.
func (s *CategorySet) Resolve(selector string) (Category, error) {
	trimmed := strings.TrimSpace(selector)
	if n, err := strconv.Atoi(trimmed); err == nil {
		if n < 1 || n > len(s.ordered) {
			return Category{}, ErrInvalidCategory
		}
		return s.ordered[n-1], nil
	}
	for _, c := range s.ordered {
		if strings.EqualFold(trimmed, c.Name) || strings.EqualFold(trimmed, string(c.Class)) {
			return c, nil
		}
	}
	return Category{}, ErrInvalidCategory
}

func (s *CategorySet) List() []Category {
	out := make([]Category, len(s.ordered))
	copy(out, s.ordered)
	return out
}

// DefaultCategories is the reference tier table: First Class F1-F10 at x3.0,
// Business B11-B30 at x2.0, Economy E31-E60 at x1.0.
func DefaultCategories() []Category {
	return []Category{
		{
			Class:          CategoryFirst,
			Name:           "First Class",
			Multiplier:     decimal.NewFromInt(3),
			SeatRangeStart: 1,
			SeatRangeEnd:   10,
			Benefits:       "Premium seats, Gourmet meals, Priority boarding, Extra baggage",
		},
		{
			Class:          CategoryBusiness,
			Name:           "Business",
			Multiplier:     decimal.NewFromInt(2),
			SeatRangeStart: 11,
			SeatRangeEnd:   30,
			Benefits:       "Comfortable seats, Meals included, Priority check-in",
		},
		{
			Class:          CategoryEconomy,
			Name:           "Economy",
			Multiplier:     decimal.NewFromInt(1),
			SeatRangeStart: 31,
			SeatRangeEnd:   60,
			Benefits:       "Standard seats, Snacks available",
		},
	}
}
