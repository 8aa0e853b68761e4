package settings

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/Givikap120/lazer-go/framework/math/vector"
)

const dropdownMaxHeight = 200

var ErrUnknownItem = errors.New("settings: item is not in the dropdown")

// ItemSource provides dropdown items that may change over time.
type ItemSource[T any] interface {
	Items() []T
}

// Item is a single entry of the settings panel.
type Item interface {
	Label() string
	FilterTerms() []string
	Value() string
}

type Dropdown[T comparable] struct {
	LabelText string

	// MaxHeight of the opened menu
	MaxHeight float32
	Spacing   vector.Vector2f

	OnChange func(T)

	items   []T
	source  ItemSource[T]
	current T
}

func NewDropdown[T comparable](label string, items ...T) *Dropdown[T] {
	dropdown := &Dropdown[T]{
		LabelText: label,
		MaxHeight: dropdownMaxHeight,
		Spacing:   vector.NewVec2f(0, 10),
		items:     items,
	}

	if len(items) > 0 {
		dropdown.current = items[0]
	}

	return dropdown
}

func (d *Dropdown[T]) Items() []T {
	if d.source != nil {
		return d.source.Items()
	}

	return d.items
}

// SetItems replaces the items, detaching any item source.
func (d *Dropdown[T]) SetItems(items []T) {
	d.source = nil
	d.items = items
}

func (d *Dropdown[T]) SetItemSource(source ItemSource[T]) {
	d.source = source
}

func (d *Dropdown[T]) Current() T {
	return d.current
}

func (d *Dropdown[T]) Select(item T) error {
	if !slices.Contains(d.Items(), item) {
		return fmt.Errorf("%w: %v", ErrUnknownItem, item)
	}

	if d.current == item {
		return nil
	}

	d.current = item

	if d.OnChange != nil {
		d.OnChange(item)
	}

	return nil
}

func (d *Dropdown[T]) Label() string {
	return d.LabelText
}

func (d *Dropdown[T]) Value() string {
	return fmt.Sprint(d.current)
}

// FilterTerms lets the settings search match a dropdown by any of its items.
func (d *Dropdown[T]) FilterTerms() []string {
	items := d.Items()

	terms := make([]string, 0, len(items)+1)
	terms = append(terms, d.LabelText)

	for _, item := range items {
		terms = append(terms, fmt.Sprint(item))
	}

	return terms
}

// Search returns the items having at least one filter term containing term, case-insensitively.
func Search(items []Item, term string) []Item {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return items
	}

	var result []Item

	for _, item := range items {
		for _, t := range item.FilterTerms() {
			if strings.Contains(strings.ToLower(t), term) {
				result = append(result, item)
				break
			}
		}
	}

	return result
}
