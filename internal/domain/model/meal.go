// Package model defines the core domain entities for the menu service.
package model

import (
	"fmt"
	"strings"
)

// MealType is the closed set of meal categories a dish can belong to.
type MealType string

const (
	MealTypeBreakfast MealType = "breakfast"
	MealTypeLunch     MealType = "lunch"
	MealTypeDinner    MealType = "dinner"
	MealTypeSnack     MealType = "snack"
	MealTypeDessert   MealType = "dessert"
)

// MealTypes lists every meal type in canonical order. Iteration over slot
// maps always follows this order so results are reproducible.
var MealTypes = []MealType{
	MealTypeBreakfast,
	MealTypeLunch,
	MealTypeDinner,
	MealTypeSnack,
	MealTypeDessert,
}

// Valid reports whether m is one of the known meal types.
func (m MealType) Valid() bool {
	for _, mt := range MealTypes {
		if mt == m {
			return true
		}
	}
	return false
}

// ParseMealType converts a string into a MealType.
func ParseMealType(s string) (MealType, error) {
	m := MealType(strings.ToLower(strings.TrimSpace(s)))
	if !m.Valid() {
		return "", fmt.Errorf("unknown meal type %q", s)
	}
	return m, nil
}

// Unit is the unit of measure of an ingredient.
type Unit string

const (
	UnitPiece      Unit = "pcs"
	UnitGram       Unit = "g"
	UnitMilliliter Unit = "ml"
)

// Valid reports whether u is a supported unit.
func (u Unit) Valid() bool {
	switch u {
	case UnitPiece, UnitGram, UnitMilliliter:
		return true
	}
	return false
}

// ParseUnit converts a string into a Unit.
func ParseUnit(s string) (Unit, error) {
	u := Unit(strings.ToLower(strings.TrimSpace(s)))
	if !u.Valid() {
		return "", fmt.Errorf("unknown unit %q", s)
	}
	return u, nil
}

// SlotRequest maps each meal type to the number of slots requested for it.
type SlotRequest map[MealType]int

// Normalize returns a copy that keeps only positive counts of known meal types.
func (r SlotRequest) Normalize() SlotRequest {
	out := make(SlotRequest, len(r))
	for mt, count := range r {
		if count > 0 && mt.Valid() {
			out[mt] = count
		}
	}
	return out
}

// Total returns the sum of all positive slot counts.
func (r SlotRequest) Total() int {
	total := 0
	for _, count := range r {
		if count > 0 {
			total += count
		}
	}
	return total
}

// Clone returns an independent copy of the request.
func (r SlotRequest) Clone() SlotRequest {
	out := make(SlotRequest, len(r))
	for mt, count := range r {
		out[mt] = count
	}
	return out
}

// FilledSlot is one dish assigned to one slot of a meal type.
type FilledSlot struct {
	MealType MealType `json:"mealType"`
	DishID   string   `json:"dishId"`
}
