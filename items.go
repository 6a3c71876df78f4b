package cloudfx

import (
	"slices"

	"codeberg.org/anaseto/gruid"
)

// ItemKind represents the kinds of items effects care about.
type ItemKind int

const (
	ItemCorpse ItemKind = iota
	ItemSkeleton
	ItemGold
)

// TitheState tells how Zin considers a pile of gold.
type TitheState int

const (
	TitheNormal  TitheState = iota
	TitheNone               // never tithed (e.g. shop refunds)
	TitheNoPiety            // seen before worshipping: pay, but no piety
)

// Item represents an item lying on the floor.
type Item struct {
	Kind      ItemKind
	Species   string     // for corpses and skeletons
	Quantity  int        // for gold
	Tithe     TitheState // for gold
	Acquired  bool       // gold from acquirement
	Destroyed bool
}

// species lists which species leave a skeleton when their corpse rots.
// Species absent from the table rot away completely.
var species = map[string]bool{
	"goblin":     true,
	"orc":        true,
	"human":      true,
	"rat":        true,
	"jackal":     true,
	"hound":      true,
	"ogre":       true,
	"troll":      true,
	"worm":       false,
	"jelly":      false,
	"ooze":       false,
	"slug":       false,
	"killer bee": false,
}

// HasSkeleton reports whether a species leaves a skeleton.
func HasSkeleton(sp string) bool {
	return species[sp]
}

// Corpse returns a new corpse item of the given species.
func Corpse(sp string) *Item {
	return &Item{Kind: ItemCorpse, Species: sp}
}

// Gold returns a new pile of gold.
func Gold(n int) *Item {
	return &Item{Kind: ItemGold, Quantity: n}
}

// Name returns a short description of the item.
func (it *Item) Name() string {
	switch it.Kind {
	case ItemCorpse:
		return it.Species + " corpse"
	case ItemSkeleton:
		return it.Species + " skeleton"
	case ItemGold:
		return "gold"
	default:
		return "item"
	}
}

// AddItem puts an item on top of the stack at p.
func (w *World) AddItem(p gruid.Point, it *Item) {
	if !w.InBounds(p) {
		return
	}
	w.Map.Items[p] = append(w.Map.Items[p], it)
}

// ItemsAt returns the item stack at p.
func (w *World) ItemsAt(p gruid.Point) []*Item {
	return w.Map.Items[p]
}

// DestroyItem removes an item from the stack at p.
func (w *World) DestroyItem(p gruid.Point, it *Item) {
	stack := w.Map.Items[p]
	i := slices.Index(stack, it)
	if i < 0 {
		return
	}
	it.Destroyed = true
	stack = slices.Delete(stack, i, i+1)
	if len(stack) == 0 {
		delete(w.Map.Items, p)
		return
	}
	w.Map.Items[p] = stack
}

// Skeletonise turns a corpse into a skeleton.
func (it *Item) Skeletonise() {
	if it.Kind == ItemCorpse {
		it.Kind = ItemSkeleton
	}
}
