// Package assets holds the game's static data: the glyphs standing in for
// the donut sprite sheet, customer faces and names, and the distribution
// used to generate tastes.
package assets

import (
	_ "embed"
	"fmt"
	"os"

	"donut-tell-me/internal/donut"

	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var defaultCatalog []byte

// Sprite is one slice of the donut sheet.
type Sprite struct {
	Name  string `yaml:"name"`
	Glyph string `yaml:"glyph"`
	Color string `yaml:"color"`
}

// Catalog is the parsed game data.
type Catalog struct {
	Bases        []Sprite          `yaml:"bases"`
	Glazing      []Sprite          `yaml:"glazing"`
	Sprinkles    []Sprite          `yaml:"sprinkles"`
	Faces        []string          `yaml:"faces"`
	Names        []string          `yaml:"names"`
	Emotes       map[string]string `yaml:"emotes"`
	TasteWeights []int             `yaml:"taste_weights"`
}

// Default parses the embedded catalog.
func Default() (*Catalog, error) {
	return Parse(defaultCatalog)
}

// MustDefault is Default for package-level use; the embedded file is
// checked by tests so a failure here is a build defect.
func MustDefault() *Catalog {
	c, err := Default()
	if err != nil {
		panic(err)
	}
	return c
}

// LoadFile reads a catalog from disk, e.g. a reskinned shop.
func LoadFile(path string) (*Catalog, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	return Parse(raw)
}

// Parse decodes and checks a YAML catalog.
func Parse(raw []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	if err := c.check(); err != nil {
		return nil, err
	}
	return &c, nil
}

func (c *Catalog) check() error {
	for _, k := range donut.Kinds {
		if got := len(c.sprites(k)); got != k.Count() {
			return fmt.Errorf("catalog: %d %s sprites, want %d", got, k, k.Count())
		}
	}
	if len(c.Faces) == 0 {
		return fmt.Errorf("catalog: no faces")
	}
	if len(c.Names) == 0 {
		return fmt.Errorf("catalog: no customer names")
	}
	if len(c.TasteWeights) != 0 && len(c.TasteWeights) != donut.MaxRating {
		return fmt.Errorf("catalog: %d taste weights, want %d", len(c.TasteWeights), donut.MaxRating)
	}
	return nil
}

func (c *Catalog) sprites(k donut.Kind) []Sprite {
	switch k {
	case donut.KindGlazing:
		return c.Glazing
	case donut.KindSprinkles:
		return c.Sprinkles
	}
	return c.Bases
}

// Sprite returns the slice drawn for attribute a.
func (c *Catalog) Sprite(a donut.Attr) Sprite {
	s := c.sprites(a.Kind)
	if a.Value < 0 || a.Value >= len(s) {
		return Sprite{Name: "?", Glyph: "?"}
	}
	return s[a.Value]
}

// Emote returns the glyph for an emotion.
func (c *Catalog) Emote(e donut.Emotion) string {
	if g, ok := c.Emotes[e.String()]; ok {
		return g
	}
	return "?"
}

// Weights converts the taste weights for donut.RandomTaste.
func (c *Catalog) Weights() donut.RatingWeights {
	var w donut.RatingWeights
	copy(w[:], c.TasteWeights)
	return w
}
