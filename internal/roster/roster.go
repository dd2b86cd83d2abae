// Package roster loads battle rosters from YAML files.
package roster

import (
	"encoding/hex"
	"errors"
	"fmt"
	"os"

	"golang.org/x/crypto/blake2b"
	"gopkg.in/yaml.v3"

	"github.com/udisondev/tussle/internal/game/character"
	"github.com/udisondev/tussle/internal/game/effect"
	"github.com/udisondev/tussle/internal/game/move"
	"github.com/udisondev/tussle/internal/model"
)

var (
	// ErrNoParties is returned for a roster that declares fewer than two parties.
	ErrNoParties = errors.New("roster needs at least two parties")

	// ErrDuplicateName is returned when two characters share a name.
	ErrDuplicateName = errors.New("duplicate character name")
)

// File is the YAML layout of a roster file.
type File struct {
	Parties []PartySpec `yaml:"parties"`
}

// PartySpec declares one party and its members.
type PartySpec struct {
	Name       string          `yaml:"name"`
	Characters []CharacterSpec `yaml:"characters"`
}

// CharacterSpec declares one character.
type CharacterSpec struct {
	Name      string          `yaml:"name"`
	Owner     string          `yaml:"owner"`
	Strategy  string          `yaml:"strategy"`
	Stats     model.Stats     `yaml:"stats"`
	Equipment []EquipmentSpec `yaml:"equipment"`
}

// EquipmentSpec declares an item by its capabilities.
type EquipmentSpec struct {
	Name      string      `yaml:"name"`
	Type      string      `yaml:"type"`
	Requires  model.Stats `yaml:"requires"`
	Effects   []Ref       `yaml:"effects"`
	Maneuvers []Ref       `yaml:"maneuvers"`
	Reactions []Ref       `yaml:"reactions"`
}

// Ref names a registered effect or move with its params.
type Ref struct {
	Name   string            `yaml:"name"`
	Params map[string]string `yaml:"params"`
}

// Roster is a loaded roster: characters in declaration order plus the file fingerprint.
type Roster struct {
	Characters  []*character.Character
	Fingerprint string
}

// Load reads and builds a roster file. Each call returns fresh characters,
// so independent battles never share state.
func Load(path string, equipCap int) (*Roster, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading roster %s: %w", path, err)
	}
	r, err := Parse(data, equipCap)
	if err != nil {
		return nil, fmt.Errorf("roster %s: %w", path, err)
	}
	return r, nil
}

// Parse builds a roster from YAML data.
func Parse(data []byte, equipCap int) (*Roster, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing roster: %w", err)
	}
	chars, err := f.Build(equipCap)
	if err != nil {
		return nil, err
	}
	return &Roster{Characters: chars, Fingerprint: Fingerprint(data)}, nil
}

// Fingerprint returns the hex BLAKE2b-256 digest of a roster file.
func Fingerprint(data []byte) string {
	sum := blake2b.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// Build creates the declared characters and equips their items.
func (f File) Build(equipCap int) ([]*character.Character, error) {
	if len(f.Parties) < 2 {
		return nil, ErrNoParties
	}

	seen := make(map[string]struct{})
	var out []*character.Character
	for _, p := range f.Parties {
		for _, cs := range p.Characters {
			if _, dup := seen[cs.Name]; dup {
				return nil, fmt.Errorf("%w: %s", ErrDuplicateName, cs.Name)
			}
			seen[cs.Name] = struct{}{}

			c, err := cs.build(p.Name, equipCap)
			if err != nil {
				return nil, fmt.Errorf("character %s: %w", cs.Name, err)
			}
			out = append(out, c)
		}
	}
	return out, nil
}

func (cs CharacterSpec) build(party string, equipCap int) (*character.Character, error) {
	strategy, err := character.ParseStrategy(cs.Strategy)
	if err != nil {
		return nil, err
	}

	opts := []character.Option{
		character.WithParty(party),
		character.WithOwner(cs.Owner),
		character.WithStrategy(strategy),
	}
	if equipCap > 0 {
		opts = append(opts, character.WithEquipmentCap(equipCap))
	}
	c := character.New(cs.Name, cs.Stats, opts...)

	for _, es := range cs.Equipment {
		eq, err := es.build()
		if err != nil {
			return nil, fmt.Errorf("equipment %s: %w", es.Name, err)
		}
		if err := c.Equip(eq); err != nil {
			return nil, fmt.Errorf("equipping %s: %w", es.Name, err)
		}
	}
	return c, nil
}

func (es EquipmentSpec) build() (*character.Equipment, error) {
	kind, err := model.ParseEquipmentType(es.Type)
	if err != nil {
		return nil, err
	}
	eq := character.NewEquipment(es.Name, kind, es.Requires)

	for _, ref := range es.Effects {
		e, err := effect.Create(ref.Name, ref.Params)
		if err != nil {
			return nil, err
		}
		eq.AddEffect(e)
	}
	for _, ref := range es.Maneuvers {
		m, err := move.CreateManeuver(ref.Name, ref.Params)
		if err != nil {
			return nil, err
		}
		eq.AddManeuver(m)
	}
	for _, ref := range es.Reactions {
		r, err := move.CreateReaction(ref.Name, ref.Params)
		if err != nil {
			return nil, err
		}
		eq.AddReaction(r)
	}
	return eq, nil
}
