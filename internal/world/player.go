package world

import (
	"fmt"
	"strconv"

	"golang.org/x/crypto/bcrypt"
)

// Player is a connected participant's entity in the world.
type Player struct {
	Entity

	// Access is the player's privilege level, checked against channel
	// restriction thresholds and building permissions.
	Access int

	// Money is the player's carried coin, separate from any bank account.
	Money Coins

	// hash is the bcrypt password hash. Empty until SetPassword is called.
	hash string
}

// NewPlayer creates an unregistered player starting at the given location.
func NewPlayer(name string, location Ref) (*Player, error) {
	if name == "" {
		return nil, &ValidationError{Err: fmt.Errorf("player name is required")}
	}
	return &Player{
		Entity: Entity{
			Name:        name,
			Description: "An adventurer.",
			Location:    location,
			Flags:       NewFlagSet(),
		},
	}, nil
}

func (p *Player) Kind() Kind {
	return KindPlayer
}

// SetPassword hashes and stores the player's password.
func (p *Player) SetPassword(password string) error {
	if password == "" {
		return &ValidationError{Err: fmt.Errorf("password is required")}
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hashing password: %w", err)
	}
	p.hash = string(hash)
	return nil
}

// CheckPassword reports whether the password matches the stored hash.
func (p *Player) CheckPassword(password string) bool {
	if p.hash == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(p.hash), []byte(password)) == nil
}

// playerArity = base fields + password hash + access level + money.
const playerArity = baseArity + 3

func (p *Player) Record() (string, error) {
	fields := append(p.recordFields(),
		p.hash,
		strconv.Itoa(p.Access),
		strconv.Itoa(int(p.Money)),
	)
	return joinRecord(fields)
}

// ParsePlayer decodes a player record.
func ParsePlayer(record string) (*Player, error) {
	fields, err := splitRecord("player", record, playerArity)
	if err != nil {
		return nil, err
	}
	base, err := parseEntityFields("player", fields)
	if err != nil {
		return nil, err
	}
	access, err := parseOrdinal("player", "access level", fields[6])
	if err != nil {
		return nil, err
	}
	money, err := parseOrdinal("player", "money", fields[7])
	if err != nil {
		return nil, err
	}
	return &Player{
		Entity: base,
		Access: access,
		Money:  Coins(money),
		hash:   fields[5],
	}, nil
}
