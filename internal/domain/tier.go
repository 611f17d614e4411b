package domain

import (
	"errors"
	"strconv"
	"strings"
)

var ErrInvalidTier = errors.New("invalid tier")

// Tier ранг элемента внутри категории
type Tier int

const (
	TierNone Tier = iota
	TierD
	TierC
	TierB
	TierA
	TierS
)

var tierNames = map[Tier]string{
	TierNone: "None",
	TierD:    "D",
	TierC:    "C",
	TierB:    "B",
	TierA:    "A",
	TierS:    "S",
}

// IsValid проверяет валидность ранга
func (t Tier) IsValid() bool {
	_, ok := tierNames[t]
	return ok
}

func (t Tier) String() string {
	if name, ok := tierNames[t]; ok {
		return name
	}
	return "Tier(" + strconv.Itoa(int(t)) + ")"
}

// ParseTier разбирает ранг по имени ("S", "none") или числовому значению ("5")
func ParseTier(s string) (Tier, error) {
	s = strings.TrimSpace(s)
	if n, err := strconv.Atoi(s); err == nil {
		if t := Tier(n); t.IsValid() {
			return t, nil
		}
		return TierNone, ErrInvalidTier
	}
	for t, name := range tierNames {
		if strings.EqualFold(name, s) {
			return t, nil
		}
	}
	return TierNone, ErrInvalidTier
}
