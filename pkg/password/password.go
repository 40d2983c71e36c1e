// Package password encapsula el hash de contraseñas con bcrypt.
package password

import "golang.org/x/crypto/bcrypt"

// Hasher calcula y verifica hashes bcrypt con un costo fijo.
type Hasher struct {
	cost int
}

// NewHasher crea un Hasher; un costo fuera de rango usa bcrypt.DefaultCost.
func NewHasher(cost int) *Hasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &Hasher{cost: cost}
}

// Hash devuelve el hash bcrypt de plain.
func (h *Hasher) Hash(plain string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plain), h.cost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Check informa si plain corresponde al hash. Un hash mal formado cuenta como no coincidente.
func (h *Hasher) Check(hash, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
